package commands

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agora/internal/access"
	"agora/internal/env"
	"agora/internal/models"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseGroups(t *testing.T) {
	groups, err := parseGroups("voter, moderator")
	require.NoError(t, err)
	require.True(t, groups.Has(access.GroupVoter))
	require.True(t, groups.Has(access.GroupModerator))
	require.Equal(t, 2, groups.Len())

	_, err = parseGroups("VOTER,OVERLORD")
	require.ErrorContains(t, err, "OVERLORD")

	_, err = parseGroups(" , ")
	require.Error(t, err)
}

func TestNewUserHashesPassword(t *testing.T) {
	u, err := newUser("ana", "Ana", "hunter2", access.SetOf(access.GroupVoter))
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2")))
	require.Equal(t, []string{"VOTER"}, u.GroupNames())
	require.True(t, u.Viewer().Permissions.Has(access.PermVote))
}

func TestRunTokenSignsParsableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	var out bytes.Buffer
	require.NoError(t, RunToken([]string{"--id", "u-1", "--env-root", t.TempDir()}, &out))

	env.JWT_SECRET = []byte("cli-secret")
	var vt models.ViewerToken
	require.NoError(t, vt.ParseToken(strings.TrimSpace(out.String())))
	require.Equal(t, "u-1", vt.ID)
}

func TestRunTokenReadsDotEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, RunToken([]string{"--id", "u-2", "--env-root", dir}, &out))

	env.JWT_SECRET = []byte("from-dotenv")
	var vt models.ViewerToken
	require.NoError(t, vt.ParseToken(strings.TrimSpace(out.String())))
	require.Equal(t, "u-2", vt.ID)

	env.JWT_SECRET = []byte("other-secret")
	require.Error(t, vt.ParseToken(strings.TrimSpace(out.String())))
}

func TestRunTokenRequiresUserAndSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	require.Error(t, RunToken(nil, &bytes.Buffer{}))
	require.ErrorContains(t, RunToken([]string{"--id", "u-1", "--env-root", t.TempDir()}, &bytes.Buffer{}), "JWT_SECRET")
}

func TestPingAndVersion(t *testing.T) {
	app := fiber.New()
	app.Get("/agora/ping", func(c fiber.Ctx) error { return c.SendString("PONG") })
	app.Get("/agora/version", func(c fiber.Ctx) error { return c.SendString("v1.2.3") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	t.Cleanup(func() { _ = app.Shutdown() })

	host := ln.Addr().String()

	var out bytes.Buffer
	require.NoError(t, RunPing([]string{"--host", host}, &out))
	require.Equal(t, "PONG\n", out.String())

	out.Reset()
	require.NoError(t, RunVersion([]string{"--host", host}, &out))
	require.Equal(t, "v1.2.3\n", out.String())
}

func TestVersionWithoutServer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunVersion([]string{"--host", "127.0.0.1:1"}, &out))
	require.Equal(t, "No version detected\n", out.String())
}

func TestRunHash(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunHash([]string{"s3cret"}, &out))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out.String())), []byte("s3cret")))

	require.Error(t, RunHash(nil, &out))
}
