package flags

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/logx"
	"agora/internal/models"
	"agora/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app    *fiber.App
	store  *testutil.MemFlags
	events []events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{store: testutil.NewMemFlags(models.Flag{ID: "f0", StatementID: "s0", Content: "old"})}
	users := testutil.NewMemUsers(
		testutil.NewUser("voter", access.GroupVoter),
		testutil.NewUser("moderator", access.GroupModerator),
	)

	bus := events.NewBus(logx.Nop())
	for _, name := range []string{events.FlagCreated, events.FlagSolved} {
		bus.Subscribe(name, func(_ context.Context, evt events.Event) {
			f.events = append(f.events, evt)
		})
	}

	f.app = fiber.New()
	Routes(f.app.Group("/agora"), &Handlers{Flags: f.store, Users: users, Bus: bus})

	return f
}

func TestFlagThenSolve(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/flags",
		testutil.JSON(t, createRequest{StatementID: "s1", Content: "spam"}), testutil.Token(t, "voter"))
	require.Equal(t, http.StatusCreated, status)

	var flag models.Flag
	require.NoError(t, json.Unmarshal(body, &flag))
	require.Equal(t, "voter", flag.FlaggerID)

	// a voter can report but not resolve
	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/flags/"+flag.ID+"/solve", nil, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/flags/"+flag.ID+"/solve", nil, testutil.Token(t, "moderator"))
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &flag))
	require.True(t, flag.Solved)
	require.Equal(t, "moderator", flag.SolverID)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/flags/"+flag.ID+"/solve", nil, testutil.Token(t, "moderator"))
	testutil.ResponseErrorCheck(t, errmsg.FlagAlreadySolved, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/flags/nope/solve", nil, testutil.Token(t, "moderator"))
	testutil.ResponseErrorCheck(t, errmsg.FlagNotFound, body, status)

	require.Len(t, f.events, 2)
	require.Equal(t, events.FlagCreated, f.events[0].Name)
	require.Equal(t, events.FlagSolved, f.events[1].Name)
	require.Equal(t, "s1", f.events[1].Payload["statementId"])
}

func TestModeratorCannotFlagWithoutReportRight(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/flags",
		testutil.JSON(t, createRequest{StatementID: "s1", Content: "spam"}), testutil.Token(t, "moderator"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)
}

func TestListFlags(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "GET", "/agora/flags", nil, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/flags?solved=false", nil, testutil.Token(t, "moderator"))
	require.Equal(t, http.StatusOK, status)

	var res listResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Flags, 1)
	require.Equal(t, "f0", res.Flags[0].ID)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/flags?solved=true", nil, testutil.Token(t, "moderator"))
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &res))
	require.Empty(t, res.Flags)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/flags?solved=maybe", nil, testutil.Token(t, "moderator"))
	testutil.ResponseErrorCheck(t, errmsg.InvalidField("solved", "boolean"), body, status)
}
