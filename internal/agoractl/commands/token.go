package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"agora/internal/env"
	"agora/internal/models"
)

// RunToken handles the `agoractl token` subcommand. It reads configuration
// the same way the server does and signs a viewer token with its JWT secret
// so operators can call the API as a given user.
func RunToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	userID := fs.String("id", "", "user id to mint the token for")
	envRoot := fs.String("env-root", "", "directory containing the .env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := strings.TrimSpace(*userID)
	if id == "" {
		return errors.New("--id is required")
	}

	if _, err := env.Load(*envRoot, "agoractl"); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	vt := models.ViewerToken{ID: id}
	token := vt.GenToken()
	if token == "" {
		return errors.New("could not sign token")
	}

	fmt.Fprintln(out, token)
	return nil
}
