package commands

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// RunHash handles the `agoractl hash <password>` subcommand.
func RunHash(args []string, out io.Writer) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("usage: agoractl hash <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(hash))
	return nil
}
