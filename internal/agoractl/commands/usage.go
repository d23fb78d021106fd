package commands

import (
	"fmt"
	"io"
)

// PrintUsage writes basic command help to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: agoractl <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintln(w, "  ping       Check that the agora service answers")
	fmt.Fprintln(w, "  version    Show the version of the running service")
	fmt.Fprintln(w, "  hash       Print the bcrypt hash of a password")
	fmt.Fprintln(w, "  token      Mint a viewer token for --id (reads JWT_SECRET from env or --env-root/.env)")
	fmt.Fprintln(w, "  useradd    Create a user with the given groups")
	fmt.Fprintln(w, "  help       Show this help text")
}
