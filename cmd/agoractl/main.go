package main

import (
	"fmt"
	"os"

	"agora/internal/agoractl/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error

	switch cmd {
	case "help", "--help", "-h":
		commands.PrintUsage(os.Stdout)
		return
	case "ping":
		err = commands.RunPing(args, os.Stdout)
	case "version":
		err = commands.RunVersion(args, os.Stdout)
	case "hash":
		err = commands.RunHash(args, os.Stdout)
	case "token":
		err = commands.RunToken(args, os.Stdout)
	case "useradd":
		err = commands.RunUserAdd(args, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "agoractl: unknown command %q\n", cmd)
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "agoractl %s: %v\n", cmd, err)
		os.Exit(1)
	}
}
