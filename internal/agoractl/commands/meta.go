package commands

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultHost = "localhost:8080"

var client = &http.Client{Timeout: 5 * time.Second}

func hostFlag(fs *flag.FlagSet) *string {
	host := os.Getenv("AGORA_HOST")
	if host == "" {
		host = defaultHost
	}
	return fs.String("host", host, "agora host:port to query")
}

func getText(host string, path string) (string, error) {
	resp, err := client.Get(fmt.Sprintf("http://%s/agora%s", host, path))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s answered with status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// RunPing handles the `agoractl ping` subcommand.
func RunPing(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := hostFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	pong, err := getText(*host, "/ping")
	if err != nil {
		return fmt.Errorf("agora is not responding: %w", err)
	}

	fmt.Fprintln(out, pong)
	return nil
}

// RunVersion handles the `agoractl version` subcommand.
func RunVersion(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := hostFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := getText(*host, "/version")
	if err != nil || version == "" {
		fmt.Fprintln(out, "No version detected")
		return nil
	}

	fmt.Fprintln(out, version)
	return nil
}
