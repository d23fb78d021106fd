package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"agora/internal/access"
	"agora/internal/db"
	"agora/internal/env"
	"agora/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// parseGroups turns a comma separated list of group names into a set.
func parseGroups(raw string) (access.Groups, error) {
	var groups access.Groups
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		g, ok := access.ParseGroup(name)
		if !ok {
			return access.Groups{}, fmt.Errorf("unknown group %q", name)
		}
		groups = groups.With(g)
	}
	if groups.IsZero() {
		return access.Groups{}, errors.New("at least one group is required")
	}
	return groups, nil
}

// newUser builds the stored form of an operator-created user.
func newUser(username, name, password string, groups access.Groups) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		Username:  username,
		Name:      name,
		Password:  string(hash),
		WorkTeams: []string{},
	}
	u.SetGroups(groups)
	return u, nil
}

// RunUserAdd handles the `agoractl useradd` subcommand.
func RunUserAdd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "login name")
	name := fs.String("name", "", "display name")
	password := fs.String("password", "", "initial password")
	groups := fs.String("groups", "VIEWER", "comma separated groups, e.g. VOTER,MODERATOR")
	envRoot := fs.String("env-root", "", "directory containing the .env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*username) == "" || *password == "" {
		return errors.New("--username and --password are required")
	}

	set, err := parseGroups(*groups)
	if err != nil {
		return err
	}

	u, err := newUser(strings.TrimSpace(*username), *name, *password, set)
	if err != nil {
		return err
	}

	cfg, err := env.Load(*envRoot, "agoractl")
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.InitDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(ctx)

	if err := models.NewUsers(database.Users).Insert(ctx, &u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	fmt.Fprintf(out, "created %s (%s) groups=%s\n", u.Username, u.ID, strings.Join(u.GroupNames(), ","))
	return nil
}
