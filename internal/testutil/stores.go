package testutil

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"agora/internal/access"
	"agora/internal/models"

	"github.com/google/uuid"
)

type MemUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemUsers(users ...models.User) *MemUsers {
	s := &MemUsers{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

// NewUser builds a user holding the capabilities granted by groups.
func NewUser(id string, groups ...access.Group) models.User {
	u := models.User{ID: id, Username: id, Name: id, WorkTeams: []string{}}
	u.SetGroups(access.SetOf(groups...))
	return u
}

func (s *MemUsers) ByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (s *MemUsers) ByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (s *MemUsers) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemUsers) Update(_ context.Context, id string, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}

	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&u.Name, patch.Name)
	apply(&u.Surname, patch.Surname)
	apply(&u.Email, patch.Email)
	apply(&u.Password, patch.Password)
	apply(&u.Thumbnail, patch.Thumbnail)
	if patch.Groups != nil {
		u.SetGroups(*patch.Groups)
	}
	u.UpdatedAt = time.Now().UTC()

	s.users[id] = u
	return u, nil
}

func (s *MemUsers) SetWorkTeam(_ context.Context, userID string, teamID string, member bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	u.WorkTeams = toggle(u.WorkTeams, teamID, member)
	s.users[userID] = u
	return nil
}

type MemWorkTeams struct {
	mu    sync.Mutex
	teams map[string]models.WorkTeam
}

func NewMemWorkTeams(teams ...models.WorkTeam) *MemWorkTeams {
	s := &MemWorkTeams{teams: map[string]models.WorkTeam{}}
	for _, wt := range teams {
		s.teams[wt.ID] = wt
	}
	return s
}

func (s *MemWorkTeams) ByID(_ context.Context, id string) (models.WorkTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wt, ok := s.teams[id]
	if !ok {
		return models.WorkTeam{}, models.ErrNotFound
	}
	return wt, nil
}

func (s *MemWorkTeams) Insert(_ context.Context, wt *models.WorkTeam) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	if wt.Members == nil {
		wt.Members = []string{}
	}
	s.teams[wt.ID] = *wt
	return nil
}

func (s *MemWorkTeams) Update(_ context.Context, id string, patch models.WorkTeamPatch) (models.WorkTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wt, ok := s.teams[id]
	if !ok {
		return models.WorkTeam{}, models.ErrNotFound
	}
	if patch.Name != nil {
		wt.Name = *patch.Name
	}
	if patch.CoordinatorID != nil {
		wt.CoordinatorID = *patch.CoordinatorID
	}
	s.teams[id] = wt
	return wt, nil
}

func (s *MemWorkTeams) SetMember(_ context.Context, teamID string, userID string, member bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wt, ok := s.teams[teamID]
	if !ok {
		return models.ErrNotFound
	}
	wt.Members = toggle(wt.Members, userID, member)
	s.teams[teamID] = wt
	return nil
}

type MemActivities struct {
	mu         sync.Mutex
	activities []models.Activity
}

func NewMemActivities() *MemActivities {
	return &MemActivities{}
}

func (s *MemActivities) Insert(_ context.Context, a *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now().UTC()
	s.activities = append(s.activities, *a)
	return nil
}

func (s *MemActivities) List(_ context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Activity{}
	for i := len(s.activities) - 1; i >= 0; i-- {
		a := s.activities[i]
		if a.WorkTeamID != "" && !slices.Contains(filter.WorkTeams, a.WorkTeamID) {
			continue
		}
		out = append(out, a)
		if filter.Limit > 0 && int64(len(out)) == filter.Limit {
			break
		}
	}
	return out, nil
}

type MemFlags struct {
	mu    sync.Mutex
	flags map[string]models.Flag
}

func NewMemFlags(flags ...models.Flag) *MemFlags {
	s := &MemFlags{flags: map[string]models.Flag{}}
	for _, f := range flags {
		s.flags[f.ID] = f
	}
	return s
}

func (s *MemFlags) Insert(_ context.Context, f *models.Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now().UTC()
	s.flags[f.ID] = *f
	return nil
}

func (s *MemFlags) Solve(_ context.Context, id string, solverID string) (models.Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flags[id]
	if !ok {
		return models.Flag{}, models.ErrNotFound
	}
	if f.Solved {
		return models.Flag{}, models.ErrFlagSolved
	}

	now := time.Now().UTC()
	f.Solved = true
	f.SolverID = solverID
	f.SolvedAt = &now
	s.flags[id] = f
	return f, nil
}

func (s *MemFlags) List(_ context.Context, solved *bool) ([]models.Flag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Flag{}
	for _, f := range s.flags {
		if solved != nil && f.Solved != *solved {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func toggle(ids []string, id string, member bool) []string {
	ids = slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
	if member {
		ids = append(ids, id)
	}
	return ids
}

var (
	_ models.UserStore     = (*MemUsers)(nil)
	_ models.WorkTeamStore = (*MemWorkTeams)(nil)
	_ models.ActivityStore = (*MemActivities)(nil)
	_ models.FlagStore     = (*MemFlags)(nil)
)
