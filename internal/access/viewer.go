package access

import "slices"

// Viewer is the authenticated principal evaluated by every policy.
type Viewer struct {
	ID          string
	Groups      Groups
	Permissions Permissions
	Privileges  Privileges
	WorkTeams   []string
}

// InWorkTeam reports whether the viewer is a member of the work team.
func (v *Viewer) InWorkTeam(id string) bool {
	if v == nil || id == "" {
		return false
	}
	return slices.Contains(v.WorkTeams, id)
}

// IsSelf reports whether id names the viewer.
func (v *Viewer) IsSelf(id string) bool {
	return v != nil && v.ID != "" && v.ID == id
}
