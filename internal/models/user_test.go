package models_test

import (
	"testing"

	"agora/internal/access"
	"agora/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSetGroupsGrantsCapabilities(t *testing.T) {
	var u models.User
	u.SetGroups(access.SetOf(access.GroupVoter, access.GroupMemberManager))

	v := u.Viewer()
	require.True(t, v.Groups.Has(access.GroupVoter))
	require.True(t, v.Permissions.Has(access.PermVote))
	require.True(t, v.Permissions.Has(access.PermMutateProfiles))
	require.True(t, v.Privileges.Has(access.PrivGrantVoter))
	require.False(t, v.Privileges.Has(access.PrivGrantAdmin))
	require.Equal(t, []string{"VOTER", "MEMBER_MANAGER"}, u.GroupNames())
}

func TestViewerDropsUnknownBits(t *testing.T) {
	u := models.User{ID: "u1", Groups: ^uint64(0), WorkTeams: []string{"wt1"}}

	v := u.Viewer()
	require.Equal(t, 10, v.Groups.Len())
	require.True(t, v.InWorkTeam("wt1"))

	v.WorkTeams[0] = "changed"
	require.Equal(t, "wt1", u.WorkTeams[0])
}
