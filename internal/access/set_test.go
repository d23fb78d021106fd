package access

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOperations(t *testing.T) {
	s := SetOf(PermVote, PermLike)

	require.True(t, s.Has(PermVote))
	require.True(t, s.Has(PermLike))
	require.False(t, s.Has(PermClosePolls))
	require.False(t, s.Has(0))
	require.Equal(t, 2, s.Len())

	s = s.With(PermClosePolls).Without(PermVote)
	require.True(t, s.Has(PermClosePolls))
	require.False(t, s.Has(PermVote))

	require.True(t, s.HasAny(SetOf(PermVote, PermLike)))
	require.False(t, s.HasAll(SetOf(PermVote, PermLike)))
	require.True(t, s.HasAll(SetOf(PermLike)))
	require.Equal(t, []Permission{PermLike, PermClosePolls}, s.Flags())
}

func TestFromBitsDropsUnknownBits(t *testing.T) {
	groups := FromBits[Group](^uint64(0))
	require.Equal(t, len(groupNames), groups.Len())

	perms := FromBits[Permission](uint64(PermVote) | 1<<60)
	require.Equal(t, SetOf(PermVote), perms)
	require.Equal(t, uint64(PermVote), perms.Bits())
}

func TestGroupNames(t *testing.T) {
	for g, name := range groupNames {
		parsed, ok := ParseGroup(name)
		require.True(t, ok)
		require.Equal(t, g, parsed)
		require.Equal(t, name, g.String())
	}
	_, ok := ParseGroup("NOBODY")
	require.False(t, ok)
}

func TestPrivilegeSchemasAreDisjoint(t *testing.T) {
	seen := Privileges{}
	for _, privs := range PrivilegesSchema {
		require.False(t, seen.HasAny(privs))
		seen = seen.Union(privs)
	}
}

func TestGrantsFor(t *testing.T) {
	perms, privs := GrantsFor(SetOf(GroupVoter, GroupMemberManager))
	require.True(t, perms.Has(PermVote))
	require.True(t, perms.Has(PermMutateProfiles))
	require.True(t, privs.Has(PrivGrantVoter))
	require.False(t, privs.HasAny(PrivilegesSchema[GroupAdmin]))

	perms, _ = GrantsFor(SetOf(GroupSuperUser))
	require.Equal(t, FromBits[Permission](^uint64(0)), perms)
}
