package access

// Group is a membership class.
type Group uint64

const (
	GroupGuest Group = 1 << iota
	GroupViewer
	GroupVoter
	GroupModerator
	GroupRelator
	GroupMemberManager
	GroupAdmin
	GroupSuperUser
	GroupSystem
	GroupContactee

	groupEnd
)

func (Group) known() uint64 { return uint64(groupEnd - 1) }

var groupNames = map[Group]string{
	GroupGuest:         "GUEST",
	GroupViewer:        "VIEWER",
	GroupVoter:         "VOTER",
	GroupModerator:     "MODERATOR",
	GroupRelator:       "RELATOR",
	GroupMemberManager: "MEMBER_MANAGER",
	GroupAdmin:         "ADMIN",
	GroupSuperUser:     "SUPER_USER",
	GroupSystem:        "SYSTEM",
	GroupContactee:     "CONTACTEE",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseGroup maps a group name (as returned by String) back to its flag.
func ParseGroup(name string) (Group, bool) {
	for g, n := range groupNames {
		if n == name {
			return g, true
		}
	}
	return 0, false
}

// Permission is a fine-grained capability.
type Permission uint64

const (
	PermLike Permission = 1 << iota
	PermVote
	PermModifyOwnStatements
	PermViewProposals
	PermViewStatements
	PermChangeOwnProfile
	PermFlagStatements
	PermTakeSurveys
	PermPublishSurveys
	PermCreateProposals
	PermModifyProposals
	PermClosePolls
	PermDeleteStatements
	PermMutateProfiles
	PermViewUserInfo
	PermNotifyGroups
	PermNotifyAll
	PermCreateWorkTeams
	PermPublishProposals

	permissionEnd
)

func (Permission) known() uint64 { return uint64(permissionEnd - 1) }

// Privilege is delegated authority to grant membership in a group.
type Privilege uint64

const (
	PrivGrantViewer Privilege = 1 << iota
	PrivGrantVoter
	PrivGrantModerator
	PrivGrantRelator
	PrivGrantMemberManager
	PrivGrantAdmin
	PrivGrantSuperUser

	privilegeEnd
)

func (Privilege) known() uint64 { return uint64(privilegeEnd - 1) }

type (
	Groups      = Set[Group]
	Permissions = Set[Permission]
	Privileges  = Set[Privilege]
)

// Coarse access masks. A viewer passes a mask when it holds any of its bits.
var (
	AccessLevel0 = SetOf(PermViewProposals, PermViewStatements, PermTakeSurveys)
	AccessLevel1 = SetOf(PermVote, PermLike, PermModifyOwnStatements, PermViewUserInfo)
)

var (
	guestPermissions  = SetOf(PermChangeOwnProfile)
	viewerPermissions = guestPermissions.Union(AccessLevel0)
	voterPermissions  = viewerPermissions.With(
		PermVote,
		PermLike,
		PermModifyOwnStatements,
		PermFlagStatements,
		PermViewUserInfo,
	)
	relatorPermissions = SetOf(PermCreateProposals, PermPublishProposals)
)

// PermissionsSchema lists the permissions granted by membership in a group.
var PermissionsSchema = map[Group]Permissions{
	GroupGuest:         guestPermissions,
	GroupViewer:        viewerPermissions,
	GroupVoter:         voterPermissions,
	GroupModerator:     SetOf(PermDeleteStatements, PermViewUserInfo),
	GroupRelator:       relatorPermissions,
	GroupMemberManager: SetOf(PermMutateProfiles, PermViewUserInfo),
	GroupAdmin: relatorPermissions.With(
		PermModifyProposals,
		PermClosePolls,
		PermPublishSurveys,
		PermNotifyGroups,
		PermCreateWorkTeams,
		PermMutateProfiles,
		PermDeleteStatements,
		PermViewUserInfo,
	),
	GroupSuperUser: FromBits[Permission](^uint64(0)),
	GroupSystem:    SetOf(PermNotifyAll),
	GroupContactee: {},
}

// PrivilegesSchema lists the privileges held by a group. Schemas never share
// bits, so holding a bit identifies the group it came from.
var PrivilegesSchema = map[Group]Privileges{
	GroupMemberManager: SetOf(PrivGrantViewer, PrivGrantVoter),
	GroupAdmin:         SetOf(PrivGrantModerator, PrivGrantRelator, PrivGrantMemberManager),
	GroupSuperUser:     SetOf(PrivGrantAdmin, PrivGrantSuperUser),
}

// GrantsFor returns the permissions and privileges implied by groups.
func GrantsFor(groups Groups) (Permissions, Privileges) {
	var perms Permissions
	var privs Privileges
	for _, g := range groups.Flags() {
		perms = perms.Union(PermissionsSchema[g])
		privs = privs.Union(PrivilegesSchema[g])
	}
	return perms, privs
}

// Resource names a coarse, route-level capability.
type Resource string

const (
	ResourceSSE       Resource = "SSE"
	ResourceUsers     Resource = "Users"
	ResourceWorkTeams Resource = "WorkTeams"
	ResourceAdmin     Resource = "Admin"
)

var resourceRules = map[Resource]func(*Viewer) bool{
	ResourceSSE: func(v *Viewer) bool {
		return v.Permissions.HasAny(AccessLevel0)
	},
	ResourceUsers: func(v *Viewer) bool {
		return v.Permissions.Has(PermViewUserInfo)
	},
	ResourceWorkTeams: func(v *Viewer) bool {
		return v.Permissions.HasAny(AccessLevel0)
	},
	ResourceAdmin: func(v *Viewer) bool {
		return v.Groups.HasAny(SetOf(GroupAdmin, GroupSuperUser))
	},
}

// CanAccess reports whether v may use the named resource. Unknown resources
// are denied.
func CanAccess(v *Viewer, r Resource) bool {
	rule, ok := resourceRules[r]
	if !ok || v == nil {
		return false
	}
	return rule(v)
}
