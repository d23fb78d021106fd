package access

// WorkTeamData is a pending work team read or write.
type WorkTeamData struct {
	ID            string
	Name          string
	CoordinatorID string
}

// NotificationData is a pending notification to a work team, or to
// everybody when WorkTeamID is empty.
type NotificationData struct {
	WorkTeamID string
	Message    string
}

// ActivityData is a pending activity feed entry.
type ActivityData struct {
	ID       string
	Type     string
	ObjectID string
}

type workTeamKind struct{}

func (workTeamKind) Entity() Entity { return EntityWorkTeam }

func (workTeamKind) canSee(v *Viewer, _ WorkTeamData) bool {
	return v.Permissions.HasAny(AccessLevel0)
}

func (workTeamKind) canMutate(v *Viewer, d WorkTeamData) bool {
	if !v.Permissions.Has(PermCreateWorkTeams) {
		return false
	}
	if d.CoordinatorID != "" || d.Name != "" {
		// TODO: give coordinator changes a permission bit of their own
		return v.Permissions.Has(PermCreateWorkTeams)
	}
	return true
}

type notificationKind struct{}

func (notificationKind) Entity() Entity { return EntityNotification }

func (notificationKind) canSee(v *Viewer, _ NotificationData) bool {
	return v.Permissions.HasAny(AccessLevel0)
}

func (notificationKind) canMutate(v *Viewer, _ NotificationData) bool {
	return v.Permissions.HasAny(SetOf(PermNotifyGroups, PermNotifyAll))
}

type activityKind struct{}

func (activityKind) Entity() Entity { return EntityActivity }

func (activityKind) canSee(v *Viewer, _ ActivityData) bool {
	return v.Permissions.HasAny(AccessLevel0)
}

func (activityKind) canMutate(v *Viewer, _ ActivityData) bool {
	return v.Permissions.HasAny(AccessLevel0) || v.Groups.Has(GroupSystem)
}
