package events

// Domain event names published by the mutation handlers.
const (
	ActivityCreated     = "onActivityCreated"
	NotificationCreated = "onNotificationCreated"
	FlagCreated         = "onFlagCreated"
	FlagSolved          = "onFlagSolved"
	UserUpdated         = "onUserUpdated"
	ViewerLogin         = "onViewerLogin"
	WorkTeamCreated     = "onWorkTeamCreated"
	WorkTeamUpdated     = "onWorkTeamUpdated"
	WorkTeamJoined      = "onWorkTeamJoined"
	WorkTeamLeft        = "onWorkTeamLeft"
)

// All lists every domain event name; the audit emitter records all of them.
func All() []string {
	return []string{
		ActivityCreated,
		NotificationCreated,
		FlagCreated,
		FlagSolved,
		UserUpdated,
		ViewerLogin,
		WorkTeamCreated,
		WorkTeamUpdated,
		WorkTeamJoined,
		WorkTeamLeft,
	}
}

const (
	ActorSystem = "system"
)
