package access

// Entity tags a protected resource type.
type Entity uint16

const (
	EntityUser Entity = 1 << iota
	EntityProposal
	EntityStatement
	EntityFlag
	EntityStatementLike
	EntityPoll
	EntityVote
	EntityNotification
	EntityWorkTeam
	EntityActivity
)

func (e Entity) String() string {
	switch e {
	case EntityUser:
		return "user"
	case EntityProposal:
		return "proposal"
	case EntityStatement:
		return "statement"
	case EntityFlag:
		return "flag"
	case EntityStatementLike:
		return "statement_like"
	case EntityPoll:
		return "poll"
	case EntityVote:
		return "vote"
	case EntityNotification:
		return "notification"
	case EntityWorkTeam:
		return "work_team"
	case EntityActivity:
		return "activity"
	}
	return "unknown"
}

// Kind binds an entity to its read and write policy. The set of kinds is
// closed: only this package can implement it, and each kind only accepts its
// own request type.
type Kind[D any] interface {
	Entity() Entity
	canSee(v *Viewer, data D) bool
	canMutate(v *Viewer, data D) bool
}

// The protected entity kinds.
var (
	User          Kind[UserData]         = userKind{}
	Proposal      Kind[ProposalData]     = proposalKind{}
	Statement     Kind[StatementData]    = statementKind{}
	Flag          Kind[FlagData]         = flagKind{}
	StatementLike Kind[LikeData]         = likeKind{}
	Poll          Kind[PollData]         = pollKind{}
	Vote          Kind[VoteData]         = voteKind{}
	Notification  Kind[NotificationData] = notificationKind{}
	WorkTeam      Kind[WorkTeamData]     = workTeamKind{}
	Activity      Kind[ActivityData]     = activityKind{}
)

// Kinds lists every protected entity.
func Kinds() []Entity {
	return []Entity{
		User.Entity(),
		Proposal.Entity(),
		Statement.Entity(),
		Flag.Entity(),
		StatementLike.Entity(),
		Poll.Entity(),
		Vote.Entity(),
		Notification.Entity(),
		WorkTeam.Entity(),
		Activity.Entity(),
	}
}

// CanMutate reports whether v may write data of the given kind. A denial is
// a normal result, not an error.
func CanMutate[D any](v *Viewer, data D, kind Kind[D]) bool {
	if v == nil || kind == nil {
		return false
	}
	return kind.canMutate(v, data)
}

// CanSee reports whether v may read data of the given kind.
func CanSee[D any](v *Viewer, data D, kind Kind[D]) bool {
	if v == nil || kind == nil {
		return false
	}
	return kind.canSee(v, data)
}
