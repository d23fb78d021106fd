package access

import "time"

// Proposal states relevant to authorization.
const (
	ProposalStateSurvey = "survey"
)

// ProposalData is a pending proposal read or write. A write carrying both
// ID and State is a state update of an existing proposal.
type ProposalData struct {
	ID    string
	State string
}

// PollData is a pending poll write. A non-nil ClosedAt closes the poll.
type PollData struct {
	ID       string
	ClosedAt *time.Time
}

// VoteData is a pending vote.
type VoteData struct {
	PollID   string
	Position string
}

func isRelator(v *Viewer) bool {
	return v.Permissions.HasAny(PermissionsSchema[GroupRelator])
}

type proposalKind struct{}

func (proposalKind) Entity() Entity { return EntityProposal }

func (proposalKind) canSee(v *Viewer, _ ProposalData) bool {
	return v.Permissions.Has(PermViewProposals)
}

func (proposalKind) canMutate(v *Viewer, d ProposalData) bool {
	if isRelator(v) {
		if d.ID != "" && d.State != "" {
			return v.Permissions.Has(PermModifyProposals)
		}
		return true
	}
	return d.State == ProposalStateSurvey && v.Permissions.Has(PermPublishSurveys)
}

type pollKind struct{}

func (pollKind) Entity() Entity { return EntityPoll }

func (pollKind) canSee(v *Viewer, _ PollData) bool {
	return v.Permissions.HasAny(AccessLevel1)
}

func (pollKind) canMutate(v *Viewer, d PollData) bool {
	if !isRelator(v) {
		return false
	}
	if d.ClosedAt != nil {
		return v.Permissions.Has(PermClosePolls)
	}
	return true
}

type voteKind struct{}

func (voteKind) Entity() Entity { return EntityVote }

func (voteKind) canSee(v *Viewer, _ VoteData) bool {
	return v.Permissions.HasAny(AccessLevel1)
}

func (voteKind) canMutate(v *Viewer, _ VoteData) bool {
	return v.Permissions.Has(PermVote)
}
