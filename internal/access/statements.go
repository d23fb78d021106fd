package access

// StatementData is a pending statement read or write.
type StatementData struct {
	ID       string
	PollID   string
	AuthorID string
	Text     string
}

// FlagData is a pending flag write. Content present means flagging a
// statement; no content means solving (removing) an existing flag.
type FlagData struct {
	ID          string
	StatementID string
	Content     string
}

// LikeData is a pending statement like.
type LikeData struct {
	StatementID string
}

type statementKind struct{}

func (statementKind) Entity() Entity { return EntityStatement }

func (statementKind) canSee(v *Viewer, _ StatementData) bool {
	return v.Permissions.Has(PermViewStatements)
}

func (statementKind) canMutate(v *Viewer, _ StatementData) bool {
	return v.Permissions.Has(PermModifyOwnStatements)
}

type flagKind struct{}

func (flagKind) Entity() Entity { return EntityFlag }

func (flagKind) canSee(v *Viewer, _ FlagData) bool {
	return v.Permissions.Has(PermDeleteStatements)
}

func (flagKind) canMutate(v *Viewer, d FlagData) bool {
	if d.Content != "" {
		return v.Permissions.Has(PermFlagStatements)
	}
	return v.Permissions.Has(PermDeleteStatements)
}

type likeKind struct{}

func (likeKind) Entity() Entity { return EntityStatementLike }

func (likeKind) canSee(v *Viewer, _ LikeData) bool {
	return v.Permissions.HasAny(AccessLevel1)
}

func (likeKind) canMutate(v *Viewer, _ LikeData) bool {
	return v.Permissions.Has(PermLike)
}
