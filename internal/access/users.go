package access

// UserData is a pending read or write of a user profile. A nil field is not
// part of the change; a non-nil field is, even when it points to "".
type UserData struct {
	ID        string
	Name      *string
	Surname   *string
	Email     *string
	Password  *string
	Thumbnail *string
	Groups    *Groups
}

func (d UserData) fieldCount() int {
	n := 0
	if d.ID != "" {
		n++
	}
	for _, f := range []*string{d.Name, d.Surname, d.Email, d.Password, d.Thumbnail} {
		if f != nil {
			n++
		}
	}
	if d.Groups != nil {
		n++
	}
	return n
}

func (d UserData) changesNames() bool {
	return d.Name != nil || d.Surname != nil
}

func (d UserData) changesProfile() bool {
	return d.changesNames() || d.Thumbnail != nil
}

func (d UserData) changesCredentials() bool {
	return d.Email != nil || d.Password != nil
}

type userKind struct{}

func (userKind) Entity() Entity { return EntityUser }

func (userKind) canSee(v *Viewer, d UserData) bool {
	return v.IsSelf(d.ID) || v.Permissions.HasAny(AccessLevel1)
}

// canMutate allows a change only when every part of it is allowed.
func (userKind) canMutate(v *Viewer, d UserData) bool {
	// an id alone is not a change
	if d.fieldCount() < 2 {
		return false
	}

	if v.IsSelf(d.ID) {
		if !v.Permissions.Has(PermChangeOwnProfile) || d.Groups != nil {
			return false
		}
		if d.changesNames() {
			return v.Groups == SetOf(GroupGuest)
		}
		return true
	}

	if d.changesCredentials() && !v.Groups.Has(GroupSystem) {
		return false
	}

	if d.changesProfile() && !v.Permissions.Has(PermMutateProfiles) {
		return false
	}

	if d.Groups != nil {
		managers := PrivilegesSchema[GroupAdmin].Union(PrivilegesSchema[GroupSuperUser])
		if !v.Permissions.Has(PermMutateProfiles) || !v.Privileges.HasAny(managers) {
			return false
		}
	}

	return true
}
