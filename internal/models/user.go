package models

import (
	"context"
	"slices"
	"time"

	"agora/internal/access"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// User is a member account. Capability masks are stored raw and decoded
// through the access package.
type User struct {
	ID        string `json:"id" bson:"_id"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"-" bson:"password"`
	Name      string `json:"name" bson:"name"`
	Surname   string `json:"surname" bson:"surname"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`

	Groups      uint64 `json:"groups" bson:"groups"`
	Permissions uint64 `json:"permissions" bson:"permissions"`
	Privileges  uint64 `json:"privileges" bson:"privileges"`

	WorkTeams []string `json:"workTeams" bson:"workTeams"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SetGroups replaces the user's groups and recomputes the capabilities they
// grant.
func (u *User) SetGroups(groups access.Groups) {
	perms, privs := access.GrantsFor(groups)
	u.Groups = groups.Bits()
	u.Permissions = perms.Bits()
	u.Privileges = privs.Bits()
}

// Viewer returns the principal used for authorization decisions.
func (u User) Viewer() *access.Viewer {
	return &access.Viewer{
		ID:          u.ID,
		Groups:      access.FromBits[access.Group](u.Groups),
		Permissions: access.FromBits[access.Permission](u.Permissions),
		Privileges:  access.FromBits[access.Privilege](u.Privileges),
		WorkTeams:   slices.Clone(u.WorkTeams),
	}
}

// GroupNames lists the user's groups by name.
func (u User) GroupNames() []string {
	flags := access.FromBits[access.Group](u.Groups).Flags()
	names := make([]string, 0, len(flags))
	for _, g := range flags {
		names = append(names, g.String())
	}
	return names
}

// UserPatch holds the profile fields to change. Nil fields are kept.
type UserPatch struct {
	Name      *string
	Surname   *string
	Email     *string
	Password  *string
	Thumbnail *string
	Groups    *access.Groups
}

type UserStore interface {
	ByID(ctx context.Context, id string) (User, error)
	ByUsername(ctx context.Context, username string) (User, error)
	Insert(ctx context.Context, u *User) error
	Update(ctx context.Context, id string, patch UserPatch) (User, error)
	SetWorkTeam(ctx context.Context, userID string, teamID string, member bool) error
}

type Users struct {
	coll *mongo.Collection
}

func NewUsers(coll *mongo.Collection) *Users {
	return &Users{coll: coll}
}

func (s *Users) ByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, notFound(err)
}

func (s *Users) ByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	return u, notFound(err)
}

func (s *Users) Insert(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.WorkTeams == nil {
		u.WorkTeams = []string{}
	}

	_, err := s.coll.InsertOne(ctx, u)
	return err
}

func (s *Users) Update(ctx context.Context, id string, patch UserPatch) (User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	setIf := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setIf("name", patch.Name)
	setIf("surname", patch.Surname)
	setIf("email", patch.Email)
	setIf("password", patch.Password)
	setIf("thumbnail", patch.Thumbnail)

	if patch.Groups != nil {
		var scratch User
		scratch.SetGroups(*patch.Groups)
		set["groups"] = scratch.Groups
		set["permissions"] = scratch.Permissions
		set["privileges"] = scratch.Privileges
	}

	var u User
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)

	return u, notFound(err)
}

func (s *Users) SetWorkTeam(ctx context.Context, userID string, teamID string, member bool) error {
	op := "$pull"
	if member {
		op = "$addToSet"
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{op: bson.M{"workTeams": teamID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
