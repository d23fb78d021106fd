package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkTeam struct {
	ID            string    `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	CoordinatorID string    `json:"coordinatorId,omitempty" bson:"coordinatorId,omitempty"`
	Members       []string  `json:"members" bson:"members"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

type WorkTeamPatch struct {
	Name          *string
	CoordinatorID *string
}

type WorkTeamStore interface {
	ByID(ctx context.Context, id string) (WorkTeam, error)
	Insert(ctx context.Context, wt *WorkTeam) error
	Update(ctx context.Context, id string, patch WorkTeamPatch) (WorkTeam, error)
	SetMember(ctx context.Context, teamID string, userID string, member bool) error
}

type WorkTeams struct {
	coll *mongo.Collection
}

func NewWorkTeams(coll *mongo.Collection) *WorkTeams {
	return &WorkTeams{coll: coll}
}

func (s *WorkTeams) ByID(ctx context.Context, id string) (WorkTeam, error) {
	var wt WorkTeam
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&wt)
	return wt, notFound(err)
}

func (s *WorkTeams) Insert(ctx context.Context, wt *WorkTeam) error {
	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	wt.CreatedAt = now
	wt.UpdatedAt = now
	if wt.Members == nil {
		wt.Members = []string{}
	}

	_, err := s.coll.InsertOne(ctx, wt)
	return err
}

func (s *WorkTeams) Update(ctx context.Context, id string, patch WorkTeamPatch) (WorkTeam, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.CoordinatorID != nil {
		set["coordinatorId"] = *patch.CoordinatorID
	}

	var wt WorkTeam
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&wt)

	return wt, notFound(err)
}

func (s *WorkTeams) SetMember(ctx context.Context, teamID string, userID string, member bool) error {
	op := "$pull"
	if member {
		op = "$addToSet"
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": teamID},
		bson.M{op: bson.M{"members": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
