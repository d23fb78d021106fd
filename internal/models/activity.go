package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Activity is an entry of the activity feed.
type Activity struct {
	ID         string    `json:"id" bson:"_id"`
	Type       string    `json:"type" bson:"type"`
	ObjectID   string    `json:"objectId" bson:"objectId"`
	ActorID    string    `json:"actorId" bson:"actorId"`
	WorkTeamID string    `json:"workTeamId,omitempty" bson:"workTeamId,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// ActivityFilter selects feed entries. Entries without a work team are
// always included; scoped entries only for the listed teams.
type ActivityFilter struct {
	WorkTeams []string
	Limit     int64
}

type ActivityStore interface {
	Insert(ctx context.Context, a *Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]Activity, error)
}

type Activities struct {
	coll *mongo.Collection
}

func NewActivities(coll *mongo.Collection) *Activities {
	return &Activities{coll: coll}
}

func (s *Activities) Insert(ctx context.Context, a *Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, a)
	return err
}

func (s *Activities) List(ctx context.Context, filter ActivityFilter) ([]Activity, error) {
	scope := bson.A{
		bson.M{"workTeamId": bson.M{"$exists": false}},
	}
	if len(filter.WorkTeams) > 0 {
		scope = append(scope, bson.M{"workTeamId": bson.M{"$in": filter.WorkTeams}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := s.coll.Find(ctx, bson.M{"$or": scope}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}
