package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrFlagSolved = errors.New("flag already solved")

// Flag is a moderation report against a statement.
type Flag struct {
	ID          string     `json:"id" bson:"_id"`
	StatementID string     `json:"statementId" bson:"statementId"`
	FlaggerID   string     `json:"flaggerId" bson:"flaggerId"`
	Content     string     `json:"content" bson:"content"`
	Solved      bool       `json:"solved" bson:"solved"`
	SolverID    string     `json:"solverId,omitempty" bson:"solverId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	SolvedAt    *time.Time `json:"solvedAt,omitempty" bson:"solvedAt,omitempty"`
}

type FlagStore interface {
	Insert(ctx context.Context, f *Flag) error
	Solve(ctx context.Context, id string, solverID string) (Flag, error)
	List(ctx context.Context, solved *bool) ([]Flag, error)
}

type Flags struct {
	coll *mongo.Collection
}

func NewFlags(coll *mongo.Collection) *Flags {
	return &Flags{coll: coll}
}

func (s *Flags) Insert(ctx context.Context, f *Flag) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, f)
	return err
}

// Solve marks an open flag as solved by solverID.
func (s *Flags) Solve(ctx context.Context, id string, solverID string) (Flag, error) {
	now := time.Now().UTC()

	var f Flag
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "solved": false},
		bson.M{"$set": bson.M{"solved": true, "solverId": solverID, "solvedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return f, err
	}

	count, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return f, err
	}
	if count > 0 {
		return f, ErrFlagSolved
	}
	return f, ErrNotFound
}

func (s *Flags) List(ctx context.Context, solved *bool) ([]Flag, error) {
	filter := bson.M{}
	if solved != nil {
		filter["solved"] = *solved
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	flags := []Flag{}
	if err := cursor.All(ctx, &flags); err != nil {
		return nil, err
	}

	return flags, nil
}
