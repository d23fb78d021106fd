// Package db opens the Mongo and Redis connections the server runs on.
package db

import (
	"context"
	"fmt"
	"time"

	"agora/internal/env"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Collections names the collections backing the stores.
type Collections struct {
	Users      *mongo.Collection
	WorkTeams  *mongo.Collection
	Activities *mongo.Collection
	Flags      *mongo.Collection
	Events     *mongo.Collection
}

type DB struct {
	Client *mongo.Client
	Collections
}

// InitDB connects to Mongo, pings it and ensures the indexes the stores
// depend on.
func InitDB(ctx context.Context, cfg env.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	d := &DB{Client: client}
	d.Users = GetCollection(cfg.MongoDatabase, "users", client)
	d.WorkTeams = GetCollection(cfg.MongoDatabase, "workteams", client)
	d.Activities = GetCollection(cfg.MongoDatabase, "activities", client)
	d.Flags = GetCollection(cfg.MongoDatabase, "flags", client)
	d.Events = GetCollection(cfg.MongoDatabase, "events", client)

	if err := d.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return d, nil
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

func (d *DB) ensureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{d.Users, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{d.Activities, mongo.IndexModel{
			Keys: bson.D{{Key: "workTeamId", Value: 1}, {Key: "createdAt", Value: -1}},
		}},
		{d.Flags, mongo.IndexModel{
			Keys: bson.D{{Key: "solved", Value: 1}, {Key: "createdAt", Value: -1}},
		}},
		{d.Events, mongo.IndexModel{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// InitCache connects to the Redis instance used as the pub/sub transport.
func InitCache(ctx context.Context, cfg env.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
