package models

import "time"

// Event is the audit record of a published domain event.
type Event struct {
	TimeStamp time.Time `json:"timestamp" bson:"timestamp"`

	Action string `bson:"action" json:"action"`

	ActorID string `bson:"actorID" json:"actorID"`

	TargetID string `bson:"targetID" json:"targetID"`
	GroupID  string `bson:"groupID,omitempty" json:"groupID,omitempty"`

	Props map[string]any `bson:"props" json:"props"`

	Key string `bson:"key,omitempty" json:"key,omitempty"`
}
