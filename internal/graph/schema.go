// Package graph holds the GraphQL schema served to live subscriptions.
package graph

import (
	"agora/internal/pubsub"

	"github.com/graphql-go/graphql"
)

// Subscription root fields. Each one doubles as the hub trigger that feeds it.
const (
	FieldActivities    = "activities"
	FieldNotifications = "notifications"
	FieldFlags         = "flags"
)

var activityEventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ActivityEvent",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"type":       &graphql.Field{Type: graphql.String},
		"actorId":    &graphql.Field{Type: graphql.String},
		"workTeamId": &graphql.Field{Type: graphql.String},
		"objectId":   &graphql.Field{Type: graphql.String},
	},
})

var notificationEventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "NotificationEvent",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"actorId":    &graphql.Field{Type: graphql.String},
		"workTeamId": &graphql.Field{Type: graphql.String},
		"message":    &graphql.Field{Type: graphql.String},
	},
})

var flagEventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FlagEvent",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"actorId":     &graphql.Field{Type: graphql.String},
		"statementId": &graphql.Field{Type: graphql.String},
		"solved":      &graphql.Field{Type: graphql.Boolean},
	},
})

// resolveRoot hands the published message to the selected event type.
func resolveRoot(p graphql.ResolveParams) (interface{}, error) {
	switch src := p.Source.(type) {
	case pubsub.Message:
		return map[string]interface{}(src), nil
	case map[string]interface{}:
		return src, nil
	default:
		return nil, nil
	}
}

// NewSchema builds the subscription schema. The query root only exists
// because a schema needs one.
func NewSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ping": &graphql.Field{
				Type: graphql.String,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					return "pong", nil
				},
			},
		},
	})

	subscription := graphql.NewObject(graphql.ObjectConfig{
		Name: "Subscription",
		Fields: graphql.Fields{
			FieldActivities: &graphql.Field{
				Type:    activityEventType,
				Resolve: resolveRoot,
			},
			FieldNotifications: &graphql.Field{
				Type:    notificationEventType,
				Resolve: resolveRoot,
			},
			FieldFlags: &graphql.Field{
				Type:    flagEventType,
				Resolve: resolveRoot,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:        query,
		Subscription: subscription,
	})
}
