package activities

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/events"
	"agora/internal/logx"
	"agora/internal/models"
	"agora/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app    *fiber.App
	store  *testutil.MemActivities
	events []events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	member := testutil.NewUser("member", access.GroupVoter)
	member.WorkTeams = []string{"wt1"}

	f := &fixture{store: testutil.NewMemActivities()}
	users := testutil.NewMemUsers(
		member,
		testutil.NewUser("outsider", access.GroupViewer),
		testutil.NewUser("guest", access.GroupGuest),
	)

	bus := events.NewBus(logx.Nop())
	bus.Subscribe(events.ActivityCreated, func(_ context.Context, evt events.Event) {
		f.events = append(f.events, evt)
	})

	f.app = fiber.New()
	Routes(f.app.Group("/agora"), &Handlers{Activities: f.store, Users: users, Bus: bus})

	return f
}

func TestCreateActivityPublishes(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/activities",
		testutil.JSON(t, createRequest{Type: "proposal", ObjectID: "p1", WorkTeamID: "wt1"}), testutil.Token(t, "member"))
	require.Equal(t, http.StatusCreated, status)

	var activity models.Activity
	require.NoError(t, json.Unmarshal(body, &activity))
	require.Equal(t, "member", activity.ActorID)

	require.Len(t, f.events, 1)
	evt := f.events[0]
	require.Equal(t, activity.ID, evt.SubjectID)
	require.Equal(t, "wt1", evt.GroupID)
	require.Equal(t, "proposal", evt.Payload["type"])
}

func TestCreateActivityDenials(t *testing.T) {
	f := newFixture(t)
	scoped := testutil.JSON(t, createRequest{Type: "statement", ObjectID: "s1", WorkTeamID: "wt1"})

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/activities", scoped, testutil.Token(t, "guest"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/activities", scoped, testutil.Token(t, "outsider"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/activities",
		testutil.JSON(t, createRequest{Type: "rumour", ObjectID: "x"}), testutil.Token(t, "member"))
	testutil.ResponseErrorCheck(t, errmsg.ActivityInvalidRequest, body, status)

	require.Empty(t, f.events)
}

func TestListActivitiesScopesByMembership(t *testing.T) {
	f := newFixture(t)

	for _, a := range []models.Activity{
		{Type: "proposal", ObjectID: "p1"},
		{Type: "statement", ObjectID: "s1", WorkTeamID: "wt1"},
		{Type: "vote", ObjectID: "v1", WorkTeamID: "wt2"},
	} {
		a := a
		require.NoError(t, f.store.Insert(context.Background(), &a))
	}

	body, status := testutil.RequestRunner(t, f.app, "GET", "/agora/activities", nil, testutil.Token(t, "member"))
	require.Equal(t, http.StatusOK, status)

	var res listResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Activities, 2)
	require.Equal(t, "s1", res.Activities[0].ObjectID)
	require.Equal(t, "p1", res.Activities[1].ObjectID)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/activities?limit=1", nil, testutil.Token(t, "outsider"))
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Activities, 1)
	require.Equal(t, "p1", res.Activities[0].ObjectID)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/activities", nil, testutil.Token(t, "guest"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)
}
