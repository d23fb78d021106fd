package workteams

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
	teams  *testutil.MemWorkTeams
	users  *testutil.MemUsers
	events []events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		teams: testutil.NewMemWorkTeams(models.WorkTeam{ID: "wt1", Name: "Budget", Members: []string{}}),
		users: testutil.NewMemUsers(
			testutil.NewUser("admin", access.GroupAdmin),
			testutil.NewUser("voter", access.GroupVoter),
			testutil.NewUser("guest", access.GroupGuest),
			testutil.NewUser("system", access.GroupSystem),
		),
	}

	bus := events.NewBus(logx.Nop())
	for _, name := range events.All() {
		bus.Subscribe(name, func(_ context.Context, evt events.Event) {
			f.events = append(f.events, evt)
		})
	}

	f.app = fiber.New()
	Routes(f.app.Group("/agora"), &Handlers{Teams: f.teams, Users: f.users, Bus: bus})

	return f
}

func TestCreateWorkTeam(t *testing.T) {
	f := newFixture(t)
	payload := testutil.JSON(t, createRequest{Name: "Housing"})

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams", payload, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/workteams", payload, testutil.Token(t, "admin"))
	require.Equal(t, http.StatusCreated, status)

	var wt models.WorkTeam
	require.NoError(t, json.Unmarshal(body, &wt))
	require.Equal(t, "Housing", wt.Name)
	require.NotEmpty(t, wt.ID)

	require.Len(t, f.events, 1)
	require.Equal(t, events.WorkTeamCreated, f.events[0].Name)
	require.Equal(t, wt.ID, f.events[0].SubjectID)
}

func TestCreateWorkTeamValidates(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams",
		testutil.JSON(t, createRequest{}), testutil.Token(t, "admin"))
	testutil.ResponseErrorCheck(t, errmsg.WorkTeamInvalidRequest, body, status)
}

func TestPatchWorkTeam(t *testing.T) {
	f := newFixture(t)
	payload := testutil.JSON(t, map[string]any{"coordinatorId": "voter"})

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/workteams/wt1", payload, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "PATCH", "/agora/workteams/wt1", payload, testutil.Token(t, "admin"))
	require.Equal(t, http.StatusOK, status)

	var wt models.WorkTeam
	require.NoError(t, json.Unmarshal(body, &wt))
	require.Equal(t, "voter", wt.CoordinatorID)

	body, status = testutil.RequestRunner(t, f.app, "PATCH", "/agora/workteams/missing", payload, testutil.Token(t, "admin"))
	testutil.ResponseErrorCheck(t, errmsg.WorkTeamNotFound, body, status)
}

func TestJoinAndLeave(t *testing.T) {
	f := newFixture(t)
	token := testutil.Token(t, "voter")

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/wt1/join", nil, token)
	require.Equal(t, http.StatusOK, status)

	var wt models.WorkTeam
	require.NoError(t, json.Unmarshal(body, &wt))
	require.Equal(t, []string{"voter"}, wt.Members)

	user, err := f.users.ByID(context.Background(), "voter")
	require.NoError(t, err)
	require.True(t, user.Viewer().InWorkTeam("wt1"))

	_, status = testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/wt1/leave", nil, token)
	require.Equal(t, http.StatusOK, status)

	user, err = f.users.ByID(context.Background(), "voter")
	require.NoError(t, err)
	require.False(t, user.Viewer().InWorkTeam("wt1"))

	require.Len(t, f.events, 2)
	require.Equal(t, events.WorkTeamJoined, f.events[0].Name)
	require.Equal(t, events.WorkTeamLeft, f.events[1].Name)
	require.Equal(t, "wt1", f.events[1].GroupID)
}

func TestJoinRequiresBasicAccess(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/wt1/join", nil, testutil.Token(t, "guest"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/nope/join", nil, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.WorkTeamNotFound, body, status)
}

func TestNotify(t *testing.T) {
	f := newFixture(t)
	payload := testutil.JSON(t, notifyRequest{Message: "meeting at 6", RecipientID: "voter"})

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/wt1/notify", payload, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/wt1/notify", payload, testutil.Token(t, "system"))
	require.Equal(t, http.StatusAccepted, status)

	var res notifyResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotEmpty(t, res.ID)

	require.Len(t, f.events, 1)
	evt := f.events[0]
	require.Equal(t, events.NotificationCreated, evt.Name)
	require.Equal(t, res.ID, evt.SubjectID)
	require.Equal(t, "wt1", evt.GroupID)
	require.Equal(t, "meeting at 6", evt.Payload["message"])
	require.Equal(t, "voter", evt.Payload["recipientId"])
}

func TestNotifyUnknownTeam(t *testing.T) {
	f := newFixture(t)

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/workteams/ghost/notify",
		testutil.JSON(t, notifyRequest{Message: "hi"}), testutil.Token(t, "admin"))
	testutil.ResponseErrorCheck(t, errmsg.WorkTeamNotFound, body, status)
	require.Empty(t, f.events)
}
