package viewers

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
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse"

type fixture struct {
	app    *fiber.App
	users  *testutil.MemUsers
	events []events.Event
}

func newFixture(t *testing.T, users ...models.User) *fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	for i := range users {
		users[i].Password = string(hash)
	}

	f := &fixture{users: testutil.NewMemUsers(users...)}

	bus := events.NewBus(logx.Nop())
	for _, name := range []string{events.ViewerLogin, events.UserUpdated} {
		bus.Subscribe(name, func(_ context.Context, evt events.Event) {
			f.events = append(f.events, evt)
		})
	}

	f.app = fiber.New()
	Routes(f.app.Group("/agora"), &Handlers{Users: f.users, Bus: bus})

	return f
}

func TestLogin(t *testing.T) {
	f := newFixture(t, testutil.NewUser("ana", access.GroupVoter))

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/viewers/login",
		testutil.JSON(t, loginRequest{Username: "ana", Password: testPassword}), nil)
	require.Equal(t, http.StatusOK, status)

	var res struct {
		Token  string         `json:"token"`
		Viewer map[string]any `json:"viewer"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotEmpty(t, res.Token)
	require.Equal(t, "ana", res.Viewer["id"])
	require.NotContains(t, res.Viewer, "password")

	require.Len(t, f.events, 1)
	require.Equal(t, events.ViewerLogin, f.events[0].Name)

	var vt models.ViewerToken
	require.NoError(t, vt.ParseToken(res.Token))
	require.Equal(t, "ana", vt.ID)
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t, testutil.NewUser("ana", access.GroupVoter))

	body, status := testutil.RequestRunner(t, f.app, "POST", "/agora/viewers/login",
		testutil.JSON(t, loginRequest{Username: "ana", Password: "wrong"}), nil)
	testutil.ResponseErrorCheck(t, errmsg.ViewerWrongPassword, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/viewers/login",
		testutil.JSON(t, loginRequest{Username: "bob", Password: "whatever"}), nil)
	testutil.ResponseErrorCheck(t, errmsg.ViewerNotExists, body, status)

	body, status = testutil.RequestRunner(t, f.app, "POST", "/agora/viewers/login",
		testutil.JSON(t, loginRequest{}), nil)
	testutil.ResponseErrorCheck(t, errmsg.ViewerInvalidPayload, body, status)

	require.Empty(t, f.events)
}

func TestMe(t *testing.T) {
	f := newFixture(t, testutil.NewUser("ana", access.GroupGuest))

	body, status := testutil.RequestRunner(t, f.app, "GET", "/agora/viewers/me", nil, testutil.Token(t, "ana"))
	require.Equal(t, http.StatusOK, status)

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "ana", user.ID)
}

func TestGetViewerRequiresUserInfo(t *testing.T) {
	f := newFixture(t,
		testutil.NewUser("guest", access.GroupGuest),
		testutil.NewUser("voter", access.GroupVoter),
	)

	body, status := testutil.RequestRunner(t, f.app, "GET", "/agora/viewers/voter", nil, testutil.Token(t, "guest"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	_, status = testutil.RequestRunner(t, f.app, "GET", "/agora/viewers/guest", nil, testutil.Token(t, "guest"))
	require.Equal(t, http.StatusOK, status)

	_, status = testutil.RequestRunner(t, f.app, "GET", "/agora/viewers/guest", nil, testutil.Token(t, "voter"))
	require.Equal(t, http.StatusOK, status)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/viewers/nobody", nil, testutil.Token(t, "voter"))
	testutil.ResponseErrorCheck(t, errmsg.ViewerNotExists, body, status)
}

func TestPatchSelfName(t *testing.T) {
	f := newFixture(t,
		testutil.NewUser("guest", access.GroupGuest),
		testutil.NewUser("viewer", access.GroupViewer),
	)
	name := map[string]any{"name": "Renamed"}

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/guest",
		testutil.JSON(t, name), testutil.Token(t, "guest"))
	require.Equal(t, http.StatusOK, status)

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "Renamed", user.Name)

	body, status = testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/viewer",
		testutil.JSON(t, name), testutil.Token(t, "viewer"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)
}

func TestPatchOwnGroupsIsDenied(t *testing.T) {
	f := newFixture(t, testutil.NewUser("admin", access.GroupAdmin, access.GroupViewer))

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/admin",
		testutil.JSON(t, map[string]any{"groups": []string{"SUPER_USER"}}), testutil.Token(t, "admin"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)
}

func TestPatchEmptyBodyIsDenied(t *testing.T) {
	f := newFixture(t, testutil.NewUser("root", access.GroupSuperUser))

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/root",
		testutil.JSON(t, map[string]any{}), testutil.Token(t, "root"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)
}

func TestPatchGroupsByAdmin(t *testing.T) {
	f := newFixture(t,
		testutil.NewUser("admin", access.GroupAdmin),
		testutil.NewUser("manager", access.GroupMemberManager),
		testutil.NewUser("member", access.GroupViewer),
	)
	promote := testutil.JSON(t, map[string]any{"groups": []string{"viewer", "VOTER"}})

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/member", promote, testutil.Token(t, "manager"))
	testutil.ResponseErrorCheck(t, errmsg.AccessDenied, body, status)

	body, status = testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/member", promote, testutil.Token(t, "admin"))
	require.Equal(t, http.StatusOK, status)

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	require.True(t, user.Viewer().Permissions.Has(access.PermVote))

	require.Len(t, f.events, 1)
	require.Equal(t, events.UserUpdated, f.events[0].Name)
	require.Equal(t, "admin", f.events[0].ActorID)
	require.Equal(t, []string{"VIEWER", "VOTER"}, f.events[0].Payload["groups"])
	require.Equal(t, []string{"VOTER"}, f.events[0].Payload["added"])
	require.Equal(t, []string{}, f.events[0].Payload["removed"])
}

func TestPatchUnknownGroup(t *testing.T) {
	f := newFixture(t, testutil.NewUser("admin", access.GroupAdmin))

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/x",
		testutil.JSON(t, map[string]any{"groups": []string{"OVERLORD"}}), testutil.Token(t, "admin"))
	testutil.ResponseErrorCheck(t, errmsg.ViewerUnknownGroup, body, status)
}

func TestPatchValidatesFields(t *testing.T) {
	f := newFixture(t, testutil.NewUser("guest", access.GroupGuest))

	body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/guest",
		testutil.JSON(t, map[string]any{"email": "not-an-email"}), testutil.Token(t, "guest"))
	testutil.ResponseErrorCheck(t, errmsg.InvalidField("email", "email"), body, status)
}

func TestPatchChecksEveryField(t *testing.T) {
	cases := []struct {
		name   string
		actor  string
		target string
		body   map[string]any
		status int
	}{
		{"self blanks names", "ana", "ana",
			map[string]any{"name": "", "surname": "", "email": "ana@example.com"}, http.StatusForbidden},
		{"thumbnail with groups", "manager", "member",
			map[string]any{"thumbnail": "http://x/a.png", "groups": []string{"SUPER_USER"}}, http.StatusForbidden},
		{"thumbnail with password", "manager", "member",
			map[string]any{"thumbnail": "http://x/a.png", "password": "hunter22"}, http.StatusForbidden},
		{"name with email", "manager", "member",
			map[string]any{"name": "Mallory", "email": "mallory@example.com"}, http.StatusForbidden},
		{"thumbnail only", "manager", "member",
			map[string]any{"thumbnail": "http://x/a.png"}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t,
				testutil.NewUser("ana", access.GroupVoter),
				testutil.NewUser("manager", access.GroupMemberManager),
				testutil.NewUser("member", access.GroupViewer),
			)
			before, err := f.users.ByID(context.Background(), tc.target)
			require.NoError(t, err)

			body, status := testutil.RequestRunner(t, f.app, "PATCH", "/agora/viewers/"+tc.target,
				testutil.JSON(t, tc.body), testutil.Token(t, tc.actor))
			require.Equal(t, tc.status, status, string(body))

			after, err := f.users.ByID(context.Background(), tc.target)
			require.NoError(t, err)
			require.Equal(t, before.Name, after.Name)
			require.Equal(t, before.Surname, after.Surname)
			require.Equal(t, before.Email, after.Email)
			require.Equal(t, before.Password, after.Password)
			require.Equal(t, before.Groups, after.Groups)

			if tc.status == http.StatusForbidden {
				require.Equal(t, before, after)
				require.Empty(t, f.events)
			} else {
				require.Equal(t, "http://x/a.png", after.Thumbnail)
			}
		})
	}
}
