package ws

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/graph"
	"agora/internal/logx"
	"agora/internal/pubsub"
	"agora/internal/sse"
	"agora/internal/subscriptions"
	"agora/internal/testutil"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app *fiber.App
	hub *subscriptions.Manager
	srv *sse.Server
	ana *access.Viewer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	schema, err := graph.NewSchema()
	require.NoError(t, err)

	hub := subscriptions.NewManager(schema, pubsub.NewLocal(), logx.Nop())
	srv := sse.NewServer(hub, nil, sse.DefaultConfig, logx.Nop())
	t.Cleanup(srv.Close)

	ana := testutil.NewUser("ana", access.GroupVoter)
	users := testutil.NewMemUsers(ana, testutil.NewUser("bob", access.GroupVoter))

	app := fiber.New()
	Routes(app.Group("/agora"), srv, users)

	return &fixture{app: app, hub: hub, srv: srv, ana: ana.Viewer()}
}

func (f *fixture) register(t *testing.T) int {
	t.Helper()

	id, err := f.srv.Register(context.Background(), f.ana, sse.SubscribeRequest{
		Query: `subscription { notifications { id message } }`,
	})
	require.NoError(t, err)
	return id
}

func TestStreamRejectsForeignSubscription(t *testing.T) {
	f := newFixture(t)
	id := f.register(t)

	body, status := testutil.RequestRunner(t, f.app, "GET", "/agora/ws/"+strconv.Itoa(id), nil, testutil.Token(t, "bob"))
	testutil.ResponseErrorCheck(t, errmsg.SSENotAuthorized, body, status)

	body, status = testutil.RequestRunner(t, f.app, "GET", "/agora/ws/0", nil, testutil.Token(t, "ana"))
	testutil.ResponseErrorCheck(t, errmsg.SSENotAuthorized, body, status)

	require.True(t, f.hub.Has(id))
}

func TestFailedUpgradeDropsSubscription(t *testing.T) {
	f := newFixture(t)
	id := f.register(t)

	// a plain GET carries no upgrade headers
	_, status := testutil.RequestRunner(t, f.app, "GET", "/agora/ws/"+strconv.Itoa(id), nil, testutil.Token(t, "ana"))
	require.GreaterOrEqual(t, status, http.StatusBadRequest)
	require.False(t, f.hub.Has(id))
}

func TestStreamOverWebSocket(t *testing.T) {
	f := newFixture(t)
	id := f.register(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = f.app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	t.Cleanup(func() { _ = f.app.Shutdown() })

	url := "ws://" + ln.Addr().String() + "/agora/ws/" + strconv.Itoa(id) + "?authorization=" + *testutil.Token(t, "ana")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	read := func() sse.Frame {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var frame sse.Frame
		require.NoError(t, json.Unmarshal(payload, &frame))
		return frame
	}

	require.Equal(t, sse.Frame{Type: sse.FrameSuccess, SubID: id}, read())

	require.NoError(t, f.hub.Publish(context.Background(), graph.FieldNotifications, pubsub.Message{
		"id": "n-1", "actorId": "bob", "message": "hello",
	}))

	frame := read()
	require.Equal(t, sse.FrameData, frame.Type)
	notification := frame.Data.(map[string]interface{})["notifications"].(map[string]interface{})
	require.Equal(t, "hello", notification["message"])

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return !f.hub.Has(id) && f.srv.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
