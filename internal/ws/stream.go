package ws

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"agora/internal/errmsg"
	"agora/internal/models"
	"agora/internal/sse"
	"agora/internal/utils"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

func Routes(app fiber.Router, srv *sse.Server, users models.UserStore) {
	ws := app.Group("/ws", models.ViewerStreamMiddleware(users))

	ws.Get("/:id", func(c fiber.Ctx) error {
		return streamHandler(c, srv)
	})
}

// streamHandler streams a registered subscription over a WebSocket.
// @Summary Stream subscription over WebSocket
// @Description Same frames as the event stream, one JSON text message each.
// @Tags Live
// @Security ViewerAuth
// @Param id path int true "Subscription identifier"
// @Param authorization query string false "Bearer token for clients that cannot set headers"
// @Success 101
// @Failure 404 {object} errmsg._SSENotAuthorized
// @Failure 409 {object} errmsg._SSEAlreadyStreaming
// @Router /agora/ws/{id} [get]
func streamHandler(c fiber.Ctx, srv *sse.Server) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return utils.StatusError(c, errmsg.SSENotAuthorized)
	}

	// claim the stream before upgrading so a rejected claim is a plain HTTP error
	st, serr := srv.Attach(models.ViewerFrom(c), id)
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	return StreamWebSocket(c, func(ctx context.Context, conn *websocket.Conn) {
		srv.Pump(ctx, st, frameWriter{conn: conn})
	}, func() { srv.Drop(st.ID) })
}

type requestCtxProvider interface {
	RequestCtx() *fasthttp.RequestCtx
}

// StreamWebSocket upgrades c and runs streamer with a context cancelled when
// the client goes away. onFail runs when the upgrade itself fails.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, conn *websocket.Conn), onFail func()) error {
	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		onFail()
		return fiber.ErrInternalServerError
	}

	err := Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-closed:
				cancel()
			case <-streamCtx.Done():
			}
		}()

		streamer(streamCtx, conn)

		_ = WriteStatus(conn, "info", "stream ended")
	})
	if err != nil {
		onFail()
	}
	return err
}
