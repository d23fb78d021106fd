// Package ws streams subscription frames over a WebSocket for clients that
// prefer it to server-sent events.
package ws

import (
	"encoding/json"
	"net/http"

	"agora/internal/env"
	"agora/internal/sse"

	githubws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// Upgrader upgrades HTTP connections to WebSocket connections.
var Upgrader = githubws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		if env.DRAIN_MODE {
			ctx.SetStatusCode(http.StatusServiceUnavailable)
			ctx.SetBodyString(`{"message": "Service is draining - please reconnect to active instance"}`)
			return false
		}
		return true
	},
}

// WriteStatus sends a status message to the websocket client.
func WriteStatus(conn *githubws.Conn, status string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    status,
		"message": message,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

// frameWriter sends each frame as one text message.
type frameWriter struct {
	conn *githubws.Conn
}

func (w frameWriter) WriteFrame(f sse.Frame) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return w.conn.WriteMessage(githubws.TextMessage, payload)
}
