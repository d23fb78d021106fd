package sse

import (
	"bufio"
	"encoding/json"
	"errors"

	"agora/internal/subscriptions"
)

// Frame types sent to a subscription stream.
const (
	FrameSuccess   = "SUCCESS"
	FrameData      = "DATA"
	FrameError     = "ERROR"
	FrameKeepAlive = "KEEPALIVE"
)

type Frame struct {
	Type   string   `json:"type"`
	SubID  int      `json:"subId"`
	Data   any      `json:"data,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// Encode renders f as a server-sent event.
func (f Frame) Encode() ([]byte, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(payload)+8)
	out = append(out, "data: "...)
	out = append(out, payload...)
	out = append(out, '\n', '\n')
	return out, nil
}

func errorFrame(err error) Frame {
	var execErr *subscriptions.ExecutionError
	if errors.As(err, &execErr) && len(execErr.Errors) > 0 {
		msgs := make([]string, 0, len(execErr.Errors))
		for _, e := range execErr.Errors {
			msgs = append(msgs, e.Message)
		}
		return Frame{Type: FrameError, Errors: msgs}
	}

	return Frame{Type: FrameError, Errors: []string{err.Error()}}
}

// FrameWriter delivers frames to one connected client.
type FrameWriter interface {
	WriteFrame(f Frame) error
}

type eventStreamWriter struct {
	w *bufio.Writer
}

func (e eventStreamWriter) WriteFrame(f Frame) error {
	b, err := f.Encode()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(b); err != nil {
		return err
	}
	return e.w.Flush()
}
