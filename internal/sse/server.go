// Package sse streams subscription results to clients as server-sent events.
package sse

import (
	"context"
	"errors"
	"sync"
	"time"

	"agora/internal/access"
	"agora/internal/errmsg"
	"agora/internal/subscriptions"

	"github.com/charmbracelet/log"
	"github.com/graphql-go/graphql"
)

type Config struct {
	KeepAlive     time.Duration
	Buffer        int
	AttachTimeout time.Duration
}

var DefaultConfig = Config{
	KeepAlive:     30 * time.Second,
	Buffer:        64,
	AttachTimeout: time.Minute,
}

// Server owns the streams of live subscriptions. A subscription is created
// by a registration request and then drained by exactly one stream request.
type Server struct {
	hub     *subscriptions.Manager
	resolve subscriptions.ResolveContextFunc
	cfg     Config
	logger  *log.Logger

	mu      sync.Mutex
	streams map[int]*Stream

	done      chan struct{}
	closeOnce sync.Once
}

func NewServer(hub *subscriptions.Manager, resolve subscriptions.ResolveContextFunc, cfg Config, logger *log.Logger) *Server {
	if cfg.KeepAlive <= 0 {
		cfg.KeepAlive = DefaultConfig.KeepAlive
	}
	if cfg.AttachTimeout <= 0 {
		cfg.AttachTimeout = DefaultConfig.AttachTimeout
	}

	return &Server{
		hub:     hub,
		resolve: resolve,
		cfg:     cfg,
		logger:  logger.With("component", "sse"),
		streams: make(map[int]*Stream),
		done:    make(chan struct{}),
	}
}

// Register subscribes viewer to query and prepares its stream.
func (s *Server) Register(ctx context.Context, viewer *access.Viewer, req SubscribeRequest) (int, error) {
	st := newStream(viewer.ID, s.cfg.Buffer)

	id, err := s.hub.Subscribe(ctx, subscriptions.SubscribeOptions{
		Query:          req.Query,
		Variables:      req.Variables,
		OperationName:  req.OperationName,
		Context:        subscriptions.Context{Viewer: viewer},
		ResolveContext: s.resolve,
		Callback: func(err error, res *graphql.Result) {
			frame := Frame{Type: FrameData}
			if err != nil {
				frame = errorFrame(err)
			} else {
				frame.Data = res.Data
			}

			if !st.push(frame) {
				s.logger.Warn("stream buffer full, dropping frame", "viewer", st.Owner, "type", frame.Type)
			}
		},
	})
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	st.ID = id
	s.streams[id] = st
	st.expiry = time.AfterFunc(s.cfg.AttachTimeout, func() { s.expire(id) })
	s.mu.Unlock()

	return id, nil
}

// Attach claims the stream of subscription id for viewer.
func (s *Server) Attach(viewer *access.Viewer, id int) (*Stream, errmsg.StatusError) {
	if !access.CanAccess(viewer, access.ResourceSSE) {
		return nil, errmsg.SSENotAuthorized
	}

	owner, ok := s.hub.Owner(id)
	if !ok || owner != viewer.ID {
		return nil, errmsg.SSENotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.streams[id]
	if !ok {
		return nil, errmsg.SSENotAuthorized
	}
	if st.attached {
		return nil, errmsg.SSEAlreadyStreaming
	}

	st.attached = true
	if st.expiry != nil {
		st.expiry.Stop()
	}

	return st, errmsg.EmptyStatusError
}

// Pump writes the stream's frames to w until the client goes away, ctx is
// cancelled or the server closes. The subscription is removed on return.
func (s *Server) Pump(ctx context.Context, st *Stream, w FrameWriter) {
	defer s.Drop(st.ID)

	write := func(f Frame) bool {
		f.SubID = st.ID
		if err := w.WriteFrame(f); err != nil {
			s.logger.Debug("stream write failed", "subId", st.ID, "err", err)
			return false
		}
		return true
	}

	if !write(Frame{Type: FrameSuccess}) {
		return
	}

	ticker := time.NewTicker(s.cfg.KeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-st.closed:
			return
		case f := <-st.frames:
			if !write(f) {
				return
			}
		case <-ticker.C:
			if !write(Frame{Type: FrameKeepAlive}) {
				return
			}
		}
	}
}

// Drop closes the stream of subscription id and unsubscribes it.
func (s *Server) Drop(id int) {
	s.mu.Lock()
	st, ok := s.streams[id]
	delete(s.streams, id)
	s.mu.Unlock()

	if ok {
		st.close()
		if st.expiry != nil {
			st.expiry.Stop()
		}
	}

	s.hub.Unsubscribe(id)
}

func (s *Server) expire(id int) {
	s.mu.Lock()
	st, ok := s.streams[id]
	attached := ok && st.attached
	s.mu.Unlock()

	if ok && !attached {
		s.logger.Info("subscription never streamed, dropping", "subId", id)
		s.Drop(id)
	}
}

// Len returns the number of open streams.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.streams)
}

// Close ends every stream.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })

	s.mu.Lock()
	ids := make([]int, 0, len(s.streams))
	for id := range s.streams {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.Drop(id)
	}
}

// IsValidation reports whether err is a rejected subscription query.
func IsValidation(err error) (*subscriptions.ValidationError, bool) {
	var verr *subscriptions.ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}
