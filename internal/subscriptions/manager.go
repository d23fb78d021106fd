// Package subscriptions runs live GraphQL subscriptions fed by hub triggers.
package subscriptions

import (
	"context"
	"fmt"
	"sync"

	"agora/internal/pubsub"

	"github.com/charmbracelet/log"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// Callback receives either a result or an error for one delivered event.
type Callback func(err error, result *graphql.Result)

type SubscribeOptions struct {
	Query          string
	Variables      map[string]interface{}
	OperationName  string
	Context        Context
	ResolveContext ResolveContextFunc
	Callback       Callback
}

type subscription struct {
	id          int
	transportID int
	field       string
	doc         *ast.Document
	opts        SubscribeOptions

	ctx    context.Context
	cancel context.CancelFunc
	mbox   *mailbox
}

// Manager owns the subscription registry. External ids are handed to
// callers; the transport ids they map to never leave the manager.
type Manager struct {
	schema graphql.Schema
	ps     pubsub.PubSub
	logger *log.Logger

	guard Guard

	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscription
	closed bool
}

// Guard decides whether a subscriber may follow a root field. It is checked
// at subscribe time and again, on the resolved context, before each delivery.
type Guard func(field string, c Context) bool

type Option func(*Manager)

func WithGuard(g Guard) Option {
	return func(m *Manager) { m.guard = g }
}

func NewManager(schema graphql.Schema, ps pubsub.PubSub, logger *log.Logger, opts ...Option) *Manager {
	m := &Manager{
		schema: schema,
		ps:     ps,
		logger: logger.With("component", "subscriptions"),
		subs:   make(map[int]*subscription),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) allowed(field string, c Context) bool {
	return m.guard == nil || m.guard(field, c)
}

// Subscribe compiles opts.Query and registers it under its root field. It
// registers nothing when it returns an error.
func (m *Manager) Subscribe(ctx context.Context, opts SubscribeOptions) (int, error) {
	if opts.Context.Viewer == nil {
		return 0, ErrNoViewer
	}

	doc, field, err := m.compile(opts.Query)
	if err != nil {
		return 0, err
	}

	if !m.allowed(field, opts.Context) {
		return 0, ErrForbidden
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return 0, ErrClosed
	}
	m.nextID++
	id := m.nextID
	m.mu.Unlock()

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &subscription{
		id:     id,
		field:  field,
		doc:    doc,
		opts:   opts,
		ctx:    subCtx,
		cancel: cancel,
		mbox:   newMailbox(),
	}

	transportID, err := m.ps.Subscribe(field, func(_ context.Context, msg pubsub.Message) {
		sub.mbox.push(msg)
	}, opts.Context.Viewer.ID)
	if err != nil {
		cancel()
		return 0, fmt.Errorf("register %s subscription: %w", field, err)
	}
	sub.transportID = transportID

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		cancel()
		m.ps.Unsubscribe(transportID)
		return 0, ErrClosed
	}
	m.subs[id] = sub
	m.mu.Unlock()

	go m.run(sub)

	m.logger.Debug("subscribed", "subId", id, "field", field, "viewer", opts.Context.Viewer.ID)

	return id, nil
}

func (m *Manager) compile(query string) (*ast.Document, string, error) {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return nil, "", &ValidationError{Errors: []gqlerrors.FormattedError{gqlerrors.FormatError(err)}}
	}

	if res := graphql.ValidateDocument(&m.schema, doc, nil); !res.IsValid {
		return nil, "", &ValidationError{Errors: res.Errors}
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if op.Operation != ast.OperationTypeSubscription {
			return nil, "", &ValidationError{Errors: []gqlerrors.FormattedError{
				gqlerrors.NewFormattedError("only subscription operations can be registered"),
			}}
		}
		if op.SelectionSet != nil && len(op.SelectionSet.Selections) > 0 {
			if f, ok := op.SelectionSet.Selections[0].(*ast.Field); ok && f.Name != nil {
				return doc, f.Name.Value, nil
			}
		}
		break
	}

	return nil, "", &ValidationError{Errors: []gqlerrors.FormattedError{
		gqlerrors.NewFormattedError("subscription has no root field"),
	}}
}

func (m *Manager) run(sub *subscription) {
	for {
		select {
		case <-sub.ctx.Done():
			return
		case <-sub.mbox.signal:
			for _, msg := range sub.mbox.drain() {
				if sub.ctx.Err() != nil {
					return
				}
				m.deliver(sub, msg)
			}
		}
	}
}

func (m *Manager) deliver(sub *subscription, msg pubsub.Message) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("subscription delivery panicked", "subId", sub.id, "panic", r)
		}
	}()

	c := sub.opts.Context
	if sub.opts.ResolveContext != nil {
		resolved, err := sub.opts.ResolveContext(sub.ctx, c)
		if err != nil {
			m.callback(sub, &ExecutionError{SubscriptionID: sub.id, Err: err}, nil)
			return
		}
		c = resolved
	}

	if !m.allowed(sub.field, c) || !Deliverable(c, msg) {
		return
	}

	res := graphql.Execute(graphql.ExecuteParams{
		Schema:        m.schema,
		Root:          map[string]interface{}(msg),
		AST:           sub.doc,
		OperationName: sub.opts.OperationName,
		Args:          sub.opts.Variables,
		Context:       WithContext(sub.ctx, c),
	})

	if len(res.Errors) > 0 {
		m.callback(sub, &ExecutionError{SubscriptionID: sub.id, Errors: res.Errors}, nil)
		return
	}

	m.callback(sub, nil, res)
}

// callback delivers unless the subscription was cancelled meanwhile.
func (m *Manager) callback(sub *subscription, err error, res *graphql.Result) {
	if sub.ctx.Err() != nil || sub.opts.Callback == nil {
		return
	}
	sub.opts.Callback(err, res)
}

// Unsubscribe stops a subscription. Unknown ids are ignored.
func (m *Manager) Unsubscribe(id int) {
	m.mu.Lock()
	sub, ok := m.subs[id]
	delete(m.subs, id)
	m.mu.Unlock()

	if !ok {
		return
	}

	sub.cancel()
	m.ps.Unsubscribe(sub.transportID)

	m.logger.Debug("unsubscribed", "subId", id)
}

// Publish forwards a trigger to the transport. Delivery happens on the
// subscriptions' own workers.
func (m *Manager) Publish(ctx context.Context, trigger string, msg pubsub.Message) error {
	return m.ps.Publish(ctx, trigger, msg)
}

func (m *Manager) Has(id int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.subs[id]
	return ok
}

// Owner returns the id of the viewer that registered subscription id.
func (m *Manager) Owner(id int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, ok := m.subs[id]
	if !ok {
		return "", false
	}
	return sub.opts.Context.Viewer.ID, true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// Close unsubscribes everything and rejects further subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.Unsubscribe(id)
	}
}
