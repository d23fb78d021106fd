package internal

import (
	"context"
	"fmt"

	"agora/internal/activities"
	"agora/internal/db"
	"agora/internal/env"
	"agora/internal/events"
	"agora/internal/flags"
	"agora/internal/graph"
	"agora/internal/models"
	"agora/internal/pubsub"
	"agora/internal/sse"
	"agora/internal/subscriptions"
	"agora/internal/viewers"
	"agora/internal/workteams"
	"agora/internal/ws"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

// Stores are the persistence ports the handlers run on.
type Stores struct {
	Users      models.UserStore
	WorkTeams  models.WorkTeamStore
	Activities models.ActivityStore
	Flags      models.FlagStore
}

type Options struct {
	Stores
	PubSub  pubsub.PubSub
	Emitter *events.Emitter
	SSE     sse.Config
	Logger  *log.Logger
}

// Server is the assembled service: HTTP routes, the event bus and the
// subscription hub behind the live streams.
type Server struct {
	App     *fiber.App
	Bus     *events.Bus
	Hub     *subscriptions.Manager
	Streams *sse.Server

	logger  *log.Logger
	closers []func()
}

// New wires the service around already opened stores.
func New(opts Options) (*Server, error) {
	logger := opts.Logger

	schema, err := graph.NewSchema()
	if err != nil {
		return nil, fmt.Errorf("build subscription schema: %w", err)
	}

	ps := opts.PubSub
	if ps == nil {
		ps = pubsub.NewLocal()
	}

	bus := events.NewBus(logger)
	if opts.Emitter != nil {
		opts.Emitter.Attach(bus, events.All()...)
	}

	hub := subscriptions.NewManager(schema, ps, logger, subscriptions.WithGuard(subscriptions.AccessGuard))
	subscriptions.RelayActivities(bus, hub)
	subscriptions.RelayNotifications(bus, hub)
	subscriptions.RelayFlags(bus, hub)
	events.NotifyGroupChanges(bus)

	streams := sse.NewServer(hub, reloadViewer(opts.Users), opts.SSE, logger)

	app := fiber.New()
	agora := app.Group("/agora")

	agora.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	agora.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	viewers.Routes(agora, &viewers.Handlers{Users: opts.Users, Bus: bus})
	workteams.Routes(agora, &workteams.Handlers{Teams: opts.WorkTeams, Users: opts.Users, Bus: bus})
	activities.Routes(agora, &activities.Handlers{Activities: opts.Activities, Users: opts.Users, Bus: bus})
	flags.Routes(agora, &flags.Handlers{Flags: opts.Flags, Users: opts.Users, Bus: bus})
	sse.Routes(agora, streams, opts.Users)
	ws.Routes(agora, streams, opts.Users)

	s := &Server{
		App:     app,
		Bus:     bus,
		Hub:     hub,
		Streams: streams,
		logger:  logger,
	}
	s.closers = append(s.closers, streams.Close, hub.Close)
	if opts.Emitter != nil {
		s.closers = append(s.closers, opts.Emitter.Close)
	}

	return s, nil
}

// reloadViewer refreshes a subscriber's capabilities and work teams before
// each delivery.
func reloadViewer(users models.UserStore) subscriptions.ResolveContextFunc {
	return func(ctx context.Context, c subscriptions.Context) (subscriptions.Context, error) {
		u, err := users.ByID(ctx, c.Viewer.ID)
		if err != nil {
			return c, fmt.Errorf("reload viewer %s: %w", c.Viewer.ID, err)
		}
		return subscriptions.Context{Viewer: u.Viewer()}, nil
	}
}

// Close stops the streams and the hub, then flushes pending audit events.
func (s *Server) Close() {
	for _, c := range s.closers {
		c()
	}
}

// SetupApp loads configuration, opens Mongo (and Redis when it carries the
// pub/sub traffic) and wires the service on top.
func SetupApp(ctx context.Context, cfg env.Config, logger *log.Logger) (*Server, error) {
	database, err := db.InitDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := Options{
		Stores: Stores{
			Users:      models.NewUsers(database.Users),
			WorkTeams:  models.NewWorkTeams(database.WorkTeams),
			Activities: models.NewActivities(database.Activities),
			Flags:      models.NewFlags(database.Flags),
		},
		Emitter: events.NewEmitter(
			database.Events,
			events.SelectConfig(cfg.Deployment).WithBatching(cfg.EventBatchSize, cfg.EventFlushEvery),
			logger.With("component", "events"),
		),
		SSE: sse.Config{
			KeepAlive:     cfg.SSEKeepAlive,
			Buffer:        cfg.SSEBuffer,
			AttachTimeout: cfg.SSEAttachTimeout,
		},
		Logger: logger,
	}

	var closeRedis func()
	if cfg.PubSubDriver == "redis" {
		rdb, err := db.InitCache(ctx, cfg)
		if err != nil {
			opts.Emitter.Close()
			_ = database.Close(context.Background())
			return nil, err
		}

		ps, err := pubsub.NewRedis(ctx, rdb, cfg.PubSubPrefix, logger)
		if err != nil {
			opts.Emitter.Close()
			_ = rdb.Close()
			_ = database.Close(context.Background())
			return nil, err
		}
		opts.PubSub = ps
		closeRedis = func() {
			_ = ps.Close()
			_ = rdb.Close()
		}
	}

	s, err := New(opts)
	if err != nil {
		opts.Emitter.Close()
		if closeRedis != nil {
			closeRedis()
		}
		_ = database.Close(context.Background())
		return nil, err
	}

	if closeRedis != nil {
		s.closers = append(s.closers, closeRedis)
	}
	s.closers = append(s.closers, func() {
		if err := database.Close(context.Background()); err != nil {
			logger.Warn("mongo disconnect failed", "err", err)
		}
	})

	logger.Info("service wired", "deployment", cfg.Deployment, "pubsub", cfg.PubSubDriver)

	return s, nil
}
