package main

import (
	"fmt"

	"go.uber.org/zap"

	"ghscout/internal/config"
	"ghscout/internal/controller"
	"ghscout/internal/domain"
	"ghscout/internal/eventbus"
	"ghscout/internal/github"
	"ghscout/internal/logger"
	"ghscout/internal/logic"
)

const userAgent = "ghscout"

// appOptions holds the persistent flags shared by every command
type appOptions struct {
	configPath string
	verbose    bool
	limit      int
}

// app is everything a command needs after startup
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	bus       eventbus.EventBus
	search    *controller.SearchController
	expansion *controller.ExpansionController
}

// newApp loads the configuration and wires the logger, event bus, GitHub
// client and controllers
func newApp(opts appOptions) (*app, error) {
	svc := config.NewConfigService(opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.limit != 0 {
		cfg.ResultLimit = opts.limit
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogFile, opts.verbose)
	log.Info("config loaded",
		zap.String("path", svc.Path()),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Int("result_limit", cfg.ResultLimit),
		zap.Bool("authenticated", cfg.Token != ""))

	bus := eventbus.New(log)
	subscribeAudit(bus, log)

	client, err := github.NewClient(github.Options{
		BaseURL:   cfg.APIBaseURL,
		Token:     cfg.Token,
		UserAgent: userAgent,
		Logger:    log,
	})
	if err != nil {
		bus.Close()
		_ = log.Sync()
		return nil, err
	}

	search := controller.NewSearchController(logic.NewMemorySearchStore(), client,
		controller.WithResultLimit(cfg.ResultLimit),
		controller.WithSearchBus(bus),
		controller.WithSearchLogger(log))
	expansion := controller.NewExpansionController(logic.NewMemoryRepositoryStore(), client, bus, log)

	return &app{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		search:    search,
		expansion: expansion,
	}, nil
}

// Close stops the event bus and flushes the log
func (a *app) Close() {
	a.bus.Close()
	_ = a.log.Sync()
}

// subscribeAudit records every domain event in the log
func subscribeAudit(bus eventbus.EventBus, log *zap.Logger) {
	audit := log.Named("audit")

	bus.Subscribe(domain.EventSearchStarted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchStartedEvent)
		audit.Info("search started", zap.String("query", ev.Query))
	})
	bus.Subscribe(domain.EventSearchResolved, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchResolvedEvent)
		audit.Info("search resolved",
			zap.String("query", ev.Query),
			zap.Int("count", ev.Count),
			zap.String("error", ev.Error),
			zap.Bool("stale", ev.Stale))
	})
	bus.Subscribe(domain.EventRepositoriesRequested, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.RepositoriesRequestedEvent)
		audit.Info("repositories requested",
			zap.Int64("account", ev.AccountID),
			zap.String("login", ev.Login),
			zap.Bool("retry", ev.Retry))
	})
	bus.Subscribe(domain.EventRepositoriesResolved, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.RepositoriesResolvedEvent)
		audit.Info("repositories resolved",
			zap.Int64("account", ev.AccountID),
			zap.Int("count", ev.Count),
			zap.String("error", ev.Error))
	})
}
