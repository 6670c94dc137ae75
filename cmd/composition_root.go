package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	porthttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/backend"
	"logistics/internal/adapters/out/file"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/sessionrepo"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/notification"
	appsession "logistics/internal/core/application/session"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflow"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// CompositionRoot wires the portal for one process.
type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	client   *backend.Client
	queue    *notification.Queue
	sessions *appsession.Store
	registry *workflow.Registry
	closers  []func() error
}

// NewCompositionRoot builds every component and restores the persisted session.
// Log output goes to logOut.
func NewCompositionRoot(ctx context.Context, cfg Config, logOut io.Writer) (*CompositionRoot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:    cfg,
		logger: logging.New(logOut, cfg.LogLevel),
	}

	client, err := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout,
		backend.WithJWTSecret(cfg.BackendJWTSecret),
		backend.WithLogger(root.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}
	root.client = client

	root.queue = notification.NewQueue(cfg.ToastTTL, notification.WithLogger(root.logger))

	repo, err := root.newSessionRepository()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("session repository: %w", err), root.Close())
	}

	root.sessions, err = appsession.NewStore(client, repo, root.queue, root.logger)
	if err != nil {
		return nil, errors.Join(err, root.Close())
	}
	if err = root.sessions.Hydrate(ctx); err != nil {
		root.logger.Warn("could not restore session", "error", err)
	}

	root.registry, err = workflow.NewRegistry(workflow.Dependencies{
		Sessions:      root.sessions,
		Notifier:      root.queue,
		Catalogs:      queries.NewLoadCatalogsQueryHandler(client),
		Details:       queries.NewGetOrderDetailQueryHandler(client),
		Creator:       commands.NewCreateOrderCommandHandler(client),
		StatusUpdater: commands.NewUpdateOrderStatusCommandHandler(client),
		Logger:        root.logger,
	})
	if err != nil {
		return nil, errors.Join(err, root.Close())
	}
	root.sessions.SetOnCleared(root.registry.CloseAll)

	return root, nil
}

func (c *CompositionRoot) newSessionRepository() (ports.SessionRepository, error) {
	switch c.cfg.SessionBackend {
	case SessionBackendRedis:
		repo, err := redis.New(c.cfg.RedisAddr, c.cfg.RedisPassword, c.cfg.RedisDB, c.cfg.AgentID)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, repo.Close)
		return repo, nil

	case SessionBackendPostgres:
		db, err := postgres.Open(postgres.ConnectionConfig{
			Host:     c.cfg.DBHost,
			Port:     c.cfg.DBPort,
			User:     c.cfg.DBUser,
			Password: c.cfg.DBPassword,
			Name:     c.cfg.DBName,
			SSLMode:  c.cfg.DBSslMode,
		})
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() error { return postgres.Close(db) })
		return sessionrepo.NewGormSessionRepository(db, c.cfg.AgentID)

	default:
		return file.NewSessionRepository(c.cfg.SessionFileDir, c.cfg.AgentID)
	}
}

func (c *CompositionRoot) Config() Config {
	return c.cfg
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Queue() *notification.Queue {
	return c.queue
}

func (c *CompositionRoot) Sessions() *appsession.Store {
	return c.sessions
}

func (c *CompositionRoot) Workflows() *workflow.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.client)
}

// CreateHTTPServer returns the echo instance serving the portal API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server, err := porthttp.NewServer(c.sessions, c.queue, c.registry, c.CreateListOrdersQueryHandler(), c.logger)
	if err != nil {
		return nil, err
	}
	return porthttp.NewEcho(server), nil
}

// CreateJobManager schedules toast eviction and session expiry. An expired session
// closes every open workflow.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.sessions, c.registry.CloseAll, c.logger)
}

// Close closes open workflows and releases external connections.
func (c *CompositionRoot) Close() error {
	if c.registry != nil {
		c.registry.CloseAll()
	}
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		closeErrs = append(closeErrs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}
