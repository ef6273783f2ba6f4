package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/gl_gateway/internal/adapters/database/pgsql"
	"github.com/SscSPs/gl_gateway/internal/adapters/idempiere"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/core/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
	"github.com/SscSPs/gl_gateway/pkg/database"
)

// app holds what every command builds from the configuration.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	sessions session.Store
	repos    portsrepo.RepositoryProvider
	services *portssvc.ServiceContainer
	closers  []func()
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// newApp wires the session store, ERP repositories, the optional journal-run log and the services.
// withSessions selects the configured session store; the CLI import keeps its session in memory.
func newApp(ctx context.Context, logger *slog.Logger, withSessions bool) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	a := &app{cfg: cfg, logger: logger}

	a.sessions = session.NewMemoryStore()
	if withSessions && cfg.RedisURL != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() {
			if cerr := client.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		})
		a.sessions = session.NewRedisStore(client, session.NewSealer(cfg.SessionSecret))
		logger.Info("Sessions stored in redis")
	}

	client := idempiere.NewClient(cfg.ERPBaseURL, cfg.ERP, a.sessions)
	a.repos = idempiere.NewRepositoryProvider(client)

	if cfg.DatabaseURL != "" {
		pool, err := a.openRunLog(ctx)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.repos.RunRepo = pgsql.NewJournalRunRepository(pool)
	}

	a.services = services.NewServiceContainer(cfg, a.repos, a.sessions)
	return a, nil
}

func (a *app) openRunLog(ctx context.Context) (*pgxpool.Pool, error) {
	if a.cfg.RunMigrations {
		if _, err := pgsql.RunMigrations(a.cfg.DatabaseURL, pgsql.DefaultMigrationsPath, a.logger); err != nil {
			return nil, err
		}
	}
	pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a.closers = append(a.closers, func() { database.ClosePgxPool(pool, a.logger) })
	return pool, nil
}

// Close releases connections in reverse order of creation.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
