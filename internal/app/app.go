// Package app assembles the blob store, employee store and controller from
// a Config. Both the HTTP server and the CLI start here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/csg33k/employee-register/internal/adapters/memory"
	redisadapter "github.com/csg33k/employee-register/internal/adapters/redis"
	sqliteadapter "github.com/csg33k/employee-register/internal/adapters/sqlite"
	"github.com/csg33k/employee-register/internal/config"
	"github.com/csg33k/employee-register/internal/controller"
	"github.com/csg33k/employee-register/internal/employees"
	"github.com/csg33k/employee-register/internal/ports"
)

type App struct {
	Config     *config.Config
	Log        *slog.Logger
	Blobs      ports.BlobStore
	Store      *employees.Store
	Controller *controller.Controller
}

// NewLogger returns a text logger on stderr at the configured level.
func NewLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	blobs, err := openBlobs(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := employees.Open(ctx, blobs, cfg.StoreKey, logger)
	if err != nil {
		blobs.Close()
		return nil, fmt.Errorf("load employees: %w", err)
	}
	logger.Info("store ready", "driver", cfg.StoreDriver, "key", cfg.StoreKey)
	return &App{
		Config:     cfg,
		Log:        logger,
		Blobs:      blobs,
		Store:      store,
		Controller: controller.New(store, logger),
	}, nil
}

func (a *App) Close() error {
	return a.Blobs.Close()
}

func openBlobs(ctx context.Context, cfg *config.Config) (ports.BlobStore, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverRedis:
		s, err := redisadapter.New(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqliteadapter.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
