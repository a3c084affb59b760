// Package app opens the stores selected by the configuration and hands them
// to the TUI, the CLI and the MCP server.
package app

import (
	"context"
	"errors"
	"fmt"

	charmlog "github.com/charmbracelet/log"

	"kennel/internal/adapters/cache"
	"kennel/internal/adapters/memory"
	"kennel/internal/adapters/redis"
	"kennel/internal/adapters/sqlite"
	"kennel/internal/application/commands"
	"kennel/internal/config"
	"kennel/internal/logging"
	"kennel/internal/ports"
)

// Services holds the opened adapters of one process
type Services struct {
	Config *config.Config
	Logger *charmlog.Logger
	DB     *sqlite.DB
	Repo   ports.EntityRepository
	Prefs  ports.PreferenceStore

	closers []func() error
}

// Open initializes the logger, the database and the preference backend
func Open(ctx context.Context, cfg *config.Config) (*Services, error) {
	logger := logging.Init(logging.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	db, err := sqlite.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	s := &Services{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Repo:    sqlite.NewRepository(db),
		closers: []func() error{db.Close},
	}

	prefs, err := s.openPrefs(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Prefs = prefs

	logger.Debug("services ready", "db", db.Path(), "prefs", cfg.Prefs.Backend, "cache", cfg.Prefs.CacheSize)
	return s, nil
}

func (s *Services) openPrefs(ctx context.Context) (ports.PreferenceStore, error) {
	pc := s.Config.Prefs

	var store ports.PreferenceStore
	switch pc.Backend {
	case config.BackendSQLite:
		store = sqlite.NewPreferenceStore(s.DB)
	case config.BackendRedis:
		rs, err := redis.Dial(ctx, pc.RedisAddr, pc.RedisDB, pc.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to open preference store: %w", err)
		}
		s.closers = append(s.closers, rs.Close)
		store = rs
	case config.BackendMemory:
		return memory.NewPreferenceStore(), nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", pc.Backend)
	}

	if pc.CacheSize == 0 {
		return store, nil
	}
	cached, err := cache.NewPreferenceStore(store, pc.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// ListDefaults returns the configured list defaults
func (s *Services) ListDefaults() commands.ListDefaults {
	return commands.ListDefaults{
		PageSize: s.Config.List.PageSize,
		SortKey:  s.Config.List.SortKey,
		Logger:   s.Logger,
	}
}

// Close releases everything Open acquired, newest first
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
