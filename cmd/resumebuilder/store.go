package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// resolveConfig merges the optional config file under environment values.
func resolveConfig(configPath string) (*config.Config, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore builds the configured persistence collaborator and a builder
// session on top of it, with the remote document already loaded.
func openStore(ctx context.Context, cfg *config.Config) (*builder.Store, func(), error) {
	var (
		remote  storage.ResumeStore
		cleanup = func() {}
	)

	if cfg.DatabaseURL != "" {
		uid, err := uuid.Parse(cfg.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid user_id: %w", err)
		}
		pg, err := storage.ConnectPostgres(ctx, cfg.DatabaseURL, uid)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		remote = pg
		cleanup = pg.Close
	} else {
		remote = storage.NewRESTStore(cfg.APIBaseURL, cfg.APIToken, nil)
	}

	store := builder.New(remote, types.PersonalInfo{})
	if cfg.Template != "" {
		store.SetTemplate(cfg.Template)
	}
	if err := store.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}
