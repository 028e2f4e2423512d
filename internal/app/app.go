package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ahouk/winnow/internal/config"
	"github.com/ahouk/winnow/internal/history"
	"github.com/ahouk/winnow/internal/logging"
	"github.com/ahouk/winnow/internal/prefs"
	"github.com/ahouk/winnow/internal/quarry"
	"github.com/ahouk/winnow/internal/state"
	"github.com/ahouk/winnow/internal/ui"
)

// Options configure the winnow application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/winnow/prefs.toml
	Index      string // overrides the configured index when set
	Debug      bool   // widens the log level
}

// Run boots the winnow TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load winnow config: %w", err)
	}

	index := strings.TrimSpace(opts.Index)
	if index == "" {
		index = cfg.Index
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger := logging.New(cfg.LogPath(), opts.Debug)
	defer func() { _ = logger.Sync() }()

	client, err := quarry.NewClient(cfg.Endpoint, quarry.WithAPIKey(cfg.APIKey))
	if err != nil {
		return fmt.Errorf("init quarry client: %w", err)
	}

	store := state.NewStore(state.WithPageSize(userPrefs.PageSize))

	hist, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("query history unavailable", zap.Error(err))
		hist = nil
	} else {
		defer func() { _ = hist.Close() }()
	}

	StartSearcher(ctx, store, client, SearcherOptions{
		Index:   index,
		History: hist,
		Logger:  logger,
	})

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		History:   hist,
		Index:     index,
		Facets:    cfg.Facets,
		ThemeName: userPrefs.Theme,
		PageSize:  userPrefs.PageSize,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	}
	return ui.Run(uiOpts)
}
