package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ahouk/winnow/internal/controller"
	"github.com/ahouk/winnow/internal/history"
	"github.com/ahouk/winnow/internal/quarry"
	"github.com/ahouk/winnow/internal/state"
)

const searchTimeout = 10 * time.Second

// SearcherOptions configure the background searcher.
type SearcherOptions struct {
	Index   string
	History *history.Store // optional; successful queries are recorded
	Logger  *zap.Logger    // optional; defaults to nop
}

// searchIntent is the slice of state the searcher reacts to. A change in the
// request id means a search was committed; the rest is what to send.
type searchIntent struct {
	RequestID string              `json:"requestId"`
	Query     string              `json:"query"`
	Offset    int                 `json:"offset"`
	Limit     int                 `json:"limit"`
	Facets    []string            `json:"facets"`
	Filters   map[string][]string `json:"filters"`
}

func deriveIntent(s state.State) searchIntent {
	return searchIntent{
		RequestID: s.Query.RequestID,
		Query:     s.Query.Text,
		Offset:    s.Page.Offset,
		Limit:     s.Page.Size,
		Facets:    s.Facets.Order,
		Filters:   s.Facets.Filters(),
	}
}

// StartSearcher launches a background goroutine that executes committed
// search intents against the API and dispatches the outcomes. It returns
// immediately; the goroutine exits when ctx is cancelled.
//
// The searcher observes the store through a Controller, so uncommitted
// dispatches (typing, stats updates, fulfilments) never wake it. Bursts of
// intents coalesce: only the latest one is executed.
func StartSearcher(ctx context.Context, store *state.Store, client quarry.SearchFetcher, opts SearcherOptions) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &searcher{
		store:   store,
		client:  client,
		index:   opts.Index,
		history: opts.History,
		logger:  logger,
		intents: make(chan searchIntent, 1),
	}

	intentController := controller.New(store, deriveIntent, controller.WithLogger(logger))
	unsubscribe := intentController.Subscribe(func() {
		s.offer(intentController.State())
	})

	go func() {
		defer unsubscribe()
		s.warmup(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case intent := <-s.intents:
				if intent.RequestID == "" {
					continue
				}
				s.execute(ctx, intent)
			}
		}
	}()
}

type searcher struct {
	store   *state.Store
	client  quarry.SearchFetcher
	index   string
	history *history.Store
	logger  *zap.Logger
	intents chan searchIntent
}

// offer replaces any queued intent with the newer one. Never blocks.
func (s *searcher) offer(intent searchIntent) {
	for {
		select {
		case s.intents <- intent:
			return
		default:
			select {
			case <-s.intents:
			default:
			}
		}
	}
}

func (s *searcher) execute(ctx context.Context, intent searchIntent) {
	reqCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	resp, err := s.client.Search(reqCtx, s.index, quarry.SearchRequest{
		Query:     intent.Query,
		Offset:    intent.Offset,
		Limit:     intent.Limit,
		Facets:    intent.Facets,
		Filters:   intent.Filters,
		RequestID: intent.RequestID,
	})
	if err != nil {
		s.logger.Warn("search failed",
			zap.String("request_id", intent.RequestID),
			zap.Error(err))
		s.store.Dispatch(state.SearchRejected{RequestID: intent.RequestID, Err: err.Error()})
		return
	}

	s.store.Dispatch(state.SearchFulfilled{RequestID: intent.RequestID, Response: *resp})

	if s.history != nil {
		if err := s.history.Record(intent.Query, resp.Total); err != nil {
			s.logger.Warn("record history failed", zap.Error(err))
		}
	}
}

// warmup fetches daemon health and index stats concurrently and publishes
// them for the status bar. Failures are logged, not fatal: the daemon may
// simply not be up yet.
func (s *searcher) warmup(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	var health *quarry.HealthResponse
	var stats *quarry.IndexStats

	g, gctx := errgroup.WithContext(reqCtx)
	g.Go(func() error {
		var err error
		health, err = s.client.FetchHealth(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.client.FetchStats(gctx, s.index)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("warmup failed", zap.Error(err))
		return
	}

	s.store.Dispatch(state.StatsUpdated{
		Stats:   *stats,
		Healthy: health.Healthy(),
		Version: health.Version,
	})
}
