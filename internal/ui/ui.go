package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ahouk/winnow/internal/controller"
	"github.com/ahouk/winnow/internal/history"
	"github.com/ahouk/winnow/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	History   *history.Store // nil disables the recent-queries overlay
	Index     string
	Facets    []string
	ThemeName string
	PageSize  int
	PrefsPath string
	Logger    *zap.Logger
}

// controllers bundles the view controllers the model reads from.
type controllers struct {
	searchBox *controller.SearchBox
	facets    []*controller.Facet
	results   *controller.ResultList
	pager     *controller.Pager
	summary   *controller.QuerySummary
}

func newControllers(store *state.Store, facets []string, logger *zap.Logger) controllers {
	opt := controller.WithLogger(logger)
	c := controllers{
		searchBox: controller.NewSearchBox(store, opt),
		results:   controller.NewResultList(store, opt),
		pager:     controller.NewPager(store, opt),
		summary:   controller.NewQuerySummary(store, opt),
	}
	for _, field := range facets {
		c.facets = append(c.facets, controller.NewFacet(store, field, opt))
	}
	return c
}

// subscribe registers one listener across every controller and returns a
// combined unsubscribe. The listener must not block.
func (c controllers) subscribe(listener func()) controller.Unsubscribe {
	var unsubs []controller.Unsubscribe
	unsubs = append(unsubs,
		c.searchBox.Subscribe(listener),
		c.results.Subscribe(listener),
		c.pager.Subscribe(listener),
		c.summary.Subscribe(listener),
	)
	for _, f := range c.facets {
		unsubs = append(unsubs, f.Subscribe(listener))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// refreshMsg signals that at least one controller's derived state changed.
type refreshMsg struct{}

// waitForRefresh blocks on the bridge channel and re-emits the signal as a
// Bubble Tea message. Update re-arms it after every refreshMsg.
func waitForRefresh(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until the UI exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// The bridge between store notifications and the Bubble Tea loop.
	// Notifications arrive on the dispatching goroutine; a buffered channel
	// with a non-blocking send coalesces bursts into one pending refresh.
	refresh := make(chan struct{}, 1)
	ctrls := newControllers(opts.Store, opts.Facets, logger)
	unsubscribe := ctrls.subscribe(func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})

	m := newModel(opts, ctrls, refresh)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()

	// Unsubscribe first: once it returns no listener can send, so closing
	// the channel releases the last re-armed waitForRefresh goroutine
	// without racing the send.
	unsubscribe()
	close(refresh)
	return err
}
