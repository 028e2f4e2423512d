package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ahouk/winnow/internal/controller"
	"github.com/ahouk/winnow/internal/history"
	"github.com/ahouk/winnow/internal/prefs"
	"github.com/ahouk/winnow/internal/state"
)

// Pane identifies the focused region of the main layout.
type Pane int

const (
	PaneSearch Pane = iota
	PaneFacets
	PaneResults
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	history   *history.Store
	index     string
	prefsPath string
	pageSize  int
	logger    *zap.Logger

	// Controllers and their latest derived views. The views are refreshed
	// as a batch whenever a refreshMsg arrives on the bridge channel.
	ctrls       controllers
	refresh     chan struct{}
	searchView  controller.SearchBoxState
	facetViews  []controller.FacetViewState
	resultView  controller.ResultListState
	pagerView   controller.PagerState
	summaryView controller.QuerySummaryState

	// UI state
	theme   Theme
	styles  Styles
	keys    keyMap
	width   int
	height  int
	ready   bool
	focused Pane

	// Search input
	input textinput.Model

	// Facet pane cursor
	facetIdx int
	valueIdx int

	// Result pane cursor
	resultIdx int

	// Help overlay
	showHelp bool

	// Recent-queries overlay
	showHistory    bool
	historyEntries []history.Entry
	historyIdx     int
}

// newModel creates the root Bubble Tea model.
func newModel(opts Options, ctrls controllers, refresh chan struct{}) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "search " + opts.Index
	input.Prompt = "/ "
	input.CharLimit = 256
	input.Focus()

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		history:   opts.History,
		index:     opts.Index,
		prefsPath: prefsPath,
		pageSize:  opts.PageSize,
		logger:    logger,
		ctrls:     ctrls,
		refresh:   refresh,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      newKeyMap(),
		focused:   PaneSearch,
		input:     input,
	}
	m.reloadViews()
	return m
}

// reloadViews re-reads every controller's derived state.
func (m *Model) reloadViews() {
	m.searchView = m.ctrls.searchBox.State()
	m.resultView = m.ctrls.results.State()
	m.pagerView = m.ctrls.pager.State()
	m.summaryView = m.ctrls.summary.State()

	m.facetViews = m.facetViews[:0]
	for _, f := range m.ctrls.facets {
		m.facetViews = append(m.facetViews, f.State())
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if m.resultIdx >= len(m.resultView.Hits) {
		m.resultIdx = len(m.resultView.Hits) - 1
	}
	if m.resultIdx < 0 {
		m.resultIdx = 0
	}
	if m.facetIdx >= len(m.facetViews) {
		m.facetIdx = len(m.facetViews) - 1
	}
	if m.facetIdx < 0 {
		m.facetIdx = 0
	}
	if len(m.facetViews) > 0 {
		values := m.facetViews[m.facetIdx].Values
		if m.valueIdx >= len(values) {
			m.valueIdx = len(values) - 1
		}
	}
	if m.valueIdx < 0 {
		m.valueIdx = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		waitForRefresh(m.refresh),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case refreshMsg:
		m.reloadViews()
		return m, waitForRefresh(m.refresh)

	case historyMsg:
		m.historyEntries = msg.entries
		m.historyIdx = 0
		return m, nil
	}

	if m.focused == PaneSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showHistory {
		return m.renderHistory()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	// The search input owns most keys while focused.
	if m.focused == PaneSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m.focusSearch()

	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()
		return m, nil

	case msg.String() == "shift+tab":
		m.cycleFocusReverse()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.History):
		return m.openHistory()

	case key.Matches(msg, m.keys.NextPage):
		m.ctrls.pager.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.ctrls.pager.PreviousPage()
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		controller.ClearAllFilters(m.store)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m.focusSearch()
	}

	switch m.focused {
	case PaneFacets:
		return m.handleFacetKey(msg)
	case PaneResults:
		return m.handleResultKey(msg)
	}
	return m, nil
}

// handleSearchKey routes keys while the search input is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		m.ctrls.searchBox.SubmitText(m.input.Value())
		m.resultIdx = 0
		m.focused = PaneResults
		m.input.Blur()
		return m, nil

	case "esc":
		m.input.Blur()
		m.focused = PaneResults
		return m, nil

	case "tab":
		m.input.Blur()
		m.cycleFocus()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleFacetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.facetViews) == 0 {
		return m, nil
	}
	view := m.facetViews[m.facetIdx]

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.valueIdx < len(view.Values)-1 {
			m.valueIdx++
		} else if m.facetIdx < len(m.facetViews)-1 {
			m.facetIdx++
			m.valueIdx = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.valueIdx > 0 {
			m.valueIdx--
		} else if m.facetIdx > 0 {
			m.facetIdx--
			m.valueIdx = len(m.facetViews[m.facetIdx].Values) - 1
			if m.valueIdx < 0 {
				m.valueIdx = 0
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.valueIdx < len(view.Values) {
			m.ctrls.facets[m.facetIdx].ToggleValue(view.Values[m.valueIdx].Value)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFacet):
		m.ctrls.facets[m.facetIdx].Clear()
		return m, nil
	}
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.resultIdx < len(m.resultView.Hits)-1 {
			m.resultIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
		return m, nil

	case msg.String() == "g" || msg.String() == "home":
		m.resultIdx = 0
		return m, nil

	case msg.String() == "G" || msg.String() == "end":
		if n := len(m.resultView.Hits); n > 0 {
			m.resultIdx = n - 1
		}
		return m, nil
	}
	return m, nil
}

func (m Model) focusSearch() (tea.Model, tea.Cmd) {
	m.focused = PaneSearch
	m.input.SetValue(m.searchView.Text)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) cycleFocus() {
	switch m.focused {
	case PaneSearch:
		m.focused = PaneFacets
	case PaneFacets:
		m.focused = PaneResults
	default:
		m.focused = PaneSearch
		m.input.Focus()
	}
}

func (m *Model) cycleFocusReverse() {
	switch m.focused {
	case PaneSearch:
		m.focused = PaneResults
	case PaneResults:
		m.focused = PaneFacets
	default:
		m.focused = PaneSearch
		m.input.Focus()
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.pageSize})
	if err != nil {
		m.logger.Warn("save prefs", zap.Error(err))
	}
}
