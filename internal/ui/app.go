package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ncarv/balcao/internal/empresas"
	"github.com/ncarv/balcao/internal/prefs"
	"github.com/ncarv/balcao/internal/search"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     empresas.Searcher
	Controller *search.Controller
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    empresas.Searcher
	ctl       *search.Controller
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Form state
	fields       []formField
	inputs       []textinput.Model
	enumIdx      map[int]int
	focusField   int
	focusResults bool

	// Results state
	selectedRow int
	lastUpdated time.Time
	spin        spinner.Model

	// Detail overlay
	showDetail     bool
	detail         *empresas.Empresa
	detailViewport viewport.Model

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ctl := opts.Controller
	if ctl == nil {
		ctl = search.New(search.DefaultPageSize)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		ctl:       ctl,
		prefsPath: prefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		spin:      spin,
	}
	m.initFormInputs()
	return m
}

// Init implements tea.Model. The first page is fetched immediately so the
// screen is never empty at startup.
func (m Model) Init() tea.Cmd {
	req := m.ctl.Submit()
	return tea.Batch(
		tea.EnterAltScreen,
		m.runRequest(req),
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
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
		}
		m.ready = true
		if m.showDetail {
			m.openDetail(m.detail)
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctl.Phase() != search.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchResultMsg:
		if !m.ctl.Resolve(msg.seq, msg.result, msg.err) {
			return m, nil
		}
		if msg.err == nil {
			m.lastUpdated = time.Now()
		}
		if n := len(m.ctl.Results()); m.selectedRow >= n {
			m.selectedRow = maxInt(n-1, 0)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showDetail {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the filter pane next to the results pane.
func (m Model) renderContent() string {
	contentHeight := m.height - 2 // header + command bar

	formWidth := 36
	if m.width < 100 {
		formWidth = 30
	}
	resultsWidth := m.width - formWidth

	formPane := m.renderForm(formWidth, contentHeight, !m.focusResults)
	resultsPane := m.renderResults(resultsWidth, contentHeight, m.focusResults)

	return lipgloss.JoinHorizontal(lipgloss.Top, formPane, resultsPane)
}

// handleKey routes keyboard input to the active overlay or pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focusResults {
		return m.handleResultsKey(msg)
	}
	return m.handleFormKey(msg)
}

// submitSearch starts a fresh search from page zero with the current
// criteria.
func (m *Model) submitSearch() tea.Cmd {
	m.selectedRow = 0
	return m.runRequest(m.ctl.Submit())
}

// runRequest dispatches one fetch and keeps the spinner ticking while it is
// in flight.
func (m Model) runRequest(req search.Request) tea.Cmd {
	return tea.Batch(
		searchCmd(m.ctx, m.client, req),
		m.spin.Tick,
	)
}

// Messages

// searchResultMsg carries one fetch outcome back into Update. The sequence
// number lets the controller discard responses that lost the race against a
// newer request.
type searchResultMsg struct {
	seq    uint64
	result empresas.SearchResult
	err    error
}

// Commands

func searchCmd(ctx context.Context, client empresas.Searcher, req search.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Search(ctx, req.Query)
		return searchResultMsg{seq: req.Seq, result: result, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
