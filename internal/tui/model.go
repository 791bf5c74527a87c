package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gpuinfo/internal/gpu"
	"gpuinfo/internal/logging"
)

// ReportSource produces a fresh adapter report. *gpu.Detector satisfies it.
type ReportSource interface {
	DetectAdapters(ctx context.Context) gpu.Report
}

// reportMsg carries the result of a detection pass back into Update.
type reportMsg struct {
	report gpu.Report
}

// Model is the adapter browser state
type Model struct {
	startTime time.Time
	quitting  bool

	logger *logging.Logger
	source ReportSource
	ctx    context.Context

	currentScreen Screen
	selection     int
	lastError     string
	stateManager  *UIStateManager

	report    gpu.Report
	hasReport bool
	loading   bool
}

const down = "down"

// NewModel creates the browser. Detection starts from Init, so construction
// never blocks on platform APIs. An empty stateDir disables UI state persistence.
func NewModel(ctx context.Context, logger *logging.Logger, source ReportSource, stateDir string) Model {
	m := Model{
		startTime:     time.Now(),
		logger:        logger,
		source:        source,
		ctx:           ctx,
		currentScreen: ScreenList,
		loading:       true,
	}

	if stateDir != "" {
		m.stateManager = NewUIStateManager(stateDir, logger)
		if state, err := m.stateManager.Load(); err == nil {
			m.currentScreen = state.CurrentScreen
			m.selection = max(state.Selection, 0)
			m.lastError = state.LastError
		} else {
			logger.Warn("tui.state.load.failed", "Ignoring unreadable UI state", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return m
}

// Init starts the first detection pass
func (m Model) Init() tea.Cmd {
	return m.detect()
}

func (m Model) detect() tea.Cmd {
	source, ctx := m.source, m.ctx
	return func() tea.Msg {
		return reportMsg{report: source.DetectAdapters(ctx)}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		return m.applyReport(msg.report), nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) applyReport(report gpu.Report) Model {
	m.report = report
	m.hasReport = true
	m.loading = false
	m.lastError = report.ErrorMessage
	m.selection = clampSelection(m.selection, len(report.Adapters))
	if len(report.Adapters) == 0 && m.currentScreen == ScreenDetail {
		m.currentScreen = ScreenList
	}

	m.logger.Debug("tui.report.loaded", "Adapter report loaded", map[string]interface{}{
		"adapters": len(report.Adapters),
	})
	return m
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		m.saveState()
		return m, tea.Quit
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.detect()
	case "esc":
		m.currentScreen = ScreenList
		return m, nil
	case "?":
		m.currentScreen = ScreenHelp
		return m, nil
	}

	if m.currentScreen == ScreenHelp {
		return m, nil
	}

	switch key {
	case "up", "k":
		return m.navigateUp(), nil
	case down, "j":
		return m.navigateDown(), nil
	case "enter", " ":
		if len(m.report.Adapters) > 0 {
			m.currentScreen = ScreenDetail
		}
		return m, nil
	}
	return m, nil
}

// View renders the current screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case ScreenDetail:
		return m.renderDetail()
	case ScreenHelp:
		return m.renderHelp()
	default:
		return m.renderList()
	}
}

func (m Model) saveState() {
	if m.stateManager == nil {
		return
	}
	state := &UIState{
		CurrentScreen: m.currentScreen,
		Selection:     m.selection,
		LastError:     m.lastError,
	}
	if state.CurrentScreen == ScreenHelp {
		state.CurrentScreen = ScreenList
	}
	if err := m.stateManager.Save(state); err != nil {
		m.logger.Warn("tui.state.save.failed", "Failed to save UI state", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func clampSelection(sel, n int) int {
	if n == 0 || sel < 0 {
		return 0
	}
	if sel >= n {
		return n - 1
	}
	return sel
}
