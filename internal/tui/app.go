package tui

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/statsview/internal/chart"
	"github.com/pablasso/statsview/internal/demo"
	"github.com/pablasso/statsview/internal/tui/components"
	"github.com/pablasso/statsview/internal/tui/msgs"
	"github.com/pablasso/statsview/internal/tui/styles"
)

const (
	// MinTerminalWidth and MinTerminalHeight are the smallest sizes the
	// chart is drawn at.
	MinTerminalWidth  = 20
	MinTerminalHeight = 8

	fillingStep = 10
	gaugeWidth  = 10
)

// FrameMsg advances the reveal animation of run Run.
type FrameMsg struct {
	Run chart.RunID
}

// transitionFrameMsg advances the layout transition.
type transitionFrameMsg struct {
	Run chart.RunID
}

// cycleMsg swaps in the next demo dataset.
type cycleMsg struct{}

// Model hosts one StatsView. All chart mutation happens in Update, so the
// chart never sees concurrent writers.
type Model struct {
	width  int
	height int

	view       *chart.StatsView
	transition *chart.Animator
	clock      func() time.Time
	rng        *rand.Rand

	data       []float64
	cycle      *demo.Cycle
	cycleEvery time.Duration

	keys   keyMap
	help   help.Model
	logger *log.Logger
}

// Run starts the TUI application.
func Run(opts Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "statsview")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		opts.Logger = log.Default()
	}

	_, err := NewProgram(opts).Run()
	return err
}

// NewProgram creates the bubbletea program without starting it. Hosts can
// feed it msgs.DataMsg and msgs.FillingMsg through Send.
func NewProgram(opts Options) *tea.Program {
	return tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
}

// NewModel builds the initial model. The chart receives its data when the
// model handles msgs.AddChartMsg, which Init sends.
func NewModel(opts Options) Model {
	if opts.Chart.Clock == nil {
		opts.Chart.Clock = time.Now
	}
	if opts.Chart.Rand == nil {
		opts.Chart.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Scenario == "" {
		opts.Scenario = demo.ScenarioEven
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	view := chart.New(opts.Chart)
	view.SetFilling(opts.Filling)

	keys := defaultKeyMap()
	return Model{
		view:       view,
		transition: chart.NewAnimator(chart.TransitionDuration, chart.EaseBounce),
		clock:      opts.Chart.Clock,
		rng:        opts.Chart.Rand,
		data:       opts.Data,
		cycle:      demo.NewCycle(opts.Scenario),
		cycleEvery: demo.Interval(opts.Cycle),
		keys:       keys,
		help:       help.New(),
		logger:     opts.Logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return msgs.AddChartMsg{} },
		m.cycleCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case msgs.AddChartMsg:
		run := m.view.SetData(m.weights())
		tr := m.transition.Start(m.clock())
		m.logger.Printf("chart added: run=%d transition=%d scenario=%s", run, tr, m.cycle.Current())
		return m, tea.Batch(frameCmd(run), transitionCmd(tr))

	case msgs.DataMsg:
		m.data = msg.Weights
		if m.data == nil {
			m.data = []float64{}
		}
		return m, m.setData(m.data)

	case msgs.FillingMsg:
		m.view.SetFilling(msg.Level)
		m.logger.Printf("filling set: requested=%d stored=%d", msg.Level, m.view.Filling())
		return m, nil

	case FrameMsg:
		if m.view.Tick(msg.Run) {
			return m, frameCmd(msg.Run)
		}
		if msg.Run != m.view.Run() {
			m.logger.Printf("dropped stale frame: run=%d current=%d", msg.Run, m.view.Run())
		}
		return m, nil

	case transitionFrameMsg:
		if m.transition.Tick(msg.Run, m.clock()) {
			return m, transitionCmd(msg.Run)
		}
		return m, nil

	case cycleMsg:
		m.data = nil
		m.cycle.Next()
		return m, tea.Batch(m.setData(m.weights()), m.cycleCmd())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		return m.Update(msgs.AddChartMsg{})
	case key.Matches(msg, m.keys.NextData):
		m.data = nil
		m.cycle.Next()
		return m, m.setData(m.weights())
	case key.Matches(msg, m.keys.MoreFilling):
		m.view.SetFilling(m.view.Filling() + fillingStep)
	case key.Matches(msg, m.keys.LessFilling):
		m.view.SetFilling(m.view.Filling() - fillingStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return m, nil
}

func (m Model) setData(weights []float64) tea.Cmd {
	run := m.view.SetData(weights)
	m.logger.Printf("data set: run=%d weights=%v proportions=%v", run, weights, m.view.Normalized())
	return frameCmd(run)
}

func (m Model) weights() []float64 {
	if m.data != nil {
		return m.data
	}
	return demo.Weights(m.cycle.Current(), m.rng)
}

func (m Model) chartRows() int {
	rows := m.height - 1 - lipgloss.Height(m.help.View(m.keys))
	if rows < 0 {
		return 0
	}
	return rows
}

func (m Model) resize() {
	m.view.Resize(components.ChartSize(m.width, m.chartRows()))
}

func (m Model) cycleCmd() tea.Cmd {
	if m.cycleEvery <= 0 {
		return nil
	}
	return tea.Tick(m.cycleEvery, func(time.Time) tea.Msg {
		return cycleMsg{}
	})
}

func frameCmd(run chart.RunID) tea.Cmd {
	return tea.Tick(chart.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Run: run}
	})
}

func transitionCmd(run chart.RunID) tea.Cmd {
	return tea.Tick(chart.FrameInterval, func(time.Time) tea.Msg {
		return transitionFrameMsg{Run: run}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 && m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return styles.ErrorStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d, need %dx%d)",
			m.width, m.height, MinTerminalWidth, MinTerminalHeight))
	}

	rows := m.chartRows()
	body := components.RenderChart(m.view, m.width, rows)
	body = slideIn(body, rows, m.transition.Progress())

	items := []string{
		"data " + m.dataLabel(),
		"fill " + components.NewProgress(m.view.Filling(), gaugeWidth).View(),
		"reveal " + components.NewProgress(int(math.Round(m.view.Progress()*100)), gaugeWidth).View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		components.NewStatusBar(m.stateHint()).Render(m.width, items),
		styles.SubtleStyle.Render(m.help.View(m.keys)),
	)
}

// stateHint names what the chart is doing right now.
func (m Model) stateHint() string {
	switch {
	case m.transition.Running():
		return "placing"
	case m.view.Animating():
		return fmt.Sprintf("revealing #%d", m.view.Run())
	default:
		return "ready"
	}
}

func (m Model) dataLabel() string {
	if m.data != nil {
		return "custom"
	}
	return string(m.cycle.Current())
}

// slideIn shifts the chart up by the part of the transition not yet
// played, so it drops into place from the top edge.
func slideIn(body string, rows int, progress float64) string {
	shift := int(math.Round((1 - progress) * float64(rows)))
	if shift <= 0 {
		return body
	}
	if shift > rows {
		shift = rows
	}

	lines := strings.Split(body, "\n")
	out := make([]string, rows)
	for i := range out {
		if src := i + shift; src < len(lines) {
			out[i] = lines[src]
		}
	}
	return strings.Join(out, "\n")
}
