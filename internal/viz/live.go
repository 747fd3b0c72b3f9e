package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/field"
	"github.com/san-kum/metaballs/internal/metrics"
	"github.com/san-kum/metaballs/internal/raster"
)

const (
	thresholdStep = 0.1
	minThreshold  = 0.1
)

type TickMsg time.Time

// Model runs the animation inside a Bubble Tea program. Bubble Tea owns
// the frame timing here, so the pacer is not used.
type Model struct {
	cfg      *config.Config
	rng      *rand.Rand
	balls    field.Balls
	sampler  *raster.Sampler
	coverage *metrics.Coverage
	frame    int
	running  bool
	showHelp bool
}

// NewModel spawns the balls for a cfg.Width x cfg.Height canvas.
func NewModel(cfg *config.Config, rng *rand.Rand) Model {
	sampler := raster.NewSampler(raster.NewGrid(cfg.Width, cfg.Height), cfg.Threshold)
	balls := field.Spawn(rng, cfg)
	sampler.Sample(balls)
	return Model{
		cfg:      cfg,
		rng:      rng,
		balls:    balls,
		sampler:  sampler,
		coverage: metrics.NewCoverage(),
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles keys and advances one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reseed()
		case "+", "=":
			m.sampler.SetThreshold(m.sampler.Threshold() + thresholdStep)
			m.sampler.Sample(m.balls)
		case "-", "_":
			if t := m.sampler.Threshold() - thresholdStep; t >= minThreshold {
				m.sampler.SetThreshold(t)
				m.sampler.Sample(m.balls)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step samples the current positions, records coverage, then moves the balls.
func (m *Model) step() {
	m.sampler.Sample(m.balls)
	m.coverage.OnFrame(m.frame, m.balls, m.sampler.Grid())
	m.balls.Advance(m.cfg.Width, m.cfg.Height)
	m.frame++
}

func (m *Model) reseed() {
	m.balls = field.Spawn(m.rng, m.cfg)
	m.frame = 0
	m.coverage.Reset()
	m.sampler.Sample(m.balls)
}

func (m Model) View() string {
	canvas := canvasStyle.Render(strings.Join(m.sampler.Rows(m.cfg.Glyph), "\n"))

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(canvas + "\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		status, "  ",
		MetricLabel.Render("frame "), MetricValue.Render(fmt.Sprintf("%d", m.frame)), "  ",
		MetricLabel.Render("balls "), MetricValue.Render(fmt.Sprintf("%d", len(m.balls))), "  ",
		MetricLabel.Render("threshold "), MetricValue.Render(fmt.Sprintf("%.1f", m.sampler.Threshold())), "  ",
		MetricLabel.Render("coverage "), MetricValue.Render(fmt.Sprintf("%.1f%%", 100*m.sampler.Coverage())),
	))
	if m.showHelp {
		s.WriteString("\n" + KeyHint.Render("SP:Pause R:Reseed +/-:Threshold ?:Help Q:Quit"))
	}
	return s.String()
}

// Frame reports how many frames have been simulated since the last reseed.
func (m Model) Frame() int { return m.frame }

// MeanCoverage is the average drawn fraction since the last reseed.
func (m Model) MeanCoverage() float64 { return m.coverage.Value() }
