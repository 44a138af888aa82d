package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/geom"
	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/physics"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 240
	trailCapacity   = 400
)

// Viewport in world meters. The window trails the stone horizontally; the
// vertical extent is fixed so the water line stays put on screen.
const (
	viewBehind = 1.2
	viewAhead  = 0.4
	viewBottom = -0.25
	viewTop    = 0.55
)

type TickMsg time.Time

// Model is the live-view program state: it owns its copy of the simulation
// and advances it in wall-clock time.
type Model struct {
	dyn        *physics.StoneSkip
	integrator dynamo.Integrator

	state   dynamo.State
	initial dynamo.State
	t, dt   float64

	// Integration steps per render frame, sized so the view plays at
	// roughly real time at 60 fps.
	stepsPerFrame int

	canvas        *Canvas
	trail         []geom.Vec
	heightHistory []float64
	bounces       int
	lastPhase     phase.Phase

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int

	running  bool
	showHelp bool
}

func NewModel(dyn *physics.StoneSkip, integ dynamo.Integrator, x0 dynamo.State, dt float64) Model {
	params := make(map[string]float64)
	for k, v := range dyn.GetParams() {
		params[k] = v
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	spf := int(1.0 / (60.0 * dt))
	if spf < 1 {
		spf = 1
	}

	return Model{
		dyn:           dyn,
		integrator:    integ,
		state:         x0.Clone(),
		initial:       x0.Clone(),
		dt:            dt,
		stepsPerFrame: spf,
		canvas:        NewCanvas(width, height),
		trail:         make([]geom.Vec, 0, trailCapacity),
		heightHistory: make([]float64, 0, historyCapacity),
		lastPhase:     phase.Flying,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		running:       true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerFrame; i++ {
				m.step()
			}
			m.heightHistory = append(m.heightHistory, m.state[physics.IY])
			if len(m.heightHistory) > historyCapacity {
				m.heightHistory = m.heightHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	p := m.dyn.AdvancePhase(m.state, m.t, m.dt)
	if m.lastPhase == phase.Bouncing && p == phase.Flying {
		m.bounces++
	}
	m.lastPhase = p

	m.state = m.integrator.Step(m.dyn, m.state, m.t, m.dt)
	m.t += m.dt

	if !m.state.IsValid() {
		m.running = false
		return
	}

	m.trail = append(m.trail, geom.Vec{X: m.state[physics.IX], Y: m.state[physics.IY]})
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	m.dyn.SetParam(key, newVal)
}

func (m *Model) reset() {
	m.t = 0
	m.state = m.initial.Clone()
	m.trail = m.trail[:0]
	m.heightHistory = m.heightHistory[:0]
	m.bounces = 0
	m.lastPhase = phase.Flying
	m.dyn.Reset()
	for k, v := range m.initialParams {
		m.params[k] = v
		m.dyn.SetParam(k, v)
	}
	m.running = true
}

// project maps world meters to sub-pixel coordinates. The window trails the
// stone horizontally.
func (m *Model) project(p geom.Vec) (int, int) {
	cw := float64(width * 2)
	ch := float64(height * 4)

	left := m.state[physics.IX] - viewBehind
	px := (p.X - left) / (viewBehind + viewAhead) * cw
	py := ch - (p.Y-viewBottom)/(viewTop-viewBottom)*ch
	return int(px), int(py)
}

func (m *Model) draw() {
	m.canvas.Clear()

	waterLevel := m.dyn.Environment().WaterLevel
	_, wy := m.project(geom.Vec{X: 0, Y: waterLevel})
	m.canvas.DrawDashedHLine(wy, 3, 2)

	for _, pt := range m.trail {
		x, y := m.project(pt)
		m.canvas.Set(x, y)
	}

	pos := geom.Vec{X: m.state[physics.IX], Y: m.state[physics.IY]}
	outline := m.dyn.Properties().Outline.Transform(pos, m.state[physics.ITheta])
	m.canvas.DrawPolygon(outline, m.project)
}

func (m Model) View() string {
	m.draw()

	theme := CurrentTheme
	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(theme.Primary)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted).Padding(1, 2).Width(42)
	headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.dyn.Properties().Name)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.heightHistory) > 1 {
		chart := asciigraph.Plot(m.heightHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height"))
		s.WriteString(chart + "\n\n")
	}

	diag := m.dyn.Diagnostics(m.state, m.t)
	fraction := 0.0
	if area := m.dyn.Properties().Area; area > 0 {
		fraction = diag.Submerged.Area / area
	}
	speed := geom.Vec{X: m.state[physics.IVX], Y: m.state[physics.IVY]}.Length()

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Phase") + m.phaseLabel(theme) + "\n")
	s.WriteString(labelStyle.Render("Bounces") + valueStyle.Render(fmt.Sprintf("%d", m.bounces)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", speed)) + "\n")
	s.WriteString(labelStyle.Render("Submerged") + valueStyle.Render(fmt.Sprintf("%.0f%%", fraction*100)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f J", m.dyn.Energy(m.state))) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		val, initial := m.params[k], m.initialParams[k]
		barWidth := 10
		ratio := val / (2.0 * initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.3g", k, bar, val)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit T:Theme\nTab:Select ↑↓:Tune ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) phaseLabel(theme Theme) string {
	p := m.dyn.Phase()
	style := lipgloss.NewStyle().Bold(true)
	switch p {
	case phase.Bouncing:
		style = style.Foreground(theme.Warning)
	case phase.Sinking:
		style = style.Foreground(theme.Error)
	default:
		style = style.Foreground(theme.Secondary)
	}
	return style.Render(p.String())
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset the throw          ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
