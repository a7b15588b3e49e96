package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/timeline"
)

const (
	canvasWidth  = 80
	canvasHeight = 28
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type tickMsg time.Time

// Model is the interactive playback view over a rebuilt system. It
// advances the scene's frame clock and reprojects the orbit wireframe
// each tick.
type Model struct {
	res   *builder.Result
	scale timeline.Scale

	canvas   *Canvas
	camera   *Camera
	frame    float64
	speed    float64 // frames advanced per tick
	running  bool
	showHelp bool
}

func NewModel(res *builder.Result, scale timeline.Scale) Model {
	cam := NewCamera()
	cam.RotX = -1.1 // tip the ecliptic toward the viewer
	m := Model{
		res:     res,
		scale:   scale,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		camera:  cam,
		frame:   float64(res.StartFrame),
		speed:   1,
		running: true,
	}
	m.fitZoom()
	return m
}

// fitZoom pulls the camera back until the widest orbit fits.
func (m *Model) fitZoom() {
	extent := 1.0
	for _, r := range m.res.Rigs {
		if r.Path != nil {
			extent = math.Max(extent, r.Path.SemiMajor())
		}
	}
	m.camera.Zoom = 1.0 / extent
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
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
			m.frame = float64(m.res.StartFrame)
		case "left", "[":
			m.frame -= float64(m.scale.FramesPerDay)
		case "right", "]":
			m.frame += float64(m.scale.FramesPerDay)
		case "up", "k":
			m.speed *= 2
		case "down", "j":
			if m.speed > 0.25 {
				m.speed /= 2
			}
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tickMsg:
		if m.running {
			m.frame += m.speed
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	Render3D(m.canvas, SystemWireframe(m.res, m.frame), m.camera)

	days := (m.frame - float64(m.res.StartFrame)) / float64(m.scale.FramesPerDay)

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORRERY") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%.0f", m.frame)) + "\n")
	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.1f days", days)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2g fr/tick", m.speed)) + "\n")
	s.WriteString("\nBODIES\n")
	for _, name := range m.res.Order {
		r := m.res.Rigs[name]
		if r.BodyNode == nil {
			continue
		}
		x, y, z := r.BodyNode.WorldPosition(m.frame)
		dist := math.Sqrt(x*x + y*y + z*z)
		line := fmt.Sprintf("%-9s r=%6.2f", name, dist)
		if r.Config.IsStar() {
			s.WriteString(starStyle.Render("* "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Rewind Q:Quit\n←→:Day ↑↓:Speed ?:Help\nXYZ:Rotate +-:Zoom"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()), panelStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Rewind to start frame    ║
║  Q        - Quit                     ║
║  Left/[   - Step back one day        ║
║  Right/]  - Step forward one day     ║
║  Up/K     - Double playback speed    ║
║  Down/J   - Halve playback speed     ║
║  X/Y/Z    - Rotate camera (shift:−)  ║
║  +/-      - Zoom in / out            ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the interactive viewer and blocks until it exits.
func Run(res *builder.Result, scale timeline.Scale) error {
	_, err := tea.NewProgram(NewModel(res, scale), tea.WithAltScreen()).Run()
	return err
}
