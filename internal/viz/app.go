package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spincloud/internal/cloud"
	"spincloud/internal/config"
	"spincloud/internal/render"
)

const (
	minSpeed = 0.125
	maxSpeed = 8.0
)

// TickMsg drives one render step. The tick reschedules itself until the
// program quits, so teardown releases the loop with it.
type TickMsg time.Time

// App is the interactive viewer: it owns the renderer and advances the
// rotation on every tick. All state lives on this single model; nothing is
// shared across goroutines.
type App struct {
	cfg      *config.Config
	renderer *render.Renderer
	source   string
	mode     render.Mode
	paused   bool
	speed    float64
	themeIdx int
	lastTick time.Time
	fps      float64
}

// NewApp builds the viewer around an already-sampled cloud. An empty cloud
// is valid: the app stays idle and renders a blank canvas.
func NewApp(cfg *config.Config, c cloud.Cloud, source string) App {
	r := render.New(cfg.Render)
	r.SetCloud(c)
	return App{cfg: cfg, renderer: r, source: source, speed: 1.0}
}

func (a App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.cfg.Render.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (a App) Init() tea.Cmd { return a.tick() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		if !a.lastTick.IsZero() {
			dt := now.Sub(a.lastTick)
			if dt > 0 {
				a.fps = 0.9*a.fps + 0.1/dt.Seconds()
			}
			if !a.paused && a.renderer.Running() {
				a.renderer.Advance(time.Duration(float64(dt) * a.speed))
			}
		}
		a.lastTick = now
		return a, a.tick()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case " ":
		a.paused = !a.paused
		if !a.paused {
			// Don't fold the paused wall time into the next advance.
			a.lastTick = time.Time{}
		}
	case "r":
		a.renderer.ResetAngle()
	case "b":
		if a.mode == render.ModeGlyph {
			a.mode = render.ModeBraille
		} else {
			a.mode = render.ModeGlyph
		}
	case "t":
		a.themeIdx = (a.themeIdx + 1) % len(themes)
	case "+", "=":
		a.speed = math.Min(maxSpeed, a.speed*2)
	case "-":
		a.speed = math.Max(minSpeed, a.speed/2)
	}
	return a, nil
}

func (a App) View() string {
	th := themes[a.themeIdx]
	canvas := th.Canvas.Render(strings.TrimRight(a.renderer.FrameIn(a.mode), "\n"))

	state := "running"
	switch {
	case !a.renderer.Running():
		state = "idle (no points sampled)"
	case a.paused:
		state = "paused"
	}

	row := func(label, value string) string {
		return th.Label.Render(label) + th.Value.Render(value)
	}
	stats := th.Header.Render("spincloud") + "\n" + strings.Join([]string{
		row("image", a.source),
		row("points", fmt.Sprintf("%d", len(a.renderer.Cloud()))),
		row("angle", fmt.Sprintf("%.0f°", a.renderer.Angle()*180/math.Pi)),
		row("speed", fmt.Sprintf("%.2fx", a.speed)),
		row("mode", a.mode.String()),
		row("theme", th.Name),
		row("fps", fmt.Sprintf("%.0f", a.fps)),
		row("state", state),
	}, "\n")

	help := th.Help.Render("space pause · r reset · b mode · t theme · +/- speed · q quit")

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, th.Panel.Render(stats)) + "\n" + help
}

// Run starts the viewer and blocks until it quits.
func Run(cfg *config.Config, c cloud.Cloud, source string) error {
	_, err := tea.NewProgram(NewApp(cfg, c, source)).Run()
	return err
}
