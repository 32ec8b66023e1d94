package tui

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/hw/simboard"
	"github.com/vovakirdan/flapboard/internal/session"
	"github.com/vovakirdan/flapboard/internal/video"
)

// Model is the Bubble Tea model of the terminal emulator. It owns a
// simulated board and the session running on it.
type Model struct {
	board    *simboard.Board
	session  *session.Session
	config   config.BoardConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Buttons // Buttons pressed since the last tick
	status   string       // Transient message, e.g. screenshot path
	quitting bool
}

// NewModel creates a terminal emulator with all switches set to switches.
func NewModel(cfg config.BoardConfig, switches uint32, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := simboard.New()
	board.SetSwitches(switches)

	return Model{
		board: board,
		session: session.New(board, board.Surface(), session.Options{
			Seed:     cfg.Seed,
			TickRate: cfg.TickRate,
			Logger:   logger,
		}),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns keys into button presses and switch flips.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := m.keys.SwitchFor(msg); ok {
		//nolint:errcheck // n is always a valid switch
		m.board.ToggleSwitch(n)
		return m, nil
	}

	switch {
	case msg.String() == "ctrl+c":
		// Leave even if the session stopped ticking
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	// Buttons are held for exactly one tick, so each key press is one edge
	m.pending |= m.keys.ButtonFor(msg)
	return m, nil
}

// handleTick presents the pending buttons to the board for one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.board.SetButtons(uint32(m.pending))
	m.pending = 0

	if m.session.Tick() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the visible surface as a PNG.
func (m *Model) saveScreenshot() {
	surface := m.board.Surface()
	img := image.NewRGBA(image.Rect(0, 0, surface.Width(), surface.Height()))
	surface.ToRGBA(img.Pix)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".flapboard", "screenshots")
	path := filepath.Join(dir, fmt.Sprintf("flapboard_%s.png", time.Now().Format("20060102_150405")))
	if err := writePNG(dir, path, img); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

func writePNG(dir, path string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// View renders the surface followed by the status panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderSurface(m.board.Surface(), m.config.TUI.CellW, m.config.TUI.CellH))
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
	}
	return sb.String()
}

// statusLine shows the displays, the switches and the decoded configuration.
func (m Model) statusLine() string {
	c1, c2 := m.board.Displays()
	p1, ok1 := hw.DecodeDisplay(c1)
	p2, ok2 := hw.DecodeDisplay(c2)

	parts := []string{
		renderDisplay("P1", p1, ok1),
		renderDisplay("P2", p2, ok2),
		statusStyle.Render("SW") + " " + renderSwitches(m.board.Switches()),
		statusStyle.Render(m.session.State().String()),
		statusStyle.Render(m.session.Config().String()),
	}
	return strings.Join(parts, "  ")
}

// Run starts the terminal emulator and blocks until it quits.
func Run(cfg config.BoardConfig, switches uint32, logger *log.Logger) error {
	model := NewModel(cfg, switches, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// surfaceSize returns the terminal size needed to show the surface with
// the given cell size, including the status panel.
func surfaceSize(cellW, cellH int) (cols, rows int) {
	cellW = core.Max(cellW, 1)
	cellH = core.Max(cellH, 1)
	return video.Width / cellW, video.Height/cellH + 3
}

// CheckTerminal returns an error when a terminal of width x height cells
// cannot show the whole surface.
func CheckTerminal(cfg config.TUIConfig, width, height int) error {
	cols, rows := surfaceSize(cfg.CellW, cfg.CellH)
	if width < cols || height < rows {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d (adjust tui.cell_w / tui.cell_h)", width, height, cols, rows)
	}
	return nil
}
