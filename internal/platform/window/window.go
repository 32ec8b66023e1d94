// Package window is the desktop emulator of the board: an Ebiten window
// shows the surface with a status strip for the displays and switches, and
// the keyboard stands in for the push buttons and slide switches.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/hw/simboard"
	"github.com/vovakirdan/flapboard/internal/session"
	"github.com/vovakirdan/flapboard/internal/video"
)

// StatusHeight is the height of the strip below the surface.
const StatusHeight = 32

// buttonKeys lists the keys that hold each push button down.
var buttonKeys = []struct {
	button core.Buttons
	keys   []ebiten.Key
}{
	{core.ButtonQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
	{core.ButtonP1, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ButtonP2, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyI}},
}

// switchKeys maps digit keys to switches SW0-SW9.
var switchKeys = [config.NumSwitches]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// buttonsHeld returns the buttons whose keys are down.
func buttonsHeld(pressed func(ebiten.Key) bool) core.Buttons {
	var b core.Buttons
	for _, bk := range buttonKeys {
		for _, k := range bk.keys {
			if pressed(k) {
				b |= bk.button
				break
			}
		}
	}
	return b
}

// switchesToggled returns the switches whose keys were just pressed.
func switchesToggled(justPressed func(ebiten.Key) bool) uint32 {
	var mask uint32
	for n, k := range switchKeys {
		if justPressed(k) {
			mask |= 1 << n
		}
	}
	return mask
}

// Emulator implements ebiten.Game on top of a simulated board.
type Emulator struct {
	board   *simboard.Board
	session *session.Session
	frame   *ebiten.Image
	pix     []byte
}

// NewEmulator creates a window emulator with all switches set to switches.
func NewEmulator(cfg config.BoardConfig, switches uint32, logger *log.Logger) *Emulator {
	board := simboard.New()
	board.SetSwitches(switches)

	return &Emulator{
		board: board,
		session: session.New(board, board.Surface(), session.Options{
			Seed:     cfg.Seed,
			TickRate: cfg.TickRate,
			Logger:   logger,
		}),
		pix: make([]byte, video.Width*video.Height*4),
	}
}

// Update samples the keyboard into the board registers and runs one tick.
func (e *Emulator) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if mask := switchesToggled(inpututil.IsKeyJustPressed); mask != 0 {
		e.board.SetSwitches(e.board.Switches() ^ mask)
	}
	e.board.SetButtons(uint32(buttonsHeld(ebiten.IsKeyPressed)))

	if e.session.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw copies the surface into the window and draws the status strip.
func (e *Emulator) Draw(screen *ebiten.Image) {
	if e.frame == nil {
		e.frame = ebiten.NewImage(video.Width, video.Height)
	}

	e.board.Surface().ToRGBA(e.pix)
	e.frame.WritePixels(e.pix)
	screen.DrawImage(e.frame, nil)

	e.drawStatus(screen)
}

// Layout keeps the logical screen at surface size plus the status strip.
func (e *Emulator) Layout(_, _ int) (int, int) {
	return video.Width, video.Height + StatusHeight
}

var (
	labelColor = color.RGBA{190, 190, 190, 255}
	offColor   = color.RGBA{120, 120, 120, 255}
	onColor    = color.RGBA{0, 220, 90, 255}
	segColor   = color.RGBA{255, 40, 40, 255}
)

func (e *Emulator) drawStatus(screen *ebiten.Image) {
	face := basicfont.Face7x13
	y := video.Height + 13

	c1, c2 := e.board.Displays()
	x := 4
	for i, code := range []uint32{c1, c2} {
		label := fmt.Sprintf("P%d ", i+1)
		text.Draw(screen, label, face, x, y, labelColor)
		x += text.BoundString(face, label).Dx() + 2

		digits := "--"
		if v, ok := hw.DecodeDisplay(code); ok {
			digits = fmt.Sprintf("%02d", v)
		}
		text.Draw(screen, digits, face, x, y, segColor)
		x += text.BoundString(face, digits).Dx() + 12
	}

	text.Draw(screen, "SW", face, x, y, labelColor)
	x += text.BoundString(face, "SW").Dx() + 6
	switches := e.board.Switches()
	for n := config.NumSwitches - 1; n >= 0; n-- {
		c := offColor
		if switches&(1<<n) != 0 {
			c = onColor
		}
		text.Draw(screen, fmt.Sprint(n), face, x, y, c)
		x += 8
	}

	text.Draw(screen, e.session.State().String(), face, x+8, y, labelColor)
	text.Draw(screen, "space/enter flap  0-9 switches  q quit", face, 4, y+15, offColor)
}

// Run opens the window and blocks until it is closed or quit.
func Run(cfg config.BoardConfig, switches uint32, logger *log.Logger) error {
	e := NewEmulator(cfg, switches, logger)

	scale := core.Max(cfg.Window.Scale, 1)
	ebiten.SetWindowSize(video.Width*scale, (video.Height+StatusHeight)*scale)
	ebiten.SetWindowTitle("flapboard")
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
