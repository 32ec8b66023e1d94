// Package simboard is an in-memory board. Its register window is plain
// memory with the real register layout, so the game cannot tell it from
// the hardware. The terminal and window emulators drive it, and so do the
// tests.
package simboard

import (
	"fmt"
	"unsafe"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/registry"
	"github.com/vovakirdan/flapboard/internal/video"
)

func init() {
	registry.Register("sim", "In-memory board (no hardware, nothing displayed)", func(config.BoardConfig) (registry.Board, error) {
		return New(), nil
	})
}

// Board is a simulated board. Input setters and the game may run on
// different goroutines; every register access is a single atomic word.
type Board struct {
	*hw.Registers
	words   []uint32
	surface *video.Buffer
}

// New creates a board with all buttons released, all switches off and
// blank displays.
func New() *Board {
	words := make([]uint32, hw.PeripheralSize/4)
	window := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), hw.PeripheralSize)
	regs, err := hw.NewRegisters(window)
	if err != nil {
		// A []uint32 backing is always large enough and aligned
		panic(err)
	}
	return &Board{
		Registers: regs,
		words:     words,
		surface:   video.NewSurfaceBuffer(),
	}
}

// SetButtons replaces the button register.
func (b *Board) SetButtons(v uint32) {
	b.Store(hw.OffsetButtons, v)
}

// SetSwitches replaces the switch register.
func (b *Board) SetSwitches(v uint32) {
	b.Store(hw.OffsetSwitches, v)
}

// Switches returns the switch register.
func (b *Board) Switches() uint32 {
	return b.ReadSwitches()
}

// ToggleSwitch flips switch n (SW0 = 0).
func (b *Board) ToggleSwitch(n int) error {
	if n < 0 || n >= config.NumSwitches {
		return fmt.Errorf("simboard: no switch %d", n)
	}
	b.SetSwitches(b.Switches() ^ 1<<n)
	return nil
}

// Displays returns the raw display registers.
func (b *Board) Displays() (p1, p2 uint32) {
	return b.Load(hw.OffsetP1Display), b.Load(hw.OffsetP2Display)
}

// DisplayValues decodes both displays. ok is false while either display
// does not show a number, e.g. before the first frame.
func (b *Board) DisplayValues() (p1, p2 int, ok bool) {
	c1, c2 := b.Displays()
	p1, ok1 := hw.DecodeDisplay(c1)
	p2, ok2 := hw.DecodeDisplay(c2)
	return p1, p2, ok1 && ok2
}

// Surface returns the visible pixel buffer.
func (b *Board) Surface() *video.Buffer {
	return b.surface
}

// Close blanks the displays.
func (b *Board) Close() error {
	b.ClearDisplays()
	return nil
}
