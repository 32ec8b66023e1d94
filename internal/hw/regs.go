// Package hw is the peripheral access layer: it reads the button and switch
// registers and writes the two seven-segment display registers of the board.
//
// Registers work over any byte window with the board's register layout, so the
// same code runs against the real /dev/mem mapping and against plain memory
// in the emulators and tests.
package hw

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Register offsets inside the peripheral window.
const (
	OffsetP1Display = 0x20 // HEX3-HEX0
	OffsetP2Display = 0x30 // HEX5-HEX4
	OffsetSwitches  = 0x40 // SW9-SW0
	OffsetButtons   = 0x50 // KEY3-KEY0

	// PeripheralSize is the length of the peripheral window.
	PeripheralSize = 0x10000
)

// Peripherals is the register access the game needs from a board.
// Reads always reflect the register at call time.
type Peripherals interface {
	ReadButtons() uint32
	ReadSwitches() uint32
	WriteP1Display(code uint32)
	WriteP2Display(code uint32)
}

// Registers implements Peripherals over a mapped register window.
type Registers struct {
	mem []byte
}

// NewRegisters wraps a peripheral window. The window must cover all
// registers and be 4-byte aligned.
func NewRegisters(window []byte) (*Registers, error) {
	if len(window) < OffsetButtons+4 {
		return nil, fmt.Errorf("hw: register window too small: %d bytes", len(window))
	}
	if uintptr(unsafe.Pointer(&window[0]))%4 != 0 {
		return nil, fmt.Errorf("hw: register window is not 32-bit aligned")
	}
	return &Registers{mem: window}, nil
}

// word returns the 32-bit register at off.
func (r *Registers) word(off int) *uint32 {
	return (*uint32)(unsafe.Pointer(&r.mem[off]))
}

// Load performs a single 32-bit read of the register at off.
func (r *Registers) Load(off int) uint32 {
	return atomic.LoadUint32(r.word(off))
}

// Store performs a single 32-bit write of the register at off.
func (r *Registers) Store(off int, v uint32) {
	atomic.StoreUint32(r.word(off), v)
}

// ReadButtons returns the push-button register.
func (r *Registers) ReadButtons() uint32 { return r.Load(OffsetButtons) }

// ReadSwitches returns the slide-switch register.
func (r *Registers) ReadSwitches() uint32 { return r.Load(OffsetSwitches) }

// WriteP1Display sets the player 1 display register.
func (r *Registers) WriteP1Display(code uint32) { r.Store(OffsetP1Display, code) }

// WriteP2Display sets the player 2 display register.
func (r *Registers) WriteP2Display(code uint32) { r.Store(OffsetP2Display, code) }

// ClearDisplays blanks both displays.
func (r *Registers) ClearDisplays() {
	r.WriteP1Display(0)
	r.WriteP2Display(0)
}
