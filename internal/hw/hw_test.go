package hw

import (
	"testing"
	"unsafe"
)

// newTestWindow returns an aligned peripheral window backed by plain memory.
func newTestWindow() []byte {
	words := make([]uint32, PeripheralSize/4)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), PeripheralSize)
}

func TestEncodeDisplay(t *testing.T) {
	tests := []struct {
		value    int
		expected uint32
	}{
		{0, 0x3F3F},
		{7, 0x3F07},
		{42, 0x665B},
		{99, 0x6F6F},
		{150, 0x6F6F}, // clamped
		{-3, 0x3F3F},  // clamped
	}

	for _, tc := range tests {
		if got := EncodeDisplay(tc.value); got != tc.expected {
			t.Errorf("EncodeDisplay(%d) = %#04x, expected %#04x", tc.value, got, tc.expected)
		}
	}
}

func TestDecodeDisplay(t *testing.T) {
	for v := 0; v <= MaxDisplayValue; v++ {
		got, ok := DecodeDisplay(EncodeDisplay(v))
		if !ok || got != v {
			t.Fatalf("DecodeDisplay(EncodeDisplay(%d)) = %d, %v", v, got, ok)
		}
	}

	if _, ok := DecodeDisplay(0); ok {
		t.Error("a blank display should not decode")
	}
}

func TestRegistersReadWrite(t *testing.T) {
	window := newTestWindow()
	regs, err := NewRegisters(window)
	if err != nil {
		t.Fatalf("NewRegisters() failed: %v", err)
	}

	regs.Store(OffsetButtons, 0b110)
	regs.Store(OffsetSwitches, 0x3FF)

	if got := regs.ReadButtons(); got != 0b110 {
		t.Errorf("ReadButtons() = %b, expected 110", got)
	}
	if got := regs.ReadSwitches(); got != 0x3FF {
		t.Errorf("ReadSwitches() = %#x, expected 0x3FF", got)
	}

	// Reads are not cached: a later store is visible immediately
	regs.Store(OffsetSwitches, 0x001)
	if got := regs.ReadSwitches(); got != 0x001 {
		t.Errorf("ReadSwitches() after store = %#x, expected 0x1", got)
	}

	WriteScores(regs, 12, 34)
	if got := regs.Load(OffsetP1Display); got != EncodeDisplay(12) {
		t.Errorf("P1 display = %#x, expected %#x", got, EncodeDisplay(12))
	}
	if got := regs.Load(OffsetP2Display); got != EncodeDisplay(34) {
		t.Errorf("P2 display = %#x, expected %#x", got, EncodeDisplay(34))
	}

	regs.ClearDisplays()
	if regs.Load(OffsetP1Display) != 0 || regs.Load(OffsetP2Display) != 0 {
		t.Error("ClearDisplays() should zero both display registers")
	}
}

func TestNewRegistersRejectsShortWindow(t *testing.T) {
	if _, err := NewRegisters(make([]byte, 16)); err == nil {
		t.Error("NewRegisters() should reject a window without the button register")
	}
}
