package core

import "strings"

// Buttons is a snapshot of the push-button register.
// A set bit means the button is held down.
type Buttons uint32

const (
	ButtonQuit Buttons = 1 << iota // KEY0
	ButtonP1                       // KEY1 - player 1 flap
	ButtonP2                       // KEY2 - player 2 flap
)

// String returns a human-readable list of held buttons.
func (b Buttons) String() string {
	var names []string
	if b&ButtonQuit != 0 {
		names = append(names, "Quit")
	}
	if b&ButtonP1 != 0 {
		names = append(names, "P1")
	}
	if b&ButtonP2 != 0 {
		names = append(names, "P2")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// InputFrame holds the button state for one tick together with the state
// seen on the tick before, so actions can be edge-triggered.
type InputFrame struct {
	Buttons Buttons // Held this tick
	Prev    Buttons // Held on the previous tick
}

// NewInputFrame creates an input frame from the current and previous reads.
func NewInputFrame(now, prev Buttons) InputFrame {
	return InputFrame{Buttons: now, Prev: prev}
}

// Held returns true if button b is down this tick.
func (f InputFrame) Held(b Buttons) bool {
	return f.Buttons&b != 0
}

// JustPressed returns true if button b went from released to held
// between the previous tick and this one.
func (f InputFrame) JustPressed(b Buttons) bool {
	return f.Buttons&b != 0 && f.Prev&b == 0
}

// Next returns the frame for the following tick given its button read.
func (f InputFrame) Next(now Buttons) InputFrame {
	return InputFrame{Buttons: now, Prev: f.Buttons}
}
