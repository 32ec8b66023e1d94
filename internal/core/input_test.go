package core

import "testing"

func TestInputFrameJustPressed(t *testing.T) {
	tests := []struct {
		name     string
		now      Buttons
		prev     Buttons
		button   Buttons
		expected bool
	}{
		{"press from idle", ButtonP1, 0, ButtonP1, true},
		{"held across ticks", ButtonP1, ButtonP1, ButtonP1, false},
		{"released", 0, ButtonP1, ButtonP1, false},
		{"other button pressed", ButtonP2, 0, ButtonP1, false},
		{"p2 press while p1 held", ButtonP1 | ButtonP2, ButtonP1, ButtonP2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.now, tc.prev)
			if got := f.JustPressed(tc.button); got != tc.expected {
				t.Errorf("JustPressed(%v) = %v, expected %v", tc.button, got, tc.expected)
			}
		})
	}
}

func TestInputFrameNext(t *testing.T) {
	f := NewInputFrame(ButtonP1, 0)
	next := f.Next(ButtonP1)

	if next.Prev != ButtonP1 {
		t.Errorf("Next() should carry buttons into Prev, got %v", next.Prev)
	}
	if next.JustPressed(ButtonP1) {
		t.Error("holding a button must not re-trigger on the next tick")
	}
	if !next.Held(ButtonP1) {
		t.Error("button should still be held")
	}
}

func TestButtonsString(t *testing.T) {
	if got := Buttons(0).String(); got != "None" {
		t.Errorf("String() = %q, expected None", got)
	}
	if got := (ButtonQuit | ButtonP2).String(); got != "Quit|P2" {
		t.Errorf("String() = %q, expected Quit|P2", got)
	}
}
