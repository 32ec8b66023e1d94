package config

import "testing"

func TestDecodeAllOff(t *testing.T) {
	got := Decode(0b0000000000)
	want := DifficultyConfig{
		Speed:       2,
		GapHeight:   100,
		Obstacles:   2,
		Spacing:     220,
		Gravity:     0.5,
		JumpImpulse: -5.5,
		BirdRadius:  10,
		TwoPlayer:   false,
		Paused:      false,
	}
	if got != want {
		t.Errorf("Decode(0) = %+v, expected %+v", got, want)
	}
}

func TestDecodeAllOn(t *testing.T) {
	got := Decode(0b1111111111)
	want := DifficultyConfig{
		Speed:       5,
		GapHeight:   70,
		Obstacles:   3,
		Spacing:     130,
		Gravity:     0.35,
		JumpImpulse: -7.0,
		BirdRadius:  13,
		TwoPlayer:   true,
		Paused:      true,
	}
	if got != want {
		t.Errorf("Decode(0x3FF) = %+v, expected %+v", got, want)
	}
}

func TestDecodeSpeedAndGap(t *testing.T) {
	tests := []struct {
		switches uint32
		speed    int
		gap      int
	}{
		{0b0000, 2, 100},
		{0b0001, 3, 100},
		{0b0010, 4, 100},
		{0b0011, 5, 100},
		{0b0100, 2, 90},
		{0b1000, 2, 80},
		{0b1100, 2, 70},
		{0b1110, 4, 70},
	}

	for _, tc := range tests {
		cfg := Decode(tc.switches)
		if cfg.Speed != tc.speed {
			t.Errorf("Decode(%04b).Speed = %d, expected %d", tc.switches, cfg.Speed, tc.speed)
		}
		if cfg.GapHeight != tc.gap {
			t.Errorf("Decode(%04b).GapHeight = %d, expected %d", tc.switches, cfg.GapHeight, tc.gap)
		}
	}
}

func TestDecodeSingleBits(t *testing.T) {
	base := Decode(0)

	tests := []struct {
		name   string
		bit    uint32
		change func(c DifficultyConfig) bool
	}{
		{"obstacles", SwitchObstacles, func(c DifficultyConfig) bool { return c.Obstacles == 3 && c.Spacing == 130 }},
		{"gravity", SwitchGravity, func(c DifficultyConfig) bool { return c.Gravity == 0.35 }},
		{"jump", SwitchJump, func(c DifficultyConfig) bool { return c.JumpImpulse == -7.0 }},
		{"radius", SwitchRadius, func(c DifficultyConfig) bool { return c.BirdRadius == 13 }},
		{"two player", SwitchTwoPlayer, func(c DifficultyConfig) bool { return c.TwoPlayer }},
		{"paused", SwitchPaused, func(c DifficultyConfig) bool { return c.Paused }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Decode(tc.bit)
			if !tc.change(cfg) {
				t.Errorf("Decode(%#x) did not apply %s: %+v", tc.bit, tc.name, cfg)
			}
			// Speed and gap come from other bits and must stay at the base values
			if cfg.Speed != base.Speed || cfg.GapHeight != base.GapHeight {
				t.Errorf("Decode(%#x) changed unrelated fields: %+v", tc.bit, cfg)
			}
		})
	}
}

func TestDecodeIgnoresReservedBits(t *testing.T) {
	if Decode(0xFFFFFC00) != Decode(0) {
		t.Error("bits above SW9 should be ignored")
	}
	if Decode(0xFFFFFFFF) != Decode(0x3FF) {
		t.Error("bits above SW9 should be ignored")
	}
}

func TestDecodeIsPure(t *testing.T) {
	for sw := uint32(0); sw < 1<<NumSwitches; sw++ {
		if Decode(sw) != Decode(sw) {
			t.Fatalf("Decode(%#x) is not deterministic", sw)
		}
	}
}
