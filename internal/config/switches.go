package config

import "fmt"

// Switch bit layout of the slide-switch register (SW0 is bit 0).
const (
	SwitchSpeedMask = 0b11 // SW0-SW1
	SwitchGapShift  = 2    // SW2-SW3
	SwitchGapMask   = 0b11
	SwitchObstacles = 1 << 4
	SwitchGravity   = 1 << 5
	SwitchJump      = 1 << 6
	SwitchRadius    = 1 << 7
	SwitchTwoPlayer = 1 << 8
	SwitchPaused    = 1 << 9

	// NumSwitches is the number of switches the decoder reads.
	NumSwitches = 10
)

// Decoded parameter values. Index 0 is the switch-off setting: SW5 off
// gives gravity 0.5, SW6 off gives jump -5.5.
var (
	speedLevels = [4]int{2, 3, 4, 5}
	gapLevels   = [4]int{100, 90, 80, 70}
	obstacleSet = [2]struct{ count, spacing int }{
		{2, 220},
		{3, 130},
	}
	gravityLevels = [2]float64{0.5, 0.35}
	jumpLevels    = [2]float64{-5.5, -7.0}
	radiusLevels  = [2]int{10, 13}
)

// DifficultyConfig is the set of simulation parameters selected by the
// switches for one tick. It is recomputed from the register every tick
// and never modified after decoding.
type DifficultyConfig struct {
	Speed       int     // Obstacle scroll speed in pixels per tick
	GapHeight   int     // Vertical opening of each obstacle
	Obstacles   int     // Active obstacle count (2 or 3)
	Spacing     int     // Horizontal distance between obstacles
	Gravity     float64 // Downward acceleration per tick
	JumpImpulse float64 // Velocity set on a flap (negative = up)
	BirdRadius  int     // Bird body radius
	TwoPlayer   bool
	Paused      bool
}

// Decode turns a raw switch register value into a DifficultyConfig.
// Bits above SW9 are ignored.
func Decode(switches uint32) DifficultyConfig {
	obs := obstacleSet[bit(switches, SwitchObstacles)]
	return DifficultyConfig{
		Speed:       speedLevels[switches&SwitchSpeedMask],
		GapHeight:   gapLevels[(switches>>SwitchGapShift)&SwitchGapMask],
		Obstacles:   obs.count,
		Spacing:     obs.spacing,
		Gravity:     gravityLevels[bit(switches, SwitchGravity)],
		JumpImpulse: jumpLevels[bit(switches, SwitchJump)],
		BirdRadius:  radiusLevels[bit(switches, SwitchRadius)],
		TwoPlayer:   switches&SwitchTwoPlayer != 0,
		Paused:      switches&SwitchPaused != 0,
	}
}

// bit returns 1 if mask is set in v, else 0.
func bit(v uint32, mask uint32) int {
	if v&mask != 0 {
		return 1
	}
	return 0
}

// String formats the config for logs and the decode command.
func (c DifficultyConfig) String() string {
	return fmt.Sprintf("speed=%d gap=%d obstacles=%d spacing=%d gravity=%.2f jump=%.1f radius=%d two_player=%t paused=%t",
		c.Speed, c.GapHeight, c.Obstacles, c.Spacing, c.Gravity, c.JumpImpulse, c.BirdRadius, c.TwoPlayer, c.Paused)
}
