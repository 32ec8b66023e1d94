package flappy

import "github.com/vovakirdan/flapboard/internal/core"

// Bird is one player's avatar. Its horizontal position is fixed per slot.
type Bird struct {
	Y     float64 // Center, pixels from the top
	VelY  float64 // Pixels per tick, positive = down
	Alive bool
}

// reset centers the bird vertically at rest.
func (b *Bird) reset(alive bool) {
	b.Y = ScreenH / 2.0
	b.VelY = 0
	b.Alive = alive
}

// flap replaces the current velocity with the jump impulse.
func (b *Bird) flap(impulse float64) {
	b.VelY = impulse
}

// fall integrates one tick of gravity.
func (b *Bird) fall(gravity float64) {
	b.VelY += gravity
	b.Y += b.VelY
}

// OutOfBounds reports whether the bird's vertical extent leaves the screen.
func (b Bird) OutOfBounds(radius int) bool {
	r := float64(radius)
	return b.Y-r < 0 || b.Y+r > ScreenH
}

// Collides reports whether a bird centered at column x with the given
// radius hits the screen bounds or obstacle o. A bird exactly touching the
// gap edges does not collide.
func (b Bird) Collides(x, radius int, o Obstacle, gapHeight int) bool {
	if b.OutOfBounds(radius) {
		return true
	}
	body := core.NewRect(x-radius, 0, 2*radius, ScreenH)
	if !body.OverlapsX(o.Rect()) {
		return false
	}
	r := float64(radius)
	return b.Y-r < float64(o.GapY) || b.Y+r > float64(o.GapY+gapHeight)
}
