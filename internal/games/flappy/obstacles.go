package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
)

// Obstacle is a pair of pipes with a gap between them.
type Obstacle struct {
	X      int  // Left edge
	GapY   int  // Top of the gap
	Scored bool // Whether this pass has already been scored
}

// Rect returns the full-height column the obstacle occupies.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, 0, ObstacleWidth, ScreenH)
}

// TopRect returns the upper pipe.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, ObstacleWidth, o.GapY)
}

// BottomRect returns the lower pipe for the given gap height.
func (o Obstacle) BottomRect(gapHeight int) core.Rect {
	bottomY := o.GapY + gapHeight
	return core.NewRect(o.X, bottomY, ObstacleWidth, ScreenH-bottomY)
}

// ObstaclePool is a fixed arena of obstacle slots. The first Active() slots
// scroll across the screen; the rest are parked left of it. Obstacles that
// leave the screen are recycled behind the rightmost one.
type ObstaclePool struct {
	slots  [MaxObstacles]Obstacle
	active int
	rng    *rand.Rand
}

// NewObstaclePool creates a pool drawing gap positions from rng.
func NewObstaclePool(rng *rand.Rand) *ObstaclePool {
	pm := &ObstaclePool{rng: rng}
	for i := range pm.slots {
		pm.park(i)
	}
	return pm
}

// Reset lays out cfg.Obstacles obstacles at their starting offsets and
// parks the remaining slots.
func (pm *ObstaclePool) Reset(cfg config.DifficultyConfig) {
	pm.active = core.Clamp(cfg.Obstacles, 0, MaxObstacles)
	for i := range pm.slots {
		if i >= pm.active {
			pm.park(i)
			continue
		}
		pm.slots[i] = Obstacle{
			X:    ScreenW + SpawnOffset + i*cfg.Spacing,
			GapY: pm.randomGapY(cfg.GapHeight),
		}
	}
}

// SetActive changes the number of active slots. Slots that stop being
// active are parked; parked slots that become active are recycled on the
// next Advance because they are already off screen.
func (pm *ObstaclePool) SetActive(n int) {
	n = core.Clamp(n, 0, MaxObstacles)
	for i := n; i < pm.active; i++ {
		pm.park(i)
	}
	pm.active = n
}

// park moves slot i off screen. It is marked scored so that scrolling it
// back in never awards a point before it has been recycled.
func (pm *ObstaclePool) park(i int) {
	pm.slots[i] = Obstacle{X: ParkedX, Scored: true}
}

// Advance scrolls the active obstacles by cfg.Speed, scores obstacles whose
// right edge has passed scoreX and recycles those that left the screen.
// Returns the number of obstacles passed this tick.
func (pm *ObstaclePool) Advance(cfg config.DifficultyConfig, scoreX int) int {
	pm.SetActive(cfg.Obstacles)

	passed := 0
	for i := 0; i < pm.active; i++ {
		o := &pm.slots[i]
		o.X -= cfg.Speed

		if !o.Scored && o.X+ObstacleWidth < scoreX {
			o.Scored = true
			passed++
		}

		if o.X+ObstacleWidth < 0 {
			o.X = pm.maxX() + cfg.Spacing
			o.GapY = pm.randomGapY(cfg.GapHeight)
			o.Scored = false
		}
	}
	return passed
}

// maxX returns the largest X among active obstacles, or 0 if all are left
// of the screen origin.
func (pm *ObstaclePool) maxX() int {
	maxX := 0
	for i := 0; i < pm.active; i++ {
		maxX = core.Max(maxX, pm.slots[i].X)
	}
	return maxX
}

// randomGapY picks a gap top that keeps the gap GapMargin pixels away
// from both screen edges.
func (pm *ObstaclePool) randomGapY(gapHeight int) int {
	span := ScreenH - gapHeight - 2*GapMargin
	if span <= 0 {
		return GapMargin
	}
	return GapMargin + pm.rng.Intn(span)
}

// Active returns the active obstacles. The slice aliases the pool.
func (pm *ObstaclePool) Active() []Obstacle {
	return pm.slots[:pm.active]
}

// Slot returns obstacle slot i, active or not.
func (pm *ObstaclePool) Slot(i int) Obstacle {
	return pm.slots[i]
}
