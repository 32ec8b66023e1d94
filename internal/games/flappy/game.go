// Package flappy implements the bird and obstacle simulation: flap physics,
// a recycled pool of obstacles, collision and scoring for one or two players.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
	"github.com/vovakirdan/flapboard/internal/video"
)

// Playfield layout, in surface pixels.
const (
	ScreenW       = video.Width
	ScreenH       = video.Height
	ObstacleWidth = 50
	GapMargin     = 30                  // Minimum distance from gap to screen edge
	SpawnOffset   = 150                 // First obstacle starts this far past the right edge
	ParkedX       = -ObstacleWidth - 10 // X of inactive slots
	MaxObstacles  = 3
)

// Player slots.
const (
	Player1 = iota
	Player2
	NumPlayers
)

// PlayerX is the fixed column of each player's bird.
var PlayerX = [NumPlayers]int{60, 90}

// flapButton is the button that makes each player's bird flap.
var flapButton = [NumPlayers]core.Buttons{core.ButtonP1, core.ButtonP2}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Passed int  // Obstacles passed this tick
	Over   bool // Whether every required bird is dead
}

// Game holds the birds, the obstacle pool and the current scores.
type Game struct {
	birds     [NumPlayers]Bird
	pool      *ObstaclePool
	scores    [NumPlayers]int
	tickCount int
}

// New creates a game whose obstacle gaps are drawn from a source seeded
// with seed. Call Reset before the first Step.
func New(seed int64) *Game {
	return &Game{
		pool: NewObstaclePool(rand.New(rand.NewSource(seed))),
	}
}

// Reset starts a new round with cfg: birds centered at rest (the second
// only alive in two-player mode), obstacles at their starting offsets and
// scores cleared.
func (g *Game) Reset(cfg config.DifficultyConfig) {
	g.birds[Player1].reset(true)
	g.birds[Player2].reset(cfg.TwoPlayer)
	g.scores = [NumPlayers]int{}
	g.tickCount = 0
	g.pool.Reset(cfg)
}

// Step advances the simulation by one tick.
func (g *Game) Step(cfg config.DifficultyConfig, in core.InputFrame) StepResult {
	g.tickCount++

	// Flap on press, not while held
	for p := range g.birds {
		if g.birds[p].Alive && in.JustPressed(flapButton[p]) {
			g.birds[p].flap(cfg.JumpImpulse)
		}
	}

	for p := range g.birds {
		if g.birds[p].Alive {
			g.birds[p].fall(cfg.Gravity)
		}
	}

	// Every living bird scores when an obstacle clears player 1's column
	passed := g.pool.Advance(cfg, PlayerX[Player1])
	for p := range g.birds {
		if g.birds[p].Alive {
			g.scores[p] += passed
		}
	}

	for p := range g.birds {
		b := &g.birds[p]
		if !b.Alive {
			continue
		}
		if b.OutOfBounds(cfg.BirdRadius) {
			b.Alive = false
			continue
		}
		for _, o := range g.pool.Active() {
			if b.Collides(PlayerX[p], cfg.BirdRadius, o, cfg.GapHeight) {
				b.Alive = false
				break
			}
		}
	}

	return StepResult{Passed: passed, Over: g.Over(cfg)}
}

// Over reports whether the round has ended under cfg: player 1 is dead and,
// in two-player mode, player 2 as well.
func (g *Game) Over(cfg config.DifficultyConfig) bool {
	if cfg.TwoPlayer {
		return !g.birds[Player1].Alive && !g.birds[Player2].Alive
	}
	return !g.birds[Player1].Alive
}

// Bird returns player p's bird.
func (g *Game) Bird(p int) Bird {
	return g.birds[p]
}

// Score returns player p's score for the current round.
func (g *Game) Score(p int) int {
	return g.scores[p]
}

// Scores returns both players' scores.
func (g *Game) Scores() [NumPlayers]int {
	return g.scores
}

// Obstacles returns the obstacle pool.
func (g *Game) Obstacles() *ObstaclePool {
	return g.pool
}

// Ticks returns the number of simulated ticks since the last Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}
