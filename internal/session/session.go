// Package session drives one board: it reads the registers once per tick,
// runs the simulation while a round is active, waits for a restart after
// game over, presents each frame and keeps the high scores on the
// seven-segment displays.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
	"github.com/vovakirdan/flapboard/internal/games/flappy"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/video"
)

// State is the session state.
type State int

const (
	StateActive State = iota // A round is being played
	StateEnded               // Round over, waiting for a flap to restart
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DefaultTickRate is used when Options.TickRate is not positive.
const DefaultTickRate = 60

// controls is logged whenever a round starts.
const controls = "KEY1 = player 1 flap, KEY2 = player 2 flap, KEY0 = quit, SW0-SW9 = difficulty"

// Options configures a Session.
type Options struct {
	Seed     int64       // RNG seed, 0 = time based
	TickRate int         // Ticks per second for Run
	Logger   *log.Logger // nil discards log output
}

// Session owns the game, the frame compositor and the high scores of one
// board. It is not safe for concurrent use: call Tick or Run from a
// single goroutine.
type Session struct {
	board    hw.Peripherals
	comp     *video.Compositor
	game     *flappy.Game
	state    State
	cfg      config.DifficultyConfig
	input    core.InputFrame
	high     [flappy.NumPlayers]int
	tickRate int
	logger   *log.Logger
}

// New creates a session presenting into surface and starts the first round
// with the switch configuration currently set on the board. Buttons held
// at this point do not count as presses.
func New(board hw.Peripherals, surface *video.Buffer, opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	now := core.Buttons(board.ReadButtons())
	s := &Session{
		board:    board,
		comp:     video.NewCompositor(surface),
		game:     flappy.New(seed),
		cfg:      config.Decode(board.ReadSwitches()),
		input:    core.NewInputFrame(now, now),
		tickRate: tickRate,
		logger:   logger,
	}
	s.logger.Info("session started", "seed", seed, "tick_rate", tickRate)
	s.start()
	return s
}

// start begins a new round with the current configuration.
func (s *Session) start() {
	s.game.Reset(s.cfg)
	s.state = StateActive
	s.logger.Info("round started", "controls", controls, "config", s.cfg)
}

// Tick runs one iteration of the main loop and reports whether a quit was
// requested. A quitting tick neither simulates nor draws.
func (s *Session) Tick() (quit bool) {
	s.input = s.input.Next(core.Buttons(s.board.ReadButtons()))

	cfg := config.Decode(s.board.ReadSwitches())
	if cfg != s.cfg {
		s.logger.Debug("switches changed", "config", cfg)
		s.cfg = cfg
	}

	if s.input.JustPressed(core.ButtonQuit) {
		s.logger.Info("quit requested", "high_p1", s.high[flappy.Player1], "high_p2", s.high[flappy.Player2])
		return true
	}

	switch s.state {
	case StateActive:
		if !cfg.Paused && s.game.Step(cfg, s.input).Over {
			s.end()
		}
	case StateEnded:
		if s.input.JustPressed(core.ButtonP1) || s.input.JustPressed(core.ButtonP2) {
			s.logger.Info("restart")
			s.start()
		}
	}

	s.game.Render(s.comp.Back(), cfg)
	s.comp.Present()
	hw.WriteScores(s.board, s.high[flappy.Player1], s.high[flappy.Player2])
	return false
}

// end finishes the round and raises the high scores.
func (s *Session) end() {
	scores := s.game.Scores()
	for p, score := range scores {
		s.high[p] = core.Max(s.high[p], score)
	}
	s.state = StateEnded
	s.logger.Info("game over",
		"score_p1", scores[flappy.Player1],
		"score_p2", scores[flappy.Player2],
		"high_p1", s.high[flappy.Player1],
		"high_p2", s.high[flappy.Player2],
		"ticks", s.game.Ticks(),
	)
}

// Run ticks at the configured rate until a quit is requested, which returns
// nil, or ctx is done, which returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.Tick() {
				return nil
			}
		}
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Scores returns the scores of the current or last round.
func (s *Session) Scores() [flappy.NumPlayers]int {
	return s.game.Scores()
}

// HighScores returns the best score of each player since the session began.
func (s *Session) HighScores() [flappy.NumPlayers]int {
	return s.high
}

// Config returns the configuration decoded on the last tick.
func (s *Session) Config() config.DifficultyConfig {
	return s.cfg
}

// Frames returns the number of frames presented.
func (s *Session) Frames() uint64 {
	return s.comp.Frames()
}
