package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapboard/internal/registry"
	"github.com/vovakirdan/flapboard/internal/session"
)

var (
	flagBoard    string
	flagDuration time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play on the hardware board",
	Long: `Run the game loop on a board until KEY0 is pressed or the process is
interrupted. The hardware board maps /dev/mem and needs root.

Controls:
  KEY1      - Player 1 flap, restart after game over
  KEY2      - Player 2 flap, restart after game over
  KEY0      - Quit
  SW0-SW1   - Speed
  SW2-SW3   - Gap height
  SW4       - Three obstacles, closer together
  SW5       - Low gravity
  SW6       - Strong jump
  SW7       - Big bird
  SW8       - Two players
  SW9       - Pause

Examples:
  sudo flapboard run
  flapboard run --board sim --duration 5s`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagBoard, "board", "devmem", "Board to run on (see 'flapboard boards')")
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = run until quit)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := registry.Open(flagBoard, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := board.Close(); cerr != nil {
			logger.Error("closing board", "board", flagBoard, "error", cerr)
		}
	}()
	logger.Info("board opened", "board", flagBoard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	s := session.New(board, board.Surface(), session.Options{
		Seed:     cfg.Seed,
		TickRate: cfg.TickRate,
		Logger:   logger,
	})

	err = s.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Info("stopped", "reason", err, "frames", s.Frames(), "high_scores", s.HighScores())
		return nil
	}
	if err == nil {
		logger.Info("quit", "frames", s.Frames(), "high_scores", s.HighScores())
	}
	return err
}
