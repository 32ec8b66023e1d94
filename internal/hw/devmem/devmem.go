// Package devmem maps the board's frame buffer and peripheral registers
// from physical memory through /dev/mem.
package devmem

import (
	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/registry"
)

func init() {
	registry.Register("devmem", "Hardware board through /dev/mem (needs root)", func(cfg config.BoardConfig) (registry.Board, error) {
		b, err := Open(cfg.DevMem)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}
