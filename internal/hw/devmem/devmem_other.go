//go:build !linux

package devmem

import (
	"errors"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/video"
)

// ErrUnsupported is returned by Open on systems without /dev/mem mapping.
var ErrUnsupported = errors.New("devmem: physical memory mapping is only supported on linux")

// Board is unavailable on this system.
type Board struct {
	hw.Peripherals
}

// Open always fails on this system.
func Open(config.DevMemConfig) (*Board, error) {
	return nil, ErrUnsupported
}

// Surface returns nil.
func (b *Board) Surface() *video.Buffer { return nil }

// Close does nothing.
func (b *Board) Close() error { return nil }
