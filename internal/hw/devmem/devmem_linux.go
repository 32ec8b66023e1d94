//go:build linux

package devmem

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/video"
)

// Board is the hardware board. Both windows stay mapped until Close.
type Board struct {
	*hw.Registers
	file      *os.File
	frame     []byte
	periph    []byte
	surface   *video.Buffer
	closeOnce sync.Once
	closeErr  error
}

// Open maps the frame buffer and the peripheral window described by cfg.
func Open(cfg config.DevMemConfig) (*Board, error) {
	f, err := os.OpenFile(cfg.Path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: open %s: %w", cfg.Path, err)
	}

	frame, err := mapWindow(f, cfg.FrameBase, video.SurfaceBytes)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("devmem: map frame buffer at %#x: %w", cfg.FrameBase, err)
	}

	periph, err := mapWindow(f, cfg.PeripheralBase, hw.PeripheralSize)
	if err != nil {
		unix.Munmap(frame)
		f.Close()
		return nil, fmt.Errorf("devmem: map peripherals at %#x: %w", cfg.PeripheralBase, err)
	}

	b := &Board{file: f, frame: frame, periph: periph}
	if err := b.wrap(); err != nil {
		unix.Munmap(periph)
		unix.Munmap(frame)
		f.Close()
		return nil, err
	}
	return b, nil
}

func mapWindow(f *os.File, base uint64, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), int64(base), size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// wrap builds the register and surface views over the mapped windows.
func (b *Board) wrap() error {
	regs, err := hw.NewRegisters(b.periph)
	if err != nil {
		return fmt.Errorf("devmem: %w", err)
	}
	pix := unsafe.Slice((*uint16)(unsafe.Pointer(&b.frame[0])), len(b.frame)/video.BytesPerPixel)
	surface, err := video.WrapBuffer(pix, video.Width, video.Height, video.Stride)
	if err != nil {
		return fmt.Errorf("devmem: %w", err)
	}
	b.Registers = regs
	b.surface = surface
	return nil
}

// Surface returns the mapped frame buffer.
func (b *Board) Surface() *video.Buffer {
	return b.surface
}

// Close blanks the displays and releases both mappings. The board and its
// surface must not be used afterwards. Repeated calls return the first
// result.
func (b *Board) Close() error {
	b.closeOnce.Do(func() {
		b.ClearDisplays()
		b.closeErr = errors.Join(
			unix.Munmap(b.frame),
			unix.Munmap(b.periph),
			b.file.Close(),
		)
	})
	return b.closeErr
}
