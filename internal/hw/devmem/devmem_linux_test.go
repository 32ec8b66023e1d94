//go:build linux

package devmem

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/video"
)

// fakeMemory creates a regular file laid out like physical memory: the
// frame buffer at 0 and the peripherals right after it.
func fakeMemory(t *testing.T) config.DevMemConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mem")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := f.Truncate(video.SurfaceBytes + hw.PeripheralSize); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return config.DevMemConfig{
		Path:           path,
		FrameBase:      0,
		PeripheralBase: video.SurfaceBytes,
	}
}

func TestOpenMissingDevice(t *testing.T) {
	cfg := config.DevMemConfig{Path: filepath.Join(t.TempDir(), "missing")}
	if _, err := Open(cfg); err == nil {
		t.Error("Open should fail when the device does not exist")
	}
}

func TestBoardMapsWindows(t *testing.T) {
	cfg := fakeMemory(t)

	b, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	b.Surface().Set(1, 1, video.Red)
	hw.WriteScores(b, 4, 2)

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	pixel := binary.LittleEndian.Uint16(data[(video.Stride+1)*video.BytesPerPixel:])
	if pixel != uint16(video.Red) {
		t.Errorf("pixel (1,1) in memory = %#04x, expected %#04x", pixel, uint16(video.Red))
	}
	p1 := binary.LittleEndian.Uint32(data[video.SurfaceBytes+hw.OffsetP1Display:])
	if p1 != hw.EncodeDisplay(4) {
		t.Errorf("P1 display in memory = %#x, expected %#x", p1, hw.EncodeDisplay(4))
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close should return the first result, got %v", err)
	}

	data, err = os.ReadFile(cfg.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if binary.LittleEndian.Uint32(data[video.SurfaceBytes+hw.OffsetP1Display:]) != 0 ||
		binary.LittleEndian.Uint32(data[video.SurfaceBytes+hw.OffsetP2Display:]) != 0 {
		t.Error("Close should blank both displays")
	}
}
