// Package video composes frames for the board's RGB565 video surface.
//
// Drawing always goes to an explicit Buffer. A Compositor owns an off-screen
// buffer and the visible surface and copies one into the other in a single
// Present call, so scan-out never sees a partially drawn frame.
package video

import (
	"fmt"

	"github.com/vovakirdan/flapboard/internal/core"
)

// Geometry of the board's video surface. Rows are Stride pixels apart in
// memory even though only Width of them are visible.
const (
	Width  = 320
	Height = 240
	Stride = 512

	// BytesPerPixel is the size of one RGB565 pixel.
	BytesPerPixel = 2
)

// SurfaceBytes is the size of a full surface mapping.
const SurfaceBytes = Stride * Height * BytesPerPixel

// Buffer is a bounds-checked grid of RGB565 pixels addressed through a
// row stride.
type Buffer struct {
	pix    []uint16
	width  int
	height int
	stride int
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height, stride int) *Buffer {
	if stride < width {
		stride = width
	}
	return &Buffer{
		pix:    make([]uint16, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// NewSurfaceBuffer allocates a buffer with the board's surface geometry.
func NewSurfaceBuffer() *Buffer {
	return NewBuffer(Width, Height, Stride)
}

// WrapBuffer uses existing pixel memory (e.g. a mapped frame buffer)
// as a Buffer.
func WrapBuffer(pix []uint16, width, height, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 || stride < width {
		return nil, fmt.Errorf("video: invalid geometry %dx%d stride %d", width, height, stride)
	}
	if len(pix) < stride*height {
		return nil, fmt.Errorf("video: %d pixels is too small for %dx%d stride %d", len(pix), width, height, stride)
	}
	return &Buffer{
		pix:    pix[:stride*height],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the visible width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the visible height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the distance between rows in pixels.
func (b *Buffer) Stride() int { return b.stride }

// Bounds returns the visible rectangle.
func (b *Buffer) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

// offset returns the index of pixel (x, y); the caller checks bounds.
func (b *Buffer) offset(x, y int) int {
	return y*b.stride + x
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[b.offset(x, y)] = uint16(c)
}

// At returns the pixel at (x, y), or Black outside the visible area.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Black
	}
	return Color(b.pix[b.offset(x, y)])
}

// Fill sets every visible pixel to c.
func (b *Buffer) Fill(c Color) {
	for y := 0; y < b.height; y++ {
		row := b.pix[b.offset(0, y):b.offset(b.width, y)]
		for x := range row {
			row[x] = uint16(c)
		}
	}
}

// CopyFrom copies all pixel memory of src into b in one pass.
// Both buffers must have the same geometry.
func (b *Buffer) CopyFrom(src *Buffer) {
	copy(b.pix, src.pix)
}

// ToRGBA converts the visible area to 8-bit RGBA, row-major without
// stride padding. dst must hold at least Width()*Height()*4 bytes.
func (b *Buffer) ToRGBA(dst []byte) {
	i := 0
	for y := 0; y < b.height; y++ {
		for _, p := range b.pix[b.offset(0, y):b.offset(b.width, y)] {
			r, g, bl := Color(p).RGB8()
			dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, bl, 0xFF
			i += 4
		}
	}
}
