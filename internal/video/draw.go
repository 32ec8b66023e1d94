package video

import "github.com/vovakirdan/flapboard/internal/core"

// SetPixel writes one pixel to dst. Out-of-bounds writes are discarded.
func SetPixel(dst *Buffer, x, y int, c Color) {
	dst.Set(x, y, c)
}

// FillRect fills the half-open rectangle [x0,x1) x [y0,y1), clipped to the
// visible area.
func FillRect(dst *Buffer, x0, y0, x1, y1 int, c Color) {
	r := core.NewRect(x0, y0, x1-x0, y1-y0).Clip(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := dst.pix[dst.offset(r.X, y):dst.offset(r.Right(), y)]
		for i := range row {
			row[i] = uint16(c)
		}
	}
}

// FillCircle fills every pixel with dx*dx + dy*dy <= r*r around (cx, cy).
func FillCircle(dst *Buffer, cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				dst.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawGlyph draws digit d (0-9) with its top-left corner at (x, y).
// Other values draw nothing.
func DrawGlyph(dst *Buffer, d, x, y int, c Color) {
	if d < 0 || d > 9 {
		return
	}
	for row := 0; row < GlyphHeight; row++ {
		for col := 0; col < GlyphWidth; col++ {
			if !glyphCell(d, row, col) {
				continue
			}
			px := x + col*GlyphScale
			py := y + row*GlyphScale
			FillRect(dst, px, py, px+GlyphScale, py+GlyphScale, c)
		}
	}
}

// GlyphAdvance is how far the cursor moves per digit.
const GlyphAdvance = GlyphWidth*GlyphScale + GlyphSpacing

// DrawNumber draws value in decimal with its last digit ending at rightX.
// Negative values are drawn as 0. It returns the x of the leftmost digit.
func DrawNumber(dst *Buffer, value, rightX, y int, c Color) int {
	if value < 0 {
		value = 0
	}
	x := rightX
	for {
		x -= GlyphWidth * GlyphScale
		DrawGlyph(dst, value%10, x, y, c)
		value /= 10
		if value == 0 {
			return x
		}
		x -= GlyphSpacing
	}
}
