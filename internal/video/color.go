package video

import (
	"fmt"
	"image/color"
)

// Color is a 16-bit RGB565 pixel: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Palette used by the game.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Green   Color = 0x07E0
	SkyBlue Color = 0x841F
	Yellow  Color = 0xFFE0 // Player 1
	Red     Color = 0xF800 // Player 2
	Orange  Color = 0xFC00 // Beak
)

// RGB565 packs 8-bit channels into a Color, dropping the low bits.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB8 expands the color to 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	r5 := uint8((c >> 11) & 0x1F)
	g6 := uint8((c >> 5) & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xFF}.RGBA()
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
