package video

// Glyph metrics for the digit font. Each font cell is drawn as a
// GlyphScale x GlyphScale block.
const (
	GlyphWidth   = 3
	GlyphHeight  = 5
	GlyphScale   = 2
	GlyphSpacing = 2 // Pixels between digits
)

// digitFont holds a 3x5 bitmap per decimal digit, one row per byte,
// bit 2 = leftmost column.
var digitFont = [10][GlyphHeight]byte{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b011, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// glyphCell reports whether column col of row row is lit for digit d.
func glyphCell(d, row, col int) bool {
	return digitFont[d][row]&(1<<(GlyphWidth-1-col)) != 0
}
