package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/core"
	"github.com/vovakirdan/flapboard/internal/video"
)

// halfBlock shows the top sample as foreground and the bottom as background.
const halfBlock = "▀"

// cellColors is the pair of surface samples shown by one terminal cell.
type cellColors struct {
	top, bottom video.Color
}

// styleCache holds one lipgloss style per color pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(cc cellColors) lipgloss.Style {
	if s, ok := c[cc]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cc.top.Hex())).
		Background(lipgloss.Color(cc.bottom.Hex()))
	c[cc] = s
	return s
}

var surfaceStyles = styleCache{}

// sample returns the colors of terminal cell (col, row) when every cell
// covers cellW x cellH surface pixels.
func sample(buf *video.Buffer, col, row, cellW, cellH int) cellColors {
	x := col * cellW
	y := row * cellH
	return cellColors{
		top:    buf.At(x, y),
		bottom: buf.At(x, y+cellH/2),
	}
}

// RenderSurface converts the surface to a styled string. Each cell covers
// cellW x cellH pixels. Adjacent cells with the same colors are grouped to
// minimize ANSI escape sequences.
func RenderSurface(buf *video.Buffer, cellW, cellH int) string {
	cellW = core.Max(cellW, 1)
	cellH = core.Max(cellH, 1)
	cols := buf.Width() / cellW
	rows := buf.Height() / cellH

	var sb strings.Builder
	sb.Grow(rows * (cols*len(halfBlock) + 1))

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < cols {
			start := sample(buf, col, row, cellW, cellH)
			n := 0
			for col < cols && sample(buf, col, row, cellW, cellH) == start {
				n++
				col++
			}
			sb.WriteString(surfaceStyles.get(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	segStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Background(lipgloss.Color("0")).Padding(0, 1)
	onStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderSwitches shows SW9 to SW0, left to right like on the board.
func renderSwitches(switches uint32) string {
	var sb strings.Builder
	for n := config.NumSwitches - 1; n >= 0; n-- {
		if switches&(1<<n) != 0 {
			sb.WriteString(onStyle.Render("1"))
		} else {
			sb.WriteString(offStyle.Render("0"))
		}
	}
	return sb.String()
}

// renderDisplay shows a seven-segment display register as digits.
func renderDisplay(label string, value int, ok bool) string {
	text := "--"
	if ok {
		text = fmt.Sprintf("%02d", value)
	}
	return statusStyle.Render(label+" ") + segStyle.Render(text)
}
