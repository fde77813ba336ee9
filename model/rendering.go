package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// cursor home, then erase the display
	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) {
	var sb strings.Builder
	for row := range g.rows {
		for col := range g.columns {
			if g.cells[row][col] {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.Out, sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
