package model

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// Pattern is a small seed shape, one string per row, 'O' marking live cells
type Pattern []string

// Rows returns the pattern height
func (p Pattern) Rows() int { return len(p) }

// Columns returns the width of the widest pattern row
func (p Pattern) Columns() (columns int) {
	for _, row := range p {
		columns = max(columns, len(row))
	}
	return
}

var patterns = map[string]Pattern{
	"block": {
		"OO",
		"OO",
	},
	"blinker": {
		"O",
		"O",
		"O",
	},
	"toad": {
		".OOO",
		"OOO.",
	},
	"beacon": {
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	},
	"glider": {
		".O.",
		"..O",
		"OOO",
	},
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPattern returns the named built-in pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(utils.ErrInvalidArgument, "[LookupPattern] unknown pattern %q, choose one of %s",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PlacePattern brings the named pattern to life with its top-left corner at (row, column).
// Cells outside the pattern's live cells are left untouched.
func PlacePattern(g *Grid, name string, row, column int) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	if !g.InBounds(row, column) || !g.InBounds(row+p.Rows()-1, column+p.Columns()-1) {
		return errors.Wrapf(utils.ErrOutOfRange, "[PlacePattern] %q does not fit at (%d,%d) in %dx%d grid",
			name, row, column, g.rows, g.columns)
	}

	for dr, line := range p {
		for dc, ch := range line {
			if ch == 'O' {
				g.cells[row+dr][column+dc] = true
			}
		}
	}
	return nil
}

// PlacePatternCentered places the named pattern in the middle of the grid
func PlacePatternCentered(g *Grid, name string) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	return PlacePattern(g, name, (g.rows-p.Rows())/2, (g.columns-p.Columns())/2)
}

// Randomize sets every cell alive with the given probability
func Randomize(g *Grid, density float64, rng *rand.Rand) {
	for r := range g.rows {
		for c := range g.columns {
			g.cells[r][c] = rng.Float64() < density
		}
	}
}
