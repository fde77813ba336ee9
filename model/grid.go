package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// Grid is a fixed-size board of alive/dead cells addressed by (row, column).
// It does no locking; the owner serializes toggles and steps.
type Grid struct {
	rows    int
	columns int
	cells   [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(utils.ErrInvalidArgument, "[NewGrid] dimensions must be positive, got %dx%d", rows, columns)
	}
	return newGrid(rows, columns), nil
}

func newGrid(rows, columns int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// RowCount returns the number of rows
func (g *Grid) RowCount() int {
	return g.rows
}

// ColumnCount returns the number of columns
func (g *Grid) ColumnCount() int {
	return g.columns
}

// InBounds reports whether (row, column) addresses a cell of the grid
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Get returns the state of a cell. It panics if the position is out of range.
func (g *Grid) Get(row, column int) bool {
	g.mustBeInBounds("Get", row, column)
	return g.cells[row][column]
}

// Set sets a cell to alive (true) or dead (false). It panics if the position is out of range.
func (g *Grid) Set(row, column int, alive bool) {
	g.mustBeInBounds("Set", row, column)
	g.cells[row][column] = alive
}

// Toggle flips a cell, reporting ErrOutOfRange instead of panicking
func (g *Grid) Toggle(row, column int) error {
	if !g.InBounds(row, column) {
		return errors.Wrapf(utils.ErrOutOfRange, "[Toggle] cell (%d,%d) outside %dx%d grid", row, column, g.rows, g.columns)
	}
	g.cells[row][column] = !g.cells[row][column]
	return nil
}

func (g *Grid) mustBeInBounds(op string, row, column int) {
	if !g.InBounds(row, column) {
		panic(errors.Wrapf(utils.ErrOutOfRange, "[%s] cell (%d,%d) outside %dx%d grid", op, row, column, g.rows, g.columns))
	}
}

// ResetAll kills every cell
func (g *Grid) ResetAll() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := newGrid(g.rows, g.columns)
	clone.copyFrom(g)
	return clone
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// copyFrom overwrites the cells with those of src, which must have the same dimensions
func (g *Grid) copyFrom(src *Grid) {
	for r := range g.rows {
		copy(g.cells[r], src.cells[r])
	}
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
