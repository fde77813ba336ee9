package model

import "github.com/sheikhrachel/go-life/rules"

// CountNeighbours counts living cells within radius of (row, column), excluding the
// cell itself. The board does not wrap: positions past an edge are clamped away.
func CountNeighbours(g *Grid, row, column, radius int) int {
	count := 0

	minRow := max(0, row-radius)
	maxRow := min(g.rows-1, row+radius)
	minCol := max(0, column-radius)
	maxCol := min(g.columns-1, column+radius)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == column {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// NextGeneration computes the next generation of g under rc into a new grid.
// g is only read. pool may be nil.
func NextGeneration(g *Grid, rc *rules.RuleConfig, pool *GridPool) *Grid {
	next := acquire(pool, g.rows, g.columns)
	radius := rc.NeighbourRadius()

	for r := range g.rows {
		for c := range g.columns {
			if rc.Apply(CountNeighbours(g, r, c, radius), g.cells[r][c]) {
				next.cells[r][c] = true
			}
		}
	}

	return next
}

// Step advances g by one generation in place. Every cell is classified against
// the generation g held on entry before any cell is written.
func Step(g *Grid, rc *rules.RuleConfig, pool *GridPool) {
	next := NextGeneration(g, rc, pool)
	g.copyFrom(next)
	GridToPool(next, pool)
}

// Reset kills every cell of g
func Reset(g *Grid) {
	g.ResetAll()
}
