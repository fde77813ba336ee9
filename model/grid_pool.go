package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles scratch grids between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the requested dimensions
func (p *GridPool) Get(rows, columns int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reshape(rows, columns)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// acquire takes a scratch grid from the pool, or allocates one when pool is nil
func acquire(pool *GridPool, rows, columns int) *Grid {
	if pool == nil {
		return newGrid(rows, columns)
	}
	return pool.Get(rows, columns)
}

// reshape sets pooled grids to the given dimensions and clears every cell,
// reusing row slices when their capacity allows
func (g *Grid) reshape(rows, columns int) {
	g.rows = rows
	g.columns = columns

	if cap(g.cells) < rows {
		g.cells = make([][]bool, rows)
	}
	g.cells = g.cells[:rows]
	for i := range g.cells {
		if cap(g.cells[i]) < columns {
			g.cells[i] = make([]bool, columns)
			continue
		}
		g.cells[i] = g.cells[i][:columns]
		clear(g.cells[i])
	}
}
