// Uniform-grid broad phase, adapted from fight-club-go's
// internal/game/spatial/grid.go: same cache-friendly row-major cell
// layout and reusable scratch buffer, re-typed from float64 pixel
// coordinates to fixedmath.Fixed world coordinates (the core's world is
// always [0,1]^2, spec.md §3) and from bare uint32 slice indices to
// BodyID so stale handles are caught rather than silently reused.
package physics

import "houndfall/internal/fixedmath"

// bodyGrid provides O(1) average neighbor queries via fixed-size cells.
// Optimal cell size equals the largest query radius used against it.
type bodyGrid struct {
	cellSize    fixedmath.Fixed
	invCellSize fixedmath.Fixed
	cols, rows  int
	cells       [][]BodyID
	scratch     []BodyID
}

func newBodyGrid(cellSize fixedmath.Fixed, maxEntities int) *bodyGrid {
	worldSize := fixedmath.One // world is always [0,1]
	cols := ceilDiv(worldSize, cellSize)
	rows := cols
	if cols < 1 {
		cols = 1
		rows = 1
	}

	cells := make([][]BodyID, cols*rows)
	avgPerCell := maxEntities / len(cells)
	if avgPerCell < 4 {
		avgPerCell = 4
	}
	for i := range cells {
		cells[i] = make([]BodyID, 0, avgPerCell)
	}

	return &bodyGrid{
		cellSize:    cellSize,
		invCellSize: fixedmath.One.Div(cellSize),
		cols:        cols,
		rows:        rows,
		cells:       cells,
		scratch:     make([]BodyID, 0, 64),
	}
}

func ceilDiv(total, cell fixedmath.Fixed) int {
	if cell <= 0 {
		return 1
	}
	q := total.Div(cell)
	whole := int(q >> 16)
	if q&0xFFFF != 0 {
		whole++
	}
	if whole < 1 {
		whole = 1
	}
	return whole
}

func (g *bodyGrid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *bodyGrid) cellCoords(pos fixedmath.Vec2) (int, int) {
	col := int(pos.X.Mul(g.invCellSize) >> 16)
	row := int(pos.Y.Mul(g.invCellSize) >> 16)
	if col < 0 {
		col = 0
	}
	if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

func (g *bodyGrid) insert(id BodyID, pos fixedmath.Vec2) {
	col, row := g.cellCoords(pos)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], id)
}

// queryRadius returns candidate body ids whose cell overlaps the query
// circle. Callers must perform an exact narrow-phase distance check;
// the returned slice is reused on the next call.
func (g *bodyGrid) queryRadius(center fixedmath.Vec2, radius fixedmath.Fixed) []BodyID {
	g.scratch = g.scratch[:0]

	minCol, minRow := g.cellCoords(fixedmath.Vec2{X: center.X.Sub(radius), Y: center.Y.Sub(radius)})
	maxCol, maxRow := g.cellCoords(fixedmath.Vec2{X: center.X.Add(radius), Y: center.Y.Add(radius)})

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			idx := row*g.cols + col
			g.scratch = append(g.scratch, g.cells[idx]...)
		}
	}
	return g.scratch
}
