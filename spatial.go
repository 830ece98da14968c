package main

const (
	SpatialCellSize = 64.0 // ~3x the collision radius
	SpatialCols     = 17   // ceil(1024/64) + 1
	SpatialRows     = 13   // ceil(768/64) + 1
)

// SpatialGrid is a fixed-size grid for broad-phase bullet/enemy queries
type SpatialGrid struct {
	cells [SpatialCols * SpatialRows][]int
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func cellBounds(x, y, radius float64) (minCX, maxCX, minCY, maxCY int) {
	minCX = int((x - radius) / SpatialCellSize)
	maxCX = int((x + radius) / SpatialCellSize)
	minCY = int((y - radius) / SpatialCellSize)
	maxCY = int((y + radius) / SpatialCellSize)
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= SpatialCols {
		maxCX = SpatialCols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= SpatialRows {
		maxCY = SpatialRows - 1
	}
	return
}

// InsertCircle adds an entity index to all cells overlapping its bounding box
func (g *SpatialGrid) InsertCircle(x, y, radius float64, idx int) {
	minCX, maxCX, minCY, maxCY := cellBounds(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			i := cy*SpatialCols + cx
			g.cells[i] = append(g.cells[i], idx)
		}
	}
}

// QueryBuf appends indices in cells overlapping the given bounding box to
// buf and returns the extended slice, avoiding per-call allocation.
func (g *SpatialGrid) QueryBuf(x, y, radius float64, buf []int) []int {
	minCX, maxCX, minCY, maxCY := cellBounds(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			i := cy*SpatialCols + cx
			buf = append(buf, g.cells[i]...)
		}
	}
	return buf
}
