package maze

import "math"

// WallBoxes derives one box per wall cell in row-major grid order.
// The grid is centred on the world origin; cellSize is the side of one cell and
// wallHeight the height of every box.
func (g Grid) WallBoxes(cellSize, wallHeight float64) []WallBox {
	half := cellSize / 2
	boxes := make([]WallBox, 0, g.Cols()*g.Rows()-g.OpenCells())
	for y, row := range g {
		for x, c := range row {
			if c != Wall {
				continue
			}
			cx, cz := g.CellCenter(CellPosition{X: x, Y: y}, cellSize)
			boxes = append(boxes, WallBox{
				MinX:   cx - half,
				MinZ:   cz - half,
				MaxX:   cx + half,
				MaxZ:   cz + half,
				Height: wallHeight,
			})
		}
	}
	return boxes
}

// CellCenter returns the world (x, z) centre of a cell.
func (g Grid) CellCenter(pos CellPosition, cellSize float64) (float64, float64) {
	offX := float64(g.Cols()-1) / 2
	offZ := float64(g.Rows()-1) / 2
	return (float64(pos.X) - offX) * cellSize, (float64(pos.Y) - offZ) * cellSize
}

// CellAt returns the cell containing the world point (x, z).
// The result may lie outside the grid; check it with InBound.
func (g Grid) CellAt(x, z, cellSize float64) CellPosition {
	offX := float64(g.Cols()-1) / 2
	offZ := float64(g.Rows()-1) / 2
	return CellPosition{
		X: int(math.Floor(x/cellSize + offX + 0.5)),
		Y: int(math.Floor(z/cellSize + offZ + 0.5)),
	}
}
