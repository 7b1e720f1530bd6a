package maze

// CellState is the state of a single grid cell.
type CellState uint8

// Cell states. The zero value is Wall so a freshly allocated grid is solid.
const (
	Wall CellState = iota // Wall is an uncarved cell.
	Open                  // Open is a carved cell the ball can roll through.
)

// String returns a human readable name of the state.
func (s CellState) String() string {
	if s == Open {
		return "open"
	}
	return "wall"
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Add returns the position shifted by d.
func (cp CellPosition) Add(d CellPosition) CellPosition {
	return CellPosition{X: cp.X + d.X, Y: cp.Y + d.Y}
}

// IsLattice reports whether the position lies on the odd cell lattice.
func (cp CellPosition) IsLattice() bool {
	return cp.X%2 == 1 && cp.Y%2 == 1
}

// WallBox is the axis-aligned bounding box of a wall cell in world units.
// The box spans y from 0 to Height.
type WallBox struct {
	MinX   float64 `json:"min_x"`
	MinZ   float64 `json:"min_z"`
	MaxX   float64 `json:"max_x"`
	MaxZ   float64 `json:"max_z"`
	Height float64 `json:"height"`
}

// CenterX returns the x coordinate of the box centre.
func (w WallBox) CenterX() float64 {
	return (w.MinX + w.MaxX) / 2
}

// CenterZ returns the z coordinate of the box centre.
func (w WallBox) CenterZ() float64 {
	return (w.MinZ + w.MaxZ) / 2
}
