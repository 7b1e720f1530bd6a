/*
Package maze provides tools for creating and inspecting rectangular grid mazes.

A maze is a Grid of Wall/Open cells indexed [y][x]. Rooms are carved on the odd
cell lattice with a randomized depth-first backtracker, and the even seams
between rooms are opened only where a passage was carved, so walls stay exactly
one cell thick and the open cells form a spanning tree rooted at (1,1).

The package also derives world-space wall boxes for collision, maps between
world and grid coordinates, and solves paths between cells.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// MinDimension is the smallest supported width or height.
	MinDimension = 5
	// MaxDimension is the largest supported width or height.
	MaxDimension = 1001
)

var (
	// Directions lists the lattice steps to the four neighbouring rooms.
	Directions = [4]CellPosition{
		{X: 2, Y: 0},
		{X: -2, Y: 0},
		{X: 0, Y: 2},
		{X: 0, Y: -2},
	}

	ErrEvenDimension     = errors.New("maze dimensions must be odd")
	ErrDimensionTooSmall = fmt.Errorf("maze dimensions must be at least %d", MinDimension)
	ErrDimensionTooLarge = fmt.Errorf("maze dimensions must be at most %d", MaxDimension)
)

// Grid is a maze indexed [y][x].
type Grid [][]CellState

// frame is one pending cell of the depth-first carve.
type frame struct {
	pos  CellPosition
	dirs [4]CellPosition // shuffled on entry
	next int             // index of the next direction to try
}

// ValidateDimensions checks the generator precondition: odd cols and rows
// between MinDimension and MaxDimension.
func ValidateDimensions(cols, rows int) error {
	if cols < MinDimension || rows < MinDimension {
		return ErrDimensionTooSmall
	}
	if cols > MaxDimension || rows > MaxDimension {
		return ErrDimensionTooLarge
	}
	if cols%2 == 0 || rows%2 == 0 {
		return ErrEvenDimension
	}
	return nil
}

// Generate carves a new cols x rows maze starting from (1,1).
//
// cols and rows must be odd and at least MinDimension; callers validate with
// ValidateDimensions. The output depends only on the sequence drawn from rng.
func Generate(cols, rows int, rng *rand.Rand) Grid {
	grid := make(Grid, rows)
	for y := range grid {
		grid[y] = make([]CellState, cols)
	}

	start := StartCell()
	grid[start.Y][start.X] = Open
	stack := []*frame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		n := top.pos.Add(d)
		if n.X <= 0 || n.X >= cols-1 || n.Y <= 0 || n.Y >= rows-1 {
			continue
		}
		if grid[n.Y][n.X] != Wall {
			continue
		}

		mid := top.pos.Add(CellPosition{X: d.X / 2, Y: d.Y / 2})
		grid[mid.Y][mid.X] = Open
		grid[n.Y][n.X] = Open
		stack = append(stack, newFrame(n, rng))
	}

	return grid
}

// newFrame creates a carve frame with a freshly shuffled direction order.
func newFrame(pos CellPosition, rng *rand.Rand) *frame {
	f := &frame{pos: pos, dirs: Directions}
	for i := len(f.dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	}
	return f
}

// StartCell returns the cell carving starts from.
func StartCell() CellPosition {
	return CellPosition{X: 1, Y: 1}
}

// GoalCell returns the room in the corner opposite to the start.
func GoalCell(g Grid) CellPosition {
	return CellPosition{X: g.Cols() - 2, Y: g.Rows() - 2}
}

// Cols returns the width of the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Rows returns the height of the grid.
func (g Grid) Rows() int {
	return len(g)
}

// InBound reports whether (x, y) lies inside the grid.
func (g Grid) InBound(x, y int) bool {
	return y >= 0 && y < g.Rows() && x >= 0 && x < g.Cols()
}

// At returns the state at (x, y). Cells outside the grid read as Wall.
func (g Grid) At(x, y int) CellState {
	if !g.InBound(x, y) {
		return Wall
	}
	return g[y][x]
}

// OpenCells returns the number of carved cells.
func (g Grid) OpenCells() int {
	count := 0
	for _, row := range g {
		for _, c := range row {
			if c == Open {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, c := range row {
			if c == Wall {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
