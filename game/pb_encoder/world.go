package pb

import (
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/google/uuid"
)

func worldFromGame(w *game.World) *World {
	walls := make([]*WallBox, 0, len(w.Walls))
	for _, box := range w.Walls {
		walls = append(walls, wallBoxFromGame(box))
	}
	return &World{
		Id:         uuidBytes(w.ID),
		Seed:       w.Seed,
		Cols:       int32(w.Grid.Cols()),
		Rows:       int32(w.Grid.Rows()),
		Cells:      packCells(w.Grid),
		CellSize:   w.CellSize,
		WallHeight: w.WallHeight,
		Start:      posFromGame(w.Start),
		Goal:       posFromGame(w.Goal),
		Walls:      walls,
	}
}

func worldToGame(w *World) (*game.World, error) {
	id, err := parseUUID(w.GetId())
	if err != nil {
		return nil, err
	}
	grid, err := unpackCells(w.GetCells(), int(w.GetCols()), int(w.GetRows()))
	if err != nil {
		return nil, err
	}

	var walls []maze.WallBox
	if len(w.GetWalls()) > 0 {
		walls = make([]maze.WallBox, 0, len(w.GetWalls()))
		for _, box := range w.GetWalls() {
			walls = append(walls, wallBoxToGame(box))
		}
	}

	return &game.World{
		ID:         id,
		Seed:       w.GetSeed(),
		Grid:       grid,
		Walls:      walls,
		Start:      posToGame(w.GetStart()),
		Goal:       posToGame(w.GetGoal()),
		CellSize:   w.GetCellSize(),
		WallHeight: w.GetWallHeight(),
	}, nil
}

func posFromGame(p maze.CellPosition) *Pos {
	return &Pos{X: int32(p.X), Y: int32(p.Y)}
}

func posToGame(p *Pos) maze.CellPosition {
	return maze.CellPosition{X: int(p.GetX()), Y: int(p.GetY())}
}

func wallBoxFromGame(w maze.WallBox) *WallBox {
	return &WallBox{
		MinX:   w.MinX,
		MinZ:   w.MinZ,
		MaxX:   w.MaxX,
		MaxZ:   w.MaxZ,
		Height: w.Height,
	}
}

func wallBoxToGame(w *WallBox) maze.WallBox {
	return maze.WallBox{
		MinX:   w.GetMinX(),
		MinZ:   w.GetMinZ(),
		MaxX:   w.GetMaxX(),
		MaxZ:   w.GetMaxZ(),
		Height: w.GetHeight(),
	}
}

// packCells flattens the grid row-major, one byte per cell.
func packCells(g maze.Grid) []byte {
	cells := make([]byte, 0, g.Cols()*g.Rows())
	for _, row := range g {
		for _, c := range row {
			cells = append(cells, byte(c))
		}
	}
	return cells
}

// unpackCells rebuilds a grid. The dimensions must pass maze.ValidateDimensions,
// which also bounds the allocation.
func unpackCells(cells []byte, cols, rows int) (maze.Grid, error) {
	if err := maze.ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}
	if len(cells) != cols*rows {
		return nil, ErrCellCount
	}

	g := make(maze.Grid, rows)
	for y := range g {
		g[y] = make([]maze.CellState, cols)
		for x := range g[y] {
			c := maze.CellState(cells[y*cols+x])
			if c != maze.Wall && c != maze.Open {
				return nil, ErrCellState
			}
			g[y][x] = c
		}
	}
	return g, nil
}

// uuidBytes leaves the nil id out of the message.
func uuidBytes(id uuid.UUID) []byte {
	if id == uuid.Nil {
		return nil
	}
	return id[:]
}

func parseUUID(b []byte) (uuid.UUID, error) {
	if len(b) == 0 {
		return uuid.Nil, nil
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, ErrWorldID
	}
	return id, nil
}
