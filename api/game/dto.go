// Package gameapi provides the request and response bodies of the session API.
package gameapi

import (
	"time"

	"github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/google/uuid"
)

// Stream message types sent by clients.
const (
	StreamInput = "input"
	StreamLoad  = "load"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	Cols      int       `json:"cols"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// PosDTO is a grid cell position.
type PosDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeResponse describes the installed maze of a session.
type MazeResponse struct {
	WorldID    uuid.UUID      `json:"world_id"`
	Seed       int64          `json:"seed"`
	Cols       int            `json:"cols"`
	Rows       int            `json:"rows"`
	CellSize   float64        `json:"cell_size"`
	WallHeight float64        `json:"wall_height"`
	Grid       [][]int        `json:"grid"` // 0 is a wall, 1 is open.
	Walls      []maze.WallBox `json:"walls"`
	Start      PosDTO         `json:"start"`
	Goal       PosDTO         `json:"goal"`
}

// StateResponse is a ball snapshot.
type StateResponse struct {
	WorldID  uuid.UUID  `json:"world_id"`
	Frame    int64      `json:"frame"`
	Position [3]float64 `json:"position"`
	Velocity [2]float64 `json:"velocity"`
	Contacts int        `json:"contacts"`
	Bounces  int        `json:"bounces"`
	Finished bool       `json:"finished"`
}

// TiltDTO is an accelerometer reading including gravity.
type TiltDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// KeysDTO lists which directional keys are held.
type KeysDTO struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// InputRequest changes the tilt, the held keys, or both.
type InputRequest struct {
	Tilt *TiltDTO `json:"tilt"`
	Keys *KeysDTO `json:"keys"`
}

// StreamMessage is a JSON message read from the WebSocket stream.
type StreamMessage struct {
	Type string `json:"type"`
	InputRequest
}

// LeaderboardEntryDTO is one ranked run.
type LeaderboardEntryDTO struct {
	Rank       int       `json:"rank"`
	RunID      uuid.UUID `json:"run_id"`
	DurationMS int64     `json:"duration_ms"`
}

// LeaderboardResponse lists the fastest runs of a board.
type LeaderboardResponse struct {
	Board   string                `json:"board"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}

func newMazeResponse(w *game.World) MazeResponse {
	grid := make([][]int, len(w.Grid))
	for y, row := range w.Grid {
		grid[y] = make([]int, len(row))
		for x, c := range row {
			grid[y][x] = int(c)
		}
	}
	return MazeResponse{
		WorldID:    w.ID,
		Seed:       w.Seed,
		Cols:       w.Grid.Cols(),
		Rows:       w.Grid.Rows(),
		CellSize:   w.CellSize,
		WallHeight: w.WallHeight,
		Grid:       grid,
		Walls:      w.Walls,
		Start:      PosDTO{X: w.Start.X, Y: w.Start.Y},
		Goal:       PosDTO{X: w.Goal.X, Y: w.Goal.Y},
	}
}

func newStateResponse(s game.Snapshot) StateResponse {
	return StateResponse{
		WorldID:  s.WorldID,
		Frame:    s.Frame,
		Position: [3]float64(s.Position),
		Velocity: [2]float64(s.Velocity),
		Contacts: s.Contacts,
		Bounces:  s.Bounces,
		Finished: s.Finished,
	}
}

func newLeaderboardResponse(board string, entries []domain.LeaderboardEntry) LeaderboardResponse {
	dtos := make([]LeaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, LeaderboardEntryDTO{
			Rank:       e.Rank,
			RunID:      e.RunID,
			DurationMS: e.Duration.Milliseconds(),
		})
	}
	return LeaderboardResponse{Board: board, Entries: dtos}
}

// update converts the request to a service input update. It reports false
// when the request changes nothing.
func (r InputRequest) update() (i.InputUpdate, bool) {
	var u i.InputUpdate
	if r.Tilt != nil {
		u.Tilt = &[2]float64{r.Tilt.X, r.Tilt.Y}
	}
	if r.Keys != nil {
		var ks input.Keys
		if r.Keys.Up {
			ks |= input.Keys(input.KeyUp)
		}
		if r.Keys.Down {
			ks |= input.Keys(input.KeyDown)
		}
		if r.Keys.Left {
			ks |= input.Keys(input.KeyLeft)
		}
		if r.Keys.Right {
			ks |= input.Keys(input.KeyRight)
		}
		u.Keys = &ks
	}
	return u, u.Tilt != nil || u.Keys != nil
}
