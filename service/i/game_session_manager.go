package i

import (
	"time"

	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/google/uuid"
)

// SessionInfo describes a running game session.
type SessionInfo struct {
	ID        uuid.UUID
	Cols      int
	Rows      int
	CreatedAt time.Time
}

// InputUpdate carries the input fields a client changed. Nil fields are left as they are.
type InputUpdate struct {
	Tilt *[2]float64
	Keys *input.Keys
}

// GameSessionManager runs one game per session.
type GameSessionManager interface {
	// NewSession starts a game with a freshly loaded maze.
	NewSession() (SessionInfo, error)

	// Load generates a new maze for the session and resets the ball.
	Load(id uuid.UUID) (*game.World, error)

	// World returns the installed maze of the session.
	World(id uuid.UUID) (*game.World, error)

	// State returns the latest ball snapshot of the session.
	State(id uuid.UUID) (game.Snapshot, error)

	// Input applies a client input update.
	Input(id uuid.UUID, u InputUpdate) error

	// Subscribe streams encoded frames of the session until unsubscribed or closed.
	Subscribe(id uuid.UUID) (<-chan []byte, func(), error)

	// Close stops the session.
	Close(id uuid.UUID) error
}
