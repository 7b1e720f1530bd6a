package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for run history persistence.
type RunRepo interface {
	// Save stores a finished run.
	Save(ctx context.Context, run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	// Returns an error if the run is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// BySession lists the runs of a session, newest first.
	BySession(ctx context.Context, sessionID uuid.UUID, limit int64) ([]*dmn.Run, error)
}

// Leaderboard ranks finished runs by duration, per maze size.
type Leaderboard interface {
	// Record submits a run. Only the fastest runs of each board are kept.
	Record(ctx context.Context, run *dmn.Run) error

	// Top returns up to n entries of a board, fastest first.
	Top(ctx context.Context, board string, n int64) ([]dmn.LeaderboardEntry, error)
}
