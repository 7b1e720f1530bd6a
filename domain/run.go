// Package domain holds the records the server persists about finished games.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one completed maze: from a load to the ball reaching the goal.
type Run struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	WorldID    uuid.UUID
	Seed       int64
	Cols       int
	Rows       int
	Frames     int64
	Bounces    int
	Duration   time.Duration
	FinishedAt time.Time
}

// Board names the leaderboard a run competes on. Only runs on mazes of the
// same size are comparable.
func (r Run) Board() string {
	return BoardName(r.Cols, r.Rows)
}

// BoardName returns the leaderboard name for a maze size.
func BoardName(cols, rows int) string {
	return fmt.Sprintf("%dx%d", cols, rows)
}

// LeaderboardEntry is one ranked run.
type LeaderboardEntry struct {
	Rank     int
	RunID    uuid.UUID
	Duration time.Duration
}
