package game

import "github.com/go-gl/mathgl/mgl64"

// Renderer draws the game. The simulation never reads anything back from it.
type Renderer interface {
	// DrawMaze is called once per load with the new static geometry.
	DrawMaze(w *World)

	// DrawBall is called once per tick with the new ball state.
	DrawBall(s Snapshot)
}

// InputSource yields the force to apply on the current tick.
type InputSource interface {
	// Poll returns the current additive (fx, fz) force.
	Poll() mgl64.Vec2
}

// Encoder defines the methods for serializing frames sent to remote renderers.
type Encoder interface {
	// MarshalSnapshot encodes a ball snapshot.
	MarshalSnapshot(s Snapshot) ([]byte, error)

	// MarshalWorld encodes the maze of a world.
	MarshalWorld(w *World) ([]byte, error)
}

// Noop renderer and input, used when a host does not supply one.
type (
	nopRenderer struct{}
	nopInput    struct{}
)

func (nopRenderer) DrawMaze(*World) {}

func (nopRenderer) DrawBall(Snapshot) {}

func (nopInput) Poll() mgl64.Vec2 { return mgl64.Vec2{} }
