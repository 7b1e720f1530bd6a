// Package physics advances the ball by one fixed tick and resolves collisions
// against axis-aligned wall boxes.
package physics

import (
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies the separation axis chosen for a contact.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// Params are the tuning constants of the step.
type Params struct {
	AccelScale  float64 `yaml:"accel_scale"` // Multiplier applied to the input force.
	Damping     float64 `yaml:"damping"`     // Per-tick velocity multiplier, applied before collisions.
	Restitution float64 `yaml:"restitution"` // Velocity multiplier on bounce; negative inverts.
	Epsilon     float64 `yaml:"epsilon"`     // Extra push-out so the same contact does not re-trigger.
}

// DefaultParams returns the tuning used by the game.
func DefaultParams() Params {
	return Params{
		AccelScale:  6,
		Damping:     0.95,
		Restitution: -0.2,
		Epsilon:     0.001,
	}
}

// BallState is the simulated ball. Pos is (x, z); the ball rests at height Radius.
type BallState struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
}

// Rest returns a ball at pos with zero velocity.
func Rest(pos mgl64.Vec2, radius float64) BallState {
	return BallState{Pos: pos, Radius: radius}
}

// Position3D returns the world position with y at rest height.
func (b BallState) Position3D() mgl64.Vec3 {
	return mgl64.Vec3{b.Pos.X(), b.Radius, b.Pos.Y()}
}

// Contact describes one resolved wall collision.
type Contact struct {
	Wall  int     // Index of the wall box.
	Axis  Axis    // Axis the ball was pushed along.
	Depth float64 // Penetration before the push, without epsilon.
}

// Step advances the ball by one tick and returns the new state.
//
// Velocity is a per-tick displacement: dt scales only the acceleration term.
func Step(ball BallState, force mgl64.Vec2, walls []maze.WallBox, dt float64, p Params) BallState {
	next, _ := StepContacts(ball, force, walls, dt, p)
	return next
}

// StepContacts is Step that also reports the contacts it resolved, in wall order.
func StepContacts(ball BallState, force mgl64.Vec2, walls []maze.WallBox, dt float64, p Params) (BallState, []Contact) {
	ball.Vel = ball.Vel.Add(force.Mul(p.AccelScale * dt)).Mul(p.Damping)
	ball.Pos = ball.Pos.Add(ball.Vel)

	var contacts []Contact
	for i, w := range walls {
		if c, ok := resolve(&ball, w, p); ok {
			c.Wall = i
			contacts = append(contacts, c)
		}
	}
	return ball, contacts
}

// resolve pushes the ball out of w along the axis of least penetration.
// Each wall is handled on its own; a later wall may undo an earlier correction.
func resolve(ball *BallState, w maze.WallBox, p Params) (Contact, bool) {
	minX, maxX := ball.Pos.X()-ball.Radius, ball.Pos.X()+ball.Radius
	minZ, maxZ := ball.Pos.Y()-ball.Radius, ball.Pos.Y()+ball.Radius

	if !overlaps(minX, minZ, maxX, maxZ, w) {
		return Contact{}, false
	}

	dx1, dx2 := w.MaxX-minX, maxX-w.MinX
	dz1, dz2 := w.MaxZ-minZ, maxZ-w.MinZ

	if min(dx1, dx2) < min(dz1, dz2) {
		depth := min(dx1, dx2)
		if dx1 < dx2 {
			ball.Pos[0] += dx1 + p.Epsilon
		} else {
			ball.Pos[0] -= dx2 + p.Epsilon
		}
		ball.Vel[0] *= p.Restitution
		return Contact{Axis: AxisX, Depth: depth}, true
	}

	depth := min(dz1, dz2)
	if dz1 < dz2 {
		ball.Pos[1] += dz1 + p.Epsilon
	} else {
		ball.Pos[1] -= dz2 + p.Epsilon
	}
	ball.Vel[1] *= p.Restitution
	return Contact{Axis: AxisZ, Depth: depth}, true
}

// overlaps tests the ball's box against a wall box. The ball box is extruded
// from the floor to the wall top, so only the footprint and a positive wall
// height matter.
func overlaps(minX, minZ, maxX, maxZ float64, w maze.WallBox) bool {
	return w.Height > 0 &&
		minX < w.MaxX && maxX > w.MinX &&
		minZ < w.MaxZ && maxZ > w.MinZ
}
