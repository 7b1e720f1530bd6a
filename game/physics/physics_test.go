package physics

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRadius = 0.4
	testDt     = 0.016
)

func TestStepIntegration(t *testing.T) {
	p := DefaultParams()

	t.Run("zero input at rest is a no-op", func(t *testing.T) {
		ball := Rest(mgl64.Vec2{1.5, -2}, testRadius)
		for i := 0; i < 100; i++ {
			ball = Step(ball, mgl64.Vec2{}, nil, testDt, p)
		}
		assert.Equal(t, mgl64.Vec2{1.5, -2}, ball.Pos)
		assert.Equal(t, mgl64.Vec2{}, ball.Vel)
	})

	t.Run("force accelerates then damping applies", func(t *testing.T) {
		ball := Rest(mgl64.Vec2{}, testRadius)
		ball = Step(ball, mgl64.Vec2{1, -2}, nil, testDt, p)

		wantVX := 1 * p.AccelScale * testDt * p.Damping
		wantVZ := -2 * p.AccelScale * testDt * p.Damping
		assert.InDelta(t, wantVX, ball.Vel.X(), 1e-12)
		assert.InDelta(t, wantVZ, ball.Vel.Y(), 1e-12)
		// position integrates the velocity as a per-tick displacement
		assert.InDelta(t, wantVX, ball.Pos.X(), 1e-12)
		assert.InDelta(t, wantVZ, ball.Pos.Y(), 1e-12)
	})

	t.Run("velocity decays without input", func(t *testing.T) {
		ball := BallState{Vel: mgl64.Vec2{1, 0}, Radius: testRadius}
		ball = Step(ball, mgl64.Vec2{}, nil, testDt, p)
		assert.InDelta(t, 0.95, ball.Vel.X(), 1e-12)
		assert.InDelta(t, 0.95, ball.Pos.X(), 1e-12)
	})

	t.Run("position3d uses radius as height", func(t *testing.T) {
		ball := Rest(mgl64.Vec2{2, 3}, testRadius)
		assert.Equal(t, mgl64.Vec3{2, testRadius, 3}, ball.Position3D())
	})
}

func TestCollisionContainment(t *testing.T) {
	p := DefaultParams()
	wall := maze.WallBox{MinX: 1, MinZ: -1.5, MaxX: 4, MaxZ: 1.5, Height: 2.2}

	t.Run("approach along x", func(t *testing.T) {
		ball := BallState{Pos: mgl64.Vec2{0.5, 0}, Vel: mgl64.Vec2{0.3, 0}, Radius: testRadius}
		next, contacts := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{wall}, testDt, p)

		require.Len(t, contacts, 1)
		assert.Equal(t, AxisX, contacts[0].Axis)
		assert.LessOrEqual(t, next.Pos.X()+next.Radius, wall.MinX)
		assert.InDelta(t, wall.MinX-p.Epsilon, next.Pos.X()+next.Radius, 1e-9)
		assert.Less(t, next.Vel.X(), 0.0)
		assert.Less(t, -next.Vel.X(), ball.Vel.X())
		assert.InDelta(t, 0.3*p.Damping*p.Restitution, next.Vel.X(), 1e-12)
	})

	t.Run("approach along z from above", func(t *testing.T) {
		ball := BallState{Pos: mgl64.Vec2{2.5, 2.0}, Vel: mgl64.Vec2{0, -0.3}, Radius: testRadius}
		next, contacts := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{wall}, testDt, p)

		require.Len(t, contacts, 1)
		assert.Equal(t, AxisZ, contacts[0].Axis)
		assert.GreaterOrEqual(t, next.Pos.Y()-next.Radius, wall.MaxZ)
		assert.Greater(t, next.Vel.Y(), 0.0)
		assert.Less(t, next.Vel.Y(), 0.3)
		assert.Zero(t, next.Vel.X())
	})

	t.Run("no contact when separated", func(t *testing.T) {
		ball := BallState{Pos: mgl64.Vec2{-3, 0}, Vel: mgl64.Vec2{0.1, 0}, Radius: testRadius}
		_, contacts := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{wall}, testDt, p)
		assert.Empty(t, contacts)
	})

	t.Run("ball just short of the wall", func(t *testing.T) {
		ball := Rest(mgl64.Vec2{wall.MinX - testRadius - 1e-6, 0}, testRadius)
		_, contacts := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{wall}, testDt, p)
		assert.Empty(t, contacts)
	})

	t.Run("flat walls are ignored", func(t *testing.T) {
		flat := wall
		flat.Height = 0
		ball := Rest(mgl64.Vec2{2, 0}, testRadius)
		_, contacts := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{flat}, testDt, p)
		assert.Empty(t, contacts)
	})
}

func TestSequentialResolution(t *testing.T) {
	p := DefaultParams()
	// Two walls meeting at a corner; the ball overlaps both.
	walls := []maze.WallBox{
		{MinX: -3, MinZ: -3, MaxX: 0, MaxZ: 0, Height: 1},
		{MinX: 0, MinZ: -3, MaxX: 3, MaxZ: 0, Height: 1},
	}
	ball := Rest(mgl64.Vec2{-0.1, 0.3}, testRadius)

	next, contacts := StepContacts(ball, mgl64.Vec2{}, walls, testDt, p)
	require.NotEmpty(t, contacts)
	assert.Equal(t, 0, contacts[0].Wall)
	assert.Equal(t, AxisZ, contacts[0].Axis)
	assert.GreaterOrEqual(t, next.Pos.Y()-next.Radius, 0.0)

	reversed, _ := StepContacts(ball, mgl64.Vec2{}, []maze.WallBox{walls[1], walls[0]}, testDt, p)
	assert.InDelta(t, next.Pos.Y(), reversed.Pos.Y(), 1e-9)
}

func TestScenarioRollIntoWall(t *testing.T) {
	p := DefaultParams()
	const cellSize, wallHeight = 3.0, 2.2

	for seed := int64(1); seed <= 20; seed++ {
		grid := maze.Generate(11, 11, rand.New(rand.NewSource(seed)))
		walls := grid.WallBoxes(cellSize, wallHeight)
		ball := BallState{Pos: mgl64.Vec2{0, 0.4}, Radius: testRadius}
		force := mgl64.Vec2{0, -3}

		prevZ := ball.Pos.Y()
		collided := false
		for tick := 0; tick < 60 && !collided; tick++ {
			var contacts []Contact
			ball, contacts = StepContacts(ball, force, walls, testDt, p)
			if len(contacts) == 0 {
				require.Less(t, ball.Pos.Y(), prevZ, "seed %d tick %d: z must decrease before contact", seed, tick)
				prevZ = ball.Pos.Y()
				continue
			}
			collided = true
			assert.Greater(t, ball.Vel.Y(), 0.0, "seed %d: velocity reverses on contact", seed)

			// once resting against the wall the ball never passes through it
			contactZ := ball.Pos.Y()
			for i := 0; i < 30; i++ {
				ball = Step(ball, force, walls, testDt, p)
				assert.GreaterOrEqual(t, ball.Pos.Y(), contactZ-1e-9, "seed %d", seed)
			}
		}
		assert.True(t, collided, "seed %d: ball never reached a wall", seed)
	}
}
