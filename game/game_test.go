package game

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	mu     sync.Mutex
	worlds []*World
	balls  []Snapshot
}

func (r *recordingRenderer) DrawMaze(w *World) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.worlds = append(r.worlds, w)
}

func (r *recordingRenderer) DrawBall(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balls = append(r.balls, s)
}

type constantInput mgl64.Vec2

func (c constantInput) Poll() mgl64.Vec2 { return mgl64.Vec2(c) }

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	g, err := New(DefaultConfig(), opts)
	require.NoError(t, err)
	return g
}

func drainEvents(g *Game) []Event {
	var events []Event
	for {
		select {
		case e := <-g.Events():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("rejects even dimensions", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Cols = 10
		_, err := New(cfg, Options{})
		assert.ErrorIs(t, err, maze.ErrEvenDimension)
	})

	t.Run("rejects a ball wider than a passage", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BallRadius = cfg.CellSize
		_, err := New(cfg, Options{})
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})

	t.Run("nothing happens before the first load", func(t *testing.T) {
		r := &recordingRenderer{}
		g := newTestGame(t, Options{Renderer: r})
		g.Tick()

		assert.Nil(t, g.World())
		_, err := g.Snapshot()
		assert.ErrorIs(t, err, ErrNotLoaded)
		assert.Empty(t, r.balls)
	})
}

func TestLoad(t *testing.T) {
	t.Run("installs on the next tick and resets the ball", func(t *testing.T) {
		r := &recordingRenderer{}
		g := newTestGame(t, Options{Renderer: r, Input: constantInput{2, 1}})

		w := g.Load()
		assert.Nil(t, g.World(), "load must not be visible before a tick")

		g.Tick()
		require.Same(t, w, g.World())
		require.Len(t, r.worlds, 1)

		events := drainEvents(g)
		require.Len(t, events, 1)
		assert.Equal(t, EventLoaded, events[0].Type)
		assert.Equal(t, w.ID, events[0].WorldID)

		for i := 0; i < 10; i++ {
			g.Tick()
		}
		moved, err := g.Snapshot()
		require.NoError(t, err)
		assert.NotEqual(t, mgl64.Vec2{}, moved.Velocity)
		assert.Equal(t, int64(11), moved.Frame)

		g.Load()
		g.input = nopInput{}
		g.Tick()
		reset, err := g.Snapshot()
		require.NoError(t, err)
		r0 := g.Config().BallRadius
		assert.Equal(t, mgl64.Vec3{0, r0, r0}, reset.Position)
		assert.Equal(t, mgl64.Vec2{}, reset.Velocity)
		assert.Equal(t, int64(1), reset.Frame)
	})

	t.Run("latest queued load wins", func(t *testing.T) {
		r := &recordingRenderer{}
		g := newTestGame(t, Options{Renderer: r})

		g.Load()
		g.Load()
		last := g.Load()
		g.Tick()

		assert.Same(t, last, g.World())
		assert.Len(t, r.worlds, 1)
	})

	t.Run("world geometry matches the grid", func(t *testing.T) {
		g := newTestGame(t, Options{})
		w := g.Load()

		cfg := g.Config()
		assert.Equal(t, cfg.Cols, w.Grid.Cols())
		assert.Equal(t, cfg.Rows, w.Grid.Rows())
		assert.Equal(t, w.Grid.WallBoxes(cfg.CellSize, cfg.WallHeight), w.Walls)
		assert.Equal(t, maze.StartCell(), w.Start)
		assert.Equal(t, maze.GoalCell(w.Grid), w.Goal)
	})

	t.Run("same seed same mazes", func(t *testing.T) {
		a := newTestGame(t, Options{Seed: 99})
		b := newTestGame(t, Options{Seed: 99})
		for i := 0; i < 3; i++ {
			assert.Equal(t, a.Load().Grid, b.Load().Grid)
		}
		assert.Equal(t, NewWorld(DefaultConfig(), 5).Grid, NewWorld(DefaultConfig(), 5).Grid)
	})
}

func TestGoalReached(t *testing.T) {
	g := newTestGame(t, Options{})
	w := g.Load()
	g.Tick()
	drainEvents(g)

	gx, gz := w.Grid.CellCenter(w.Goal, w.CellSize)
	g.ball.Pos = mgl64.Vec2{gx, gz}
	g.Tick()

	events := drainEvents(g)
	require.Len(t, events, 1)
	assert.Equal(t, EventFinished, events[0].Type)
	assert.Equal(t, w.Seed, events[0].Seed)
	assert.Equal(t, int64(2), events[0].Frames)

	snap, err := g.Snapshot()
	require.NoError(t, err)
	assert.True(t, snap.Finished)

	g.Tick()
	assert.Empty(t, drainEvents(g), "finish is reported once per load")
}

func TestSpawnInsideWall(t *testing.T) {
	for _, size := range []int{5, 9, 13} {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Cols, cfg.Rows = size, size
			g, err := New(cfg, Options{Seed: 5})
			require.NoError(t, err)

			w := g.Load()
			spawn := w.Grid.CellAt(0, cfg.BallRadius, w.CellSize)
			require.Equal(t, maze.Wall, w.Grid.At(spawn.X, spawn.Y), "centre cell is a seam corner")

			g.Tick()
			snap, err := g.Snapshot()
			require.NoError(t, err)
			assert.NotEqual(t, cfg.BallRadius, snap.Position.Z(), "ball was pushed out")
			assert.Zero(t, snap.Contacts)
			assert.Zero(t, snap.Bounces)
		})
	}
}

func TestStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameInterval = time.Millisecond
	g, err := New(cfg, Options{Seed: 3, Input: constantInput{0, -3}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.Start(ctx)
		close(done)
	}()

	var loads sync.WaitGroup
	loads.Add(1)
	go func() {
		defer loads.Done()
		for i := 0; i < 20; i++ {
			g.Load()
			time.Sleep(time.Millisecond)
		}
	}()
	loads.Wait()
	last := g.Load()

	assert.Eventually(t, func() bool {
		return g.World() == last
	}, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool {
		s, err := g.Snapshot()
		return err == nil && s.WorldID == last.ID && s.Frame > 5
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
