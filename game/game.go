package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/beka-birhanu/vinom-tilt/game/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrNotLoaded = errors.New("no maze loaded")
)

const (
	eventBufferSize = 16
)

// EventType identifies a game event.
type EventType uint8

const (
	EventLoaded   EventType = iota + 1 // A new maze was installed and the ball reset.
	EventFinished                      // The ball reached the goal cell.
)

// Event is emitted by the tick goroutine on loads and finishes.
type Event struct {
	Type    EventType
	WorldID uuid.UUID
	Seed    int64
	Cols    int
	Rows    int
	Frames  int64         // Ticks since the load.
	Bounces int           // Wall contacts since the load.
	Elapsed time.Duration // Wall-clock time since the load.
}

// World is one generated maze with its derived collision geometry.
// A World is never modified after it is created.
type World struct {
	ID         uuid.UUID
	Seed       int64
	Grid       maze.Grid
	Walls      []maze.WallBox
	Start      maze.CellPosition
	Goal       maze.CellPosition
	CellSize   float64
	WallHeight float64
}

// Snapshot is the ball state published after every tick.
type Snapshot struct {
	WorldID  uuid.UUID
	Frame    int64
	Position mgl64.Vec3 // World position, y at rest height.
	Velocity mgl64.Vec2 // Per-tick displacement on (x, z).
	Contacts int        // Wall contacts resolved this tick.
	Bounces  int        // Wall contacts since the load.
	Finished bool
}

// Options are the host-supplied collaborators of a Game.
type Options struct {
	Renderer Renderer         // Draws the maze and ball; defaults to a no-op.
	Input    InputSource      // Supplies the force each tick; defaults to zero force.
	Seed     int64            // Seeds maze generation; 0 picks a time based seed.
	Clock    func() time.Time // Defaults to time.Now.
}

// Game is the simulation context of one maze and one ball.
//
// Tick and Start run on a single goroutine. Load, World, Snapshot and Events
// may be called from any goroutine.
type Game struct {
	cfg      Config
	renderer Renderer
	input    InputSource
	now      func() time.Time

	rng   *rand.Rand
	rngMu sync.Mutex

	world    atomic.Pointer[World]
	snapshot atomic.Pointer[Snapshot]
	pending  chan *World // one-slot hand-over of loads to the tick goroutine
	events   chan Event

	// Owned by the tick goroutine.
	ball     physics.BallState
	frame    int64
	bounces  int
	finished bool
	loadedAt time.Time
}

// New creates a game with no maze loaded. Call Load to generate the first one.
func New(cfg Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}
	if opts.Input == nil {
		opts.Input = nopInput{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Clock().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		renderer: opts.Renderer,
		input:    opts.Input,
		now:      opts.Clock,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		pending:  make(chan *World, 1),
		events:   make(chan Event, eventBufferSize),
	}, nil
}

// Config returns the constants the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// Load generates a new maze and queues it for the tick goroutine, which
// installs it and resets the ball before its next step. If an earlier load is
// still queued it is replaced.
func (g *Game) Load() *World {
	g.rngMu.Lock()
	seed := g.rng.Int63()
	g.rngMu.Unlock()

	w := NewWorld(g.cfg, seed)
	for {
		select {
		case g.pending <- w:
			return w
		default:
		}
		select {
		case <-g.pending:
		default:
		}
	}
}

// NewWorld generates the world for seed. The same config and seed always
// produce the same maze.
func NewWorld(cfg Config, seed int64) *World {
	grid := maze.Generate(cfg.Cols, cfg.Rows, rand.New(rand.NewSource(seed)))
	return &World{
		ID:         uuid.New(),
		Seed:       seed,
		Grid:       grid,
		Walls:      grid.WallBoxes(cfg.CellSize, cfg.WallHeight),
		Start:      maze.StartCell(),
		Goal:       maze.GoalCell(grid),
		CellSize:   cfg.CellSize,
		WallHeight: cfg.WallHeight,
	}
}

// World returns the installed world, or nil before the first load is installed.
func (g *Game) World() *World {
	return g.world.Load()
}

// Snapshot returns the latest published ball state.
func (g *Game) Snapshot() (Snapshot, error) {
	s := g.snapshot.Load()
	if s == nil {
		return Snapshot{}, ErrNotLoaded
	}
	return *s, nil
}

// Events returns the channel game events are delivered on. Events are dropped
// when nobody drains the channel.
func (g *Game) Events() <-chan Event {
	return g.events
}

// Start ticks the game at the configured frame interval until ctx is done.
func (g *Game) Start(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Tick advances the simulation by one frame.
func (g *Game) Tick() {
	select {
	case w := <-g.pending:
		g.install(w)
	default:
	}

	w := g.world.Load()
	if w == nil {
		return
	}

	force := g.input.Poll()
	next, contacts := physics.StepContacts(g.ball, force, w.Walls, g.cfg.Timestep, g.cfg.Physics)
	g.ball = next
	if g.frame == 0 {
		// Pushing the ball out of a wall it spawned in is not a bounce.
		contacts = nil
	}
	g.frame++
	g.bounces += len(contacts)

	if !g.finished && g.atGoal(w) {
		g.finished = true
		g.emit(g.event(EventFinished, w))
	}

	g.renderer.DrawBall(g.publish(w, len(contacts)))
}

// install swaps in a new world and resets the ball to its spawn point.
func (g *Game) install(w *World) {
	r := g.cfg.BallRadius
	g.world.Store(w)
	g.ball = physics.Rest(mgl64.Vec2{0, r}, r)
	g.frame = 0
	g.bounces = 0
	g.finished = false
	g.loadedAt = g.now()

	g.renderer.DrawMaze(w)
	g.renderer.DrawBall(g.publish(w, 0))
	g.emit(g.event(EventLoaded, w))
}

// atGoal reports whether the ball centre lies inside the goal cell.
func (g *Game) atGoal(w *World) bool {
	cell := w.Grid.CellAt(g.ball.Pos.X(), g.ball.Pos.Y(), w.CellSize)
	return cell == w.Goal
}

func (g *Game) publish(w *World, contacts int) Snapshot {
	s := &Snapshot{
		WorldID:  w.ID,
		Frame:    g.frame,
		Position: g.ball.Position3D(),
		Velocity: g.ball.Vel,
		Contacts: contacts,
		Bounces:  g.bounces,
		Finished: g.finished,
	}
	g.snapshot.Store(s)
	return *s
}

func (g *Game) event(t EventType, w *World) Event {
	return Event{
		Type:    t,
		WorldID: w.ID,
		Seed:    w.Seed,
		Cols:    w.Grid.Cols(),
		Rows:    w.Grid.Rows(),
		Frames:  g.frame,
		Bounces: g.bounces,
		Elapsed: g.now().Sub(g.loadedAt),
	}
}

func (g *Game) emit(e Event) {
	select {
	case g.events <- e:
	default:
	}
}
