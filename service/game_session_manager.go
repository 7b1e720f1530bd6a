package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxSessions = 64
	recordTimeout      = 2 * time.Second
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

var _ i.GameSessionManager = &GameSessionManager{}

type session struct {
	info        i.SessionInfo
	game        *game.Game
	broadcaster *game.Broadcaster
	input       *input.State
	lastSeen    atomic.Int64 // unix nanoseconds
	cancel      context.CancelFunc
	done        chan struct{}
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// GameSessionManager runs one game per session and records finished runs.
type GameSessionManager struct {
	sessions    map[uuid.UUID]*session
	gameConfig  game.Config
	encoder     game.Encoder
	runRepo     i.RunRepo
	leaderboard i.Leaderboard
	logger      i.Logger
	maxSessions int
	idleTimeout time.Duration
	now         func() time.Time
	sync.RWMutex
}

type Config struct {
	GameConfig  game.Config
	Encoder     game.Encoder
	RunRepo     i.RunRepo     // Optional.
	Leaderboard i.Leaderboard // Optional.
	Logger      i.Logger
	MaxSessions int           // Defaults to 64.
	IdleTimeout time.Duration // Zero keeps idle sessions forever.
	Clock       func() time.Time
}

func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if err := c.GameConfig.Validate(); err != nil {
		return nil, err
	}
	if c.Encoder == nil {
		return nil, errors.New("encoder is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	gsm := &GameSessionManager{
		sessions:    make(map[uuid.UUID]*session),
		gameConfig:  c.GameConfig,
		encoder:     c.Encoder,
		runRepo:     c.RunRepo,
		leaderboard: c.Leaderboard,
		logger:      c.Logger,
		maxSessions: c.MaxSessions,
		idleTimeout: c.IdleTimeout,
		now:         c.Clock,
	}
	if gsm.runRepo == nil {
		gsm.runRepo = nopRunRepo{}
	}
	if gsm.leaderboard == nil {
		gsm.leaderboard = NopLeaderboard{}
	}
	if gsm.maxSessions <= 0 {
		gsm.maxSessions = defaultMaxSessions
	}
	if gsm.now == nil {
		gsm.now = time.Now
	}
	return gsm, nil
}

// GameConfig returns the configuration every session is created with.
func (g *GameSessionManager) GameConfig() game.Config {
	return g.gameConfig
}

func (g *GameSessionManager) NewSession() (i.SessionInfo, error) {
	g.Lock()
	defer g.Unlock()

	if len(g.sessions) >= g.maxSessions {
		g.logger.Warning(fmt.Sprintf("rejected new session: %d sessions running", len(g.sessions)))
		return i.SessionInfo{}, ErrTooManySessions
	}

	in := input.NewState(g.gameConfig.Input)
	broadcaster := game.NewBroadcaster(g.encoder)
	gameServer, err := game.New(g.gameConfig, game.Options{
		Renderer: broadcaster,
		Input:    in,
		Clock:    g.now,
	})
	if err != nil {
		return i.SessionInfo{}, fmt.Errorf("creating game: %w", err)
	}

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	s := &session{
		info: i.SessionInfo{
			ID:        sessionID,
			Cols:      g.gameConfig.Cols,
			Rows:      g.gameConfig.Rows,
			CreatedAt: g.now(),
		},
		game:        gameServer,
		broadcaster: broadcaster,
		input:       in,
		done:        make(chan struct{}),
	}
	broadcaster.OnError = func(err error) {
		g.logger.Error(fmt.Sprintf("encoding frame for session %s: %s", sessionID, err))
	}
	s.touch(g.now())

	// The first maze is installed before the loop starts so it is readable at once.
	gameServer.Load()
	gameServer.Tick()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	g.sessions[sessionID] = s

	go func() {
		defer close(s.done)
		gameServer.Start(ctx)
	}()
	go g.listenGameChan(ctx, s)

	g.logger.Info(fmt.Sprintf("started new session: %s", sessionID))
	return s.info, nil
}

func (g *GameSessionManager) Load(id uuid.UUID) (*game.World, error) {
	s, err := g.session(id)
	if err != nil {
		return nil, err
	}
	s.touch(g.now())
	return s.game.Load(), nil
}

func (g *GameSessionManager) World(id uuid.UUID) (*game.World, error) {
	s, err := g.session(id)
	if err != nil {
		return nil, err
	}
	w := s.game.World()
	if w == nil {
		return nil, game.ErrNotLoaded
	}
	return w, nil
}

func (g *GameSessionManager) State(id uuid.UUID) (game.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.game.Snapshot()
}

func (g *GameSessionManager) Input(id uuid.UUID, u i.InputUpdate) error {
	s, err := g.session(id)
	if err != nil {
		return err
	}
	s.touch(g.now())
	if u.Tilt != nil {
		s.input.SetTilt(u.Tilt[0], u.Tilt[1])
	}
	if u.Keys != nil {
		s.input.SetKeys(*u.Keys)
	}
	return nil
}

func (g *GameSessionManager) Subscribe(id uuid.UUID) (<-chan []byte, func(), error) {
	s, err := g.session(id)
	if err != nil {
		return nil, nil, err
	}
	s.touch(g.now())
	frames, unsubscribe := s.broadcaster.Subscribe()
	return frames, unsubscribe, nil
}

func (g *GameSessionManager) Close(id uuid.UUID) error {
	g.Lock()
	s, ok := g.sessions[id]
	delete(g.sessions, id)
	g.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	g.stop(s)
	g.logger.Info(fmt.Sprintf("closed session: %s", id))
	return nil
}

// Count returns the number of running sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

// ExpireIdle stops sessions that have neither input nor viewers for longer
// than the idle timeout. It returns the number of sessions stopped.
func (g *GameSessionManager) ExpireIdle() int {
	if g.idleTimeout <= 0 {
		return 0
	}
	deadline := g.now().Add(-g.idleTimeout).UnixNano()

	g.Lock()
	var idle []*session
	for id, s := range g.sessions {
		if s.lastSeen.Load() < deadline && s.broadcaster.Subscribers() == 0 {
			idle = append(idle, s)
			delete(g.sessions, id)
		}
	}
	g.Unlock()

	for _, s := range idle {
		g.stop(s)
		g.logger.Info(fmt.Sprintf("expired idle session: %s", s.info.ID))
	}
	return len(idle)
}

// RunJanitor calls ExpireIdle every interval until ctx is done.
func (g *GameSessionManager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.ExpireIdle()
		}
	}
}

func (g *GameSessionManager) StopAll() {
	g.Lock()
	sessions := g.sessions
	g.sessions = make(map[uuid.UUID]*session)
	g.Unlock()

	for _, s := range sessions {
		g.stop(s)
	}
}

func (g *GameSessionManager) session(id uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (g *GameSessionManager) stop(s *session) {
	s.cancel()
	<-s.done
	s.broadcaster.Close()
}

func (g *GameSessionManager) listenGameChan(ctx context.Context, s *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-s.game.Events():
			switch e.Type {
			case game.EventLoaded:
				g.logger.Info(fmt.Sprintf("session %s loaded maze %s (seed %d)", s.info.ID, e.WorldID, e.Seed))
			case game.EventFinished:
				g.recordRun(s.info.ID, e)
			}
		}
	}
}

func (g *GameSessionManager) recordRun(sessionID uuid.UUID, e game.Event) {
	run := &dmn.Run{
		ID:         uuid.New(),
		SessionID:  sessionID,
		WorldID:    e.WorldID,
		Seed:       e.Seed,
		Cols:       e.Cols,
		Rows:       e.Rows,
		Frames:     e.Frames,
		Bounces:    e.Bounces,
		Duration:   e.Elapsed,
		FinishedAt: g.now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := g.runRepo.Save(ctx, run); err != nil {
		g.logger.Error(fmt.Sprintf("saving run %s: %s", run.ID, err))
	}
	if err := g.leaderboard.Record(ctx, run); err != nil {
		g.logger.Error(fmt.Sprintf("recording run %s on leaderboard: %s", run.ID, err))
	}
	g.logger.Info(fmt.Sprintf("session %s finished maze in %s with %d bounces", sessionID, run.Duration, run.Bounces))
}

type nopRunRepo struct{}

func (nopRunRepo) Save(context.Context, *dmn.Run) error { return nil }

func (nopRunRepo) ByID(context.Context, uuid.UUID) (*dmn.Run, error) {
	return nil, errors.New("run history is disabled")
}

func (nopRunRepo) BySession(context.Context, uuid.UUID, int64) ([]*dmn.Run, error) {
	return nil, nil
}

// NopLeaderboard is used when no leaderboard store is configured.
type NopLeaderboard struct{}

func (NopLeaderboard) Record(context.Context, *dmn.Run) error { return nil }

func (NopLeaderboard) Top(context.Context, string, int64) ([]dmn.LeaderboardEntry, error) {
	return nil, nil
}
