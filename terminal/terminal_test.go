package terminal

import (
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSound struct {
	bounces []float64
}

func (c *countingSound) Bounce(strength float64) { c.bounces = append(c.bounces, strength) }

func (c *countingSound) Close() {}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func snapshotAt(w *game.World, p maze.CellPosition) game.Snapshot {
	x, z := w.Grid.CellCenter(p, w.CellSize)
	return game.Snapshot{WorldID: w.ID, Position: mgl64.Vec3{x, 0.4, z}}
}

func TestRenderer(t *testing.T) {
	screen := newScreen(t)
	sound := &countingSound{}
	r := NewRenderer(screen, sound)
	w := game.NewWorld(game.DefaultConfig(), 7)

	r.DrawMaze(w)
	r.DrawBall(snapshotAt(w, w.Start))

	t.Run("walls are drawn two columns wide", func(t *testing.T) {
		assert.Equal(t, wallRune, runeAt(screen, 0, 0))
		assert.Equal(t, wallRune, runeAt(screen, 1, 0))
	})

	t.Run("ball and goal", func(t *testing.T) {
		assert.Equal(t, ballRune, runeAt(screen, w.Start.X*cellWidth, w.Start.Y))
		assert.Equal(t, goalRune, runeAt(screen, w.Goal.X*cellWidth, w.Goal.Y))
	})

	t.Run("hint follows the shortest path", func(t *testing.T) {
		path := w.Grid.Path(w.Start, w.Goal)
		require.Greater(t, len(path), 2)
		mid := path[1]

		r.ToggleHint()
		assert.Equal(t, hintRune, runeAt(screen, mid.X*cellWidth, mid.Y))
		r.ToggleHint()
		assert.Equal(t, ' ', runeAt(screen, mid.X*cellWidth, mid.Y))
	})

	t.Run("hard contacts make a sound", func(t *testing.T) {
		s := snapshotAt(w, w.Start)
		s.Contacts = 1
		r.DrawBall(s)
		assert.Empty(t, sound.bounces, "resting contact is silent")

		s.Velocity = mgl64.Vec2{0.05, 0}
		r.DrawBall(s)
		assert.Len(t, sound.bounces, 1)
	})
}

func TestKeyboard(t *testing.T) {
	cfg := input.Config{TiltScale: 1, KeyForce: 4}
	kb := NewKeyboard(input.NewState(cfg), 100*time.Millisecond)
	now := time.Unix(0, 0)
	kb.now = func() time.Time { return now }

	kb.Press(input.KeyRight)
	kb.Press(input.KeyUp)
	assert.Equal(t, mgl64.Vec2{4, -4}, kb.Poll())

	now = now.Add(60 * time.Millisecond)
	kb.Press(input.KeyRight)
	now = now.Add(60 * time.Millisecond)
	assert.Equal(t, mgl64.Vec2{4, 0}, kb.Poll(), "up expired, right was repeated")

	now = now.Add(time.Second)
	assert.Equal(t, mgl64.Vec2{}, kb.Poll())

	kb.Press(input.KeyLeft)
	kb.ReleaseAll()
	assert.Equal(t, mgl64.Vec2{}, kb.Poll())
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), input.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), input.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), input.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyFromEvent(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		assert.Equal(t, tt.want, got, tt.ev.Name())
	}
}

func TestTone(t *testing.T) {
	tn := newTone(440, 10*time.Millisecond, sampleRate)
	buf := make([][2]float64, 1024)

	total := 0
	for {
		n, ok := tn.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(10*time.Millisecond), total)
	assert.NoError(t, tn.Err())
}
