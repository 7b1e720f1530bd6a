// Package terminal hosts a game in a text terminal: a top-down tcell
// renderer, keyboard input and optional bounce sounds.
package terminal

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/gdamore/tcell/v2"
)

// Each grid cell is drawn two columns wide so the maze looks square.
const cellWidth = 2

// Glyphs used by the renderer.
const (
	wallRune = '█'
	ballRune = '●'
	goalRune = '◎'
	hintRune = '·'
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	goalStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// bounceThreshold is the post-bounce speed below which contacts are silent.
const bounceThreshold = 0.005

// Renderer draws the maze top-down. It implements game.Renderer.
type Renderer struct {
	screen   tcell.Screen
	sound    Sound
	mu       sync.Mutex
	world    *game.World
	ball     game.Snapshot
	showHint bool
}

var _ game.Renderer = &Renderer{}

// NewRenderer creates a Renderer drawing on screen. A nil sound is silent.
func NewRenderer(screen tcell.Screen, sound Sound) *Renderer {
	if sound == nil {
		sound = Silent{}
	}
	return &Renderer{screen: screen, sound: sound}
}

// DrawMaze implements game.Renderer.
func (r *Renderer) DrawMaze(w *game.World) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.world = w
	r.ball = game.Snapshot{}
	r.draw()
}

// DrawBall implements game.Renderer.
func (r *Renderer) DrawBall(s game.Snapshot) {
	if s.Contacts > 0 {
		if speed := s.Velocity.Len(); speed > bounceThreshold {
			r.sound.Bounce(speed * 5)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ball = s
	r.draw()
}

// ToggleHint shows or hides the shortest path from the ball to the goal.
func (r *Renderer) ToggleHint() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showHint = !r.showHint
	r.draw()
}

// Redraw repaints everything, e.g. after a resize.
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Sync()
	r.draw()
}

// draw paints the current state. Callers hold the lock.
func (r *Renderer) draw() {
	r.screen.Clear()
	w := r.world
	if w == nil {
		r.text(0, 0, "generating maze...", statusStyle)
		r.screen.Show()
		return
	}

	for y := 0; y < w.Grid.Rows(); y++ {
		for x := 0; x < w.Grid.Cols(); x++ {
			if w.Grid.At(x, y) == maze.Wall {
				r.cell(maze.CellPosition{X: x, Y: y}, wallRune, wallStyle)
			}
		}
	}

	ballCell := w.Grid.CellAt(r.ball.Position.X(), r.ball.Position.Z(), w.CellSize)
	if r.showHint {
		for _, p := range w.Grid.Path(ballCell, w.Goal) {
			r.cell(p, hintRune, hintStyle)
		}
	}
	r.cell(w.Goal, goalRune, goalStyle)
	if w.Grid.InBound(ballCell.X, ballCell.Y) {
		r.cell(ballCell, ballRune, ballStyle)
	}

	status := fmt.Sprintf("frame %d  bounces %d  seed %d", r.ball.Frame, r.ball.Bounces, w.Seed)
	if r.ball.Finished {
		status = "goal reached! press r for a new maze  " + status
	}
	r.text(0, w.Grid.Rows()+1, status, statusStyle)
	r.text(0, w.Grid.Rows()+2, "arrows/wasd roll  r new maze  ? hint  q quit", statusStyle)
	r.screen.Show()
}

func (r *Renderer) cell(p maze.CellPosition, ch rune, style tcell.Style) {
	x := p.X * cellWidth
	for i := 0; i < cellWidth; i++ {
		glyph := ch
		if ch != wallRune && i > 0 {
			glyph = ' '
		}
		r.screen.SetContent(x+i, p.Y, glyph, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
