package terminal

import (
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultHold is how long a key counts as held after its last press event.
// Terminals report no key releases, so a held key is seen as a stream of
// auto-repeat presses.
const DefaultHold = 150 * time.Millisecond

// Keyboard turns terminal key presses into held directional keys.
type Keyboard struct {
	state     *input.State
	hold      time.Duration
	now       func() time.Time
	mu        sync.Mutex
	releaseAt map[input.Key]time.Time
}

var _ game.InputSource = &Keyboard{}

// NewKeyboard creates a Keyboard writing to state. Keys are released hold
// after their last press.
func NewKeyboard(state *input.State, hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{
		state:     state,
		hold:      hold,
		now:       time.Now,
		releaseAt: make(map[input.Key]time.Time),
	}
}

// Press marks k as held.
func (kb *Keyboard) Press(k input.Key) {
	kb.mu.Lock()
	kb.releaseAt[k] = kb.now().Add(kb.hold)
	kb.mu.Unlock()
	kb.state.SetKey(k, true)
}

// ReleaseAll drops every held key.
func (kb *Keyboard) ReleaseAll() {
	kb.mu.Lock()
	for k := range kb.releaseAt {
		delete(kb.releaseAt, k)
	}
	kb.mu.Unlock()
	kb.state.SetKeys(0)
}

// Poll releases expired keys and returns the current force.
func (kb *Keyboard) Poll() mgl64.Vec2 {
	now := kb.now()
	kb.mu.Lock()
	for k, at := range kb.releaseAt {
		if !now.Before(at) {
			delete(kb.releaseAt, k)
			kb.state.SetKey(k, false)
		}
	}
	kb.mu.Unlock()
	return kb.state.Poll()
}

// KeyFromEvent maps arrows, WASD and hjkl to directional keys.
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return input.KeyUp, true
		case 's', 'S', 'j':
			return input.KeyDown, true
		case 'a', 'A', 'h':
			return input.KeyLeft, true
		case 'd', 'D', 'l':
			return input.KeyRight, true
		}
	}
	return 0, false
}
