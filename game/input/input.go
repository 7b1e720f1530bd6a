// Package input keeps the latest tilt and directional-key readings as an
// immutable snapshot that writers swap atomically and the tick reads once.
package input

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Key is a directional key.
type Key uint8

// Directional keys. Up rolls the ball towards negative z.
const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// Keys is a set of held directional keys.
type Keys uint8

// Has reports whether k is held.
func (ks Keys) Has(k Key) bool {
	return ks&Keys(k) != 0
}

// Direction returns the unit-per-key direction of the held keys.
// Opposite keys cancel out.
func (ks Keys) Direction() mgl64.Vec2 {
	var d mgl64.Vec2
	if ks.Has(KeyLeft) {
		d[0]--
	}
	if ks.Has(KeyRight) {
		d[0]++
	}
	if ks.Has(KeyUp) {
		d[1]--
	}
	if ks.Has(KeyDown) {
		d[1]++
	}
	return d
}

// Snapshot is one immutable input reading.
type Snapshot struct {
	Tilt      mgl64.Vec2 // Accelerometer (x, y) including gravity.
	Keys      Keys       // Held directional keys.
	UpdatedAt time.Time  // Time of the last write.
}

// Config scales the two input sources.
type Config struct {
	TiltScale float64 `yaml:"tilt_scale"` // Multiplier for accelerometer readings.
	KeyForce  float64 `yaml:"key_force"`  // Force contributed by one held key.
}

// State is the shared input record. The zero value is not usable; use NewState.
type State struct {
	cfg     Config
	current atomic.Pointer[Snapshot]
	now     func() time.Time
}

// NewState creates an input record with no tilt and no keys held.
func NewState(cfg Config) *State {
	s := &State{cfg: cfg, now: time.Now}
	s.current.Store(&Snapshot{})
	return s
}

// Snapshot returns the latest reading.
func (s *State) Snapshot() Snapshot {
	return *s.current.Load()
}

// Poll returns the additive force of tilt and keys for this tick.
//
// The accelerometer maps to the floor plane as (-x, y), matching a phone held
// flat with its top pointing away from the player.
func (s *State) Poll() mgl64.Vec2 {
	snap := s.current.Load()
	tilt := mgl64.Vec2{-snap.Tilt.X(), snap.Tilt.Y()}.Mul(s.cfg.TiltScale)
	return tilt.Add(snap.Keys.Direction().Mul(s.cfg.KeyForce))
}

// SetTilt records a new accelerometer reading.
func (s *State) SetTilt(x, y float64) {
	s.update(func(snap *Snapshot) {
		snap.Tilt = mgl64.Vec2{x, y}
	})
}

// SetKey marks k as held or released.
func (s *State) SetKey(k Key, held bool) {
	s.update(func(snap *Snapshot) {
		if held {
			snap.Keys |= Keys(k)
		} else {
			snap.Keys &^= Keys(k)
		}
	})
}

// SetKeys replaces the whole key set.
func (s *State) SetKeys(ks Keys) {
	s.update(func(snap *Snapshot) {
		snap.Keys = ks
	})
}

// Reset clears tilt and keys.
func (s *State) Reset() {
	s.update(func(snap *Snapshot) {
		*snap = Snapshot{}
	})
}

// update applies fn to a copy of the current snapshot and swaps it in.
func (s *State) update(fn func(*Snapshot)) {
	for {
		old := s.current.Load()
		next := *old
		fn(&next)
		next.UpdatedAt = s.now()
		if s.current.CompareAndSwap(old, &next) {
			return
		}
	}
}
