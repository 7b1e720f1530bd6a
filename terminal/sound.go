package terminal

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	bounceDuration = 60 * time.Millisecond
	bounceCooldown = 80 * time.Millisecond
)

// Sound plays feedback effects.
type Sound interface {
	// Bounce plays a wall hit. strength is in [0, 1].
	Bounce(strength float64)
	Close()
}

// Silent is the Sound used when no audio device is available.
type Silent struct{}

func (Silent) Bounce(float64) {}

func (Silent) Close() {}

// Speaker plays synthesized effects on the default audio device.
type Speaker struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	lastPlay time.Time
	now      func() time.Time
	playing  bool
}

// NewSpeaker initializes the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}, now: time.Now, playing: true}
	speaker.Play(s.mixer)
	return s, nil
}

// OpenSound returns a Speaker, or Silent when the device cannot be opened.
func OpenSound() Sound {
	s, err := NewSpeaker()
	if err != nil {
		return Silent{}
	}
	return s
}

// Bounce plays a short click whose pitch and loudness grow with strength.
// Bounces closer together than the cooldown are dropped.
func (s *Speaker) Bounce(strength float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.playing || now.Sub(s.lastPlay) < bounceCooldown {
		return
	}
	s.lastPlay = now

	strength = math.Max(0, math.Min(1, strength))
	tone := newTone(180+320*strength, bounceDuration, sampleRate)
	speaker.Lock()
	s.mixer.Add(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   -3 + 3*strength,
	})
	speaker.Unlock()
}

// Close silences the speaker.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing {
		return
	}
	s.playing = false
	speaker.Clear()
}

// tone is a sine wave with a linear fade out.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		envelope := 1 - float64(t.position)/float64(t.length)
		val := envelope * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
