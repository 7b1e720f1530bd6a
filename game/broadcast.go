package game

import (
	"sync"
)

// Record types prefixed to every broadcast frame.
const (
	WorldRecordType    byte = 1 << iota // Payload is an encoded World.
	SnapshotRecordType                  // Payload is an encoded Snapshot.
)

const subscriberBufferSize = 8

// Broadcaster is a Renderer that encodes frames and fans them out to
// subscribers. Slow subscribers lose their oldest queued snapshots; the
// latest maze stays queued until it is read.
type Broadcaster struct {
	encoder     Encoder
	subscribers map[int]chan []byte
	nextID      int
	lastWorld   []byte // replayed to new subscribers
	OnError     func(error)
	sync.Mutex
}

var _ Renderer = &Broadcaster{}

// NewBroadcaster creates a Broadcaster that encodes frames with e.
func NewBroadcaster(e Encoder) *Broadcaster {
	return &Broadcaster{
		encoder:     e,
		subscribers: make(map[int]chan []byte),
	}
}

// Subscribe registers a new receiver. The current maze, if any, is queued
// first. Call the returned function to unsubscribe.
func (b *Broadcaster) Subscribe() (<-chan []byte, func()) {
	b.Lock()
	defer b.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan []byte, subscriberBufferSize)
	if b.lastWorld != nil {
		ch <- b.lastWorld
	}
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.Lock()
			defer b.Unlock()
			if _, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(ch)
			}
		})
	}
}

// Subscribers returns the number of active subscribers.
func (b *Broadcaster) Subscribers() int {
	b.Lock()
	defer b.Unlock()
	return len(b.subscribers)
}

// Close unsubscribes everyone.
func (b *Broadcaster) Close() {
	b.Lock()
	defer b.Unlock()
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}

// DrawMaze implements Renderer.
func (b *Broadcaster) DrawMaze(w *World) {
	payload, err := b.encoder.MarshalWorld(w)
	if err != nil {
		b.fail(err)
		return
	}
	frame := append([]byte{WorldRecordType}, payload...)

	b.Lock()
	defer b.Unlock()
	b.lastWorld = frame
	b.send(frame)
}

// DrawBall implements Renderer.
func (b *Broadcaster) DrawBall(s Snapshot) {
	payload, err := b.encoder.MarshalSnapshot(s)
	if err != nil {
		b.fail(err)
		return
	}

	b.Lock()
	defer b.Unlock()
	b.send(append([]byte{SnapshotRecordType}, payload...))
}

// send queues frame on every subscriber. Callers hold the lock.
func (b *Broadcaster) send(frame []byte) {
	for _, ch := range b.subscribers {
		select {
		case ch <- frame:
			continue
		default:
		}

		// Full: requeue everything but the oldest droppable frame. Only this
		// goroutine sends, so the refill cannot block.
		queued := make([][]byte, 0, cap(ch))
	drain:
		for {
			select {
			case f := <-ch:
				queued = append(queued, f)
			default:
				break drain
			}
		}
		if len(queued) == cap(ch) {
			queued = dropOldest(queued)
		}
		for _, f := range queued {
			ch <- f
		}
		ch <- frame
	}
}

// dropOldest removes the oldest frame other than the newest world frame, so
// a subscriber that falls behind still receives the maze.
func dropOldest(frames [][]byte) [][]byte {
	keep := -1
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i][0] == WorldRecordType {
			keep = i
			break
		}
	}
	for i := range frames {
		if i != keep {
			return append(frames[:i], frames[i+1:]...)
		}
	}
	return frames
}

func (b *Broadcaster) fail(err error) {
	if b.OnError != nil {
		b.OnError(err)
	}
}
