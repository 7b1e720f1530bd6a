package game

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEncoder struct {
	err error
}

func (e stubEncoder) MarshalSnapshot(s Snapshot) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []byte(strconv.FormatInt(s.Frame, 10)), nil
}

func (e stubEncoder) MarshalWorld(w *World) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []byte("w" + strconv.FormatInt(w.Seed, 10)), nil
}

func TestBroadcaster(t *testing.T) {
	t.Run("new subscribers get the current maze first", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		b.DrawMaze(&World{Seed: 7})

		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()
		b.DrawBall(Snapshot{Frame: 1})

		assert.Equal(t, append([]byte{WorldRecordType}, "w7"...), <-ch)
		assert.Equal(t, append([]byte{SnapshotRecordType}, "1"...), <-ch)
	})

	t.Run("slow subscribers keep the newest frames", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()

		total := subscriberBufferSize + 5
		for i := 1; i <= total; i++ {
			b.DrawBall(Snapshot{Frame: int64(i)})
		}

		require.Len(t, ch, subscriberBufferSize)
		first := <-ch
		assert.Equal(t, strconv.Itoa(total-subscriberBufferSize+1), string(first[1:]))
	})

	t.Run("slow subscribers never lose the maze", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		b.DrawMaze(&World{Seed: 3})
		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()

		total := 3 * subscriberBufferSize
		for i := 1; i <= total; i++ {
			b.DrawBall(Snapshot{Frame: int64(i)})
		}

		require.Len(t, ch, subscriberBufferSize)
		assert.Equal(t, append([]byte{WorldRecordType}, "w3"...), <-ch)
		for i := total - subscriberBufferSize + 2; i <= total; i++ {
			assert.Equal(t, strconv.Itoa(i), string((<-ch)[1:]))
		}
	})

	t.Run("a new maze replaces the queued one", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		b.DrawMaze(&World{Seed: 1})
		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()

		for i := 1; i <= subscriberBufferSize; i++ {
			b.DrawBall(Snapshot{Frame: int64(i)})
		}
		b.DrawMaze(&World{Seed: 2})
		for i := 0; i < 2*subscriberBufferSize; i++ {
			b.DrawBall(Snapshot{Frame: 100})
		}

		var worlds []string
		for len(ch) > 0 {
			if f := <-ch; f[0] == WorldRecordType {
				worlds = append(worlds, string(f[1:]))
			}
		}
		assert.Equal(t, []string{"w2"}, worlds)
	})

	t.Run("unsubscribe closes the channel once", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		ch, unsubscribe := b.Subscribe()
		assert.Equal(t, 1, b.Subscribers())

		unsubscribe()
		unsubscribe()
		_, ok := <-ch
		assert.False(t, ok)
		assert.Equal(t, 0, b.Subscribers())

		b.DrawBall(Snapshot{Frame: 1})
	})

	t.Run("close drops every subscriber", func(t *testing.T) {
		b := NewBroadcaster(stubEncoder{})
		a, unsubA := b.Subscribe()
		c, unsubC := b.Subscribe()
		b.Close()

		_, okA := <-a
		_, okC := <-c
		assert.False(t, okA)
		assert.False(t, okC)

		unsubA()
		unsubC()
	})

	t.Run("encoder failures are reported and skipped", func(t *testing.T) {
		boom := errors.New("boom")
		b := NewBroadcaster(stubEncoder{err: boom})
		var got []error
		b.OnError = func(err error) { got = append(got, err) }

		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()
		b.DrawMaze(&World{})
		b.DrawBall(Snapshot{})

		assert.Equal(t, []error{boom, boom}, got)
		assert.Empty(t, ch)
	})
}
