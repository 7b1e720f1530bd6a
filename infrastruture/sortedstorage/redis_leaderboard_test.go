package sortedstorage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisLeaderboard(t *testing.T) {
	_, err := NewRedisLeaderboard(Config{Size: 10})
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	_, err = NewRedisLeaderboard(Config{Client: client})
	assert.Error(t, err)

	rl, err := NewRedisLeaderboard(Config{Client: client, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, "tilt:leaderboard:11x11", rl.key(dmn.BoardName(11, 11)))
}

// scriptedRedis answers commands from a table instead of a server.
type scriptedRedis struct {
	replies map[string]func(redis.Cmder) error
	calls   []string
}

func (s *scriptedRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (s *scriptedRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *scriptedRedis) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		s.calls = append(s.calls, cmd.Name())
		reply, ok := s.replies[cmd.Name()]
		if !ok {
			err := fmt.Errorf("unexpected command %s", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return reply(cmd)
	}
}

func intReply(n int64) func(redis.Cmder) error {
	return func(cmd redis.Cmder) error {
		cmd.(*redis.IntCmd).SetVal(n)
		return nil
	}
}

func errReply(err error) func(redis.Cmder) error {
	return func(cmd redis.Cmder) error {
		cmd.SetErr(err)
		return err
	}
}

func newScriptedLeaderboard(t *testing.T, ttl time.Duration, replies map[string]func(redis.Cmder) error) (*RedisLeaderboard, *scriptedRedis) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() { _ = client.Close() })
	script := &scriptedRedis{replies: replies}
	client.AddHook(script)

	rl, err := NewRedisLeaderboard(Config{Client: client, Size: 3, TTL: ttl})
	require.NoError(t, err)
	return rl, script
}

func TestRecordErrors(t *testing.T) {
	ctx := context.Background()
	run := &dmn.Run{ID: uuid.New(), Cols: 11, Rows: 11, Duration: time.Second}
	down := errors.New("connection reset")

	t.Run("expiry failure", func(t *testing.T) {
		rl, _ := newScriptedLeaderboard(t, time.Hour, map[string]func(redis.Cmder) error{
			"zadd":   intReply(1),
			"expire": errReply(down),
		})
		assert.ErrorIs(t, rl.Record(ctx, run), down)
	})

	t.Run("count failure", func(t *testing.T) {
		rl, _ := newScriptedLeaderboard(t, 0, map[string]func(redis.Cmder) error{
			"zadd":  intReply(1),
			"zcard": errReply(down),
		})
		assert.ErrorIs(t, rl.Record(ctx, run), down)
	})

	t.Run("small board is not trimmed", func(t *testing.T) {
		rl, script := newScriptedLeaderboard(t, 0, map[string]func(redis.Cmder) error{
			"zadd":  intReply(1),
			"zcard": intReply(3),
		})
		require.NoError(t, rl.Record(ctx, run))
		assert.Equal(t, []string{"zadd", "zcard"}, script.calls)
	})
}

func TestTopSkipsForeignMembers(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	rl, _ := newScriptedLeaderboard(t, 0, map[string]func(redis.Cmder) error{
		"zrange": func(cmd redis.Cmder) error {
			cmd.(*redis.ZSliceCmd).SetVal([]redis.Z{
				{Score: 1000, Member: "not-a-run"},
				{Score: 2000, Member: first.String()},
				{Score: 3000, Member: second.String()},
			})
			return nil
		},
	})

	top, err := rl.Top(context.Background(), "11x11", 3)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, first, top[0].RunID)
	assert.Equal(t, 2, top[1].Rank)
	assert.Equal(t, 3*time.Second, top[1].Duration)
}

// Requires a running Redis; set TEST_REDIS_ADDR to run.
func TestRedisLeaderboard(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	prefix := "test-" + uuid.NewString()
	rl, err := NewRedisLeaderboard(Config{Client: client, Prefix: prefix, Size: 3})
	require.NoError(t, err)
	defer client.Del(ctx, rl.key("11x11"))

	durations := []time.Duration{9 * time.Second, 3 * time.Second, 7 * time.Second, 5 * time.Second, 11 * time.Second}
	ids := make([]uuid.UUID, len(durations))
	for i, d := range durations {
		ids[i] = uuid.New()
		require.NoError(t, rl.Record(ctx, &dmn.Run{ID: ids[i], Cols: 11, Rows: 11, Duration: d}))
	}

	top, err := rl.Top(ctx, "11x11", 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, ids[1], top[0].RunID)
	assert.Equal(t, 3*time.Second, top[0].Duration)
	assert.Equal(t, ids[3], top[1].RunID)
	assert.Equal(t, ids[2], top[2].RunID)
	assert.Equal(t, 3, top[2].Rank)
}
