package sortedstorage

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "tilt"
	boardKeyFmt   = "%s:leaderboard:%s"
)

// RedisLeaderboard keeps the fastest runs of every board in a Redis sorted
// set scored by duration in milliseconds.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	size   int64
	ttl    time.Duration
}

var _ i.Leaderboard = &RedisLeaderboard{}

// Config configures a RedisLeaderboard.
type Config struct {
	Client *redis.Client
	Prefix string        // Key prefix, defaults to "tilt".
	Size   int64         // Entries kept per board.
	TTL    time.Duration // Expiry of an untouched board, zero keeps boards forever.
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client.
func NewRedisLeaderboard(c Config) (*RedisLeaderboard, error) {
	if c.Client == nil {
		return nil, errors.New("redis client is required")
	}
	if c.Size <= 0 {
		return nil, errors.New("leaderboard size must be positive")
	}
	if c.Prefix == "" {
		c.Prefix = defaultPrefix
	}

	pool := goredis.NewPool(c.Client)
	return &RedisLeaderboard{
		client: c.Client,
		locker: redsync.New(pool),
		prefix: c.Prefix,
		size:   c.Size,
		ttl:    c.TTL,
	}, nil
}

func (rl *RedisLeaderboard) key(board string) string {
	return fmt.Sprintf(boardKeyFmt, rl.prefix, board)
}

// Record adds a run to its board and trims the board to its size.
func (rl *RedisLeaderboard) Record(ctx context.Context, run *dmn.Run) error {
	key := rl.key(run.Board())
	score := float64(run.Duration.Milliseconds())
	if err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: run.ID.String()}).Err(); err != nil {
		return err
	}

	if rl.ttl > 0 {
		if err := rl.client.Expire(ctx, key, rl.ttl).Err(); err != nil {
			return fmt.Errorf("setting expiry of %s: %w", key, err)
		}
	}

	count, err := rl.client.ZCard(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("counting %s: %w", key, err)
	}
	if count <= rl.size {
		return nil
	}
	return rl.trim(ctx, key)
}

// trim removes everything beyond the fastest size entries. Concurrent trims
// of one board are serialized.
func (rl *RedisLeaderboard) trim(ctx context.Context, key string) error {
	mutex := rl.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return rl.client.ZRemRangeByRank(ctx, key, rl.size, -1).Err()
}

// Top returns up to n entries of a board, fastest first. Members that are not
// run ids are skipped and do not take a rank.
func (rl *RedisLeaderboard) Top(ctx context.Context, board string, n int64) ([]dmn.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	members, err := rl.client.ZRangeWithScores(ctx, rl.key(board), 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dmn.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		entries = append(entries, dmn.LeaderboardEntry{
			Rank:     len(entries) + 1,
			RunID:    id,
			Duration: time.Duration(m.Score) * time.Millisecond,
		})
	}
	return entries, nil
}
