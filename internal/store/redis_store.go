package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
)

// TTLs chosen by game state: in-progress games are rewritten constantly,
// finished games stick around for a day of replay lookups.
const (
	GameListTTL     = 24 * time.Hour
	LiveGameTTL     = 2 * time.Hour
	FinalGameTTL    = 24 * time.Hour
	BoxScoreTTL     = 24 * time.Hour
	gameListKey     = "games:scheduled"
	gameSummaryKey  = "game:%s:summary"
	gameBoxScoreKey = "game:%s:boxscore"
)

// RedisStore mirrors simulated games into Redis so other services can read
// summaries and box scores without hitting this process. It is a write-through
// cache layered on top of the in-memory store, never the source of truth.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping verifies connectivity. Called once at startup so a bad REDIS_ADDR
// fails loudly instead of surfacing as per-game write errors.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// WriteGame stores the game summary and, when present, its box score.
func (s *RedisStore) WriteGame(ctx context.Context, game domaingames.Game) error {
	summary, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("marshaling game %s: %w", game.ID, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(gameSummaryKey, game.ID), summary, ttlForStatus(game.Status))

	if game.BoxScore != nil {
		box, err := json.Marshal(game.BoxScore)
		if err != nil {
			return fmt.Errorf("marshaling box score for game %s: %w", game.ID, err)
		}
		pipe.Set(ctx, fmt.Sprintf(gameBoxScoreKey, game.ID), box, BoxScoreTTL)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// WriteGameList replaces the list of known game IDs.
func (s *RedisStore) WriteGameList(ctx context.Context, gameIDs []string) error {
	values := make([]interface{}, len(gameIDs))
	for i, id := range gameIDs {
		values[i] = id
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, gameListKey)
	if len(values) > 0 {
		pipe.RPush(ctx, gameListKey, values...)
	}
	pipe.Expire(ctx, gameListKey, GameListTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// ReadGame retrieves a mirrored game summary.
func (s *RedisStore) ReadGame(ctx context.Context, gameID string) (*domaingames.Game, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(gameSummaryKey, gameID)).Result()
	if err != nil {
		return nil, err
	}

	var game domaingames.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, fmt.Errorf("unmarshaling game %s: %w", gameID, err)
	}
	return &game, nil
}

// ReadBoxScore retrieves a mirrored box score.
func (s *RedisStore) ReadBoxScore(ctx context.Context, gameID string) (*domaingames.BoxScore, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(gameBoxScoreKey, gameID)).Result()
	if err != nil {
		return nil, err
	}

	var box domaingames.BoxScore
	if err := json.Unmarshal([]byte(data), &box); err != nil {
		return nil, fmt.Errorf("unmarshaling box score for game %s: %w", gameID, err)
	}
	return &box, nil
}

// ReadGameList retrieves the list of known game IDs.
func (s *RedisStore) ReadGameList(ctx context.Context) ([]string, error) {
	return s.client.LRange(ctx, gameListKey, 0, -1).Result()
}

func ttlForStatus(status domaingames.GameStatus) time.Duration {
	switch status {
	case domaingames.StatusFinal:
		return FinalGameTTL
	case domaingames.StatusInProgress:
		return LiveGameTTL
	default:
		return LiveGameTTL
	}
}
