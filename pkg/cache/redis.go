package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"quiz-embed/internal/models"
)

const tallyTTL = 24 * time.Hour

// RedisCache keeps a live tally hash per quiz. Counters are a convenience
// for dashboards; the responses table stays the source of truth.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (c *RedisCache) Ping() error {
	return c.client.Ping(c.ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func tallyKey(quizID uint) string {
	return fmt.Sprintf("tally:quiz:%d", quizID)
}

// tallyFields lists the hash fields one response increments.
func tallyFields(response *models.Response) []string {
	fields := []string{"total"}
	if response.QuestionID != nil {
		fields = append(fields, fmt.Sprintf("question:%d", *response.QuestionID))
	}
	if response.ChoiceID != nil {
		fields = append(fields, fmt.Sprintf("choice:%d", *response.ChoiceID))
	}
	if response.TextAnswer != nil {
		fields = append(fields, "text")
	}
	return fields
}

func (c *RedisCache) RecordResponse(response *models.Response) error {
	key := tallyKey(response.QuizID)

	pipe := c.client.Pipeline()
	for _, field := range tallyFields(response) {
		pipe.HIncrBy(c.ctx, key, field, 1)
	}
	pipe.Expire(c.ctx, key, tallyTTL)

	_, err := pipe.Exec(c.ctx)
	return err
}

func (c *RedisCache) GetTally(quizID uint) (map[string]int64, error) {
	raw, err := c.client.HGetAll(c.ctx, tallyKey(quizID)).Result()
	if err != nil {
		return nil, err
	}
	return parseTally(raw)
}

func (c *RedisCache) ClearTally(quizID uint) error {
	return c.client.Del(c.ctx, tallyKey(quizID)).Err()
}

func parseTally(raw map[string]string) (map[string]int64, error) {
	tally := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tally field %s: %w", field, err)
		}
		tally[field] = n
	}
	return tally, nil
}
