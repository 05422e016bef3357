package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"aptlearn-server/internal/models"
)

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func dayKey(dayNumber int) string {
	return fmt.Sprintf("quiz:day:%d", dayNumber)
}

// SetDayQuestions caches the full question set for a day, answer indices
// included. Cached entries are only ever served back through the DTO layer.
func (c *RedisCache) SetDayQuestions(dayNumber int, questions []models.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}

	return c.client.Set(c.ctx, dayKey(dayNumber), data, 24*time.Hour).Err()
}

func (c *RedisCache) GetDayQuestions(dayNumber int) ([]models.Question, error) {
	data, err := c.client.Get(c.ctx, dayKey(dayNumber)).Bytes()
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	err = json.Unmarshal(data, &questions)
	return questions, err
}

func (c *RedisCache) InvalidateDay(dayNumber int) error {
	return c.client.Del(c.ctx, dayKey(dayNumber)).Err()
}
