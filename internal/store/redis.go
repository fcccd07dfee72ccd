package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// Redis persists the document under Key on a Redis server.
// The document is stored as one JSON string with no TTL — the event data
// lives as long as the key does.
type Redis struct {
	client *redis.Client
}

// NewRedis constructs a Redis store on the provided client.
// The caller owns the client's lifecycle until Close is called.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Load fetches and decodes the document. A missing key yields the empty
// document, so a fresh deployment serves an event with no participants
// rather than an error.
func (s *Redis) Load(ctx context.Context) (domain.WeekendData, error) {
	raw, err := s.client.Get(ctx, Key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.NewWeekendData(), nil
	}
	if err != nil {
		return domain.WeekendData{}, fmt.Errorf("store.Redis.Load: %w", err)
	}

	var data domain.WeekendData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return domain.WeekendData{}, fmt.Errorf("store.Redis.Load: decode document: %w", err)
	}
	normalize(&data)
	return data, nil
}

// Save encodes and writes the whole document. There is no locking between a
// Load and the following Save; callers accept last-write-wins semantics.
func (s *Redis) Save(ctx context.Context, data domain.WeekendData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("store.Redis.Save: encode document: %w", err)
	}
	if err := s.client.Set(ctx, Key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store.Redis.Save: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *Redis) Close() error {
	return s.client.Close()
}

// normalize allocates any collection that decoded as null, so callers can
// append without nil checks and re-encoded documents keep [] over null.
func normalize(data *domain.WeekendData) {
	if data.Participants == nil {
		data.Participants = []domain.Participant{}
	}
	if data.Wishes == nil {
		data.Wishes = []domain.Wish{}
	}
	if data.Activities == nil {
		data.Activities = []domain.Activity{}
	}
	if data.PackList == nil {
		data.PackList = []domain.PackItem{}
	}
	if data.Expenses == nil {
		data.Expenses = []domain.Expense{}
	}
	if data.Schedule == nil {
		data.Schedule = []domain.ScheduleItem{}
	}
}
