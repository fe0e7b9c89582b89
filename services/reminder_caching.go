package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// How long a cached reminder list may serve reads before falling back to
// the store. Writes invalidate eagerly, so this is just a backstop.
const reminderCacheTTL = 5 * time.Minute

// ReminderCache keeps each user's reminder list in Redis so the list
// endpoint doesn't hit Mongo on every app foreground.
type ReminderCache struct {
	client *redis.Client
}

func NewReminderCache(redisURL string) (*ReminderCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ReminderCache{client: client}, nil
}

func reminderListKey(userID string) string {
	return fmt.Sprintf("reminders:%s", userID)
}

func (rc *ReminderCache) SetUserReminders(userID string, reminders []*model.Reminder) error {
	data, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %v", err)
	}

	ctx := context.Background()
	if err := rc.client.Set(ctx, reminderListKey(userID), data, reminderCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache reminders: %v", err)
	}

	return nil
}

// GetUserReminders returns the cached list and whether the cache held
// one. A cache error is treated as a miss.
func (rc *ReminderCache) GetUserReminders(userID string) ([]*model.Reminder, bool) {
	ctx := context.Background()

	data, err := rc.client.Get(ctx, reminderListKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Reminder cache read failed for user %s: %v", userID, err)
		return nil, false
	}

	var reminders []*model.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		log.Printf("Reminder cache entry corrupt for user %s: %v", userID, err)
		return nil, false
	}

	return reminders, true
}

func (rc *ReminderCache) Invalidate(userID string) error {
	ctx := context.Background()
	return rc.client.Del(ctx, reminderListKey(userID)).Err()
}
