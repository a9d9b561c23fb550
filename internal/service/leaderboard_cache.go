package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"testseries-service/internal/models"
)

// LeaderboardCache keeps a test's ranked result set in Redis so leaderboard
// reads don't hit Mongo on every request. Nil-safe: a nil cache is a cache
// that always misses, which lets Redis stay optional.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func leaderboardKey(testID string) string {
	return "testseries:leaderboard:" + testID
}

func (c *LeaderboardCache) Get(ctx context.Context, testID string) ([]models.Result, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, leaderboardKey(testID)).Bytes()
	if err != nil {
		return nil, false
	}
	var results []models.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		log.Printf("Dropping corrupt leaderboard cache entry for test %s: %v", testID, err)
		c.Invalidate(ctx, testID)
		return nil, false
	}
	return results, true
}

func (c *LeaderboardCache) Set(ctx context.Context, testID string, results []models.Result) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, leaderboardKey(testID), raw, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache leaderboard for test %s: %v", testID, err)
	}
}

func (c *LeaderboardCache) Invalidate(ctx context.Context, testID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, leaderboardKey(testID)).Err(); err != nil {
		log.Printf("Failed to invalidate leaderboard for test %s: %v", testID, err)
	}
}
