// Package customdict keeps user-supplied dictionary words in a Redis
// set, so they survive restarts and flow into every rebuilt model.
package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "speller:custom_words"

// CustomDict wraps a Redis client to store custom dictionary words.
// Words are lowercased on the way in; membership is case-insensitive.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict on the provided Redis client under the
// default key.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client, key: defaultKey}
}

// NewWithKey stores words under a custom Redis key, so several
// dictionaries can share one Redis.
func NewWithKey(client *redis.Client, key string) *CustomDict {
	return &CustomDict{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, strings.ToLower(word)).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, strings.ToLower(word)).Err()
}

// All returns every stored word.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}

// Len returns the number of stored words.
func (cd *CustomDict) Len(ctx context.Context) (int64, error) {
	return cd.client.SCard(ctx, cd.key).Result()
}
