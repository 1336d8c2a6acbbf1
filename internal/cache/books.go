package cache

import (
	"context"
	"encoding/json"
	"time"
)

// BooksCache caches the list of contact-book IDs a user may access.
// Entries expire after the configured TTL and are invalidated when an
// admin changes the user's grants.
type BooksCache struct {
	kv  KVStore
	ttl time.Duration
}

func NewBooksCache(kv KVStore, ttl time.Duration) *BooksCache {
	return &BooksCache{kv: kv, ttl: ttl}
}

func booksKey(userID string) string {
	return "contactsbook:user:" + userID + ":books"
}

// Get returns the cached book IDs, or ok=false on a miss.
func (c *BooksCache) Get(ctx context.Context, userID string) ([]string, bool) {
	raw, err := c.kv.Get(ctx, booksKey(userID))
	if err != nil {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// Put stores the book IDs for the user.
func (c *BooksCache) Put(ctx context.Context, userID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, booksKey(userID), string(raw), c.ttl)
}

// Invalidate drops the cached entry for the user.
func (c *BooksCache) Invalidate(ctx context.Context, userID string) error {
	return c.kv.Del(ctx, booksKey(userID))
}
