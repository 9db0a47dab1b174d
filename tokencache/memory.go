package tokencache

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMemoryCacheSize = 128

// MemoryCache is a bounded in-process Cache. Least recently used accounts
// are evicted once the bound is reached.
type MemoryCache struct {
	records *lru.Cache[string, Record]
}

// NewMemoryCache builds a MemoryCache holding at most size accounts; a
// non-positive size selects the default bound.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = defaultMemoryCacheSize
	}
	records, err := lru.New[string, Record](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{records: records}, nil
}

// Save stores the newest record per account from the given list.
func (c *MemoryCache) Save(_ context.Context, records []Record) error {
	if len(records) == 0 {
		return errors.New("empty record list")
	}
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if record.HomeAccountID == "" {
			return errors.New("record missing home account id")
		}
		// Newest first: later entries for the same account are stale.
		if _, ok := seen[record.HomeAccountID]; ok {
			continue
		}
		seen[record.HomeAccountID] = struct{}{}
		c.records.Add(record.HomeAccountID, record)
	}
	return nil
}

// Get returns a copy of the account's current record.
func (c *MemoryCache) Get(_ context.Context, homeAccountID string) (*Record, error) {
	record, ok := c.records.Get(homeAccountID)
	if !ok {
		return nil, ErrNotFound
	}
	record.Scopes = append([]string(nil), record.Scopes...)
	return &record, nil
}

// Remove drops the account's record. Removing an absent account is a
// no-op.
func (c *MemoryCache) Remove(_ context.Context, homeAccountID string) error {
	c.records.Remove(homeAccountID)
	return nil
}
