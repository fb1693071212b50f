package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fittrack-be/internal/cache"
	"fittrack-be/internal/entities"
)

type memoryCache struct {
	mu      sync.Mutex
	values  map[string]string
	deletes []string
	gets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(data), expiration)
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (c *memoryCache) Close() error { return nil }

type recordingPublisher struct {
	published []*entities.FitnessEntry
	err       error
}

func (p *recordingPublisher) PublishEntryRecorded(ctx context.Context, entry *entities.FitnessEntry) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, entry)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }
