package io

import (
	"context"
	"os"
	"sync"

	"depdm/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// IOShardLoader loads corpus shards directly from the local filesystem
// with caching.
type IOShardLoader struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewIOShardLoader creates a new filesystem-based shard loader.
func NewIOShardLoader() *IOShardLoader {
	return &IOShardLoader{
		cache: make(map[string][]byte),
	}
}

// GetShardBytes reads the shard content from the filesystem. Results are
// cached, and concurrent requests for the same shard share one read.
func (l *IOShardLoader) GetShardBytes(ctx context.Context, shard loader.Shard) ([]byte, error) {
	key := loader.CacheKey(shard)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		result, err := os.ReadFile(shard.Path)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = result
		l.cacheMu.Unlock()

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
