package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/source"
)

// Errors for cached source construction.
var (
	// ErrStoreRequired is returned when a store is not provided.
	ErrStoreRequired = errors.New("store required")

	// ErrFetcherRequired is returned when a fetcher is not provided.
	ErrFetcherRequired = errors.New("fetcher required")

	// ErrKeyRequired is returned when a cache key is not provided.
	ErrKeyRequired = errors.New("cache key required")
)

// Cached wraps fetcher into a persisted load-once source keyed by key
// (typically the remote URL). A cache hit serves records straight from the
// store; a miss invokes the fetcher once and persists the result.
//
// Fetch failures are not cached. A failed Put is logged through the store's
// logger and otherwise ignored: the records were already resolved, so the
// search cycle proceeds.
func Cached(fetcher source.Fetcher, store *Store, key string) (source.Fetcher, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if key == "" {
		return nil, ErrKeyRequired
	}
	return &cachedSource{
		fetcher: fetcher,
		store:   store,
		id:      core.IDFromContent(key),
		key:     key,
	}, nil
}

type cachedSource struct {
	fetcher source.Fetcher
	store   *Store
	id      core.ID
	key     string

	mu     sync.Mutex
	primed bool
}

// Primed reports whether a previous Fetch already resolved the record set,
// from the store or the producer.
func (s *cachedSource) Primed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primed
}

func (s *cachedSource) Fetch(ctx context.Context, query string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok, err := s.store.Get(s.id)
	if err != nil {
		s.store.logger.Warn("cache lookup failed, falling back to fetch", "key", s.key, "err", err)
	} else if ok {
		s.primed = true
		return records, nil
	}

	// Cached records serve all queries, so the producer sees none.
	records, err = s.fetcher.Fetch(ctx, "")
	if err != nil {
		return nil, err
	}
	s.primed = true

	if err := s.store.Put(s.id, records); err != nil {
		s.store.logger.Warn("failed to persist fetched records", "key", s.key, "err", err)
	}
	return records, nil
}
