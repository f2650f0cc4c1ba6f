package source

import (
	"context"
	"sync"

	"github.com/poiesic/searchit/core"
)

// LoadOnce wraps a Fetcher so the underlying producer is invoked a single
// time: the first successful resolution is coerced, cached, and reused for
// every subsequent trigger. Because the cached records must serve all
// queries, the producer is invoked with an empty query.
//
// Failed loads are not cached; the next trigger retries.
func LoadOnce(f Fetcher) (Fetcher, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	return &loadOnceSource{f: f}, nil
}

type loadOnceSource struct {
	f  Fetcher
	mu sync.Mutex

	loaded  bool
	records []core.Record
}

// Primed reports whether the records are already materialized, meaning the
// next Fetch resolves without invoking the producer.
func (s *loadOnceSource) Primed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *loadOnceSource) Fetch(ctx context.Context, query string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		records, err := s.f.Fetch(ctx, "")
		if err != nil {
			return nil, err
		}
		s.records = records
		s.loaded = true
	}
	return append([]core.Record(nil), s.records...), nil
}
