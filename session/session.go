package session

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/match"
	"github.com/poiesic/searchit/source"
)

// Session runs search cycles over one data source and publishes the outcome
// through a Monitor. It is safe for concurrent use.
type Session struct {
	list    source.List
	monitor Monitor
	logger  *slog.Logger
	pool    *ants.Pool

	// publishMu serializes terminal publishes so the generation check and
	// the resulting callback happen atomically with respect to each other.
	publishMu sync.Mutex

	mu         sync.Mutex
	cfg        Config
	fetcher    source.Fetcher // effective fetcher, may be a load-once wrapper
	raw        source.Fetcher // fetcher as configured, before caching wrap
	generation uint64
	results    []core.Record
	cancel     context.CancelFunc
}

// Option configures a Session.
type Option func(*Session) error

// WithMonitor sets the output monitor.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(s *Session) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig sets the initial search settings.
// Default is DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(s *Session) error {
		if err := cfg.validate(); err != nil {
			return err
		}
		s.cfg = cfg
		return nil
	}
}

// WithPoolSize sets the worker pool size for asynchronous fetches.
// Default is runtime.NumCPU() / 2, with a minimum of 1. A saturated pool
// never delays Trigger; overflow fetches run on plain goroutines.
func WithPoolSize(size int) Option {
	return func(s *Session) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size, ants.WithNonblocking(true))
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// New creates a session over src, which must be a source.List or a
// source.Fetcher (see source.From for resolving raw data values).
func New(src source.Source, opts ...Option) (*Session, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}

	s := &Session{
		monitor: &noopMonitor{},
		logger:  slog.Default(),
		cfg:     DefaultConfig(),
	}

	switch v := src.(type) {
	case source.List:
		s.list = v
	case source.Fetcher:
		s.raw = v
	default:
		return nil, ErrInvalidSource
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	s.pool = pool

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.pool.Release()
			return nil, err
		}
	}

	if err := s.rewrap(); err != nil {
		s.pool.Release()
		return nil, err
	}

	return s, nil
}

// rewrap recomputes the effective fetcher from the caching mode.
// Callers hold s.mu except during construction.
func (s *Session) rewrap() error {
	if s.raw == nil {
		return nil
	}
	if s.cfg.Live {
		s.fetcher = s.raw
		return nil
	}
	wrapped, err := source.LoadOnce(s.raw)
	if err != nil {
		return err
	}
	s.fetcher = wrapped
	return nil
}

// Trigger runs one search cycle for query. It never blocks on data
// resolution and never panics across this boundary: per-search failures are
// delivered through the Monitor, and a failed cycle does not affect the
// next one.
//
// Triggering while an asynchronous fetch is in flight supersedes it: the
// older fetch keeps running but its response is discarded on arrival.
func (s *Session) Trigger(query string) {
	s.mu.Lock()
	cfg := s.cfg

	if s.fetcher == nil {
		list := s.list
		s.mu.Unlock()

		records, err := list.Records(query)
		if err != nil {
			// Invalid shape means zero usable records for this cycle.
			s.logger.Debug("data failed shape check", "query", query, "err", err)
			records = nil
		}

		s.publishMu.Lock()
		defer s.publishMu.Unlock()
		s.publish(query, cfg, records)
		return
	}

	s.generation++
	gen := s.generation
	fetcher := s.fetcher
	if s.cancel != nil {
		// Advisory only: the generation check at completion is what
		// guarantees stale responses never publish.
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	// A cached source that already holds its records resolves without a
	// fetch, so there is nothing to announce.
	if p, ok := fetcher.(interface{ Primed() bool }); !ok || !p.Primed() {
		s.monitor.Searching(query, cfg.SearchingMessage)
	}

	fetch := func() {
		records, err := fetcher.Fetch(ctx, query)
		s.complete(gen, query, cfg, records, err)
	}
	if err := s.pool.Submit(fetch); err != nil {
		// Saturated or released pool. Trigger must never block, so the
		// fetch runs on its own goroutine; the generation check still
		// decides whether it publishes.
		go fetch()
	}
}

// complete finishes an asynchronous cycle started at generation gen.
func (s *Session) complete(gen uint64, query string, cfg Config, records []core.Record, err error) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale response", "query", query, "generation", gen)
		return
	}
	s.cancel = nil
	s.mu.Unlock()

	if err != nil && errors.Is(err, core.ErrInvalidData) {
		// Bad shape is zero usable records, not a fetch failure.
		s.logger.Debug("fetched data failed shape check", "query", query, "err", err)
		records, err = nil, nil
	}
	if err != nil {
		s.logger.Warn("search failed", "query", query, "err", err)
		s.monitor.SearchFailed(query, cfg.ErrorMessage, err)
		return
	}

	s.publish(query, cfg, records)
}

// publish ranks, caps, stores, and emits the terminal callback for one
// cycle. Callers hold publishMu.
func (s *Session) publish(query string, cfg Config, records []core.Record) {
	ranked := match.Rank(query, records, cfg.Normalize)
	if cfg.Max > 0 && len(ranked) > cfg.Max {
		ranked = ranked[:cfg.Max]
	}

	s.mu.Lock()
	s.results = ranked
	s.mu.Unlock()

	if len(ranked) == 0 {
		s.monitor.NoResults(query, cfg.EmptyMessage)
		return
	}
	s.monitor.Results(ranked, query)
}

// Results returns a snapshot of the most recently published ranked records.
func (s *Session) Results() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.results...)
}

// Values returns the selection values of the current results, in rank
// order.
func (s *Session) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Values(s.results)
}

// Config returns the current settings snapshot.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig validates and replaces the settings snapshot. Cycles already in
// flight keep the snapshot they started with. Toggling Live rebuilds the
// caching wrapper, which drops any load-once cache.
func (s *Session) SetConfig(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	liveChanged := cfg.Live != s.cfg.Live
	s.cfg = cfg
	if liveChanged {
		return s.rewrap()
	}
	return nil
}

// Clear empties the current results and supersedes any in-flight fetch
// without publishing anything.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.results = nil
}

// Release supersedes any in-flight fetch and releases the worker pool.
// The session should not be used after calling Release.
func (s *Session) Release() {
	s.mu.Lock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.pool.Release()
}
