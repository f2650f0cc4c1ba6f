// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package searchit

import (
	"errors"
	"log/slog"

	"github.com/poiesic/searchit/cache"
	"github.com/poiesic/searchit/session"
	"github.com/poiesic/searchit/source"
)

// ErrStoreRequiresFetcher is returned when WithStore is combined with a
// synchronous data source, which never fetches anything worth persisting.
var ErrStoreRequiresFetcher = errors.New("persistent store requires an asynchronous data source")

// Option configures an engine built with New.
type Option func(*engineOptions)

type engineOptions struct {
	sessionOpts   []session.Option
	store         *cache.Store
	cacheKey      string
	triggerOnLoad bool
}

// WithMonitor sets the monitor receiving search outcomes.
func WithMonitor(monitor session.Monitor) Option {
	return func(o *engineOptions) {
		o.sessionOpts = append(o.sessionOpts, session.WithMonitor(monitor))
	}
}

// WithConfig sets the initial search settings.
func WithConfig(cfg session.Config) Option {
	return func(o *engineOptions) {
		o.sessionOpts = append(o.sessionOpts, session.WithConfig(cfg))
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.sessionOpts = append(o.sessionOpts, session.WithLogger(logger))
	}
}

// WithPoolSize sets the worker pool size for asynchronous fetches.
func WithPoolSize(size int) Option {
	return func(o *engineOptions) {
		o.sessionOpts = append(o.sessionOpts, session.WithPoolSize(size))
	}
}

// WithStore persists fetched record sets in store under key, so a
// load-once source survives process restarts. It requires an asynchronous
// source and implies Live is off for the wrapped fetch.
func WithStore(store *cache.Store, key string) Option {
	return func(o *engineOptions) {
		o.store = store
		o.cacheKey = key
	}
}

// WithTriggerOnLoad fires an initial empty-query search as soon as the
// engine is built, so results are populated before the first keystroke.
func WithTriggerOnLoad() Option {
	return func(o *engineOptions) {
		o.triggerOnLoad = true
	}
}

// New builds a search session over data, which may be a slice of items,
// a producer function, a URL string, or any source.List / source.Fetcher.
// See source.From for the full set of accepted shapes.
func New(data any, opts ...Option) (*session.Session, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	src, err := source.From(data)
	if err != nil {
		return nil, err
	}

	if options.store != nil {
		fetcher, ok := src.(source.Fetcher)
		if !ok {
			return nil, ErrStoreRequiresFetcher
		}
		cached, err := cache.Cached(fetcher, options.store, options.cacheKey)
		if err != nil {
			return nil, err
		}
		src = cached
	}

	s, err := session.New(src, options.sessionOpts...)
	if err != nil {
		return nil, err
	}

	if options.triggerOnLoad {
		s.Trigger("")
	}

	return s, nil
}
