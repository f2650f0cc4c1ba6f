package source

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// List is the synchronous canonical shape: records are available
// immediately on every trigger.
//
// Implementations return a fresh slice per call; callers own the result.
// A core.ErrInvalidData return means the underlying data failed the shape
// check and the caller should treat the cycle as having zero usable records.
type List interface {
	Records(query string) ([]core.Record, error)
}

// Fetcher is the asynchronous canonical shape: records are produced by a
// potentially slow operation. Cancellation through ctx is advisory; callers
// must not rely on it for correctness.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]core.Record, error)
}

// ProducerFunc is a synchronous per-trigger data producer.
type ProducerFunc func(query string) []any

// FetcherFunc is an asynchronous per-trigger data producer.
type FetcherFunc func(ctx context.Context, query string) ([]any, error)

// Static builds a List from a fixed set of raw items, coerced once at
// configuration time. If the items fail the top-level shape check the
// source holds zero records, per the invalid-data rules.
func Static(items ...any) List {
	records, err := core.CoerceItems(items)
	if err != nil {
		records = nil
	}
	return &staticSource{records: records}
}

// FromRecords builds a List from already-coerced records.
func FromRecords(records []core.Record) List {
	return &staticSource{records: append([]core.Record(nil), records...)}
}

type staticSource struct {
	records []core.Record
}

func (s *staticSource) Records(string) ([]core.Record, error) {
	return append([]core.Record(nil), s.records...), nil
}

// Func builds a List around a synchronous producer invoked on every
// trigger. Its output is coerced per call.
func Func(fn ProducerFunc) (List, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	return &funcSource{fn: fn}, nil
}

type funcSource struct {
	fn ProducerFunc
}

func (s *funcSource) Records(query string) ([]core.Record, error) {
	return core.CoerceItems(s.fn(query))
}

// FetchFunc builds a Fetcher around an asynchronous producer invoked on
// every trigger (or once, under load-once caching). Its output is coerced
// after each resolution.
func FetchFunc(fn FetcherFunc) (Fetcher, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	return &fetchSource{fn: fn}, nil
}

type fetchSource struct {
	fn FetcherFunc
}

func (s *fetchSource) Fetch(ctx context.Context, query string) ([]core.Record, error) {
	items, err := s.fn(ctx, query)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return core.CoerceItems(items)
}

// A Source is one of the two canonical shapes: every value returned by From
// is either a List or a Fetcher, and consumers dispatch on which one.
type Source any

// From resolves a raw data value into a source variant:
//
//   - []any, []string, []core.Record → Static
//   - ProducerFunc (or its underlying func type) → Func
//   - FetcherFunc (or its underlying func type) → FetchFunc
//   - string → Remote (the value is taken as a URL)
//   - an existing List or Fetcher is passed through unchanged
//
// Anything else is a fatal configuration error (ErrUnsupportedData).
func From(data any) (Source, error) {
	switch v := data.(type) {
	case List:
		return v, nil
	case Fetcher:
		return v, nil
	case []any:
		return Static(v...), nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return Static(items...), nil
	case []core.Record:
		return FromRecords(v), nil
	case ProducerFunc:
		return Func(v)
	case func(query string) []any:
		return Func(v)
	case FetcherFunc:
		return FetchFunc(v)
	case func(ctx context.Context, query string) ([]any, error):
		return FetchFunc(v)
	case string:
		return Remote(v)
	default:
		return nil, ErrUnsupportedData
	}
}
