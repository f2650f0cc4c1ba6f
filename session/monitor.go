package session

import (
	"github.com/poiesic/searchit/core"
)

// Monitor receives the output of search cycles. Implement this interface in
// the presentation layer to render suggestions, status messages, and errors.
//
// Every completed cycle publishes exactly one terminal callback: Results,
// NoResults, or SearchFailed. Asynchronous cycles additionally publish
// Searching before the fetch starts. Message strings come from the session
// Config and are opaque to the engine.
//
// Callbacks are serialized and must not call back into the Session.
type Monitor interface {
	Searching(query, message string)
	Results(records []core.Record, query string)
	NoResults(query, message string)
	SearchFailed(query, message string, err error)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Searching(_, _ string)                    {}
func (n *noopMonitor) Results(_ []core.Record, _ string)        {}
func (n *noopMonitor) NoResults(_, _ string)                    {}
func (n *noopMonitor) SearchFailed(_, _ string, _ error)        {}

// Funcs adapts plain functions to the Monitor interface. Nil fields are
// ignored.
type Funcs struct {
	OnSearching    func(query, message string)
	OnResults      func(records []core.Record, query string)
	OnNoResults    func(query, message string)
	OnSearchFailed func(query, message string, err error)
}

var _ Monitor = (*Funcs)(nil)

func (f *Funcs) Searching(query, message string) {
	if f.OnSearching != nil {
		f.OnSearching(query, message)
	}
}

func (f *Funcs) Results(records []core.Record, query string) {
	if f.OnResults != nil {
		f.OnResults(records, query)
	}
}

func (f *Funcs) NoResults(query, message string) {
	if f.OnNoResults != nil {
		f.OnNoResults(query, message)
	}
}

func (f *Funcs) SearchFailed(query, message string, err error) {
	if f.OnSearchFailed != nil {
		f.OnSearchFailed(query, message, err)
	}
}
