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


package source

import (
	"errors"
	"fmt"
)

// Configuration errors, raised at setup time.
var (
	// ErrUnsupportedData is returned when a data value cannot be resolved
	// into any source variant.
	ErrUnsupportedData = errors.New("unsupported data value")

	// ErrNilFunc is returned when a producer function is nil.
	ErrNilFunc = errors.New("producer function required")

	// ErrEmptyURL is returned when a remote reference URL is empty.
	ErrEmptyURL = errors.New("remote url required")

	// ErrEmptyPath is returned when a file source path is empty.
	ErrEmptyPath = errors.New("file path required")
)

// ErrNotJSONArray indicates a response or file body whose top-level JSON
// shape is not an array of strings or record-shaped objects.
var ErrNotJSONArray = errors.New("body is not a JSON array")

// FetchError reports a failed asynchronous fetch: a rejected producer, a
// non-2xx HTTP response, or a body that is not a JSON array. It is surfaced
// once through the session's error signal and never panics across the
// trigger boundary.
type FetchError struct {
	URL    string // remote URL, empty for plain producer functions
	Status int    // HTTP status code, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	case e.URL != "":
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
