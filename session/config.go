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


package session

import (
	"github.com/poiesic/searchit/normalize"
)

// Config holds the per-cycle search settings. The session keeps an
// immutable snapshot: every trigger cycle captures the config it started
// with, and SetConfig replaces the snapshot wholesale for later cycles.
type Config struct {
	// Normalize selects the text normalization stages applied to queries,
	// titles, and keywords.
	Normalize normalize.Config

	// Max caps published results at exactly Max entries. Zero disables
	// the cap. Never pads when fewer results are available.
	Max int

	// Live controls asynchronous producer caching. When true the producer
	// is invoked on every trigger; when false it is invoked once and its
	// records are reused for all subsequent searches.
	Live bool

	// EmptyMessage is forwarded on NoResults. Opaque to the engine.
	EmptyMessage string

	// SearchingMessage is forwarded on Searching. Opaque to the engine.
	SearchingMessage string

	// ErrorMessage is forwarded on SearchFailed. Opaque to the engine.
	ErrorMessage string
}

// DefaultConfig returns the default search settings.
func DefaultConfig() Config {
	return Config{
		Normalize:        normalize.DefaultConfig(),
		Live:             true,
		EmptyMessage:     "No results found",
		SearchingMessage: "Searching...",
		ErrorMessage:     "Connection failed",
	}
}

func (c Config) validate() error {
	if c.Max < 0 {
		return ErrNegativeMax
	}
	return nil
}
