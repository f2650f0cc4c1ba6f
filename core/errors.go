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


package core

import "errors"

// Domain errors
var (
	// ErrInvalidData indicates the raw data does not match the expected
	// list-of-(string|record-like) shape. Callers treat this as zero usable
	// records rather than a fatal failure.
	ErrInvalidData = errors.New("invalid data shape")

	// ErrEmptyTitle indicates a record has an empty title after coercion.
	ErrEmptyTitle = errors.New("record title cannot be empty")
)
