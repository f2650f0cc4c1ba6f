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


// Package source normalizes heterogeneous search data inputs into one of two
// canonical shapes: a List, which yields records immediately, or a Fetcher,
// which produces them asynchronously.
//
// Supported inputs are static item lists, synchronous producer functions,
// asynchronous fetch functions, remote JSON endpoints, and watched JSON
// files. From resolves an arbitrary value into the right variant at
// configuration time, so trigger cycles never branch on input type again.
package source
