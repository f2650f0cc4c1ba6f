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


// Package session orchestrates search trigger cycles.
//
// A Session owns one data source and runs the full cycle per trigger:
// resolve data, rank it, and publish results through a Monitor. Synchronous
// sources complete inline; asynchronous sources are dispatched to a worker
// pool and guarded by a generation token so that only the most recently
// triggered search ever publishes. Superseded responses are discarded
// silently, which makes explicit request cancellation an optimization rather
// than a correctness requirement.
package session
