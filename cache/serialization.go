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


package cache

import (
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/searchit/core"
)

// MarshalRecords serializes a record set to bytes. Note that OnSelect hooks
// are runtime values and do not survive a round trip.
func MarshalRecords(records []core.Record) []byte {
	size := varint.PositiveInt.Size(len(records))
	for i := range records {
		size += core.RecordMUS.Size(records[i])
	}

	buf := make([]byte, size)
	n := varint.PositiveInt.Marshal(len(records), buf)
	for i := range records {
		n += core.RecordMUS.Marshal(records[i], buf[n:])
	}
	return buf
}

// UnmarshalRecords deserializes a record set from bytes.
func UnmarshalRecords(data []byte) ([]core.Record, error) {
	count, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	records := make([]core.Record, 0, count)
	for i := 0; i < count; i++ {
		record, n1, err := core.RecordMUS.Unmarshal(data[n:])
		if err != nil {
			return nil, err
		}
		n += n1
		records = append(records, record)
	}
	return records, nil
}
