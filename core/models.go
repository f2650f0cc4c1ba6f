package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for cached record sets and other derived
// artifacts. It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Record is a single searchable item. Records are immutable snapshots once
// coerced; search cycles never mutate them in place.
type Record struct {
	Title    string   // display and primary search key, never empty after coercion
	Value    string   // value reported on selection, defaults to Title
	Keywords []string // secondary search terms
	Format   string   // rendering hint, opaque to the engine
	URL      string   // navigation hint, opaque to the engine
	OnSelect func()   // selection hook, opaque to the engine, never serialized
}

// Values returns the selection values of records in order.
func Values(records []Record) []string {
	values := make([]string, len(records))
	for i, record := range records {
		values[i] = record.Value
	}
	return values
}
