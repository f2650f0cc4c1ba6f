package cache

import (
	"fmt"

	"github.com/poiesic/searchit/core"
)

// Key prefixes for cached data types
const (
	recordSetPrefix = "recset"
)

// makeRecordSetKey generates a key for a cached record set by ID.
func makeRecordSetKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", recordSetPrefix, id))
}
