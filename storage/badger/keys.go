package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	recordPrefix  = "sparec"
	ordinalPrefix = "spaord"
)

// makeRecordKey generates a key for a technique record by ID.
func makeRecordKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", recordPrefix, id))
}

// makeOrdinalKey generates a key for the seed-order index.
// The position is written BigEndian so lexicographic iteration yields
// records in seed order.
func makeOrdinalKey(pos uint32) []byte {
	prefix := ordinalPrefix + ":"
	buf := make([]byte, len(prefix)+4)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint32(buf[offset:], pos)
	return buf
}
