package hash

import "github.com/cespare/xxhash/v2"

// TypeKey computes a diagnostic uint64 for a Go type name, used in log
// fields so a decode warning can identify a record's concrete type without
// reflection.
func TypeKey(typeName string) uint64 {
	return xxhash.Sum64String(typeName)
}
