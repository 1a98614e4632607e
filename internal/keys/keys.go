package keys

import "strings"

// SpeciesKey produces the canonical lookup key for a species name: trimmed,
// lower-cased, spaces replaced with underscores. Used for config lookups
// and singleflight dedupe keys so "River Otter" and "river otter" share one
// in-flight load.
func SpeciesKey(name string) string {
	s := strings.TrimSpace(name)
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

// MoveKey canonicalizes a move name the same way.
func MoveKey(name string) string { return SpeciesKey(name) }
