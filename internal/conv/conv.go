// Package conv holds narrowing integer conversions shared by the engine's
// hot paths, each checked against overflow before it truncates.
package conv

import "math"

// IntToUint32 narrows n to uint32, panicking if n is negative or wider
// than uint32 can hold. A violation means a state ID (or other internal
// count) grew past what the sparse-set representation was sized for — a
// bug in this package's callers, not a condition callers should recover
// from.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("rex/internal/conv: int out of uint32 range")
	}
	return uint32(n)
}
