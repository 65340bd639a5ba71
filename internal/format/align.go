package format

// Align returns n rounded up to the next word boundary.
//
// Example (64-bit words):
//
//	Align(1)  = 8
//	Align(8)  = 8
//	Align(9)  = 16
//	Align(24) = 24
func Align(n int) int {
	return (n + WordMask) &^ WordMask
}

// AlignTo returns n rounded up to a multiple of boundary, which must be a
// power of two. Used for page-granular region reservations.
func AlignTo(n, boundary int) int {
	mask := boundary - 1
	return (n + mask) &^ mask
}

// IsAligned reports whether n sits on a word boundary.
func IsAligned(n int) bool {
	return n&WordMask == 0
}

// Footprint returns the exact number of region bytes a block with the given
// payload size consumes: header overhead plus the aligned payload. This is
// what growth reserves and what splitting carves out of a free block.
func Footprint(size int) int {
	return HeaderSize + Align(size)
}
