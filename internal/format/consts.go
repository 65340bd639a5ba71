// Package format holds the word-level layout rules shared by the heap
// packages: the platform word size, alignment, and how many region bytes a
// block of a given payload size occupies.
package format

import "unsafe"

const (
	// WordSize is the platform word size in bytes. Every payload size and
	// every payload address handed out by the allocator is a multiple of it.
	WordSize = int(unsafe.Sizeof(uintptr(0)))

	// WordMask is the bitmask used for aligning to word boundaries (WordSize - 1).
	WordMask = WordSize - 1

	// HeaderSize is the number of region bytes a block header occupies in
	// front of its payload. Block headers live in the allocator's
	// descriptor table, so the managed region holds payload bytes only.
	HeaderSize = 0

	// MinBlockSize is the smallest payload a block may carry. Splitting a
	// block is refused when the remainder could not hold this much.
	MinBlockSize = WordSize

	// NumSizeClasses is the number of segregated size classes.
	NumSizeClasses = 5

	// DefaultRegionSize is the capacity reserved for a managed region when
	// the caller does not choose one (64 MiB).
	DefaultRegionSize = 64 << 20
)
