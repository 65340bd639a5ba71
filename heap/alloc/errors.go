package alloc

import "errors"

var (
	// ErrOutOfMemory indicates no free block fits and the region refused to grow.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a non-positive allocation request.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrBadPointer indicates a pointer that is not the payload address of a
	// block in the current session.
	ErrBadPointer = errors.New("alloc: pointer not owned by allocator")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("alloc: block already free")

	// ErrBadMode indicates an unknown block-selection strategy.
	ErrBadMode = errors.New("alloc: unknown mode")

	// ErrNoSource indicates the allocator was constructed without a growth source.
	ErrNoSource = errors.New("alloc: nil region source")

	// ErrCorrupt indicates Verify found a broken chain or tiling invariant.
	ErrCorrupt = errors.New("alloc: heap structure corrupt")
)
