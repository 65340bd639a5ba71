package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/heapkit/heap/region"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/logger"
)

// Allocator hands out word-aligned payloads carved from a region.Source.
//
// Blocks are tracked in address-ordered chains: one flat chain for the
// address-ordered strategies, or one chain per size class in
// SegregatedList mode. Allocator instances are not thread-safe; callers
// must synchronize access externally.
type Allocator struct {
	src region.Source
	log *slog.Logger

	mode      Mode
	sizeTable *sizeClassTable

	// Descriptor table. Retired slots are recycled through spare.
	blocks []block
	spare  []blockID

	// O(1) header recovery from a payload address.
	byPtr map[Ptr]blockID

	heap    chain
	buckets [format.NumSizeClasses]chain

	// Persisted scan position for NextFit.
	cursor blockID

	stats allocatorStats
}

// New creates an allocator over src and initializes it in cfg.Mode.
// A nil cfg selects DefaultConfig. The region is reset as part of Init.
func New(src region.Source, cfg *Config) (*Allocator, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if cfg == nil {
		cfg = &DefaultConfig
	}

	log := cfg.Logger
	if log == nil {
		log = logger.L
	}

	a := &Allocator{
		src:       src,
		log:       log,
		sizeTable: newSizeClassTable(format.WordSize),
		byPtr:     make(map[Ptr]blockID, 64),
	}
	if err := a.Init(cfg.Mode); err != nil {
		return nil, err
	}
	return a, nil
}

// Init selects the strategy and starts a new session: every block of the
// previous session is forgotten and the region returns to its mark.
func (a *Allocator) Init(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: %d", ErrBadMode, uint8(mode))
	}
	a.mode = mode
	return a.Reset()
}

// Reset releases the region back to its mark and clears every chain, the
// NextFit cursor and the session statistics. The mode is kept.
func (a *Allocator) Reset() error {
	if err := a.src.Reset(); err != nil {
		return fmt.Errorf("alloc: reset region: %w", err)
	}

	a.blocks = a.blocks[:0]
	a.spare = a.spare[:0]
	clear(a.byPtr)
	a.heap = emptyChain()
	for i := range a.buckets {
		a.buckets[i] = emptyChain()
	}
	a.cursor = nilBlock
	a.stats = allocatorStats{}

	a.log.Debug("alloc: reset", "mode", a.mode.String(), "mark", a.src.Mark())
	return nil
}

// Mode returns the strategy selected by the last Init.
func (a *Allocator) Mode() Mode {
	return a.mode
}

// Source returns the region the allocator grows.
func (a *Allocator) Source() region.Source {
	return a.src
}

// Alloc returns the address of a payload of at least size bytes.
//
// The size is rounded up to a word. A free block picked by the strategy is
// reused, trimmed first when the leftover can stand as its own block (never
// in SegregatedList mode). When nothing fits the region grows by exactly
// one block. Growth failure returns ErrOutOfMemory and changes nothing, as
// does any request larger than the region reservation.
func (a *Allocator) Alloc(size int) (Ptr, error) {
	if size <= 0 {
		return Nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	a.stats.AllocCalls++

	// Checked before rounding: Align wraps negative near math.MaxInt.
	if limit := a.src.Cap(); size > limit {
		a.log.Debug("alloc: request exceeds region", "size", size, "cap", limit)
		return Nil, fmt.Errorf("%w: %d bytes exceeds region capacity %d", ErrOutOfMemory, size, limit)
	}
	size = format.Align(size)

	if id := a.findBlock(size); id != nilBlock {
		if a.mode != SegregatedList && a.canSplit(id, size) {
			a.split(id, size)
		}
		a.blocks[id].used = true
		a.stats.Reused++
		return a.ptrAt(a.blocks[id].off), nil
	}

	id, err := a.grow(size)
	if err != nil {
		return Nil, err
	}
	return a.ptrAt(a.blocks[id].off), nil
}

// grow acquires a new used block from the region and appends it to the flat
// chain or to the bucket matching its size class.
func (a *Allocator) grow(size int) (blockID, error) {
	n := format.Footprint(size)
	off, err := a.src.Extend(n)
	if err != nil {
		a.log.Debug("alloc: grow denied", "size", size, "error", err)
		return nilBlock, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	id := a.newBlock(block{
		off:  off + format.HeaderSize,
		size: size,
		used: true,
	})
	a.appendBlock(a.chainFor(id), id)

	a.stats.GrowCalls++
	a.stats.GrowBytes += int64(n)
	a.log.Debug("alloc: grow",
		"size", size, "off", off, "class", a.blocks[id].class, "end", a.src.End())
	return id, nil
}

// Free returns the block owning p to its chain. Outside SegregatedList mode
// it first absorbs the next block if that one is free. Pointers that are
// not a live payload address fail with ErrBadPointer; freeing a free block
// fails with ErrDoubleFree. Neither error changes any state.
func (a *Allocator) Free(p Ptr) error {
	id, ok := a.lookup(p)
	if !ok {
		a.log.Debug("alloc: free of unknown pointer", "ptr", uintptr(p))
		return fmt.Errorf("%w: %#x", ErrBadPointer, uintptr(p))
	}
	if !a.blocks[id].used {
		a.log.Debug("alloc: double free", "ptr", uintptr(p))
		return fmt.Errorf("%w: %#x", ErrDoubleFree, uintptr(p))
	}

	a.stats.FreeCalls++
	if a.mode != SegregatedList && a.canCoalesce(id) {
		a.coalesce(id)
	}
	a.blocks[id].used = false
	return nil
}

// Bytes returns the payload of the live block at p.
func (a *Allocator) Bytes(p Ptr) ([]byte, error) {
	id, ok := a.lookup(p)
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrBadPointer, uintptr(p))
	}
	b := &a.blocks[id]
	return a.src.Bytes()[b.off : b.off+b.size : b.off+b.size], nil
}

// SizeOf returns the payload capacity of the block at p, which may exceed
// the size originally requested.
func (a *Allocator) SizeOf(p Ptr) (int, error) {
	id, ok := a.lookup(p)
	if !ok {
		return 0, fmt.Errorf("%w: %#x", ErrBadPointer, uintptr(p))
	}
	return a.blocks[id].size, nil
}
