// Package alloc implements a heap allocator over a growable memory region
// with pluggable block-selection strategies.
//
// # Overview
//
// The allocator carves payloads out of a region.Source, which behaves like a
// program break: it only grows at its end and can be reset to the mark it
// had when the session started. Every block ever created stays in a chain
// until the session ends; freeing a block only flips its used flag (and may
// merge it with its successor).
//
// # Strategies
//
//   - FirstFit: first free block large enough, scanning from the lowest address
//   - NextFit: like FirstFit but resumes from the last hit, wrapping once
//   - BestFit: smallest free block large enough; earlier blocks win ties
//   - SegregatedList: five per-size-class chains, blocks reused whole
//
// In the three address-ordered modes a reused block is split when the
// leftover can form a block of its own, and Free merges a block with its
// structurally next neighbor when that neighbor is free. There is no
// backward merge: chains are singly linked.
//
// # Size Classes
//
// SegregatedList files each block, once, by payload size (64-bit words):
//
//	Class 0:   1 -   8 bytes
//	Class 1:   9 -  16 bytes
//	Class 2:  17 -  32 bytes
//	Class 3:  33 -  64 bytes
//	Class 4:  65+      bytes (everything larger is clamped here)
//
// # Block Headers
//
// Headers are kept in a descriptor table owned by the Allocator, so the
// region holds payloads only and the blocks of all chains tile it exactly.
// A payload address maps back to its header through an index, which also
// lets Free reject foreign pointers (ErrBadPointer) and double frees
// (ErrDoubleFree) instead of corrupting the heap.
//
// # Usage Example
//
//	src := region.NewArena(1 << 20)
//	a, err := alloc.New(src, &alloc.Config{Mode: alloc.BestFit})
//	if err != nil {
//	    return err
//	}
//
//	p, err := a.Alloc(24)
//	if err != nil {
//	    return err // wraps alloc.ErrOutOfMemory
//	}
//	buf, _ := a.Bytes(p)
//	copy(buf, "hello")
//
//	err = a.Free(p)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Use one instance per goroutine or
// synchronize access externally.
package alloc
