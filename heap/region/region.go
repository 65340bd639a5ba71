// Package region provides growth sources for the heap allocator: contiguous
// memory regions that only ever grow at their end and can be reset back to
// the extent they had when they were created.
//
// A region behaves like a program break. Extend moves the break up and
// returns the offset where the new bytes start; Reset moves it back to the
// mark recorded at construction. Offsets are relative to Base, which never
// changes for the lifetime of the region, so payload addresses derived from
// it stay valid until Reset or Close.
//
// Two backings are available:
//
//   - Arena: a pre-reserved Go slice. Portable, used by tests.
//   - Mapped: an anonymous private mapping reserved up front. Reset hands
//     the released pages back to the OS. On platforms without mmap support
//     it falls back to an Arena.
package region

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Source is the growth interface the allocator consumes.
type Source interface {
	// Base returns the address of the first byte of the region.
	Base() uintptr

	// Bytes returns the currently acquired bytes, [0, End()).
	Bytes() []byte

	// Mark returns the break recorded when the region was created.
	Mark() int

	// End returns the current break.
	End() int

	// Cap returns the largest break the region can reach.
	Cap() int

	// Extend moves the break up by n bytes and returns the offset of the
	// first new byte. On failure nothing changes.
	Extend(n int) (int, error)

	// Reset moves the break back to Mark and releases everything above it.
	// It is a no-op when nothing has been acquired.
	Reset() error

	// Close releases the backing memory. The region is unusable afterwards.
	Close() error
}

// breakPointer is the bookkeeping shared by every backing.
type breakPointer struct {
	data []byte // full reservation, len == capacity
	mark int
	end  int
}

func (b *breakPointer) extend(n int) (int, error) {
	if b.data == nil {
		return 0, ErrClosed
	}
	if n <= 0 || !format.IsAligned(n) {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if n > len(b.data)-b.end {
		return 0, fmt.Errorf("%w: need %d bytes, %d of %d in use",
			ErrNoMemory, n, b.end, len(b.data))
	}
	off := b.end
	b.end += n
	return off, nil
}

// release returns the bytes above the mark and moves the break back.
// It reports false when there was nothing to release.
func (b *breakPointer) release() bool {
	if b.data == nil || b.end == b.mark {
		return false
	}
	b.end = b.mark
	return true
}

func (b *breakPointer) bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.end:b.end]
}
