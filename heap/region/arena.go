package region

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/format"
)

// Arena is a Source backed by a pre-reserved, word-aligned Go slice.
type Arena struct {
	words []uint64 // keeps the reservation alive and 8-byte aligned
	brk   breakPointer
}

var _ Source = (*Arena)(nil)

// NewArena reserves capacity bytes (rounded up to a word) and returns an
// empty arena. A non-positive capacity selects format.DefaultRegionSize.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = format.DefaultRegionSize
	}
	capacity = format.AlignTo(capacity, 8)

	words := make([]uint64, capacity/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)

	return &Arena{
		words: words,
		brk:   breakPointer{data: data},
	}
}

func (a *Arena) Base() uintptr {
	if a.brk.data == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.brk.data)))
}

func (a *Arena) Bytes() []byte { return a.brk.bytes() }
func (a *Arena) Mark() int     { return a.brk.mark }
func (a *Arena) End() int      { return a.brk.end }
func (a *Arena) Cap() int      { return len(a.brk.data) }

// Extend grows the arena by n bytes.
func (a *Arena) Extend(n int) (int, error) {
	return a.brk.extend(n)
}

// Reset zeroes everything above the mark and moves the break back to it.
func (a *Arena) Reset() error {
	if a.brk.data == nil {
		return ErrClosed
	}
	end := a.brk.end
	if a.brk.release() {
		clear(a.brk.data[a.brk.mark:end])
	}
	return nil
}

// Close drops the reservation. Closing twice is a no-op.
func (a *Arena) Close() error {
	a.brk = breakPointer{}
	a.words = nil
	return nil
}
