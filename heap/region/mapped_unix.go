//go:build linux || darwin

package region

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/heapkit/internal/format"
)

// Mapped is a Source backed by an anonymous private mapping. The whole
// capacity is reserved up front so the base address never moves; pages are
// only committed by the kernel when first touched.
type Mapped struct {
	brk breakPointer
}

var _ Source = (*Mapped)(nil)

// NewMapped reserves capacity bytes (rounded up to the page size) of
// anonymous memory. A non-positive capacity selects format.DefaultRegionSize.
func NewMapped(capacity int) (*Mapped, error) {
	if capacity <= 0 {
		capacity = format.DefaultRegionSize
	}
	capacity = format.AlignTo(capacity, os.Getpagesize())

	data, err := unix.Mmap(
		-1,
		0,
		capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", capacity, err)
	}

	return &Mapped{brk: breakPointer{data: data}}, nil
}

func (m *Mapped) Base() uintptr {
	if m.brk.data == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(m.brk.data)))
}

func (m *Mapped) Bytes() []byte { return m.brk.bytes() }
func (m *Mapped) Mark() int     { return m.brk.mark }
func (m *Mapped) End() int      { return m.brk.end }
func (m *Mapped) Cap() int      { return len(m.brk.data) }

// Extend grows the mapped region by n bytes.
func (m *Mapped) Extend(n int) (int, error) {
	return m.brk.extend(n)
}

// Reset moves the break back to the mark and returns the released pages to
// the OS. Anonymous private pages read back as zero after MADV_DONTNEED.
func (m *Mapped) Reset() error {
	if m.brk.data == nil {
		return ErrClosed
	}
	end := m.brk.end
	if !m.brk.release() {
		return nil
	}

	page := os.Getpagesize()
	start := format.AlignTo(m.brk.mark, page)
	if start > m.brk.mark {
		// Partial page below the first whole page stays committed; zero it.
		clear(m.brk.data[m.brk.mark:min(start, end)])
	}
	if start < end {
		stop := format.AlignTo(end, page)
		if err := unix.Madvise(m.brk.data[start:stop], unix.MADV_DONTNEED); err != nil {
			clear(m.brk.data[start:end])
			return fmt.Errorf("region: madvise: %w", err)
		}
	}
	return nil
}

// Close unmaps the region. Closing twice is a no-op.
func (m *Mapped) Close() error {
	if m.brk.data == nil {
		return nil
	}
	err := unix.Munmap(m.brk.data)
	m.brk = breakPointer{}
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
