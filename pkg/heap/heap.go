package heap

import (
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/region"
)

// Heap is an allocator bound to a region it owns.
type Heap struct {
	*alloc.Allocator

	src     region.Source
	backing Backing
}

// New reserves a region and creates an allocator over it. A nil opts means
// DefaultOptions(). The caller must call Close when done.
func New(opts *Options) (*Heap, error) {
	o := DefaultOptions()
	if opts != nil {
		o.Mode = opts.Mode
		o.Logger = opts.Logger
		if opts.Capacity > 0 {
			o.Capacity = opts.Capacity
		}
		if opts.Backing != "" {
			o.Backing = opts.Backing
		}
	}

	src, err := openSource(o.Backing, o.Capacity)
	if err != nil {
		return nil, err
	}

	a, err := alloc.New(src, &alloc.Config{Mode: o.Mode, Logger: o.Logger})
	if err != nil {
		return nil, errors.Join(err, src.Close())
	}

	return &Heap{Allocator: a, src: src, backing: o.Backing}, nil
}

func openSource(b Backing, capacity int) (region.Source, error) {
	switch b {
	case BackingArena:
		return region.NewArena(capacity), nil
	case BackingMapped:
		m, err := region.NewMapped(capacity)
		if err != nil {
			return nil, fmt.Errorf("heap: reserve mapped region: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadBacking, b)
	}
}

// Backing reports the region implementation in use.
func (h *Heap) Backing() Backing {
	return h.backing
}

// Capacity reports the size of the region reservation in bytes.
func (h *Heap) Capacity() int {
	return h.src.Cap()
}

// MustBytes returns the payload of p and panics if p is not a live block.
func (h *Heap) MustBytes(p Ptr) []byte {
	b, err := h.Bytes(p)
	if err != nil {
		panic(err)
	}
	return b
}

// Close releases the region. Every pointer handed out becomes invalid.
func (h *Heap) Close() error {
	return h.src.Close()
}
