/*
Package heap provides a ready-to-use allocator session: it reserves a backing
region, builds an allocator over it and releases both on Close.

# Quick Start

	h, err := heap.New(nil)
	if err != nil {
	    log.Fatal(err)
	}
	defer h.Close()

	p, err := h.Alloc(24)
	if err != nil {
	    log.Fatal(err)
	}
	copy(h.MustBytes(p), "hello")
	_ = h.Free(p)

# Choosing a Strategy

	h, err := heap.New(&heap.Options{
	    Mode:     heap.BestFit,
	    Capacity: 1 << 20,
	    Backing:  heap.BackingMapped,
	})

Switching strategy on a live session discards every block:

	_ = h.Init(heap.SegregatedList)

# Backings

BackingArena reserves the region as a Go slice. BackingMapped reserves it
with an anonymous private mapping and hands pages back to the kernel on
Reset; on platforms without mmap support it behaves like BackingArena.

Pointers returned by Alloc stay valid until they are freed or the session is
reset, re-initialized or closed.
*/
package heap
