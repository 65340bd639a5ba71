package alloc

import "github.com/joshuapare/heapkit/internal/format"

// canSplit reports whether carving size bytes out of block id leaves a
// remainder large enough to stand as a block of its own. Otherwise the
// whole block is handed out to avoid an unusable sliver.
func (a *Allocator) canSplit(id blockID, size int) bool {
	rest := format.Footprint(a.blocks[id].size) - format.Footprint(size)
	return rest >= format.HeaderSize+format.MinBlockSize
}

// split trims block id to size and files the remainder as a free block
// directly after it in the flat chain.
func (a *Allocator) split(id blockID, size int) blockID {
	b := a.blocks[id]
	rest := format.Footprint(b.size) - format.Footprint(size)
	tailHeader := b.headerOff() + format.Footprint(size)

	tail := a.newBlock(block{
		off:  tailHeader + format.HeaderSize,
		size: rest - format.HeaderSize,
		next: b.next,
	})

	// newBlock may have grown the table; index again.
	a.blocks[id].size = size
	a.blocks[id].next = tail
	if a.heap.tail == id {
		a.heap.tail = tail
	}

	a.stats.Splits++
	a.log.Debug("alloc: split",
		"off", b.off, "size", size, "remainder", a.blocks[tail].size)
	return tail
}

// canCoalesce reports whether block id has a structurally next neighbor in
// its chain that is free.
func (a *Allocator) canCoalesce(id blockID) bool {
	next := a.blocks[id].next
	return next != nilBlock && !a.blocks[next].used
}

// coalesce absorbs the next block into id. Only forward merging exists:
// chains carry no back links.
func (a *Allocator) coalesce(id blockID) {
	next := a.blocks[id].next
	nb := a.blocks[next]

	b := &a.blocks[id]
	b.size += format.HeaderSize + nb.size
	b.next = nb.next

	if a.heap.tail == next {
		a.heap.tail = id
	}
	if a.cursor == next {
		a.cursor = id
	}
	a.retire(next)

	a.stats.Coalesces++
	a.log.Debug("alloc: coalesce",
		"off", b.off, "absorbed", nb.off, "size", b.size)
}
