package alloc

import "github.com/joshuapare/heapkit/internal/format"

// blockID indexes the allocator's descriptor table.
type blockID int32

const nilBlock blockID = -1

// block is a block header. Headers live in the descriptor table rather than
// in front of the payload; off locates the payload inside the region.
type block struct {
	off   int     // payload offset from the region base
	size  int     // payload capacity, word-aligned
	used  bool    // allocated to a caller
	live  bool    // false once retired by coalescing or reset
	class int8    // size class at creation time
	next  blockID // structurally next block in the same chain
}

// headerOff is where the block begins in the region.
func (b *block) headerOff() int {
	return b.off - format.HeaderSize
}

// chain is a singly linked list of blocks in ascending address order.
type chain struct {
	head blockID
	tail blockID
}

func emptyChain() chain {
	return chain{head: nilBlock, tail: nilBlock}
}

func (c *chain) empty() bool {
	return c.head == nilBlock
}

// newBlock stores a header in the descriptor table, reusing a retired slot
// when one is available, and indexes it by payload address.
func (a *Allocator) newBlock(b block) blockID {
	b.live = true
	b.class = int8(a.sizeTable.getSizeClass(b.size))

	var id blockID
	if n := len(a.spare); n > 0 {
		id = a.spare[n-1]
		a.spare = a.spare[:n-1]
		a.blocks[id] = b
	} else {
		id = blockID(len(a.blocks))
		a.blocks = append(a.blocks, b)
	}
	a.byPtr[a.ptrAt(b.off)] = id
	return id
}

// retire drops a header absorbed by coalescing.
func (a *Allocator) retire(id blockID) {
	b := &a.blocks[id]
	delete(a.byPtr, a.ptrAt(b.off))
	*b = block{next: nilBlock}
	a.spare = append(a.spare, id)
}

// appendBlock links id after the current tail of c.
func (a *Allocator) appendBlock(c *chain, id blockID) {
	a.blocks[id].next = nilBlock
	if c.tail != nilBlock {
		a.blocks[c.tail].next = id
	}
	if c.head == nilBlock {
		c.head = id
	}
	c.tail = id
}

// chainFor returns the chain a block belongs to in the current mode.
func (a *Allocator) chainFor(id blockID) *chain {
	if a.mode == SegregatedList {
		return &a.buckets[a.blocks[id].class]
	}
	return &a.heap
}

// lookup recovers the header owning payload address p.
func (a *Allocator) lookup(p Ptr) (blockID, bool) {
	id, ok := a.byPtr[p]
	return id, ok
}

func (a *Allocator) ptrAt(off int) Ptr {
	return Ptr(a.src.Base() + uintptr(off))
}

func (a *Allocator) view(id blockID) Block {
	b := &a.blocks[id]
	return Block{
		Ptr:    a.ptrAt(b.off),
		Offset: b.off,
		Size:   b.size,
		Used:   b.used,
		Class:  int(b.class),
	}
}
