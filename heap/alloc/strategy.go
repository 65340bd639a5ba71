package alloc

// findBlock runs the configured strategy and returns a free block of at
// least size bytes, or nilBlock. Every search names the chain it scans;
// no shared scan head is repointed.
func (a *Allocator) findBlock(size int) blockID {
	switch a.mode {
	case NextFit:
		return a.nextFit(&a.heap, size)
	case BestFit:
		return a.bestFit(&a.heap, size)
	case SegregatedList:
		return a.firstFit(&a.buckets[a.sizeTable.getSizeClass(size)], size)
	default:
		return a.firstFit(&a.heap, size)
	}
}

func (a *Allocator) fits(id blockID, size int) bool {
	a.stats.Probes++
	b := &a.blocks[id]
	return !b.used && b.size >= size
}

// firstFit returns the first adequate block, head to tail.
func (a *Allocator) firstFit(c *chain, size int) blockID {
	for id := c.head; id != nilBlock; id = a.blocks[id].next {
		if a.fits(id, size) {
			return id
		}
	}
	return nilBlock
}

// nextFit scans from the cursor, wraps to the head at the end of the chain,
// and gives up once it is back where it started. A hit moves the cursor.
func (a *Allocator) nextFit(c *chain, size int) blockID {
	start := a.cursor
	if start == nilBlock {
		start = c.head
	}
	if start == nilBlock {
		return nilBlock
	}

	id := start
	for {
		if a.fits(id, size) {
			a.cursor = id
			return id
		}
		id = a.blocks[id].next
		if id == nilBlock {
			id = c.head
		}
		if id == start {
			return nilBlock
		}
	}
}

// bestFit returns the smallest adequate block. Only a strictly smaller
// candidate replaces the current one, so the earliest of equal sizes wins.
func (a *Allocator) bestFit(c *chain, size int) blockID {
	best := nilBlock
	for id := c.head; id != nilBlock; id = a.blocks[id].next {
		if !a.fits(id, size) {
			continue
		}
		if best == nilBlock || a.blocks[id].size < a.blocks[best].size {
			best = id
		}
	}
	return best
}
