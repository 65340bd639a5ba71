package alloc

// Visit calls fn for every block of the flat chain in address order until
// fn returns false. The flat chain is empty in SegregatedList mode.
func (a *Allocator) Visit(fn func(Block) bool) {
	a.visitChain(&a.heap, fn)
}

// Traverse calls fn for every block of every size-class chain, class by
// class, until fn returns false. The buckets are empty outside
// SegregatedList mode.
func (a *Allocator) Traverse(fn func(class int, b Block) bool) {
	for class := range a.buckets {
		keepGoing := true
		a.visitChain(&a.buckets[class], func(b Block) bool {
			keepGoing = fn(class, b)
			return keepGoing
		})
		if !keepGoing {
			return
		}
	}
}

// Walk visits every live block of the current session, using Traverse in
// SegregatedList mode and Visit otherwise.
func (a *Allocator) Walk(fn func(Block) bool) {
	if a.mode == SegregatedList {
		a.Traverse(func(_ int, b Block) bool { return fn(b) })
		return
	}
	a.Visit(fn)
}

func (a *Allocator) visitChain(c *chain, fn func(Block) bool) {
	for id := c.head; id != nilBlock; id = a.blocks[id].next {
		if !fn(a.view(id)) {
			return
		}
	}
}
