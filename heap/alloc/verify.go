package alloc

import (
	"fmt"
	"slices"

	"github.com/joshuapare/heapkit/internal/format"
)

// Verify walks every chain and checks the structural invariants:
//   - each chain is strictly ascending by address and ends at its tail
//   - every payload size is a positive multiple of the word size
//   - bucket members belong to the bucket's size class
//   - the payload index covers exactly the chained blocks
//   - the blocks tile [Mark, End) of the region without gaps or overlaps
//
// It returns an error wrapping ErrCorrupt describing the first violation.
func (a *Allocator) Verify() error {
	var all []blockID

	check := func(name string, c *chain, class int) error {
		steps := 0
		last := nilBlock
		for id := c.head; id != nilBlock; id = a.blocks[id].next {
			if steps++; steps > len(a.blocks) {
				return fmt.Errorf("%w: %s: cycle", ErrCorrupt, name)
			}
			b := &a.blocks[id]
			if !b.live {
				return fmt.Errorf("%w: %s: retired block %d still linked", ErrCorrupt, name, id)
			}
			if b.size <= 0 || !format.IsAligned(b.size) {
				return fmt.Errorf("%w: %s: block at %d has size %d", ErrCorrupt, name, b.off, b.size)
			}
			if class >= 0 && int(b.class) != class {
				return fmt.Errorf("%w: %s: block at %d filed under class %d",
					ErrCorrupt, name, b.off, b.class)
			}
			if last != nilBlock && a.blocks[last].off >= b.off {
				return fmt.Errorf("%w: %s: block at %d follows block at %d",
					ErrCorrupt, name, b.off, a.blocks[last].off)
			}
			last = id
			all = append(all, id)
		}
		if last != c.tail {
			return fmt.Errorf("%w: %s: tail is %d, walk ended at %d", ErrCorrupt, name, c.tail, last)
		}
		return nil
	}

	if err := check("heap", &a.heap, -1); err != nil {
		return err
	}
	for class := range a.buckets {
		if err := check(fmt.Sprintf("bucket %d", class), &a.buckets[class], class); err != nil {
			return err
		}
	}

	if len(all) != len(a.byPtr) {
		return fmt.Errorf("%w: %d chained blocks, %d indexed", ErrCorrupt, len(all), len(a.byPtr))
	}
	for _, id := range all {
		if got, ok := a.byPtr[a.ptrAt(a.blocks[id].off)]; !ok || got != id {
			return fmt.Errorf("%w: block at %d not indexed", ErrCorrupt, a.blocks[id].off)
		}
	}

	slices.SortFunc(all, func(x, y blockID) int {
		return a.blocks[x].off - a.blocks[y].off
	})
	pos := a.src.Mark()
	for _, id := range all {
		b := &a.blocks[id]
		if b.headerOff() != pos {
			return fmt.Errorf("%w: expected block at %d, found %d", ErrCorrupt, pos, b.headerOff())
		}
		pos += format.Footprint(b.size)
	}
	if pos != a.src.End() {
		return fmt.Errorf("%w: blocks end at %d, region ends at %d", ErrCorrupt, pos, a.src.End())
	}
	return nil
}
