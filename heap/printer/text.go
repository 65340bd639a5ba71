package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

func (p *Printer) location(b alloc.Block) string {
	if p.opts.ShowAddress {
		return fmt.Sprintf("%#x", uintptr(b.Ptr))
	}
	return fmt.Sprintf("@%d", b.Offset)
}

// printBlocksText prints "[size, used, where]" per block and a blank line.
func (p *Printer) printBlocksText() error {
	var err error
	p.heap.Walk(func(b alloc.Block) bool {
		_, err = fmt.Fprintf(p.writer, "[%d, %d, %s]\n", b.Size, usedFlag(b.Used), p.location(b))
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.writer)
	return err
}

// printBucketsText prints "List i: [size, used] ..." for each size class.
func (p *Printer) printBucketsText() error {
	lines := make([]strings.Builder, format.NumSizeClasses)
	for i := range lines {
		fmt.Fprintf(&lines[i], "List %d:", i)
	}
	p.heap.Traverse(func(class int, b alloc.Block) bool {
		fmt.Fprintf(&lines[class], " [%d, %d]", b.Size, usedFlag(b.Used))
		return true
	})

	for i := range lines {
		if _, err := fmt.Fprintln(p.writer, lines[i].String()); err != nil {
			return err
		}
	}
	return nil
}
