// Package printer renders allocator state for diagnostics: the block chain
// in walk order and the per-size-class bucket lists.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the classic one-block-per-line dump.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowAddress prints absolute payload addresses. When false, offsets
	// from the region base are printed instead, which keeps output stable
	// across runs.
	// Default: true
	ShowAddress bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		ShowAddress: true,
	}
}

// Heap is the read-only allocator surface the printer needs.
type Heap interface {
	Mode() alloc.Mode
	Walk(fn func(alloc.Block) bool)
	Traverse(fn func(class int, b alloc.Block) bool)
}

var _ Heap = (*alloc.Allocator)(nil)

// Printer handles formatted output of allocator state.
type Printer struct {
	opts   Options
	writer io.Writer
	heap   Heap
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(a, os.Stdout, printer.DefaultOptions())
//	p.PrintBlocks()
//	p.PrintBuckets()
func New(h Heap, w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{
		heap:   h,
		writer: w,
		opts:   opts,
	}
}

// PrintBlocks prints every live block: the flat chain in address order, or
// every bucket in class order in SegregatedList mode.
func (p *Printer) PrintBlocks() error {
	switch p.opts.Format {
	case FormatText:
		return p.printBlocksText()
	case FormatJSON:
		return p.printBlocksJSON()
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// PrintBuckets prints one line per size class listing its chain.
func (p *Printer) PrintBuckets() error {
	switch p.opts.Format {
	case FormatText:
		return p.printBucketsText()
	case FormatJSON:
		return p.printBucketsJSON()
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

func usedFlag(used bool) int {
	if used {
		return 1
	}
	return 0
}
