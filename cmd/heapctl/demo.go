package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/pkg/heap"
)

// demoWords are the request sizes of the demo, in words.
var demoWords = []int{1, 3, 2, 5, 6, 7, 20, 4}

// demoFreed are the indexes of demoWords freed after the first dump.
var demoFreed = []int{0, 5}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the classic allocation demo",
		Long: `The demo command allocates 1, 3, 2, 5, 6, 7, 20 and 4 words, frees the
first and sixth blocks, then allocates one word twice, printing the heap
after each phase.

Example:
  heapctl demo
  heapctl demo --mode segregated
  heapctl demo --mode next-fit --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(args)
		},
	}
	return cmd
}

func runDemo(_ []string) error {
	h, err := openHeap()
	if err != nil {
		return err
	}
	defer h.Close()

	rec := &recorder{h: h}
	if err := demoSequence(h, rec.record); err != nil {
		return err
	}
	return rec.flush()
}

// demoSequence runs the demo against h, calling dump after each phase.
// A nil dump runs the sequence silently.
func demoSequence(h *heap.Heap, dump func(label string) error) error {
	if dump == nil {
		dump = func(string) error { return nil }
	}

	ptrs := make([]heap.Ptr, len(demoWords))
	for i, w := range demoWords {
		p, err := h.Alloc(w * format.WordSize)
		if err != nil {
			return fmt.Errorf("allocate %d words: %w", w, err)
		}
		printVerbose("alloc %2d words -> %#x\n", w, uintptr(p))
		ptrs[i] = p
	}
	if err := dump("after allocation"); err != nil {
		return err
	}

	for _, i := range demoFreed {
		if err := h.Free(ptrs[i]); err != nil {
			return fmt.Errorf("free block %d: %w", i, err)
		}
		printVerbose("free  %#x\n", uintptr(ptrs[i]))
	}
	if err := dump("after free"); err != nil {
		return err
	}

	for range 2 {
		p, err := h.Alloc(format.WordSize)
		if err != nil {
			return fmt.Errorf("reallocate one word: %w", err)
		}
		printVerbose("alloc  1 words -> %#x\n", uintptr(p))
	}
	return dump("after reuse")
}
