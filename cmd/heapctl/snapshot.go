package main

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/pkg/heap"
)

// blockView is the JSON form of a block.
type blockView struct {
	Address string `json:"address,omitempty"`
	Offset  int    `json:"offset"`
	Size    int    `json:"size"`
	Used    bool   `json:"used"`
	Class   int    `json:"class"`
}

// snapshot is the heap layout at one point of a demo or script.
type snapshot struct {
	Label  string      `json:"label"`
	Blocks []blockView `json:"blocks"`
}

func takeSnapshot(h *heap.Heap, label string) snapshot {
	s := snapshot{Label: label, Blocks: []blockView{}}
	h.Walk(func(b alloc.Block) bool {
		v := blockView{Offset: b.Offset, Size: b.Size, Used: b.Used, Class: b.Class}
		if !showOffsets {
			v.Address = fmt.Sprintf("%#x", uintptr(b.Ptr))
		}
		s.Blocks = append(s.Blocks, v)
		return true
	})
	return s
}

// dumpText prints the block chain, plus the bucket lists in segregated mode.
func dumpText(h *heap.Heap, label string) error {
	if quiet {
		return nil
	}
	printInfo("-- %s --\n", label)
	p := newPrinter(h)
	if err := p.PrintBlocks(); err != nil {
		return err
	}
	if h.Mode() == heap.SegregatedList {
		if err := p.PrintBuckets(); err != nil {
			return err
		}
		printInfo("\n")
	}
	return nil
}

// recorder collects snapshots for JSON output or prints them as text.
type recorder struct {
	h     *heap.Heap
	shots []snapshot
}

func (r *recorder) record(label string) error {
	if jsonOut {
		r.shots = append(r.shots, takeSnapshot(r.h, label))
		return nil
	}
	return dumpText(r.h, label)
}

// report is the JSON document emitted by demo and run.
type report struct {
	Mode      string      `json:"mode"`
	Snapshots []snapshot  `json:"snapshots"`
	Stats     alloc.Stats `json:"stats"`
}

func (r *recorder) flush() error {
	if !jsonOut {
		return nil
	}
	shots := r.shots
	if shots == nil {
		shots = []snapshot{}
	}
	return printJSON(report{Mode: r.h.Mode().String(), Snapshots: shots, Stats: r.h.Stats()})
}
