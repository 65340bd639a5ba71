package printer

import (
	"encoding/json"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

type jsonBlock struct {
	Address uintptr `json:"address,omitempty"`
	Offset  int     `json:"offset"`
	Size    int     `json:"size"`
	Used    bool    `json:"used"`
	Class   int     `json:"class"`
}

type jsonBlocks struct {
	Mode   string      `json:"mode"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBucket struct {
	Class  int         `json:"class"`
	Limit  int         `json:"limit"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBuckets struct {
	Mode    string       `json:"mode"`
	Buckets []jsonBucket `json:"buckets"`
}

func (p *Printer) toJSON(b alloc.Block) jsonBlock {
	jb := jsonBlock{
		Offset: b.Offset,
		Size:   b.Size,
		Used:   b.Used,
		Class:  b.Class,
	}
	if p.opts.ShowAddress {
		jb.Address = uintptr(b.Ptr)
	}
	return jb
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) printBlocksJSON() error {
	out := jsonBlocks{Mode: p.heap.Mode().String(), Blocks: []jsonBlock{}}
	p.heap.Walk(func(b alloc.Block) bool {
		out.Blocks = append(out.Blocks, p.toJSON(b))
		return true
	})
	return p.encode(out)
}

func (p *Printer) printBucketsJSON() error {
	out := jsonBuckets{Mode: p.heap.Mode().String()}
	for c := range format.NumSizeClasses {
		out.Buckets = append(out.Buckets, jsonBucket{
			Class:  c,
			Limit:  alloc.ClassLimit(c),
			Blocks: []jsonBlock{},
		})
	}
	p.heap.Traverse(func(class int, b alloc.Block) bool {
		out.Buckets[class].Blocks = append(out.Buckets[class].Blocks, p.toJSON(b))
		return true
	})
	return p.encode(out)
}
