package alloc

// allocatorStats holds internal allocator counters for the current session.
type allocatorStats struct {
	AllocCalls int   // Successful and failed Alloc() calls with a valid size
	FreeCalls  int   // Successful Free() calls
	GrowCalls  int   // Region extensions
	GrowBytes  int64 // Bytes acquired from the region
	Reused     int   // Allocations served from an existing free block
	Splits     int   // Blocks trimmed with a free remainder
	Coalesces  int   // Forward merges
	Probes     int   // Blocks examined by strategy scans
}

// Stats is a snapshot of allocator counters and of the current heap shape.
type Stats struct {
	Mode string

	AllocCalls int
	FreeCalls  int
	GrowCalls  int
	GrowBytes  int64
	Reused     int
	Splits     int
	Coalesces  int
	Probes     int

	Blocks      int
	UsedBlocks  int
	FreeBlocks  int
	UsedBytes   int64
	FreeBytes   int64
	RegionBytes int64

	// LargestFree is the biggest free payload; a request above it grows.
	LargestFree int
}

// Stats returns counters since the last Init or Reset together with a walk
// of every chain.
func (a *Allocator) Stats() Stats {
	s := Stats{
		Mode:        a.mode.String(),
		AllocCalls:  a.stats.AllocCalls,
		FreeCalls:   a.stats.FreeCalls,
		GrowCalls:   a.stats.GrowCalls,
		GrowBytes:   a.stats.GrowBytes,
		Reused:      a.stats.Reused,
		Splits:      a.stats.Splits,
		Coalesces:   a.stats.Coalesces,
		Probes:      a.stats.Probes,
		RegionBytes: int64(a.src.End() - a.src.Mark()),
	}

	a.Walk(func(b Block) bool {
		s.Blocks++
		if b.Used {
			s.UsedBlocks++
			s.UsedBytes += int64(b.Size)
		} else {
			s.FreeBlocks++
			s.FreeBytes += int64(b.Size)
			s.LargestFree = max(s.LargestFree, b.Size)
		}
		return true
	})
	return s
}
