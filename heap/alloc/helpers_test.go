package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap/region"
)

// ============================================================================
// Test Helpers
// ============================================================================

const testCapacity = 1 << 16

// newTestAllocator creates an allocator in the given mode over a fresh arena.
func newTestAllocator(t testing.TB, mode Mode) *Allocator {
	t.Helper()
	return newTestAllocatorWithCapacity(t, mode, testCapacity)
}

func newTestAllocatorWithCapacity(t testing.TB, mode Mode, capacity int) *Allocator {
	t.Helper()

	src := region.NewArena(capacity)
	t.Cleanup(func() { src.Close() })

	a, err := New(src, &Config{Mode: mode})
	require.NoError(t, err)
	return a
}

// mustAlloc allocates size bytes and fails the test on error.
func mustAlloc(t testing.TB, a *Allocator, size int) Ptr {
	t.Helper()
	p, err := a.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	require.NotEqual(t, Nil, p)
	return p
}

func mustFree(t testing.TB, a *Allocator, p Ptr) {
	t.Helper()
	require.NoError(t, a.Free(p))
}

// collect returns every block Walk yields, in walk order.
func collect(a *Allocator) []Block {
	var out []Block
	a.Walk(func(b Block) bool {
		out = append(out, b)
		return true
	})
	return out
}

// bucket returns the blocks filed under one size class.
func bucket(a *Allocator, class int) []Block {
	var out []Block
	a.Traverse(func(c int, b Block) bool {
		if c == class {
			out = append(out, b)
		}
		return true
	})
	return out
}

// layout summarizes blocks as {size, used} pairs.
type sizeUsed struct {
	Size int
	Used bool
}

func layout(blocks []Block) []sizeUsed {
	out := make([]sizeUsed, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, sizeUsed{b.Size, b.Used})
	}
	return out
}

// assertInvariants checks the structural invariants of the heap.
func assertInvariants(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, a.Verify())
}

// probesFor runs one allocation and reports how many blocks its search examined.
func probesFor(t testing.TB, a *Allocator, size int) (Ptr, int) {
	t.Helper()
	before := a.Stats().Probes
	p := mustAlloc(t, a, size)
	return p, a.Stats().Probes - before
}
