package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBestFitLayout builds [48][sep][24][sep][32][sep][24][sep] with every
// non-separator block freed. Separators keep the free blocks from merging.
func newBestFitLayout(t *testing.T) (*Allocator, map[string]Ptr) {
	t.Helper()
	a := newTestAllocator(t, BestFit)

	ptrs := map[string]Ptr{}
	for _, name := range []string{"48", "24a", "32", "24b"} {
		size := map[string]int{"48": 48, "24a": 24, "32": 32, "24b": 24}[name]
		ptrs[name] = mustAlloc(t, a, size)
		_ = mustAlloc(t, a, 8)
	}
	for _, p := range ptrs {
		mustFree(t, a, p)
	}
	assertInvariants(t, a)
	return a, ptrs
}

func TestBestFit_PicksSmallest(t *testing.T) {
	a, ptrs := newBestFitLayout(t)

	p := mustAlloc(t, a, 32)
	assert.Equal(t, ptrs["32"], p, "32 is the smallest block that fits 32")
	assert.Zero(t, a.Stats().Splits, "exact fit must not split")
	assertInvariants(t, a)
}

func TestBestFit_TieGoesToEarliest(t *testing.T) {
	a, ptrs := newBestFitLayout(t)

	assert.Equal(t, ptrs["24a"], mustAlloc(t, a, 24), "first of two equal candidates wins")
	assert.Equal(t, ptrs["24b"], mustAlloc(t, a, 24))

	// Both 24s are gone; 32 is now the best fit and gets split.
	assert.Equal(t, ptrs["32"], mustAlloc(t, a, 24))
	assert.Equal(t, 1, a.Stats().Splits)

	size, err := a.SizeOf(ptrs["32"])
	require.NoError(t, err)
	assert.Equal(t, 24, size)
	assertInvariants(t, a)
}

func TestBestFit_AlwaysScansWholeChain(t *testing.T) {
	a, ptrs := newBestFitLayout(t)
	n := len(collect(a))

	p, probes := probesFor(t, a, 48)
	assert.Equal(t, ptrs["48"], p)
	assert.Equal(t, n, probes, "no early exit even on an exact match at the head")
}

func TestBestFit_SplitsOversizedChoice(t *testing.T) {
	a, ptrs := newBestFitLayout(t)
	grows := a.Stats().GrowCalls

	p := mustAlloc(t, a, 40)
	assert.Equal(t, ptrs["48"], p, "only 48 fits 40")
	assert.Equal(t, grows, a.Stats().GrowCalls)

	blocks := collect(a)
	assert.Equal(t, sizeUsed{40, true}, layout(blocks)[0])
	assert.Equal(t, sizeUsed{8, false}, layout(blocks)[1], "8-byte remainder follows")
	assertInvariants(t, a)
}

func TestBestFit_GrowsWhenNothingFits(t *testing.T) {
	a, _ := newBestFitLayout(t)
	grows := a.Stats().GrowCalls
	end := a.Source().End()

	p := mustAlloc(t, a, 56)
	assert.Equal(t, grows+1, a.Stats().GrowCalls)

	blocks := collect(a)
	last := blocks[len(blocks)-1]
	assert.Equal(t, p, last.Ptr, "grown block is appended at the tail")
	assert.Equal(t, end, last.Offset)
	assertInvariants(t, a)
}
