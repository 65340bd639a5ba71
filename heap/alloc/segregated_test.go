package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

// TestSegregated_ClassChains places 8 and 16 bytes in distinct class
// chains, reuses a freed 8-byte block, and keeps a large block out of the
// smallest class.
func TestSegregated_ClassChains(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)
	w := format.WordSize

	p8 := mustAlloc(t, a, w)
	p16 := mustAlloc(t, a, 2*w)

	require.Len(t, bucket(a, 0), 1)
	require.Len(t, bucket(a, 1), 1)
	assert.Equal(t, p8, bucket(a, 0)[0].Ptr)
	assert.Equal(t, p16, bucket(a, 1)[0].Ptr)

	mustFree(t, a, p8)
	grows := a.Stats().GrowCalls
	assert.Equal(t, p8, mustAlloc(t, a, w), "freed block is reused")
	assert.Equal(t, grows, a.Stats().GrowCalls)

	big := mustAlloc(t, a, 1000)
	for _, b := range bucket(a, 0) {
		assert.NotEqual(t, big, b.Ptr)
		assert.NotEqual(t, 1000, b.Size)
	}
	last := bucket(a, format.NumSizeClasses-1)
	require.Len(t, last, 1)
	assert.Equal(t, big, last[0].Ptr)
	assertInvariants(t, a)
}

func TestSegregated_ReusesWholeWithoutSplit(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)

	p := mustAlloc(t, a, 128)
	mustFree(t, a, p)

	q := mustAlloc(t, a, 72)
	assert.Equal(t, p, q, "72 and 128 share the last class")

	size, err := a.SizeOf(q)
	require.NoError(t, err)
	assert.Equal(t, 128, size, "block keeps its full size")
	assert.Zero(t, a.Stats().Splits)
	assertInvariants(t, a)
}

func TestSegregated_SmallerMemberOfClassIsSkipped(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)
	w := format.WordSize

	p := mustAlloc(t, a, 3*w) // class 2 holds 3 and 4 words
	mustFree(t, a, p)
	grows := a.Stats().GrowCalls

	q := mustAlloc(t, a, 4*w)
	assert.NotEqual(t, p, q)
	assert.Equal(t, grows+1, a.Stats().GrowCalls)
	assert.Len(t, bucket(a, 2), 2)
	assertInvariants(t, a)
}

func TestSegregated_NoCoalescing(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)

	x := mustAlloc(t, a, 8)
	y := mustAlloc(t, a, 8)
	mustFree(t, a, y)
	mustFree(t, a, x)

	assert.Zero(t, a.Stats().Coalesces)
	assert.Equal(t, []sizeUsed{{8, false}, {8, false}}, layout(bucket(a, 0)))
	assertInvariants(t, a)
}

func TestSegregated_FlatChainStaysEmpty(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)
	_ = mustAlloc(t, a, 8)
	_ = mustAlloc(t, a, 100)

	visited := 0
	a.Visit(func(Block) bool { visited++; return true })
	assert.Zero(t, visited)
	assert.Len(t, collect(a), 2, "Walk uses the buckets")
}

func TestSegregated_TraverseOrder(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)
	w := format.WordSize

	for _, size := range []int{12 * w, w, 5 * w, w, 2 * w, 20 * w} {
		_ = mustAlloc(t, a, size)
	}

	var classes []int
	var sizes []int
	a.Traverse(func(c int, b Block) bool {
		classes = append(classes, c)
		sizes = append(sizes, b.Size)
		return true
	})
	assert.Equal(t, []int{0, 0, 1, 3, 4, 4}, classes)
	assert.Equal(t, []int{w, w, 2 * w, 5 * w, 12 * w, 20 * w}, sizes)
}

func TestSegregated_TraverseStopsEarly(t *testing.T) {
	a := newTestAllocator(t, SegregatedList)
	for _, size := range []int{8, 16, 32} {
		_ = mustAlloc(t, a, size)
	}

	n := 0
	a.Traverse(func(int, Block) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}

func TestSizeClass_Bands(t *testing.T) {
	w := format.WordSize
	tests := []struct {
		size int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 0},
		{w, 0},
		{w + 1, 1},
		{2 * w, 1},
		{2*w + 1, 2},
		{4 * w, 2},
		{4*w + 1, 3},
		{8 * w, 3},
		{8*w + 1, 4},
		{16 * w, 4},
		{16*w + 1, 4},
		{1 << 40, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeClass(tt.size), "size %d", tt.size)
	}
}

func TestSizeClass_AlwaysInRange(t *testing.T) {
	for size := -64; size <= 1<<13; size++ {
		c := SizeClass(size)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, format.NumSizeClasses)
	}
}

func TestClassLimit(t *testing.T) {
	w := format.WordSize
	assert.Equal(t, w, ClassLimit(0))
	assert.Equal(t, 16*w, ClassLimit(format.NumSizeClasses-1))
	assert.Equal(t, 16*w, ClassLimit(99), "clamped")
	assert.Equal(t, w, ClassLimit(-1), "clamped")
}
