package alloc

import "github.com/joshuapare/heapkit/internal/format"

// classWords holds the upper bound of each size class in words. Payloads
// above the last bound are filed in the last class.
var classWords = [format.NumSizeClasses]int{1, 2, 4, 8, 16}

// sizeClassTable holds the computed size class boundaries.
type sizeClassTable struct {
	boundaries []int // Upper bound (bytes, inclusive) for each size class
	numClasses int
}

// newSizeClassTable computes byte boundaries for the given word size.
func newSizeClassTable(wordSize int) *sizeClassTable {
	table := &sizeClassTable{
		boundaries: make([]int, 0, len(classWords)),
	}
	for _, w := range classWords {
		table.boundaries = append(table.boundaries, w*wordSize)
	}
	table.numClasses = len(table.boundaries)
	return table
}

// getSizeClass returns the size class index for a payload size. The result
// is always a valid index: sizes beyond the last boundary saturate to the
// last class.
func (t *sizeClassTable) getSizeClass(size int) int {
	lo, hi := 0, t.numClasses-1

	for lo <= hi {
		mid := (lo + hi) / 2
		if size <= t.boundaries[mid] {
			if mid == 0 || size > t.boundaries[mid-1] {
				return mid
			}
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return t.numClasses - 1
}

// limit returns the inclusive upper bound of class c.
func (t *sizeClassTable) limit(c int) int {
	return t.boundaries[c]
}

var defaultSizeTable = newSizeClassTable(format.WordSize)

// SizeClass returns the segregated size class for a payload of size bytes.
// Non-positive sizes map to class 0; oversized requests clamp to the last class.
func SizeClass(size int) int {
	return defaultSizeTable.getSizeClass(size)
}

// ClassLimit returns the largest payload size, in bytes, that class c is
// sized for. The last class also takes everything larger.
func ClassLimit(c int) int {
	c = min(max(c, 0), defaultSizeTable.numClasses-1)
	return defaultSizeTable.limit(c)
}
