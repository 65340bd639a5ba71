package alloc

import (
	"fmt"
	"log/slog"
	"strings"
)

// Ptr is the address of a block's payload. Payload addresses are always
// word-aligned. Nil is returned alongside every allocation error.
type Ptr uintptr

// Nil is the failure sentinel for Ptr.
const Nil Ptr = 0

// Mode selects the block-selection strategy. It is fixed by Init and only
// changes at the next Init.
type Mode uint8

const (
	// FirstFit takes the lowest-addressed free block that is large enough.
	FirstFit Mode = iota

	// NextFit resumes scanning where the previous successful search stopped,
	// wrapping to the head of the chain once.
	NextFit

	// BestFit scans the whole chain for the smallest adequate free block.
	// Earlier blocks win ties.
	BestFit

	// SegregatedList keeps one chain per size class and reuses blocks whole.
	// No splitting or coalescing happens in this mode.
	SegregatedList
)

var modeNames = [...]string{
	FirstFit:       "first-fit",
	NextFit:        "next-fit",
	BestFit:        "best-fit",
	SegregatedList: "segregated",
}

func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func (m Mode) valid() bool {
	return int(m) < len(modeNames)
}

// Modes lists every supported strategy in declaration order.
func Modes() []Mode {
	return []Mode{FirstFit, NextFit, BestFit, SegregatedList}
}

// ParseMode accepts a mode name as printed by Mode.String. Dashes,
// underscores and case are ignored, and "first", "next", "best" and
// "seg" are accepted as short forms.
func ParseMode(s string) (Mode, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "firstfit", "first":
		return FirstFit, nil
	case "nextfit", "next":
		return NextFit, nil
	case "bestfit", "best":
		return BestFit, nil
	case "segregated", "segregatedlist", "seg":
		return SegregatedList, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

// Config controls allocator construction.
type Config struct {
	// Mode is the initial strategy. Default: FirstFit
	Mode Mode

	// Logger receives debug records for growth, splits, merges and misuse.
	// Default: logger.L
	Logger *slog.Logger
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{Mode: FirstFit}

// Block is a read-only view of one block, handed to visitors.
type Block struct {
	Ptr    Ptr  // payload address
	Offset int  // payload offset from the region base
	Size   int  // payload capacity in bytes
	Used   bool // false when the block is free
	Class  int  // size class the block was filed under
}
