package heap

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

// ErrBadBacking is returned for an unknown backing name.
var ErrBadBacking = errors.New("heap: unknown backing")

// Backing selects where the managed region lives.
type Backing string

const (
	// BackingArena reserves the region as a Go-managed slice.
	BackingArena Backing = "arena"

	// BackingMapped reserves the region with an anonymous mmap.
	BackingMapped Backing = "mmap"
)

// ParseBacking parses a backing name. "mapped" is accepted for mmap.
func ParseBacking(s string) (Backing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "arena":
		return BackingArena, nil
	case "mmap", "mapped":
		return BackingMapped, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadBacking, s)
	}
}

// Options controls how a session is created.
type Options struct {
	// Mode is the placement strategy.
	// Default: FirstFit
	Mode Mode

	// Capacity is the region reservation in bytes. Zero or negative means
	// format.DefaultRegionSize.
	Capacity int

	// Backing selects the region implementation.
	// Default: BackingArena
	Backing Backing

	// Logger receives allocator debug events. If nil, the process logger
	// is used.
	Logger *slog.Logger
}

// DefaultOptions returns the options New uses for a nil argument.
func DefaultOptions() Options {
	return Options{
		Mode:     alloc.FirstFit,
		Capacity: format.DefaultRegionSize,
		Backing:  BackingArena,
	}
}

// Re-exported allocator types and values.
type (
	Ptr   = alloc.Ptr
	Mode  = alloc.Mode
	Block = alloc.Block
	Stats = alloc.Stats
)

const (
	FirstFit       = alloc.FirstFit
	NextFit        = alloc.NextFit
	BestFit        = alloc.BestFit
	SegregatedList = alloc.SegregatedList

	Nil = alloc.Nil
)

// ParseMode parses a strategy name. See alloc.ParseMode.
func ParseMode(s string) (Mode, error) {
	return alloc.ParseMode(s)
}
