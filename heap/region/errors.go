package region

import "errors"

var (
	// ErrNoMemory indicates the region cannot be extended any further.
	ErrNoMemory = errors.New("region: out of memory")

	// ErrBadSize indicates a non-positive or misaligned extension request.
	ErrBadSize = errors.New("region: bad extension size")

	// ErrClosed indicates the region has been released.
	ErrClosed = errors.New("region: closed")
)
