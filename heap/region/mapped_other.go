//go:build !linux && !darwin

package region

// Mapped falls back to a Go-heap arena where anonymous mappings are not
// wired up.
type Mapped struct {
	*Arena
}

// NewMapped reserves capacity bytes. See NewArena.
func NewMapped(capacity int) (*Mapped, error) {
	return &Mapped{Arena: NewArena(capacity)}, nil
}
