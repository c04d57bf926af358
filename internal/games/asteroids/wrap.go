package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Wrap moves a body that has left the bounds entirely on an axis to the
// opposite side, so its trailing edge touches that boundary. Axes are
// handled independently. A body that still overlaps or touches the bounds
// is left where it is, which makes a second call a no-op.
func Wrap(b *Body, bounds core.Box) {
	box := b.Box()

	switch {
	case box.Right() < bounds.X:
		b.X = bounds.Right()
	case box.X > bounds.Right():
		b.X = bounds.X - box.W
	}

	switch {
	case box.Bottom() < bounds.Y:
		b.Y = bounds.Bottom()
	case box.Y > bounds.Bottom():
		b.Y = bounds.Y - box.H
	}
}
