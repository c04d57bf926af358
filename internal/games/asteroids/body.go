// Package asteroids implements the asteroids simulation: a thrust-driven ship,
// bullets that inherit its momentum, and asteroids that drift, wrap around the
// world edges and break into smaller pieces when shot.
//
// The simulation runs in logical world units (600x480 by default) and is
// fully deterministic for a given seed and input sequence.
package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Body is the kinematic state shared by every entity.
// X and Y locate the top-left corner of the bounding box.
type Body struct {
	X, Y   float64 // Position in world units
	W, H   float64 // Bounding box size
	VX, VY float64 // Velocity per tick
	AX, AY float64 // Acceleration per tick²
	Angle  float64 // Orientation in degrees, 0 points up, kept in [0, 360)
	Spin   float64 // Degrees per tick, positive turns counter-clockwise
	Drag   float64 // Fraction of velocity lost per tick
}

// Integrate advances the body by one tick.
func (b *Body) Integrate() {
	b.VX += b.AX
	b.VY += b.AY

	b.VX -= b.Drag * b.VX
	b.VY -= b.Drag * b.VY

	b.X += b.VX
	b.Y += b.VY

	b.Angle = normalizeAngle(b.Angle + b.Spin)
}

// Box returns the axis-aligned bounding box used for wrap and hit tests.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Heading returns the orientation in degrees.
func (b Body) Heading() float64 {
	return b.Angle
}

// normalizeAngle folds a single step of rotation back into [0, 360).
// Spin magnitude is always below 360, so one correction suffices.
func normalizeAngle(a float64) float64 {
	if a >= 360 {
		a -= 360
	} else if a < 0 {
		a += 360
	}
	// -1e-17 + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}
