package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Bullet is a projectile. It never wraps and never rotates.
type Bullet struct {
	Body
}

// NewBullet creates a square bullet of the given size centred on (cx, cy).
func NewBullet(cx, cy, size, vx, vy float64) *Bullet {
	return &Bullet{Body: Body{
		X:  cx - size/2,
		Y:  cy - size/2,
		W:  size,
		H:  size,
		VX: vx,
		VY: vy,
	}}
}

// Cull removes every bullet that no longer overlaps bounds.
// The slice is filtered in place.
func Cull(bullets []*Bullet, bounds core.Box) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Box().Intersects(bounds) {
			kept = append(kept, b)
		}
	}
	// Drop references to culled bullets
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}
