package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Side of the world an asteroid enters from.
type Side int

const (
	SideLeft Side = iota
	SideBottom
	SideRight
	SideTop
)

// Asteroid is a drifting, spinning square rock.
type Asteroid struct {
	Body
	Size int // Edge length of the square bounding box
}

// Population creates asteroids: random edge spawns and fragments of
// destroyed ones. All randomness comes from its seeded RNG.
type Population struct {
	rng    *rand.Rand
	cfg    config.AsteroidConfig
	bounds core.Box
}

// NewPopulation creates an asteroid factory for the given bounds.
func NewPopulation(rng *rand.Rand, bounds core.Box, cfg config.AsteroidConfig) *Population {
	return &Population{
		rng:    rng,
		cfg:    cfg,
		bounds: bounds,
	}
}

// newAsteroid creates an asteroid with fresh random velocity, spin and angle.
func (p *Population) newAsteroid(x, y float64, size int) *Asteroid {
	vel := p.cfg.Velocities
	return &Asteroid{
		Body: Body{
			X:     x,
			Y:     y,
			W:     float64(size),
			H:     float64(size),
			VX:    float64(vel[p.rng.Intn(len(vel))]),
			VY:    float64(vel[p.rng.Intn(len(vel))]),
			Spin:  p.rng.Float64() * p.cfg.MaxSpin,
			Angle: p.rng.Float64() * 360,
		},
		Size: size,
	}
}

// SpawnAtEdge creates an asteroid just outside a random side of the world.
func (p *Population) SpawnAtEdge() *Asteroid {
	side := Side(p.rng.Intn(4))
	size := p.cfg.MinSize + p.rng.Intn(p.cfg.MaxSize-p.cfg.MinSize+1)
	return p.spawnOn(side, size)
}

func (p *Population) spawnOn(side Side, size int) *Asteroid {
	b := p.bounds
	s := float64(size)

	var x, y float64
	switch side {
	case SideLeft:
		x = b.X - s
		y = b.Y + float64(p.rng.Intn(int(b.H)+1))
	case SideBottom:
		x = b.X + float64(p.rng.Intn(int(b.W)+1))
		y = b.Bottom()
	case SideRight:
		x = b.Right()
		y = b.Y + float64(p.rng.Intn(int(b.H)+1))
	default: // SideTop
		x = b.X + float64(p.rng.Intn(int(b.W)+1))
		y = b.Y - s
	}
	return p.newAsteroid(x, y, size)
}

// Explode breaks a destroyed asteroid into four pieces a quarter of its size.
// Pieces are laid out from the parent's top-left corner at quarter-size steps.
// If a piece would be smaller than the fragment minimum, nothing is returned.
func (p *Population) Explode(a *Asteroid) []*Asteroid {
	child := a.Size / 4
	if child < p.cfg.FragmentMin || child <= 0 {
		return nil
	}

	step := float64(child)
	return []*Asteroid{
		p.newAsteroid(a.X, a.Y, child),
		p.newAsteroid(a.X+step, a.Y, child),
		p.newAsteroid(a.X, a.Y+step, child),
		p.newAsteroid(a.X+step, a.Y+step, child),
	}
}
