package asteroids

// Hit pairs an asteroid with the bullet that destroyed it, by slice index.
type Hit struct {
	Asteroid int
	Bullet   int
}

// Collisions is the detection result for one tick. Nothing is removed
// while detecting; the session applies the result afterwards.
type Collisions struct {
	Shots  []Hit // Asteroid destroyed by a bullet
	Rammed []int // Asteroids that hit the ship
}

// ShipHit reports whether any asteroid reached the ship.
func (c Collisions) ShipHit() bool {
	return len(c.Rammed) > 0
}

// Detect finds this tick's collisions. Each asteroid is matched with at most
// one bullet and each bullet with at most one asteroid. Asteroids already
// destroyed by a bullet are not tested against the ship. ship may be nil.
func Detect(ship *Ship, asteroids []*Asteroid, bullets []*Bullet) Collisions {
	var c Collisions

	shot := make([]bool, len(asteroids))
	spent := make([]bool, len(bullets))

	for ai, a := range asteroids {
		box := a.Box()
		for bi, b := range bullets {
			if spent[bi] || !box.Intersects(b.Box()) {
				continue
			}
			spent[bi] = true
			shot[ai] = true
			c.Shots = append(c.Shots, Hit{Asteroid: ai, Bullet: bi})
			break
		}
	}

	if ship == nil {
		return c
	}

	shipBox := ship.Box()
	for ai, a := range asteroids {
		if shot[ai] {
			continue
		}
		if a.Box().Intersects(shipBox) {
			c.Rammed = append(c.Rammed, ai)
		}
	}

	return c
}
