package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Event is a discrete input applied to the ship at the start of a tick.
type Event int

const (
	EventNone Event = iota
	BeginTurnLeft
	BeginTurnRight
	EndTurnLeft
	EndTurnRight
	BeginThrust
	EndThrust
	Fire
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case BeginTurnLeft:
		return "BeginTurnLeft"
	case BeginTurnRight:
		return "BeginTurnRight"
	case EndTurnLeft:
		return "EndTurnLeft"
	case EndTurnRight:
		return "EndTurnRight"
	case BeginThrust:
		return "BeginThrust"
	case EndThrust:
		return "EndThrust"
	case Fire:
		return "Fire"
	default:
		return "None"
	}
}

// Kind tags an Entity variant.
type Kind int

const (
	KindBullet Kind = iota
	KindShip
	KindAsteroid
)

// Entity is one of *Bullet, *Ship or *Asteroid. The set is closed.
type Entity interface {
	Kind() Kind
	Box() core.Box
	Heading() float64
	entity()
}

func (*Bullet) Kind() Kind   { return KindBullet }
func (*Ship) Kind() Kind     { return KindShip }
func (*Asteroid) Kind() Kind { return KindAsteroid }

func (*Bullet) entity()   {}
func (*Ship) entity()     {}
func (*Asteroid) entity() {}

// Session is a single game: one ship, its bullets and the asteroid field.
// It is not safe for concurrent use; the tick loop owns it.
type Session struct {
	cfg        config.AsteroidsConfig
	bounds     core.Box
	seed       int64
	rng        *rand.Rand
	population *Population
	difficulty *config.DifficultyManager

	ship      *Ship // nil once destroyed
	bullets   []*Bullet
	asteroids []*Asteroid
	pending   []Event

	score      int
	ticks      int
	spawnTicks int
}

// NewSession creates a session over the configured world and starts it.
func NewSession(cfg config.AsteroidsConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		bounds:     core.NewBox(0, 0, float64(cfg.World.Width), float64(cfg.World.Height)),
		seed:       seed,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.StartNew()
	return s
}

// StartNew resets the session. The RNG is reseeded, so every start with the
// same seed and inputs plays out identically.
func (s *Session) StartNew() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.population = NewPopulation(s.rng, s.bounds, s.cfg.Asteroids)

	s.ship = NewShip(s.bounds, s.cfg.Ship)
	s.bullets = nil
	s.asteroids = nil
	s.pending = nil

	s.score = 0
	s.ticks = 0
	s.spawnTicks = 0

	for i := 0; i < s.cfg.Asteroids.InitialCount; i++ {
		s.asteroids = append(s.asteroids, s.population.SpawnAtEdge())
	}
}

// Event queues an input for the next Update.
func (s *Session) Event(e Event) {
	if e == EventNone {
		return
	}
	s.pending = append(s.pending, e)
}

// Update advances the simulation by one tick.
func (s *Session) Update() {
	s.ticks++

	for _, e := range s.pending {
		s.apply(e)
	}
	s.pending = s.pending[:0]

	if s.ship != nil {
		s.ship.Integrate()
		Wrap(&s.ship.Body, s.bounds)
	}
	for _, b := range s.bullets {
		b.Integrate()
	}
	for _, a := range s.asteroids {
		a.Integrate()
		Wrap(&a.Body, s.bounds)
	}

	s.resolve(Detect(s.ship, s.asteroids, s.bullets))
	s.bullets = Cull(s.bullets, s.bounds)
	s.advanceSpawn()
}

// apply routes an input event to the ship. Input for a destroyed ship is dropped.
func (s *Session) apply(e Event) {
	if s.ship == nil {
		return
	}

	switch e {
	case BeginTurnLeft:
		s.ship.BeginTurnLeft()
	case BeginTurnRight:
		s.ship.BeginTurnRight()
	case EndTurnLeft:
		s.ship.EndTurnLeft()
	case EndTurnRight:
		s.ship.EndTurnRight()
	case BeginThrust:
		s.ship.BeginThrust()
	case EndThrust:
		s.ship.EndThrust()
	case Fire:
		s.bullets = append(s.bullets, s.ship.Shoot(s.cfg.Bullets))
	}
}

// resolve applies detected collisions: scores shots, destroys the ship if
// it was rammed, then swaps destroyed asteroids for their fragments.
// Fragments join the field only after every removal is done.
func (s *Session) resolve(c Collisions) {
	if len(c.Shots) == 0 && !c.ShipHit() {
		return
	}

	doomed := make([]bool, len(s.asteroids))
	spent := make([]bool, len(s.bullets))
	var fragments []*Asteroid

	for _, h := range c.Shots {
		doomed[h.Asteroid] = true
		spent[h.Bullet] = true
		s.score++
		fragments = append(fragments, s.population.Explode(s.asteroids[h.Asteroid])...)
	}
	for _, ai := range c.Rammed {
		doomed[ai] = true
		fragments = append(fragments, s.population.Explode(s.asteroids[ai])...)
	}
	if c.ShipHit() {
		s.ship = nil
	}

	asteroids := s.asteroids[:0]
	for i, a := range s.asteroids {
		if !doomed[i] {
			asteroids = append(asteroids, a)
		}
	}
	s.asteroids = append(asteroids, fragments...)

	bullets := s.bullets[:0]
	for i, b := range s.bullets {
		if !spent[i] {
			bullets = append(bullets, b)
		}
	}
	s.bullets = bullets
}

// advanceSpawn counts ticks while the ship is alive and adds an asteroid
// each time the spawn interval is reached.
func (s *Session) advanceSpawn() {
	if s.ship == nil {
		return
	}

	s.spawnTicks++
	interval := s.difficulty.SpawnInterval(s.cfg.Asteroids.SpawnInterval, s.score, s.ticks)
	if s.spawnTicks >= interval {
		s.asteroids = append(s.asteroids, s.population.SpawnAtEdge())
		s.spawnTicks = 0
	}
}

// IsOver reports whether the ship is gone and no bullets remain in flight.
func (s *Session) IsOver() bool {
	return s.ship == nil && len(s.bullets) == 0
}

// Score returns the number of asteroids destroyed by bullets.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of updates since StartNew.
func (s *Session) Ticks() int {
	return s.ticks
}

// Seed returns the RNG seed the session starts from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Bounds returns the world rectangle.
func (s *Session) Bounds() core.Box {
	return s.bounds
}

// Ship returns the ship, or nil once it has been destroyed.
func (s *Session) Ship() *Ship {
	return s.ship
}

// Bullets returns the bullets in flight. The slice must not be modified.
func (s *Session) Bullets() []*Bullet {
	return s.bullets
}

// Asteroids returns the asteroid field. The slice must not be modified.
func (s *Session) Asteroids() []*Asteroid {
	return s.asteroids
}

// Drawables returns every entity in draw order: bullets, then the ship,
// then asteroids, so asteroids paint over everything else.
func (s *Session) Drawables() []Entity {
	out := make([]Entity, 0, len(s.bullets)+1+len(s.asteroids))
	for _, b := range s.bullets {
		out = append(out, b)
	}
	if s.ship != nil {
		out = append(out, s.ship)
	}
	for _, a := range s.asteroids {
		out = append(out, a)
	}
	return out
}
