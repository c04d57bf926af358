package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// turnDir identifies which turn key currently drives the ship's spin.
type turnDir int

const (
	turnNone turnDir = iota
	turnLeft
	turnRight
)

// Ship is the player's ship. Turning and thrust are independent:
// the ship can turn while coasting and thrust while turning.
type Ship struct {
	Body
	thrusting bool

	// Held turn keys. The most recently pressed one is active.
	leftHeld  bool
	rightHeld bool
	turning   turnDir

	turnRate float64
	thrust   float64
}

// NewShip creates a ship centred in bounds with zero velocity, facing up.
func NewShip(bounds core.Box, cfg config.ShipConfig) *Ship {
	w, h := float64(cfg.Width), float64(cfg.Height)
	cx, cy := bounds.Center()

	return &Ship{
		Body: Body{
			X:     cx - w/2,
			Y:     cy - h/2,
			W:     w,
			H:     h,
			Drag:  cfg.Drag,
			Angle: 0,
		},
		turnRate: cfg.TurnRate,
		thrust:   cfg.Thrust,
	}
}

// Thrusting reports whether the engine is on.
func (s *Ship) Thrusting() bool {
	return s.thrusting
}

// BeginTurnLeft starts a counter-clockwise turn, overriding a right turn.
func (s *Ship) BeginTurnLeft() {
	s.leftHeld = true
	s.setTurn(turnLeft)
}

// BeginTurnRight starts a clockwise turn, overriding a left turn.
func (s *Ship) BeginTurnRight() {
	s.rightHeld = true
	s.setTurn(turnRight)
}

// EndTurnLeft handles release of the left turn key.
func (s *Ship) EndTurnLeft() {
	s.leftHeld = false
	if s.turning != turnLeft {
		return
	}
	if s.rightHeld {
		s.setTurn(turnRight)
		return
	}
	s.setTurn(turnNone)
}

// EndTurnRight handles release of the right turn key.
func (s *Ship) EndTurnRight() {
	s.rightHeld = false
	if s.turning != turnRight {
		return
	}
	if s.leftHeld {
		s.setTurn(turnLeft)
		return
	}
	s.setTurn(turnNone)
}

func (s *Ship) setTurn(dir turnDir) {
	s.turning = dir
	switch dir {
	case turnLeft:
		s.Spin = s.turnRate
	case turnRight:
		s.Spin = -s.turnRate
	default:
		s.Spin = 0
	}
}

// BeginThrust points a fixed-magnitude acceleration along the current heading.
// The vector is captured now and not re-aimed while thrust is held.
func (s *Ship) BeginThrust() {
	s.thrusting = true
	s.AX, s.AY = direction(s.Angle, s.thrust)
}

// EndThrust cuts the engine.
func (s *Ship) EndThrust() {
	s.thrusting = false
	s.AX, s.AY = 0, 0
}

// Shoot spawns a bullet at the ship's centre. The bullet inherits the ship's
// velocity plus the muzzle speed along the heading.
func (s *Ship) Shoot(cfg config.BulletConfig) *Bullet {
	cx, cy := s.Box().Center()
	mx, my := direction(s.Angle, cfg.MuzzleSpeed)
	return NewBullet(cx, cy, float64(cfg.Size), s.VX+mx, s.VY+my)
}

// direction returns a vector of the given magnitude along heading angle
// (degrees, 0 = up, counter-clockwise positive) in screen coordinates.
func direction(angle, mag float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return -mag * math.Sin(rad), -mag * math.Cos(rad)
}
