package system

import (
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

// PhysicsSystem integrates the player body and resolves it against platforms
type PhysicsSystem struct {
	config *config.PhysicsConfig
	worldW float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		worldW: entity.WorldWidth,
	}
}

// Step advances the body by one tick
func (s *PhysicsSystem) Step(body *entity.Body, platforms []entity.Rect, in Intent) {
	s.applyHorizontal(body, in)

	// Jump is gated on the ground flag only, so holding jump in the air
	// does nothing until the next landing.
	if in.Jump && body.OnGround {
		body.VY = -s.config.Physics.JumpStrength
		body.OnGround = false
	}

	body.VY += s.config.Physics.Gravity

	s.moveAndCollide(body, platforms)
	s.clampToWorld(body)
}

// applyHorizontal accelerates toward the held direction or damps toward zero
func (s *PhysicsSystem) applyHorizontal(body *entity.Body, in Intent) {
	switch in.Horizontal() {
	case -1:
		body.VX -= s.config.Physics.Acceleration
	case 1:
		body.VX += s.config.Physics.Acceleration
	default:
		if !in.Left && !in.Right {
			body.VX *= s.config.Physics.Damping
		}
	}

	maxSpeed := s.config.Physics.MaxSpeedX
	if body.VX > maxSpeed {
		body.VX = maxSpeed
	}
	if body.VX < -maxSpeed {
		body.VX = -maxSpeed
	}
}

// moveAndCollide moves one axis at a time, x first
func (s *PhysicsSystem) moveAndCollide(body *entity.Body, platforms []entity.Rect) {
	body.X += body.VX
	s.resolveX(body, platforms)

	body.Y += body.VY
	wasFalling := body.VY > 0
	s.resolveY(body, platforms)

	// Only a fall stopped this tick counts as landing
	body.OnGround = wasFalling && body.VY == 0
}

// resolveX pushes the body out of every overlapping platform along x.
// Later platforms win if several overlap.
func (s *PhysicsSystem) resolveX(body *entity.Body, platforms []entity.Rect) {
	for _, p := range platforms {
		if !entity.Overlaps(body.Rect(), p) {
			continue
		}
		if body.VX > 0 {
			body.X = p.X - body.W
		} else if body.VX < 0 {
			body.X = p.Right()
		}
		body.VX = 0
	}
}

// resolveY pushes the body out of every overlapping platform along y
func (s *PhysicsSystem) resolveY(body *entity.Body, platforms []entity.Rect) {
	for _, p := range platforms {
		if !entity.Overlaps(body.Rect(), p) {
			continue
		}
		if body.VY > 0 {
			body.Y = p.Y - body.H
		} else if body.VY < 0 {
			body.Y = p.Bottom()
		}
		body.VY = 0
	}
}

// clampToWorld keeps the body inside the left, right and top edges.
// The bottom is open; falling out is handled by the session.
func (s *PhysicsSystem) clampToWorld(body *entity.Body) {
	if body.X < 0 {
		body.X = 0
		body.VX = 0
	}
	if body.X+body.W > s.worldW {
		body.X = s.worldW - body.W
		body.VX = 0
	}
	if body.Y < 0 {
		body.Y = 0
		body.VY = 0
	}
}
