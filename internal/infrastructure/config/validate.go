package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type checker struct {
	errs []error
}

func (c *checker) positive(field string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		c.errs = append(c.errs, fmt.Errorf("%s must be > 0, got %v", field, v))
	}
}

func (c *checker) nonNegative(field string, v float64) {
	if !(v >= 0) || math.IsInf(v, 0) {
		c.errs = append(c.errs, fmt.Errorf("%s must be >= 0, got %v", field, v))
	}
}

func (c *checker) check(ok bool, format string, args ...interface{}) {
	if !ok {
		c.errs = append(c.errs, fmt.Errorf(format, args...))
	}
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(c.errs...))
}

// Validate reports every out-of-range physics setting
func (p *PhysicsConfig) Validate() error {
	var c checker
	c.check(p.Display.ScreenWidth > 0 && p.Display.ScreenHeight > 0, "display size must be positive")
	c.check(p.Display.Framerate > 0, "display.framerate must be > 0, got %d", p.Display.Framerate)
	c.nonNegative("physics.gravity", p.Physics.Gravity)
	c.positive("physics.maxFallSpeed", p.Physics.MaxFallSpeed)
	c.nonNegative("physics.tieEpsilon", p.Physics.TieEpsilon)
	c.nonNegative("movement.walkSpeed", p.Movement.WalkSpeed)
	c.check(p.Movement.RunSpeed >= p.Movement.WalkSpeed, "movement.runSpeed must be >= walkSpeed")
	c.nonNegative("movement.acceleration", p.Movement.Acceleration)
	c.nonNegative("movement.friction", p.Movement.Friction)
	c.check(p.Movement.AirControl >= 0 && p.Movement.AirControl <= 1, "movement.airControl must be in [0,1], got %v", p.Movement.AirControl)
	c.nonNegative("jump.speed", p.Jump.Speed)
	c.check(p.Jump.CutMultiplier >= 0 && p.Jump.CutMultiplier <= 1, "jump.cutMultiplier must be in [0,1], got %v", p.Jump.CutMultiplier)
	c.nonNegative("jump.coyoteTime", p.Jump.CoyoteTime)
	c.nonNegative("jump.jumpBuffer", p.Jump.JumpBuffer)
	c.check(p.Combat.Lives > 0, "combat.lives must be > 0, got %d", p.Combat.Lives)
	c.nonNegative("combat.invincibilityTime", p.Combat.InvincibilityTime)
	c.check(p.Combat.FireballCap >= 0, "combat.fireballCap must be >= 0")
	return c.err()
}

// Validate reports every non-positive size
func (e *EntitiesConfig) Validate() error {
	var c checker
	c.positive("player.width", e.Player.Width)
	c.positive("player.smallHeight", e.Player.SmallHeight)
	c.check(e.Player.BigHeight >= e.Player.SmallHeight, "player.bigHeight must be >= smallHeight")
	c.positive("enemies.walker.width", e.Enemies.Walker.Width)
	c.positive("enemies.walker.height", e.Enemies.Walker.Height)
	c.positive("enemies.shell.width", e.Enemies.Shell.Width)
	c.positive("enemies.shell.height", e.Enemies.Shell.Height)
	c.positive("enemies.shell.shellHeight", e.Enemies.Shell.ShellHeight)
	c.nonNegative("enemies.shell.shellTimeout", e.Enemies.Shell.ShellTimeout)
	c.positive("enemies.lurker.width", e.Enemies.Lurker.Width)
	c.positive("enemies.lurker.height", e.Enemies.Lurker.Height)
	c.positive("enemies.lurker.speed", e.Enemies.Lurker.Speed)
	c.nonNegative("enemies.lurker.detectRadius", e.Enemies.Lurker.DetectRadius)
	c.positive("items.size", e.Items.Size)
	c.positive("fireball.size", e.Fireball.Size)
	c.positive("tiles.size", e.Tiles.Size)
	return c.err()
}

// Validate checks the grid and that every grid character is mapped.
// '.' and ' ' are always empty.
func (s *StageConfig) Validate() error {
	var c checker
	c.check(s.Size.TileSize > 0, "size.tileSize must be > 0, got %d", s.Size.TileSize)
	c.check(len(s.Layers.Collision) > 0, "layers.collision is empty")
	c.check(len(s.PlayerSpawns) > 0, "playerSpawns is empty")

	missing := make(map[rune]bool)
	for _, row := range s.Layers.Collision {
		for _, ch := range row {
			if ch == '.' || ch == ' ' {
				continue
			}
			if _, ok := s.TileMapping[string(ch)]; !ok && !missing[ch] {
				missing[ch] = true
				c.check(false, "tile %q has no mapping", ch)
			}
		}
	}
	for i, sp := range append(append([]SpawnConfig{}, s.Enemies...), s.Items...) {
		c.check(sp.Type != "", "spawn %d has no type", i)
	}
	return c.err()
}
