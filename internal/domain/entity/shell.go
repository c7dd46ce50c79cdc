package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// ShellState is the shelled enemy state
type ShellState int

const (
	ShellWalking ShellState = iota
	ShellIdle
	ShellSliding
)

func (s ShellState) String() string {
	switch s {
	case ShellWalking:
		return "Walking"
	case ShellIdle:
		return "Shell"
	case ShellSliding:
		return "ShellSliding"
	default:
		return "Unknown"
	}
}

// Shell is the shelled enemy. A stomp retracts it, the next stomp or a
// side touch kicks it, and a sliding shell kills the enemies it runs into.
type Shell struct {
	Body
	State ShellState
	Dir   float64

	shellTimer   float64
	kickGrace    float64
	kicker       Entity
	killChain    int
	transitioned bool

	tuning ShellTuning
	svc    *Services
}

// NewShell creates a walking shelled enemy facing left
func NewShell(pos cp.Vector, svc *Services) *Shell {
	t := svc.tuning().Shell
	return &Shell{
		Body:   NewBody(KindShell, pos, cp.Vector{X: t.Width, Y: t.Height}, true),
		State:  ShellWalking,
		Dir:    -1,
		tuning: t,
		svc:    svc,
	}
}

func (s *Shell) Update(dt float64) {
	if !s.Active {
		return
	}
	s.transitioned = false
	s.kickGrace = countdown(s.kickGrace, dt)

	switch s.State {
	case ShellWalking:
		s.Velocity.X = s.Dir * s.tuning.Speed
	case ShellIdle:
		s.Velocity.X = 0
		s.shellTimer = countdown(s.shellTimer, dt)
		if s.shellTimer == 0 {
			s.State = ShellWalking
			s.Resize(cp.Vector{X: s.tuning.Width, Y: s.tuning.Height})
			s.svc.Debug("shell reverted", "id", s.ID)
		}
	case ShellSliding:
		s.Velocity.X = s.Dir * s.tuning.KickSpeed
	}
}

// Stomp advances the shell cycle: Walking -> Shell -> ShellSliding -> Shell.
// At most one transition happens per frame.
func (s *Shell) Stomp(attacker Entity) {
	if !s.Active || s.transitioned {
		return
	}
	s.transitioned = true

	switch s.State {
	case ShellWalking:
		s.enterShell()
		stompCredit(s.svc, attacker, s.tuning.Points)
		s.svc.PlaySound("stomp")
	case ShellIdle:
		s.kick(attacker)
	case ShellSliding:
		s.enterShell()
		s.svc.PlaySound("stomp")
	}
}

func (s *Shell) enterShell() {
	s.State = ShellIdle
	s.Velocity.X = 0
	s.shellTimer = s.tuning.ShellTimeout
	s.killChain = 0
	s.Resize(cp.Vector{X: s.tuning.Width, Y: s.tuning.ShellHeight})
	s.svc.Debug("shell retracted", "id", s.ID)
}

// kick sends the shell sliding away from attacker. An attacker left of the
// centre (or exactly on it) kicks it right.
func (s *Shell) kick(attacker Entity) {
	s.Dir = KickDirection(attacker, s)
	s.State = ShellSliding
	s.Velocity.X = s.Dir * s.tuning.KickSpeed
	s.kicker = attacker
	s.kickGrace = s.tuning.KickGrace
	s.killChain = 0
	s.svc.PlaySound("kick")
	s.svc.Debug("shell kicked", "id", s.ID, "dir", s.Dir)
}

// KickDirection returns +1 when attacker's centre is left of (or level with)
// the shell's centre, otherwise -1. A missing attacker kicks right.
func KickDirection(attacker Entity, shell *Shell) float64 {
	if attacker == nil {
		return 1
	}
	if attacker.Base().Center().X > shell.Center().X {
		return -1
	}
	return 1
}

// Kill implements Killable
func (s *Shell) Kill() bool {
	if !s.Active {
		return false
	}
	s.transitioned = true
	s.Destroy()
	s.svc.Debug("shell dead", "id", s.ID)
	return true
}

// Bounty implements bounty
func (s *Shell) Bounty() int {
	return s.tuning.Points
}

// Kicker returns the entity credited with this shell's kills
func (s *Shell) Kicker() Entity {
	return s.kicker
}

func (s *Shell) OnCollision(other Entity, side collision.Side) {
	if !s.Active || !isActive(other) {
		return
	}
	if isWall(other) {
		if side.Horizontal() && s.State != ShellIdle {
			s.Dir = faceAway(s.Dir, side)
			if s.State == ShellSliding {
				s.svc.PlaySound("bump")
			}
		}
		return
	}

	ob := other.Base()
	switch {
	case ob.Kind == KindPlayer:
		s.touchPlayer(other, side)
	case ob.Kind.IsEnemy():
		s.touchEnemy(other, side)
	}
}

func (s *Shell) touchPlayer(p Entity, side collision.Side) {
	if s.State == ShellSliding && s.kickGrace > 0 && p == s.kicker {
		return
	}
	if side == collision.SideTop {
		s.Stomp(p)
		if b, ok := p.(Bouncer); ok {
			b.Bounce()
		}
		return
	}

	if s.State == ShellIdle {
		if !s.transitioned {
			s.transitioned = true
			s.kick(p)
		}
		return
	}
	if d, ok := p.(Damageable); ok {
		d.TakeDamage()
	}
}

func (s *Shell) touchEnemy(other Entity, side collision.Side) {
	if !side.Horizontal() {
		return
	}
	switch s.State {
	case ShellSliding:
		k, ok := other.(Killable)
		if !ok || !k.Kill() {
			return
		}
		credit(s.svc, scorerOf(s.kicker), chainPoints(s.killChain))
		s.killChain++
		s.svc.PlaySound("kick")
	case ShellWalking:
		s.Dir = faceAway(s.Dir, side)
	}
}

// StateName implements StateNamer
func (s *Shell) StateName() string {
	return s.State.String()
}
