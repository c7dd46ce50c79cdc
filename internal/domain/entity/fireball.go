package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// Fireball is the Fire tier projectile. It bounces along the ground and
// burns out on walls, enemies or when its lifetime ends.
type Fireball struct {
	Body
	Dir   float64
	Owner *Player

	life   float64
	tuning FireballTuning
	svc    *Services
}

// NewFireball creates a fireball in front of owner, moving the way it faces
func NewFireball(owner *Player, svc *Services) *Fireball {
	t := svc.tuning().Fireball
	dir := 1.0
	pos := cp.Vector{}
	if owner != nil {
		dir = owner.Facing
		b := owner.Bounds()
		pos.Y = b.Center().Y - t.Size/2
		if dir < 0 {
			pos.X = b.Left() - t.Size
		} else {
			pos.X = b.Right()
		}
	}
	fb := &Fireball{
		Body:   NewBody(KindFireball, pos, cp.Vector{X: t.Size, Y: t.Size}, true),
		Dir:    dir,
		Owner:  owner,
		life:   t.Lifetime,
		tuning: t,
		svc:    svc,
	}
	fb.Velocity.X = dir * t.Speed
	return fb
}

func (f *Fireball) Update(dt float64) {
	if !f.Active {
		return
	}
	f.life = countdown(f.life, dt)
	if f.life == 0 {
		f.Destroy()
		return
	}
	f.Velocity.X = f.Dir * f.tuning.Speed
}

func (f *Fireball) OnCollision(other Entity, side collision.Side) {
	if !f.Active || !isActive(other) {
		return
	}
	if isWall(other) {
		switch {
		case side == collision.SideBottom:
			f.Velocity.Y = -f.tuning.Bounce
		case side.Horizontal():
			f.Destroy()
			f.svc.PlaySound("bump")
		}
		return
	}

	if !other.Base().Kind.IsEnemy() {
		return
	}
	if k, ok := other.(Killable); ok && k.Kill() {
		points := 0
		if b, ok := other.(bounty); ok {
			points = b.Bounty()
		}
		var owner Scorer
		if f.Owner != nil {
			owner = f.Owner
		}
		credit(f.svc, owner, points)
		f.svc.PlaySound("kick")
	}
	f.Destroy()
}
