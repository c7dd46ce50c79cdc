package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// bounty is implemented by enemies that are worth points when killed outright
type bounty interface {
	Bounty() int
}

// faceAway points a patrol direction away from the touched side.
// Setting rather than toggling keeps two walls touched in one step from
// cancelling each other out.
func faceAway(dir float64, side collision.Side) float64 {
	switch side {
	case collision.SideLeft:
		return 1
	case collision.SideRight:
		return -1
	}
	return dir
}

// scorerOf returns e as a Scorer, or nil
func scorerOf(e Entity) Scorer {
	if s, ok := e.(Scorer); ok {
		return s
	}
	return nil
}

// stompCredit awards stomp points to the attacker, following its airborne chain
// when it keeps one
func stompCredit(svc *Services, attacker Entity, base int) {
	if p, ok := attacker.(*Player); ok {
		p.AwardScore(p.NextStompPoints())
		return
	}
	credit(svc, scorerOf(attacker), base)
}

// WalkerState is the generic enemy state
type WalkerState int

const (
	WalkerWalking WalkerState = iota
	WalkerStunned
	WalkerDead
)

func (s WalkerState) String() string {
	switch s {
	case WalkerWalking:
		return "Walking"
	case WalkerStunned:
		return "Stunned"
	case WalkerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Walker is the generic enemy: it patrols, and a stomp squishes it
// for a moment before it disappears.
type Walker struct {
	Body
	State WalkerState
	Dir   float64

	stunTimer    float64
	transitioned bool // set once a transition happened this frame

	tuning WalkerTuning
	svc    *Services
}

// NewWalker creates a walking enemy facing left
func NewWalker(pos cp.Vector, svc *Services) *Walker {
	t := svc.tuning().Walker
	return &Walker{
		Body:   NewBody(KindWalker, pos, cp.Vector{X: t.Width, Y: t.Height}, true),
		State:  WalkerWalking,
		Dir:    -1,
		tuning: t,
		svc:    svc,
	}
}

func (w *Walker) Update(dt float64) {
	if !w.Active {
		return
	}
	w.transitioned = false

	switch w.State {
	case WalkerWalking:
		w.Velocity.X = w.Dir * w.tuning.Speed
	case WalkerStunned:
		w.Velocity.X = 0
		w.stunTimer = countdown(w.stunTimer, dt)
		if w.stunTimer == 0 {
			w.die()
		}
	case WalkerDead:
		w.Destroy()
	}
}

// Stomp squishes a walking enemy. Other states and repeat stomps in the
// same frame are ignored.
func (w *Walker) Stomp(attacker Entity) {
	if !w.Active || w.State != WalkerWalking || w.transitioned {
		return
	}
	w.transitioned = true
	w.State = WalkerStunned
	w.stunTimer = w.tuning.StunTime
	w.Velocity.X = 0
	w.Resize(cp.Vector{X: w.Size.X, Y: w.Size.Y / 2})
	stompCredit(w.svc, attacker, w.tuning.Points)
	w.svc.PlaySound("stomp")
	w.svc.Debug("walker stunned", "id", w.ID)

	if w.stunTimer <= 0 {
		w.die()
	}
}

// Kill implements Killable
func (w *Walker) Kill() bool {
	if !w.Active || w.State == WalkerDead {
		return false
	}
	w.die()
	return true
}

func (w *Walker) die() {
	w.State = WalkerDead
	w.transitioned = true
	w.Destroy()
	w.svc.Debug("walker dead", "id", w.ID)
}

// Bounty implements bounty
func (w *Walker) Bounty() int {
	return w.tuning.Points
}

func (w *Walker) OnCollision(other Entity, side collision.Side) {
	if !w.Active || !isActive(other) {
		return
	}
	if isWall(other) {
		w.Dir = faceAway(w.Dir, side)
		return
	}
	if w.State != WalkerWalking {
		return
	}

	ob := other.Base()
	switch {
	case ob.Kind == KindPlayer:
		if side == collision.SideTop {
			w.Stomp(other)
			if b, ok := other.(Bouncer); ok {
				b.Bounce()
			}
			return
		}
		if d, ok := other.(Damageable); ok {
			d.TakeDamage()
		}
	case ob.Kind.IsEnemy():
		if side.Horizontal() {
			w.Dir = faceAway(w.Dir, side)
		}
	}
}

// StateName implements StateNamer
func (w *Walker) StateName() string {
	return w.State.String()
}
