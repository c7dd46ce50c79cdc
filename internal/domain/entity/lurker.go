package entity

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// LurkerState is the immune enemy state
type LurkerState int

const (
	LurkerRising LurkerState = iota
	LurkerWaitingTop
	LurkerSinking
	LurkerWaitingBottom
)

func (s LurkerState) String() string {
	switch s {
	case LurkerRising:
		return "Rising"
	case LurkerWaitingTop:
		return "WaitingTop"
	case LurkerSinking:
		return "Sinking"
	case LurkerWaitingBottom:
		return "WaitingBottom"
	default:
		return "Unknown"
	}
}

const lurkerArrival = 1e-6

// Lurker rises out of a pipe and sinks back on a timer. It cannot be
// stomped, ignores gravity and tiles, and stays hidden while a player is
// close to it.
type Lurker struct {
	Body
	State LurkerState

	hiddenY float64
	shownY  float64
	timer   float64

	tuning LurkerTuning
	svc    *Services
}

// NewLurker creates a hidden lurker whose retracted top-left is pos
func NewLurker(pos cp.Vector, svc *Services) *Lurker {
	t := svc.tuning().Lurker
	l := &Lurker{
		Body:    NewBody(KindLurker, pos, cp.Vector{X: t.Width, Y: t.Height}, false),
		State:   LurkerWaitingBottom,
		hiddenY: pos.Y,
		shownY:  pos.Y - t.Height,
		timer:   t.WaitBottom,
		tuning:  t,
		svc:     svc,
	}
	l.Solid = false
	return l
}

func (l *Lurker) Update(dt float64) {
	if !l.Active || dt <= 0 {
		return
	}

	switch l.State {
	case LurkerWaitingBottom:
		l.Velocity.Y = 0
		l.timer = countdown(l.timer, dt)
		if l.timer == 0 && !l.playerNear() {
			l.State = LurkerRising
			l.svc.Debug("lurker rising", "id", l.ID)
		}
	case LurkerRising:
		remaining := l.Position.Y - l.shownY
		if remaining <= lurkerArrival {
			l.Position.Y = l.shownY
			l.Velocity.Y = 0
			l.State = LurkerWaitingTop
			l.timer = l.tuning.WaitTop
			return
		}
		l.Velocity.Y = -math.Min(l.tuning.Speed, remaining/dt)
	case LurkerWaitingTop:
		l.Velocity.Y = 0
		l.timer = countdown(l.timer, dt)
		if l.timer == 0 {
			l.State = LurkerSinking
		}
	case LurkerSinking:
		remaining := l.hiddenY - l.Position.Y
		if remaining <= lurkerArrival {
			l.Position.Y = l.hiddenY
			l.Velocity.Y = 0
			l.State = LurkerWaitingBottom
			l.timer = l.tuning.WaitBottom
			return
		}
		l.Velocity.Y = math.Min(l.tuning.Speed, remaining/dt)
	}
}

// playerNear reports whether any active player's centre is within the
// detection radius of the lurker's centre
func (l *Lurker) playerNear() bool {
	c := l.Center()
	r := l.tuning.DetectRadius
	for _, p := range l.svc.ActivePlayers() {
		if c.Distance(p.Center()) <= r {
			return true
		}
	}
	return false
}

// OnCollision damages any player touching it, from any side
func (l *Lurker) OnCollision(other Entity, _ collision.Side) {
	if !l.Active || !isActive(other) {
		return
	}
	if other.Base().Kind != KindPlayer {
		return
	}
	if d, ok := other.(Damageable); ok {
		d.TakeDamage()
	}
}

// Kill implements Killable. Fireballs and shells can kill a lurker.
func (l *Lurker) Kill() bool {
	if !l.Active {
		return false
	}
	l.Destroy()
	l.svc.Debug("lurker dead", "id", l.ID)
	return true
}

// Bounty implements bounty
func (l *Lurker) Bounty() int {
	return l.tuning.Points
}

// StateName implements StateNamer
func (l *Lurker) StateName() string {
	return l.State.String()
}
