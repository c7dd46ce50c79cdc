package entity

import "github.com/younwookim/stomp/internal/domain/collision"

// Entity is anything the engine steps and collides.
type Entity interface {
	Base() *Body
	Update(dt float64)
	// OnCollision is called once per contact with the side of this entity
	// that touched other. Implementations must ignore inactive others.
	OnCollision(other Entity, side collision.Side)
	Destroy()
	IsActive() bool
}

// Damageable can be hurt by contact.
type Damageable interface {
	TakeDamage()
}

// Stompable reacts to being landed on from above by attacker.
type Stompable interface {
	Stomp(attacker Entity)
}

// Killable can be killed outright by projectiles and sliding shells.
// Kill reports whether the call actually killed it.
type Killable interface {
	Kill() bool
}

// Collector picks up items.
type Collector interface {
	CollectPower(tier PowerTier)
	CollectCoin()
	CollectLife()
}

// Scorer is credited with points.
type Scorer interface {
	AwardScore(points int)
}

// Bouncer is pushed upward after stomping something.
type Bouncer interface {
	Bounce()
}

// StateNamer exposes the current state machine state for debug views.
type StateNamer interface {
	StateName() string
}

// isActive is the guard every handler runs on the other participant
func isActive(e Entity) bool {
	return e != nil && e.IsActive()
}

// isWall reports whether other is a solid tile
func isWall(other Entity) bool {
	b := other.Base()
	return b.Kind == KindTile && b.Solid
}

// chainPoints returns the award for the n-th consecutive kill in a chain
// (n starts at 0): 100, 200, 400, 800, then capped at 1000.
func chainPoints(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= 4 {
		return 1000
	}
	return 100 << n
}

// credit awards points to scorer, or to the global score sink if there is none
func credit(svc *Services, scorer Scorer, points int) {
	if scorer != nil {
		scorer.AwardScore(points)
		return
	}
	svc.AddScore(points)
}
