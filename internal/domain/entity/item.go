package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// Item is a collectible. Mushrooms and 1-ups wander, flowers sit still,
// coins float.
type Item struct {
	Body
	Dir float64

	tuning ItemTuning
	svc    *Services
}

// NewItem creates a collectible of the given item kind
func NewItem(kind Kind, pos cp.Vector, svc *Services) *Item {
	t := svc.tuning().Item
	it := &Item{
		Body:   NewBody(kind, pos, cp.Vector{X: t.Size, Y: t.Size}, kind != KindCoin),
		Dir:    1,
		tuning: t,
		svc:    svc,
	}
	return it
}

func (it *Item) moves() bool {
	return it.Kind == KindMushroom || it.Kind == KindOneUp
}

func (it *Item) Update(_ float64) {
	if !it.Active || !it.moves() {
		return
	}
	it.Velocity.X = it.Dir * it.tuning.Speed
}

// OnCollision hands the item to a collector and removes it
func (it *Item) OnCollision(other Entity, side collision.Side) {
	if !it.Active || !isActive(other) {
		return
	}
	if isWall(other) {
		it.Dir = faceAway(it.Dir, side)
		return
	}

	c, ok := other.(Collector)
	if !ok {
		return
	}
	switch it.Kind {
	case KindMushroom:
		c.CollectPower(TierBig)
	case KindFireFlower:
		c.CollectPower(TierFire)
	case KindCoin:
		c.CollectCoin()
	case KindOneUp:
		c.CollectLife()
	}
	it.Destroy()
}

// StateName implements StateNamer
func (it *Item) StateName() string {
	return it.Kind.String()
}
