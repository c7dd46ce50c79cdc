package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// Tile is a static body. Ground never reacts; the other types react to
// players touching them.
type Tile struct {
	Body
	Type     TileType
	Contents Kind // item released by a question block

	spent bool
	svc   *Services
}

// NewTile creates a static tile. Checkpoints and goals are non-solid triggers.
func NewTile(t TileType, pos, size cp.Vector, contents Kind, svc *Services) *Tile {
	tile := &Tile{
		Body:     NewBody(KindTile, pos, size, false),
		Type:     t,
		Contents: contents,
		svc:      svc,
	}
	tile.Solid = t.Solid()
	return tile
}

// Spent reports whether a question block or goal has already fired
func (t *Tile) Spent() bool {
	return t.spent
}

func (t *Tile) Update(float64) {}

func (t *Tile) OnCollision(other Entity, side collision.Side) {
	if !t.Active || !isActive(other) {
		return
	}
	p, ok := other.(*Player)
	if !ok {
		return
	}

	switch t.Type {
	case TileQuestion:
		if side == collision.SideBottom && !t.spent {
			t.spent = true
			t.release(p)
		}
	case TileBrick:
		if side != collision.SideBottom {
			return
		}
		if p.Tier >= TierBig {
			t.Destroy()
			p.AwardScore(t.svc.tuning().Tile.BrickPoints)
			t.svc.PlaySound("break")
			return
		}
		t.svc.PlaySound("bump")
	case TileCheckpoint:
		h := t.svc.tuning().Player.SmallHeight
		p.SetCheckpoint(cp.Vector{X: t.Position.X, Y: t.Bounds().Bottom() - h})
	case TileGoal:
		if !t.spent {
			t.spent = true
			t.svc.LevelComplete(p)
		}
	}
}

// release pops the block's contents out on top of it. A fire flower is
// downgraded to a mushroom for a Small player.
func (t *Tile) release(p *Player) {
	kind := t.Contents
	if kind == KindNone {
		kind = KindCoin
	}
	if kind == KindFireFlower && p.Tier == TierSmall {
		kind = KindMushroom
	}
	t.svc.PlaySound("bump")

	if kind == KindCoin {
		p.CollectCoin()
		return
	}

	size := t.svc.tuning().Item.Size
	pos := cp.Vector{
		X: t.Position.X + (t.Size.X-size)/2,
		Y: t.Position.Y - size,
	}
	t.svc.Spawn(NewItem(kind, pos, t.svc))
	t.svc.PlaySound("sprout")
	t.svc.Debug("block released item", "kind", kind)
}

// StateName implements StateNamer
func (t *Tile) StateName() string {
	return t.Type.String()
}
