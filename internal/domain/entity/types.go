package entity

import (
	"errors"
	"fmt"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// ErrUnknownKind is returned when a spawn names a kind the factory cannot build
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind tags what an entity is, so collision handlers can dispatch on the
// other participant without type switches over concrete structs.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindWalker
	KindShell
	KindLurker
	KindMushroom
	KindFireFlower
	KindCoin
	KindOneUp
	KindFireball
	KindTile
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindPlayer:     "player",
	KindWalker:     "walker",
	KindShell:      "shell",
	KindLurker:     "lurker",
	KindMushroom:   "mushroom",
	KindFireFlower: "fireflower",
	KindCoin:       "coin",
	KindOneUp:      "oneup",
	KindFireball:   "fireball",
	KindTile:       "tile",
}

// String returns the config name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a config name back to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name && k != KindNone {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// IsEnemy reports whether the kind is one of the enemy variants
func (k Kind) IsEnemy() bool {
	return k == KindWalker || k == KindShell || k == KindLurker
}

// IsItem reports whether the kind is a collectible
func (k Kind) IsItem() bool {
	switch k {
	case KindMushroom, KindFireFlower, KindCoin, KindOneUp:
		return true
	}
	return false
}

// TileType represents the behaviour of a static tile
type TileType int

const (
	TileGround TileType = iota
	TileBrick
	TileQuestion
	TileCheckpoint
	TileGoal
)

var tileNames = map[TileType]string{
	TileGround:     "ground",
	TileBrick:      "brick",
	TileQuestion:   "question",
	TileCheckpoint: "checkpoint",
	TileGoal:       "goal",
}

func (t TileType) String() string {
	if name, ok := tileNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTileType maps a tile mapping name to a TileType.
func ParseTileType(name string) (TileType, error) {
	for t, n := range tileNames {
		if n == name {
			return t, nil
		}
	}
	return TileGround, fmt.Errorf("unknown tile type %q", name)
}

// Solid reports whether tiles of this type block movement.
// Checkpoints and goals are triggers.
func (t TileType) Solid() bool {
	return t != TileCheckpoint && t != TileGoal
}
