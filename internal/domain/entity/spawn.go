package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Spawn builds a dynamic non-player entity of the given kind at pos.
// Players carry a slot and are created with NewPlayer; tiles with NewTile.
func Spawn(kind Kind, pos cp.Vector, svc *Services) (Entity, error) {
	switch kind {
	case KindWalker:
		return NewWalker(pos, svc), nil
	case KindShell:
		return NewShell(pos, svc), nil
	case KindLurker:
		return NewLurker(pos, svc), nil
	case KindMushroom, KindFireFlower, KindCoin, KindOneUp:
		return NewItem(kind, pos, svc), nil
	}
	return nil, fmt.Errorf("%w: cannot spawn %s", ErrUnknownKind, kind)
}
