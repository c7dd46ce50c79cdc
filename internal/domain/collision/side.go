package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TieEpsilon is the default window within which the vertical axis wins over
// the horizontal one. Landing takes priority over bumping a wall.
const TieEpsilon = 0.01

// Side is the face of a body along which a contact is resolved.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the side the other participant sees.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Horizontal reports whether s is Left or Right.
func (s Side) Horizontal() bool { return s == SideLeft || s == SideRight }

// Vertical reports whether s is Top or Bottom.
func (s Side) Vertical() bool { return s == SideTop || s == SideBottom }

// Depths holds the four penetration depths of a into b. Each value is how
// far a would have to move to clear b in one direction:
//
//	Left   = a.right  - b.left   (move a left,  a's right face touches)
//	Right  = b.right  - a.left   (move a right, a's left face touches)
//	Top    = a.bottom - b.top    (move a up,    a's bottom face touches)
//	Bottom = b.bottom - a.top    (move a down,  a's top face touches)
type Depths struct {
	Left, Right, Top, Bottom float64
}

// Penetration computes the depths of a into b. Values are only meaningful
// when Overlaps(a, b) is true.
func Penetration(a, b Rect) Depths {
	return Depths{
		Left:   a.Right() - b.Left(),
		Right:  b.Right() - a.Left(),
		Top:    a.Bottom() - b.Top(),
		Bottom: b.Bottom() - a.Top(),
	}
}

// Vertical returns the smaller of the two vertical depths.
func (d Depths) Vertical() float64 { return math.Min(d.Top, d.Bottom) }

// Horizontal returns the smaller of the two horizontal depths.
func (d Depths) Horizontal() float64 { return math.Min(d.Left, d.Right) }

// ResolveSide returns the side of a that contacts b, using the default
// TieEpsilon. See ResolveSideEpsilon.
func ResolveSide(a, b Rect, velocity cp.Vector) Side {
	return ResolveSideEpsilon(a, b, velocity, TieEpsilon)
}

// ResolveSideEpsilon returns the side of a that contacts b. velocity is a's
// velocity relative to b and only its sign is used.
//
// The axis with the smaller minimal depth is chosen; when the vertical and
// horizontal minima are within eps of each other the vertical axis wins.
// On the chosen axis a positive velocity component selects Bottom (or
// Right), a negative one Top (or Left). A zero component falls back to the
// face with the smaller depth, with Bottom and Right winning exact ties.
//
// SideNone is returned when the rectangles do not overlap.
func ResolveSideEpsilon(a, b Rect, velocity cp.Vector, eps float64) Side {
	if !Overlaps(a, b) {
		return SideNone
	}
	if eps < 0 || math.IsNaN(eps) {
		eps = 0
	}

	d := Penetration(a, b)
	if d.Vertical() <= d.Horizontal()+eps {
		return verticalSide(d, velocity.Y)
	}
	return horizontalSide(d, velocity.X)
}

func verticalSide(d Depths, vy float64) Side {
	switch {
	case vy > 0:
		return SideBottom
	case vy < 0:
		return SideTop
	case d.Top <= d.Bottom:
		return SideBottom
	default:
		return SideTop
	}
}

func horizontalSide(d Depths, vx float64) Side {
	switch {
	case vx > 0:
		return SideRight
	case vx < 0:
		return SideLeft
	case d.Left <= d.Right:
		return SideRight
	default:
		return SideLeft
	}
}

// Snap returns the top-left corner that moves a flush against b on side,
// leaving the other coordinate untouched. SideNone returns a unchanged.
func Snap(a, b Rect, side Side) cp.Vector {
	pos := cp.Vector{X: a.X, Y: a.Y}
	switch side {
	case SideBottom:
		pos.Y = b.Top() - a.H
	case SideTop:
		pos.Y = b.Bottom()
	case SideRight:
		pos.X = b.Left() - a.W
	case SideLeft:
		pos.X = b.Right()
	}
	return pos
}
