package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// Body is the physical state shared by every entity.
// Units are pixels and seconds: Position in px, Velocity in px/s.
// Bounds are always derived from Position and Size, never stored.
type Body struct {
	ID       EntityID
	Kind     Kind
	Position cp.Vector
	Velocity cp.Vector
	Size     cp.Vector

	Active   bool
	Solid    bool // participates in positional correction against statics
	Grounded bool // set only by a Bottom-side static resolution in the current step
	Gravity  bool
}

// NewBody creates an active, solid body.
func NewBody(kind Kind, pos, size cp.Vector, gravity bool) Body {
	return Body{
		Kind:     kind,
		Position: pos,
		Size:     size,
		Active:   true,
		Solid:    true,
		Gravity:  gravity,
	}
}

// Base returns the body itself. Embedding structs get it promoted,
// which is how Entity exposes physical state to the engine.
func (b *Body) Base() *Body {
	return b
}

// Bounds returns the axis-aligned box covering the body
func (b *Body) Bounds() collision.Rect {
	return collision.RectFrom(b.Position, b.Size)
}

// Center returns the centre of the body's bounds
func (b *Body) Center() cp.Vector {
	return b.Bounds().Center()
}

// IsActive reports whether the body still takes part in the simulation
func (b *Body) IsActive() bool {
	return b != nil && b.Active
}

// Destroy marks the body inactive. Repeated calls are no-ops; the engine
// removes inactive bodies at the end of the step.
func (b *Body) Destroy() {
	b.Active = false
}

// Resize changes the size while keeping the bottom edge and horizontal
// centre in place, so growing never pushes the body into the floor.
func (b *Body) Resize(size cp.Vector) {
	bottom := b.Position.Y + b.Size.Y
	centerX := b.Position.X + b.Size.X/2
	b.Size = size
	b.Position = cp.Vector{X: centerX - size.X/2, Y: bottom - size.Y}
}

// Stop zeroes the velocity
func (b *Body) Stop() {
	b.Velocity = cp.Vector{}
}
