package collision

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, cp.Vector{X: 25, Y: 40}, r.Center())
	assert.Equal(t, 1200.0, r.Area())
}

func TestRectFrom(t *testing.T) {
	r := RectFrom(cp.Vector{X: 5, Y: 6}, cp.Vector{X: 16, Y: 32})
	assert.Equal(t, Rect{X: 5, Y: 6, W: 16, H: 32}, r)
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 10).Empty())
	assert.True(t, NewRect(0, 0, 10, 0).Empty())
	assert.True(t, NewRect(0, 0, -1, 10).Empty())
	assert.True(t, NewRect(0, 0, math.NaN(), 10).Empty())
	assert.False(t, NewRect(0, 0, 1, 1).Empty())
	assert.Equal(t, 0.0, NewRect(0, 0, -4, 10).Area())
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	in := a.Intersection(NewRect(5, 6, 10, 10))
	assert.Equal(t, Rect{X: 5, Y: 6, W: 5, H: 4}, in)

	out := a.Intersection(NewRect(20, 20, 5, 5))
	assert.True(t, out.Empty())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separate horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"separate vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"shared horizontal edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"sub-pixel overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 10, 10), true},
		{"zero width", NewRect(5, 0, 0, 10), NewRect(0, 0, 10, 10), false},
		{"zero height", NewRect(0, 5, 10, 0), NewRect(0, 0, 10, 10), false},
		{"identical", NewRect(3, 3, 4, 4), NewRect(3, 3, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.expected, Overlaps(tt.b, tt.a), "Overlaps must be symmetric")
		})
	}
}

func TestOverlapsSymmetricGrid(t *testing.T) {
	base := NewRect(10, 10, 8, 12)
	for x := -2.0; x <= 22; x += 0.75 {
		for y := -4.0; y <= 26; y += 1.25 {
			for _, size := range []cp.Vector{{X: 4, Y: 4}, {X: 16, Y: 2}, {X: 0, Y: 6}, {X: 30, Y: 30}} {
				other := RectFrom(cp.Vector{X: x, Y: y}, size)
				assert.Equal(t, Overlaps(base, other), Overlaps(other, base), "x=%v y=%v size=%v", x, y, size)
			}
		}
	}
}
