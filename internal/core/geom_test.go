package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(680, 0, 120, 25)

	assert.True(t, r.Contains(700, 10))
	assert.True(t, r.Contains(680, 0), "top-left corner is inside")
	assert.False(t, r.Contains(800, 10), "right edge is exclusive")
	assert.False(t, r.Contains(700, 25), "bottom edge is exclusive")
}

func TestRectAround(t *testing.T) {
	r := RectAround(100, 50, 16, 16)

	assert.Equal(t, 92.0, r.Left())
	assert.Equal(t, 42.0, r.Top())
	assert.Equal(t, 108.0, r.Right())
	assert.Equal(t, 58.0, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 50.0, cy)
}

func TestFirstIntersecting(t *testing.T) {
	rects := []RectF{
		NewRectF(0, 0, 10, 10),
		NewRectF(20, 0, 10, 10),
		NewRectF(25, 0, 10, 10),
	}
	id := func(r RectF) RectF { return r }

	tests := []struct {
		name  string
		query RectF
		want  int
	}{
		{"no hit", NewRectF(12, 0, 4, 4), -1},
		{"single hit", NewRectF(2, 2, 4, 4), 0},
		{"first of two hits wins", NewRectF(26, 2, 2, 2), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FirstIntersecting(tc.query, rects, id))
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max), "ClampF(%v, %v, %v)", tc.val, tc.min, tc.max)
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3, Max(3, -1))
	assert.Equal(t, 0, Max(-2, 0))
}
