package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistanceToSelf(t *testing.T) {
	// Self-distance must be exactly zero, even for coordinates where the
	// sqrt path would produce floating noise.
	points := []Point{
		{X: 0, Y: 0},
		{X: 0.1, Y: 0.2},
		{X: -1e9, Y: 3.14159},
		{X: 1e-300, Y: -1e-300},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, p.Distance(p))
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))

	c := Point{X: -1, Y: 0}
	d := Point{X: 1, Y: 0}
	assert.Equal(t, 2.0, c.Distance(d))
}

func TestPointString(t *testing.T) {
	p := Point{X: 0.5, Y: -0.25}
	assert.Equal(t, "X: 0.5, Y: -0.25", p.String())
}
