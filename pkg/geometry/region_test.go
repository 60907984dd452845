package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmilcz/chargeevolve-go/internal/types"
)

func TestDiskContains(t *testing.T) {
	d := Disk{Radius: 1}

	assert.True(t, d.Contains(Point{X: 0, Y: 0}))
	assert.True(t, d.Contains(Point{X: 0.5, Y: -0.5}))
	// The disk boundary is inside (closed region).
	assert.True(t, d.Contains(Point{X: 1, Y: 0}))
	assert.True(t, d.Contains(Point{X: 0, Y: -1}))

	assert.False(t, d.Contains(Point{X: 1.0001, Y: 0}))
	assert.False(t, d.Contains(Point{X: 0.9, Y: 0.9}))
}

func TestEllipseContains(t *testing.T) {
	e := Ellipse{SemiX: 2, SemiY: 1, Scale: 1}

	assert.True(t, e.Contains(Point{X: 0, Y: 0}))
	assert.True(t, e.Contains(Point{X: 2, Y: 0}))
	assert.True(t, e.Contains(Point{X: 0, Y: 1}))
	assert.False(t, e.Contains(Point{X: 2, Y: 1}))
	assert.False(t, e.Contains(Point{X: 0, Y: 1.01}))

	// Scale enlarges the containment test, not the axes ratio.
	scaled := Ellipse{SemiX: 2, SemiY: 1, Scale: 2}
	assert.True(t, scaled.Contains(Point{X: 4, Y: 0}))
	assert.False(t, scaled.Contains(Point{X: 4.01, Y: 0}))
}

func TestRectContains(t *testing.T) {
	r := Rect{Width: 2, Height: 1}

	assert.True(t, r.Contains(Point{X: 0, Y: 0}))
	assert.True(t, r.Contains(Point{X: 0.99, Y: 0.49}))
	// The rectangle boundary is outside (open region), unlike the disk.
	assert.False(t, r.Contains(Point{X: 1, Y: 0}))
	assert.False(t, r.Contains(Point{X: 0, Y: 0.5}))
	assert.False(t, r.Contains(Point{X: -1, Y: -0.5}))
}

func TestRegionBounds(t *testing.T) {
	assert.Equal(t, Box{MinX: -2, MinY: -2, MaxX: 2, MaxY: 2}, Disk{Radius: 2}.Bounds())
	assert.Equal(t, Box{MinX: -4, MinY: -2, MaxX: 4, MaxY: 2}, Ellipse{SemiX: 2, SemiY: 1, Scale: 2}.Bounds())
	assert.Equal(t, Box{MinX: -1, MinY: -0.5, MaxX: 1, MaxY: 0.5}, Rect{Width: 2, Height: 1}.Bounds())
}

func TestRegionBoundary(t *testing.T) {
	circle := Disk{Radius: 1}.Boundary(64)
	require.Len(t, circle, 65)
	// Closed outline
	assert.Equal(t, circle[0], circle[len(circle)-1])
	for _, p := range circle {
		assert.InDelta(t, 1.0, p.Distance(Point{}), 1e-12)
	}

	rect := Rect{Width: 2, Height: 1}.Boundary(64)
	require.Len(t, rect, 5)
	assert.Equal(t, rect[0], rect[len(rect)-1])
}

func TestFromConfig(t *testing.T) {
	region, err := FromConfig(types.RegionConfig{Shape: "disk", Radius: 1.5})
	require.NoError(t, err)
	assert.Equal(t, Disk{Radius: 1.5}, region)
	assert.Equal(t, "disk", region.Name())

	region, err = FromConfig(types.RegionConfig{Shape: "ellipse", SemiX: 2, SemiY: 1})
	require.NoError(t, err)
	// Scale defaults to 1 when omitted.
	assert.Equal(t, Ellipse{SemiX: 2, SemiY: 1, Scale: 1}, region)

	region, err = FromConfig(types.RegionConfig{Shape: "rect", Width: 2, Height: 1})
	require.NoError(t, err)
	assert.Equal(t, Rect{Width: 2, Height: 1}, region)

	// "rectangle" is accepted as an alias.
	region, err = FromConfig(types.RegionConfig{Shape: "rectangle", Width: 2, Height: 1})
	require.NoError(t, err)
	assert.Equal(t, Rect{Width: 2, Height: 1}, region)
}

func TestFromConfigErrors(t *testing.T) {
	_, err := FromConfig(types.RegionConfig{Shape: "triangle"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region shape")

	_, err = FromConfig(types.RegionConfig{Shape: "disk", Radius: 0})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "radius must be positive")

	_, err = FromConfig(types.RegionConfig{Shape: "ellipse", SemiX: 1, SemiY: -1})
	assert.Error(t, err)

	_, err = FromConfig(types.RegionConfig{Shape: "rect", Width: 2, Height: 0})
	assert.Error(t, err)
}
