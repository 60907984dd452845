package geometry

import (
	"fmt"
	"math"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/internal/types"
)

// Box is an axis-aligned bounding box, used as the rejection-sampling
// envelope of a region.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Region is the containment test the sampler and the mutation operator
// work against. Contains must be pure and total. Boundary returns a closed
// polyline outlining the region for plotting; segments is the resolution
// hint for curved outlines.
type Region interface {
	Contains(p Point) bool
	Bounds() Box
	Boundary(segments int) []Point
	Name() string
}

// Disk is the region x² + y² ≤ r². The boundary itself is inside.
type Disk struct {
	Radius float64
}

func (d Disk) Contains(p Point) bool {
	return p.X*p.X+p.Y*p.Y <= d.Radius*d.Radius
}

func (d Disk) Bounds() Box {
	return Box{MinX: -d.Radius, MinY: -d.Radius, MaxX: d.Radius, MaxY: d.Radius}
}

func (d Disk) Boundary(segments int) []Point {
	return arc(d.Radius, d.Radius, segments)
}

func (d Disk) Name() string { return constants.ShapeDisk }

// Ellipse is the region (x/a)² + (y/b)² ≤ s².
type Ellipse struct {
	SemiX float64
	SemiY float64
	Scale float64
}

func (e Ellipse) Contains(p Point) bool {
	nx := p.X / e.SemiX
	ny := p.Y / e.SemiY
	return nx*nx+ny*ny <= e.Scale*e.Scale
}

func (e Ellipse) Bounds() Box {
	return Box{
		MinX: -e.SemiX * e.Scale, MinY: -e.SemiY * e.Scale,
		MaxX: e.SemiX * e.Scale, MaxY: e.SemiY * e.Scale,
	}
}

func (e Ellipse) Boundary(segments int) []Point {
	return arc(e.SemiX*e.Scale, e.SemiY*e.Scale, segments)
}

func (e Ellipse) Name() string { return constants.ShapeEllipse }

// Rect is the open region |x| < w/2, |y| < h/2, centered at the origin.
// Unlike the disk and the ellipse, points on the boundary are outside.
type Rect struct {
	Width  float64
	Height float64
}

func (r Rect) Contains(p Point) bool {
	return math.Abs(p.X) < r.Width/2 && math.Abs(p.Y) < r.Height/2
}

func (r Rect) Bounds() Box {
	return Box{MinX: -r.Width / 2, MinY: -r.Height / 2, MaxX: r.Width / 2, MaxY: r.Height / 2}
}

func (r Rect) Boundary(segments int) []Point {
	w, h := r.Width/2, r.Height/2
	return []Point{
		{X: -w, Y: -h},
		{X: w, Y: -h},
		{X: w, Y: h},
		{X: -w, Y: h},
		{X: -w, Y: -h},
	}
}

func (r Rect) Name() string { return constants.ShapeRect }

// arc traces a closed ellipse outline with the given semi-axes.
func arc(a, b float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	points := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = Point{X: a * math.Cos(t), Y: b * math.Sin(t)}
	}
	return points
}

// FromConfig builds the region selected by the configuration
func FromConfig(cfg types.RegionConfig) (Region, error) {
	switch cfg.Shape {
	case constants.ShapeDisk:
		if cfg.Radius <= 0 {
			return nil, fmt.Errorf("disk radius must be positive, got %g", cfg.Radius)
		}
		return Disk{Radius: cfg.Radius}, nil

	case constants.ShapeEllipse:
		if cfg.SemiX <= 0 || cfg.SemiY <= 0 {
			return nil, fmt.Errorf("ellipse semi-axes must be positive, got %g x %g", cfg.SemiX, cfg.SemiY)
		}
		scale := cfg.Scale
		if scale == 0 {
			scale = constants.DefaultEllipseScale
		}
		if scale < 0 {
			return nil, fmt.Errorf("ellipse scale must be positive, got %g", scale)
		}
		return Ellipse{SemiX: cfg.SemiX, SemiY: cfg.SemiY, Scale: scale}, nil

	case constants.ShapeRect, "rectangle":
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return nil, fmt.Errorf("rectangle dimensions must be positive, got %g x %g", cfg.Width, cfg.Height)
		}
		return Rect{Width: cfg.Width, Height: cfg.Height}, nil

	default:
		return nil, fmt.Errorf("unknown region shape: %q", cfg.Shape)
	}
}
