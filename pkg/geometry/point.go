package geometry

import (
	"fmt"
	"math"
)

// Point is an immutable 2-D coordinate. Equality is exact coordinate
// equality.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q. Equal points
// short-circuit to exactly 0 so self-distance carries no floating noise.
func (p Point) Distance(q Point) float64 {
	if p == q {
		return 0
	}
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("X: %g, Y: %g", p.X, p.Y)
}
