// Package energy computes the Coulomb-like potential of a charge
// configuration: the sum of 1/d over all unordered pairs. Lower is better;
// this is the sole fitness signal of the evolutionary search.
package energy

import (
	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
)

// Evaluator scores configurations. Pairs closer than MinDistance
// contribute MaxPairEnergy instead of 1/d, converting a would-be division
// by near-zero into a large finite penalty that still sorts last.
type Evaluator struct {
	MinDistance float64
}

// NewEvaluator returns an evaluator with the standard near-coincidence
// threshold.
func NewEvaluator() *Evaluator {
	return &Evaluator{MinDistance: constants.MinPairDistance}
}

// Energy returns the total pairwise potential of the configuration.
// O(N²) in the number of charges; always >= 0.
func (e *Evaluator) Energy(points []geometry.Point) float64 {
	var total float64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Distance(points[j])
			if d < e.MinDistance {
				total += constants.MaxPairEnergy
				continue
			}
			total += 1 / d
		}
	}
	return total
}
