package genetic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
	"github.com/kmilcz/chargeevolve-go/pkg/population"
)

// ErrMaxAttempts is returned when a bounded mutation retry loop cannot
// land a perturbed charge inside the region.
var ErrMaxAttempts = errors.New("maximum mutation attempts exceeded")

// Mutator perturbs configurations. Each charge is independently perturbed
// with probability Rate by Gaussian offsets of standard deviation Scale,
// retrying fresh offsets from the original position until the result lies
// inside the region.
//
// MaxAttempts 0 leaves the retry loop unbounded; near-degenerate regions
// then make mutation arbitrarily slow.
type Mutator struct {
	Region      geometry.Region
	Rate        float64
	Scale       float64
	MaxAttempts int
}

// Mutate returns a fresh configuration; the input is never modified.
// Charges not selected for mutation are passed through unchanged.
func (m *Mutator) Mutate(config population.Configuration, rng *rand.Rand) (population.Configuration, error) {
	out := make(population.Configuration, len(config))
	for i, p := range config {
		if rng.Float64() > m.Rate {
			out[i] = p
			continue
		}

		moved, err := m.perturb(p, rng)
		if err != nil {
			return nil, err
		}
		out[i] = moved
	}
	return out, nil
}

// perturb resamples Gaussian offsets from the original point until the
// region accepts the result.
func (m *Mutator) perturb(p geometry.Point, rng *rand.Rand) (geometry.Point, error) {
	for attempt := 0; ; attempt++ {
		if m.MaxAttempts > 0 && attempt >= m.MaxAttempts {
			return geometry.Point{}, fmt.Errorf("perturbing charge in %s region after %d attempts: %w",
				m.Region.Name(), m.MaxAttempts, ErrMaxAttempts)
		}
		candidate := geometry.Point{
			X: p.X + rng.NormFloat64()*m.Scale,
			Y: p.Y + rng.NormFloat64()*m.Scale,
		}
		if m.Region.Contains(candidate) {
			return candidate, nil
		}
	}
}
