package population

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
)

// ErrMaxAttempts is returned when a bounded rejection-sampling loop runs
// out of attempts before finding a contained point.
var ErrMaxAttempts = errors.New("maximum sampling attempts exceeded")

// Sampler draws uniformly distributed points from a region by rejection
// sampling its bounding box.
//
// With maxAttempts 0 the loop is unbounded: a region whose interior is a
// vanishing fraction of its bounding box makes PointInside arbitrarily
// slow. That is a caller error, not something the sampler recovers from.
type Sampler struct {
	region      geometry.Region
	rng         *rand.Rand
	maxAttempts int
}

// NewSampler creates a sampler for the given region. maxAttempts bounds
// each rejection loop; 0 means unbounded.
func NewSampler(region geometry.Region, rng *rand.Rand, maxAttempts int) *Sampler {
	return &Sampler{region: region, rng: rng, maxAttempts: maxAttempts}
}

// PointInside returns a single point satisfying the region predicate
func (s *Sampler) PointInside() (geometry.Point, error) {
	b := s.region.Bounds()
	for attempt := 0; ; attempt++ {
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return geometry.Point{}, fmt.Errorf("sampling %s region after %d attempts: %w",
				s.region.Name(), s.maxAttempts, ErrMaxAttempts)
		}
		p := geometry.Point{
			X: b.MinX + s.rng.Float64()*(b.MaxX-b.MinX),
			Y: b.MinY + s.rng.Float64()*(b.MaxY-b.MinY),
		}
		if s.region.Contains(p) {
			return p, nil
		}
	}
}

// Configuration samples n independent points. Coincident points are
// permitted; the energy function penalizes them on its own.
func (s *Sampler) Configuration(n int) (Configuration, error) {
	config := make(Configuration, n)
	for i := range config {
		p, err := s.PointInside()
		if err != nil {
			return nil, err
		}
		config[i] = p
	}
	return config, nil
}

// Configurations samples a full unscored initial population of the given
// size, each member holding n charges.
func (s *Sampler) Configurations(size, n int) ([]Configuration, error) {
	configs := make([]Configuration, size)
	for i := range configs {
		config, err := s.Configuration(n)
		if err != nil {
			return nil, err
		}
		configs[i] = config
	}
	return configs, nil
}
