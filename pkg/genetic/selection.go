package genetic

import (
	"math/rand"

	"github.com/kmilcz/chargeevolve-go/pkg/population"
)

// SelectParent draws a parent uniformly, with replacement, from the top
// half of a sorted population. The same member may serve as both parents
// of one child and may be reused across children within a generation.
func SelectParent(sorted *population.Population, rng *rand.Rand) population.Configuration {
	pool := sorted.TopHalf()
	return pool[rng.Intn(len(pool))].Config
}
