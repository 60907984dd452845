// Package genetic implements the variation and selection operators of the
// charge-placement search: single-point crossover, Gaussian in-region
// mutation, and uniform top-half parent selection.
package genetic

import (
	"fmt"
	"math/rand"

	"github.com/kmilcz/chargeevolve-go/pkg/population"
)

// Crossover performs single-point crossover. The cut index is drawn
// uniformly from [1, N-1], so the child always carries charges from both
// parents. Parents are assumed region-valid and are not re-checked here.
func Crossover(parent1, parent2 population.Configuration, rng *rand.Rand) (population.Configuration, error) {
	n := len(parent1)
	if n < 2 {
		return nil, fmt.Errorf("crossover needs at least 2 charges, got %d", n)
	}
	if len(parent2) != n {
		return nil, fmt.Errorf("crossover parents differ in length: %d vs %d", n, len(parent2))
	}

	cut := 1 + rng.Intn(n-1)
	child := make(population.Configuration, n)
	copy(child[:cut], parent1[:cut])
	copy(child[cut:], parent2[cut:])
	return child, nil
}
