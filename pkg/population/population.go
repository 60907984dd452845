package population

import (
	"sort"
)

// Scored pairs a configuration with its cached energy. The energy is
// derived from the configuration and is recomputed whenever the
// configuration changes, never adjusted on its own.
type Scored struct {
	Energy float64
	Config Configuration
}

// Population is one generation's ordered collection of scored
// configurations. Generations are immutable snapshots; breeding builds a
// fresh Population rather than mutating the previous one.
type Population struct {
	Members []Scored
}

// New wraps pre-scored members into a population
func New(members []Scored) *Population {
	return &Population{Members: members}
}

func (p *Population) Len() int {
	return len(p.Members)
}

// Sort orders members ascending by energy. The sort is stable so ties keep
// their original order, which also makes Best deterministic.
func (p *Population) Sort() {
	sort.SliceStable(p.Members, func(i, j int) bool {
		return p.Members[i].Energy < p.Members[j].Energy
	})
}

// Best returns the lowest-energy member. Call after Sort.
func (p *Population) Best() Scored {
	return p.Members[0]
}

// TopHalf returns the parent pool: the best floor(len/2) members of a
// sorted population.
func (p *Population) TopHalf() []Scored {
	return p.Members[:len(p.Members)/2]
}

// MeanEnergy returns the average energy across the population
func (p *Population) MeanEnergy() float64 {
	if len(p.Members) == 0 {
		return 0
	}
	var total float64
	for _, m := range p.Members {
		total += m.Energy
	}
	return total / float64(len(p.Members))
}
