package population

import (
	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
)

// Configuration is an ordered, fixed-length arrangement of charges. The
// slice index is the stable charge index used by crossover and mutation;
// it carries no other meaning.
type Configuration []geometry.Point

// Clone returns an independent copy. Configurations never share point
// storage across generations.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}
