// Package engine drives the evolutionary search: it builds the initial
// population, runs a fixed number of generations of scoring, elitism and
// breeding, and returns the best configuration found.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/internal/types"
	"github.com/kmilcz/chargeevolve-go/pkg/energy"
	"github.com/kmilcz/chargeevolve-go/pkg/genetic"
	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
	"github.com/kmilcz/chargeevolve-go/pkg/population"
)

// Engine runs the evolutionary search for one fixed parameter set
type Engine struct {
	cfg       types.Config
	region    geometry.Region
	sampler   *population.Sampler
	evaluator *energy.Evaluator
	mutator   *genetic.Mutator
	rng       *rand.Rand
	seed      int64
	logger    *logrus.Logger
}

// Result is the single output of a run: the best configuration of the
// final generation, its energy, and per-generation statistics.
type Result struct {
	Best        population.Configuration
	Energy      float64
	Seed        int64
	Region      geometry.Region
	Generations []types.GenerationStats
	Stats       types.RunStats
}

// New validates the configuration and assembles an engine. A zero seed is
// replaced with a random one; a zero elite count is derived as
// floor(0.1 × population size).
func New(cfg types.Config) (*Engine, error) {
	region, err := geometry.FromConfig(cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	if cfg.Evolution.Charges < 2 {
		return nil, fmt.Errorf("at least 2 charges are required, got %d", cfg.Evolution.Charges)
	}
	if cfg.Evolution.PopulationSize < 2 {
		return nil, fmt.Errorf("population size must be at least 2, got %d", cfg.Evolution.PopulationSize)
	}
	if cfg.Evolution.Generations < 1 {
		return nil, fmt.Errorf("generations must be positive, got %d", cfg.Evolution.Generations)
	}
	if cfg.Evolution.MutationRate < 0 || cfg.Evolution.MutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be in [0, 1], got %g", cfg.Evolution.MutationRate)
	}
	if cfg.Evolution.MutationScale <= 0 {
		return nil, fmt.Errorf("mutation scale must be positive, got %g", cfg.Evolution.MutationScale)
	}
	if cfg.Evolution.EliteCount == 0 {
		cfg.Evolution.EliteCount = int(constants.DefaultEliteFraction * float64(cfg.Evolution.PopulationSize))
	}
	if cfg.Evolution.EliteCount < 0 || cfg.Evolution.EliteCount >= cfg.Evolution.PopulationSize {
		return nil, fmt.Errorf("elite count must be in [0, population), got %d", cfg.Evolution.EliteCount)
	}

	seed := cfg.Evolution.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := logrus.New()
	if cfg.Output.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Engine{
		cfg:       cfg,
		region:    region,
		sampler:   population.NewSampler(region, rng, cfg.Evolution.MaxAttempts),
		evaluator: energy.NewEvaluator(),
		mutator: &genetic.Mutator{
			Region:      region,
			Rate:        cfg.Evolution.MutationRate,
			Scale:       cfg.Evolution.MutationScale,
			MaxAttempts: cfg.Evolution.MaxAttempts,
		},
		rng:    rng,
		seed:   seed,
		logger: logger,
	}, nil
}

// Region returns the containment region the engine searches in
func (e *Engine) Region() geometry.Region {
	return e.region
}

// Run executes the full evolutionary loop. It always runs exactly the
// configured number of generations; there is no early stopping.
func (e *Engine) Run() (*Result, error) {
	evo := e.cfg.Evolution
	start := time.Now()

	e.logger.WithFields(logrus.Fields{
		"region":     e.region.Name(),
		"charges":    evo.Charges,
		"population": evo.PopulationSize,
		"elites":     evo.EliteCount,
		"seed":       e.seed,
	}).Info("Starting evolution")

	configs, err := e.sampler.Configurations(evo.PopulationSize, evo.Charges)
	if err != nil {
		return nil, fmt.Errorf("initializing population: %w", err)
	}

	result := &Result{
		Seed:   e.seed,
		Region: e.region,
		Stats:  types.RunStats{StartTime: start},
	}

	bestSoFar := 0.0
	for g := 0; g < evo.Generations; g++ {
		genStart := time.Now()

		pop := e.score(configs)
		pop.Sort()

		stats := types.GenerationStats{
			Generation: g,
			BestEnergy: pop.Best().Energy,
			MeanEnergy: pop.MeanEnergy(),
		}

		if g == 0 || stats.BestEnergy < bestSoFar {
			bestSoFar = stats.BestEnergy
			e.logger.WithFields(logrus.Fields{
				"generation": g,
				"energy":     stats.BestEnergy,
			}).Info("New best configuration found")
		}

		configs, err = e.breed(pop)
		if err != nil {
			return nil, fmt.Errorf("breeding generation %d: %w", g, err)
		}

		stats.Duration = time.Since(genStart)
		result.Generations = append(result.Generations, stats)
		result.Stats.TotalEvaluations += int64(pop.Len())
		result.Stats.TotalOffspring += int64(evo.PopulationSize - evo.EliteCount)

		e.logger.WithFields(logrus.Fields{
			"generation": g,
			"best":       stats.BestEnergy,
			"mean":       stats.MeanEnergy,
			"duration":   stats.Duration,
		}).Debug("Generation completed")
	}

	final := e.score(configs)
	final.Sort()
	best := final.Best()

	result.Best = best.Config.Clone()
	result.Energy = best.Energy
	result.Stats.TotalEvaluations += int64(final.Len())
	result.Stats.BestEnergy = best.Energy
	result.Stats.Duration = time.Since(start)
	result.Stats.LastUpdate = time.Now()

	e.logger.WithFields(logrus.Fields{
		"generations": evo.Generations,
		"energy":      result.Energy,
		"duration":    result.Stats.Duration,
	}).Info("Evolution completed")

	return result, nil
}

// breed builds the next generation: the elites survive verbatim, then
// crossover plus mutation fills the remaining slots one offspring at a
// time.
func (e *Engine) breed(sorted *population.Population) ([]population.Configuration, error) {
	evo := e.cfg.Evolution

	next := make([]population.Configuration, 0, evo.PopulationSize)
	for i := 0; i < evo.EliteCount; i++ {
		next = append(next, sorted.Members[i].Config.Clone())
	}

	for len(next) < evo.PopulationSize {
		parent1 := genetic.SelectParent(sorted, e.rng)
		parent2 := genetic.SelectParent(sorted, e.rng)

		child, err := genetic.Crossover(parent1, parent2, e.rng)
		if err != nil {
			return nil, err
		}
		child, err = e.mutator.Mutate(child, e.rng)
		if err != nil {
			return nil, err
		}
		next = append(next, child)
	}

	return next, nil
}

// score evaluates every configuration. With parallel workers the results
// are written by index and scoring consumes no randomness, so seeded runs
// stay bit-identical regardless of worker count.
func (e *Engine) score(configs []population.Configuration) *population.Population {
	members := make([]population.Scored, len(configs))

	workers := e.cfg.Evolution.ParallelWorkers
	if workers <= 1 {
		for i, config := range configs {
			members[i] = population.Scored{Energy: e.evaluator.Energy(config), Config: config}
		}
		return population.New(members)
	}

	jobs := make(chan int, len(configs))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				members[i] = population.Scored{Energy: e.evaluator.Energy(configs[i]), Config: configs[i]}
			}
		}()
	}
	for i := range configs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return population.New(members)
}
