package types

import (
	"time"
)

// Config represents the main configuration
type Config struct {
	Region    RegionConfig    `yaml:"region" json:"region"`
	Evolution EvolutionConfig `yaml:"evolution" json:"evolution"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// RegionConfig describes the bounded region the charges are confined to.
// Shape selects the variant; only the dimensions of the selected variant
// are consulted.
type RegionConfig struct {
	Shape  string  `yaml:"shape" json:"shape"`
	Radius float64 `yaml:"radius" json:"radius"`
	SemiX  float64 `yaml:"semi_axis_x" json:"semi_axis_x"`
	SemiY  float64 `yaml:"semi_axis_y" json:"semi_axis_y"`
	Scale  float64 `yaml:"scale" json:"scale"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// EvolutionConfig holds the tunables of the genetic search
type EvolutionConfig struct {
	Charges        int     `yaml:"charges" json:"charges"`
	PopulationSize int     `yaml:"population_size" json:"population_size"`
	Generations    int     `yaml:"generations" json:"generations"`
	EliteCount     int     `yaml:"elite_count" json:"elite_count"`
	MutationRate   float64 `yaml:"mutation_rate" json:"mutation_rate"`
	MutationScale  float64 `yaml:"mutation_scale" json:"mutation_scale"`
	// MaxAttempts bounds the rejection-sampling loops; 0 means unbounded.
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts"`
	// Seed for the run RNG; 0 picks a random seed.
	Seed int64 `yaml:"seed" json:"seed"`
	// ParallelWorkers for energy scoring; values <= 1 score sequentially.
	ParallelWorkers int `yaml:"parallel_workers" json:"parallel_workers"`
}

// OutputConfig controls reporting and plotting
type OutputConfig struct {
	Dir         string `yaml:"dir" json:"dir"`
	PlotFile    string `yaml:"plot_file" json:"plot_file"`
	ShowIndices bool   `yaml:"show_indices" json:"show_indices"`
	Verbose     bool   `yaml:"verbose" json:"verbose"`
}

// GenerationStats records summary statistics for one generation,
// measured before breeding.
type GenerationStats struct {
	Generation int           `json:"generation"`
	BestEnergy float64       `json:"best_energy"`
	MeanEnergy float64       `json:"mean_energy"`
	Duration   time.Duration `json:"duration"`
}

// RunStats tracks aggregate statistics about an evolution run
type RunStats struct {
	TotalEvaluations int64         `json:"total_evaluations"`
	TotalOffspring   int64         `json:"total_offspring"`
	BestEnergy       float64       `json:"best_energy"`
	Duration         time.Duration `json:"duration"`
	StartTime        time.Time     `json:"start_time"`
	LastUpdate       time.Time     `json:"last_update"`
}
