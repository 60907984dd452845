package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/internal/types"
)

// Manager handles configuration loading and validation
type Manager struct {
	config *types.Config
	path   string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: getDefaultConfig(),
	}
}

// Load loads configuration from a file
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	if err := m.applyEnvOverrides(config); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Validate configuration
	if err := m.validate(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	m.path = path
	return nil
}

// Save saves configuration to a file
func (m *Manager) Save(path string) error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *types.Config {
	return m.config
}

// SetConfig updates the configuration
func (m *Manager) SetConfig(config *types.Config) {
	m.config = config
}

// GetPath returns the configuration file path
func (m *Manager) GetPath() string {
	return m.path
}

// applyEnvOverrides applies environment variable overrides to the configuration
func (m *Manager) applyEnvOverrides(config *types.Config) error {
	if shape := os.Getenv("CHARGEEVOLVE_SHAPE"); shape != "" {
		config.Region.Shape = shape
	}
	if charges := os.Getenv("CHARGEEVOLVE_CHARGES"); charges != "" {
		var n int
		if _, err := fmt.Sscanf(charges, "%d", &n); err == nil {
			config.Evolution.Charges = n
		}
	}
	if popSize := os.Getenv("CHARGEEVOLVE_POPULATION_SIZE"); popSize != "" {
		var n int
		if _, err := fmt.Sscanf(popSize, "%d", &n); err == nil {
			config.Evolution.PopulationSize = n
		}
	}
	if generations := os.Getenv("CHARGEEVOLVE_GENERATIONS"); generations != "" {
		var n int
		if _, err := fmt.Sscanf(generations, "%d", &n); err == nil {
			config.Evolution.Generations = n
		}
	}
	if seed := os.Getenv("CHARGEEVOLVE_SEED"); seed != "" {
		var n int64
		if _, err := fmt.Sscanf(seed, "%d", &n); err == nil {
			config.Evolution.Seed = n
		}
	}
	if outputDir := os.Getenv("CHARGEEVOLVE_OUTPUT_DIR"); outputDir != "" {
		config.Output.Dir = outputDir
	}
	if verbose := os.Getenv("CHARGEEVOLVE_VERBOSE"); verbose != "" {
		config.Output.Verbose = strings.ToLower(verbose) == "true"
	}

	return nil
}

// validate validates the configuration
func (m *Manager) validate(config *types.Config) error {
	// Validate region configuration
	switch config.Region.Shape {
	case constants.ShapeDisk:
		if config.Region.Radius <= 0 {
			return fmt.Errorf("disk radius must be positive")
		}
	case constants.ShapeEllipse:
		if config.Region.SemiX <= 0 || config.Region.SemiY <= 0 {
			return fmt.Errorf("ellipse semi-axes must be positive")
		}
		if config.Region.Scale < 0 {
			return fmt.Errorf("ellipse scale must be positive")
		}
	case constants.ShapeRect, "rectangle":
		if config.Region.Width <= 0 || config.Region.Height <= 0 {
			return fmt.Errorf("rectangle dimensions must be positive")
		}
	default:
		return fmt.Errorf("unknown region shape: %q", config.Region.Shape)
	}

	// Validate evolution configuration
	if config.Evolution.Charges < 2 {
		return fmt.Errorf("at least 2 charges are required")
	}
	if config.Evolution.PopulationSize < 2 {
		return fmt.Errorf("population size must be at least 2")
	}
	if config.Evolution.Generations < 1 {
		return fmt.Errorf("generations must be positive")
	}
	if config.Evolution.MutationRate < 0 || config.Evolution.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0, 1]")
	}
	if config.Evolution.MutationScale <= 0 {
		return fmt.Errorf("mutation scale must be positive")
	}
	if config.Evolution.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must be non-negative")
	}
	if config.Evolution.ParallelWorkers < 0 {
		return fmt.Errorf("parallel workers must be non-negative")
	}

	// Derive the elite count when unset
	if config.Evolution.EliteCount == 0 {
		config.Evolution.EliteCount = int(constants.DefaultEliteFraction * float64(config.Evolution.PopulationSize))
	}
	if config.Evolution.EliteCount < 0 || config.Evolution.EliteCount >= config.Evolution.PopulationSize {
		return fmt.Errorf("elite count must be smaller than the population size")
	}

	// Validate paths
	if config.Output.Dir == "" {
		config.Output.Dir = constants.OutputDir
	}
	if config.Output.PlotFile == "" {
		config.Output.PlotFile = constants.DefaultPlot
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *types.Config {
	return &types.Config{
		Region: types.RegionConfig{
			Shape:  constants.ShapeDisk,
			Radius: constants.DefaultDiskRadius,
			SemiX:  constants.DefaultSemiAxisX,
			SemiY:  constants.DefaultSemiAxisY,
			Scale:  constants.DefaultEllipseScale,
			Width:  constants.DefaultRectWidth,
			Height: constants.DefaultRectHeight,
		},
		Evolution: types.EvolutionConfig{
			Charges:        constants.DefaultCharges,
			PopulationSize: constants.DefaultPopulationSize,
			Generations:    constants.DefaultGenerations,
			EliteCount:     0, // derived as floor(0.1 × population size)
			MutationRate:   constants.DefaultMutationRate,
			MutationScale:  constants.DefaultMutationScale,
			MaxAttempts:    0, // unbounded rejection sampling
			Seed:           0, // random seed
		},
		Output: types.OutputConfig{
			Dir:      constants.OutputDir,
			PlotFile: constants.DefaultPlot,
		},
	}
}

// CreateDefaultConfig creates a default configuration file
func CreateDefaultConfig(path string) error {
	manager := NewManager()
	return manager.Save(path)
}
