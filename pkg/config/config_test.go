package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	manager := NewManager()
	assert.NotNil(t, manager)
	assert.NotNil(t, manager.config)
	assert.Empty(t, manager.path)
}

func TestLoadAndSave(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Test saving default config
	manager := NewManager()
	err := manager.Save(configPath)
	require.NoError(t, err)

	// Verify file was created
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	// Test loading config
	first := NewManager()
	err = first.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, first.GetPath())

	// Loading the same file twice yields identical configs (validation
	// derives the elite count deterministically).
	second := NewManager()
	err = second.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, first.config, second.config)
	assert.Equal(t, 10, first.config.Evolution.EliteCount) // floor(0.1 × 100)
}

func TestLoadNonExistentFile(t *testing.T) {
	manager := NewManager()
	err := manager.Load("/non/existent/file.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := "invalid: yaml: content: ["
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	manager := NewManager()
	err = manager.Load(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidation(t *testing.T) {
	manager := NewManager()
	config := manager.GetConfig()

	// Test valid config passes validation
	err := manager.validate(config)
	assert.NoError(t, err)

	// Test invalid region config
	originalShape := config.Region.Shape
	config.Region.Shape = "triangle"
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region shape")
	config.Region.Shape = originalShape

	originalRadius := config.Region.Radius
	config.Region.Radius = -1
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk radius must be positive")
	config.Region.Radius = originalRadius

	// Test invalid evolution config
	originalCharges := config.Evolution.Charges
	config.Evolution.Charges = 1
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 charges")
	config.Evolution.Charges = originalCharges

	originalPop := config.Evolution.PopulationSize
	config.Evolution.PopulationSize = 1
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "population size must be at least 2")
	config.Evolution.PopulationSize = originalPop

	originalRate := config.Evolution.MutationRate
	config.Evolution.MutationRate = 1.5
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutation rate must be in [0, 1]")
	config.Evolution.MutationRate = originalRate

	originalElites := config.Evolution.EliteCount
	config.Evolution.EliteCount = config.Evolution.PopulationSize
	err = manager.validate(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "elite count must be smaller")
	config.Evolution.EliteCount = originalElites
}

func TestValidationDerivesEliteCount(t *testing.T) {
	manager := NewManager()
	config := manager.GetConfig()

	config.Evolution.PopulationSize = 37
	config.Evolution.EliteCount = 0
	err := manager.validate(config)
	require.NoError(t, err)
	assert.Equal(t, 3, config.Evolution.EliteCount) // floor(0.1 × 37)

	// An explicit value is kept.
	config.Evolution.EliteCount = 5
	err = manager.validate(config)
	require.NoError(t, err)
	assert.Equal(t, 5, config.Evolution.EliteCount)
}

func TestEnvOverrides(t *testing.T) {
	manager := NewManager()
	config := getDefaultConfig()

	t.Setenv("CHARGEEVOLVE_SHAPE", "rect")
	t.Setenv("CHARGEEVOLVE_CHARGES", "20")
	t.Setenv("CHARGEEVOLVE_POPULATION_SIZE", "50")
	t.Setenv("CHARGEEVOLVE_GENERATIONS", "500")
	t.Setenv("CHARGEEVOLVE_SEED", "123")
	t.Setenv("CHARGEEVOLVE_OUTPUT_DIR", "custom-output")
	t.Setenv("CHARGEEVOLVE_VERBOSE", "true")

	err := manager.applyEnvOverrides(config)
	require.NoError(t, err)

	assert.Equal(t, "rect", config.Region.Shape)
	assert.Equal(t, 20, config.Evolution.Charges)
	assert.Equal(t, 50, config.Evolution.PopulationSize)
	assert.Equal(t, 500, config.Evolution.Generations)
	assert.Equal(t, int64(123), config.Evolution.Seed)
	assert.Equal(t, "custom-output", config.Output.Dir)
	assert.True(t, config.Output.Verbose)
}

func TestGetSetConfig(t *testing.T) {
	manager := NewManager()

	config := manager.GetConfig()
	assert.NotNil(t, config)

	newConfig := getDefaultConfig()
	newConfig.Evolution.Generations = 999
	manager.SetConfig(newConfig)

	updatedConfig := manager.GetConfig()
	assert.Equal(t, 999, updatedConfig.Evolution.Generations)
}

func TestCreateDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "default_config.yaml")

	err := CreateDefaultConfig(configPath)
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	manager := NewManager()
	err = manager.Load(configPath)
	require.NoError(t, err)

	config := manager.GetConfig()
	assert.NotNil(t, config)
	assert.Equal(t, "disk", config.Region.Shape)
	assert.Equal(t, 15, config.Evolution.Charges)         // DefaultCharges
	assert.Equal(t, 100, config.Evolution.PopulationSize) // DefaultPopulationSize
	assert.Equal(t, 300, config.Evolution.Generations)    // DefaultGenerations
	assert.Equal(t, 0.2, config.Evolution.MutationRate)   // DefaultMutationRate
	assert.Equal(t, 0.05, config.Evolution.MutationScale) // DefaultMutationScale
}
