// Package report presents the outcome of a run to the outside world:
// console output, a JSON run report on disk, and a plot of the best
// configuration. The evolutionary core has no dependency on any of it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/internal/types"
	"github.com/kmilcz/chargeevolve-go/pkg/engine"
)

// ChargePoint is the JSON shape of one charge position
type ChargePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Report captures everything worth keeping from a finished run
type Report struct {
	ID          string                  `json:"id"`
	Version     string                  `json:"version"`
	CreatedAt   time.Time               `json:"created_at"`
	Config      types.Config            `json:"config"`
	Seed        int64                   `json:"seed"`
	BestEnergy  float64                 `json:"best_energy"`
	Best        []ChargePoint           `json:"best"`
	Generations []types.GenerationStats `json:"generations"`
	Stats       types.RunStats          `json:"stats"`
}

// New builds a report from a run result
func New(cfg types.Config, result *engine.Result) *Report {
	best := make([]ChargePoint, len(result.Best))
	for i, p := range result.Best {
		best[i] = ChargePoint{X: p.X, Y: p.Y}
	}

	return &Report{
		ID:          uuid.New().String(),
		Version:     constants.Version,
		CreatedAt:   time.Now(),
		Config:      cfg,
		Seed:        result.Seed,
		BestEnergy:  result.Energy,
		Best:        best,
		Generations: result.Generations,
		Stats:       result.Stats,
	}
}

// WriteConsole prints the human-readable run summary
func (r *Report) WriteConsole(w io.Writer) {
	fmt.Fprintf(w, "\nBest configuration (%s region, %d charges):\n",
		r.Config.Region.Shape, len(r.Best))
	for i, p := range r.Best {
		fmt.Fprintf(w, "  %2d: X: %g, Y: %g\n", i, p.X, p.Y)
	}
	fmt.Fprintf(w, "Energy: %g\n", r.BestEnergy)
	fmt.Fprintf(w, "Seed: %d, generations: %d, duration: %s\n",
		r.Seed, len(r.Generations), r.Stats.Duration)
}

// WriteJSON writes the report into dir as run_<id>.json and refreshes
// latest.json, returning the path of the run file.
func (r *Report) WriteJSON(dir string) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	runID := r.ID
	if len(runID) > 8 {
		runID = runID[:8]
	}
	reportFile := filepath.Join(dir, fmt.Sprintf("run_%s.json", runID))
	if err := os.WriteFile(reportFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	latestFile := filepath.Join(dir, constants.LatestReport)
	if err := os.WriteFile(latestFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write latest report: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run":    runID,
		"energy": r.BestEnergy,
		"file":   reportFile,
	}).Info("Saved run report")

	return reportFile, nil
}
