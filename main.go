package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/pkg/config"
	"github.com/kmilcz/chargeevolve-go/pkg/engine"
	"github.com/kmilcz/chargeevolve-go/pkg/report"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	initConfig := flag.Bool("init-config", false, "write a default config file and exit")
	shape := flag.String("shape", "", "region shape (disk, ellipse, rect)")
	charges := flag.Int("charges", 0, "number of charges")
	populationSize := flag.Int("population", 0, "population size")
	generations := flag.Int("generations", 0, "number of generations")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	workers := flag.Int("workers", 0, "parallel scoring workers (0 = sequential)")
	outDir := flag.String("out", "", "output directory for reports and plots")
	plotFile := flag.String("plot", "", "plot file name (empty = default, \"none\" = skip)")
	labels := flag.Bool("labels", false, "annotate plotted charges with their index")
	verbose := flag.Bool("verbose", false, "verbose per-generation output")
	flag.Parse()

	if *initConfig {
		path := *configPath
		if path == "" {
			path = constants.DefaultConfigFile
		}
		if err := config.CreateDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(constants.ExitError)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		os.Exit(constants.ExitSuccess)
	}

	manager := config.NewManager()
	if *configPath != "" {
		if err := manager.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(constants.ExitError)
		}
	}
	cfg := manager.GetConfig()

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Region.Shape = *shape
		case "charges":
			cfg.Evolution.Charges = *charges
		case "population":
			cfg.Evolution.PopulationSize = *populationSize
		case "generations":
			cfg.Evolution.Generations = *generations
		case "seed":
			cfg.Evolution.Seed = *seed
		case "workers":
			cfg.Evolution.ParallelWorkers = *workers
		case "out":
			cfg.Output.Dir = *outDir
		case "plot":
			cfg.Output.PlotFile = *plotFile
		case "labels":
			cfg.Output.ShowIndices = *labels
		case "verbose":
			cfg.Output.Verbose = *verbose
		}
	})

	e, err := engine.New(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(constants.ExitError)
	}

	result, err := e.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(constants.ExitError)
	}

	r := report.New(*cfg, result)
	r.WriteConsole(os.Stdout)

	if _, err := r.WriteJSON(cfg.Output.Dir); err != nil {
		logrus.WithError(err).Warn("Failed to write run report")
	}

	if cfg.Output.PlotFile != "" && cfg.Output.PlotFile != "none" {
		path := filepath.Join(cfg.Output.Dir, cfg.Output.PlotFile)
		if err := report.SavePlot(path, e.Region(), result.Best, cfg.Output.ShowIndices); err != nil {
			logrus.WithError(err).Warn("Failed to save plot")
		} else {
			fmt.Printf("Wrote plot to %s\n", path)
		}
	}

	os.Exit(constants.ExitSuccess)
}
