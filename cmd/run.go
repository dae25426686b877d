package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tilesched/tilesched/config"
	"github.com/tilesched/tilesched/gallery"
	"github.com/tilesched/tilesched/planner"
	"github.com/tilesched/tilesched/timemanager"
)

// runRound loads a config file and a user-state payload, decodes the
// probability oracle, runs one scheduling round, and prints the plan.
func runRound(_ *cobra.Command, _ []string) error {
	configureLogging()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Errorf("loading config: %v", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		logrus.Errorf("invalid config: %v", err)
		return err
	}

	layout, err := gallery.NewLayout(cfg.Dim, cfg.Factor)
	if err != nil {
		logrus.Errorf("constructing layout: %v", err)
		return err
	}

	raw, err := os.ReadFile(userStatePath)
	if err != nil {
		logrus.Errorf("reading user state: %v", err)
		return err
	}
	var userState gallery.UserState
	if err := json.Unmarshal(raw, &userState); err != nil {
		logrus.Errorf("parsing user state: %v", err)
		return err
	}

	oracle, err := layout.DecodeDist(userState)
	if err != nil {
		logrus.Errorf("decoding distribution: %v", err)
		return err
	}

	tm := timemanager.NewShared(&timemanager.Linear{PerSlotMs: cfg.PerSlotDelayMs})
	sampler := planner.NewSeededSampler(cfg.Seed)
	metrics := planner.NewMetrics()
	oracle.OnNegativeArea = metrics.RecordNegativeArea

	roundID := planner.NewRoundID()

	plannerCfg := planner.Config{
		CacheSize:      cfg.CacheSize,
		Utility:        cfg.Utility,
		BlocksPerQuery: cfg.BlocksPerQuery,
		TotalQueries:   layout.TotalQueries(),
		Batch:          cfg.Batch,
		TM:             tm,
		Sampler:        sampler,
	}

	p, err := planner.NewPlanner(cfg.Planner, plannerCfg, cfg.NumQueriesSearched, metrics)
	if err != nil {
		logrus.Errorf("constructing planner: %v", err)
		return err
	}

	state := make(planner.CacheState, layout.TotalQueries())
	plan := p.RunScheduler(oracle, state, startIdx)

	logrus.Infof("round %s complete: %d tiles scheduled (%s)", roundID, len(plan), metrics.String())
	fmt.Println(plan)
	return nil
}
