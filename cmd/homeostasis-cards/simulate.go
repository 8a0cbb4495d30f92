package main

import (
	"context"
	"fmt"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
	"github.com/pendraco002/homeostasis-cards/internal/service"
	"github.com/pendraco002/homeostasis-cards/internal/sim"
)

type simOptions struct {
	Difficulty game.Difficulty
	Policy     string
	Runs       int
	Workers    int
	MaxTurns   int
	Seed       int64
}

// runSimulation plays a batch of sessions under the chosen policy and prints
// the aggregate outcome. The per-run session rows stay in the database so
// individual matches can be inspected afterwards.
func runSimulation(ctx context.Context, repo service.SessionRepo, content *config.Content, opts simOptions) {
	factory, err := sim.FactoryFor(opts.Policy)
	if err != nil {
		logging.Fatal("Unknown policy", err, logging.Fields{constants.LogFieldPolicy: opts.Policy})
	}

	runner := &sim.Runner{
		Repo:       repo,
		Content:    content,
		Difficulty: opts.Difficulty,
		Policy:     factory,
		Runs:       opts.Runs,
		MaxTurns:   opts.MaxTurns,
		Workers:    opts.Workers,
		Seed:       opts.Seed,
	}

	logging.Info("simulation started", logging.Fields{
		constants.LogFieldPolicy:     opts.Policy,
		constants.LogFieldDifficulty: string(opts.Difficulty),
		constants.LogFieldCount:      opts.Runs,
	})

	summary, _, err := runner.Run(ctx)
	if err != nil {
		logging.Fatal("Simulation failed", err, nil)
	}

	fmt.Printf("policy %s on %s: %d runs\n", opts.Policy, opts.Difficulty, summary.Runs)
	fmt.Printf("  victories:  %d\n", summary.Victories)
	fmt.Printf("  defeats:    %d\n", summary.Defeats)
	fmt.Printf("  unfinished: %d\n", summary.Unfinished)
	fmt.Printf("  events:     %d\n", summary.Events)
	fmt.Printf("  avg turns:  %.1f\n", summary.AvgTurns)
	fmt.Printf("  avg score:  %.1f\n", summary.AvgScore)
}
