package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
	"github.com/pendraco002/homeostasis-cards/internal/version"
)

func main() {
	// Environment settings carry the file locations and the defaults for
	// the batch flags. Paths may be provided via HOMEOSTASIS_CONTENT /
	// HOMEOSTASIS_DB or default to files in the current working directory.
	settings, err := config.ParseSettings()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	logging.SetLevel(logging.ParseLevel(settings.LogLevel))

	var (
		mode       string
		difficulty string
		policy     string
		runs       int
		workers    int
		maxTurns   int
		seed       int64
		watch      time.Duration
	)

	flag.StringVar(&mode, "mode", "simulate", "operation mode (simulate or sweep)")
	flag.StringVar(&difficulty, "difficulty", "medium", "difficulty tier to play (easy, medium, hard)")
	flag.StringVar(&policy, "policy", "greedy", "card selection policy (random or greedy)")
	flag.IntVar(&runs, "runs", settings.SimRuns, "number of sessions to play")
	flag.IntVar(&workers, "workers", settings.SimWorkers, "sessions in flight at once")
	flag.IntVar(&maxTurns, "max-turns", 200, "per-session turn cap")
	flag.Int64Var(&seed, "seed", 0, "base random seed for policies (0 = time-based)")
	flag.DurationVar(&watch, "watch", 0, "repeat the sweep at this interval (0 = single pass)")
	flag.Parse()

	logEnvOverrides([]string{
		constants.EnvContentFile,
		constants.EnvDatabasePath,
		constants.EnvLogLevel,
		constants.EnvIdleTimeout,
		constants.EnvSimRuns,
		constants.EnvSimWorkers,
	})

	logging.Info("homeostasis-cards starting", logging.Fields{
		constants.LogFieldVersion: version.Version,
		constants.LogFieldMode:    mode,
	})

	content := loadContentOrExit(settings.ContentFile)
	repo := createRepositoryOrExit(settings.DatabasePath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	switch mode {
	case "simulate":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		runSimulation(ctx, repo, content, simOptions{
			Difficulty: parseDifficultyOrExit(content, difficulty),
			Policy:     policy,
			Runs:       runs,
			Workers:    workers,
			MaxTurns:   maxTurns,
			Seed:       seed,
		})
	case "sweep":
		if watch > 0 {
			watchIdleSessions(ctx, repo, settings.IdleTimeout, watch)
		} else if err := sweepIdleSessions(repo, settings.IdleTimeout); err != nil {
			logging.Fatal("Idle sweep failed", err, nil)
		}
	default:
		logging.Fatal("Unknown mode", nil, logging.Fields{constants.LogFieldMode: mode})
	}
}

func logEnvOverrides(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) != "" {
			logging.Info("Environment override applied", logging.Fields{"var": v})
		}
	}
}
