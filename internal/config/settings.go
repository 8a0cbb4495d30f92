package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the process-level knobs read from the environment. Game
// content lives in the JSON content file; these only locate it and tune the
// runtime around it.
type Settings struct {
	ContentFile  string        `env:"HOMEOSTASIS_CONTENT"     envDefault:"homeostasis_config.json"`
	DatabasePath string        `env:"HOMEOSTASIS_DB"          envDefault:"homeostasis.db"`
	LogLevel     string        `env:"HOMEOSTASIS_LOG_LEVEL"   envDefault:"info"`
	IdleTimeout  time.Duration `env:"HOMEOSTASIS_IDLE_TIMEOUT" envDefault:"30m"`
	SimRuns      int           `env:"HOMEOSTASIS_SIM_RUNS"    envDefault:"100"`
	SimWorkers   int           `env:"HOMEOSTASIS_SIM_WORKERS" envDefault:"4"`
}

// ParseSettings loads Settings from environment variables.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
