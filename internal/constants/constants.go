package constants

// Centralized constants for environment keys and logging field names.
// Defaults for the environment values live in the config.Settings tags.
const (
	EnvContentFile  = "HOMEOSTASIS_CONTENT"
	EnvDatabasePath = "HOMEOSTASIS_DB"
	EnvLogLevel     = "HOMEOSTASIS_LOG_LEVEL"
	EnvIdleTimeout  = "HOMEOSTASIS_IDLE_TIMEOUT"
	EnvSimRuns      = "HOMEOSTASIS_SIM_RUNS"
	EnvSimWorkers   = "HOMEOSTASIS_SIM_WORKERS"
)

// Logging field names
const (
	LogFieldSessionUUID = "session_uuid"
	LogFieldPlayerID    = "player_id"
	LogFieldStatus      = "status"
	LogFieldTurn        = "turn"
	LogFieldScore       = "score"
	LogFieldCard        = "card"
	LogFieldEvent       = "event"
	LogFieldDifficulty  = "difficulty"
	LogFieldCount       = "count"
	LogFieldPath        = "path"
	LogFieldMode        = "mode"
	LogFieldPolicy      = "policy"
	LogFieldVersion     = "version"
)
