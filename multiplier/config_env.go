package multiplier

import (
	"os"
	"strconv"
)

// EnvPrefix is the prefix for all environment variables recognized by the
// multiplier. Environment variables provide an alternative to programmatic
// configuration for deployments that cannot call SetDefaultConfig.
const EnvPrefix = "PIRANHA_"

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or the default value if not
// set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int64, or the default value if
// not set or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvFloat returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as float64, or the default value if
// not set or invalid.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// configFromEnv overlays PIRANHA_-prefixed environment variables onto the
// given base configuration. Recognized variables:
//
//	PIRANHA_THREAD_COUNT       maximum worker threads (0 = auto)
//	PIRANHA_MIN_PARALLEL_WORK  serial fallback threshold on |A|·|B|
//	PIRANHA_ESTIMATOR_SAMPLES  estimator sample count
//	PIRANHA_ESTIMATOR_SEED     estimator PRNG seed
//	PIRANHA_MAX_LOAD_FACTOR    output table load threshold
func configFromEnv(base Config) Config {
	cfg := base
	cfg.ThreadCount = getEnvInt("THREAD_COUNT", cfg.ThreadCount)
	cfg.MinParallelWork = getEnvInt("MIN_PARALLEL_WORK", cfg.MinParallelWork)
	cfg.EstimatorSamples = getEnvInt("ESTIMATOR_SAMPLES", cfg.EstimatorSamples)
	cfg.EstimatorSeed = getEnvInt64("ESTIMATOR_SEED", cfg.EstimatorSeed)
	cfg.MaxLoadFactor = getEnvFloat("MAX_LOAD_FACTOR", cfg.MaxLoadFactor)
	return cfg
}
