package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envSeed    = "SEQKIT_SEED"
	envVerbose = "SEQKIT_VERBOSE"
)

// defaults seed the persistent flags. Values already in the environment win
// over the ones in .env.
type defaults struct {
	seed    uint64
	verbose bool
}

func loadDefaults() defaults {
	_ = godotenv.Load()
	return defaultsFromEnv(os.Getenv)
}

func defaultsFromEnv(getenv func(string) string) defaults {
	var d defaults
	if v, err := strconv.ParseUint(getenv(envSeed), 10, 64); err == nil {
		d.seed = v
	}
	if v, err := strconv.ParseBool(getenv(envVerbose)); err == nil {
		d.verbose = v
	}
	return d
}
