package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable noisefetch reads.
const EnvPrefix = "NOISEFETCH_"

// LoadDotEnv loads variables from a .env file when it exists. Variables that
// are already set in the environment are left alone.
func LoadDotEnv(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies configuration from environment variables (NOISEFETCH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setTarget(os.Getenv(EnvPrefix+"URL"), os.Getenv(EnvPrefix+"GENRE"), cfg)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)
	s.setString("user-agent", os.Getenv(EnvPrefix+"USER_AGENT"), &cfg.UserAgent)
	s.setString("metrics-file", os.Getenv(EnvPrefix+"METRICS_FILE"), &cfg.MetricsFile)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv(EnvPrefix+"TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	return s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)
}
