package cliconfig

import "fmt"

// Load resolves the effective configuration.
//
// cfg holds defaults already overwritten by command-line flags; changed names
// the flags that were set explicitly. The result layers, from lowest to
// highest precedence: defaults, config file, environment, flags. A missing
// config file is not an error.
func Load(cfg Config, cfgFile string, changed map[string]bool) (Config, error) {
	if cfgFile != "" && FileExists(cfgFile) {
		fc, err := LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
