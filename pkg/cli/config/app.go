package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// AppConfig loads optional application behavior settings from a TOML
// file. All settings have defaults, so the file itself is optional.
type AppConfig struct {
	configPath string
}

// appConfigFile is the on-disk TOML shape
type appConfigFile struct {
	DeletePolicy string `toml:"delete_policy"`
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to application configuration file (TOML)",
			Sources:     cli.EnvVars("BRIAREUS_CONFIG"),
			Destination: &a.configPath,
		},
	}
}

// AppSettings is the parsed and validated application configuration
type AppSettings struct {
	DeletePolicy types.DeletePolicy
}

// Configure reads and validates the configuration file. Without a
// configured path it returns the defaults.
func (a *AppConfig) Configure() (*AppSettings, error) {
	settings := &AppSettings{
		DeletePolicy: types.DeletePolicyOrphan,
	}

	if a.configPath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(a.configPath)
	if err != nil {
		return nil, goerr.Wrap(ErrConfigNotFound, "failed to read configuration file", goerr.V(ConfigPathKey, a.configPath))
	}

	var file appConfigFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse configuration file",
			goerr.V(ConfigPathKey, a.configPath),
			goerr.V("cause", err))
	}

	if file.DeletePolicy != "" {
		policy := types.DeletePolicy(file.DeletePolicy)
		if err := policy.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidConfig, "invalid delete_policy",
				goerr.V(ConfigPathKey, a.configPath),
				goerr.V("delete_policy", file.DeletePolicy))
		}
		settings.DeletePolicy = policy
	}

	return settings, nil
}
