package core

import (
	"fmt"
	"os"

	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

// ConfigModule provides the configuration provider.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

// _envConfigFile names an optional YAML file merged over the built-in
// defaults.
const _envConfigFile = "TYFIND_CONFIG"

// _defaults are the built-in configuration values. A user file or environment
// expansion may override any of them.
var _defaults = map[string]interface{}{
	"logging": map[string]interface{}{
		"level":       "${TYFIND_LOG_LEVEL:info}",
		"development": false,
		"encoding":    "console",
		"outputPaths": []string{"stderr"},
	},
	"daemon": map[string]interface{}{
		"idleTimeoutMinutes":    5,
		"requestTimeoutSeconds": 30,
		// Empty means the platform temp directory.
		"socketDir": "",
	},
	"analyzer": map[string]interface{}{
		"command": []string{"ty", "server"},
		// Used when the ty binary is not on PATH.
		"fallbackCommand": []string{"uvx", "ty", "server"},
	},
	"pool": map[string]interface{}{
		"idleEvictionMinutes": 5,
		"maxWarmWorkspaces":   8,
	},
}

// NewConfig builds the configuration provider from built-in defaults plus an
// optional user file named by TYFIND_CONFIG.
func NewConfig() (uber_config.Provider, error) {
	options := []uber_config.YAMLOption{
		uber_config.Static(_defaults),
		uber_config.Expand(os.LookupEnv),
	}

	if path := os.Getenv(_envConfigFile); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		options = append(options, uber_config.File(path))
	}

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return provider, nil
}
