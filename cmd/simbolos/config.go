// Config loading for the simbolos CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeyActiveProfile = "active_profile"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Simbolos CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Active profile ID (set by "simbolos profile use")
# active_profile:
`

// loadConfig reads config.yaml from the resolved config directory. The
// directory and a default config.yaml are created on first run; a missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// saveConfigValue persists one key into config.yaml, preserving the rest.
func saveConfigValue(key, value string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	v.Set(key, value)
	return v.WriteConfigAs(filepath.Join(configDir, configFileName+"."+configFileType))
}
