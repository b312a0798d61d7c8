package am

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// DefaultDirPermissions is used for ~/.itemquery
const DefaultDirPermissions = 0750

// EnvPrefix prefixes every environment override, e.g. ITEMQUERY_CATALOG_SOURCE
const EnvPrefix = "ITEMQUERY"

var (
	globalConfig  *Config
	viperInstance *viper.Viper

	// ConfigSources records which file set each key during the last load
	ConfigSources map[string]SourceInfo

	// loadedFiles lists the merged config files, lowest precedence first
	loadedFiles []string

	stateMu sync.Mutex
)

// Load reads the itemquery configuration using Viper
func Load() (*Config, error) {
	stateMu.Lock()
	defer stateMu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	stateMu.Lock()
	defer stateMu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from %s: %w", configPath, err)
	}

	return &config, nil
}

// LoadedFiles returns the config files merged by the last load
func LoadedFiles() []string {
	stateMu.Lock()
	defer stateMu.Unlock()
	initViper()
	return append([]string(nil), loadedFiles...)
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	stateMu.Lock()
	defer stateMu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = nil
	loadedFiles = nil
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold stateMu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	BindSensitiveEnvVars(v)

	SetDefaults(v)

	// Manually merge configs in precedence order: system -> user -> project -> env vars
	ConfigSources, loadedFiles = mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigDir returns ~/.itemquery
func UserConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".itemquery")
}

// UserConfigPath returns ~/.itemquery/am.toml
func UserConfigPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "am.toml")
}

// findProjectConfig searches for am.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	userConfig := UserConfigPath()
	for {
		amPath := filepath.Join(dir, "am.toml")
		if _, err := os.Stat(amPath); err == nil && amPath != userConfig {
			return amPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles manually merges configuration files in the correct precedence order.
// Precedence (lowest to highest): system < user < project < env vars
func mergeConfigFiles(v *viper.Viper) (map[string]SourceInfo, []string) {
	sources := make(map[string]SourceInfo)
	var merged []string

	type candidate struct {
		path   string
		source ConfigSource
	}
	candidates := []candidate{
		{"/etc/itemquery/config.toml", SourceSystem},
	}
	if userConfig := UserConfigPath(); userConfig != "" {
		candidates = append(candidates, candidate{userConfig, SourceUser})
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		candidates = append(candidates, candidate{projectConfig, SourceProject})
	}

	for _, c := range candidates {
		if _, err := os.Stat(c.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(c.path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}

		// MergeConfigMap keeps file values below env vars; v.Set would override them
		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			continue
		}
		for _, key := range tempViper.AllKeys() {
			sources[key] = SourceInfo{Source: c.source, Path: c.path}
		}
		merged = append(merged, c.path)
	}

	return sources, merged
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) int {
	return GetViper().GetInt(key)
}
