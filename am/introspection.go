package am

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/itemquery/config.toml
	SourceUser        ConfigSource = "user"        // ~/.itemquery/am.toml
	SourceProject     ConfigSource = "project"     // am.toml found walking up from cwd
	SourceEnvironment ConfigSource = "environment" // ITEMQUERY_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource // The type of config source (default, system, user, etc.)
	Path   string       // File path or environment variable name
}

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key"`
	Value      interface{}  `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// ConfigIntrospection provides metadata about the active configuration
type ConfigIntrospection struct {
	ConfigFiles []string      `json:"config_files" yaml:"config_files"`
	Settings    []SettingInfo `json:"settings" yaml:"settings"`
}

// sensitiveKeys are masked in introspection output
var sensitiveKeys = map[string]bool{
	"catalog.dsn": true,
}

// GetConfigIntrospection returns every effective setting with the source that
// set it, sorted by key
func GetConfigIntrospection() *ConfigIntrospection {
	stateMu.Lock()
	defer stateMu.Unlock()

	v := initViper()

	introspection := &ConfigIntrospection{
		ConfigFiles: append([]string(nil), loadedFiles...),
	}

	keys := v.AllKeys()
	sort.Strings(keys)

	for _, key := range keys {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := ConfigSources[key]; ok {
			info = si
		}
		if envKey, ok := envOverride(key); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		value := v.Get(key)
		if sensitiveKeys[key] && v.GetString(key) != "" {
			value = "********"
		}

		introspection.Settings = append(introspection.Settings, SettingInfo{
			Key:        key,
			Value:      value,
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}

	return introspection
}

// envOverride returns the environment variable overriding key, if set
func envOverride(key string) (string, bool) {
	candidates := []string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
	switch key {
	case "catalog.dsn":
		candidates = append(candidates, "DATABASE_URL")
	case "catalog.database_path":
		candidates = append(candidates, "ITEMQUERY_DATABASE_PATH")
	}

	for _, envKey := range candidates {
		if os.Getenv(envKey) != "" {
			return envKey, true
		}
	}
	return "", false
}

// CountBySource returns how many settings each source contributed
func (ci *ConfigIntrospection) CountBySource() map[ConfigSource]int {
	counts := make(map[ConfigSource]int)
	for _, setting := range ci.Settings {
		counts[setting.Source]++
	}
	return counts
}
