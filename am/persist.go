package am

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Don't fail the save over a stale backup
		logger.Warnw("Failed to delete old config backup", logger.FieldFile, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// SetValue writes key = value into configPath (normally UserConfigPath), keeping
// every other setting in the file. The value is stored as bool or integer when
// the key's default has that type. Returns an error for unknown keys.
func SetValue(configPath, key, raw string) error {
	defaults := viperDefaults()
	def, known := defaults[key]
	if !known {
		return errors.WithHint(
			errors.Newf("unknown config key %q", key),
			"run `itemquery am show --sources` to list keys",
		)
	}

	value, err := coerce(raw, def)
	if err != nil {
		return errors.Wrapf(err, "config key %s", key)
	}

	settings, err := readTOMLMap(configPath)
	if err != nil {
		return err
	}
	setNested(settings, strings.Split(key, "."), value)

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Mark this as our own write to prevent reload loops
	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	Reset()
	logger.Infow("Config value saved", "key", key, logger.FieldFile, configPath)
	return nil
}

// viperDefaults returns every known key with its default value
func viperDefaults() map[string]interface{} {
	v := newDefaultsViper()
	out := make(map[string]interface{})
	for _, key := range v.AllKeys() {
		out[key] = v.Get(key)
	}
	return out
}

func coerce(raw string, def interface{}) (interface{}, error) {
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Newf("expected true or false, got %q", raw)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Newf("expected an integer, got %q", raw)
		}
		return n, nil
	default:
		return raw, nil
	}
}

func readTOMLMap(path string) (map[string]interface{}, error) {
	settings := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return settings, nil
}

func setNested(settings map[string]interface{}, path []string, value interface{}) {
	for _, section := range path[:len(path)-1] {
		next, ok := settings[section].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			settings[section] = next
		}
		settings = next
	}
	settings[path[len(path)-1]] = value
}
