package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteDefault when the file is already there
// and overwrite was not requested.
var ErrConfigExists = errors.New("config file already exists")

var fileMutex sync.Mutex

// Marshal renders settings as YAML.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Unmarshal parses YAML settings on top of the defaults.
func Unmarshal(data []byte) (Settings, error) {
	s := NewSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// WriteDefault writes the default settings to path, or to GetConfigPath when
// path is empty, and returns the path written.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	return path, Save(path, NewSettings())
}

// Save writes settings to path atomically.
func Save(path string, s Settings) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(s)
	if err != nil {
		return err
	}

	header := []byte(`# Signboard settings
# Defaults for new signs and animation timing. Messages are never stored here.
# Colors: white, black, pink, blue, orange (or their hex values).
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
