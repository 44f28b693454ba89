package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var defaultConfig = Config{
	APIBaseURL:     "http://localhost:3001",
	RequestTimeout: 60,
	CachePath:      "~/.ragchat/cache.db",
}

// Config holds configuration for the ragchat tool.
type Config struct {
	// Base URL of the question-answering backend.
	APIBaseURL string `json:"api_base_url"`
	// Request timeout in seconds.
	RequestTimeout int `json:"request_timeout"`
	// Path of the local session cache database.
	CachePath string `json:"cache_path"`
}

// Parse a configuration file, creating it with defaults if absent.
func Parse(path string) (*Config, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}

	expandedCachePath, err := expandPath(config.CachePath)
	if err != nil {
		return nil, errors.Wrap(err, "expanding cache path")
	}
	config.CachePath = expandedCachePath
	if err := os.MkdirAll(filepath.Dir(config.CachePath), 0755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return errors.Wrap(err, "writing file")
	}
	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}

func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "getting user home dir")
	}
	return filepath.Join(home, path[2:]), nil
}
