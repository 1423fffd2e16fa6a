// ABOUTME: Journal configuration discovery and loading
// ABOUTME: Supports TOML config files plus the legacy YAML ~/.jrnlrc
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no config file exists at any search path.
var ErrNotFound = errors.New("no config file found")

// Config holds the journal settings. Loaded once per invocation and treated
// as immutable afterwards.
type Config struct {
	Editor                              string `toml:"editor" yaml:"editor"`
	JournalPath                         string `toml:"journal_path" yaml:"journal_path"`
	HoursPastMidnightIncludedInDay      int    `toml:"hours_past_midnight_included_in_day" yaml:"hours_past_midnight_included_in_day"`
	WriteTimestamp                      bool   `toml:"write_timestamp" yaml:"write_timestamp"`
	CreateNewEntriesWhenSpecifyingDates bool   `toml:"create_new_entries_when_specifying_dates" yaml:"create_new_entries_when_specifying_dates"`
}

// Defaults returns a Config with default values for the optional keys.
// editor and journal_path have no defaults and must come from the file.
func Defaults() Config {
	return Config{
		HoursPastMidnightIncludedInDay: 4,
		WriteTimestamp:                 true,
	}
}

// SearchPaths returns the config file locations in discovery order. The
// legacy ~/.jrnlrc (YAML) is checked first so existing setups keep working.
func SearchPaths() []string {
	home := os.Getenv("HOME")

	paths := []string{filepath.Join(home, ".jrnlrc")}
	paths = append(paths, filepath.Join(GetConfigHome(), "jrnl.toml"))

	fallback := filepath.Join(home, ".config", "jrnl.toml")
	if paths[len(paths)-1] != fallback {
		paths = append(paths, fallback)
	}

	return paths
}

// Load reads the config from path, or from the first existing search path
// when path is empty. Returns ErrNotFound when no config file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, candidate := range SearchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return loadFile(candidate)
		}
	}

	return nil, ErrNotFound
}

func loadFile(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config file invalid: %w", err)
		}
	} else {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config file invalid: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.JournalPath = expandUser(cfg.JournalPath)
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Editor == "" {
		return errors.New("config file invalid: missing editor")
	}
	if c.JournalPath == "" {
		return errors.New("config file invalid: missing journal_path")
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch {
	case strings.HasSuffix(path, ".jrnlrc"):
		return true
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return true
	}
	return false
}

// expandUser replaces a leading ~ with the user's home directory.
func expandUser(path string) string {
	if path == "~" {
		return os.Getenv("HOME")
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[2:])
	}
	return path
}
