package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for gitcache.
type Settings struct {
	Workers     int    `yaml:"workers"`      // Concurrent status lookups while listing
	HideIgnored bool   `yaml:"hide_ignored"` // Drop ignored entries from listings
	Color       *bool  `yaml:"color"`        // Colour the status glyphs (default true)
	GitDir      string `yaml:"git_dir"`      // Inline or ${ENV_VAR}; overrides GIT_DIR
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	color := true
	return &Settings{
		Workers: runtime.NumCPU(),
		Color:   &color,
	}
}

// NewSettings reads and parses a configuration file, expanding environment variables
// and filling unset fields with their defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitDir = expandEnv(settings.GitDir)

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	defaults := DefaultSettings()
	if settings.Workers == 0 {
		settings.Workers = defaults.Workers
	}
	if settings.Color == nil {
		settings.Color = defaults.Color
	}

	return &settings, nil
}

// ColorEnabled reports whether the status glyphs should be coloured.
func (it *Settings) ColorEnabled() bool {
	return it.Color == nil || *it.Color
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitcache.yaml",
		".gitcache.yml",
		"gitcache.yaml",
		"gitcache.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands environment variable references (${VAR}).
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks the configuration values.
func validate(settings *Settings) error {
	if settings.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", settings.Workers)
	}
	return nil
}
