// Package config provides configuration structures for the text toolkit server.
// Settings are read from a TOML file and may be overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	internalErrors "github.com/gcbaptista/go-text-toolkit/internal/errors"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

const (
	defaultPort            = "8080"
	defaultMaxResultsCap   = 1000
	defaultMaxRequestBytes = 1 << 20 // 1 MiB
	defaultGinMode         = "release"
)

// Settings contains every option of the HTTP server and CLI.
type Settings struct {
	Port                string `toml:"port"`                  // Port the HTTP server listens on
	DefaultMaxResults   int    `toml:"default_max_results"`   // Search limit when a request does not set one
	DefaultKeywordLimit int    `toml:"default_keyword_limit"` // Keyword limit when a request does not set one
	MaxResultsCap       int    `toml:"max_results_cap"`       // Largest limit a request may ask for
	MaxRequestBytes     int64  `toml:"max_request_bytes"`     // Request body size limit
	GinMode             string `toml:"gin_mode"`              // "debug", "release" or "test"
}

// Default returns settings with every default applied.
func Default() Settings {
	var s Settings
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.Port == "" {
		s.Port = defaultPort
	}
	if s.DefaultMaxResults == 0 {
		s.DefaultMaxResults = matcher.DefaultMaxResults
	}
	if s.DefaultKeywordLimit == 0 {
		s.DefaultKeywordLimit = analyzer.DefaultKeywordLimit
	}
	if s.MaxResultsCap == 0 {
		s.MaxResultsCap = defaultMaxResultsCap
	}
	if s.MaxRequestBytes == 0 {
		s.MaxRequestBytes = defaultMaxRequestBytes
	}
	if s.GinMode == "" {
		s.GinMode = defaultGinMode
	}
}

// Validate returns one message per problem found; an empty slice means the settings are usable.
func (s *Settings) Validate() []string {
	var problems []string

	if strings.TrimSpace(s.Port) == "" {
		problems = append(problems, "port cannot be empty")
	} else if n, err := strconv.Atoi(s.Port); err != nil || n <= 0 || n > 65535 {
		problems = append(problems, "port '"+s.Port+"' must be a number between 1 and 65535")
	}

	if s.MaxResultsCap <= 0 {
		problems = append(problems, "max_results_cap must be greater than 0")
	}
	if s.DefaultMaxResults < 0 || s.DefaultMaxResults > s.MaxResultsCap {
		problems = append(problems, fmt.Sprintf("default_max_results must be between 0 and max_results_cap (%d)", s.MaxResultsCap))
	}
	if s.DefaultKeywordLimit < 0 || s.DefaultKeywordLimit > s.MaxResultsCap {
		problems = append(problems, fmt.Sprintf("default_keyword_limit must be between 0 and max_results_cap (%d)", s.MaxResultsCap))
	}
	if s.MaxRequestBytes <= 0 {
		problems = append(problems, "max_request_bytes must be greater than 0")
	}

	switch s.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, "gin_mode '"+s.GinMode+"' must be one of debug, release, test")
	}

	return problems
}

// Load reads settings from a TOML file, applies defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Settings, error) {
	settings := Settings{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Settings{}, internalErrors.NewConfigNotFoundError(path)
			}
			return Settings{}, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, internalErrors.NewInvalidConfigError(path, err)
		}
	}

	settings.ApplyDefaults()

	if problems := settings.Validate(); len(problems) > 0 {
		return Settings{}, internalErrors.NewInvalidConfigError(path, nil, problems...)
	}

	return settings, nil
}

// Encode renders settings as TOML.
func (s Settings) Encode() (string, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
