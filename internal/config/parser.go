package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and
// returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, almanacerrors.NewParseError(path, 0, err)
	}

	cfg, err := ParseBytes(data)
	if err != nil {
		if parseErr, ok := err.(*almanacerrors.ParseError); ok {
			parseErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// ParseBytes parses configuration from memory.
func ParseBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, almanacerrors.NewParseError("", extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// extractLine pulls the line number out of a yaml error message, when
// one is present.
func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
