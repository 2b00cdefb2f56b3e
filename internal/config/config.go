package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the tokenizer/scanner configuration snapshot. A copy travels
// with each per-file workspace so concurrent workers never share state.
type Config struct {
	// InputTabSize is the tab stop width used when computing columns.
	InputTabSize int `yaml:"input_tab_size"`

	// StringEscapeChar is the escape character inside string literals.
	StringEscapeChar byte `yaml:"string_escape_char"`

	// StringEscapeChar2 is a secondary escape character, e.g. '"' to
	// support doubled quotes inside C# verbatim strings. Zero disables it.
	StringEscapeChar2 byte `yaml:"string_escape_char2"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputTabSize:     8,
		StringEscapeChar: '\\',
	}
}

// Load reads a YAML config file and applies it over the defaults.
// A missing path returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var raw struct {
		InputTabSize      *int    `yaml:"input_tab_size"`
		StringEscapeChar  *string `yaml:"string_escape_char"`
		StringEscapeChar2 *string `yaml:"string_escape_char2"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if raw.InputTabSize != nil && *raw.InputTabSize > 0 {
		cfg.InputTabSize = *raw.InputTabSize
	}
	if raw.StringEscapeChar != nil && len(*raw.StringEscapeChar) > 0 {
		cfg.StringEscapeChar = (*raw.StringEscapeChar)[0]
	}
	if raw.StringEscapeChar2 != nil && len(*raw.StringEscapeChar2) > 0 {
		cfg.StringEscapeChar2 = (*raw.StringEscapeChar2)[0]
	}
	return cfg, nil
}
