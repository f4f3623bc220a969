// Package config loads dym configuration from a .dym.kdl file, mirroring
// the matcher's defaults when no file is present.
package config

import (
	"fmt"
	"os"
)

// DefaultConfigFile is the config file name looked up when no explicit
// path is given.
const DefaultConfigFile = ".dym.kdl"

// Config is the full dym configuration.
type Config struct {
	Suggest Suggest
}

// Suggest configures the suggestion matcher.
type Suggest struct {
	// MaxResults caps how many suggestions are displayed. The ranker
	// itself never returns more than five.
	MaxResults int

	// MinScore is the default relevance cutoff applied to ranked
	// suggestions.
	MinScore float64

	// Algorithm selects the similarity metric: composite, jaro-winkler,
	// levenshtein, or cosine.
	Algorithm string

	// CategoryMinScores holds per-category cutoff overrides keyed by
	// category name (identifier, member, namespace, type, named_argument).
	CategoryMinScores map[string]float64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Suggest: Suggest{
			MaxResults: 5,
			MinScore:   0.3,
			Algorithm:  "composite",
			CategoryMinScores: map[string]float64{
				"namespace":      0.4,
				"named_argument": 0.4,
			},
		},
	}
}

// Load reads configuration from path. A missing file is not an error: the
// defaults are returned so the CLI works without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges after load and overrides.
func (c *Config) Validate() error {
	s := c.Suggest
	if s.MaxResults < 1 {
		return fmt.Errorf("suggest.max_results must be at least 1, got %d", s.MaxResults)
	}
	if s.MinScore < 0 || s.MinScore > 2 {
		return fmt.Errorf("suggest.min_score must be in [0,2], got %g", s.MinScore)
	}
	switch s.Algorithm {
	case "composite", "jaro-winkler", "levenshtein", "cosine":
	default:
		return fmt.Errorf("unknown suggest.algorithm %q", s.Algorithm)
	}
	for cat, score := range s.CategoryMinScores {
		if score < 0 || score > 2 {
			return fmt.Errorf("category %q min_score must be in [0,2], got %g", cat, score)
		}
	}
	return nil
}
