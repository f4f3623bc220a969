// Command dym suggests likely intended identifiers for misspelled names:
// a standalone "did you mean" engine for compiler and tooling diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/dym/internal/config"
	"github.com/standardbeagle/dym/internal/diagnostics"
	"github.com/standardbeagle/dym/internal/version"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("min-score") {
		cfg.Suggest.MinScore = c.Float64("min-score")
	}
	if c.IsSet("max-results") {
		cfg.Suggest.MaxResults = c.Int("max-results")
	}
	if c.IsSet("algorithm") {
		cfg.Suggest.Algorithm = c.String("algorithm")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildMatcher constructs the diagnostics matcher from configuration.
func buildMatcher(cfg *config.Config) (*diagnostics.Matcher, error) {
	m := diagnostics.NewMatcher(cfg.Suggest.MinScore, cfg.Suggest.Algorithm)
	if err := m.ValidateConfig(); err != nil {
		return nil, err
	}

	for name, score := range cfg.Suggest.CategoryMinScores {
		if err := m.SetCategoryMinScore(diagnostics.Category(name), score); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func main() {
	app := &cli.App{
		Name:                   "dym",
		Usage:                  "Fuzzy identifier suggestions for \"did you mean\" diagnostics",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.Float64Flag{
				Name:  "min-score",
				Usage: "Minimum composite score a suggestion must reach (overrides config)",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Usage: "Maximum number of suggestions to display (overrides config)",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Usage: "Similarity algorithm: composite, jaro-winkler, levenshtein, cosine",
			},
		},
		Commands: []*cli.Command{
			suggestCmd(),
			scoreCmd(),
			tokensCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
