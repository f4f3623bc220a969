package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/dym/internal/diagnostics"
)

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Rank candidate names against a misspelled identifier",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "candidates",
				Aliases: []string{"f"},
				Usage:   "File with one candidate name per line (default: stdin)",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Diagnostic category: identifier, member, namespace, type, named_argument",
				Value: string(diagnostics.CategoryIdentifier),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit results as JSON",
			},
		},
		Action: suggestCommand,
	}
}

func suggestCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: dym suggest <name>")
	}
	unknown := c.Args().First()

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	matcher, err := buildMatcher(cfg)
	if err != nil {
		return err
	}

	category, err := parseCategory(c.String("category"))
	if err != nil {
		return err
	}

	names, err := readCandidates(c.String("candidates"))
	if err != nil {
		return err
	}

	matches := matcher.SuggestNames(category, unknown, names)
	if len(matches) > cfg.Suggest.MaxResults {
		matches = matches[:cfg.Suggest.MaxResults]
	}

	if c.Bool("json") {
		return writeJSON(os.Stdout, map[string]any{
			"unknown":     unknown,
			"category":    category,
			"suggestions": matches,
		})
	}

	report := diagnostics.NewReport(category, unknown, matches)
	fmt.Println(report.Message())
	if report.HasSuggestions() {
		fmt.Println()
		for _, m := range matches {
			fmt.Printf("  %-30s %.4f\n", m.Name, m.Score)
		}
	}
	return nil
}

// parseCategory validates a category name against the known set.
func parseCategory(name string) (diagnostics.Category, error) {
	for _, cat := range diagnostics.Categories() {
		if string(cat) == name {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// readCandidates reads one candidate name per line from a file, or from
// stdin when no file is given. Blank lines are kept out; the engine also
// tolerates them, but there is no point carrying them further.
func readCandidates(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open candidates file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return names, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
