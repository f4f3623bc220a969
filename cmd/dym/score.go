package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/dym/internal/similarity"
)

func scoreCmd() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Show the similarity breakdown for a pair of names",
		ArgsUsage: "<unknown> <candidate>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit results as JSON",
			},
		},
		Action: scoreCommand,
	}
}

func scoreCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("usage: dym score <unknown> <candidate>")
	}
	unknown := c.Args().Get(0)
	candidate := c.Args().Get(1)

	nu := similarity.Normalize(unknown)
	nc := similarity.Normalize(candidate)

	breakdown := struct {
		Unknown             string   `json:"unknown"`
		Candidate           string   `json:"candidate"`
		NormalizedUnknown   string   `json:"normalized_unknown"`
		NormalizedCandidate string   `json:"normalized_candidate"`
		UnknownTokens       []string `json:"unknown_tokens"`
		CandidateTokens     []string `json:"candidate_tokens"`
		Jaro                float64  `json:"jaro"`
		JaroWinkler         float64  `json:"jaro_winkler"`
		Composite           float64  `json:"composite"`
	}{
		Unknown:             unknown,
		Candidate:           candidate,
		NormalizedUnknown:   nu,
		NormalizedCandidate: nc,
		UnknownTokens:       similarity.SplitIdentifier(unknown),
		CandidateTokens:     similarity.SplitIdentifier(candidate),
		Jaro:                similarity.Jaro(nu, nc),
		JaroWinkler:         similarity.JaroWinkler(nu, nc),
		Composite:           similarity.Score(unknown, candidate),
	}

	if c.Bool("json") {
		return writeJSON(os.Stdout, breakdown)
	}

	fmt.Printf("unknown:    %q -> %q %v\n", unknown, nu, breakdown.UnknownTokens)
	fmt.Printf("candidate:  %q -> %q %v\n", candidate, nc, breakdown.CandidateTokens)
	fmt.Printf("jaro:         %.4f\n", breakdown.Jaro)
	fmt.Printf("jaro-winkler: %.4f\n", breakdown.JaroWinkler)
	fmt.Printf("composite:    %.4f\n", breakdown.Composite)
	return nil
}
