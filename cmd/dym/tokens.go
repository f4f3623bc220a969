package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/dym/internal/similarity"
)

func tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Split an identifier into its word tokens",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit results as JSON",
			},
		},
		Action: tokensCommand,
	}
}

func tokensCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: dym tokens <name>")
	}
	name := c.Args().First()
	tokens := similarity.SplitIdentifier(name)

	if c.Bool("json") {
		return writeJSON(os.Stdout, map[string]any{
			"name":   name,
			"tokens": tokens,
		})
	}

	fmt.Println(strings.Join(tokens, " "))
	return nil
}
