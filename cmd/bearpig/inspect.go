package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/bearpig/internal/ast"
	"github.com/KromDaniel/bearpig/internal/export"
	"github.com/KromDaniel/bearpig/pkg/bearpig"
)

var tokensCommand = &cli.Command{
	Name:      "tokens",
	Usage:     "print the scanned tokens of a pattern",
	ArgsUsage: "<pattern>",
	Action: func(c *cli.Context) error {
		s := sessionFrom(c)
		a, err := args(c, 1)
		if err != nil {
			return err
		}
		tokens, err := bearpig.Tokenize(a[0])
		if err != nil {
			return s.fail(err)
		}
		for _, t := range tokens {
			fmt.Fprintf(c.App.Writer, "%d\t%s\n", t.Column, t)
		}
		return nil
	},
}

var astCommand = &cli.Command{
	Name:      "ast",
	Usage:     "print the syntax tree of a pattern",
	ArgsUsage: "<pattern>",
	Action: func(c *cli.Context) error {
		s := sessionFrom(c)
		a, err := args(c, 1)
		if err != nil {
			return err
		}
		tokens, err := bearpig.Tokenize(a[0])
		if err != nil {
			return s.fail(err)
		}
		root, err := bearpig.Parse(tokens, bearpig.WithLogger(s.logger))
		if err != nil {
			return s.fail(err)
		}
		ast.Print(c.App.Writer, root)
		return nil
	},
}

var graphCommand = &cli.Command{
	Name:      "graph",
	Usage:     "render the automaton of a pattern with Graphviz",
	ArgsUsage: "<pattern>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write to `FILE` instead of the configured graph_output; - for stdout",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "dot, svg or png",
		},
	},
	Action: func(c *cli.Context) error {
		s := sessionFrom(c)
		a, err := args(c, 1)
		if err != nil {
			return err
		}
		format := s.cfg.GraphFormat
		if c.IsSet("format") {
			format = c.String("format")
		}
		out := s.cfg.GraphOutput
		if c.IsSet("output") {
			out = c.String("output")
		}

		re, err := s.compile(a[0])
		if err != nil {
			return s.fail(err)
		}
		if out == "-" {
			if err := re.WriteGraph(c.Context, c.App.Writer, format); err != nil {
				return s.fail(err)
			}
			return nil
		}
		if err := writeGraph(c.Context, re, format, out); err != nil {
			return s.fail(err)
		}
		s.logger.Info("wrote %s", out)
		return nil
	},
}

func astString(re *bearpig.Regex) string {
	return ast.Sprint(re.AST())
}

func writeGraph(ctx context.Context, re *bearpig.Regex, format, path string) error {
	f, err := export.ParseFormat(strings.TrimSpace(format))
	if err != nil {
		return err
	}
	return export.RenderFile(ctx, re.NFA(), f, path)
}
