package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var matchCommand = &cli.Command{
	Name:      "match",
	Usage:     "run exact, first and all-matches searches of a pattern on an input",
	ArgsUsage: "<pattern> <input>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dot",
			Usage: "also write the automaton as DOT to `FILE`",
		},
	},
	Action: matchCmd,
}

func matchCmd(c *cli.Context) error {
	s := sessionFrom(c)
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	pattern, input := a[0], a[1]

	re, err := s.compile(pattern)
	if err != nil {
		return s.fail(err)
	}
	if s.logger.Enabled() {
		s.logger.Section("AST")
		for _, line := range strings.Split(strings.TrimRight(astString(re), "\n"), "\n") {
			s.logger.Log("%s", line)
		}
	}
	if path := c.String("dot"); path != "" {
		if err := writeGraph(c.Context, re, "dot", path); err != nil {
			return s.fail(err)
		}
	}

	w := c.App.Writer
	fmt.Fprintf(w, "exact match: %t\n", re.ExactMatch(input).Success)

	first := re.FindFirst(input)
	fmt.Fprintf(w, "first match: %t\n", first.Success)
	if first.Success {
		fmt.Fprintf(w, "  %q at %d\n", first.Text, first.Start)
		fmt.Fprintf(w, "  %s\n", input)
		fmt.Fprintf(w, "  %s\n", caret(first.Start, first.Length, s.cfg.Color))
	}

	all := re.FindAll(input)
	fmt.Fprintf(w, "all matches: %d\n", len(all))
	for _, m := range all {
		fmt.Fprintf(w, "  %d+%d %q\n", m.Start, m.Length, m.Text)
	}
	return nil
}

// caret underlines length bytes starting at start. An empty match still gets
// one caret so its position is visible.
func caret(start, length int, color bool) string {
	if length < 1 {
		length = 1
	}
	marker := strings.Repeat(" ", start) + strings.Repeat("^", length)
	if color {
		return "\033[33m" + marker + "\033[0m"
	}
	return marker
}
