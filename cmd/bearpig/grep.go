package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/bearpig/pkg/bearpig"
	"github.com/KromDaniel/bearpig/stream"
)

var grepCommand = &cli.Command{
	Name:      "grep",
	Usage:     "print lines containing a match",
	ArgsUsage: "<pattern> [file...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "only-matching",
			Aliases: []string{"o"},
			Usage:   "print each match on its own line as line:offset:text",
		},
		&cli.IntFlag{
			Name:  "max-line",
			Usage: "reject lines longer than `N` bytes (0 for no limit)",
		},
	},
	Action: grepCmd,
}

func grepCmd(c *cli.Context) error {
	s := sessionFrom(c)
	if c.NArg() < 1 {
		return cli.Exit("grep: missing pattern\nusage: grep "+c.Command.ArgsUsage, 1)
	}
	re, err := s.compile(c.Args().First())
	if err != nil {
		return s.fail(err)
	}

	files := c.Args().Tail()
	if len(files) == 0 {
		return s.grep(c, re, "", c.App.Reader)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return s.fail(err)
		}
		err = s.grep(c, re, name, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *session) grep(c *cli.Context, re *bearpig.Regex, name string, r io.Reader) error {
	w := c.App.Writer
	prefix := ""
	if c.Args().Len() > 2 {
		prefix = name + ":"
	}

	if c.Bool("only-matching") {
		cfg := stream.DefaultConfig()
		cfg.MaxLineLength = c.Int("max-line")
		err := stream.FindReader(r, cfg, re.Spans, func(m stream.Match) bool {
			fmt.Fprintf(w, "%s%d:%d:%s\n", prefix, m.Line, m.Start, m.Text)
			return true
		})
		if err != nil {
			return s.fail(err)
		}
		return nil
	}

	filtered := stream.LineFilter(r, func(line []byte) bool {
		return re.FindFirst(trimNewline(string(line))).Success
	})
	if prefix != "" {
		filtered = stream.LineTransform(filtered, func(line []byte) []byte {
			return append([]byte(prefix), line...)
		})
	}
	if _, err := io.Copy(w, filtered); err != nil {
		return s.fail(err)
	}
	return nil
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
