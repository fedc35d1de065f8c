package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/bearpig/stream"
)

var replaceCommand = &cli.Command{
	Name:      "replace",
	Usage:     "replace every match; $0 is the matched text, $$ a dollar sign",
	ArgsUsage: "<pattern> <template> [input]",
	Description: `With an input argument the result is printed on one line.
Without it, standard input is rewritten line by line.`,
	Action: replaceCmd,
}

func replaceCmd(c *cli.Context) error {
	s := sessionFrom(c)
	if c.NArg() < 2 || c.NArg() > 3 {
		return cli.Exit("replace: expected <pattern> <template> [input]", 1)
	}
	pattern, template := c.Args().Get(0), c.Args().Get(1)

	re, err := s.compile(pattern)
	if err != nil {
		return s.fail(err)
	}
	replacer, err := re.Replacer(template)
	if err != nil {
		return s.fail(err)
	}

	if c.NArg() == 3 {
		fmt.Fprintln(c.App.Writer, replacer(c.Args().Get(2)))
		return nil
	}

	out := stream.LineTransform(c.App.Reader, func(line []byte) []byte {
		text := string(line)
		body := trimNewline(text)
		return []byte(replacer(body) + text[len(body):])
	})
	if _, err := io.Copy(c.App.Writer, out); err != nil {
		return s.fail(err)
	}
	return nil
}
