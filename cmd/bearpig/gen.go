package main

import (
	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/bearpig/internal/codegen"
)

var genCommand = &cli.Command{
	Name:      "gen",
	Usage:     "generate a standalone Go matcher for a pattern",
	ArgsUsage: "<pattern>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Aliases:  []string{"n"},
			Usage:    "prefix of the generated identifiers, e.g. Email",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "package",
			Aliases: []string{"p"},
			Usage:   "package of the generated file (default: config package)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output `FILE`; - for stdout (default: config codegen_output)",
		},
	},
	Action: genCmd,
}

func genCmd(c *cli.Context) error {
	s := sessionFrom(c)
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	pkg := s.cfg.Package
	if c.IsSet("package") {
		pkg = c.String("package")
	}
	out := s.cfg.CodegenOutput
	if c.IsSet("output") {
		out = c.String("output")
	}

	re, err := s.compile(a[0])
	if err != nil {
		return s.fail(err)
	}

	if out == "-" {
		if err := re.GenerateGo(c.App.Writer, c.String("name"), pkg); err != nil {
			return s.fail(err)
		}
		return nil
	}

	g := codegen.New(codegen.Config{
		Pattern:    a[0],
		Name:       c.String("name"),
		Package:    pkg,
		OutputFile: out,
		NFA:        re.NFA(),
	})
	g.SetLogger(s.logger)
	if err := g.Generate(); err != nil {
		return s.fail(err)
	}
	s.logger.Info("wrote %s", out)
	return nil
}
