// Command bearpig compiles patterns and runs them against strings, files or
// standard input.
//
// Usage:
//
//	bearpig match '([a-zA-Z]+|[0-9][0-9]?)+' 'abc09)x'
//	bearpig grep 'ERR[0-9]+' app.log
//	bearpig graph -o nfa.svg --format svg 'a(b|c)*'
//	bearpig gen --name Word --package words -o word_gen.go '[a-z]+'
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/KromDaniel/bearpig/internal/config"
	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/pkg/bearpig"
)

// Version is set at build time.
var Version = "dev"

const sessionKey = "session"

func init() {
	// -v is taken by --verbose.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// session carries the resolved config and logger for one invocation.
type session struct {
	cfg    *config.Config
	logger *diag.Logger
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "bearpig",
		Usage:     "compile and run Thompson NFA regular expressions",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to bearpig.yaml",
				EnvVars: []string{"BEARPIG_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace scanning, parsing and generation",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors in diagnostics",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			matchCommand,
			tokensCommand,
			astCommand,
			graphCommand,
			genCommand,
			grepCommand,
			replaceCommand,
		},
	}
}

// setup loads the config and applies the global flags on top of it.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("bearpig: %v", err), 1)
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.Bool("no-color") {
		cfg.Color = false
	}

	logger := diag.NewLogger(cfg.Verbose)
	logger.SetOutput(c.App.ErrWriter)
	logger.SetColor(cfg.Color)

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[sessionKey] = &session{cfg: cfg, logger: logger}
	return nil
}

func sessionFrom(c *cli.Context) *session {
	if s, ok := c.App.Metadata[sessionKey].(*session); ok {
		return s
	}
	return &session{cfg: config.DefaultConfig(), logger: diag.Nop()}
}

// compile builds the pattern, rendering warnings through the logger.
func (s *session) compile(pattern string) (*bearpig.Regex, error) {
	return bearpig.Compile(pattern, bearpig.WithLogger(s.logger), bearpig.WithSink(s.logger))
}

// fail reports err with a caret marker when it points into the pattern and
// returns the exit error.
func (s *session) fail(err error) error {
	var perr *bearpig.ParseError
	var rerr *bearpig.RangeDiagnostic
	switch {
	case errors.As(err, &perr):
		s.logger.Report(perr.Diagnostic())
	case errors.As(err, &rerr):
		s.logger.Report(rerr.Diagnostic())
	default:
		s.logger.Report(diag.Diagnostic{Severity: diag.SeverityError, Message: err.Error(), Start: -1})
	}
	return cli.Exit("", 1)
}

// args returns exactly n positional arguments or a usage error.
func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, cli.Exit(fmt.Sprintf("%s: expected %d arguments, got %d\nusage: %s %s",
			c.Command.Name, n, c.NArg(), c.Command.Name, c.Command.ArgsUsage), 1)
	}
	return c.Args().Slice(), nil
}
