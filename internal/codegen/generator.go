package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/nfa"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern    string
	Name       string // prefix of the generated identifiers
	Package    string
	OutputFile string
	NFA        *nfa.NFA
	Verbose    bool // Enable verbose logging of the emitted tables
}

// Generator emits Go source for one automaton.
type Generator struct {
	config Config
	file   *jen.File
	logger *diag.Logger
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: diag.NewLogger(config.Verbose),
	}
}

// SetLogger replaces the logger created from Config.Verbose.
func (g *Generator) SetLogger(l *diag.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.NFA == nil {
		return fmt.Errorf("automaton is required")
	}
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", c.Name)
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", c.Package)
	}
	return nil
}

// Generate renders the source and writes it to the output file.
func (g *Generator) Generate() error {
	if g.config.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(g.config.OutputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	g.logger.Log("wrote %s", g.config.OutputFile)
	return nil
}

// Render writes the formatted source to w.
func (g *Generator) Render(w io.Writer) error {
	if err := g.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	g.file = jen.NewFile(g.config.Package)
	g.build()

	var raw bytes.Buffer
	if err := g.file.Render(&raw); err != nil {
		return fmt.Errorf("failed to render source: %w", err)
	}
	formatted, err := format.Source(raw.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}

func (g *Generator) build() {
	n := g.config.NFA
	name := g.config.Name
	transitions := TableName(name, "Transitions")
	closures := TableName(name, "Closures")
	accept := TableName(name, "Accept")
	states := TableName(name, "States")
	run := TableName(name, "Run")
	first := TableName(name, "First")

	g.logger.Section("Code Generation")
	g.logger.Log("Pattern: %s", g.config.Pattern)
	g.logger.Log("States: %d, accept state: %d", n.Len(), n.Accept())

	g.file.HeaderComment(fmt.Sprintf("Code generated by bearpig for pattern: %q. DO NOT EDIT.", g.config.Pattern))

	g.file.Const().Defs(
		jen.Id(states).Op("=").Lit(n.Len()),
		jen.Id(accept).Op("=").Lit(int(n.Accept())),
	)
	g.file.Line()

	table, targets := g.transitionTable()
	g.file.Comment(fmt.Sprintf("%s lists the consuming edges of each state as {edge, to}; edge %d is the wildcard.", transitions, wildcardEdge))
	g.file.Var().Id(transitions).Op("=").Index(jen.Id(states)).Index().Index(jen.Lit(2)).Int().Values(table...)
	g.file.Line()

	g.file.Comment(fmt.Sprintf("%s holds the epsilon closure of the initial state and of every edge target.", closures))
	g.file.Var().Id(closures).Op("=").Index(jen.Id(states)).Index().Int().Values(g.closureTable(targets)...)
	g.file.Line()

	g.file.Comment(fmt.Sprintf("%s marks the bytes that can begin a match.", first))
	g.file.Var().Id(first).Op("=").Index(jen.Lit(256)).Bool().Values(g.firstTable()...)
	g.file.Line()

	g.file.Comment(fmt.Sprintf("%s simulates the automaton on input. In exact mode the whole input must be consumed;", run))
	g.file.Comment("otherwise an accept before any byte is consumed wins at once, and later ones are extended greedily.")
	g.file.Func().Id(run).
		Params(jen.Id(InputName).String(), jen.Id(ExactName).Bool()).
		Params(jen.Id(LengthName).Int(), jen.Id(OkName).Bool()).
		Block(g.runBody(transitions, closures, accept, states)...)
	g.file.Line()

	matchName := UpperFirst(name) + "MatchString"
	g.file.Comment(fmt.Sprintf("%s reports whether input matches the pattern exactly.", matchName))
	g.file.Func().Id(matchName).
		Params(jen.Id(InputName).String()).
		Params(jen.Bool()).
		Block(
			jen.List(jen.Id("_"), jen.Id(OkName)).Op(":=").Id(run).Call(jen.Id(InputName), jen.True()),
			jen.Return(jen.Id(OkName)),
		)
	g.file.Line()

	findName := UpperFirst(name) + "FindString"
	g.file.Comment(fmt.Sprintf("%s returns the first match in input, scanning left to right from positions", findName))
	g.file.Comment(fmt.Sprintf("listed in %s and from the end of the input.", first))
	g.file.Func().Id(findName).
		Params(jen.Id(InputName).String()).
		Params(jen.Id(StartName).Int(), jen.Id(LengthName).Int(), jen.Id(OkName).Bool()).
		Block(
			jen.For(
				jen.Id(StartName).Op("=").Lit(0),
				jen.Id(StartName).Op("<=").Len(jen.Id(InputName)),
				jen.Id(StartName).Op("++"),
			).Block(
				jen.If(
					jen.Id(StartName).Op("<").Len(jen.Id(InputName)).
						Op("&&").Op("!").Id(first).Index(jen.Id(InputName).Index(jen.Id(StartName))),
				).Block(
					jen.Continue(),
				),
				jen.If(
					jen.List(jen.Id(LengthName), jen.Id(OkName)).Op("=").Id(run).Call(
						jen.Id(InputName).Index(jen.Id(StartName).Op(":")), jen.False(),
					),
					jen.Id(OkName),
				).Block(
					jen.Return(jen.Id(StartName), jen.Id(LengthName), jen.True()),
				),
			),
			jen.Return(jen.Lit(0), jen.Lit(0), jen.False()),
		)
}

// transitionTable returns the keyed entries of the consuming-edge table and
// the set of states those edges lead to.
func (g *Generator) transitionTable() ([]jen.Code, []nfa.StateID) {
	var entries []jen.Code
	var targets []nfa.StateID
	seen := make(map[nfa.StateID]bool)

	for _, s := range g.config.NFA.States() {
		var edges []jen.Code
		for _, t := range s.Transitions {
			if t.Edge == nfa.Epsilon {
				continue
			}
			edges = append(edges, jen.Values(jen.Lit(int(t.Edge)), jen.Lit(int(t.To))))
			if !seen[t.To] {
				seen[t.To] = true
				targets = append(targets, t.To)
			}
		}
		if len(edges) > 0 {
			entries = append(entries, jen.Lit(int(s.ID)).Op(":").Values(edges...))
		}
	}
	g.logger.Log("Consuming states: %d, edge targets: %d", len(entries), len(targets))
	return entries, targets
}

func (g *Generator) firstTable() []jen.Code {
	first := g.config.NFA.FirstBytes()
	var entries []jen.Code
	for _, c := range first.Bytes() {
		entries = append(entries, jen.Lit(int(c)).Op(":").True())
	}
	return entries
}

func (g *Generator) closureTable(targets []nfa.StateID) []jen.Code {
	n := g.config.NFA
	ids := append([]nfa.StateID{0}, targets...)
	var entries []jen.Code
	done := make(map[nfa.StateID]bool)
	for _, id := range ids {
		if done[id] {
			continue
		}
		done[id] = true
		var members []jen.Code
		for _, s := range n.EpsilonClosure(id) {
			members = append(members, jen.Lit(int(s)))
		}
		entries = append(entries, jen.Lit(int(id)).Op(":").Values(members...))
	}
	return entries
}

func (g *Generator) runBody(transitions, closures, accept, states string) []jen.Code {
	edge := func() *jen.Statement { return jen.Id("t").Index(jen.Lit(0)) }
	matches := edge().Op("==").Int().Call(jen.Id("c")).
		Op("||").Parens(edge().Op("==").Lit(wildcardEdge).Op("&&").Id("c").Op("!=").LitRune('\n'))

	return []jen.Code{
		jen.Id(CurrentName).Op(":=").Make(jen.Index().Bool(), jen.Id(states)),
		jen.Id(NextName).Op(":=").Make(jen.Index().Bool(), jen.Id(states)),
		jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Id(closures).Index(jen.Lit(0))).Block(
			jen.Id(CurrentName).Index(jen.Id("s")).Op("=").True(),
		),
		jen.Line(),
		jen.For(
			jen.Id(PosName).Op(":=").Lit(0),
			jen.Id(PosName).Op("<=").Len(jen.Id(InputName)),
			jen.Id(PosName).Op("++"),
		).Block(
			jen.If(
				jen.Id(CurrentName).Index(jen.Id(accept)).Op("&&").Parens(
					jen.Id(PosName).Op("==").Len(jen.Id(InputName)).Op("||").Op("!").Id(ExactName),
				),
			).Block(
				jen.List(jen.Id(LengthName), jen.Id(OkName)).Op("=").List(jen.Id(PosName), jen.True()),
				jen.If(jen.Id(PosName).Op("==").Lit(0)).Block(
					jen.Return(jen.Id(LengthName), jen.Id(OkName)),
				),
			),
			jen.If(jen.Id(PosName).Op("==").Len(jen.Id(InputName))).Block(
				jen.Break(),
			),
			jen.Line(),
			jen.Id("c").Op(":=").Id(InputName).Index(jen.Id(PosName)),
			jen.Clear(jen.Id(NextName)),
			jen.Id(MovedName).Op(":=").False(),
			jen.For(jen.List(jen.Id("s"), jen.Id("active")).Op(":=").Range().Id(CurrentName)).Block(
				jen.If(jen.Op("!").Id("active")).Block(jen.Continue()),
				jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(transitions).Index(jen.Id("s"))).Block(
					jen.If(matches).Block(
						jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(closures).Index(jen.Id("t").Index(jen.Lit(1)))).Block(
							jen.Id(NextName).Index(jen.Id("e")).Op("=").True(),
						),
						jen.Id(MovedName).Op("=").True(),
					),
				),
			),
			jen.If(jen.Op("!").Id(MovedName)).Block(
				jen.Break(),
			),
			jen.List(jen.Id(CurrentName), jen.Id(NextName)).Op("=").List(jen.Id(NextName), jen.Id(CurrentName)),
		),
		jen.Return(jen.Id(LengthName), jen.Id(OkName)),
	}
}
