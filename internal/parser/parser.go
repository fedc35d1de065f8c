// Package parser builds an AST from a token stream.
//
// The parser is predictive recursive descent with a single token of
// lookahead and no backtracking:
//
//	top         = alternative EOS
//	alternative = concat ('|' alternative)?
//	concat      = quantified concat?
//	quantified  = elementary ('*' | '+' | '?')?
//	elementary  = group | any | set | char | escape
//	group       = '(' alternative ')'
//	any         = '.'
//	set         = '[' '^'? set_item* ']'
//	set_item    = char ('-' char)?
//	char        = CHARACTER | escape
//	escape      = '\' ANY_TOKEN
package parser

import (
	"github.com/KromDaniel/bearpig/internal/ast"
	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/token"
)

// concatFirst is the set of kinds that may start another concatenated item.
var concatFirst = map[token.Kind]bool{
	token.ParenOpen:  true,
	token.SquareOpen: true,
	token.Any:        true,
	token.Character:  true,
	token.Escape:     true,
}

// Parser holds the token stream and the lookahead cursor.
type Parser struct {
	tokens []token.Token
	idx    int
	cur    token.Token
	logger *diag.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger traces every rule and consumed token at debug level.
func WithLogger(l *diag.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a parser positioned at the first token.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		logger: diag.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cur = p.at(0)
	return p
}

// Parse is a shorthand for New(tokens, opts...).Parse().
func Parse(tokens []token.Token, opts ...Option) (*ast.Alternative, error) {
	return New(tokens, opts...).Parse()
}

// Done reports whether every token has been consumed.
func (p *Parser) Done() bool { return p.idx == len(p.tokens) }

// Index returns the position of the lookahead token.
func (p *Parser) Index() int { return p.idx }

// Len returns the length of the token stream.
func (p *Parser) Len() int { return len(p.tokens) }

// Parse parses the whole stream. It succeeds only if the lookahead is EOS
// and every token was consumed.
func (p *Parser) Parse() (*ast.Alternative, error) {
	p.logger.Section("Parse")
	root, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOS || !p.Done() {
		return nil, p.unexpected("parseTopLevel", token.EOS)
	}
	return root, nil
}

func (p *Parser) at(i int) token.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	column := 0
	if n := len(p.tokens); n > 0 {
		column = p.tokens[n-1].Column + 1
	}
	return token.EndOfStream(column)
}

// advance moves the lookahead forward, synthesizing EOS past the end.
func (p *Parser) advance() {
	p.idx++
	p.cur = p.at(p.idx)
}

func (p *Parser) consume(fn string, expected token.Kind) error {
	p.logger.Log("%s: expecting %s, current token: %s at %d", fn, expected, p.cur, p.idx)
	if p.cur.Kind != expected {
		return p.unexpected(fn, expected)
	}
	p.advance()
	return nil
}

// consumeAny accepts whatever real token is under the cursor.
func (p *Parser) consumeAny(fn string) error {
	p.logger.Log("%s: expecting anything, current token: %s at %d", fn, p.cur, p.idx)
	if p.cur.Kind == token.EOS {
		return p.unexpected(fn)
	}
	p.advance()
	return nil
}

func (p *Parser) unexpected(fn string, expected ...token.Kind) *Error {
	return &Error{
		Func:       fn,
		Index:      p.idx,
		Len:        len(p.tokens),
		Column:     p.cur.Column,
		Expected:   expected,
		Found:      p.cur.Kind,
		EndOfInput: p.cur.Kind == token.EOS,
		Source:     token.Text(p.tokens),
	}
}

func (p *Parser) parseAlternative() (*ast.Alternative, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	alt := &ast.Alternative{Branches: []*ast.Concat{first}}

	if p.cur.Kind == token.Alternative {
		if err := p.consume("parseAlternative", token.Alternative); err != nil {
			return nil, err
		}
		next, err := p.parseAlternative()
		if err != nil {
			return nil, err
		}
		alt.Branches = append(alt.Branches, next.Branches...)
	}
	return alt, nil
}

func (p *Parser) parseConcat() (*ast.Concat, error) {
	q, err := p.parseQuantified()
	if err != nil {
		return nil, err
	}
	concat := &ast.Concat{Items: []*ast.Quantified{q}}
	if p.cur.Kind == token.EOS {
		return concat, nil
	}
	for concatFirst[p.cur.Kind] {
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		concat.Merge(next)
	}
	return concat, nil
}

func (p *Parser) parseQuantified() (*ast.Quantified, error) {
	expr, err := p.parseElementary()
	if err != nil {
		return nil, err
	}
	q := &ast.Quantified{Expr: expr}

	switch p.cur.Kind {
	case token.Star:
		q.Quantifier = ast.Star
	case token.Plus:
		q.Quantifier = ast.Plus
	case token.Optional:
		q.Quantifier = ast.Optional
	default:
		return q, nil
	}
	if err := p.consume("parseQuantified", p.cur.Kind); err != nil {
		return nil, err
	}
	return q, nil
}

func (p *Parser) parseElementary() (ast.Elementary, error) {
	p.logger.Log("parseElementary: current token: %s at %d", p.cur, p.idx)
	var (
		expr ast.Elementary
		err  error
	)
	switch p.cur.Kind {
	case token.ParenOpen:
		var g *ast.Group
		g, err = p.parseGroup()
		expr = g
	case token.Any:
		var a *ast.AnyChar
		a, err = p.parseAny()
		expr = a
	case token.SquareOpen:
		var s *ast.Set
		s, err = p.parseSet()
		expr = s
	case token.Character:
		var c *ast.Char
		c, err = p.parseChar()
		expr = c
	case token.Escape:
		var e *ast.EscapeSeq
		e, err = p.parseEscape()
		expr = e
	default:
		return nil, p.unexpected("parseElementary",
			token.ParenOpen, token.SquareOpen, token.Character, token.Any, token.Escape)
	}
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseChar accepts a CHARACTER, or an escape sequence whose escaped token
// is then used as the character.
func (p *Parser) parseChar() (*ast.Char, error) {
	if p.cur.Kind == token.Escape {
		esc, err := p.parseEscape()
		if err != nil {
			return nil, err
		}
		return &esc.Char, nil
	}
	c := &ast.Char{Token: p.cur, Index: p.idx}
	if err := p.consume("parseChar", token.Character); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseEscape() (*ast.EscapeSeq, error) {
	idx := p.idx
	if err := p.consume("parseEscape", token.Escape); err != nil {
		return nil, err
	}
	escaped := p.cur
	if err := p.consumeAny("parseEscape"); err != nil {
		return nil, err
	}
	p.logger.Log("parseEscape: escaped token %s", escaped)
	return &ast.EscapeSeq{Char: ast.Char{Token: escaped, Index: idx}}, nil
}

func (p *Parser) parseAny() (*ast.AnyChar, error) {
	tok := p.cur
	if err := p.consume("parseAny", token.Any); err != nil {
		return nil, err
	}
	return &ast.AnyChar{Token: tok}, nil
}

func (p *Parser) parseGroup() (*ast.Group, error) {
	if err := p.consume("parseGroup", token.ParenOpen); err != nil {
		return nil, err
	}
	inner, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	if err := p.consume("parseGroup", token.ParenClose); err != nil {
		return nil, err
	}
	return &ast.Group{Expr: inner}, nil
}

func (p *Parser) parseSet() (*ast.Set, error) {
	if err := p.consume("parseSet", token.SquareOpen); err != nil {
		return nil, err
	}
	set := &ast.Set{}
	if p.cur.Kind == token.Caret {
		if err := p.consume("parseSet", token.Caret); err != nil {
			return nil, err
		}
		set.Negative = true
	}

	for p.cur.Kind == token.Character || p.cur.Kind == token.Escape {
		item, err := p.parseSetItem()
		if err != nil {
			return nil, err
		}
		set.Items = append(set.Items, item)
	}

	if err := p.consume("parseSet", token.SquareClose); err != nil {
		return nil, err
	}
	p.logger.Log("parseSet: parsed set with %d items (negative: %v)", len(set.Items), set.Negative)
	return set, nil
}

func (p *Parser) parseSetItem() (*ast.SetItem, error) {
	start, err := p.parseChar()
	if err != nil {
		return nil, err
	}
	item := &ast.SetItem{Start: start}
	if p.cur.Kind == token.Dash {
		if err := p.consume("parseSetItem", token.Dash); err != nil {
			return nil, err
		}
		stop, err := p.parseChar()
		if err != nil {
			return nil, err
		}
		item.Stop = stop
		item.Range = true
	}
	return item, nil
}
