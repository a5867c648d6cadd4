// Package parser turns scanned tokens into *value.Value graphs: atoms and
// lists built directly out of the same cells the evaluator runs on, so
// there is no separate AST to walk or discard.
//
// Unlike the reference implementation, which requires every top-level form
// to be a parenthesized list, Parse accepts a bare atom at the top level
// too - a lone number, string or variable is a complete, evaluable
// expression on its own, and rejecting it would make REPL use (and the
// bare-atom round-trip the language guarantees) needlessly awkward.
package parser

import (
	"strconv"

	"github.com/mna/jl/lang/scanner"
	"github.com/mna/jl/lang/token"
	"github.com/mna/jl/lang/value"
)

// Parser reads successive top-level expressions out of one source buffer.
type Parser struct {
	ctx *value.Context
	sc  scanner.Scanner

	tok token.Token
	lit string
	pos token.Pos
}

// New returns a Parser positioned at the start of src. ctx receives
// diagnostics (via Errorf) and owns every cell the parser allocates.
func New(ctx *value.Context, src []byte) *Parser {
	p := &Parser{ctx: ctx}
	p.sc.Init(src)
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.tok, p.lit, p.pos = p.sc.Scan()
	p.ctx.SetLine(p.pos.Line())
}

// More reports whether there is another top-level expression left to parse.
func (p *Parser) More() bool { return p.tok != token.EOF }

// Parse reads and returns the next top-level expression, or nil at
// end-of-input or after a malformed expression (in which case a diagnostic
// has already been reported through the context's error sink).
func (p *Parser) Parse() *value.Value {
	if p.tok == token.EOF {
		return nil
	}
	return p.parseExpr()
}

func (p *Parser) parseExpr() *value.Value {
	switch p.tok {
	case token.LPAREN:
		return p.parseList()
	case token.STRING:
		v := value.NewString(p.ctx, p.lit)
		p.advance()
		return v
	case token.WORD:
		return p.parseWord()
	case token.RPAREN:
		p.ctx.Errorf("unexpected ')'")
		p.advance()
		return nil
	default:
		p.ctx.Errorf("expected expression, got %s", p.tok)
		p.advance()
		return nil
	}
}

// parseWord classifies a bare word as a Number if it parses cleanly and
// completely as a decimal float, or a Variable otherwise. "cleanly and
// completely" rules out things like "1e" or "12abc" ever being read as
// partial numbers - they are variable names, same as any other identifier.
func (p *Parser) parseWord() *value.Value {
	lit := p.lit
	p.advance()
	if n, ok := parseNumber(lit); ok {
		return value.NewNumber(p.ctx, n)
	}
	return value.NewVariable(p.ctx, lit)
}

func parseNumber(lit string) (float64, bool) {
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseList reads "(" expr* ")" into a freshly built chain, reporting and
// unwinding on a missing close paren or a malformed element.
func (p *Parser) parseList() *value.Value {
	p.advance() // consume '('

	var head, tail *value.Value
	fail := func() *value.Value {
		value.Release(p.ctx, head)
		return nil
	}

	for {
		switch p.tok {
		case token.RPAREN:
			p.advance()
			return value.NewListOwning(p.ctx, head)
		case token.EOF:
			p.ctx.Errorf("expected ')', got end-of-input")
			return fail()
		default:
			item := p.parseExpr()
			if item == nil {
				return fail()
			}
			if tail == nil {
				head = item
			} else {
				value.SetNext(tail, item)
			}
			tail = item
		}
	}
}
