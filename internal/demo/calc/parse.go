package calc

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"martianoff/sumtypes/adt"
)

// ParseError reports a syntax error in a calc script.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parse reads a calc script into a Code instance. Statements are
//
//	name = expr
//	print expr
//
// separated by newlines or ';'. Expressions use + - * /, unary + -,
// parentheses, numbers and variable names. Comments start with //.
func (c *Calc) Parse(src string) (*adt.Instance, error) {
	p := newParser(c, src)
	var stmts []*adt.Instance
	for {
		p.skipSeparators()
		if p.tok == scanner.EOF {
			break
		}
		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.tok != scanner.EOF && p.tok != '\n' && p.tok != ';' {
			return nil, p.errorf("unexpected %s after statement", p.describe())
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return c.Code.New(stmts)
}

// ParseExpr reads a single expression.
func (c *Calc) ParseExpr(src string) (*adt.Instance, error) {
	p := newParser(c, src)
	p.skipSeparators()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSeparators()
	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %s after expression", p.describe())
	}
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

type parser struct {
	calc *Calc
	s    scanner.Scanner
	tok  rune
	err  *ParseError
}

func newParser(c *Calc, src string) *parser {
	p := &parser{calc: c}
	p.s.Init(strings.NewReader(src))
	p.s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = &ParseError{Pos: s.Position, Msg: msg}
		}
	}
	p.next()
	return p
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) skipSeparators() {
	for p.tok == '\n' || p.tok == ';' {
		p.next()
	}
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	if p.err != nil {
		return p.err
	}
	return &ParseError{Pos: p.s.Position, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) describe() string {
	switch p.tok {
	case scanner.EOF:
		return "end of input"
	case '\n':
		return "newline"
	}
	return strconv.Quote(p.s.TokenText())
}

func (p *parser) stmt() (*adt.Instance, error) {
	if p.tok != scanner.Ident {
		return nil, p.errorf("expected statement, found %s", p.describe())
	}
	name := p.s.TokenText()
	p.next()
	if name == "print" {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.calc.Print.New(e)
	}
	if p.tok != '=' {
		return nil, p.errorf("expected '=' after %s, found %s", name, p.describe())
	}
	p.next()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return p.calc.Assign.New(name, e)
}

func (p *parser) expr() (*adt.Instance, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.calc.Add
		if p.tok == '-' {
			op = p.calc.Sub
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if left, err = p.calc.Binary.New(op.MustNew(), left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) term() (*adt.Instance, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.calc.Mul
		if p.tok == '/' {
			op = p.calc.Div
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if left, err = p.calc.Binary.New(op.MustNew(), left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) unary() (*adt.Instance, error) {
	if p.tok != '+' && p.tok != '-' {
		return p.primary()
	}
	op := p.calc.Pos
	if p.tok == '-' {
		op = p.calc.Neg
	}
	p.next()
	v, err := p.unary()
	if err != nil {
		return nil, err
	}
	return p.calc.Unary.New(op.MustNew(), v)
}

func (p *parser) primary() (*adt.Instance, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		text := p.s.TokenText()
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errorf("invalid number %s", text)
		}
		p.next()
		return p.calc.Number.New(x)
	case scanner.Ident:
		name := p.s.TokenText()
		if name == "print" {
			return nil, p.errorf("print is a statement, not an expression")
		}
		p.next()
		return p.calc.Variable.New(name)
	case '(':
		p.next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ')', found %s", p.describe())
		}
		p.next()
		return e, nil
	}
	return nil, p.errorf("expected expression, found %s", p.describe())
}
