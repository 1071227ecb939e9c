package expr

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDepth bounds parenthesis and unary-sign nesting.
const maxDepth = 64

// SyntaxError describes where parsing stopped.
type SyntaxError struct {
	Offset int // byte offset into the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: %s at offset %d", e.Msg, e.Offset)
}

// Parse builds an expression tree from s.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "×" | "/" | "÷") factor }
//	factor = ("+" | "-") factor | number | "(" expr ")"
func Parse(s string) (Node, error) {
	p := &parser{src: s}
	p.next()

	if p.tok.kind == tokEOF {
		return nil, &SyntaxError{Offset: 0, Msg: "empty expression"}
	}

	n, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return n, nil
}

// Eval parses s and evaluates it.
func Eval(s string) (*big.Rat, error) {
	n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return n.Eval()
}

// Equal reports whether a and b parse and evaluate to the same value.
// Any parse or evaluation failure yields false.
func Equal(a, b string) bool {
	va, err := Eval(a)
	if err != nil {
		return false
	}
	vb, err := Eval(b)
	if err != nil {
		return false
	}
	return va.Cmp(vb) == 0
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOp
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	op   Op
	pos  int
}

type parser struct {
	src string
	pos int
	tok token
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.tok.pos, Msg: fmt.Sprintf(format, args...)}
}

// next advances to the following token.
func (p *parser) next() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}

	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	switch {
	case isDigit(r) || r == '.':
		end := p.pos
		for end < len(p.src) && (isDigit(rune(p.src[end])) || p.src[end] == '.') {
			end++
		}
		p.pos = end
		p.tok = token{kind: tokNumber, text: p.src[start:end], pos: start}
		return
	case r == '(':
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case r == ')':
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case r == '+':
		p.tok = token{kind: tokOp, text: "+", op: OpAdd, pos: start}
	case r == '-' || r == '−':
		p.tok = token{kind: tokOp, text: string(r), op: OpSub, pos: start}
	case r == '*' || r == '×':
		p.tok = token{kind: tokOp, text: string(r), op: OpMul, pos: start}
	case r == '/' || r == '÷':
		p.tok = token{kind: tokOp, text: string(r), op: OpDiv, pos: start}
	default:
		p.tok = token{kind: tokInvalid, text: string(r), pos: start}
	}
	p.pos += size
}

func (p *parser) expr(depth int) (Node, error) {
	left, err := p.term(depth)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.op == OpAdd || p.tok.op == OpSub) {
		op := p.tok.op
		p.next()
		right, err := p.term(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) term(depth int) (Node, error) {
	left, err := p.factor(depth)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.op == OpMul || p.tok.op == OpDiv) {
		op := p.tok.op
		p.next()
		right, err := p.factor(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) factor(depth int) (Node, error) {
	if depth >= maxDepth {
		return nil, p.errorf("expression nested too deeply")
	}

	switch p.tok.kind {
	case tokNumber:
		v, ok := parseDecimal(p.tok.text)
		if !ok {
			return nil, p.errorf("malformed number %q", p.tok.text)
		}
		p.next()
		return &Literal{Value: v}, nil

	case tokOp:
		if p.tok.op != OpAdd && p.tok.op != OpSub {
			return nil, p.errorf("unexpected %q", p.tok.text)
		}
		op := p.tok.op
		p.next()
		operand, err := p.factor(depth + 1)
		if err != nil {
			return nil, err
		}
		// Unary sign is sugar for 0 ± operand.
		return &Binary{Op: op, Left: &Literal{Value: new(big.Rat)}, Right: operand}, nil

	case tokLParen:
		p.next()
		inner, err := p.expr(depth + 1)
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.next()
		return inner, nil

	case tokEOF:
		return nil, p.errorf("unexpected end of expression")

	default:
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
}

// parseDecimal reads digits with at most one decimal point as an exact
// base-10 value. Leading zeros never select another base.
func parseDecimal(text string) (*big.Rat, bool) {
	whole, frac, _ := strings.Cut(text, ".")
	if strings.Contains(frac, ".") || whole+frac == "" {
		return nil, false
	}

	num, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, false
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return new(big.Rat).SetFrac(num, den), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
