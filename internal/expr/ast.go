// Package expr parses and evaluates the small arithmetic language accepted
// as an answer: number literals, + - * / (also × and ÷), unary sign and
// parentheses. Values are exact rationals, so 84/2 and 42.0 both equal 42.
package expr

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("expr: division by zero")

// Op is a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Node is an expression tree node: either a *Literal or a *Binary.
type Node interface {
	Eval() (*big.Rat, error)
	node()
}

// Literal is a number.
type Literal struct {
	Value *big.Rat
}

// Binary applies Op to two operands.
type Binary struct {
	Op          Op
	Left, Right Node
}

func (*Literal) node() {}
func (*Binary) node()  {}

// Eval returns a copy of the literal's value.
func (l *Literal) Eval() (*big.Rat, error) {
	return new(big.Rat).Set(l.Value), nil
}

// Eval evaluates both operands and combines them.
func (b *Binary) Eval() (*big.Rat, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case OpAdd:
		return left.Add(left, right), nil
	case OpSub:
		return left.Sub(left, right), nil
	case OpMul:
		return left.Mul(left, right), nil
	case OpDiv:
		if right.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return left.Quo(left, right), nil
	default:
		return nil, errors.New("expr: unknown operator")
	}
}
