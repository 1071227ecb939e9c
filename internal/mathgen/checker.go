package mathgen

import "github.com/vovakirdan/math-city/internal/expr"

// Check reports whether input is an arithmetic expression equal in value to
// the problem's answer. It never fails loudly: malformed, empty or
// non-numeric input on either side is simply false.
func Check(p Problem, input string) bool {
	return expr.Equal(p.Answer, input)
}
