package expr

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  string // as a big.Rat string
	}{
		{"42", "42"},
		{"  42  ", "42"},
		{"042", "42"},
		{"40+2", "42"},
		{"50 - 8", "42"},
		{"6*7", "42"},
		{"6×7", "42"},
		{"84/2", "42"},
		{"84÷2", "42"},
		{"2*(10+11)", "42"},
		{"2*10+11", "31"},
		{"10-4-3", "3"},
		{"64/4/2", "8"},
		{"-5+47", "42"},
		{"--42", "42"},
		{"+42", "42"},
		{"−3", "-3"},
		{"1/3", "1/3"},
		{"42.0", "42"},
		{"0.5*84", "42"},
		{"((((7))))*6", "42"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Eval(tc.input)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tc.input, err)
			}
			want, _ := new(big.Rat).SetString(tc.want)
			if got.Cmp(want) != 0 {
				t.Errorf("Eval(%q) = %s, want %s", tc.input, got.RatString(), tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a number",
		"4 2",
		"40+",
		"*42",
		"(42",
		"42)",
		"()",
		"1..2",
		".",
		"4x2",
		"2^3",
		"\xff",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", in)
			}
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Errorf("Parse(%q) error %T is not a *SyntaxError", in, err)
			}
		})
	}
}

func TestSyntaxErrorOffset(t *testing.T) {
	_, err := Parse("12 + ?")
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Offset != 5 {
		t.Errorf("Offset = %d, expected 5", syn.Offset)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, in := range []string{"1/0", "5/(3-3)", "0/0"} {
		if _, err := Eval(in); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Eval(%q) error = %v, want ErrDivisionByZero", in, err)
		}
	}
}

func TestNestingLimit(t *testing.T) {
	deep := strings.Repeat("(", maxDepth+1) + "1" + strings.Repeat(")", maxDepth+1)
	if _, err := Parse(deep); err == nil {
		t.Error("deeply nested input should be rejected")
	}

	signs := strings.Repeat("-", maxDepth+1) + "1"
	if _, err := Parse(signs); err == nil {
		t.Error("long unary chains should be rejected")
	}

	ok := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	if _, err := Parse(ok); err != nil {
		t.Errorf("moderate nesting should parse: %v", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"42", "42", true},
		{"42", "40+2", true},
		{"42", "41", false},
		{"42", "", false},
		{"42", "not a number", false},
		{"", "", false},
		{"42", "1/0", false},
		{"100", "10*10", true},
		{"0.5", "1/2", true},
	}

	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLiteralEvalReturnsCopy(t *testing.T) {
	lit := &Literal{Value: big.NewRat(7, 1)}
	v, _ := lit.Eval()
	v.SetInt64(99)

	again, _ := lit.Eval()
	if again.Cmp(big.NewRat(7, 1)) != 0 {
		t.Errorf("mutating a result changed the literal to %s", again.RatString())
	}
}
