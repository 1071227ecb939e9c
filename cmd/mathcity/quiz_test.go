package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/journal"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

// volumeThenArea asks 2x3x4 volume problems for factories and 5x6 area
// problems for everything else.
type volumeThenArea struct{}

func (volumeThenArea) Generate(k city.Kind) mathgen.Problem {
	if k == city.KindFactory {
		return mathgen.Build(mathgen.ProblemVolume, k, []int{2, 3, 4})
	}
	return mathgen.Build(mathgen.ProblemArea, k, []int{5, 6})
}

func newTestQuiz(t *testing.T, input string, kinds ...city.Kind) (quiz, *bytes.Buffer) {
	t.Helper()
	j, err := journal.Open()
	if err != nil {
		t.Fatalf("journal.Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	var out bytes.Buffer
	if len(kinds) == 0 {
		kinds = city.Kinds()
	}
	return quiz{
		in:       bufio.NewScanner(strings.NewReader(input)),
		out:      &out,
		problems: volumeThenArea{},
		kinds:    kinds,
		history:  j,
		logger:   log.New(io.Discard),
	}, &out
}

func TestQuizRun(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kinds   []city.Kind
		count   int
		summary string
		asked   int
	}{
		{"mixed", "30\n5*6\n2*3*4\n", []city.Kind{city.KindFactory, city.KindHouse}, 3, "2 correct, 1 incorrect", 3},
		{"expressions", "24\n(2*3)*4\n", []city.Kind{city.KindFactory}, 2, "2 correct, 0 incorrect", 2},
		{"rotates kinds", "30\n30\n24\n30\n", nil, 4, "4 correct, 0 incorrect", 4},
		{"garbage is wrong", "abc\n\n", []city.Kind{city.KindPark}, 2, "0 correct, 2 incorrect", 2},
		{"stops at end of input", "30\n", []city.Kind{city.KindShop}, 3, "1 correct, 0 incorrect", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, out := newTestQuiz(t, tt.input, tt.kinds...)
			if err := q.run(tt.count); err != nil {
				t.Fatalf("run() failed: %v", err)
			}
			got := out.String()
			if !strings.Contains(got, tt.summary) {
				t.Errorf("summary missing %q:\n%s", tt.summary, got)
			}
			if n := strings.Count(got, "> "); n != tt.asked {
				t.Errorf("asked %d problems, want %d", n, tt.asked)
			}
		})
	}
}

func TestQuizShowsAnswerOnMiss(t *testing.T) {
	q, out := newTestQuiz(t, "25\n", city.KindFactory)
	if err := q.run(1); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Incorrect. The answer is 24.") {
		t.Errorf("output = %q", out.String())
	}

	entries, err := q.history.Recent(5)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Input != "25" || entries[0].Correct {
		t.Errorf("journal = %+v", entries)
	}
}

func TestPrintKinds(t *testing.T) {
	var out bytes.Buffer
	printKinds(&out)

	for _, want := range []string{
		"house", "1x1", "area, perimeter",
		"factory", "3x3", "volume, area", "500 coins",
		"park", "Recreational space",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("kinds output missing %q", want)
		}
	}
}
