package mathgen

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/vovakirdan/math-city/internal/city"
)

// Formula turns drawn dimensions into question text and an answer.
type Formula struct {
	Dims     int // number of dimensions to draw
	Compute  func(dims []int) int
	Question func(building string, dims []int) string
}

var (
	formulas = make(map[ProblemKind]Formula)
	mu       sync.RWMutex
)

// Register adds the formula for a problem kind. It panics if the kind is
// already registered.
func Register(kind ProblemKind, f Formula) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := formulas[kind]; exists {
		panic(fmt.Sprintf("mathgen: formula %q already registered", kind))
	}
	formulas[kind] = f
}

// lookup returns the formula for kind. An unregistered kind is a
// programming error and panics.
func lookup(kind ProblemKind) Formula {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formulas[kind]
	if !ok {
		panic(fmt.Sprintf("mathgen: unknown problem kind %q", kind))
	}
	return f
}

// Registered returns the registered problem kinds, sorted.
func Registered() []ProblemKind {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ProblemKind, 0, len(formulas))
	for k := range formulas {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func init() {
	Register(ProblemArea, Formula{
		Dims:    2,
		Compute: func(d []int) int { return d[0] * d[1] },
		Question: func(b string, d []int) string {
			return fmt.Sprintf("A %s has a length of %d meters and a width of %d meters. What is its area in square meters?", b, d[0], d[1])
		},
	})
	Register(ProblemPerimeter, Formula{
		Dims:    2,
		Compute: func(d []int) int { return 2 * (d[0] + d[1]) },
		Question: func(b string, d []int) string {
			return fmt.Sprintf("A %s has a length of %d meters and a width of %d meters. What is its perimeter in meters?", b, d[0], d[1])
		},
	})
	Register(ProblemVolume, Formula{
		Dims:    3,
		Compute: func(d []int) int { return d[0] * d[1] * d[2] },
		Question: func(b string, d []int) string {
			return fmt.Sprintf("A %s has dimensions: length = %dm, width = %dm, and height = %dm. What is its volume in cubic meters?", b, d[0], d[1], d[2])
		},
	})
}

// Build assembles a problem from already drawn dimensions.
func Build(kind ProblemKind, building city.Kind, dims []int) Problem {
	f := lookup(kind)
	if len(dims) != f.Dims {
		panic(fmt.Sprintf("mathgen: %s needs %d dimensions, got %d", kind, f.Dims, len(dims)))
	}
	d := make([]int, len(dims))
	copy(d, dims)

	return Problem{
		Kind:     kind,
		Building: building,
		Question: f.Question(building.String(), d),
		Answer:   strconv.Itoa(f.Compute(d)),
		Dims:     d,
	}
}
