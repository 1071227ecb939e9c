package mathgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/math-city/internal/city"
)

// Dimension bounds, inclusive.
const (
	MinDim = 5
	MaxDim = 20
)

// Rand is the randomness a Generator needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator draws problems for building kinds. It is not safe for
// concurrent use unless its Rand is.
type Generator struct {
	rng Rand
}

// NewGenerator returns a generator backed by math/rand seeded with seed.
// A zero seed uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorWithRand returns a generator drawing from rng.
func NewGeneratorWithRand(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate picks one of the building's allowed problem kinds uniformly and
// draws its dimensions uniformly from [MinDim, MaxDim]. It panics for a
// kind outside the closed building set.
func (g *Generator) Generate(k city.Kind) Problem {
	kinds, ok := allowed[k]
	if !ok {
		panic(fmt.Sprintf("mathgen: no problems for building kind %v", k))
	}

	kind := kinds[g.rng.Intn(len(kinds))]
	f := lookup(kind)

	dims := make([]int, f.Dims)
	for i := range dims {
		dims[i] = MinDim + g.rng.Intn(MaxDim-MinDim+1)
	}
	return Build(kind, k, dims)
}
