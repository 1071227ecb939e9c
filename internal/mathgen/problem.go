// Package mathgen generates the area, perimeter and volume word problems
// that gate building placement, and checks typed answers against them.
package mathgen

import "github.com/vovakirdan/math-city/internal/city"

// ProblemKind is the quantity a problem asks for.
type ProblemKind string

const (
	ProblemArea      ProblemKind = "area"
	ProblemPerimeter ProblemKind = "perimeter"
	ProblemVolume    ProblemKind = "volume"
)

// Problem is one posed question with its canonical answer.
type Problem struct {
	Kind     ProblemKind
	Building city.Kind
	Question string
	Answer   string // decimal text of the integer result
	Dims     []int  // drawn dimensions in draw order: length, width[, height]
}

// allowed lists the problem kinds each building may ask, in draw order.
// Factories ask volume or area and never perimeter; the other kinds never
// ask volume.
var allowed = map[city.Kind][]ProblemKind{
	city.KindHouse:   {ProblemArea, ProblemPerimeter},
	city.KindShop:    {ProblemArea, ProblemPerimeter},
	city.KindFactory: {ProblemVolume, ProblemArea},
	city.KindPark:    {ProblemArea, ProblemPerimeter},
}

// AllowedKinds returns the problem kinds a building may ask.
func AllowedKinds(k city.Kind) []ProblemKind {
	kinds, ok := allowed[k]
	if !ok {
		return nil
	}
	out := make([]ProblemKind, len(kinds))
	copy(out, kinds)
	return out
}
