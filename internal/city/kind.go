// Package city models the placement grid: the closed set of building kinds,
// their square footprints, and the occupancy map that keeps footprints from
// overlapping.
package city

import (
	"fmt"
	"strings"
)

// Kind identifies a building type. The zero value means no building.
type Kind int

const (
	KindNone Kind = iota
	KindHouse
	KindShop
	KindFactory
	KindPark
)

// Info is the static description of a building kind.
type Info struct {
	Kind        Kind
	Name        string // lower-case identifier used in problem text and CLI
	Title       string
	Size        int // footprint edge length in cells
	Description string
	Cost        string // display only
}

var catalog = [...]Info{
	KindHouse:   {KindHouse, "house", "House", 1, "Basic residential building", "100 coins"},
	KindShop:    {KindShop, "shop", "Shop", 2, "Commercial building", "250 coins"},
	KindFactory: {KindFactory, "factory", "Factory", 3, "Industrial complex", "500 coins"},
	KindPark:    {KindPark, "park", "Park", 2, "Recreational space", "150 coins"},
}

// Kinds returns every building kind in menu order.
func Kinds() []Kind {
	return []Kind{KindHouse, KindShop, KindFactory, KindPark}
}

// Valid reports whether k is one of the building kinds.
func (k Kind) Valid() bool {
	return k > KindNone && int(k) < len(catalog)
}

// Info returns the catalog entry for k. It panics for an invalid kind: the
// kind set is closed and validated at the input boundary, so reaching here
// with anything else is a programming error.
func (k Kind) Info() Info {
	if !k.Valid() {
		panic(fmt.Sprintf("city: unknown building kind %d", int(k)))
	}
	return catalog[k]
}

// Size returns the footprint edge length of k.
func (k Kind) Size() int {
	return k.Info().Size
}

// String returns the lower-case name, or "none" for KindNone.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].Name
}

// ParseKind resolves a building name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if catalog[k].Name == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("city: unknown building kind %q", s)
}
