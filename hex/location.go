// SPDX-License-Identifier: MIT

package hex

import (
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// Location identifies one tile of a hex grid in offset coordinates.
type Location struct {
	X, Y int
}

// Invalid is the sentinel "no location". It is not a tile of any grid.
var Invalid = Location{X: math.MinInt32, Y: math.MinInt32}

// Direction indexes the result of Neighbors.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// neighbor offsets for even and odd columns, indexed by Direction.
var (
	evenOffsets = [6][2]int{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
	oddOffsets  = [6][2]int{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
)

// Valid reports whether l is a real coordinate (not Invalid).
func (l Location) Valid() bool {
	return l != Invalid
}

// Neighbors returns the six adjacent tiles in Direction order.
// Some of them may lie outside any particular grid; filtering is the
// caller's concern. Invalid yields six Invalid values.
func (l Location) Neighbors() [6]Location {
	var out [6]Location
	if !l.Valid() {
		for i := range out {
			out[i] = Invalid
		}
		return out
	}
	offsets := &evenOffsets
	if l.X&1 == 1 {
		offsets = &oddOffsets
	}
	for i, d := range offsets {
		out[i] = Location{X: l.X + d[0], Y: l.Y + d[1]}
	}

	return out
}

// Neighbor returns the adjacent tile in direction d.
func (l Location) Neighbor(d Direction) Location {
	if d < North || d > NorthWest {
		return Invalid
	}
	return l.Neighbors()[d]
}

// Compare orders locations by X, then Y. It returns -1, 0 or +1.
func Compare(a, b Location) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Less reports whether l sorts before o.
func (l Location) Less(o Location) bool {
	return Compare(l, o) < 0
}

// Sort orders locs in place by Compare.
func Sort(locs []Location) {
	slices.SortFunc(locs, Compare)
}

// String renders the location as "(x,y)".
func (l Location) String() string {
	if !l.Valid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// cube converts offset coordinates to cube coordinates (q, r, s).
// x - x&1 is even for every x, so the division is exact for negatives too.
func (l Location) cube() (q, r, s int) {
	q = l.X
	r = l.Y - (l.X-(l.X&1))/2
	s = -q - r
	return q, r, s
}

// Distance returns the number of steps between a and b.
// It returns math.MaxInt32 if either location is Invalid.
// Complexity: O(1).
func Distance(a, b Location) int {
	if !a.Valid() || !b.Valid() {
		return math.MaxInt32
	}
	aq, ar, as := a.cube()
	bq, br, bs := b.cube()

	return max(abs(aq-bq), abs(ar-br), abs(as-bs))
}

// Adjacent reports whether a and b are distinct neighbors.
func Adjacent(a, b Location) bool {
	return Distance(a, b) == 1
}

// TilesRadius returns every tile within radius steps of center (center
// included), sorted by Compare. A negative radius or an Invalid center
// yields nil.
//
// Complexity: O(r²) time and memory.
func TilesRadius(center Location, radius int) []Location {
	if radius < 0 || !center.Valid() {
		return nil
	}
	out := make([]Location, 0, 1+3*radius*(radius+1))
	// Column x scans rows y in [cy-r, cy+r]; every tile within reach lies there.
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			loc := Location{X: x, Y: y}
			if Distance(center, loc) <= radius {
				out = append(out, loc)
			}
		}
	}

	return out
}

// TilesRadiusFrom returns the union of TilesRadius over centers, sorted by
// Compare. Invalid centers are skipped, and when keep is non-nil only tiles
// it accepts are returned, e.g. the tiles of one board.
//
// Complexity: O(k·r²) time for k centers, O(n) extra memory for n results.
func TilesRadiusFrom(centers []Location, radius int, keep func(Location) bool) []Location {
	if radius < 0 {
		return nil
	}
	seen := mapset.New[Location]()
	var out []Location
	for _, c := range centers {
		for _, loc := range TilesRadius(c, radius) {
			if seen.Has(loc) {
				continue
			}
			seen.Put(loc)
			if keep == nil || keep(loc) {
				out = append(out, loc)
			}
		}
	}
	Sort(out)

	return out
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
