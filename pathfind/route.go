// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/hex"
)

// Waypoint annotates a route step where the unit stands at the end of a
// turn, or the final step of the route.
type Waypoint struct {
	Turns     int  // 1-based turn number the unit is on this tile
	ZOC       bool // tile lies in a hostile zone of control
	Capture   bool // tile is a village the unit's side does not own
	Invisible bool // unit is hidden from enemies on this tile
}

// String renders the waypoint for diagnostics, e.g. "2[zoc]".
func (w Waypoint) String() string {
	var flags []string
	if w.ZOC {
		flags = append(flags, "zoc")
	}
	if w.Capture {
		flags = append(flags, "capture")
	}
	if w.Invisible {
		flags = append(flags, "invisible")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("%d", w.Turns)
	}
	return fmt.Sprintf("%d[%s]", w.Turns, strings.Join(flags, ","))
}

// Route is a single route from Steps[0] to the last step.
type Route struct {
	// Steps is the ordered sequence of tiles, origin first.
	Steps []hex.Location
	// Cost is the accumulated calculator cost of the route.
	Cost float64
	// MoveLeft is the movement left at the destination at the end of the
	// turn in which it is reached.
	MoveLeft int
	// Waypoints holds turn boundaries and the final step only.
	Waypoints map[hex.Location]Waypoint
}

// Empty reports whether the route has no steps at all.
func (r Route) Empty() bool {
	return len(r.Steps) == 0
}

// Len is the number of moves (steps minus one); 0 for an empty route.
func (r Route) Len() int {
	if len(r.Steps) == 0 {
		return 0
	}
	return len(r.Steps) - 1
}

// Destination returns the last step, or hex.Invalid for an empty route.
func (r Route) Destination() hex.Location {
	if len(r.Steps) == 0 {
		return hex.Invalid
	}
	return r.Steps[len(r.Steps)-1]
}

// Turns returns the turn number recorded at the destination, 0 if the
// route carries no final waypoint.
func (r Route) Turns() int {
	return r.Waypoints[r.Destination()].Turns
}

// String renders the route for logs and fixtures:
//
//	route[(0,0) (1,0) (2,0)*1] cost=2 move_left=3
//
// Steps carrying a waypoint are suffixed with "*" and the waypoint.
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString("route[")
	for i, s := range r.Steps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
		if w, ok := r.Waypoints[s]; ok {
			sb.WriteByte('*')
			sb.WriteString(w.String())
		}
	}
	fmt.Fprintf(&sb, "] cost=%g move_left=%d", r.Cost, r.MoveLeft)

	return sb.String()
}

// Routes is a reachable set: every reachable destination mapped to its best
// route from one origin.
type Routes map[hex.Location]Route

// Destinations returns the reachable tiles sorted by hex.Compare.
func (rs Routes) Destinations() []hex.Location {
	out := make([]hex.Location, 0, len(rs))
	for loc := range rs {
		out = append(out, loc)
	}
	hex.Sort(out)

	return out
}

// NewTeleports builds a teleport set: every member is adjacent to every other.
func NewTeleports(locs ...hex.Location) mapset.Set[hex.Location] {
	set := mapset.New[hex.Location]()
	for _, l := range locs {
		if l.Valid() {
			set.Put(l)
		}
	}
	return set
}

// sortedTeleports expands a teleport set in deterministic order.
func sortedTeleports(set mapset.Set[hex.Location]) []hex.Location {
	if set.Size() == 0 {
		return nil
	}
	out := make([]hex.Location, 0, set.Size())
	set.Each(func(l hex.Location) {
		out = append(out, l)
	})
	hex.Sort(out)

	return out
}
