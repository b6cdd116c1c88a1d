// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/hexpath/hex"

// EnemyZOC reports whether loc lies in a zone of control hostile to side:
// some unit adjacent to loc that side's team regards as an enemy, that
// emits a zone of control and that viewer can see (or seeAll is set).
//
// The predicate keeps no state and only reads w, so independent searches
// may call it concurrently on one snapshot. An unknown side, a nil world
// or an Invalid location yields false.
//
// Complexity: O(1) – six roster lookups.
func EnemyZOC(w World, loc hex.Location, viewer Team, side int, seeAll bool) bool {
	if w == nil || !loc.Valid() {
		return false
	}
	current, ok := w.Team(side)
	if !ok || current == nil {
		return false
	}
	for _, n := range loc.Neighbors() {
		if !w.OnBoard(n) {
			continue
		}
		u, ok := visibleUnit(w, n, viewer, seeAll)
		if !ok || u.Side() == side {
			continue
		}
		if current.IsEnemy(u.Side()) && u.EmitsZOC() {
			return true
		}
	}

	return false
}

// visibleUnit returns the unit on loc as viewer perceives it. Without
// seeAll a fogged tile hides any foreign unit, and an enemy of the viewer
// concealed by its terrain is treated as absent.
func visibleUnit(w World, loc hex.Location, viewer Team, seeAll bool) (Unit, bool) {
	u, ok := w.UnitAt(loc)
	if !ok || u == nil {
		return nil, false
	}
	if seeAll {
		return u, true
	}
	if viewer == nil {
		return nil, false
	}
	if u.Side() == viewer.Side() {
		return u, true
	}
	if viewer.Fogged(loc) {
		return nil, false
	}
	if viewer.IsEnemy(u.Side()) && u.HiddenOn(w.Terrain(loc)) {
		return nil, false
	}

	return u, true
}
