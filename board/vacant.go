// SPDX-License-Identifier: MIT

package board

import "github.com/katalvlaran/hexpath/hex"

// vacantItem is a queued tile and its ring number.
type vacantItem struct {
	loc   hex.Location
	depth int
}

// vacantWalker holds the state of one FindVacant call.
type vacantWalker struct {
	board   *Board
	unit    *Unit
	queue   []vacantItem
	visited map[hex.Location]bool
	// castle restricts both the answer and the walk to castle tiles.
	castle bool
}

// FindVacant returns the tile closest to start, within maxDepth steps over
// board tiles, that no unit occupies. When u is non-nil the tile must also
// be terrain u can enter, and u's own tile counts as vacant.
//
// Tiles are visited ring by ring in neighbor order, so among equally
// distant candidates the first discovered wins and the answer is stable.
// A negative maxDepth, an off-board start or no candidate yields
// (hex.Invalid, false).
//
// Complexity: O(min(V, r²)) for the V board tiles within r = maxDepth.
func (b *Board) FindVacant(start hex.Location, maxDepth int, u *Unit) (hex.Location, bool) {
	return b.findVacant(start, maxDepth, u, false)
}

// FindVacantCastle is FindVacant limited to castle: the tile found must be
// castle and reachable from start over castle tiles only, so start itself
// must be castle. It places recruits around a keep.
func (b *Board) FindVacantCastle(start hex.Location, maxDepth int, u *Unit) (hex.Location, bool) {
	return b.findVacant(start, maxDepth, u, true)
}

func (b *Board) findVacant(start hex.Location, maxDepth int, u *Unit, castle bool) (hex.Location, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tiles[start]
	if !ok || maxDepth < 0 || (castle && t != Castle) {
		return hex.Invalid, false
	}

	w := &vacantWalker{
		board:   b,
		unit:    u,
		visited: map[hex.Location]bool{start: true},
		castle:  castle,
	}
	w.queue = append(w.queue, vacantItem{loc: start})
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if w.vacant(item.loc) {
			return item.loc, true
		}
		if item.depth < maxDepth {
			w.enqueueNeighbors(item)
		}
	}

	return hex.Invalid, false
}

// vacant reports whether loc can take the walker's unit. Caller holds the read lock.
func (w *vacantWalker) vacant(loc hex.Location) bool {
	if other, ok := w.board.units[loc]; ok && other != w.unit {
		return false
	}
	if w.unit == nil {
		return true
	}
	return w.unit.MovementCost(w.board.tiles[loc]) <= w.unit.TotalMovement()
}

// enqueueNeighbors queues the unseen on-board neighbors of item.
func (w *vacantWalker) enqueueNeighbors(item vacantItem) {
	for _, n := range item.loc.Neighbors() {
		if w.visited[n] {
			continue
		}
		t, ok := w.board.tiles[n]
		if !ok || (w.castle && t != Castle) {
			continue
		}
		w.visited[n] = true
		w.queue = append(w.queue, vacantItem{loc: n, depth: item.depth + 1})
	}
}
