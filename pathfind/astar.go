// SPDX-License-Identifier: MIT

package pathfind

import (
	"container/heap"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hexpath/hex"
)

// AStar finds the cheapest route from src to dst under calc, abandoning
// any branch whose estimated total cost exceeds stopAt.
//
// Heuristic: with s = MinStepCost() of calc (0 if calc does not report one)
//
//	h(n) = s · min(dist(n, dst), dist(n, T) + 1 + dist(T, dst))
//
// where dist(n, T) is the distance to the nearest teleport; the second term
// is used only when a teleport set is supplied. Every step costs at least s
// and a teleport hop counts as one step, so h never overestimates and is
// consistent: the first time dst is popped its cost is optimal.
//
// Options: WithTeleports(set) adds teleport edges as in Paths; WithLogger(l)
// receives one Debug record. WithTeleport alone has no effect because AStar
// has no world to read villages from.
//
// Result:
//
//   - src == dst (both valid) yields Route{Steps: [src]} with cost 0.
//   - Cost is the accumulated calculator cost; MoveLeft is filled only when
//     calc.MaxCost() > 0. No waypoints are attached.
//
// Errors:
//
//   - ErrNilCalculator if calc is nil.
//   - ErrBadStopAt if stopAt is negative or NaN (+Inf is allowed).
//   - ErrNoRoute with an empty Route if src or dst is Invalid or no route
//     costs at most stopAt.
//
// Complexity:
//
//   - Time:  O(E log V) over the V tiles expanded, h costs O(|T|) per push.
//   - Space: O(V).
//
// With an unbounded calculator on an unbounded board and stopAt = +Inf an
// unreachable dst is never proven unreachable; bound the search with stopAt
// or use a calculator that rejects off-board tiles.
func AStar(src, dst hex.Location, stopAt float64, calc CostCalculator, opts ...Option) (Route, error) {
	// 1) Validate arguments.
	if calc == nil {
		return Route{}, ErrNilCalculator
	}
	if stopAt < 0 || math.IsNaN(stopAt) {
		return Route{}, ErrBadStopAt
	}
	if !src.Valid() || !dst.Valid() {
		return Route{}, ErrNoRoute
	}

	cfg := buildOptions(opts)
	r := &astarRunner{
		calc:   calc,
		src:    src,
		dst:    dst,
		stopAt: stopAt,
		tele:   cfg.resolveTeleports(nil, 0),
		g:      make(map[hex.Location]float64),
		prev:   make(map[hex.Location]hex.Location),
		closed: make(map[hex.Location]bool),
	}
	if ms, ok := calc.(minStepCoster); ok {
		r.minStep = ms.MinStepCost()
	}
	r.teleToDst = r.nearestTeleport(dst)

	// 2) Search.
	found := r.run()
	cfg.debug("pathfind: a* finished",
		"src", src.String(),
		"dst", dst.String(),
		"found", found,
		"expanded", humanize.Comma(int64(r.expanded)),
	)
	if !found {
		return Route{}, ErrNoRoute
	}

	// 3) Build the route.
	rt := Route{Steps: r.steps(), Cost: r.g[dst]}
	if maxCost, turnMove, _ := budgetOf(calc); maxCost > 0 {
		_, rt.MoveLeft = splitCost(rt.Cost, maxCost, turnMove)
	}

	return rt, nil
}

// astarRunner holds the mutable state of one AStar call.
type astarRunner struct {
	calc     CostCalculator
	src, dst hex.Location
	stopAt   float64
	minStep  float64
	tele     teleportIndex

	// teleToDst is dist(T, dst), -1 without teleports.
	teleToDst int

	g      map[hex.Location]float64
	prev   map[hex.Location]hex.Location
	closed map[hex.Location]bool

	pq       nodePQ
	seq      uint64
	expanded int
}

// nearestTeleport returns the distance from loc to the closest teleport,
// or -1 when there are none.
func (r *astarRunner) nearestTeleport(loc hex.Location) int {
	best := -1
	for _, t := range r.tele.list {
		if d := hex.Distance(loc, t); best < 0 || d < best {
			best = d
		}
	}
	return best
}

// h is the admissible estimate of the cost from n to dst.
func (r *astarRunner) h(n hex.Location) float64 {
	if r.minStep <= 0 {
		return 0
	}
	d := hex.Distance(n, r.dst)
	if r.teleToDst >= 0 {
		if via := r.nearestTeleport(n) + 1 + r.teleToDst; via < d {
			d = via
		}
	}
	return r.minStep * float64(d)
}

// push enqueues loc with cost g unless its estimate exceeds stopAt.
func (r *astarRunner) push(loc hex.Location, g float64) bool {
	f := g + r.h(loc)
	if f > r.stopAt {
		return false
	}
	heap.Push(&r.pq, &nodeItem{loc: loc, cost: g, key: f, seq: r.seq})
	r.seq++
	return true
}

// run expands tiles in (f, discovery) order until dst is closed or the
// frontier is exhausted.
func (r *astarRunner) run() bool {
	heap.Init(&r.pq)
	if !r.push(r.src, 0) {
		return false
	}
	r.g[r.src] = 0

	buf := make([]hex.Location, 0, 6+len(r.tele.list))
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.loc
		if r.closed[cur] {
			continue
		}
		r.closed[cur] = true
		r.expanded++
		if cur == r.dst {
			return true
		}

		buf = r.tele.adjacent(cur, buf)
		for _, next := range buf {
			if next == cur || r.closed[next] || !next.Valid() {
				continue
			}
			step, ok := r.calc.Cost(cur, next, item.cost)
			if !ok || step < 0 {
				continue
			}
			g := item.cost + step
			if old, seen := r.g[next]; seen && g >= old {
				continue
			}
			if r.push(next, g) {
				r.g[next] = g
				r.prev[next] = cur
			}
		}
	}

	return false
}

// steps walks the predecessor chain back from dst.
func (r *astarRunner) steps() []hex.Location {
	var out []hex.Location
	for at := r.dst; ; at = r.prev[at] {
		out = append(out, at)
		if at == r.src {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
