// SPDX-License-Identifier: MIT

package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hexpath/hex"
)

// Paths computes the reachable set of the unit standing on origin: every
// tile it can reach within its movement budget, optionally extended by
// WithAdditionalTurns, mapped to the best route there.
//
// The search is a uniform-cost (Dijkstra) expansion over the hex grid whose
// edge weights come from the cost model. A step that does not fit in the
// current turn rolls over into the next one, so a tile with best cost C is
// reachable iff C ≤ MaxCost + AdditionalTurns·TurnMovement. Tiles in the
// teleport set are additionally adjacent to every other member of the set.
//
// Options:
//
//   - WithCalculator(c): use c; otherwise a StandardCalculator is built
//     from WithIgnoreZOC, WithIgnoreUnits and WithSeeAll.
//   - WithAdditionalTurns(n): explore n turns past the current one.
//   - WithTeleport() / WithTeleports(set): enable teleport edges.
//   - WithLogger(l): one Debug record with search statistics.
//
// Result:
//
//   - origin maps to Route{Steps: [origin], Cost: 0, MoveLeft: MaxCost}.
//   - every other route carries Cost, MoveLeft and waypoints at turn
//     boundaries and at the destination.
//   - an Invalid or off-board origin yields an empty map and no error.
//
// Errors:
//
//   - ErrNilWorld, ErrNilTeam for missing collaborators.
//   - ErrNoUnit if nobody stands on origin.
//   - calculator construction errors (ErrUnknownSide).
//
// Determinism: frontier ties are broken by discovery order and neighbors
// are expanded in fixed order, so equal inputs give equal outputs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the V tiles within budget, E ≤ 6V + V·|teleports|.
//   - Space: O(V) for the cost and predecessor maps, O(V·L) for the routes
//     where L is the mean route length.
func Paths(w World, origin hex.Location, viewer Team, opts ...Option) (Routes, error) {
	// 1) Validate collaborators.
	if w == nil {
		return nil, ErrNilWorld
	}
	if viewer == nil {
		return nil, ErrNilTeam
	}

	// 2) An Invalid origin propagates as an empty result.
	if !origin.Valid() || !w.OnBoard(origin) {
		return Routes{}, nil
	}
	u, ok := w.UnitAt(origin)
	if !ok || u == nil {
		return nil, fmt.Errorf("%w %v", ErrNoUnit, origin)
	}

	// 3) Resolve configuration and the cost model.
	cfg := buildOptions(opts)
	calc := cfg.Calculator
	if calc == nil {
		std, err := NewStandardCalculator(w, u, viewer, opts...)
		if err != nil {
			return nil, err
		}
		calc = std
	}
	maxCost, turnMove, bounded := budgetOf(calc)
	limit := math.Inf(1)
	if bounded {
		limit = float64(maxCost + cfg.AdditionalTurns*turnMove)
	}

	// 4) Run the search.
	r := &pathsRunner{
		world:  w,
		calc:   calc,
		limit:  limit,
		tele:   cfg.resolveTeleports(w, u.Side()),
		origin: origin,
		best:   make(map[hex.Location]float64),
		prev:   make(map[hex.Location]hex.Location),
		done:   make(map[hex.Location]bool),
	}
	r.init()
	r.process()

	// 5) Turn the predecessor tree into annotated routes.
	team, _ := w.Team(u.Side())
	ann := annotator{world: w, unit: u, team: team, viewer: viewer, cfg: &cfg}
	routes := make(Routes, len(r.done))
	for loc := range r.done {
		routes[loc] = r.route(loc, maxCost, turnMove, &ann)
	}

	cfg.debug("pathfind: reachable set built",
		"origin", origin.String(),
		"reachable", humanize.Comma(int64(len(routes))),
		"expanded", humanize.Comma(int64(r.expanded)),
		"limit", limit,
	)

	return routes, nil
}

// pathsRunner holds the mutable state of one Paths call.
type pathsRunner struct {
	world  World
	calc   CostCalculator
	limit  float64
	tele   teleportIndex
	origin hex.Location

	best map[hex.Location]float64      // best known accumulated cost
	prev map[hex.Location]hex.Location // predecessor on the best route
	done map[hex.Location]bool         // cost is final

	pq       nodePQ
	seq      uint64
	expanded int
}

// init seeds the frontier with the origin at cost 0.
func (r *pathsRunner) init() {
	r.best[r.origin] = 0
	heap.Init(&r.pq)
	r.push(r.origin, 0)
}

// push enqueues loc with accumulated cost g.
func (r *pathsRunner) push(loc hex.Location, g float64) {
	heap.Push(&r.pq, &nodeItem{loc: loc, cost: g, key: g, seq: r.seq})
	r.seq++
}

// process pops tiles in (cost, discovery) order and relaxes their edges
// until the frontier is exhausted. Steps the calculator rejects and steps
// that would exceed the budget are never enqueued.
func (r *pathsRunner) process() {
	buf := make([]hex.Location, 0, 6+len(r.tele.list))
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		from := item.loc
		if r.done[from] {
			continue
		}
		r.done[from] = true
		r.expanded++

		buf = r.tele.adjacent(from, buf)
		for _, to := range buf {
			if to == from || r.done[to] || !r.world.OnBoard(to) {
				continue
			}
			step, ok := r.calc.Cost(from, to, item.cost)
			if !ok || step < 0 {
				continue
			}
			g := item.cost + step
			if g > r.limit {
				continue
			}
			// Strictly cheaper only: on a tie the earlier discovery keeps the tile.
			if old, seen := r.best[to]; seen && g >= old {
				continue
			}
			r.best[to] = g
			r.prev[to] = from
			r.push(to, g)
		}
	}
}

// route rebuilds the best route to dst and annotates its turn boundaries.
func (r *pathsRunner) route(dst hex.Location, maxCost, turnMove int, ann *annotator) Route {
	var steps []hex.Location
	for at := dst; ; at = r.prev[at] {
		steps = append(steps, at)
		if at == r.origin {
			break
		}
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	cost := r.best[dst]
	_, left := splitCost(cost, maxCost, turnMove)
	rt := Route{Steps: steps, Cost: cost, MoveLeft: left}
	if len(steps) < 2 {
		return rt
	}

	rt.Waypoints = make(map[hex.Location]Waypoint)
	turn, _ := splitCost(r.best[steps[0]], maxCost, turnMove)
	for i := 1; i < len(steps); i++ {
		next, _ := splitCost(r.best[steps[i]], maxCost, turnMove)
		if next > turn {
			rt.Waypoints[steps[i-1]] = ann.waypoint(steps[i-1], turn+1)
		}
		turn = next
	}
	rt.Waypoints[dst] = ann.waypoint(dst, turn+1)

	return rt
}

// budgetOf reads the movement budget of calc. bounded is false when the
// calculator ignores movement limits (MaxCost 0 and no per-turn budget).
func budgetOf(calc CostCalculator) (maxCost, turnMove int, bounded bool) {
	maxCost = calc.MaxCost()
	turnMove = maxCost
	if tm, ok := calc.(turnMovementer); ok {
		turnMove = tm.TurnMovement()
	}
	return maxCost, turnMove, maxCost > 0 || turnMove > 0
}

// splitCost converts an accumulated cost into the 0-based turn in which it
// is reached and the movement left in that turn, given maxCost points this
// turn and turnMove points in every later turn.
func splitCost(cost float64, maxCost, turnMove int) (turn, left int) {
	c := int(math.Ceil(cost))
	if c <= maxCost {
		return 0, maxCost - c
	}
	if turnMove <= 0 {
		return 0, 0
	}
	over := c - maxCost
	turn = (over + turnMove - 1) / turnMove

	return turn, turn*turnMove - over
}
