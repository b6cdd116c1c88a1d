// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hex"
)

// TurnsToComplete replays rt for unit u and returns the number of turns the
// unit needs to walk it. rt.Waypoints is rebuilt: one waypoint on the tile
// where each turn ends, plus one on the destination.
//
// Replay rules:
//
//   - movement starts at u.MovementLeft() and each step subtracts the
//     terrain cost of the entered tile;
//   - when it would go negative the previous tile ends the turn and
//     movement restarts from u.TotalMovement() minus the step;
//   - entering a hostile zone of control (same WithIgnoreZOC,
//     WithIgnoreUnits and WithSeeAll flags as the search) drops movement
//     to 0, matching the StandardCalculator policy.
//
// A unit starting with its full movement B on a route of standard cost C
// gets exactly ceil(C/B) waypoints. A route of fewer than two steps takes
// 0 turns and gets no waypoints.
//
// Errors:
//
//   - ErrNilWorld, ErrNilUnit, ErrNilTeam for missing collaborators,
//     ErrNoRoute for a nil route.
//   - ErrImpassableStep (wrapped with the tile) when a step is off the
//     board or costs more than the unit's full movement; rt.Waypoints is
//     cleared in that case.
//
// Complexity: O(L) time and memory for a route of L steps.
func TurnsToComplete(w World, u Unit, rt *Route, viewer Team, opts ...Option) (int, error) {
	switch {
	case w == nil:
		return 0, ErrNilWorld
	case u == nil:
		return 0, ErrNilUnit
	case viewer == nil:
		return 0, ErrNilTeam
	case rt == nil:
		return 0, ErrNoRoute
	}
	rt.Waypoints = make(map[hex.Location]Waypoint)
	if len(rt.Steps) < 2 {
		return 0, nil
	}

	cfg := buildOptions(opts)
	team, _ := w.Team(u.Side())
	ann := annotator{world: w, unit: u, team: team, viewer: viewer, cfg: &cfg}

	total := u.TotalMovement()
	movement := u.MovementLeft()
	turns := 0
	for i := 1; i < len(rt.Steps); i++ {
		loc := rt.Steps[i]
		if !loc.Valid() || !w.OnBoard(loc) {
			rt.Waypoints = nil
			return 0, fmt.Errorf("%w: %v is off the board", ErrImpassableStep, loc)
		}
		cost := max(u.MovementCost(w.Terrain(loc)), 1)
		if cost > total {
			rt.Waypoints = nil
			return 0, fmt.Errorf("%w: %v costs %d of %d", ErrImpassableStep, loc, cost, total)
		}

		movement -= cost
		if movement < 0 {
			// Not enough left: the turn ends on the previous tile.
			turns++
			end := rt.Steps[i-1]
			rt.Waypoints[end] = ann.waypoint(end, turns)
			movement = total - cost
		}

		if ann.inZOC(loc) {
			movement = 0
		}
	}

	turns++
	last := rt.Destination()
	rt.Waypoints[last] = ann.waypoint(last, turns)

	return turns, nil
}

// annotator computes waypoint flags for one unit and viewer.
type annotator struct {
	world  World
	unit   Unit
	team   Team
	viewer Team
	cfg    *Options
}

// inZOC reports whether entering loc ends the unit's turn.
func (a *annotator) inZOC(loc hex.Location) bool {
	if !a.cfg.zocEnabled() || a.unit.IgnoresZOC() {
		return false
	}
	return EnemyZOC(a.world, loc, a.viewer, a.unit.Side(), a.cfg.SeeAll)
}

// waypoint builds the waypoint of loc for the given 1-based turn.
func (a *annotator) waypoint(loc hex.Location, turns int) Waypoint {
	return Waypoint{
		Turns:     turns,
		ZOC:       a.inZOC(loc),
		Capture:   a.team != nil && a.world.Village(loc) && !a.team.OwnsVillage(loc),
		Invisible: a.unit.HiddenOn(a.world.Terrain(loc)),
	}
}
