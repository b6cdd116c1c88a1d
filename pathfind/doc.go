// SPDX-License-Identifier: MIT

// Package pathfind computes where a unit can move on a hex grid and how it
// gets there, over one or several turns.
//
// Overview:
//
//   - Paths builds the reachable set of a unit: every tile it can reach
//     within its movement (plus optional extra turns) mapped to the best
//     Route there, with waypoints where each turn ends.
//   - AStar finds the cheapest single route between two tiles under any
//     CostCalculator, bounded by a cost ceiling.
//   - TurnsToComplete replays an existing route for a unit and rebuilds its
//     turn waypoints.
//   - FindRoute chains AStar over three calculators (standard, fallback,
//     last resort) so an order always yields some route when one exists.
//   - EnemyZOC reports hostile zones of control.
//
// Cost model:
//
//   - CostCalculator.Cost(src, dst, soFar) returns (cost, ok). ok == false
//     removes the edge: there is no "infinite cost" value to compare with.
//   - StandardCalculator applies terrain, shroud, hostile occupancy and zones
//     of control. Its costs are turn-aware, so accumulated cost equals the
//     movement a unit actually spends, wasted end-of-turn points included.
//   - FallbackCalculator uses terrain costs only; LastResortCalculator
//     charges 1 per on-board step.
//   - Optional MinStepCost and TurnMovement methods refine the A* heuristic
//     and the split of a cost into turns.
//
// Zones of control:
//
//	Entering a tile adjacent to a visible hostile unit that emits a zone of
//	control ends the unit's movement for the turn. Units with IgnoresZOC,
//	WithIgnoreZOC and WithIgnoreUnits turn the rule off.
//
// Teleports:
//
//	Tiles of a teleport set are adjacent to each other. WithTeleport uses the
//	acting side's villages, WithTeleports an explicit set built with
//	NewTeleports.
//
// Adapters:
//
//	Board  – terrain at a location, board membership, capture-eligible tiles.
//	Roster – unit occupying a location, team lookup by side.
//	Unit   – side, movement budget, per-terrain movement table, ZOC abilities.
//	Team   – relationships, fog/shroud, village ownership.
//
// The searches only read the World they are given; concurrent searches on
// one unchanging snapshot are safe. Every result is freshly allocated and
// owned by the caller.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilWorld, ErrNilUnit, ErrNilTeam, ErrNilCalculator:
//     a required collaborator is missing.
//   - ErrUnknownSide: the unit's side has no team.
//   - ErrNoUnit: Paths was asked about an empty tile.
//   - ErrNoRoute: AStar / FindRoute found nothing within the ceiling.
//   - ErrBadStopAt, ErrBadAdditionalTurns: invalid numeric arguments.
//   - ErrImpassableStep: TurnsToComplete met a tile the unit can never enter.
//
// Complexity:
//
//   - Paths: O((V + E) log V) over the V tiles within budget.
//   - AStar: O(E log V) over the tiles expanded, usually far fewer than V.
//
// See the Example functions for end-to-end usage with package board.
package pathfind
