// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/hexpath/hex"

// Compile-time checks that the three built-in calculators satisfy the contract.
var (
	_ CostCalculator = (*StandardCalculator)(nil)
	_ CostCalculator = (*FallbackCalculator)(nil)
	_ CostCalculator = (*LastResortCalculator)(nil)
)

// StandardCalculator applies every movement rule for one unit as seen by
// one viewing team: terrain, shroud, hostile occupancy and zones of control.
//
// Costs are expressed in movement points and are turn-aware: when a step
// does not fit in what is left of the current turn, the leftover points are
// charged as well, so the accumulated cost of a route is exactly the
// movement the unit spends, wasted end-of-turn points included.
//
// Zone of control policy: entering a hostile zone ends the unit's movement
// for that turn. The remaining points of the turn are charged on top of the
// step, which makes the zone expensive rather than impassable.
type StandardCalculator struct {
	world  World
	unit   Unit
	viewer Team
	team   Team

	movementLeft  int
	totalMovement int

	ignoreUnits bool
	ignoreZOC   bool
	seeAll      bool
}

// NewStandardCalculator binds a calculator to w, u and viewer.
// Recognised options: WithIgnoreZOC, WithIgnoreUnits, WithSeeAll.
//
// Errors:
//   - ErrNilWorld, ErrNilUnit, ErrNilTeam for missing collaborators.
//   - ErrUnknownSide if u's side has no team in w.
func NewStandardCalculator(w World, u Unit, viewer Team, opts ...Option) (*StandardCalculator, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if u == nil {
		return nil, ErrNilUnit
	}
	if viewer == nil {
		return nil, ErrNilTeam
	}
	team, ok := w.Team(u.Side())
	if !ok || team == nil {
		return nil, ErrUnknownSide
	}
	cfg := buildOptions(opts)

	return &StandardCalculator{
		world:         w,
		unit:          u,
		viewer:        viewer,
		team:          team,
		movementLeft:  u.MovementLeft(),
		totalMovement: u.TotalMovement(),
		ignoreUnits:   cfg.IgnoreUnits,
		ignoreZOC:     cfg.IgnoreZOC,
		seeAll:        cfg.SeeAll,
	}, nil
}

// Cost returns the movement points spent stepping onto dst after soFar
// points have been spent. ok is false when dst is off the board, shrouded,
// impassable terrain for the unit, or held by a visible enemy.
func (c *StandardCalculator) Cost(_, dst hex.Location, soFar float64) (float64, bool) {
	if c.totalMovement <= 0 || !dst.Valid() || !c.world.OnBoard(dst) {
		return 0, false
	}
	if !c.seeAll && c.viewer.Shrouded(dst) {
		return 0, false
	}
	terrainCost := max(c.unit.MovementCost(c.world.Terrain(dst)), 1)
	if terrainCost > c.totalMovement {
		return 0, false
	}
	if !c.ignoreUnits {
		if other, ok := visibleUnit(c.world, dst, c.viewer, c.seeAll); ok && c.team.IsEnemy(other.Side()) {
			return 0, false
		}
	}

	remaining := c.movementLeft - int(soFar)
	if remaining < 0 {
		remaining = c.totalMovement - (-remaining)%c.totalMovement
	}

	moveCost := 0
	if terrainCost > remaining {
		// The turn ends before this step; the leftover points are lost.
		moveCost += remaining
		remaining = c.totalMovement - terrainCost
	} else {
		remaining -= terrainCost
	}
	moveCost += terrainCost

	if c.zocApplies(dst) {
		moveCost += remaining
	}

	return float64(moveCost), true
}

// zocApplies reports whether entering dst ends the unit's turn.
func (c *StandardCalculator) zocApplies(dst hex.Location) bool {
	if c.ignoreUnits || c.ignoreZOC || c.unit.IgnoresZOC() {
		return false
	}
	return EnemyZOC(c.world, dst, c.viewer, c.unit.Side(), c.seeAll)
}

// MaxCost is the unit's movement left this turn.
func (c *StandardCalculator) MaxCost() int { return c.movementLeft }

// TurnMovement is the unit's full movement per turn.
func (c *StandardCalculator) TurnMovement() int { return c.totalMovement }

// MinStepCost is one movement point.
func (c *StandardCalculator) MinStepCost() float64 { return 1 }

// FallbackCalculator uses terrain movement costs only. Units, visibility
// and zones of control are ignored and impassable terrain is merely
// expensive, so a best-effort route can be offered when the standard
// search fails.
type FallbackCalculator struct {
	world World
	unit  Unit
}

// NewFallbackCalculator binds a terrain-only calculator to w and u.
func NewFallbackCalculator(w World, u Unit) (*FallbackCalculator, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	if u == nil {
		return nil, ErrNilUnit
	}
	return &FallbackCalculator{world: w, unit: u}, nil
}

// Cost is the unit's movement cost for dst's terrain.
func (c *FallbackCalculator) Cost(_, dst hex.Location, _ float64) (float64, bool) {
	if !dst.Valid() || !c.world.OnBoard(dst) {
		return 0, false
	}
	return float64(max(c.unit.MovementCost(c.world.Terrain(dst)), 1)), true
}

// MaxCost is 0: movement limits do not apply.
func (c *FallbackCalculator) MaxCost() int { return 0 }

// MinStepCost is one movement point.
func (c *FallbackCalculator) MinStepCost() float64 { return 1 }

// LastResortCalculator charges 1 for every on-board step.
type LastResortCalculator struct {
	board Board
}

// NewLastResortCalculator binds a uniform-cost calculator to b.
func NewLastResortCalculator(b Board) (*LastResortCalculator, error) {
	if b == nil {
		return nil, ErrNilWorld
	}
	return &LastResortCalculator{board: b}, nil
}

// Cost is 1 for any on-board destination.
func (c *LastResortCalculator) Cost(_, dst hex.Location, _ float64) (float64, bool) {
	if !dst.Valid() || !c.board.OnBoard(dst) {
		return 0, false
	}
	return 1, true
}

// MaxCost is 0: movement limits do not apply.
func (c *LastResortCalculator) MaxCost() int { return 0 }

// MinStepCost is 1.
func (c *LastResortCalculator) MinStepCost() float64 { return 1 }
