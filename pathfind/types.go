// SPDX-License-Identifier: MIT

package pathfind

import (
	"errors"

	"github.com/katalvlaran/hexpath/hex"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilWorld indicates that a nil World was supplied.
	ErrNilWorld = errors.New("pathfind: world is nil")

	// ErrNilUnit indicates that a nil Unit was supplied to a calculator or the annotator.
	ErrNilUnit = errors.New("pathfind: unit is nil")

	// ErrNilTeam indicates that a nil viewing Team was supplied.
	ErrNilTeam = errors.New("pathfind: viewing team is nil")

	// ErrNilCalculator indicates that AStar was called without a cost model.
	ErrNilCalculator = errors.New("pathfind: cost calculator is nil")

	// ErrUnknownSide indicates that the acting unit's side has no Team in the roster.
	ErrUnknownSide = errors.New("pathfind: unit side has no team")

	// ErrNoUnit indicates that no unit stands on the origin of a reachable-set search.
	ErrNoUnit = errors.New("pathfind: no unit at origin")

	// ErrNoRoute indicates that no route exists within the search bound.
	ErrNoRoute = errors.New("pathfind: no route")

	// ErrBadStopAt indicates a negative or NaN A* cost ceiling.
	ErrBadStopAt = errors.New("pathfind: stopAt must be a non-negative number")

	// ErrBadAdditionalTurns indicates a negative additional-turns count.
	ErrBadAdditionalTurns = errors.New("pathfind: additional turns must be non-negative")

	// ErrImpassableStep indicates a route step the unit can never enter.
	ErrImpassableStep = errors.New("pathfind: route step is impassable for unit")
)

// Terrain is an opaque terrain code understood by the Board and by the
// units' movement tables.
type Terrain string

// Board is the read-only terrain view of the grid.
type Board interface {
	// OnBoard reports whether loc is a tile of the grid.
	OnBoard(loc hex.Location) bool
	// Terrain returns the terrain code at loc. Off-board results are unspecified.
	Terrain(loc hex.Location) Terrain
	// Village reports whether loc is capture-eligible.
	Village(loc hex.Location) bool
}

// Roster is the read-only view of units and teams.
type Roster interface {
	// UnitAt returns the unit standing on loc, if any.
	UnitAt(loc hex.Location) (Unit, bool)
	// Team returns the team playing side (1-based), if any.
	Team(side int) (Team, bool)
}

// World is the complete snapshot a search reads from.
type World interface {
	Board
	Roster
}

// Unit is a movable entity together with its movement table.
type Unit interface {
	// Side is the 1-based side the unit plays for.
	Side() int
	// Location is the tile the unit stands on.
	Location() hex.Location
	// MovementLeft is the movement remaining in the current turn.
	MovementLeft() int
	// TotalMovement is the full per-turn movement budget.
	TotalMovement() int
	// MovementCost is the cost of entering terrain t, at least 1. A value
	// above TotalMovement marks the terrain impassable for this unit;
	// calculators charge 1 for anything lower.
	MovementCost(t Terrain) int
	// EmitsZOC reports whether the unit projects a zone of control.
	EmitsZOC() bool
	// IgnoresZOC reports whether the unit moves through hostile zones freely.
	IgnoresZOC() bool
	// HiddenOn reports whether the unit is invisible to enemies on terrain t.
	HiddenOn(t Terrain) bool
}

// Team is the per-side bookkeeping consulted by the searches.
type Team interface {
	// Side is the 1-based side of this team.
	Side() int
	// IsEnemy reports whether side is hostile to this team.
	IsEnemy(side int) bool
	// Shrouded reports whether loc was never explored by this team.
	Shrouded(loc hex.Location) bool
	// Fogged reports whether loc is currently out of this team's sight.
	Fogged(loc hex.Location) bool
	// OwnsVillage reports whether this team controls the village at loc.
	OwnsVillage(loc hex.Location) bool
	// Villages lists the villages this team controls.
	Villages() []hex.Location
}

// CostCalculator is the cost model shared by Paths and AStar.
//
// Cost returns the cost of stepping from src onto dst (adjacent or
// teleport-linked) when soFar has already been spent since the search
// started. ok == false means dst cannot be entered: the edge does not
// exist for this calculator and its cost must not be used.
//
// MaxCost is the movement budget of the current turn; 0 means the
// calculator ignores movement limits (unbounded).
type CostCalculator interface {
	Cost(src, dst hex.Location, soFar float64) (cost float64, ok bool)
	MaxCost() int
}

// minStepCoster is implemented by calculators that know a lower bound for one step.
type minStepCoster interface {
	MinStepCost() float64
}

// turnMovementer is implemented by calculators that know the full per-turn budget.
type turnMovementer interface {
	TurnMovement() int
}

// Tier names the calculator that produced a FindRoute result.
type Tier int

const (
	// TierStandard is the full rules calculator.
	TierStandard Tier = iota
	// TierFallback ignores units, visibility and ZOC.
	TierFallback
	// TierLastResort treats every on-board step as cost 1.
	TierLastResort
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierStandard:
		return "standard"
	case TierFallback:
		return "fallback"
	case TierLastResort:
		return "last-resort"
	}
	return "unknown"
}
