// SPDX-License-Identifier: MIT

package board

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

var _ pathfind.Unit = (*Unit)(nil)

// Unit is a movable piece. Its location is managed by Board.Place and
// Board.Remove; everything else is fixed at construction. A Unit is safe
// for concurrent use.
type Unit struct {
	side      int
	movement  int
	movesLeft int
	table     MoveTable
	zoc       bool
	skirmish  bool
	ambush    mapset.Set[pathfind.Terrain]

	mu  sync.RWMutex // guards loc
	loc hex.Location
}

// UnitOption configures a Unit in NewUnit.
type UnitOption func(*Unit)

// WithMovesLeft sets the movement remaining this turn (default: full movement).
func WithMovesLeft(n int) UnitOption {
	return func(u *Unit) {
		u.movesLeft = n
	}
}

// WithoutZOC makes the unit project no zone of control.
func WithoutZOC() UnitOption {
	return func(u *Unit) {
		u.zoc = false
	}
}

// Skirmisher lets the unit ignore hostile zones of control.
func Skirmisher() UnitOption {
	return func(u *Unit) {
		u.skirmish = true
	}
}

// Ambush hides the unit from enemies while it stands on any of terrains.
func Ambush(terrains ...pathfind.Terrain) UnitOption {
	return func(u *Unit) {
		for _, t := range terrains {
			u.ambush.Put(t)
		}
	}
}

// NewUnit builds a unit of side with the given per-turn movement. A nil
// table selects DefaultMoveTable; a non-nil table is copied.
//
// Errors:
//   - ErrBadSide if side < 1.
//   - ErrBadMovement if movement < 0 or moves left falls outside [0, movement].
//   - ErrBadMoveTable if table prices any terrain below 1.
func NewUnit(side, movement int, table MoveTable, opts ...UnitOption) (*Unit, error) {
	if side < 1 {
		return nil, ErrBadSide
	}
	if movement < 0 {
		return nil, ErrBadMovement
	}
	if table == nil {
		table = DefaultMoveTable()
	}
	for _, c := range table {
		if c < 1 {
			return nil, ErrBadMoveTable
		}
	}
	u := &Unit{
		side:      side,
		movement:  movement,
		movesLeft: movement,
		table:     table.clone(),
		zoc:       true,
		ambush:    mapset.New[pathfind.Terrain](),
		loc:       hex.Invalid,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.movesLeft < 0 || u.movesLeft > u.movement {
		return nil, ErrBadMovement
	}

	return u, nil
}

// Side is the side the unit plays for.
func (u *Unit) Side() int { return u.side }

// Location is the tile the unit stands on, hex.Invalid when off the map.
func (u *Unit) Location() hex.Location {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loc
}

// setLocation is called by the board holding its write lock.
func (u *Unit) setLocation(loc hex.Location) {
	u.mu.Lock()
	u.loc = loc
	u.mu.Unlock()
}

// MovementLeft is the movement remaining this turn.
func (u *Unit) MovementLeft() int { return u.movesLeft }

// TotalMovement is the full movement per turn.
func (u *Unit) TotalMovement() int { return u.movement }

// MovementCost looks t up in the unit's move table.
func (u *Unit) MovementCost(t pathfind.Terrain) int { return u.table.Cost(t) }

// EmitsZOC reports whether the unit projects a zone of control.
func (u *Unit) EmitsZOC() bool { return u.zoc }

// IgnoresZOC reports whether the unit is a skirmisher.
func (u *Unit) IgnoresZOC() bool { return u.skirmish }

// HiddenOn reports whether the unit has ambush on t.
func (u *Unit) HiddenOn(t pathfind.Terrain) bool { return u.ambush.Has(t) }
