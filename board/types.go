// SPDX-License-Identifier: MIT

package board

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/pathfind"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates FromRows or Generate got no tiles to build.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrUnknownTerrain indicates a terrain code outside the known set.
	ErrUnknownTerrain = errors.New("board: unknown terrain code")
	// ErrBadRadius indicates a negative Disc radius.
	ErrBadRadius = errors.New("board: radius must be non-negative")
	// ErrBadLocation indicates the Invalid location was used as a tile.
	ErrBadLocation = errors.New("board: invalid location")
	// ErrOffBoard indicates a location that is not a tile of the board.
	ErrOffBoard = errors.New("board: location is off the board")
	// ErrOccupied indicates another unit already stands on the tile.
	ErrOccupied = errors.New("board: tile is occupied")
	// ErrNilUnit indicates a nil *Unit was supplied.
	ErrNilUnit = errors.New("board: unit is nil")
	// ErrNilTeam indicates a nil *Team was supplied.
	ErrNilTeam = errors.New("board: team is nil")
	// ErrBadSide indicates a side number below 1.
	ErrBadSide = errors.New("board: side must be at least 1")
	// ErrBadMovement indicates a negative movement budget or moves left above it.
	ErrBadMovement = errors.New("board: movement must satisfy 0 <= moves left <= movement")
	// ErrBadGenConfig indicates Generate thresholds outside 0 <= water <= hills <= mountains <= 1.
	ErrBadGenConfig = errors.New("board: generation thresholds out of order")
	// ErrBadMoveTable indicates a move table entry below one movement point.
	ErrBadMoveTable = errors.New("board: move table costs must be at least 1")
	// ErrDuplicateSide indicates a second team for an already registered side.
	ErrDuplicateSide = errors.New("board: side already has a team")
)

// Terrain codes understood by DefaultMoveTable and FromRows.
const (
	Grass     pathfind.Terrain = "Gg"
	Forest    pathfind.Terrain = "Ff"
	Hills     pathfind.Terrain = "Hh"
	Mountains pathfind.Terrain = "Mm"
	Shallow   pathfind.Terrain = "Ws"
	Deep      pathfind.Terrain = "Wo"
	Village   pathfind.Terrain = "Vi"
	Castle    pathfind.Terrain = "Ch"
	Wall      pathfind.Terrain = "Xu"
)

// Impassable is the movement cost of terrain a unit can never enter.
const Impassable = 99

var knownTerrain = func() mapset.Set[pathfind.Terrain] {
	s := mapset.New[pathfind.Terrain]()
	for _, t := range []pathfind.Terrain{Grass, Forest, Hills, Mountains, Shallow, Deep, Village, Castle, Wall} {
		s.Put(t)
	}
	return s
}()

// KnownTerrain reports whether t is one of the terrain codes above.
func KnownTerrain(t pathfind.Terrain) bool {
	return knownTerrain.Has(t)
}

// MoveTable maps terrain to the movement cost of entering it.
type MoveTable map[pathfind.Terrain]int

// Cost returns the cost of t, Impassable for terrain the table omits.
func (mt MoveTable) Cost(t pathfind.Terrain) int {
	if c, ok := mt[t]; ok {
		return c
	}
	return Impassable
}

// clone returns an independent copy of mt.
func (mt MoveTable) clone() MoveTable {
	out := make(MoveTable, len(mt))
	for t, c := range mt {
		out[t] = c
	}
	return out
}

// DefaultMoveTable returns the costs of an ordinary foot unit:
// grass, village and castle 1; forest and hills 2; mountains and shallow
// water 3; deep water and walls impassable.
func DefaultMoveTable() MoveTable {
	return MoveTable{
		Grass:     1,
		Village:   1,
		Castle:    1,
		Forest:    2,
		Hills:     2,
		Mountains: 3,
		Shallow:   3,
		Deep:      Impassable,
		Wall:      Impassable,
	}
}
