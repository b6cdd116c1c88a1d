// SPDX-License-Identifier: MIT

package board

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

var _ pathfind.World = (*Board)(nil)

// Board is a hex map with units and teams. The zero value is not usable;
// call New, FromRows, Disc or Generate.
type Board struct {
	mu    sync.RWMutex
	tiles map[hex.Location]pathfind.Terrain
	units map[hex.Location]*Unit
	teams map[int]*Team
}

// New returns an empty board.
func New() *Board {
	return &Board{
		tiles: make(map[hex.Location]pathfind.Terrain),
		units: make(map[hex.Location]*Unit),
		teams: make(map[int]*Team),
	}
}

// FromRows builds a board from rows of space-separated terrain codes.
// Row index is Y and column index is X, so rows[0] is the top edge.
//
//	b, err := board.FromRows([]string{
//		"Gg Gg Ff",
//		"Gg Vi Hh",
//	})
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrUnknownTerrain (wrapped
// with the offending code and tile).
//
// Complexity: O(W×H).
func FromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(strings.Fields(rows[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	b := New()
	for y, row := range rows {
		codes := strings.Fields(row)
		if len(codes) != width {
			return nil, ErrNonRectangular
		}
		for x, code := range codes {
			t := pathfind.Terrain(code)
			if !KnownTerrain(t) {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTerrain, code, x, y)
			}
			b.tiles[hex.Location{X: x, Y: y}] = t
		}
	}

	return b, nil
}

// Disc builds a board of every tile within radius of center, all of
// terrain t.
//
// Errors: ErrBadLocation, ErrBadRadius, ErrUnknownTerrain.
//
// Complexity: O(r²).
func Disc(center hex.Location, radius int, t pathfind.Terrain) (*Board, error) {
	switch {
	case !center.Valid():
		return nil, ErrBadLocation
	case radius < 0:
		return nil, ErrBadRadius
	case !KnownTerrain(t):
		return nil, fmt.Errorf("%w %q", ErrUnknownTerrain, t)
	}
	b := New()
	for _, loc := range hex.TilesRadius(center, radius) {
		b.tiles[loc] = t
	}

	return b, nil
}

// SetTerrain adds loc to the board or changes its terrain.
func (b *Board) SetTerrain(loc hex.Location, t pathfind.Terrain) error {
	if !loc.Valid() {
		return ErrBadLocation
	}
	if !KnownTerrain(t) {
		return fmt.Errorf("%w %q", ErrUnknownTerrain, t)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tiles[loc] = t

	return nil
}

// Place puts u on loc. A unit already on the board is moved.
//
// Errors: ErrNilUnit, ErrOffBoard, ErrOccupied (another unit stands on loc).
func (b *Board) Place(u *Unit, loc hex.Location) error {
	if u == nil {
		return ErrNilUnit
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.tiles[loc]; !ok {
		return fmt.Errorf("%w: %v", ErrOffBoard, loc)
	}
	if other, ok := b.units[loc]; ok && other != u {
		return fmt.Errorf("%w: %v", ErrOccupied, loc)
	}
	if prev := u.Location(); prev.Valid() && b.units[prev] == u {
		delete(b.units, prev)
	}
	u.setLocation(loc)
	b.units[loc] = u

	return nil
}

// Remove takes the unit off loc and returns it.
func (b *Board) Remove(loc hex.Location) (*Unit, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.units[loc]
	if !ok {
		return nil, false
	}
	delete(b.units, loc)
	u.setLocation(hex.Invalid)

	return u, true
}

// AddTeam registers t for its side.
//
// Errors: ErrNilTeam, ErrDuplicateSide.
func (b *Board) AddTeam(t *Team) error {
	if t == nil {
		return ErrNilTeam
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.teams[t.side]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateSide, t.side)
	}
	b.teams[t.side] = t

	return nil
}

// Size returns the number of tiles.
func (b *Board) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tiles)
}

// Locations returns every tile sorted by hex.Compare.
func (b *Board) Locations() []hex.Location {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]hex.Location, 0, len(b.tiles))
	for loc := range b.tiles {
		out = append(out, loc)
	}
	hex.Sort(out)

	return out
}

// TilesNear returns the board tiles within radius of any of centers,
// sorted by hex.Compare. When keep is non-nil it further filters them; it
// runs under the board's read lock and must not call back into b.
func (b *Board) TilesNear(centers []hex.Location, radius int, keep func(hex.Location) bool) []hex.Location {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return hex.TilesRadiusFrom(centers, radius, func(loc hex.Location) bool {
		if _, ok := b.tiles[loc]; !ok {
			return false
		}
		return keep == nil || keep(loc)
	})
}

// OnBoard reports whether loc is a tile.
func (b *Board) OnBoard(loc hex.Location) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.tiles[loc]
	return ok
}

// Terrain returns the terrain at loc, "" off the board.
func (b *Board) Terrain(loc hex.Location) pathfind.Terrain {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tiles[loc]
}

// Village reports whether loc is a village tile.
func (b *Board) Village(loc hex.Location) bool {
	return b.Terrain(loc) == Village
}

// UnitAt returns the unit on loc.
func (b *Board) UnitAt(loc hex.Location) (pathfind.Unit, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	u, ok := b.units[loc]
	if !ok {
		return nil, false
	}
	return u, true
}

// Team returns the team playing side.
func (b *Board) Team(side int) (pathfind.Team, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.teams[side]
	if !ok {
		return nil, false
	}
	return t, true
}
