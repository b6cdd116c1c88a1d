// SPDX-License-Identifier: MIT

package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/board"
	"github.com/katalvlaran/hexpath/hex"
)

// origin is the centre of every disc fixture.
var origin = hex.Location{X: 0, Y: 0}

// loc shortens hex.Location literals in tables.
func loc(x, y int) hex.Location { return hex.Location{X: x, Y: y} }

// grassDisc returns an all-grass disc around origin with teams for sides 1 and 2.
func grassDisc(tb testing.TB, radius int) (*board.Board, *board.Team, *board.Team) {
	tb.Helper()
	b, err := board.Disc(origin, radius, board.Grass)
	require.NoError(tb, err)
	t1, t2 := addTeams(tb, b)
	return b, t1, t2
}

// fromRows parses rows and adds teams for sides 1 and 2.
func fromRows(tb testing.TB, rows ...string) (*board.Board, *board.Team, *board.Team) {
	tb.Helper()
	b, err := board.FromRows(rows)
	require.NoError(tb, err)
	t1, t2 := addTeams(tb, b)
	return b, t1, t2
}

func addTeams(tb testing.TB, b *board.Board) (*board.Team, *board.Team) {
	tb.Helper()
	t1, err := board.NewTeam(1)
	require.NoError(tb, err)
	t2, err := board.NewTeam(2)
	require.NoError(tb, err)
	require.NoError(tb, b.AddTeam(t1))
	require.NoError(tb, b.AddTeam(t2))
	return t1, t2
}

// place creates a unit and puts it on at.
func place(tb testing.TB, b *board.Board, side, movement int, at hex.Location, opts ...board.UnitOption) *board.Unit {
	tb.Helper()
	u, err := board.NewUnit(side, movement, nil, opts...)
	require.NoError(tb, err)
	require.NoError(tb, b.Place(u, at))
	return u
}

// corridor is a five-tile lane (0,0)…(4,0) with a single gap at (2,1)
// below it; every other tile of the second row is wall.
func corridor(tb testing.TB) (*board.Board, *board.Team, *board.Team) {
	tb.Helper()
	return fromRows(tb,
		"Gg Gg Gg Gg Gg",
		"Xu Xu Gg Xu Xu",
	)
}
