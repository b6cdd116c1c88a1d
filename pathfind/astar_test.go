// SPDX-License-Identifier: MIT

package pathfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/board"
	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

// planeCalc is an unbounded custom calculator: cost 1 everywhere within a
// radius of origin, no MinStepCost (zero heuristic).
type planeCalc struct{ radius int }

func (c planeCalc) Cost(_, dst hex.Location, _ float64) (float64, bool) {
	return 1, dst.Valid() && hex.Distance(origin, dst) <= c.radius
}

func (planeCalc) MaxCost() int { return 0 }

func TestAStar_Errors(t *testing.T) {
	calc := planeCalc{radius: 3}

	_, err := pathfind.AStar(origin, loc(1, 0), math.Inf(1), nil)
	assert.ErrorIs(t, err, pathfind.ErrNilCalculator)

	for _, bad := range []float64{-1, math.NaN()} {
		_, err = pathfind.AStar(origin, loc(1, 0), bad, calc)
		assert.ErrorIs(t, err, pathfind.ErrBadStopAt)
	}

	rt, err := pathfind.AStar(hex.Invalid, loc(1, 0), math.Inf(1), calc)
	assert.ErrorIs(t, err, pathfind.ErrNoRoute)
	assert.True(t, rt.Empty())

	rt, err = pathfind.AStar(origin, hex.Invalid, math.Inf(1), calc)
	assert.ErrorIs(t, err, pathfind.ErrNoRoute)
	assert.True(t, rt.Empty())
	assert.Equal(t, hex.Invalid, rt.Destination())
}

func TestAStar_SameTile(t *testing.T) {
	rt, err := pathfind.AStar(loc(2, 2), loc(2, 2), 0, planeCalc{radius: 5})
	require.NoError(t, err)
	assert.Equal(t, []hex.Location{loc(2, 2)}, rt.Steps)
	assert.Equal(t, 0.0, rt.Cost)
	assert.Equal(t, 0, rt.Len())
}

func TestAStar_StraightLine(t *testing.T) {
	b, _, _ := grassDisc(t, 4)
	lr, err := pathfind.NewLastResortCalculator(b)
	require.NoError(t, err)

	rt, err := pathfind.AStar(origin, loc(0, 3), math.Inf(1), lr)
	require.NoError(t, err)
	assert.Equal(t, "route[(0,0) (0,1) (0,2) (0,3)] cost=3 move_left=0", rt.String())
	assert.Empty(t, rt.Waypoints)
}

func TestAStar_StopAt(t *testing.T) {
	b, _, _ := grassDisc(t, 4)
	lr, err := pathfind.NewLastResortCalculator(b)
	require.NoError(t, err)
	dst := loc(3, 1)
	want := float64(hex.Distance(origin, dst))

	cases := []struct {
		stopAt float64
		found  bool
	}{
		{0, false},
		{want - 1, false},
		{want - 0.5, false},
		{want, true},
		{want + 10, true},
		{math.Inf(1), true},
	}
	for _, tc := range cases {
		rt, err := pathfind.AStar(origin, dst, tc.stopAt, lr)
		if !tc.found {
			assert.ErrorIs(t, err, pathfind.ErrNoRoute, "stopAt=%g", tc.stopAt)
			assert.True(t, rt.Empty())
			continue
		}
		require.NoError(t, err, "stopAt=%g", tc.stopAt)
		assert.Equal(t, want, rt.Cost)
	}
}

func TestAStar_Unreachable(t *testing.T) {
	_, err := pathfind.AStar(origin, loc(9, 9), math.Inf(1), planeCalc{radius: 3})
	assert.ErrorIs(t, err, pathfind.ErrNoRoute)
}

func TestAStar_AroundWall(t *testing.T) {
	b, t1, _ := fromRows(t,
		"Gg Xu Gg",
		"Gg Xu Gg",
		"Gg Gg Gg",
	)
	u := place(t, b, 1, 6, origin)
	std, err := pathfind.NewStandardCalculator(b, u, t1)
	require.NoError(t, err)

	rt, err := pathfind.AStar(origin, loc(2, 0), math.Inf(1), std)
	require.NoError(t, err)
	for _, s := range rt.Steps {
		assert.NotEqual(t, board.Wall, b.Terrain(s), "%v", rt)
	}
	assert.Equal(t, rt.Len(), int(rt.Cost))
	assert.Equal(t, 6-rt.Len(), rt.MoveLeft)
	assert.Equal(t, origin, rt.Steps[0])
	assert.Equal(t, loc(2, 0), rt.Destination())
}

func TestAStar_ZOCCorridorMatchesPaths(t *testing.T) {
	b, t1, _ := corridor(t)
	u := place(t, b, 1, 5, origin)
	place(t, b, 2, 5, loc(2, 1))
	std, err := pathfind.NewStandardCalculator(b, u, t1)
	require.NoError(t, err)

	rt, err := pathfind.AStar(origin, loc(4, 0), math.Inf(1), std)
	require.NoError(t, err)
	assert.Equal(t, 16.0, rt.Cost)
	assert.Equal(t, 4, rt.MoveLeft)

	_, err = pathfind.AStar(origin, loc(4, 0), 15, std)
	assert.ErrorIs(t, err, pathfind.ErrNoRoute)
}

func TestAStar_Teleports(t *testing.T) {
	b, _, _ := grassDisc(t, 6)
	lr, err := pathfind.NewLastResortCalculator(b)
	require.NoError(t, err)
	a, z := loc(-5, 0), loc(5, 0)
	tele := pathfind.NewTeleports(a, z)

	// Both members reach each other in a single step.
	for _, pair := range [][2]hex.Location{{a, z}, {z, a}} {
		rt, err := pathfind.AStar(pair[0], pair[1], math.Inf(1), lr, pathfind.WithTeleports(tele))
		require.NoError(t, err)
		assert.Equal(t, 1.0, rt.Cost)
		assert.Equal(t, []hex.Location{pair[0], pair[1]}, rt.Steps)
	}

	// A tile next to z is one hop plus one step away.
	near := z.Neighbor(hex.North)
	rt, err := pathfind.AStar(a, near, math.Inf(1), lr, pathfind.WithTeleports(tele))
	require.NoError(t, err)
	assert.Equal(t, 2.0, rt.Cost)

	// Without teleports the grid distance applies.
	rt, err = pathfind.AStar(a, z, math.Inf(1), lr)
	require.NoError(t, err)
	assert.Equal(t, 10.0, rt.Cost)

	// WithTeleport needs a world; AStar ignores it.
	rt, err = pathfind.AStar(a, z, math.Inf(1), lr, pathfind.WithTeleport())
	require.NoError(t, err)
	assert.Equal(t, 10.0, rt.Cost)
}

func TestAStar_ZeroHeuristic(t *testing.T) {
	rt, err := pathfind.AStar(loc(-2, 0), loc(2, 1), math.Inf(1), planeCalc{radius: 4})
	require.NoError(t, err)
	assert.Equal(t, float64(hex.Distance(loc(-2, 0), loc(2, 1))), rt.Cost)
	assert.Equal(t, 0, rt.MoveLeft)
}

// freeCastle prices castle at 0 regardless of its move table.
type freeCastle struct{ *board.Unit }

func (u freeCastle) MovementCost(t pathfind.Terrain) int {
	if t == board.Castle {
		return 0
	}
	return u.Unit.MovementCost(t)
}

// castleWorld reports a freeCastle wherever its wrapped unit stands.
type castleWorld struct {
	*board.Board
	unit freeCastle
}

func (w castleWorld) UnitAt(at hex.Location) (pathfind.Unit, bool) {
	if at == w.unit.Location() {
		return w.unit, true
	}
	return w.Board.UnitAt(at)
}

func TestAStar_FreeTerrainMatchesPaths(t *testing.T) {
	b, t1, _ := fromRows(t,
		"Hh Hh Hh Hh Hh Hh Hh",
		"Ch Ch Ch Ch Ch Ch Ch",
	)
	w := castleWorld{Board: b, unit: freeCastle{place(t, b, 1, 20, origin)}}
	dst := loc(6, 0)

	std, err := pathfind.NewStandardCalculator(w, w.unit, t1)
	require.NoError(t, err)
	cost, ok := std.Cost(origin, loc(0, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, cost, "steps cost at least one point")

	routes, err := pathfind.Paths(w, origin, t1)
	require.NoError(t, err)
	require.Contains(t, routes, dst)

	rt, err := pathfind.AStar(origin, dst, math.Inf(1), std)
	require.NoError(t, err)
	assert.Equal(t, 9.0, routes[dst].Cost)
	assert.Equal(t, routes[dst].Cost, rt.Cost, "%v vs %v", rt, routes[dst])
	assert.Equal(t, routes[dst].MoveLeft, rt.MoveLeft)

	fb, err := pathfind.NewFallbackCalculator(w, w.unit)
	require.NoError(t, err)
	cost, ok = fb.Cost(origin, loc(0, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, cost)
}
