// SPDX-License-Identifier: MIT

package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/board"
	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

// calcFixture:
//
//	y0: Gg Ff Xu Gg
//	y1: Gg Gg Gg Gg   enemy (side 2) on (3,1)
//
// The acting unit (side 1, movement 5) stands on (0,0).
func calcFixture(t *testing.T) (*board.Board, *board.Unit, *board.Team) {
	t.Helper()
	b, t1, _ := fromRows(t,
		"Gg Ff Xu Gg",
		"Gg Gg Gg Gg",
	)
	u := place(t, b, 1, 5, loc(0, 0))
	place(t, b, 2, 5, loc(3, 1))
	return b, u, t1
}

func TestNewStandardCalculator_Errors(t *testing.T) {
	b, u, viewer := calcFixture(t)
	stranger, err := board.NewUnit(3, 5, nil)
	require.NoError(t, err)

	_, err = pathfind.NewStandardCalculator(nil, u, viewer)
	assert.ErrorIs(t, err, pathfind.ErrNilWorld)
	_, err = pathfind.NewStandardCalculator(b, nil, viewer)
	assert.ErrorIs(t, err, pathfind.ErrNilUnit)
	_, err = pathfind.NewStandardCalculator(b, u, nil)
	assert.ErrorIs(t, err, pathfind.ErrNilTeam)
	_, err = pathfind.NewStandardCalculator(b, stranger, viewer)
	assert.ErrorIs(t, err, pathfind.ErrUnknownSide)
}

func TestStandardCalculator_Cost(t *testing.T) {
	b, u, viewer := calcFixture(t)
	calc, err := pathfind.NewStandardCalculator(b, u, viewer)
	require.NoError(t, err)

	cases := []struct {
		name   string
		dst    hex.Location
		soFar  float64
		want   float64
		wantOK bool
	}{
		{"Grass", loc(0, 1), 0, 1, true},
		{"Forest", loc(1, 0), 0, 2, true},
		{"Wall", loc(2, 0), 0, 0, false},
		{"OffBoard", loc(9, 9), 0, 0, false},
		{"Invalid", hex.Invalid, 0, 0, false},
		{"EnemyTile", loc(3, 1), 0, 0, false},
		{"ZOCTakesRestOfTurn", loc(2, 1), 0, 5, true},
		{"ZOCAfterSpending", loc(3, 0), 2, 3, true},
		{"ForestDoesNotFit", loc(1, 0), 4, 3, true},
		{"ExactlyAtTurnEnd", loc(0, 1), 5, 1, true},
		{"SecondTurnWrap", loc(0, 1), 7, 1, true},
		{"SecondTurnForestDoesNotFit", loc(1, 0), 9, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := calc.Cost(origin, tc.dst, tc.soFar)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}

	assert.Equal(t, 5, calc.MaxCost())
	assert.Equal(t, 5, calc.TurnMovement())
	assert.Equal(t, 1.0, calc.MinStepCost())
}

func TestStandardCalculator_Flags(t *testing.T) {
	b, u, viewer := calcFixture(t)

	ignoreZOC, err := pathfind.NewStandardCalculator(b, u, viewer, pathfind.WithIgnoreZOC())
	require.NoError(t, err)
	c, ok := ignoreZOC.Cost(origin, loc(2, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
	_, ok = ignoreZOC.Cost(origin, loc(3, 1), 0)
	assert.False(t, ok, "zones off, occupancy still blocks")

	ignoreUnits, err := pathfind.NewStandardCalculator(b, u, viewer, pathfind.WithIgnoreUnits())
	require.NoError(t, err)
	c, ok = ignoreUnits.Cost(origin, loc(3, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
	c, ok = ignoreUnits.Cost(origin, loc(2, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
}

func TestStandardCalculator_Visibility(t *testing.T) {
	b, u, viewer := calcFixture(t)
	viewer.Fog(loc(3, 1)).Shroud(loc(0, 1))

	calc, err := pathfind.NewStandardCalculator(b, u, viewer)
	require.NoError(t, err)

	_, ok := calc.Cost(origin, loc(0, 1), 0)
	assert.False(t, ok, "shrouded")
	c, ok := calc.Cost(origin, loc(3, 1), 0)
	require.True(t, ok, "fogged enemy is unknown")
	assert.Equal(t, 1.0, c)
	c, ok = calc.Cost(origin, loc(2, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c, "fogged enemy projects no zone")

	seeAll, err := pathfind.NewStandardCalculator(b, u, viewer, pathfind.WithSeeAll())
	require.NoError(t, err)
	c, ok = seeAll.Cost(origin, loc(0, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
	_, ok = seeAll.Cost(origin, loc(3, 1), 0)
	assert.False(t, ok)
	c, ok = seeAll.Cost(origin, loc(2, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 5.0, c)
}

func TestStandardCalculator_FriendsAndSkirmishers(t *testing.T) {
	b, _, viewer := calcFixture(t)
	friend := place(t, b, 1, 5, loc(0, 1))
	skirmisher := place(t, b, 1, 5, loc(1, 1), board.Skirmisher(), board.WithMovesLeft(3))

	calc, err := pathfind.NewStandardCalculator(b, skirmisher, viewer)
	require.NoError(t, err)

	c, ok := calc.Cost(loc(1, 1), friend.Location(), 0)
	require.True(t, ok, "own units do not block")
	assert.Equal(t, 1.0, c)
	c, ok = calc.Cost(loc(1, 1), loc(2, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c, "skirmisher ignores zones")

	assert.Equal(t, 3, calc.MaxCost())
	assert.Equal(t, 5, calc.TurnMovement())
}

func TestFallbackCalculator(t *testing.T) {
	b, u, _ := calcFixture(t)

	_, err := pathfind.NewFallbackCalculator(nil, u)
	assert.ErrorIs(t, err, pathfind.ErrNilWorld)
	_, err = pathfind.NewFallbackCalculator(b, nil)
	assert.ErrorIs(t, err, pathfind.ErrNilUnit)

	calc, err := pathfind.NewFallbackCalculator(b, u)
	require.NoError(t, err)

	c, ok := calc.Cost(origin, loc(2, 0), 0)
	require.True(t, ok)
	assert.Equal(t, float64(board.Impassable), c)
	c, ok = calc.Cost(origin, loc(3, 1), 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
	c, ok = calc.Cost(origin, loc(2, 1), 3)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
	_, ok = calc.Cost(origin, loc(-1, 0), 0)
	assert.False(t, ok)

	assert.Equal(t, 0, calc.MaxCost())
	assert.Equal(t, 1.0, calc.MinStepCost())
}

func TestLastResortCalculator(t *testing.T) {
	b, _, _ := calcFixture(t)

	_, err := pathfind.NewLastResortCalculator(nil)
	assert.ErrorIs(t, err, pathfind.ErrNilWorld)

	calc, err := pathfind.NewLastResortCalculator(b)
	require.NoError(t, err)
	for _, dst := range b.Locations() {
		c, ok := calc.Cost(origin, dst, 17)
		require.True(t, ok, "%v", dst)
		require.Equal(t, 1.0, c, "%v", dst)
	}
	_, ok := calc.Cost(origin, loc(4, 0), 0)
	assert.False(t, ok)
	assert.Equal(t, 0, calc.MaxCost())
}
