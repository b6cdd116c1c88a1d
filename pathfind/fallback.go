// SPDX-License-Identifier: MIT

package pathfind

import (
	"errors"

	"github.com/katalvlaran/hexpath/hex"
)

// FindRoute moves unit u towards dst the way a player order would: it runs
// AStar with a StandardCalculator and, when that fails, degrades to a
// FallbackCalculator and finally a LastResortCalculator. The returned Tier
// names the calculator that produced the route.
//
// Steps:
//
//  1. Standard: full rules for u as seen by viewer (WithIgnoreZOC,
//     WithIgnoreUnits, WithSeeAll apply), teleports from WithTeleport or
//     WithTeleports. The route is annotated with TurnsToComplete.
//  2. Fallback: terrain costs only, no teleports, no waypoints.
//  3. LastResort: every on-board step costs 1, no waypoints.
//
// WithStopAt(x) bounds every tier (default +Inf).
//
// Errors:
//
//   - ErrNilWorld, ErrNilUnit, ErrNilTeam, ErrUnknownSide from the
//     standard calculator.
//   - ErrNoRoute when all three tiers fail.
func FindRoute(w World, u Unit, dst hex.Location, viewer Team, opts ...Option) (Route, Tier, error) {
	std, err := NewStandardCalculator(w, u, viewer, opts...)
	if err != nil {
		return Route{}, TierStandard, err
	}
	cfg := buildOptions(opts)
	src := u.Location()
	tele := cfg.resolveTeleports(w, u.Side())

	// 1) Standard rules, annotated.
	rt, err := AStar(src, dst, cfg.StopAt, std, WithTeleports(tele.set), WithLogger(cfg.Logger))
	switch {
	case err == nil:
		if _, err = TurnsToComplete(w, u, &rt, viewer, opts...); err != nil {
			return Route{}, TierStandard, err
		}
		return rt, TierStandard, nil
	case !errors.Is(err, ErrNoRoute):
		return Route{}, TierStandard, err
	}

	// 2) Terrain only.
	fb, err := NewFallbackCalculator(w, u)
	if err != nil {
		return Route{}, TierFallback, err
	}
	if rt, err = AStar(src, dst, cfg.StopAt, fb, WithLogger(cfg.Logger)); err == nil {
		return rt, TierFallback, nil
	} else if !errors.Is(err, ErrNoRoute) {
		return Route{}, TierFallback, err
	}

	// 3) Any on-board walk.
	lr, err := NewLastResortCalculator(w)
	if err != nil {
		return Route{}, TierLastResort, err
	}
	if rt, err = AStar(src, dst, cfg.StopAt, lr, WithLogger(cfg.Logger)); err != nil {
		return Route{}, TierLastResort, err
	}

	return rt, TierLastResort, nil
}
