// SPDX-License-Identifier: MIT

// Package board is an in-memory hex map that satisfies pathfind.World.
//
// It keeps terrain per tile, the units standing on the map and the teams
// playing it, all behind one RWMutex so setup code and concurrent searches
// can share a Board safely.
//
// Construction:
//
//   - New returns an empty board; SetTerrain adds tiles one by one.
//   - FromRows parses rows of space-separated terrain codes (row y, column x).
//   - Disc fills every tile within a radius of a center.
//   - Generate derives terrain from layered OpenSimplex noise; equal seeds
//     give equal boards.
//
// Units and teams:
//
//   - NewUnit builds a unit with a movement budget and a MoveTable;
//     UnitOption values adjust moves left, zones of control and concealment.
//   - NewTeam builds a side; Ally, Shroud, Fog and Capture record its
//     relationships, vision and villages.
//
// Terrain codes:
//
//	Gg grass      Ff forest    Hh hills     Mm mountains  Vi village
//	Ws shallow    Wo deep      Ch castle    Xu wall
//
// A MoveTable cost of Impassable (or any cost above a unit's movement)
// keeps the unit out of that terrain.
package board
