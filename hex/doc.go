// SPDX-License-Identifier: MIT

// Package hex provides the coordinate primitives of a hexagonal grid:
// locations, neighbor enumeration, distances and radius enumeration.
//
// What:
//
//   - Location is an offset coordinate (X = column, Y = row) where odd
//     columns are shifted half a tile down ("odd-q" layout).
//   - Invalid is the "no location" sentinel. It never equals a real tile
//     and every function receiving it degrades to an empty/invalid result.
//   - Neighbors enumerates the 6 adjacent tiles in a fixed order
//     (N, NE, SE, S, SW, NW); it is a pure function of the location.
//   - Distance is the number of steps between two tiles on an unbounded grid.
//
// Ordering:
//
//   - Locations are totally ordered by X, then Y (Compare / Less / Sort),
//     so maps keyed by Location can be walked deterministically.
//
// Complexity:
//
//   - Neighbors, Distance, Adjacent: O(1).
//   - TilesRadius: O(r²) time and memory.
//   - TilesRadiusFrom: O(k·r²) time for k centers.
//
// The package holds no state and is safe for concurrent use.
package hex
