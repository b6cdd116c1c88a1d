// SPDX-License-Identifier: MIT

// Package hexpath answers the two movement questions of a hex-grid
// strategy game: where can this unit go, and how does it get there.
//
// What is inside?
//
//	hex/       offset (odd-q) locations, neighbors, hex distance, radius enumeration
//	pathfind/  cost model, reachable sets (Paths), A* (AStar), turn annotation
//	           (TurnsToComplete), zones of control (EnemyZOC), three-tier FindRoute
//	board/     in-memory reference map, units and teams; noise map generation
//
// The search engine in pathfind reads the world through four small
// interfaces (Board, Roster, Unit, Team). Package board implements them for
// tests, benchmarks and small tools; a game engine plugs in its own.
//
// Quick tour:
//
//	b, _ := board.Disc(hex.Location{}, 6, board.Grass)
//	red, _ := board.NewTeam(1)
//	_ = b.AddTeam(red)
//	u, _ := board.NewUnit(1, 5, nil)
//	_ = b.Place(u, hex.Location{})
//
//	routes, _ := pathfind.Paths(b, u.Location(), red, pathfind.WithAdditionalTurns(1))
//	fmt.Println(routes[hex.Location{X: 0, Y: 6}]) // two-turn route with waypoints
//
// Costs are movement points. A route that does not fit in the current turn
// carries a waypoint at every tile where a turn ends; entering a hostile zone
// of control ends the turn on the spot.
//
//	go get github.com/katalvlaran/hexpath
package hexpath
