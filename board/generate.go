// SPDX-License-Identifier: MIT

package board

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

// GenConfig holds procedural map parameters. Levels are thresholds on
// noise values normalised to [0, 1).
type GenConfig struct {
	Width, Height int   // tiles per row and number of rows
	Seed          int64 // equal seeds give equal boards

	WaterLevel    float64 // elevation below which tiles are water
	HillLevel     float64 // elevation above which tiles are hills
	MountainLevel float64 // elevation above which tiles are mountains
	ForestLevel   float64 // vegetation above which lowland is forest
	VillageLevel  float64 // settlement noise above which lowland is a village
}

// DefaultGenConfig returns a 24×24 temperate map.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:         24,
		Height:        24,
		Seed:          1,
		WaterLevel:    0.30,
		HillLevel:     0.62,
		MountainLevel: 0.75,
		ForestLevel:   0.60,
		VillageLevel:  0.82,
	}
}

// Generate builds a Width×Height board from three independent noise layers
// (elevation, vegetation, settlement). No units or teams are added.
//
// Errors: ErrEmptyGrid for a non-positive size, ErrBadGenConfig for
// thresholds out of order.
//
// Complexity: O(W×H).
func Generate(cfg GenConfig) (*Board, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	if cfg.WaterLevel < 0 || cfg.WaterLevel > cfg.HillLevel ||
		cfg.HillLevel > cfg.MountainLevel || cfg.MountainLevel > 1 {
		return nil, ErrBadGenConfig
	}

	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	vegNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	townNoise := opensimplex.NewNormalized(cfg.Seed + 2)

	b := New()
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			// Odd-q offset to cartesian centre.
			px := float64(x) * math.Sqrt(3) / 2
			py := float64(y) + 0.5*float64(x&1)

			elev := octaveNoise(elevNoise, px, py, 4, 0.08, 0.5)
			veg := octaveNoise(vegNoise, px, py, 3, 0.12, 0.5)
			town := townNoise.Eval2(px*0.9, py*0.9)

			b.tiles[hex.Location{X: x, Y: y}] = deriveTerrain(elev, veg, town, cfg)
		}
	}

	return b, nil
}

// deriveTerrain maps noise samples to a terrain code.
func deriveTerrain(elev, veg, town float64, cfg GenConfig) pathfind.Terrain {
	switch {
	case elev < cfg.WaterLevel*0.6:
		return Deep
	case elev < cfg.WaterLevel:
		return Shallow
	case elev > cfg.MountainLevel:
		return Mountains
	case elev > cfg.HillLevel:
		return Hills
	case town > cfg.VillageLevel:
		return Village
	case veg > cfg.ForestLevel:
		return Forest
	}
	return Grass
}

// octaveNoise layers several frequencies of noise into one sample in [0, 1).
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
