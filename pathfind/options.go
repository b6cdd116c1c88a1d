// SPDX-License-Identifier: MIT

package pathfind

import (
	"log/slog"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/hex"
)

// Options configures Paths, AStar, TurnsToComplete, FindRoute and the
// standard calculator. Not every field is meaningful to every entry point.
//
// IgnoreZOC       – hostile zones of control cost nothing extra.
// IgnoreUnits     – occupancy never blocks; with no units there are no zones either.
// SeeAll          – hidden or fogged enemies still block and project zones.
// AllowTeleport   – the acting side's villages form the teleport set.
// Teleports       – explicit teleport set; takes precedence over AllowTeleport.
// AdditionalTurns – Paths explores this many turns beyond the current one (≥ 0).
// StopAt          – FindRoute cost ceiling (≥ 0, +Inf for none).
// Calculator      – Paths cost model; nil builds a standard calculator.
// Logger          – receives one Debug record per search; nil is silent.
type Options struct {
	IgnoreZOC       bool
	IgnoreUnits     bool
	SeeAll          bool
	AllowTeleport   bool
	Teleports       mapset.Set[hex.Location]
	AdditionalTurns int
	StopAt          float64
	Calculator      CostCalculator
	Logger          *slog.Logger
}

// Option represents a functional option for the search entry points.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - all rule toggles off (zones, occupancy and visibility apply),
//   - no teleports,
//   - AdditionalTurns 0 (current turn only),
//   - StopAt +Inf,
//   - no custom calculator and no logger.
func DefaultOptions() Options {
	return Options{
		StopAt: math.Inf(1),
	}
}

// WithIgnoreZOC disables hostile zone-of-control penalties.
func WithIgnoreZOC() Option {
	return func(o *Options) {
		o.IgnoreZOC = true
	}
}

// WithIgnoreUnits disables occupancy blocking (and therefore zones of control).
func WithIgnoreUnits() Option {
	return func(o *Options) {
		o.IgnoreUnits = true
	}
}

// WithSeeAll bypasses the viewing team's fog and enemy concealment.
func WithSeeAll() Option {
	return func(o *Options) {
		o.SeeAll = true
	}
}

// WithTeleport lets the unit hop between villages owned by its side.
func WithTeleport() Option {
	return func(o *Options) {
		o.AllowTeleport = true
	}
}

// WithTeleports supplies an explicit teleport set. The set is read, never modified.
func WithTeleports(set mapset.Set[hex.Location]) Option {
	return func(o *Options) {
		o.Teleports = set
	}
}

// WithAdditionalTurns extends Paths n turns beyond the current one.
// Panics with ErrBadAdditionalTurns if n < 0.
func WithAdditionalTurns(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadAdditionalTurns.Error())
		}
		o.AdditionalTurns = n
	}
}

// WithStopAt sets the FindRoute cost ceiling.
// Panics with ErrBadStopAt if x is negative or NaN.
func WithStopAt(x float64) Option {
	return func(o *Options) {
		if x < 0 || math.IsNaN(x) {
			panic(ErrBadStopAt.Error())
		}
		o.StopAt = x
	}
}

// WithCalculator makes Paths use c instead of a standard calculator.
func WithCalculator(c CostCalculator) Option {
	return func(o *Options) {
		o.Calculator = c
	}
}

// WithLogger routes search diagnostics to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// buildOptions applies opts left to right over DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// zocEnabled reports whether zones of control influence movement.
func (o *Options) zocEnabled() bool {
	return !o.IgnoreZOC && !o.IgnoreUnits
}

// debug emits a Debug record when a logger is configured.
func (o *Options) debug(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

// teleportIndex is the resolved teleport set of one search.
type teleportIndex struct {
	set  mapset.Set[hex.Location]
	list []hex.Location
}

// resolveTeleports picks the explicit set, or the acting side's villages
// when AllowTeleport is set, or nothing.
func (o *Options) resolveTeleports(w World, side int) teleportIndex {
	if o.Teleports.Size() > 0 {
		return teleportIndex{set: o.Teleports, list: sortedTeleports(o.Teleports)}
	}
	if !o.AllowTeleport || w == nil {
		return teleportIndex{}
	}
	team, ok := w.Team(side)
	if !ok || team == nil {
		return teleportIndex{}
	}
	set := NewTeleports(team.Villages()...)
	return teleportIndex{set: set, list: sortedTeleports(set)}
}

// has reports whether loc belongs to the teleport set.
func (ti *teleportIndex) has(loc hex.Location) bool {
	return len(ti.list) > 0 && ti.set.Has(loc)
}

// adjacent returns the grid neighbors of loc followed, when loc is a
// teleport, by every other teleport in sorted order.
func (ti *teleportIndex) adjacent(loc hex.Location, buf []hex.Location) []hex.Location {
	buf = buf[:0]
	nbs := loc.Neighbors()
	buf = append(buf, nbs[:]...)
	if ti.has(loc) {
		for _, t := range ti.list {
			if t != loc {
				buf = append(buf, t)
			}
		}
	}
	return buf
}
