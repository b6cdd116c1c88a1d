// SPDX-License-Identifier: MIT

package board

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/hex"
	"github.com/katalvlaran/hexpath/pathfind"
)

var _ pathfind.Team = (*Team)(nil)

// Team is the bookkeeping of one side: allies, unexplored (shrouded) and
// unobserved (fogged) tiles, and owned villages. Every other side is an
// enemy unless declared an ally. The setters return the team so a setup
// can be written as one chain.
type Team struct {
	mu       sync.RWMutex
	side     int
	allies   mapset.Set[int]
	shroud   mapset.Set[hex.Location]
	fog      mapset.Set[hex.Location]
	villages mapset.Set[hex.Location]
}

// NewTeam returns a team for side with no allies, no shroud, no fog and no
// villages. Returns ErrBadSide if side < 1.
func NewTeam(side int) (*Team, error) {
	if side < 1 {
		return nil, ErrBadSide
	}
	return &Team{
		side:     side,
		allies:   mapset.New[int](),
		shroud:   mapset.New[hex.Location](),
		fog:      mapset.New[hex.Location](),
		villages: mapset.New[hex.Location](),
	}, nil
}

// Ally marks sides as friendly.
func (t *Team) Ally(sides ...int) *Team {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range sides {
		if s != t.side {
			t.allies.Put(s)
		}
	}
	return t
}

// Shroud marks locs as never explored.
func (t *Team) Shroud(locs ...hex.Location) *Team {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range locs {
		t.shroud.Put(l)
	}
	return t
}

// Fog marks locs as out of sight this turn.
func (t *Team) Fog(locs ...hex.Location) *Team {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range locs {
		t.fog.Put(l)
	}
	return t
}

// Capture records the villages at locs as owned by this team.
func (t *Team) Capture(locs ...hex.Location) *Team {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range locs {
		t.villages.Put(l)
	}
	return t
}

// Side is the side this team plays.
func (t *Team) Side() int { return t.side }

// IsEnemy reports whether side is neither this team nor one of its allies.
func (t *Team) IsEnemy(side int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return side != t.side && !t.allies.Has(side)
}

// Shrouded reports whether loc was never explored.
func (t *Team) Shrouded(loc hex.Location) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.shroud.Has(loc)
}

// Fogged reports whether loc is out of sight.
func (t *Team) Fogged(loc hex.Location) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fog.Has(loc)
}

// OwnsVillage reports whether the team holds the village at loc.
func (t *Team) OwnsVillage(loc hex.Location) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.villages.Has(loc)
}

// Villages returns the owned villages sorted by hex.Compare.
func (t *Team) Villages() []hex.Location {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]hex.Location, 0, t.villages.Size())
	t.villages.Each(func(l hex.Location) {
		out = append(out, l)
	})
	hex.Sort(out)

	return out
}
