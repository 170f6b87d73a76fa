// Package formation resolves who is actually on the field for a snap from a
// full roster and a personnel table, and derives rush/coverage assignments
// from the named blitz package.
package formation

import (
	"fmt"
	"sort"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
)

// Selector picks on-field units against the balance config's personnel
// tables. Unknown formations fail loudly; silent fallback would corrupt
// snap accounting.
type Selector struct {
	cfg *balance.Config
}

// NewSelector constructs a Selector over the given balance handle.
func NewSelector(cfg *balance.Config) *Selector {
	return &Selector{cfg: cfg}
}

// Offense returns the 11 offensive players on the field for the formation,
// in slot order with roster depth order preserved within each position.
func (s *Selector) Offense(formation string, roster []*players.Player) ([]*players.Player, error) {
	table, err := s.cfg.OffensivePersonnel(formation)
	if err != nil {
		return nil, err
	}
	unit, err := fillUnit(table, roster)
	if err != nil {
		return nil, fmt.Errorf("offense formation %s: %w", formation, err)
	}
	return unit, nil
}

// Defense returns the 11 defensive players on the field for the formation.
func (s *Selector) Defense(formation string, roster []*players.Player) ([]*players.Player, error) {
	table, err := s.cfg.DefensivePersonnel(formation)
	if err != nil {
		return nil, err
	}
	unit, err := fillUnit(table, roster)
	if err != nil {
		return nil, fmt.Errorf("defense formation %s: %w", formation, err)
	}
	return unit, nil
}

// fillUnit fills every slot of the personnel table from the roster: exact
// position match first, then alias match, then any remaining player, all in
// depth-chart (slice) order.
func fillUnit(table map[string]int, roster []*players.Player) ([]*players.Player, error) {
	slots := expandSlots(table)
	need := len(slots)
	if len(roster) < need {
		return nil, fmt.Errorf("needs %d players, roster has %d", need, len(roster))
	}

	unit := make([]*players.Player, need)
	used := make(map[string]bool, need)

	// Exact matches.
	for i, slot := range slots {
		for _, p := range roster {
			if used[p.ID] {
				continue
			}
			if p.Position == slot {
				unit[i] = p
				used[p.ID] = true
				break
			}
		}
	}

	// Alias matches for unfilled slots (a generic LB may fill MLB, etc).
	for i, slot := range slots {
		if unit[i] != nil {
			continue
		}
		for _, p := range roster {
			if used[p.ID] {
				continue
			}
			if players.Fills(p.Position, slot) {
				unit[i] = p
				used[p.ID] = true
				break
			}
		}
	}

	// Whoever is left, by depth order, so the unit always reaches 11.
	for i := range slots {
		if unit[i] != nil {
			continue
		}
		for _, p := range roster {
			if used[p.ID] {
				continue
			}
			unit[i] = p
			used[p.ID] = true
			break
		}
	}

	for i, p := range unit {
		if p == nil {
			return nil, fmt.Errorf("slot %s unfilled", slots[i])
		}
	}
	return unit, nil
}

// expandSlots flattens a position->count table into an ordered slot list.
// Order is deterministic: skill positions first so depth priority lands on
// the players the resolvers care about, then alphabetical.
func expandSlots(table map[string]int) []players.Position {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := slotPriority(names[i]), slotPriority(names[j])
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})

	var slots []players.Position
	for _, name := range names {
		for k := 0; k < table[name]; k++ {
			slots = append(slots, players.Position(name))
		}
	}
	return slots
}

func slotPriority(name string) int {
	switch players.Position(name) {
	case players.QB, players.K, players.P:
		return 0
	case players.RB, players.FB, players.WR, players.TE:
		return 1
	case players.CB, players.FS, players.SS, players.S:
		return 1
	case players.MLB, players.OLB, players.LB:
		return 2
	default:
		return 3
	}
}

// Assignment splits the on-field defense into rushers and coverage for one
// snap, derived from the blitz package's rushing slots.
type Assignment struct {
	Rushers  []*players.Player
	Coverage []*players.Player
}

// IsRushing reports whether the player was assigned a rushing role.
func (a Assignment) IsRushing(id string) bool {
	for _, p := range a.Rushers {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Assign matches the package's rushing slots against the on-field defense,
// exact position first then alias. If nothing matches at all it falls back
// to rushing the first four defensive linemen so every play has a rush.
func Assign(defense []*players.Player, rushSlots []string) Assignment {
	used := make(map[string]bool, len(rushSlots))
	var rushers []*players.Player

	for _, slot := range rushSlots {
		var pick *players.Player
		for _, p := range defense {
			if used[p.ID] {
				continue
			}
			if p.Position == players.Position(slot) {
				pick = p
				break
			}
		}
		if pick == nil {
			for _, p := range defense {
				if used[p.ID] {
					continue
				}
				if players.Fills(p.Position, players.Position(slot)) {
					pick = p
					break
				}
			}
		}
		if pick != nil {
			used[pick.ID] = true
			rushers = append(rushers, pick)
		}
	}

	if len(rushers) == 0 {
		for _, p := range defense {
			if players.IsDefensiveLine(p.Position) {
				rushers = append(rushers, p)
				used[p.ID] = true
				if len(rushers) == 4 {
					break
				}
			}
		}
	}

	var coverage []*players.Player
	for _, p := range defense {
		if !used[p.ID] {
			coverage = append(coverage, p)
		}
	}
	return Assignment{Rushers: rushers, Coverage: coverage}
}
