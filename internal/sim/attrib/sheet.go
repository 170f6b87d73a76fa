// Package attrib converts resolved outcomes into per-player statistics and
// keeps the snap-count invariant: exactly eleven offensive and eleven
// defensive snap credits per play.
package attrib

import (
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
)

// Side marks which side of the ball a statistic implies.
type Side int

const (
	Offense Side = iota
	Defense
)

// Sheet is the per-play stat accumulator. Lines are created lazily the
// first time a player is referenced; players outside the starting personnel
// (rotation players) are retroactively credited a snap on the side implied
// by their first statistic.
type Sheet struct {
	lines map[string]*plays.StatLine
	order []string

	starters map[string]Side
}

// NewSheet opens a sheet for one play and credits one snap to every
// on-field player on both sides.
func NewSheet(offense, defense []*players.Player) *Sheet {
	s := &Sheet{
		lines:    make(map[string]*plays.StatLine, len(offense)+len(defense)),
		starters: make(map[string]Side, len(offense)+len(defense)),
	}
	for _, p := range offense {
		s.starters[p.ID] = Offense
		s.line(p).OffensiveSnaps = 1
	}
	for _, p := range defense {
		s.starters[p.ID] = Defense
		s.line(p).DefensiveSnaps = 1
	}
	return s
}

func (s *Sheet) line(p *players.Player) *plays.StatLine {
	if existing, ok := s.lines[p.ID]; ok {
		return existing
	}
	line := &plays.StatLine{
		PlayerID: p.ID,
		Name:     p.Name,
		Position: string(p.Position),
		Team:     p.Team,
	}
	s.lines[p.ID] = line
	s.order = append(s.order, p.ID)
	return line
}

// Line returns the player's stat line, creating it if needed. A player not
// among the starters gets the rotation snap credit for the given side.
func (s *Sheet) Line(p *players.Player, side Side) *plays.StatLine {
	line := s.line(p)
	if _, started := s.starters[p.ID]; !started {
		s.starters[p.ID] = side
		if side == Offense {
			line.OffensiveSnaps = 1
		} else {
			line.DefensiveSnaps = 1
		}
	}
	return line
}

// Lines returns every non-empty stat line in first-reference order.
func (s *Sheet) Lines() []*plays.StatLine {
	out := make([]*plays.StatLine, 0, len(s.order))
	for _, id := range s.order {
		if line := s.lines[id]; !line.Empty() {
			out = append(out, line)
		}
	}
	return out
}

// SnapCounts returns the number of distinct players credited with an
// offensive and defensive snap.
func (s *Sheet) SnapCounts() (offense, defense int) {
	for _, line := range s.lines {
		if line.OffensiveSnaps > 0 {
			offense++
		}
		if line.DefensiveSnaps > 0 {
			defense++
		}
	}
	return offense, defense
}
