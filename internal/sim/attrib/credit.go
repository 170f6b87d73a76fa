package attrib

import (
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/sim/formation"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/sim/weighted"
)

// WeightAdjuster scales a player's selection weight. The game loop supplies
// one implementing tackle diminishing returns from the counts this engine
// produced earlier in the game; nil means no adjustment.
type WeightAdjuster func(playerID string) float64

// Position-class bonuses calibrated so credited sacks distribute with a
// defensive-line majority, linebacker minority, and the smallest share to
// defensive backs, while any eligible rusher can land any given sack.
const (
	sackBonusLine       = 40.0
	sackBonusLinebacker = 15.0
	sackBonusBack       = 0.0

	// A corner or safety rushing off the edge is usually unblocked.
	sackBonusUnblockedSurprise = 60.0

	splitSackChance = 0.25
	assistChance    = 0.35
)

var tackleClassBonus = map[players.Position]float64{
	players.MLB: 35, players.OLB: 30, players.LB: 30,
	players.SS: 25, players.FS: 20, players.S: 22,
	players.CB: 15,
	players.DE: 12, players.DT: 10, players.DL: 10,
}

// CreditSack credits one full sack across one or two defenders chosen by
// skill-weighted draw from the rushers. A split sack divides the credit
// evenly so the combined total is always exactly 1.0.
func CreditSack(sheet *Sheet, assignment formation.Assignment, src rng.Source) []*players.Player {
	candidates := assignment.Rushers
	if len(candidates) == 0 {
		candidates = assignment.Coverage
	}
	if len(candidates) == 0 {
		return nil
	}

	items := make([]weighted.Item[*players.Player], 0, len(candidates))
	for _, p := range candidates {
		items = append(items, weighted.Item[*players.Player]{
			Value:  p,
			Weight: sackWeight(p, assignment.IsRushing(p.ID)),
		})
	}

	n := 1
	if len(candidates) >= 2 && rng.Chance(src, splitSackChance) {
		n = 2
	}
	picked := weighted.PickN(src, items, n)

	share := 1.0 / float64(len(picked))
	for _, p := range picked {
		line := sheet.Line(p, Defense)
		line.Sacks += share
		line.Tackles++
	}
	return picked
}

func sackWeight(p *players.Player, rushing bool) float64 {
	w := float64(players.RatingChain(p, players.DefaultRating, players.RatingPassRush))
	switch {
	case players.IsDefensiveLine(p.Position):
		w += sackBonusLine
	case players.IsLinebacker(p.Position):
		w += sackBonusLinebacker
		if rushing {
			w += sackBonusUnblockedSurprise
		}
	case players.IsDefensiveBack(p.Position):
		w += sackBonusBack
		if rushing {
			w += sackBonusUnblockedSurprise
		}
	}
	return w
}

// CreditTackle credits the tackler (and sometimes an assist) from the
// on-field defense, weighted by tackle skill, position class, and the
// caller's diminishing-returns adjuster.
func CreditTackle(sheet *Sheet, defense []*players.Player, adjust WeightAdjuster, src rng.Source) *players.Player {
	if len(defense) == 0 {
		return nil
	}

	items := make([]weighted.Item[*players.Player], 0, len(defense))
	for _, p := range defense {
		w := float64(players.RatingChain(p, players.DefaultRating, players.RatingTackle))
		w += tackleClassBonus[p.Position]
		if adjust != nil {
			w *= adjust(p.ID)
		}
		items = append(items, weighted.Item[*players.Player]{Value: p, Weight: w})
	}

	if rng.Chance(src, assistChance) && len(defense) >= 2 {
		picked := weighted.PickN(src, items, 2)
		sheet.Line(picked[0], Defense).Tackles++
		sheet.Line(picked[1], Defense).TackleAssists++
		return picked[0]
	}

	pick, _ := weighted.Pick(src, items)
	sheet.Line(pick, Defense).Tackles++
	return pick
}

// CreditPressure credits a hurry to one rusher, weighted like sack credit.
func CreditPressure(sheet *Sheet, assignment formation.Assignment, src rng.Source) *players.Player {
	candidates := assignment.Rushers
	if len(candidates) == 0 {
		candidates = assignment.Coverage
	}
	if len(candidates) == 0 {
		return nil
	}

	items := make([]weighted.Item[*players.Player], 0, len(candidates))
	for _, p := range candidates {
		items = append(items, weighted.Item[*players.Player]{
			Value:  p,
			Weight: sackWeight(p, assignment.IsRushing(p.ID)),
		})
	}
	pick, _ := weighted.Pick(src, items)
	sheet.Line(pick, Defense).Pressures++
	return pick
}

// CreditInterception credits the pick to the covering defender.
func CreditInterception(sheet *Sheet, defender *players.Player) {
	if defender == nil {
		return
	}
	sheet.Line(defender, Defense).Interceptions++
}

// CreditDeflection credits the breakup to the covering defender.
func CreditDeflection(sheet *Sheet, defender *players.Player) {
	if defender == nil {
		return
	}
	sheet.Line(defender, Defense).PassDeflections++
}
