// Package passing selects the target, assigns the covering defender, and
// resolves the ball in the air for pass plays.
package passing

import (
	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/sim/weighted"
)

// Depth-order base weights per position. The first listed receiver draws
// the most targets; nobody is ever a deterministic "best player" choice.
var (
	wrDepthWeights = []float64{1.00, 0.80, 0.55, 0.35}
	teDepthWeights = []float64{0.60, 0.30}
	rbDepthWeights = []float64{0.50, 0.25}
)

// SelectTarget draws the targeted receiver from the on-field offense by
// cumulative weight: depth-chart base weight times a rating factor.
func SelectTarget(offense []*players.Player, src rng.Source) *players.Player {
	var items []weighted.Item[*players.Player]

	add := func(list []*players.Player, depthWeights []float64) {
		for i, p := range list {
			base := depthWeights[len(depthWeights)-1]
			if i < len(depthWeights) {
				base = depthWeights[i]
			}
			rating := players.RatingChain(p, players.DefaultRating, players.RatingHands, players.RatingRouteRunning)
			items = append(items, weighted.Item[*players.Player]{
				Value:  p,
				Weight: base * players.RatingScale(rating, 0.50),
			})
		}
	}

	add(players.ByPosition(offense, players.WR), wrDepthWeights)
	add(players.ByPosition(offense, players.TE), teDepthWeights)
	add(players.ByPosition(offense, players.RB), rbDepthWeights)

	if target, ok := weighted.Pick(src, items); ok {
		return target
	}

	// No receivers or backs on the field; throw to anyone who is not the
	// quarterback rather than failing the play.
	var fallback []weighted.Item[*players.Player]
	for _, p := range offense {
		if p.Position == players.QB {
			continue
		}
		fallback = append(fallback, weighted.Item[*players.Player]{Value: p, Weight: 1})
	}
	if target, ok := weighted.Pick(src, fallback); ok {
		return target
	}
	return nil
}

// AssignCoverage picks the primary covering defender. Man coverage matches
// by position preference; zone coverage matches by route depth. An empty
// candidate pool degrades to a uniform draw over the whole defense.
func AssignCoverage(target *players.Player, defense []*players.Player, scheme string, airYards float64, src rng.Source) *players.Player {
	var preferred []players.Position

	switch scheme {
	case plays.SchemeZone, plays.SchemePrevent, plays.SchemeBlitz:
		switch {
		case airYards >= 15:
			preferred = []players.Position{players.FS, players.CB, players.SS}
		case airYards >= 7:
			preferred = []players.Position{players.SS, players.OLB, players.CB}
		default:
			preferred = []players.Position{players.MLB, players.OLB, players.CB}
		}
	default: // man coverage heuristics
		switch target.Position {
		case players.WR:
			preferred = []players.Position{players.CB, players.FS, players.SS}
		case players.TE:
			preferred = []players.Position{players.SS, players.OLB, players.FS}
		default:
			preferred = []players.Position{players.MLB, players.OLB, players.SS}
		}
	}

	for _, pos := range preferred {
		candidates := players.ByPosition(defense, pos)
		if len(candidates) == 0 {
			continue
		}
		items := make([]weighted.Item[*players.Player], 0, len(candidates))
		for _, p := range candidates {
			rating := players.RatingChain(p, players.DefaultRating, players.RatingCoverage)
			items = append(items, weighted.Item[*players.Player]{Value: p, Weight: players.RatingScale(rating, 0.60)})
		}
		if pick, ok := weighted.Pick(src, items); ok {
			return pick
		}
	}

	if len(defense) == 0 {
		return nil
	}
	return defense[src.IntN(len(defense))]
}

// Completion is the resolved fate of a throw.
type Completion struct {
	Outcome  string
	AirYards int
	YAC      int
	Yards    int
}

// ResolveCompletion evaluates the throw in fixed precedence: drop, then
// interception, then deflection, then completion against the adjusted
// completion rate.
func ResolveCompletion(target *players.Player, rates balance.RateTable, ctx *plays.Context, src rng.Source) Completion {
	hands := players.RatingChain(target, players.DefaultRating, players.RatingHands)
	dropRate := rates.DropRate / players.RatingScale(hands, 0.50)
	if rng.Chance(src, dropRate) {
		return Completion{Outcome: plays.OutcomeDrop}
	}

	if rng.Chance(src, rates.InterceptionRate) {
		return Completion{Outcome: plays.OutcomeInterception}
	}

	if rng.Chance(src, rates.DeflectionRate) {
		return Completion{Outcome: plays.OutcomeDeflection}
	}

	if !rng.Chance(src, rates.CompletionRate) {
		return Completion{Outcome: plays.OutcomeIncomplete}
	}

	air := rng.Gaussian(src, rates.AirYardsMean, rates.AirYardsStdDev)
	yac := rng.Gaussian(src, rates.YACMean, rates.YACStdDev) * yacScale(target.Position)
	total := air + yac

	if ctx.Primetime {
		total *= rng.Gaussian(src, 1.0, 0.15)
	}
	if total < 1 {
		total = 1
	}

	yards := int(total + 0.5)
	airInt := int(air + 0.5)
	if airInt > yards {
		airInt = yards
	}

	return Completion{
		Outcome:  plays.OutcomeComplete,
		AirYards: airInt,
		YAC:      yards - airInt,
		Yards:    yards,
	}
}

// yacScale adjusts yards-after-catch by receiver position: backs catch
// short with room to run, tight ends catch in traffic.
func yacScale(pos players.Position) float64 {
	switch pos {
	case players.RB, players.FB:
		return 1.4
	case players.TE:
		return 0.8
	default:
		return 1.0
	}
}
