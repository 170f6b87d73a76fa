// Package ground resolves handoffs: carrier selection, yardage, and
// breakaway runs.
package ground

import (
	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/sim/weighted"
)

// Result is one resolved carry.
type Result struct {
	Carrier *players.Player
	Yards   int
}

// Carry base weights by backfield depth order.
var rbDepthWeights = []float64{1.00, 0.40, 0.15}

// SelectCarrier draws the ball carrier from the on-field backs, weighted by
// depth order and carrying skill. With no backs on the field the carry goes
// to the quarterback.
func SelectCarrier(offense []*players.Player, src rng.Source) *players.Player {
	var items []weighted.Item[*players.Player]

	backs := players.ByPosition(offense, players.RB)
	for i, p := range backs {
		base := rbDepthWeights[len(rbDepthWeights)-1]
		if i < len(rbDepthWeights) {
			base = rbDepthWeights[i]
		}
		rating := players.RatingChain(p, players.DefaultRating, players.RatingCarrying, players.RatingSpeed)
		items = append(items, weighted.Item[*players.Player]{Value: p, Weight: base * players.RatingScale(rating, 0.40)})
	}
	for _, p := range players.ByPosition(offense, players.FB) {
		rating := players.RatingChain(p, players.DefaultRating, players.RatingCarrying)
		items = append(items, weighted.Item[*players.Player]{Value: p, Weight: 0.10 * players.RatingScale(rating, 0.40)})
	}

	if carrier, ok := weighted.Pick(src, items); ok {
		return carrier
	}
	for _, p := range offense {
		if p.Position == players.QB {
			return p
		}
	}
	if len(offense) == 0 {
		return nil
	}
	return offense[0]
}

// Resolve draws the carry's yardage from the adjusted table: a Gaussian
// base run plus yards after contact scaled by the carrier's vision, with a
// small breakaway chance for fast backs.
func Resolve(carrier *players.Player, rates balance.RateTable, src rng.Source) Result {
	base := rng.Gaussian(src, rates.RushYardsMean, rates.RushYardsStdDev)

	vision := players.RatingChain(carrier, players.DefaultRating, players.RatingVision, players.RatingCarrying)
	contact := rates.YardsAfterContactMean * players.RatingScale(vision, 0.35)
	yards := base + rng.Gaussian(src, contact, 1.0)

	speed := players.RatingChain(carrier, players.DefaultRating, players.RatingSpeed)
	breakaway := 0.015 + float64(speed)/100.0*0.03
	if rng.Chance(src, breakaway) {
		yards += rng.Gaussian(src, 25, 10)
	}

	if yards < -6 {
		yards = -6
	}
	return Result{Carrier: carrier, Yards: roundYards(yards)}
}

func roundYards(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
