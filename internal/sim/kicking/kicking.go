// Package kicking resolves field goals, extra points, and kickoffs.
package kicking

import (
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/sim/weighted"
)

// Snap distance plus end-zone depth added to the line of scrimmage.
const fieldGoalOffset = 17

const extraPointBase = 0.94

// FieldGoalResult is one attempted field goal.
type FieldGoalResult struct {
	Kicker   *players.Player
	Distance int
	Good     bool
}

// MakeProbability returns the chance a kicker converts from the given
// distance under the given weather, clamped to (0.02, 0.99).
func MakeProbability(kicker *players.Player, distance int, weather plays.Weather) float64 {
	var base float64
	switch {
	case distance <= 30:
		base = 0.96
	case distance <= 40:
		base = 0.88
	case distance <= 50:
		base = 0.74
	case distance <= 56:
		base = 0.56
	default:
		base = 0.30
	}

	accuracy := players.RatingChain(kicker, players.DefaultRating, players.RatingKickAccuracy)
	p := base * players.RatingScale(accuracy, 0.12)

	switch weather {
	case plays.WeatherWind:
		p *= 0.88
	case plays.WeatherSnow:
		p *= 0.90
	case plays.WeatherRain:
		p *= 0.95
	}

	if p < 0.02 {
		p = 0.02
	}
	if p > 0.99 {
		p = 0.99
	}
	return p
}

// ResolveFieldGoal attempts a kick from the current spot.
func ResolveFieldGoal(kicker *players.Player, ctx *plays.Context, src rng.Source) FieldGoalResult {
	distance := ctx.YardsToGoal() + fieldGoalOffset
	p := MakeProbability(kicker, distance, ctx.Weather)
	return FieldGoalResult{
		Kicker:   kicker,
		Distance: distance,
		Good:     rng.Chance(src, p),
	}
}

// ResolveExtraPoint attempts the try after a touchdown.
func ResolveExtraPoint(kicker *players.Player, ctx *plays.Context, src rng.Source) bool {
	accuracy := players.RatingChain(kicker, players.DefaultRating, players.RatingKickAccuracy)
	p := extraPointBase * players.RatingScale(accuracy, 0.05)
	switch ctx.Weather {
	case plays.WeatherWind, plays.WeatherSnow:
		p *= 0.96
	}
	if p > 0.995 {
		p = 0.995
	}
	return rng.Chance(src, p)
}

// KickoffResult is one resolved kickoff.
type KickoffResult struct {
	Kicker      *players.Player
	Returner    *players.Player
	KickYards   int
	ReturnYards int
	Touchback   bool
}

// SelectReturner draws the return man from the receiving unit, weighted by
// speed; corners and receivers are the natural candidates.
func SelectReturner(receiving []*players.Player, src rng.Source) *players.Player {
	var items []weighted.Item[*players.Player]
	for _, p := range receiving {
		speed := players.RatingChain(p, players.DefaultRating, players.RatingSpeed)
		w := players.RatingScale(speed, 0.80)
		switch p.Position {
		case players.CB, players.WR, players.RB:
			w *= 2.0
		}
		items = append(items, weighted.Item[*players.Player]{Value: p, Weight: w})
	}
	pick, _ := weighted.Pick(src, items)
	return pick
}

// ResolveKickoff kicks to the receiving unit and resolves the return.
func ResolveKickoff(kicker *players.Player, receiving []*players.Player, src rng.Source) KickoffResult {
	power := players.RatingChain(kicker, players.DefaultRating, players.RatingKickPower)
	kick := rng.Gaussian(src, 62+float64(power-50)/50.0*6, 4)
	if kick < 40 {
		kick = 40
	}

	res := KickoffResult{Kicker: kicker, KickYards: int(kick + 0.5)}

	// Deep kicks sail through the end zone.
	touchbackChance := (kick - 60) / 15
	if rng.Chance(src, touchbackChance) {
		res.Touchback = true
		return res
	}

	res.Returner = SelectReturner(receiving, src)
	speed := players.RatingChain(res.Returner, players.DefaultRating, players.RatingSpeed)
	ret := rng.Gaussian(src, 21+float64(speed-50)/50.0*5, 6)
	if rng.Chance(src, 0.012) {
		ret += rng.Gaussian(src, 45, 15)
	}
	if ret < 0 {
		ret = 0
	}
	res.ReturnYards = int(ret + 0.5)
	return res
}
