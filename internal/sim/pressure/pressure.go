// Package pressure resolves what happens to the pocket before any throw is
// considered: sack, pressure, scramble, or a clean pocket.
package pressure

import (
	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

// State is the terminal pocket state for one dropback.
type State int

const (
	CleanPocket State = iota
	Pressured
	Sacked
	Scrambled
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Pressured:
		return "pressured"
	case Sacked:
		return "sacked"
	case Scrambled:
		return "scrambled"
	}
	return "clean_pocket"
}

// Result carries the terminal state and, for sacks and scrambles, the
// yardage. Sack yardage is negative.
type Result struct {
	State State
	Yards int
}

// Escaping a sure sack is harder than drifting away from pressure, so the
// escape bonus is additive but capped by the configured ceiling.
const escapeBonus = 0.18

// Resolve runs the pocket state machine. Sack and pressure are drawn
// independently against the adjusted rates; a mobile quarterback may turn
// either into a scramble, and a small designed-scramble chance exists even
// with a clean pocket.
func Resolve(qb *players.Player, rates balance.RateTable, cfg *balance.Config, src rng.Source) Result {
	sacked := rng.Chance(src, rates.SackRate)
	pressured := rng.Chance(src, rates.PressureRate)

	mobility := players.RatingChain(qb, players.DefaultRating, players.RatingMobility, players.RatingSpeed)
	composure := players.RatingChain(qb, players.DefaultRating, players.RatingComposure)
	ceiling := threshold(cfg, balance.ThresholdScrambleCeiling, 0.75)

	if sacked || pressured {
		p := scrambleProbability(mobility, composure)
		if sacked {
			p += escapeBonus
		}
		if p > ceiling {
			p = ceiling
		}
		if rng.Chance(src, p) {
			return Result{State: Scrambled, Yards: scrambleYards(qb, src)}
		}
		if sacked {
			loss := rng.IntBetween(src, cfg.SackYards.Min, cfg.SackYards.Max)
			return Result{State: Sacked, Yards: -loss}
		}
		return Result{State: Pressured}
	}

	// Designed quarterback runs: rare, and only for genuinely mobile QBs.
	designedGate := threshold(cfg, balance.ThresholdDesignedScrambleMobility, 85)
	designedRate := threshold(cfg, balance.ThresholdDesignedScrambleRate, 0.04)
	if float64(mobility) >= designedGate && rng.Chance(src, designedRate) {
		return Result{State: Scrambled, Yards: scrambleYards(qb, src)}
	}

	return Result{State: CleanPocket}
}

// scrambleProbability maps mobility and composure onto a base escape
// chance. A statue QB still escapes occasionally; a runner usually does.
func scrambleProbability(mobility, composure int) float64 {
	p := 0.05 + float64(mobility)/100.0*0.40 + float64(composure-50)/100.0*0.10
	if p < 0.02 {
		p = 0.02
	}
	return p
}

// scrambleYards draws from a mobility/agility weighted distribution with a
// small chance of a long run.
func scrambleYards(qb *players.Player, src rng.Source) int {
	mobility := players.RatingChain(qb, players.DefaultRating, players.RatingMobility, players.RatingSpeed)
	agility := players.RatingChain(qb, players.DefaultRating, players.RatingAgility, players.RatingSpeed)

	mean := 3.0 + float64(mobility-50)/50.0*2.5
	spread := 2.5 + float64(agility-50)/50.0*1.0
	yards := rng.Gaussian(src, mean, spread)

	if rng.Chance(src, 0.06) {
		yards += rng.Gaussian(src, 15, 6)
	}

	if yards < -3 {
		yards = -3
	}
	return int(yards + 0.5)
}

func threshold(cfg *balance.Config, name string, fallback float64) float64 {
	v, err := cfg.Threshold(name)
	if err != nil {
		return fallback
	}
	return v
}
