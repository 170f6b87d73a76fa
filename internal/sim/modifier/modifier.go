// Package modifier adjusts a base-rate table for the play about to be
// resolved. Stage order is fixed and significant: attributes, scheme,
// momentum, down, weather, crowd noise, clutch, streak, then execution
// variance. Rate parameters are re-clamped after every stage that can push
// them out of range; yardage means are never clamped and may go negative,
// which models busted plays.
package modifier

import (
	"strconv"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

// Complexity tiers the execution-variance spread of a play call.
type Complexity int

const (
	Simple Complexity = iota
	Medium
	Complex
)

// Per-parameter clamp bounds. Deliberately not shared between parameters:
// a 20% sack rate and a 20% completion rate are very different failures.
const (
	minCompletion, maxCompletion     = 0.15, 0.85
	minSack, maxSack                 = 0.01, 0.20
	minPressure, maxPressure         = 0.05, 0.55
	minInterception, maxInterception = 0.004, 0.15
	minDeflection, maxDeflection     = 0.01, 0.20
	minDrop, maxDrop                 = 0.005, 0.25
)

// Facts carries the situational inputs the pipeline folds into the table.
type Facts struct {
	Offense []*players.Player
	Defense []*players.Player
	QB      *players.Player
	Ctx     *plays.Context

	// Streak is the hot/cold multiplier for the acting player, 1.0 neutral,
	// supplied by the game loop's performance tracker.
	Streak float64

	Complexity Complexity
}

// Pipeline applies the modifier stages against one balance handle.
type Pipeline struct {
	cfg *balance.Config
}

// New constructs a Pipeline.
func New(cfg *balance.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Adjust runs every stage in order and returns the adjusted table. The
// input table is copied; base rates are never mutated.
func (p *Pipeline) Adjust(base balance.RateTable, f Facts, src rng.Source) balance.RateTable {
	t := base

	p.applyAttributes(&t, f)
	p.applyCategory(&t, balance.CategoryScheme, f.Ctx.CoverageScheme, 1.0)
	p.applyMomentum(&t, f.Ctx.Momentum)
	p.applyCategory(&t, balance.CategoryDown, strconv.Itoa(f.Ctx.Down), 1.0)
	p.applyCategory(&t, balance.CategoryWeather, string(f.Ctx.Weather), 1.0)
	p.applyCrowdNoise(&t, f.Ctx)
	p.applyClutch(&t, f)
	p.applyStreak(&t, f.Streak)
	p.applyVariance(&t, f.Complexity, src)

	return t
}

// Stage 1: player attributes on the field.
func (p *Pipeline) applyAttributes(t *balance.RateTable, f Facts) {
	qbAccuracy := players.RatingChain(f.QB, players.DefaultRating, players.RatingAccuracy)
	t.CompletionRate *= players.RatingScale(qbAccuracy, 0.22)
	t.InterceptionRate *= 2 - players.RatingScale(qbAccuracy, 0.30)

	if protection := averageRating(f.Offense, isProtector, players.RatingPassProtection); protection > 0 {
		factor := players.RatingScale(protection, 0.30)
		t.SackRate /= factor
		t.PressureRate /= factor
	}

	if hands := averageRating(f.Offense, isReceiver, players.RatingHands); hands > 0 {
		t.DropRate /= players.RatingScale(hands, 0.40)
		t.CompletionRate *= players.RatingScale(hands, 0.08)
	}

	if coverage := averageRating(f.Defense, isCoverDefender, players.RatingCoverage); coverage > 0 {
		t.CompletionRate *= 2 - players.RatingScale(coverage, 0.15)
		t.InterceptionRate *= players.RatingScale(coverage, 0.30)
		t.DeflectionRate *= players.RatingScale(coverage, 0.25)
	}

	if blocking := averageRating(f.Offense, isProtector, players.RatingRunBlocking); blocking > 0 {
		t.RushYardsMean *= players.RatingScale(blocking, 0.15)
	}
	if tackling := averageRating(f.Defense, isFrontSeven, players.RatingTackle); tackling > 0 {
		t.RushYardsMean *= 2 - players.RatingScale(tackling, 0.12)
	}

	clampRates(t)
}

// applyCategory multiplies every parameter the category entry names.
// intensity interpolates the multiplier toward neutral (0 = no effect).
func (p *Pipeline) applyCategory(t *balance.RateTable, category, entry string, intensity float64) {
	for _, param := range []struct {
		name  string
		field *float64
	}{
		{"completion_rate", &t.CompletionRate},
		{"sack_rate", &t.SackRate},
		{"pressure_rate", &t.PressureRate},
		{"interception_rate", &t.InterceptionRate},
		{"deflection_rate", &t.DeflectionRate},
		{"drop_rate", &t.DropRate},
		{"air_yards_mean", &t.AirYardsMean},
		{"yac_mean", &t.YACMean},
		{"rush_yards_mean", &t.RushYardsMean},
	} {
		m := p.mod(category, entry, param.name)
		if intensity != 1.0 {
			m = 1 + (m-1)*intensity
		}
		*param.field *= m
	}
	clampRates(t)
}

// Stage 3: momentum multiplier, clamped to a narrow band.
func (p *Pipeline) applyMomentum(t *balance.RateTable, momentum float64) {
	if momentum == 0 {
		momentum = 1.0
	}
	m := clampFloat(momentum, 0.85, 1.15)
	t.CompletionRate *= m
	t.RushYardsMean *= m
	t.YACMean *= m
	t.SackRate *= 2 - m
	clampRates(t)
}

// Stage 6: crowd noise hurts only a visiting offense.
func (p *Pipeline) applyCrowdNoise(t *balance.RateTable, ctx *plays.Context) {
	if ctx.HomeOffense || ctx.CrowdNoise <= 0 {
		return
	}
	noise := clampFloat(ctx.CrowdNoise, 0, 1)
	p.applyCategory(t, balance.CategoryCrowd, "loud", noise)
}

// Stage 7: clutch pressure, direction set by the acting player's composure
// relative to the neutral band.
func (p *Pipeline) applyClutch(t *balance.RateTable, f Facts) {
	clutchMin := p.threshold(balance.ThresholdClutch, 0.7)
	if f.Ctx.Clutch < clutchMin {
		return
	}

	composure := players.RatingChain(f.QB, players.DefaultRating, players.RatingComposure)
	low := p.threshold(balance.ThresholdComposureNeutralLow, 45)
	high := p.threshold(balance.ThresholdComposureNeutralHigh, 65)

	switch {
	case float64(composure) > high:
		t.CompletionRate *= 1.05
		t.InterceptionRate *= 0.90
	case float64(composure) < low:
		t.CompletionRate *= 0.93
		t.InterceptionRate *= 1.15
		t.SackRate *= 1.08
	}
	clampRates(t)
}

// Stage 8: hot/cold streak tied to the acting player's recent performance.
func (p *Pipeline) applyStreak(t *balance.RateTable, streak float64) {
	if streak == 0 {
		streak = 1.0
	}
	m := clampFloat(streak, 0.90, 1.10)
	t.CompletionRate *= m
	t.AirYardsMean *= m
	t.RushYardsMean *= m
	clampRates(t)
}

// Stage 9: execution variance. Rates get a clamped Gaussian perturbation;
// yardage means get an unclamped one.
func (p *Pipeline) applyVariance(t *balance.RateTable, c Complexity, src rng.Source) {
	rateSpread, yardSpread := varianceSpread(c)

	t.CompletionRate += rng.Gaussian(src, 0, rateSpread)
	t.SackRate += rng.Gaussian(src, 0, rateSpread/2)
	t.PressureRate += rng.Gaussian(src, 0, rateSpread)
	t.InterceptionRate += rng.Gaussian(src, 0, rateSpread/3)
	t.DropRate += rng.Gaussian(src, 0, rateSpread/3)
	clampRates(t)

	t.AirYardsMean += rng.Gaussian(src, 0, yardSpread)
	t.YACMean += rng.Gaussian(src, 0, yardSpread/2)
	t.RushYardsMean += rng.Gaussian(src, 0, yardSpread)
}

func varianceSpread(c Complexity) (rate, yards float64) {
	switch c {
	case Simple:
		return 0.02, 0.5
	case Complex:
		return 0.07, 1.8
	default:
		return 0.04, 1.0
	}
}

func (p *Pipeline) mod(category, entry, param string) float64 {
	m, err := p.cfg.Modifier(category, entry, param)
	if err != nil {
		return 1.0
	}
	return m
}

func (p *Pipeline) threshold(name string, fallback float64) float64 {
	v, err := p.cfg.Threshold(name)
	if err != nil {
		return fallback
	}
	return v
}

// AdjustForPressure shrinks the completion rate for a collapsing pocket
// after the pipeline has run, keeping the per-parameter clamp in force.
func AdjustForPressure(t *balance.RateTable, factor float64) {
	t.CompletionRate = clampFloat(t.CompletionRate*factor, minCompletion, maxCompletion)
}

func clampRates(t *balance.RateTable) {
	t.CompletionRate = clampFloat(t.CompletionRate, minCompletion, maxCompletion)
	t.SackRate = clampFloat(t.SackRate, minSack, maxSack)
	t.PressureRate = clampFloat(t.PressureRate, minPressure, maxPressure)
	t.InterceptionRate = clampFloat(t.InterceptionRate, minInterception, maxInterception)
	t.DeflectionRate = clampFloat(t.DeflectionRate, minDeflection, maxDeflection)
	t.DropRate = clampFloat(t.DropRate, minDrop, maxDrop)
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// averageRating returns the rounded mean rating over the included players,
// or 0 when nobody qualifies.
func averageRating(list []*players.Player, include func(players.Position) bool, rating string) int {
	total, n := 0, 0
	for _, p := range list {
		if !include(p.Position) {
			continue
		}
		total += players.RatingChain(p, players.DefaultRating, rating)
		n++
	}
	if n == 0 {
		return 0
	}
	return (total + n/2) / n
}

func isProtector(pos players.Position) bool {
	return players.IsOffensiveLine(pos) || pos == players.TE || pos == players.FB
}

func isReceiver(pos players.Position) bool {
	return pos == players.WR || pos == players.TE || pos == players.RB
}

func isCoverDefender(pos players.Position) bool {
	return players.IsDefensiveBack(pos) || players.IsLinebacker(pos)
}

func isFrontSeven(pos players.Position) bool {
	return players.IsDefensiveLine(pos) || players.IsLinebacker(pos)
}
