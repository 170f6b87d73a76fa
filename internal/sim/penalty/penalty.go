// Package penalty decides whether a flag is thrown on a play, who committed
// it, and how it changes the play's yardage and down state. At most one
// penalty is assessed per play.
package penalty

import (
	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
	"github.com/gridironsim/playsim/internal/sim/weighted"
)

// Positions whose discipline sets the tone for the whole unit weigh more
// heavily in the team discipline average.
var influenceWeights = map[players.Position]float64{
	players.QB:  3.0,
	players.C:   2.0,
	players.MLB: 3.0,
	players.LT:  2.0,
	players.SS:  2.0,
}

// How strongly a preferred position is favored when picking the guilty man.
const positionTendency = 3.0

// Effect is the penalty engine's verdict for one play.
type Effect struct {
	Occurred bool
	Penalty  *plays.Penalty

	// FinalYards is the play's net yardage after the penalty is applied:
	// the assessed yardage alone when the play is negated, otherwise the
	// original yardage adjusted by the assessed yardage.
	FinalYards    int
	AutoFirstDown bool
	Negated       bool
}

// Engine rolls the registered penalty types against one balance handle.
type Engine struct {
	cfg *balance.Config
}

// New constructs an Engine.
func New(cfg *balance.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Check rolls every registered penalty type in registration order and
// applies the first one that triggers. It is a pure function of its inputs
// and the random source; it never fails.
func (e *Engine) Check(offense, defense []*players.Player, ctx *plays.Context, preYards int, src rng.Source) Effect {
	situational := e.situationalModifier(ctx)

	for _, spec := range e.cfg.Penalties {
		if !spec.AppliesTo(ctx.Type.String()) {
			continue
		}

		side := offense
		onDefense := spec.Side == "defense"
		if onDefense {
			side = defense
		}

		rate := spec.BaseRate *
			disciplineModifier(side) *
			situational *
			homeFieldModifier(ctx, onDefense)

		if !rng.Chance(src, rate) {
			continue
		}

		guilty := selectGuilty(side, spec, src)
		pen := &plays.Penalty{
			Type:          spec.Name,
			OnDefense:     onDefense,
			Yards:         spec.Yards,
			AutoFirstDown: onDefense && spec.AutoFirstDown,
			NegatesPlay:   spec.NegatesPlay,
			Phase:         plays.PenaltyPhase(spec.Phase),
			Down:          ctx.Down,
			Distance:      ctx.Distance,
			FieldPosition: ctx.FieldPosition,
		}
		if guilty != nil {
			pen.PlayerID = guilty.ID
			pen.PlayerName = guilty.Name
			pen.Position = string(guilty.Position)
		}

		return apply(pen, preYards)
	}

	return Effect{FinalYards: preYards}
}

// apply computes the play's final yardage under the penalty. A negated play
// keeps only the assessed yardage; otherwise the assessment adds to (or
// subtracts from) the original result.
func apply(pen *plays.Penalty, preYards int) Effect {
	assessed := pen.Yards
	if !pen.OnDefense {
		assessed = -assessed
	}

	final := preYards + assessed
	if pen.NegatesPlay {
		final = assessed
	}

	return Effect{
		Occurred:      true,
		Penalty:       pen,
		FinalYards:    final,
		AutoFirstDown: pen.AutoFirstDown,
		Negated:       pen.NegatesPlay,
	}
}

// disciplineModifier maps the unit's weighted discipline average onto a
// penalty-rate multiplier through fixed bands.
func disciplineModifier(side []*players.Player) float64 {
	if len(side) == 0 {
		return 1.0
	}

	weightedSum, weightTotal := 0.0, 0.0
	for _, p := range side {
		w := 1.0
		if infl, ok := influenceWeights[p.Position]; ok {
			w = infl
		}
		weightedSum += w * float64(players.RatingChain(p, players.DefaultRating, players.RatingDiscipline))
		weightTotal += w
	}
	avg := weightedSum / weightTotal

	switch {
	case avg >= 85:
		return 0.80
	case avg >= 70:
		return 0.90
	case avg >= 55:
		return 1.00
	case avg >= 40:
		return 1.15
	default:
		return 1.30
	}
}

// situationalModifier folds the game situation into the base rate: flags
// come out more in the red zone and in two-minute football.
func (e *Engine) situationalModifier(ctx *plays.Context) float64 {
	m := 1.0
	if ctx.FieldPosition >= 80 {
		m *= e.mod("red_zone")
	}
	if (ctx.Quarter == 2 || ctx.Quarter >= 4) && ctx.Clock <= 120 {
		m *= e.mod("two_minute")
	}
	return m
}

func (e *Engine) mod(entry string) float64 {
	m, err := e.cfg.Modifier(balance.CategoryPenalty, entry, "rate")
	if err != nil {
		return 1.0
	}
	return m
}

// homeFieldModifier gives the home team a slight officiating break.
func homeFieldModifier(ctx *plays.Context, onDefense bool) float64 {
	committerHome := ctx.HomeOffense != onDefense
	if committerHome {
		return 0.92
	}
	return 1.08
}

// selectGuilty picks the committing player: candidates restricted to the
// penalized side, preferred positions boosted by a tendency multiplier,
// everyone weighted by individual penalty proneness. With no candidates at
// all it returns nil and the penalty is charged to the team.
func selectGuilty(side []*players.Player, spec balance.PenaltySpec, src rng.Source) *players.Player {
	if len(side) == 0 {
		return nil
	}

	preferred := make(map[players.Position]bool, len(spec.Positions))
	for _, pos := range spec.Positions {
		preferred[players.Position(pos)] = true
	}

	items := make([]weighted.Item[*players.Player], 0, len(side))
	for _, p := range side {
		discipline := players.RatingChain(p, players.DefaultRating, players.RatingDiscipline)
		proneness := float64(100 - discipline)
		if proneness < 5 {
			proneness = 5
		}
		w := proneness
		if preferred[p.Position] {
			w *= positionTendency
		}
		items = append(items, weighted.Item[*players.Player]{Value: p, Weight: w})
	}

	pick, _ := weighted.Pick(src, items)
	return pick
}
