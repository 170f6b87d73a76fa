// Package sim is the play-outcome engine: one call resolves one snap into a
// fully attributed result.
package sim

import (
	"log/slog"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/attrib"
	"github.com/gridironsim/playsim/internal/sim/formation"
	"github.com/gridironsim/playsim/internal/sim/ground"
	"github.com/gridironsim/playsim/internal/sim/kicking"
	"github.com/gridironsim/playsim/internal/sim/modifier"
	"github.com/gridironsim/playsim/internal/sim/passing"
	"github.com/gridironsim/playsim/internal/sim/penalty"
	"github.com/gridironsim/playsim/internal/sim/pressure"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

// Pressure shrinks the throwing window.
const pressuredCompletionFactor = 0.85

// Engine simulates single plays against one immutable balance handle. It is
// stateless across plays; per-game state (streaks, tackle counts) lives
// with the caller and arrives through Input.
type Engine struct {
	cfg       *balance.Config
	selector  *formation.Selector
	pipeline  *modifier.Pipeline
	penalties *penalty.Engine
	logger    *slog.Logger
}

// New constructs an Engine.
func New(cfg *balance.Config, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		selector:  formation.NewSelector(cfg),
		pipeline:  modifier.New(cfg),
		penalties: penalty.New(cfg),
		logger:    logger,
	}
}

// Input is everything one snap needs. The rosters are full depth charts;
// the engine selects who is actually on the field.
type Input struct {
	Ctx           plays.Context
	OffenseRoster []*players.Player
	DefenseRoster []*players.Player

	// Streak is the acting player's hot/cold multiplier (1.0 neutral),
	// maintained per game by the caller.
	Streak float64

	// TackleAdjust implements per-game tackle diminishing returns from the
	// counts this engine produced on earlier plays. May be nil.
	TackleAdjust attrib.WeightAdjuster

	Complexity modifier.Complexity
}

// Simulate resolves one snap. It is a pure function of the input and the
// random source; rerunning with the same seed yields an identical result.
// The result's ID is left empty for the caller to assign.
func (e *Engine) Simulate(in Input, src rng.Source) (*plays.Result, error) {
	ctx := &in.Ctx

	offense, err := e.selector.Offense(ctx.OffFormation, in.OffenseRoster)
	if err != nil {
		return nil, err
	}
	defense, err := e.selector.Defense(ctx.DefFormation, in.DefenseRoster)
	if err != nil {
		return nil, err
	}

	sheet := attrib.NewSheet(offense, defense)

	var res *plays.Result
	switch ctx.Type {
	case plays.Pass:
		res, err = e.resolvePass(ctx, in, offense, defense, sheet, src)
	case plays.Run:
		res, err = e.resolveRun(ctx, in, offense, defense, sheet, src)
	case plays.FieldGoal:
		res = e.resolveFieldGoal(ctx, offense, defense, sheet, src)
	case plays.ExtraPoint:
		res = e.resolveExtraPoint(ctx, offense, defense, sheet, src)
	case plays.Kickoff:
		res = e.resolveKickoff(ctx, offense, defense, sheet, src)
	default:
		return nil, &balance.ConfigurationError{Section: "play", Key: ctx.Type.String(), Message: "unknown play type"}
	}
	if err != nil {
		return nil, err
	}

	res.Stats = sheet.Lines()

	if e.logger != nil {
		e.logger.Debug("play resolved",
			slog.String("type", ctx.Type.String()),
			slog.String("outcome", res.Outcome),
			slog.Int("yards", res.Yards),
			slog.Int("points", res.Points),
		)
	}
	return res, nil
}

func (e *Engine) resolvePass(ctx *plays.Context, in Input, offense, defense []*players.Player, sheet *attrib.Sheet, src rng.Source) (*plays.Result, error) {
	qb := firstAt(offense, players.QB)
	base, err := e.rates(ctx)
	if err != nil {
		return nil, err
	}
	rates := e.pipeline.Adjust(base, modifier.Facts{
		Offense:    offense,
		Defense:    defense,
		QB:         qb,
		Ctx:        ctx,
		Streak:     in.Streak,
		Complexity: in.Complexity,
	}, src)

	assignment := formation.Assign(defense, e.cfg.BlitzPackage(ctx.BlitzPackage))
	pocket := pressure.Resolve(qb, rates, e.cfg, src)

	switch pocket.State {
	case pressure.Sacked:
		line := sheet.Line(qb, attrib.Offense)
		line.TimesSacked++
		line.SackYardsLost += -pocket.Yards
		attrib.CreditSack(sheet, assignment, src)
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome:  plays.OutcomeSack,
			preYards: pocket.Yards,
			elapsed:  rng.IntBetween(src, 30, 40),
		}, src), nil

	case pressure.Scrambled:
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome:  plays.OutcomeScramble,
			preYards: pocket.Yards,
			carrier:  qb,
			tackle:   true,
			elapsed:  rng.IntBetween(src, 28, 40),
		}, src), nil
	}

	if pocket.State == pressure.Pressured {
		modifier.AdjustForPressure(&rates, pressuredCompletionFactor)
		attrib.CreditPressure(sheet, assignment, src)
	}

	target := passing.SelectTarget(offense, src)
	defender := passing.AssignCoverage(target, defense, ctx.CoverageScheme, rates.AirYardsMean, src)

	sheet.Line(qb, attrib.Offense).PassAttempts++
	sheet.Line(target, attrib.Offense).Targets++
	if defender != nil {
		sheet.Line(defender, attrib.Defense).CoverageTargets++
	}

	comp := passing.ResolveCompletion(target, rates, ctx, src)
	switch comp.Outcome {
	case plays.OutcomeDrop:
		sheet.Line(target, attrib.Offense).Drops++
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome: plays.OutcomeDrop,
			elapsed: rng.IntBetween(src, 4, 7),
		}, src), nil

	case plays.OutcomeInterception:
		sheet.Line(qb, attrib.Offense).InterceptionsThrown++
		attrib.CreditInterception(sheet, defender)
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome:  plays.OutcomeInterception,
			turnover: true,
			elapsed:  rng.IntBetween(src, 8, 14),
		}, src), nil

	case plays.OutcomeDeflection:
		attrib.CreditDeflection(sheet, defender)
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome: plays.OutcomeDeflection,
			elapsed: rng.IntBetween(src, 4, 7),
		}, src), nil

	case plays.OutcomeIncomplete:
		return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
			outcome: plays.OutcomeIncomplete,
			elapsed: rng.IntBetween(src, 4, 7),
		}, src), nil
	}

	return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
		outcome:  plays.OutcomeComplete,
		preYards: comp.Yards,
		passer:   qb,
		receiver: target,
		tackle:   true,
		elapsed:  rng.IntBetween(src, 25, 40),
	}, src), nil
}

func (e *Engine) resolveRun(ctx *plays.Context, in Input, offense, defense []*players.Player, sheet *attrib.Sheet, src rng.Source) (*plays.Result, error) {
	carrier := ground.SelectCarrier(offense, src)
	base, err := e.rates(ctx)
	if err != nil {
		return nil, err
	}
	rates := e.pipeline.Adjust(base, modifier.Facts{
		Offense:    offense,
		Defense:    defense,
		QB:         firstAt(offense, players.QB),
		Ctx:        ctx,
		Streak:     in.Streak,
		Complexity: in.Complexity,
	}, src)

	carry := ground.Resolve(carrier, rates, src)
	return e.finishPlay(ctx, in, offense, defense, sheet, playFacts{
		outcome:  plays.OutcomeRush,
		preYards: carry.Yards,
		carrier:  carrier,
		tackle:   true,
		elapsed:  rng.IntBetween(src, 28, 42),
	}, src), nil
}

// playFacts carries a resolved-but-unscored play into penalty application
// and final assembly.
type playFacts struct {
	outcome  string
	preYards int
	turnover bool
	elapsed  int

	passer   *players.Player
	receiver *players.Player
	carrier  *players.Player
	tackle   bool
}

// finishPlay runs the penalty engine, assembles yardage and scoring, and
// credits the yardage-dependent statistics.
func (e *Engine) finishPlay(ctx *plays.Context, in Input, offense, defense []*players.Player, sheet *attrib.Sheet, f playFacts, src rng.Source) *plays.Result {
	eff := e.penalties.Check(offense, defense, ctx, f.preYards, src)
	e.recordPenalty(sheet, offense, defense, eff)

	turnover := f.turnover
	if eff.Negated {
		// A negated play wipes the turnover along with everything else.
		turnover = false
	}

	var asm Assembly
	if turnover {
		asm = Assembly{Yards: 0}
	} else {
		asm = assembleOutcome(ctx, f.preYards, eff.FinalYards, eff.Negated)
	}

	yards := f.preYards
	if eff.Negated {
		yards = 0
	} else if asm.Touchdown && yards > asm.Yards {
		yards = asm.Yards
	}

	if !eff.Negated && !turnover {
		if f.passer != nil && f.receiver != nil {
			passerLine := sheet.Line(f.passer, attrib.Offense)
			passerLine.PassCompletions++
			passerLine.PassYards += yards
			recvLine := sheet.Line(f.receiver, attrib.Offense)
			recvLine.Receptions++
			recvLine.ReceivingYards += yards
			if asm.Touchdown {
				passerLine.PassTouchdowns++
				recvLine.ReceivingTouchdowns++
			}
		}
		if f.carrier != nil {
			carrierLine := sheet.Line(f.carrier, attrib.Offense)
			carrierLine.RushAttempts++
			carrierLine.RushYards += yards
			if asm.Touchdown {
				carrierLine.RushTouchdowns++
			}
		}
		if f.tackle && !asm.Touchdown {
			attrib.CreditTackle(sheet, defense, in.TackleAdjust, src)
		}
	}

	return &plays.Result{
		Type:        ctx.Type,
		Outcome:     f.outcome,
		Yards:       asm.Yards,
		TimeElapsed: f.elapsed,
		Points:      asm.Points,
		Touchdown:   asm.Touchdown,
		Turnover:    turnover,
		Penalty:     eff.Penalty,
	}
}

func (e *Engine) resolveFieldGoal(ctx *plays.Context, offense, defense []*players.Player, sheet *attrib.Sheet, src rng.Source) *plays.Result {
	kicker := firstAt(offense, players.K)
	attempt := kicking.ResolveFieldGoal(kicker, ctx, src)

	line := sheet.Line(kicker, attrib.Offense)
	line.FieldGoalAttempts++

	eff := e.penalties.Check(offense, defense, ctx, 0, src)
	e.recordPenalty(sheet, offense, defense, eff)

	outcome := plays.OutcomeMissedKick
	points := 0
	if attempt.Good && !eff.Negated {
		outcome = plays.OutcomeFieldGoal
		points = 3
		line.FieldGoalsMade++
		if attempt.Distance > line.LongFieldGoal {
			line.LongFieldGoal = attempt.Distance
		}
	}

	return &plays.Result{
		Type:        ctx.Type,
		Outcome:     outcome,
		Points:      points,
		TimeElapsed: rng.IntBetween(src, 4, 6),
		Penalty:     eff.Penalty,
	}
}

func (e *Engine) resolveExtraPoint(ctx *plays.Context, offense, defense []*players.Player, sheet *attrib.Sheet, src rng.Source) *plays.Result {
	kicker := firstAt(offense, players.K)
	good := kicking.ResolveExtraPoint(kicker, ctx, src)

	line := sheet.Line(kicker, attrib.Offense)
	line.ExtraPointAttempts++

	eff := e.penalties.Check(offense, defense, ctx, 0, src)
	e.recordPenalty(sheet, offense, defense, eff)

	outcome := plays.OutcomeMissedKick
	points := 0
	if good && !eff.Negated {
		outcome = plays.OutcomeExtraPoint
		points = 1
		line.ExtraPointsMade++
	}

	return &plays.Result{
		Type:        ctx.Type,
		Outcome:     outcome,
		Points:      points,
		TimeElapsed: rng.IntBetween(src, 4, 6),
		Penalty:     eff.Penalty,
	}
}

// resolveKickoff returns the receiving team's starting field position in
// Yards. A spot at or past 100 is a return touchdown for the receiving
// side.
func (e *Engine) resolveKickoff(ctx *plays.Context, offense, defense []*players.Player, sheet *attrib.Sheet, src rng.Source) *plays.Result {
	kicker := firstAt(offense, players.K)
	kick := kicking.ResolveKickoff(kicker, defense, src)

	sheet.Line(kicker, attrib.Offense).KickoffYards += kick.KickYards

	eff := e.penalties.Check(offense, defense, ctx, 0, src)
	e.recordPenalty(sheet, offense, defense, eff)

	res := &plays.Result{
		Type:    ctx.Type,
		Penalty: eff.Penalty,
	}

	var spot int
	if kick.Touchback {
		res.Outcome = plays.OutcomeTouchback
		res.TimeElapsed = rng.IntBetween(src, 5, 8)
		spot = 25
	} else {
		if !eff.Negated {
			retLine := sheet.Line(kick.Returner, attrib.Defense)
			retLine.KickReturns++
			retLine.KickReturnYards += kick.ReturnYards
		}

		res.Outcome = plays.OutcomeKickoff
		res.TimeElapsed = rng.IntBetween(src, 6, 10)

		// Kicking from the 35: the receiving team fields the ball at
		// 65 - kick distance from its own goal and returns from there.
		spot = 65 - kick.KickYards + kick.ReturnYards
		if eff.Negated {
			// A negating flag wipes the return; the walk-off starts at
			// the catch spot.
			spot = 65 - kick.KickYards
		}
	}

	// Yardage here runs toward the receiving side, so the assessment is
	// applied with its sign flipped: a kicking-team foul walks the ball
	// forward for the receivers.
	spot -= eff.FinalYards
	if spot < 1 {
		spot = 1
	}

	if spot >= 100 && !eff.Negated && !kick.Touchback {
		res.Yards = 100
		res.Points = 6
		res.Touchdown = true
		return res
	}
	if spot > 99 {
		spot = 99
	}

	res.Yards = spot
	if !kick.Touchback && !eff.Negated {
		attrib.CreditTackle(sheet, offense, nil, src)
	}
	return res
}

func (e *Engine) recordPenalty(sheet *attrib.Sheet, offense, defense []*players.Player, eff penalty.Effect) {
	if !eff.Occurred || eff.Penalty == nil || eff.Penalty.PlayerID == "" {
		return
	}
	side := offense
	attribSide := attrib.Offense
	if eff.Penalty.OnDefense {
		side = defense
		attribSide = attrib.Defense
	}
	for _, p := range side {
		if p.ID == eff.Penalty.PlayerID {
			line := sheet.Line(p, attribSide)
			line.Penalties++
			line.PenaltyYards += eff.Penalty.Yards
			return
		}
	}
}

// rates resolves the base table for the formation pairing. Personnel
// selection already validated formation existence, so a missing table here
// means the config registered no pairing for it; the engine cannot guess
// balance numbers and fails the play.
func (e *Engine) rates(ctx *plays.Context) (balance.RateTable, error) {
	return e.cfg.Rates(ctx.OffFormation, ctx.DefFormation)
}

func firstAt(list []*players.Player, pos players.Position) *players.Player {
	for _, p := range list {
		if p.Position == pos {
			return p
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list[0]
}
