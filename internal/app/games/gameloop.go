package games

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	domaingames "github.com/gridironsim/playsim/internal/domain/games"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/logging"
	"github.com/gridironsim/playsim/internal/metrics"
	"github.com/gridironsim/playsim/internal/sim"
	"github.com/gridironsim/playsim/internal/sim/modifier"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

const (
	quarterSeconds = 900

	// Hard stop against degenerate configs that never burn clock.
	maxPlaysPerGame = 400

	// 4th-down field goal range, measured from the offense's spot.
	fieldGoalRange = 38
)

// gameLoop drives one simulated game snap by snap: drives, downs, clock,
// score, and the per-game trackers (streaks, tackle counts) the engine is
// stateless about. All randomness, play calling included, flows through the
// game's seeded source.
type gameLoop struct {
	engine   *sim.Engine
	src      rng.Source
	logger   *slog.Logger
	recorder *metrics.Recorder

	game       domaingames.Game
	homeRoster []*players.Player
	awayRoster []*players.Player

	weather    plays.Weather
	crowdNoise float64
	primetime  bool

	homeStreak *streakTracker
	awayStreak *streakTracker
	tackles    *tackleLedger

	quarter  int
	clock    int
	homeBall bool
	fieldPos int // offense perspective, own goal line = 0
	down     int
	distance int

	pendingKickoff bool
	kickoffByHome  bool
	pendingXP      bool
	xpByHome       bool

	// The side that kicked the opening kickoff receives after halftime.
	openedWithHomeKick bool
}

// playCall is one play-calling decision: what to run and how both sides
// line up.
type playCall struct {
	typ        plays.PlayType
	off        string
	def        string
	coverage   string
	blitz      string
	complexity modifier.Complexity

	// surrender ends the drive without a snap (4th and long, out of range).
	surrender bool
}

func (l *gameLoop) run() domaingames.Game {
	l.quarter = 1
	l.clock = quarterSeconds
	l.homeStreak = newStreakTracker()
	l.awayStreak = newStreakTracker()
	l.tackles = newTackleLedger()

	if l.game.BoxScore == nil {
		l.game.BoxScore = &domaingames.BoxScore{}
	}
	l.game.Status = domaingames.StatusInProgress

	// Coin toss decides the opening kick.
	l.kickoffByHome = rng.Chance(l.src, 0.5)
	l.openedWithHomeKick = l.kickoffByHome
	l.pendingKickoff = true

	// Steps are bounded separately from recorded snaps so a misconfigured
	// balance file that fails every play still terminates.
	for steps := 0; l.quarter <= 4 && steps < maxPlaysPerGame; steps++ {
		l.step()
	}

	l.game.Status = domaingames.StatusFinal
	l.game.Quarter = 4
	l.game.Clock = 0
	return l.game
}

func (l *gameLoop) step() {
	switch {
	case l.pendingXP:
		l.runExtraPoint()
	case l.pendingKickoff:
		l.runKickoff()
	default:
		l.runScrimmage()
	}
}

func (l *gameLoop) runKickoff() {
	l.pendingKickoff = false
	kickingHome := l.kickoffByHome

	ctx := l.situationContext(plays.Kickoff, kickingHome)
	ctx.OffFormation = "kickoff"
	ctx.DefFormation = "kick_return"
	ctx.FieldPosition = 35

	res, err := l.simulate(ctx, kickingHome, modifier.Simple)
	if err != nil {
		l.logError("kickoff failed", err)
		l.homeBall = !kickingHome
		l.startDrive(25)
		return
	}
	l.record(res)

	if res.Touchdown {
		// Return touchdown: the receiving side scores and converts.
		l.addPoints(!kickingHome, res.Points)
		l.streak(!kickingHome).RecordSuccess()
		l.pendingXP = true
		l.xpByHome = !kickingHome
		return
	}

	l.homeBall = !kickingHome
	l.startDrive(res.Yards)
}

func (l *gameLoop) runExtraPoint() {
	l.pendingXP = false
	kickingHome := l.xpByHome

	ctx := l.situationContext(plays.ExtraPoint, kickingHome)
	ctx.OffFormation = "field_goal"
	ctx.DefFormation = "fg_block"
	ctx.FieldPosition = 85 // snap from the opponent 15

	res, err := l.simulate(ctx, kickingHome, modifier.Simple)
	if err != nil {
		l.logError("extra point failed", err)
	} else {
		l.record(res)
		if res.Points > 0 {
			l.addPoints(kickingHome, res.Points)
		}
	}

	l.pendingKickoff = true
	l.kickoffByHome = kickingHome
}

func (l *gameLoop) runScrimmage() {
	call := l.callPlay()
	if call.surrender {
		l.streak(l.homeBall).RecordFailure()
		l.changePossession()
		return
	}

	ctx := l.situationContext(call.typ, l.homeBall)
	ctx.Down = l.down
	ctx.Distance = l.distance
	ctx.FieldPosition = l.fieldPos
	ctx.OffFormation = call.off
	ctx.DefFormation = call.def
	ctx.CoverageScheme = call.coverage
	ctx.BlitzPackage = call.blitz

	res, err := l.simulate(ctx, l.homeBall, call.complexity)
	if err != nil {
		l.logError("play failed", err)
		l.down++
		if l.down > 4 {
			l.changePossession()
		}
		return
	}
	l.record(res)
	l.applyScrimmage(res, call)
}

func (l *gameLoop) applyScrimmage(res *plays.Result, call playCall) {
	offHome := l.homeBall
	streak := l.streak(offHome)

	if call.typ == plays.FieldGoal {
		if res.Points > 0 {
			l.addPoints(offHome, res.Points)
			streak.RecordSuccess()
			l.pendingKickoff = true
			l.kickoffByHome = offHome
		} else {
			streak.RecordFailure()
			l.changePossession()
		}
		return
	}

	if res.Turnover {
		streak.RecordFailure()
		l.changePossession()
		return
	}

	if res.Touchdown {
		l.addPoints(offHome, res.Points)
		streak.RecordSuccess()
		l.pendingXP = true
		l.xpByHome = offHome
		return
	}

	yards := res.Yards
	l.fieldPos += yards
	if l.fieldPos < 1 {
		l.fieldPos = 1
	}
	if l.fieldPos > 99 {
		l.fieldPos = 99
	}

	if yards >= 5 {
		streak.RecordSuccess()
	} else if yards <= 1 {
		streak.RecordFailure()
	}

	firstDown := l.distance-yards <= 0
	if res.Penalty != nil && res.Penalty.OnDefense && res.Penalty.AutoFirstDown {
		firstDown = true
	}
	if firstDown {
		l.down = 1
		l.distance = l.newDistance()
		return
	}

	// A negating penalty replays the down from the adjusted spot.
	if res.Penalty != nil && res.Penalty.NegatesPlay {
		l.distance -= yards
		return
	}

	l.distance -= yards
	l.down++
	if l.down > 4 {
		streak.RecordFailure()
		l.changePossession()
	}
}

// callPlay decides the next snap from down, distance, score, and clock.
func (l *gameLoop) callPlay() playCall {
	toGoal := 100 - l.fieldPos
	trailing := l.scoreDiff(l.homeBall) < 0

	if l.down == 4 {
		if toGoal <= fieldGoalRange {
			return playCall{typ: plays.FieldGoal, off: "field_goal", def: "fg_block"}
		}
		goForIt := l.distance <= 2 || (l.quarter == 4 && trailing && l.clock < 360)
		if !goForIt {
			return playCall{surrender: true}
		}
	}

	if toGoal <= 3 && rng.Chance(l.src, 0.6) {
		return playCall{typ: plays.Run, off: "goal_line", def: "goal_line_d", complexity: modifier.Simple}
	}

	passProb := 0.52
	switch {
	case l.distance >= 8:
		passProb = 0.78
	case l.distance <= 2:
		passProb = 0.30
	}
	if l.quarter == 4 && trailing && l.clock < 300 {
		passProb = 0.85
	}

	if rng.Chance(l.src, passProb) {
		return l.callPass()
	}
	return playCall{typ: plays.Run, off: "i_form", def: "4-3", complexity: modifier.Simple}
}

func (l *gameLoop) callPass() playCall {
	def := "nickel"
	if rng.Chance(l.src, 0.3) {
		def = "dime"
	}

	coverage := plays.SchemeZone
	blitz := "standard"
	complexity := modifier.Medium
	switch {
	case rng.Chance(l.src, 0.15):
		coverage = plays.SchemeBlitz
		blitz = l.pickBlitz()
		complexity = modifier.Complex
	case rng.Chance(l.src, 0.45):
		coverage = plays.SchemeMan
	}
	if l.quarter == 4 && l.clock < 120 && l.scoreDiff(l.homeBall) < 0 {
		// Defense protecting a lead late sits back.
		coverage = plays.SchemePrevent
		blitz = "standard"
	}

	return playCall{typ: plays.Pass, off: "shotgun", def: def, coverage: coverage, blitz: blitz, complexity: complexity}
}

func (l *gameLoop) pickBlitz() string {
	packages := []string{"mike_blitz", "double_a_gap", "corner_blitz", "safety_blitz", "zero_blitz"}
	return packages[l.src.IntN(len(packages))]
}

// situationContext fills the play-independent parts of the snap context.
func (l *gameLoop) situationContext(typ plays.PlayType, offenseHome bool) plays.Context {
	return plays.Context{
		Quarter:     l.quarter,
		Clock:       l.clock,
		ScoreDiff:   l.scoreDiff(offenseHome),
		HomeOffense: offenseHome,
		Type:        typ,
		Weather:     l.weather,
		CrowdNoise:  l.crowdNoise,
		Momentum:    1.0,
		Clutch:      l.clutch(offenseHome),
		Primetime:   l.primetime,
	}
}

// clutch ramps urgency late in a one-score game.
func (l *gameLoop) clutch(offenseHome bool) float64 {
	diff := l.scoreDiff(offenseHome)
	if diff < 0 {
		diff = -diff
	}
	if l.quarter == 4 && l.clock < 300 && diff <= 8 {
		return 0.9
	}
	if l.quarter == 4 {
		return 0.5
	}
	return 0.2
}

func (l *gameLoop) simulate(ctx plays.Context, offenseHome bool, complexity modifier.Complexity) (*plays.Result, error) {
	offense, defense := l.homeRoster, l.awayRoster
	if !offenseHome {
		offense, defense = l.awayRoster, l.homeRoster
	}
	in := sim.Input{
		Ctx:           ctx,
		OffenseRoster: offense,
		DefenseRoster: defense,
		Streak:        l.streak(offenseHome).Multiplier(),
		TackleAdjust:  l.tackles.Adjust,
		Complexity:    complexity,
	}

	start := time.Now()
	res, err := l.engine.Simulate(in, l.src)
	if err != nil {
		return nil, err
	}
	l.recorder.RecordPlay(ctx.Type.String(), res.Outcome, time.Since(start), res.Penalty != nil, res.Touchdown, res.Turnover)
	return res, nil
}

// record assigns the play its identity, folds its stats into the box score,
// runs the clock, and feeds the tackle ledger.
func (l *gameLoop) record(res *plays.Result) {
	res.ID = uuid.NewString()
	l.game.PlayLog = append(l.game.PlayLog, res)
	l.game.BoxScore.Add(l.game.HomeTeam.ID, l.game.AwayTeam.ID, res.Stats)

	for _, line := range res.Stats {
		l.tackles.Record(line.PlayerID, line.Tackles)
	}

	l.clock -= res.TimeElapsed
	l.game.Quarter = l.quarter
	l.game.Clock = l.clock
	if l.clock <= 0 {
		l.endQuarter()
	}
}

func (l *gameLoop) endQuarter() {
	l.quarter++
	l.clock = quarterSeconds
	if l.quarter == 3 {
		// Halftime: the opening kickers receive, so the other side kicks.
		l.pendingKickoff = true
		l.kickoffByHome = !l.openedWithHomeKick
	}
}

func (l *gameLoop) startDrive(spot int) {
	if spot < 1 {
		spot = 1
	}
	if spot > 99 {
		spot = 99
	}
	l.fieldPos = spot
	l.down = 1
	l.distance = l.newDistance()
}

func (l *gameLoop) newDistance() int {
	if toGoal := 100 - l.fieldPos; toGoal < 10 {
		return toGoal
	}
	return 10
}

func (l *gameLoop) changePossession() {
	spot := 100 - l.fieldPos
	l.homeBall = !l.homeBall
	l.startDrive(spot)
}

func (l *gameLoop) addPoints(home bool, points int) {
	if home {
		l.game.Score.Home += points
	} else {
		l.game.Score.Away += points
	}
}

func (l *gameLoop) scoreDiff(offenseHome bool) int {
	if offenseHome {
		return l.game.Score.Home - l.game.Score.Away
	}
	return l.game.Score.Away - l.game.Score.Home
}

func (l *gameLoop) streak(home bool) *streakTracker {
	if home {
		return l.homeStreak
	}
	return l.awayStreak
}

func (l *gameLoop) logError(msg string, err error) {
	if l.logger != nil {
		l.logger.Error(msg,
			slog.String(logging.FieldGameID, l.game.ID),
			slog.Any("err", err),
		)
	}
}
