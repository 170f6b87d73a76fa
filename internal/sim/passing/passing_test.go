package passing

import (
	"testing"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

func passOffense() []*players.Player {
	mk := func(id string, pos players.Position, hands int) *players.Player {
		return &players.Player{ID: id, Position: pos, Ratings: map[string]int{players.RatingHands: hands}}
	}
	return []*players.Player{
		{ID: "qb1", Position: players.QB},
		mk("wr1", players.WR, 85),
		mk("wr2", players.WR, 78),
		mk("wr3", players.WR, 70),
		mk("te1", players.TE, 72),
		mk("rb1", players.RB, 65),
	}
}

func passDefense() []*players.Player {
	mk := func(id string, pos players.Position, cov int) *players.Player {
		return &players.Player{ID: id, Position: pos, Ratings: map[string]int{players.RatingCoverage: cov}}
	}
	return []*players.Player{
		mk("cb1", players.CB, 82),
		mk("cb2", players.CB, 75),
		mk("fs1", players.FS, 78),
		mk("ss1", players.SS, 74),
		mk("mlb1", players.MLB, 60),
		mk("olb1", players.OLB, 58),
	}
}

func TestSelectTargetOnlyPicksEligibleReceivers(t *testing.T) {
	offense := passOffense()
	src := rng.New(9)

	for i := 0; i < 2000; i++ {
		target := SelectTarget(offense, src)
		if target == nil {
			t.Fatalf("expected a target")
		}
		if target.Position == players.QB {
			t.Fatalf("quarterback must never target himself")
		}
	}
}

func TestSelectTargetFavorsFirstReceiver(t *testing.T) {
	offense := passOffense()
	src := rng.New(31)

	counts := map[string]int{}
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[SelectTarget(offense, src).ID]++
	}

	if counts["wr1"] <= counts["wr3"] {
		t.Fatalf("expected WR1 targeted more than WR3: %d vs %d", counts["wr1"], counts["wr3"])
	}
	if counts["wr3"] == 0 || counts["rb1"] == 0 {
		t.Fatalf("expected every eligible receiver to draw targets: %+v", counts)
	}
}

func TestSelectTargetFallsBackWithoutSkillPlayers(t *testing.T) {
	offense := []*players.Player{
		{ID: "qb1", Position: players.QB},
		{ID: "lt1", Position: players.LT},
	}
	src := rng.New(4)

	target := SelectTarget(offense, src)
	if target == nil || target.ID != "lt1" {
		t.Fatalf("expected fallback target lt1, got %+v", target)
	}
}

func TestManCoverageMatchesWideReceiverToCorner(t *testing.T) {
	defense := passDefense()
	wr := &players.Player{ID: "wr1", Position: players.WR}
	src := rng.New(14)

	corners := 0
	const trials = 5000
	for i := 0; i < trials; i++ {
		d := AssignCoverage(wr, defense, plays.SchemeMan, 10, src)
		if d.Position == players.CB {
			corners++
		}
	}
	if corners != trials {
		t.Fatalf("expected corners as primary man match on outside receivers, got %d/%d", corners, trials)
	}
}

func TestZoneCoverageUsesRouteDepth(t *testing.T) {
	defense := passDefense()
	wr := &players.Player{ID: "wr1", Position: players.WR}
	src := rng.New(25)

	deep := AssignCoverage(wr, defense, plays.SchemeZone, 22, src)
	if deep.Position != players.FS {
		t.Fatalf("expected deep zone on the free safety, got %s", deep.Position)
	}

	short := AssignCoverage(wr, defense, plays.SchemeZone, 3, src)
	if short.Position != players.MLB {
		t.Fatalf("expected short zone on the mike, got %s", short.Position)
	}
}

func TestCoverageFallsBackToUniformDraw(t *testing.T) {
	// Nobody at a preferred position: only defensive linemen available.
	defense := []*players.Player{
		{ID: "de1", Position: players.DE},
		{ID: "dt1", Position: players.DT},
	}
	wr := &players.Player{ID: "wr1", Position: players.WR}
	src := rng.New(8)

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		d := AssignCoverage(wr, defense, plays.SchemeMan, 10, src)
		if d == nil {
			t.Fatalf("expected fallback defender")
		}
		counts[d.ID]++
	}
	if counts["de1"] == 0 || counts["dt1"] == 0 {
		t.Fatalf("expected uniform fallback over remaining defenders, got %+v", counts)
	}
}

func TestForcedInterception(t *testing.T) {
	rates := balance.RateTable{InterceptionRate: 1.0, CompletionRate: 0.6}
	ctx := &plays.Context{}
	wr := &players.Player{ID: "wr1", Position: players.WR, Ratings: map[string]int{players.RatingHands: 80}}

	for seed := uint64(0); seed < 200; seed++ {
		got := ResolveCompletion(wr, rates, ctx, rng.New(seed))
		if got.Outcome != plays.OutcomeInterception {
			t.Fatalf("expected forced interception at seed %d, got %s", seed, got.Outcome)
		}
		if got.Yards != 0 {
			t.Fatalf("expected zero yards on interception, got %d", got.Yards)
		}
	}
}

func TestDropPrecedesInterception(t *testing.T) {
	// Both forced: the drop check runs first.
	rates := balance.RateTable{DropRate: 1.0, InterceptionRate: 1.0}
	ctx := &plays.Context{}
	wr := &players.Player{ID: "wr1", Position: players.WR, Ratings: map[string]int{players.RatingHands: 1}}

	got := ResolveCompletion(wr, rates, ctx, rng.New(3))
	if got.Outcome != plays.OutcomeDrop {
		t.Fatalf("expected drop to take precedence, got %s", got.Outcome)
	}
}

func TestCompletionGuaranteesAtLeastOneYard(t *testing.T) {
	rates := balance.RateTable{
		CompletionRate: 1.0,
		AirYardsMean:   -2.0, // busted-play mean from the variance stage
		AirYardsStdDev: 1.0,
		YACMean:        0,
		YACStdDev:      0.5,
	}
	ctx := &plays.Context{Primetime: true}
	wr := &players.Player{ID: "wr1", Position: players.WR, Ratings: map[string]int{players.RatingHands: 99}}

	for seed := uint64(0); seed < 300; seed++ {
		got := ResolveCompletion(wr, rates, ctx, rng.New(seed))
		if got.Outcome != plays.OutcomeComplete {
			continue
		}
		if got.Yards < 1 {
			t.Fatalf("expected at least one net yard on completion, got %d", got.Yards)
		}
		if got.AirYards+got.YAC != got.Yards {
			t.Fatalf("expected air+yac to equal total: %d + %d != %d", got.AirYards, got.YAC, got.Yards)
		}
	}
}

func TestBackGetsMoreYACThanTightEnd(t *testing.T) {
	rates := balance.RateTable{
		CompletionRate: 1.0,
		AirYardsMean:   2.0,
		AirYardsStdDev: 0.5,
		YACMean:        6.0,
		YACStdDev:      1.0,
	}
	ctx := &plays.Context{}

	sum := func(pos players.Position) int {
		p := &players.Player{ID: "x", Position: pos, Ratings: map[string]int{players.RatingHands: 99}}
		src := rng.New(61)
		total := 0
		for i := 0; i < 3000; i++ {
			total += ResolveCompletion(p, rates, ctx, src).YAC
		}
		return total
	}

	if rb, te := sum(players.RB), sum(players.TE); rb <= te {
		t.Fatalf("expected RB YAC above TE YAC: %d vs %d", rb, te)
	}
}
