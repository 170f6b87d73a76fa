package penalty

import (
	"testing"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

func unit(team string, discipline int, positions ...players.Position) []*players.Player {
	var out []*players.Player
	for i, pos := range positions {
		out = append(out, &players.Player{
			ID:       team + string(pos) + string(rune('0'+i)),
			Name:     team + " " + string(pos),
			Position: pos,
			Team:     team,
			Ratings:  map[string]int{players.RatingDiscipline: discipline},
		})
	}
	return out
}

func offenseUnit(discipline int) []*players.Player {
	return unit("off", discipline,
		players.QB, players.RB, players.WR, players.WR, players.WR, players.TE,
		players.LT, players.LG, players.C, players.RG, players.RT)
}

func defenseUnit(discipline int) []*players.Player {
	return unit("def", discipline,
		players.DE, players.DE, players.DT, players.DT, players.OLB, players.OLB,
		players.MLB, players.CB, players.CB, players.FS, players.SS)
}

func passContext() *plays.Context {
	return &plays.Context{
		Quarter:       1,
		Clock:         700,
		Down:          1,
		Distance:      10,
		FieldPosition: 40,
		HomeOffense:   true,
		Type:          plays.Pass,
	}
}

func forcedConfig(spec balance.PenaltySpec) *balance.Config {
	cfg := balance.Default()
	cfg.Penalties = []balance.PenaltySpec{spec}
	return cfg
}

func TestNoPenaltyPassesYardsThrough(t *testing.T) {
	cfg := balance.Default()
	for i := range cfg.Penalties {
		cfg.Penalties[i].BaseRate = 0
	}
	e := New(cfg)

	eff := e.Check(offenseUnit(70), defenseUnit(70), passContext(), 8, rng.New(1))
	if eff.Occurred {
		t.Fatalf("expected no penalty with zero rates")
	}
	if eff.FinalYards != 8 {
		t.Fatalf("expected original yardage preserved, got %d", eff.FinalYards)
	}
}

func TestNegatingOffensivePenaltyReplacesYardage(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "offensive_holding", Side: "offense", Phase: "during_play",
		Yards: 10, BaseRate: 1.0, NegatesPlay: true,
		Positions: []string{"LT", "LG", "C", "RG", "RT"},
	}))

	eff := e.Check(offenseUnit(60), defenseUnit(60), passContext(), 23, rng.New(7))
	if !eff.Occurred || !eff.Negated {
		t.Fatalf("expected forced negating penalty, got %+v", eff)
	}
	if eff.FinalYards != -10 {
		t.Fatalf("expected final yardage to be the assessment alone (-10), got %d", eff.FinalYards)
	}
	if eff.Penalty.OnDefense {
		t.Fatalf("expected offensive penalty")
	}
}

func TestNonNegatingDefensivePenaltyAddsYardage(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "face_mask", Side: "defense", Phase: "during_play",
		Yards: 15, BaseRate: 1.0, AutoFirstDown: true,
	}))

	eff := e.Check(offenseUnit(60), defenseUnit(60), passContext(), 6, rng.New(3))
	if !eff.Occurred || eff.Negated {
		t.Fatalf("expected non-negating penalty, got %+v", eff)
	}
	if eff.FinalYards != 21 {
		t.Fatalf("expected 6 + 15 = 21 yards, got %d", eff.FinalYards)
	}
	if !eff.AutoFirstDown {
		t.Fatalf("expected automatic first down")
	}
}

func TestAutoFirstDownOnlyForDefense(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "false_start", Side: "offense", Phase: "pre_snap",
		Yards: 5, BaseRate: 1.0, NegatesPlay: true, AutoFirstDown: true,
	}))

	eff := e.Check(offenseUnit(60), defenseUnit(60), passContext(), 0, rng.New(3))
	if eff.AutoFirstDown {
		t.Fatalf("an offensive penalty can never grant an automatic first down")
	}
	if eff.FinalYards != -5 {
		t.Fatalf("expected -5 final yards, got %d", eff.FinalYards)
	}
}

func TestGuiltyPlayerComesFromPenalizedSide(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "pass_interference", Side: "defense", Phase: "during_play",
		Yards: 15, BaseRate: 1.0, AutoFirstDown: true, NegatesPlay: true,
		Positions: []string{"CB", "FS", "SS"},
	}))

	defense := defenseUnit(60)
	defIDs := map[string]bool{}
	for _, p := range defense {
		defIDs[p.ID] = true
	}

	src := rng.New(11)
	for i := 0; i < 500; i++ {
		eff := e.Check(offenseUnit(60), defense, passContext(), 0, src)
		if !defIDs[eff.Penalty.PlayerID] {
			t.Fatalf("guilty player %s not on defense", eff.Penalty.PlayerID)
		}
	}
}

func TestGuiltySelectionPrefersListedPositions(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "pass_interference", Side: "defense", Phase: "during_play",
		Yards: 15, BaseRate: 1.0, Positions: []string{"CB", "FS", "SS"},
	}))

	defense := defenseUnit(60)
	src := rng.New(29)
	secondary := 0
	const trials = 4000
	for i := 0; i < trials; i++ {
		eff := e.Check(offenseUnit(60), defense, passContext(), 0, src)
		switch players.Position(eff.Penalty.Position) {
		case players.CB, players.FS, players.SS:
			secondary++
		}
	}

	// 4 of 11 defenders at 3x tendency should take well over half the flags.
	ratio := float64(secondary) / trials
	if ratio < 0.55 {
		t.Fatalf("expected preferred positions to draw most flags, got %f", ratio)
	}
	if secondary == trials {
		t.Fatalf("expected occasional flags outside preferred positions")
	}
}

func TestDisciplinedTeamsDrawFewerFlags(t *testing.T) {
	cfg := balance.Default()
	cfg.Penalties = []balance.PenaltySpec{{
		Name: "offensive_holding", Side: "offense", Phase: "during_play",
		Yards: 10, BaseRate: 0.10, NegatesPlay: true,
	}}
	e := New(cfg)

	count := func(discipline int) int {
		src := rng.New(401)
		n := 0
		for i := 0; i < 20000; i++ {
			if e.Check(offenseUnit(discipline), defenseUnit(70), passContext(), 5, src).Occurred {
				n++
			}
		}
		return n
	}

	if clean, sloppy := count(92), count(25); clean >= sloppy {
		t.Fatalf("expected disciplined unit flagged less: %d vs %d", clean, sloppy)
	}
}

func TestPassOnlyPenaltySkipsRuns(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "pass_interference", Side: "defense", Phase: "during_play",
		Yards: 15, BaseRate: 1.0, PlayTypes: []string{"pass"},
	}))

	runCtx := passContext()
	runCtx.Type = plays.Run

	eff := e.Check(offenseUnit(60), defenseUnit(60), runCtx, 4, rng.New(5))
	if eff.Occurred {
		t.Fatalf("expected pass interference to never fire on a run")
	}
}

func TestAtMostOnePenaltyFirstRegisteredWins(t *testing.T) {
	cfg := balance.Default()
	cfg.Penalties = []balance.PenaltySpec{
		{Name: "first_flag", Side: "offense", Phase: "pre_snap", Yards: 5, BaseRate: 1.0, NegatesPlay: true},
		{Name: "second_flag", Side: "defense", Phase: "during_play", Yards: 15, BaseRate: 1.0},
	}
	e := New(cfg)

	for seed := uint64(0); seed < 100; seed++ {
		eff := e.Check(offenseUnit(60), defenseUnit(60), passContext(), 0, rng.New(seed))
		if eff.Penalty.Type != "first_flag" {
			t.Fatalf("expected registration order to decide, got %s", eff.Penalty.Type)
		}
	}
}

func TestPenaltyRecordsSituation(t *testing.T) {
	e := New(forcedConfig(balance.PenaltySpec{
		Name: "offside", Side: "defense", Phase: "pre_snap", Yards: 5, BaseRate: 1.0, NegatesPlay: true,
	}))

	ctx := passContext()
	ctx.Down = 3
	ctx.Distance = 7
	ctx.FieldPosition = 62

	eff := e.Check(offenseUnit(60), defenseUnit(60), ctx, 0, rng.New(2))
	p := eff.Penalty
	if p.Down != 3 || p.Distance != 7 || p.FieldPosition != 62 {
		t.Fatalf("expected situational snapshot on the penalty, got %+v", p)
	}
	if p.Phase != plays.PhasePreSnap {
		t.Fatalf("expected pre-snap phase, got %s", p.Phase)
	}
}
