package modifier

import (
	"testing"

	"github.com/gridironsim/playsim/internal/balance"
	"github.com/gridironsim/playsim/internal/domain/players"
	"github.com/gridironsim/playsim/internal/domain/plays"
	"github.com/gridironsim/playsim/internal/sim/rng"
)

func baseTable() balance.RateTable {
	return balance.RateTable{
		CompletionRate:   0.62,
		SackRate:         0.065,
		PressureRate:     0.24,
		InterceptionRate: 0.025,
		DeflectionRate:   0.055,
		DropRate:         0.045,
		AirYardsMean:     8.5,
		AirYardsStdDev:   6.0,
		YACMean:          4.5,
		YACStdDev:        3.5,
		RushYardsMean:    4.2,
		RushYardsStdDev:  3.2,
	}
}

func neutralFacts(ctx *plays.Context) Facts {
	return Facts{
		QB:     &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingAccuracy: 50, players.RatingComposure: 50}},
		Ctx:    ctx,
		Streak: 1.0,
	}
}

func neutralContext() *plays.Context {
	return &plays.Context{
		Quarter:        2,
		Down:           1,
		Distance:       10,
		FieldPosition:  35,
		HomeOffense:    true,
		Weather:        plays.WeatherClear,
		CoverageScheme: plays.SchemeMan,
		Momentum:       1.0,
	}
}

func TestAdjustDeterministicForSeed(t *testing.T) {
	p := New(balance.Default())
	ctx := neutralContext()

	a := p.Adjust(baseTable(), neutralFacts(ctx), rng.New(7))
	b := p.Adjust(baseTable(), neutralFacts(ctx), rng.New(7))

	if a != b {
		t.Fatalf("expected identical adjusted tables for identical seeds:\n%+v\n%+v", a, b)
	}
}

func TestEliteQuarterbackRaisesCompletion(t *testing.T) {
	p := New(balance.Default())
	ctx := neutralContext()

	elite := neutralFacts(ctx)
	elite.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingAccuracy: 95}}
	weak := neutralFacts(ctx)
	weak.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingAccuracy: 25}}

	eliteTable := p.Adjust(baseTable(), elite, rng.New(3))
	weakTable := p.Adjust(baseTable(), weak, rng.New(3))

	if eliteTable.CompletionRate <= weakTable.CompletionRate {
		t.Fatalf("expected elite accuracy to beat weak accuracy: %f vs %f",
			eliteTable.CompletionRate, weakTable.CompletionRate)
	}
	if eliteTable.InterceptionRate >= weakTable.InterceptionRate {
		t.Fatalf("expected elite accuracy to lower interceptions: %f vs %f",
			eliteTable.InterceptionRate, weakTable.InterceptionRate)
	}
}

func TestPreventSchemeSoftensRush(t *testing.T) {
	p := New(balance.Default())

	base := neutralContext()
	prevent := neutralContext()
	prevent.CoverageScheme = plays.SchemePrevent

	normal := p.Adjust(baseTable(), neutralFacts(base), rng.New(5))
	soft := p.Adjust(baseTable(), neutralFacts(prevent), rng.New(5))

	if soft.SackRate >= normal.SackRate {
		t.Fatalf("expected prevent to reduce sack rate: %f vs %f", soft.SackRate, normal.SackRate)
	}
	if soft.CompletionRate <= normal.CompletionRate {
		t.Fatalf("expected prevent to raise completion rate: %f vs %f", soft.CompletionRate, normal.CompletionRate)
	}
}

func TestThirdDownRaisesPressure(t *testing.T) {
	p := New(balance.Default())

	first := neutralContext()
	third := neutralContext()
	third.Down = 3

	a := p.Adjust(baseTable(), neutralFacts(first), rng.New(9))
	b := p.Adjust(baseTable(), neutralFacts(third), rng.New(9))

	if b.PressureRate <= a.PressureRate {
		t.Fatalf("expected third down pressure above first down: %f vs %f", b.PressureRate, a.PressureRate)
	}
	if b.CompletionRate >= a.CompletionRate {
		t.Fatalf("expected third down completion below first down: %f vs %f", b.CompletionRate, a.CompletionRate)
	}
}

func TestSnowHurtsPassingGame(t *testing.T) {
	p := New(balance.Default())

	clear := neutralContext()
	snow := neutralContext()
	snow.Weather = plays.WeatherSnow

	a := p.Adjust(baseTable(), neutralFacts(clear), rng.New(13))
	b := p.Adjust(baseTable(), neutralFacts(snow), rng.New(13))

	if b.CompletionRate >= a.CompletionRate {
		t.Fatalf("expected snow to reduce completions: %f vs %f", b.CompletionRate, a.CompletionRate)
	}
	if b.DropRate <= a.DropRate {
		t.Fatalf("expected snow to raise drops: %f vs %f", b.DropRate, a.DropRate)
	}
}

func TestCrowdNoiseOnlyHurtsVisitors(t *testing.T) {
	p := New(balance.Default())

	home := neutralContext()
	home.CrowdNoise = 1.0
	home.HomeOffense = true

	away := neutralContext()
	away.CrowdNoise = 1.0
	away.HomeOffense = false

	quiet := neutralContext()

	homeTable := p.Adjust(baseTable(), neutralFacts(home), rng.New(17))
	quietTable := p.Adjust(baseTable(), neutralFacts(quiet), rng.New(17))
	awayTable := p.Adjust(baseTable(), neutralFacts(away), rng.New(17))

	if homeTable.CompletionRate != quietTable.CompletionRate {
		t.Fatalf("expected home offense unaffected by noise: %f vs %f",
			homeTable.CompletionRate, quietTable.CompletionRate)
	}
	if awayTable.CompletionRate >= quietTable.CompletionRate {
		t.Fatalf("expected away offense hurt by noise: %f vs %f",
			awayTable.CompletionRate, quietTable.CompletionRate)
	}
}

func TestClutchDirectionFollowsComposure(t *testing.T) {
	p := New(balance.Default())

	ctx := neutralContext()
	ctx.Clutch = 0.9

	calm := neutralFacts(ctx)
	calm.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingComposure: 90, players.RatingAccuracy: 50}}
	rattled := neutralFacts(ctx)
	rattled.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingComposure: 20, players.RatingAccuracy: 50}}

	calmTable := p.Adjust(baseTable(), calm, rng.New(19))
	rattledTable := p.Adjust(baseTable(), rattled, rng.New(19))

	if calmTable.CompletionRate <= rattledTable.CompletionRate {
		t.Fatalf("expected composed QB to complete more in the clutch: %f vs %f",
			calmTable.CompletionRate, rattledTable.CompletionRate)
	}
}

func TestClutchBelowThresholdIsNeutral(t *testing.T) {
	p := New(balance.Default())

	ctx := neutralContext()
	ctx.Clutch = 0.3

	calm := neutralFacts(ctx)
	calm.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingComposure: 90, players.RatingAccuracy: 50}}
	rattled := neutralFacts(ctx)
	rattled.QB = &players.Player{Position: players.QB, Ratings: map[string]int{players.RatingComposure: 20, players.RatingAccuracy: 50}}

	calmTable := p.Adjust(baseTable(), calm, rng.New(19))
	rattledTable := p.Adjust(baseTable(), rattled, rng.New(19))

	if calmTable.CompletionRate != rattledTable.CompletionRate {
		t.Fatalf("expected composure irrelevant below the clutch threshold")
	}
}

func TestRatesStayInsideParameterBounds(t *testing.T) {
	p := New(balance.Default())

	ctx := neutralContext()
	ctx.Down = 4
	ctx.Weather = plays.WeatherSnow
	ctx.CrowdNoise = 1.0
	ctx.HomeOffense = false
	ctx.Clutch = 1.0
	ctx.Momentum = 0.5

	f := neutralFacts(ctx)
	f.Complexity = Complex
	f.Streak = 0.2

	for seed := uint64(0); seed < 200; seed++ {
		got := p.Adjust(baseTable(), f, rng.New(seed))
		if got.CompletionRate < minCompletion || got.CompletionRate > maxCompletion {
			t.Fatalf("completion %f outside bounds at seed %d", got.CompletionRate, seed)
		}
		if got.SackRate < minSack || got.SackRate > maxSack {
			t.Fatalf("sack %f outside bounds at seed %d", got.SackRate, seed)
		}
		if got.PressureRate < minPressure || got.PressureRate > maxPressure {
			t.Fatalf("pressure %f outside bounds at seed %d", got.PressureRate, seed)
		}
		if got.InterceptionRate < minInterception || got.InterceptionRate > maxInterception {
			t.Fatalf("interception %f outside bounds at seed %d", got.InterceptionRate, seed)
		}
	}
}

func TestVarianceCanPushYardageNegative(t *testing.T) {
	p := New(balance.Default())
	ctx := neutralContext()

	f := neutralFacts(ctx)
	f.Complexity = Complex

	table := baseTable()
	table.RushYardsMean = 0.3

	sawNegative := false
	for seed := uint64(0); seed < 500; seed++ {
		if p.Adjust(table, f, rng.New(seed)).RushYardsMean < 0 {
			sawNegative = true
			break
		}
	}
	if !sawNegative {
		t.Fatalf("expected complex-play variance to allow negative rush means")
	}
}

func TestAdjustForPressureKeepsCompletionFloor(t *testing.T) {
	table := balance.RateTable{CompletionRate: minCompletion}
	AdjustForPressure(&table, 0.5)
	if table.CompletionRate < minCompletion {
		t.Fatalf("expected completion rate held at the floor %f, got %f", minCompletion, table.CompletionRate)
	}

	table = balance.RateTable{CompletionRate: 0.60}
	AdjustForPressure(&table, 0.85)
	if got, want := table.CompletionRate, 0.51; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("expected completion rate scaled to %f, got %f", want, got)
	}

	table = balance.RateTable{CompletionRate: maxCompletion}
	AdjustForPressure(&table, 1.5)
	if table.CompletionRate > maxCompletion {
		t.Fatalf("expected completion rate capped at %f, got %f", maxCompletion, table.CompletionRate)
	}
}
