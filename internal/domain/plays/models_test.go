package plays

import "testing"

func TestPlayTypeRoundTrip(t *testing.T) {
	for _, pt := range []PlayType{Pass, Run, FieldGoal, ExtraPoint, Kickoff} {
		parsed, ok := ParsePlayType(pt.String())
		if !ok {
			t.Fatalf("expected %q to parse", pt.String())
		}
		if parsed != pt {
			t.Fatalf("expected %v back, got %v", pt, parsed)
		}
	}
	if _, ok := ParsePlayType("punt"); ok {
		t.Fatalf("expected unknown play type to fail parsing")
	}
}

func TestYardsToGoal(t *testing.T) {
	ctx := Context{FieldPosition: 97}
	if got := ctx.YardsToGoal(); got != 3 {
		t.Fatalf("expected 3 yards to goal from the 97, got %d", got)
	}
}

func TestStatLineEmpty(t *testing.T) {
	line := &StatLine{PlayerID: "p1", Name: "A", Position: "QB"}
	if !line.Empty() {
		t.Fatalf("expected a line with only identity fields to be empty")
	}

	line.OffensiveSnaps = 1
	if line.Empty() {
		t.Fatalf("expected a snap to make the line non-empty")
	}
}

func TestStatLineMerge(t *testing.T) {
	a := &StatLine{PlayerID: "k1", FieldGoalAttempts: 1, FieldGoalsMade: 1, LongFieldGoal: 44}
	b := &StatLine{PlayerID: "k1", FieldGoalAttempts: 1, LongFieldGoal: 38}

	a.Merge(b)

	if a.FieldGoalAttempts != 2 {
		t.Fatalf("expected attempts to add, got %d", a.FieldGoalAttempts)
	}
	if a.LongFieldGoal != 44 {
		t.Fatalf("expected long field goal to fold with max, got %d", a.LongFieldGoal)
	}

	c := &StatLine{PlayerID: "d1", Sacks: 0.5, Tackles: 1}
	d := &StatLine{PlayerID: "d1", Sacks: 0.5}
	c.Merge(d)
	if c.Sacks != 1.0 {
		t.Fatalf("expected fractional sacks to add to 1.0, got %f", c.Sacks)
	}
}
