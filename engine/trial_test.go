package engine

import "testing"

func buildTrialSnapshot() *InitialDeckSnapshot {
	return &InitialDeckSnapshot{
		DemonTemplate: newTestTemplate("Demon", 20, 5000, Attribute{Kind: AttrCurse, Level: 5}),
		CardTemplates: []*CardTemplate{
			newTestTemplate("Fighter", 40, 200),
			newTestTemplate("Healer", 5, 150, Attribute{Kind: AttrHealing, Level: 20}),
		},
		HeroHP: 2000,
		Config: Config{MaxRounds: 200, PrintRound: 30},
	}
}

func TestRunTrialIsDeterministicForFixedSeeds(t *testing.T) {
	snap := buildTrialSnapshot()

	def1 := BuildDefaultState(snap, 111, 222)
	r1 := RunTrial(def1, NoopTracer)

	def2 := BuildDefaultState(snap, 111, 222)
	r2 := RunTrial(def2, NoopTracer)

	if r1 != r2 {
		t.Fatalf("identical seeds produced different trials: %+v vs %+v", r1, r2)
	}
}

func TestRunTrialDoesNotMutateDefaultState(t *testing.T) {
	snap := buildTrialSnapshot()
	def := BuildDefaultState(snap, 7, 9)
	deckLenBefore := def.Deck.Len()

	RunTrial(def, NoopTracer)

	if def.Deck.Len() != deckLenBefore {
		t.Fatalf("RunTrial must operate on a copy, default deck length changed from %d to %d", deckLenBefore, def.Deck.Len())
	}
	if def.Round != 1 {
		t.Fatalf("default state's round counter must stay at 1, got %d", def.Round)
	}
}

func TestRunTrialDifferentSeedsTypicallyDiverge(t *testing.T) {
	snap := buildTrialSnapshot()
	seen := map[Result]bool{}
	for i := uint32(0); i < 20; i++ {
		def := BuildDefaultState(snap, 1000+i, 2000+i)
		seen[RunTrial(def, NoopTracer)] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected varying seeds to produce more than one distinct trial outcome")
	}
}
