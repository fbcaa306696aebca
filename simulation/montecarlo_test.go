package simulation

import (
	"testing"

	"github.com/harrowgate/demonclash/engine"
)

func testSnapshot() *engine.InitialDeckSnapshot {
	return &engine.InitialDeckSnapshot{
		DemonTemplate: &engine.CardTemplate{Name: "Demon", Cost: 1, BaseAtk: 15, BaseHP: 3000,
			BaseAttrs: []engine.Attribute{{Kind: engine.AttrCurse, Level: 3}}},
		CardTemplates: []*engine.CardTemplate{
			{Name: "Fighter", Cost: 1, BaseAtk: 30, BaseHP: 150},
			{Name: "Healer", Cost: 1, BaseAtk: 5, BaseHP: 120,
				BaseAttrs: []engine.Attribute{{Kind: engine.AttrHealing, Level: 15}}},
		},
		HeroHP: 1500,
		Config: engine.Config{MaxRounds: 120},
	}
}

func TestRunProducesOneResultPerTrial(t *testing.T) {
	outcome := Run(testSnapshot(), RunOptions{NumTrials: 25, NumWorkers: 4, Seed: 42})
	if outcome.Stats.TotalTrials != 25 {
		t.Fatalf("expected 25 aggregated trials, got %d", outcome.Stats.TotalTrials)
	}
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	const trials = 40
	const seed = 1234

	one := Run(testSnapshot(), RunOptions{NumTrials: trials, NumWorkers: 1, Seed: seed, CollectRaw: true})
	many := Run(testSnapshot(), RunOptions{NumTrials: trials, NumWorkers: 8, Seed: seed, CollectRaw: true})

	if one.Stats != many.Stats {
		t.Fatalf("worker count changed the aggregate: 1-worker=%+v 8-worker=%+v", one.Stats, many.Stats)
	}
	for i := range one.Raw {
		if one.Raw[i] != many.Raw[i] {
			t.Fatalf("trial %d diverged across worker counts: %+v vs %+v", i, one.Raw[i], many.Raw[i])
		}
	}
}

func TestRunCollectRawPreservesSubmissionOrder(t *testing.T) {
	outcome := Run(testSnapshot(), RunOptions{NumTrials: 30, NumWorkers: 6, Seed: 7, CollectRaw: true})
	if len(outcome.Raw) != 30 {
		t.Fatalf("expected 30 raw results, got %d", len(outcome.Raw))
	}
	for i, r := range outcome.Raw {
		if r.Rounds == 0 {
			t.Fatalf("trial %d slot was never filled in (zero value), order not preserved", i)
		}
	}
}

func TestRunWithoutCollectRawLeavesRawNil(t *testing.T) {
	outcome := Run(testSnapshot(), RunOptions{NumTrials: 10, NumWorkers: 2, Seed: 1})
	if outcome.Raw != nil {
		t.Fatal("expected Raw to stay nil when CollectRaw is false")
	}
}

func TestRunCapsWorkersAtTrialCount(t *testing.T) {
	outcome := Run(testSnapshot(), RunOptions{NumTrials: 3, NumWorkers: 50, Seed: 9})
	if outcome.Stats.TotalTrials != 3 {
		t.Fatalf("expected 3 trials even with 50 requested workers, got %d", outcome.Stats.TotalTrials)
	}
}

func TestRunZeroTrialsReturnsEmptyAggregate(t *testing.T) {
	outcome := Run(testSnapshot(), RunOptions{NumTrials: 0, NumWorkers: 4, Seed: 1})
	if outcome.Stats.TotalTrials != 0 {
		t.Fatalf("expected an empty aggregate for zero trials, got %+v", outcome.Stats)
	}
}
