package simulation

import (
	"testing"

	"github.com/harrowgate/demonclash/engine"
)

func TestAggregatedStatsAddTracksMinMaxAndAverages(t *testing.T) {
	var stats AggregatedStats
	stats.Add(engine.Result{DmgDone: 100, Rounds: 10, HitRoundX: false})
	stats.Add(engine.Result{DmgDone: 300, Rounds: 20, HitRoundX: true})
	stats.Add(engine.Result{DmgDone: 200, Rounds: 15, HitRoundX: true})

	if stats.TotalTrials != 3 {
		t.Fatalf("expected 3 trials, got %d", stats.TotalTrials)
	}
	if stats.LowestDamage != 100 || stats.HighestDamage != 300 {
		t.Fatalf("unexpected damage bounds: low=%d high=%d", stats.LowestDamage, stats.HighestDamage)
	}
	if stats.LowestRounds != 10 || stats.HighestRounds != 20 {
		t.Fatalf("unexpected round bounds: low=%d high=%d", stats.LowestRounds, stats.HighestRounds)
	}
	if stats.AverageDamage() != 200 {
		t.Fatalf("expected average damage 200, got %v", stats.AverageDamage())
	}
	if stats.AverageRounds() != 15 {
		t.Fatalf("expected average rounds 15, got %v", stats.AverageRounds())
	}
	pct := stats.PercentHitRound()
	if pct < 66.6 || pct > 66.7 {
		t.Fatalf("expected ~66.67%% hit-round rate, got %v", pct)
	}
}

func TestAggregatedStatsMergeIsIdentityAndAssociative(t *testing.T) {
	results := []engine.Result{
		{DmgDone: 50, Rounds: 5},
		{DmgDone: 400, Rounds: 40, HitRoundX: true},
		{DmgDone: 120, Rounds: 12},
		{DmgDone: 75, Rounds: 8, HitRoundX: true},
		{DmgDone: 300, Rounds: 30},
	}

	whole := NewAggregatedStats()
	for _, r := range results {
		whole.Add(r)
	}

	// Identity: merging with the zero value changes nothing.
	if merged := whole.Merge(NewAggregatedStats()); merged != whole {
		t.Fatalf("merge with identity changed the aggregate: %+v vs %+v", merged, whole)
	}

	// Partition into three disjoint groups (uneven, as a worker pool would
	// produce) and merge pairwise in two different associations.
	var a, b, c AggregatedStats
	for i, r := range results {
		switch {
		case i < 1:
			a.Add(r)
		case i < 3:
			b.Add(r)
		default:
			c.Add(r)
		}
	}

	leftAssoc := a.Merge(b).Merge(c)
	rightAssoc := a.Merge(b.Merge(c))

	if leftAssoc != whole {
		t.Fatalf("left-associative merge diverged from single-batch aggregate: %+v vs %+v", leftAssoc, whole)
	}
	if rightAssoc != whole {
		t.Fatalf("right-associative merge diverged from single-batch aggregate: %+v vs %+v", rightAssoc, whole)
	}
}

func TestAggregatedStatsAverageDamagePerMinute(t *testing.T) {
	var stats AggregatedStats
	stats.Add(engine.Result{DmgDone: 600, Rounds: 1})

	// 600 damage over a 60s cooldown denominator is 600 dmg/min.
	if got := stats.AverageDamagePerMinute(60); got != 600 {
		t.Fatalf("expected 600 dmg/min, got %v", got)
	}
	if got := stats.AverageDamagePerMinute(0); got != 0 {
		t.Fatalf("expected 0 for a non-positive denominator, got %v", got)
	}
}

func TestAggregatedStatsZeroValueReportsZeroDerivedStats(t *testing.T) {
	zero := NewAggregatedStats()
	if zero.AverageDamage() != 0 || zero.AverageRounds() != 0 || zero.PercentHitRound() != 0 {
		t.Fatal("zero-value aggregate must report zero for every derived stat")
	}
}
