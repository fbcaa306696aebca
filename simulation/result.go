package simulation

import "github.com/harrowgate/demonclash/engine"

// AggregatedStats summarizes a batch of trials. Every field is produced by
// an associative reduction over per-trial results (spec §8 property 6):
// partitioning N trials across any number of workers and merging their
// partial AggregatedStats must equal running all N trials in one batch.
type AggregatedStats struct {
	TotalTrials int

	LowestRounds  int
	HighestRounds int
	sumRounds     int

	HitRoundCount int // trials whose Round reached the configured threshold

	LowestDamage  int
	HighestDamage int
	sumDamage     int
}

// NewAggregatedStats returns the identity element for Merge: merging it
// with any AggregatedStats yields that same value unchanged.
func NewAggregatedStats() AggregatedStats {
	return AggregatedStats{}
}

// Add folds one trial result into the running aggregate.
func (a *AggregatedStats) Add(r engine.Result) {
	if a.TotalTrials == 0 {
		a.LowestRounds, a.HighestRounds = r.Rounds, r.Rounds
		a.LowestDamage, a.HighestDamage = r.DmgDone, r.DmgDone
	} else {
		if r.Rounds < a.LowestRounds {
			a.LowestRounds = r.Rounds
		}
		if r.Rounds > a.HighestRounds {
			a.HighestRounds = r.Rounds
		}
		if r.DmgDone < a.LowestDamage {
			a.LowestDamage = r.DmgDone
		}
		if r.DmgDone > a.HighestDamage {
			a.HighestDamage = r.DmgDone
		}
	}
	a.TotalTrials++
	a.sumRounds += r.Rounds
	a.sumDamage += r.DmgDone
	if r.HitRoundX {
		a.HitRoundCount++
	}
}

// Merge combines two partial aggregates computed over disjoint trial sets.
// Associative and commutative: worker partitioning never changes the
// result (spec §8 property 6).
func (a AggregatedStats) Merge(b AggregatedStats) AggregatedStats {
	if a.TotalTrials == 0 {
		return b
	}
	if b.TotalTrials == 0 {
		return a
	}
	out := AggregatedStats{
		TotalTrials:   a.TotalTrials + b.TotalTrials,
		sumRounds:     a.sumRounds + b.sumRounds,
		sumDamage:     a.sumDamage + b.sumDamage,
		HitRoundCount: a.HitRoundCount + b.HitRoundCount,
	}
	out.LowestRounds = min(a.LowestRounds, b.LowestRounds)
	out.HighestRounds = max(a.HighestRounds, b.HighestRounds)
	out.LowestDamage = min(a.LowestDamage, b.LowestDamage)
	out.HighestDamage = max(a.HighestDamage, b.HighestDamage)
	return out
}

// AverageRounds is the mean rounds survived across all trials.
func (a AggregatedStats) AverageRounds() float64 {
	if a.TotalTrials == 0 {
		return 0
	}
	return float64(a.sumRounds) / float64(a.TotalTrials)
}

// AverageDamage is the mean damage dealt to the demon per trial.
func (a AggregatedStats) AverageDamage() float64 {
	if a.TotalTrials == 0 {
		return 0
	}
	return float64(a.sumDamage) / float64(a.TotalTrials)
}

// PercentHitRound is the fraction of trials (0-100) that reached the
// configured round threshold.
func (a AggregatedStats) PercentHitRound() float64 {
	if a.TotalTrials == 0 {
		return 0
	}
	return 100 * float64(a.HitRoundCount) / float64(a.TotalTrials)
}

// AverageDamagePerMinute converts AverageDamage into dmg/minute using the
// deck's cooldown-derived minute denominator (60 + 2*cost, spec §6).
func (a AggregatedStats) AverageDamagePerMinute(minuteDenomSeconds int) float64 {
	if minuteDenomSeconds <= 0 {
		return 0
	}
	return a.AverageDamage() * 60 / float64(minuteDenomSeconds)
}
