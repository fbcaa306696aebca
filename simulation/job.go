// Package simulation drives the Monte-Carlo battle loop: it partitions a
// requested trial count across a worker pool, runs each trial against an
// independent, cache-line-isolated engine.State, and merges the per-trial
// results into one aggregate report.
package simulation

// TrialJob names one unit of work: a trial index (for -showdamage ordering)
// and the seed pair its state must be built with.
type TrialJob struct {
	TrialID int
	SeedW   uint32
	SeedZ   uint32
}
