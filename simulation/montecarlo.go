package simulation

import (
	"math/rand"
	"sync"

	"github.com/harrowgate/demonclash/engine"
)

// trialOutcome pairs a completed job's ID with its result so the caller can
// recover input order even though workers finish out of order.
type trialOutcome struct {
	TrialID int
	Result  engine.Result
}

// RunOptions configures one Monte-Carlo batch.
type RunOptions struct {
	NumTrials  int
	NumWorkers int
	Seed       int64 // top-level seed; per-trial seeds are derived deterministically from it
	Tracer     *engine.Tracer

	// CollectRaw requests every trial's Result in submission order, for
	// -showdamage. Leave false for a plain aggregate run.
	CollectRaw bool
}

// RunOutcome is the result of one Monte-Carlo batch.
type RunOutcome struct {
	Stats AggregatedStats
	Raw   []engine.Result // populated only when RunOptions.CollectRaw is set
}

// Run partitions NumTrials trials across NumWorkers goroutines, each owning
// one cache-line-isolated engine.State, and merges their results into a
// single AggregatedStats. Per-trial seeds are drawn from a single
// top-level generator seeded by Seed, so a fixed Seed and NumTrials always
// reproduce the same batch of trials regardless of NumWorkers (spec §8
// property 6) — only the seed stream is shared across workers, never the
// State itself.
func Run(snap *engine.InitialDeckSnapshot, opts RunOptions) RunOutcome {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > opts.NumTrials {
		numWorkers = opts.NumTrials
	}
	if numWorkers <= 0 {
		return RunOutcome{Stats: NewAggregatedStats()}
	}

	jobs := make(chan TrialJob, opts.NumTrials)
	outcomes := make(chan trialOutcome, opts.NumTrials)

	var wg sync.WaitGroup
	states := make([]engine.CacheLineState, numWorkers)
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, jobs, outcomes, &states[w].State, snap, opts.Tracer)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	for i := 0; i < opts.NumTrials; i++ {
		jobs <- TrialJob{
			TrialID: i,
			SeedW:   rng.Uint32(),
			SeedZ:   rng.Uint32(),
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	stats := NewAggregatedStats()
	var raw []engine.Result
	if opts.CollectRaw {
		raw = make([]engine.Result, opts.NumTrials)
	}
	for outcome := range outcomes {
		stats.Add(outcome.Result)
		if opts.CollectRaw {
			raw[outcome.TrialID] = outcome.Result
		}
	}

	return RunOutcome{Stats: stats, Raw: raw}
}

// worker drains jobs, one trial per job. For each job it rebuilds the
// default state into its own cache-line-isolated slot (spec §5); RunTrial
// then plays the trial on a fresh copy that InitState allocates.
func worker(wg *sync.WaitGroup, jobs <-chan TrialJob, outcomes chan<- trialOutcome, dst *engine.State, snap *engine.InitialDeckSnapshot, tr *engine.Tracer) {
	defer wg.Done()
	for job := range jobs {
		*dst = *engine.BuildDefaultState(snap, job.SeedW, job.SeedZ)
		result := engine.RunTrial(dst, tr)
		outcomes <- trialOutcome{TrialID: job.TrialID, Result: result}
	}
}
