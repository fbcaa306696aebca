package engine

// Result is the outcome of a single trial: damage dealt to the demon,
// rounds survived, and whether the configured round threshold was
// reached (spec §1, §6).
type Result struct {
	DmgDone   int
	Rounds    int
	HitRoundX bool
}

// RunTrial shuffles def's deck and drives it to completion, returning the
// per-trial result. def must already be seeded and built by
// BuildDefaultState + InitState so that identical seeds reproduce an
// identical trial (spec §4.1, §8 property 5).
func RunTrial(def *State, tr *Tracer) Result {
	st := InitState(def)
	ShuffleDeck(st)
	RunRounds(st, tr)
	return Result{
		DmgDone:   st.DmgDone,
		Rounds:    st.Round,
		HitRoundX: st.HitRoundX,
	}
}
