package engine

// Config is the immutable run configuration the engine receives from its
// caller. No process-wide state belongs in the engine (spec §9); level,
// verbosity, and round thresholds are plain fields threaded in explicitly.
type Config struct {
	MaxRounds      int
	PrintRound     int  // threshold for "percent reached round N" (spec §6)
	AvgConcentrate bool // deterministic 50% averaging for Concentrate/Frost Bite (spec §4.7 step 3)
}

// DefaultMaxRounds is the safety cap on trial length (spec §6 -maxrounds).
const DefaultMaxRounds = 500

// DefaultPrintRound is the default "percent reached round N" threshold.
const DefaultPrintRound = 50

// State is the full mutable state of a single trial, owned by exactly one
// worker for the trial's lifetime (spec §3, §5).
type State struct {
	Demon Card

	Deck  CardSet
	Hand  CardSet
	Field CardSet
	Grave CardSet

	Runes [MaxRunes]Rune

	HeroHP    int
	HeroMaxHP int

	Round      int
	DmgDone    int
	HitRoundX  bool
	InitialLen int

	RNG PRNG

	Config Config
}

// InitialDeckSnapshot is the read-only description a trial is built from:
// the demon template, the ordered deck templates, and the selected rune
// templates. The catalog package produces this; the engine only consumes
// it (spec §1).
type InitialDeckSnapshot struct {
	DemonTemplate *CardTemplate
	CardTemplates []*CardTemplate
	RuneTemplates []*RuneTemplate
	HeroHP        int
	Config        Config
}

// BuildDefaultState constructs the canonical pre-shuffle state for a
// snapshot: the demon card, every deck card in its starting deck
// position, and every selected rune with zeroed per-trial state. This is
// the "DefaultState" InitState is specified to copy from (spec §2.9).
func BuildDefaultState(snap *InitialDeckSnapshot, seedW, seedZ uint32) *State {
	st := &State{
		HeroHP:    snap.HeroHP,
		HeroMaxHP: snap.HeroHP,
		Round:     1,
		Config:    snap.Config,
		RNG:       NewPRNG(seedW, seedZ),
	}
	st.Demon = *NewCard(snap.DemonTemplate)
	st.Demon.IsDemon = true

	for _, tpl := range snap.CardTemplates {
		st.Deck.PushBack(NewCard(tpl))
	}
	st.InitialLen = st.Deck.Len()

	for i, rtpl := range snap.RuneTemplates {
		if i >= MaxRunes {
			break
		}
		st.Runes[i] = Rune{Template: rtpl}
	}
	return st
}

// InitState copies a pre-built default state (preserving its PRNG seeds),
// producing a fresh per-trial state ready for ShuffleDeck + the round
// driver (spec §2.9).
func InitState(def *State) *State {
	st := &State{}
	*st = *def
	// Deep-copy every owned card so mutation during the trial never
	// touches the shared default state.
	st.Demon = cloneCard(def.Demon)
	st.Deck = cloneSet(&def.Deck)
	st.Hand = cloneSet(&def.Hand)
	st.Field = cloneSet(&def.Field)
	st.Grave = cloneSet(&def.Grave)
	return st
}

func cloneCard(c Card) Card {
	out := c
	out.Attrs.CopyFrom(&c.Attrs)
	return out
}

func cloneSet(src *CardSet) CardSet {
	var out CardSet
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if c == nil {
			out.PushBack(nil)
			continue
		}
		cp := cloneCard(*c)
		out.PushBack(&cp)
	}
	return out
}

// ShuffleDeck performs a Fisher-Yates shuffle of the deck using the
// trial's own PRNG (spec §2.9).
func ShuffleDeck(st *State) {
	n := st.Deck.Len()
	for i := n - 1; i > 0; i-- {
		j := st.RNG.Rnd(i + 1)
		a, b := st.Deck.At(i), st.Deck.At(j)
		st.Deck.Set(i, b)
		st.Deck.Set(j, a)
	}
}

// CacheLineState wraps a State followed by 4 KiB of padding so that
// worker-owned states placed in a contiguous slice never share a cache
// line (spec §3, §5). Workers index this array; the embedded State is
// what the engine operates on.
type CacheLineState struct {
	State State
	_pad  [4096]byte
}
