package engine

// FirstDemonRound is the first round the demon's script executes
// (spec §4.10 first-round offsets).
const FirstDemonRound = 5

// UnavoidableDamageStartRound is the first round the escalating chip
// damage applies directly to the hero.
const UnavoidableDamageStartRound = 51

// RunRounds drives a trial to completion: alternating demon/player
// rounds until hero death, deck+hand+field exhaustion, or the maxRounds
// safety cap (spec §4.10).
func RunRounds(st *State, tr *Tracer) {
	for st.HeroHP > 0 &&
		(st.Field.Len() > 0 || st.Deck.Len() > 0 || st.Hand.Len() > 0) &&
		st.Round <= st.Config.MaxRounds {

		if st.Config.PrintRound > 0 && st.Round == st.Config.PrintRound {
			st.HitRoundX = true
		}

		decrementHandTimings(st)

		if st.Round%2 == 0 {
			tr.Bannerf("=== round %d: player ===", st.Round)
			runPlayerRound(st, tr)
			if st.HeroHP <= 0 {
				break
			}
		} else {
			tr.Bannerf("=== round %d: demon ===", st.Round)
			runDemonRound(st, tr)
		}

		st.Round++
	}

	st.Round--
}

func decrementHandTimings(st *State) {
	for i := 0; i < st.Hand.Len(); i++ {
		c := st.Hand.At(i)
		if c == nil {
			continue
		}
		if c.CurTiming > 0 {
			c.CurTiming--
		}
	}
}

func runPlayerRound(st *State, tr *Tracer) {
	drawCard(st, tr)

	playReadyCards(st, tr)
	if st.HeroHP <= 0 {
		return
	}

	UpdateRunes(st, tr)

	for i := 0; i < st.Field.Len(); i++ {
		PlayerCardTurn(st, i, tr)
	}

	StripBackstabBuffs(st)
	st.Field.RemoveDeadCards()
}

func drawCard(st *State, tr *Tracer) {
	if st.Deck.Len() == 0 {
		return
	}
	if st.Hand.Len() >= MaxHandSize {
		tr.Tracef("hand full, draw skipped")
		return
	}
	c := st.Deck.PopBack()
	st.Hand.PushBack(c)
	tr.Tracef("drew %s", c.Name())
}

// playReadyCards moves every hand card whose timing has elapsed onto the
// field, firing its onPlay sequence (spec §4.10).
func playReadyCards(st *State, tr *Tracer) {
	i := 0
	for i < st.Hand.Len() {
		c := st.Hand.At(i)
		if c == nil || c.CurTiming > 0 {
			i++
			continue
		}
		st.Hand.RemoveAt(i)
		if st.Field.Len() >= CardSetCapacity {
			// Field is full: the card simply never gets played this trial.
			st.Grave.PushBack(c)
			continue
		}
		st.Field.PushBack(c)
		tr.Tracef("%s enters the field", c.Name())
		OnPlay(st, c, tr)
		if st.HeroHP <= 0 {
			return
		}
	}
}

func runDemonRound(st *State, tr *Tracer) {
	if st.Round >= FirstDemonRound {
		DemonScript(st, tr)
	}
	if st.HeroHP <= 0 {
		return
	}
	if st.Round >= UnavoidableDamageStartRound {
		dmg := (st.Round-UnavoidableDamageStartRound)/2*60 + 80
		DamageUnavoidable(st, dmg, tr)
	}
}
