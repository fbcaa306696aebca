package engine

// MaxHandSize bounds the hand (spec §3).
const MaxHandSize = 5

// Remove takes a card off the field, following spec §4.6:
//  1. mark it dead,
//  2. withdraw its outgoing class buffs,
//  3. fire Desperation abilities if it's heading to the grave,
//  4. build a fresh template-reset copy and route it (grave, or exile's
//     random deck re-entry),
//  5. overwrite the field slot with a DeadCard sentinel so neighboring
//     indices still resolve for the rest of the round.
func Remove(st *State, card *Card, sendToGrave bool, tr *Tracer) {
	idx := st.Field.IndexOf(card)

	card.Kill()
	WithdrawOutgoingBuffs(&st.Field, card)

	if sendToGrave {
		runDesperationAbilities(st, card, tr)
	}

	fresh := NewCard(card.Template)

	if sendToGrave {
		routeToGraveOrResurrect(st, card, fresh, tr)
	} else {
		st.Deck.InsertRandom(fresh, &st.RNG)
		tr.Tracef("%s exiled back into the deck", fresh.Name())
	}

	if idx >= 0 {
		st.Field.Set(idx, DeadCard())
	}
}

// runDesperationAbilities fires D_PRAYER, D_REANIMATE, and D_REINCARNATE
// as card leaves for the grave (spec §4.6 step 3).
func runDesperationAbilities(st *State, card *Card, tr *Tracer) {
	if has, lvl := card.Has(AttrDPrayer); has {
		st.HeroHP += lvl
		if st.HeroHP > st.HeroMaxHP {
			st.HeroHP = st.HeroMaxHP
		}
		tr.Tracef("%s desperation prayer heals hero for %d", card.Name(), lvl)
	}
	if has, _ := card.Has(AttrDReanimate); has {
		Reanimate(st, tr)
	}
	if has, lvl := card.Has(AttrDReincarnate); has {
		Reincarnate(st, lvl, tr)
	}
}

// routeToGraveOrResurrect implements the grave-route branch of step 4:
// Dirt/Resurrection may send the fresh copy to hand instead, falling back
// to the deck tail when the hand is already full (spec §4.6, §9). The rolls
// read the dying card, so a Dirt attribute attached by the rune counts too.
func routeToGraveOrResurrect(st *State, dying, fresh *Card, tr *Tracer) {
	resurrected := false
	if has, lvl := dying.Has(AttrResurrection); has && st.RNG.Chance(lvl) {
		resurrected = true
	}
	if !resurrected {
		if has, lvl := dying.Has(AttrDirt); has && st.RNG.Chance(lvl) {
			resurrected = true
		}
	}
	if resurrected {
		if st.Hand.Len() < MaxHandSize {
			st.Hand.PushBack(fresh)
			tr.Tracef("%s resurrects into hand", fresh.Name())
			return
		}
		st.Deck.PushBack(fresh)
		tr.Tracef("%s resurrection routed to deck (hand full)", fresh.Name())
		return
	}
	st.Grave.PushBack(fresh)
	tr.Tracef("%s goes to the grave", fresh.Name())
}
