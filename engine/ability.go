package engine

// Reincarnate moves up to n of the oldest (front-of-grave) cards to the
// deck tail. Empty grave is a no-op, not an error (spec §4.7, §7).
func Reincarnate(st *State, n int, tr *Tracer) {
	for i := 0; i < n && st.Grave.Len() > 0; i++ {
		c := st.Grave.RemoveAt(0)
		st.Deck.PushBack(c)
		tr.Tracef("%s reincarnates to the deck", c.Name())
	}
}

// Reanimate picks uniformly among grave cards lacking Reanimate,
// D_Reanimate, and Immunity, removes it from the grave, pushes it onto
// the field with reanimation sickness, and fires its onPlay sequence with
// CurTiming forced to 0 (spec §4.7).
func Reanimate(st *State, tr *Tracer) bool {
	eligible := make([]int, 0, st.Grave.Len())
	for i := 0; i < st.Grave.Len(); i++ {
		c := st.Grave.At(i)
		if c == nil {
			continue
		}
		if has, _ := c.Has(AttrReanimate); has {
			continue
		}
		if has, _ := c.Has(AttrDReanimate); has {
			continue
		}
		if has, _ := c.Has(AttrImmunity); has {
			continue
		}
		eligible = append(eligible, i)
	}
	if len(eligible) == 0 {
		return false
	}
	idx := eligible[st.RNG.Rnd(len(eligible))]
	c := st.Grave.RemoveAt(idx)
	c.CurTiming = 0
	c.Attrs.Add(Attribute{Kind: AttrReanimSickness})
	if st.Field.Len() >= CardSetCapacity {
		// Misconfiguration: more live cards than the field can ever hold.
		st.Grave.PushBack(c)
		return false
	}
	st.Field.PushBack(c)
	tr.Tracef("%s reanimates onto the field", c.Name())
	OnPlay(st, c, tr)
	return true
}

// AdvancedStrike decrements the curTiming of the hand card with the
// highest curTiming, if any (spec §4.7).
func AdvancedStrike(st *State, tr *Tracer) {
	var best *Card
	for i := 0; i < st.Hand.Len(); i++ {
		c := st.Hand.At(i)
		if c == nil {
			continue
		}
		if c.CurTiming <= 0 {
			continue
		}
		if best == nil || c.CurTiming > best.CurTiming {
			best = c
		}
	}
	if best == nil {
		return
	}
	best.CurTiming--
	tr.Tracef("advanced strike accelerates %s (timing %d)", best.Name(), best.CurTiming)
}

// RegenerateField heals every alive field card by level, capped at its own
// maxHP, skipping immune or lacerated cards (spec §4.5 step 4, reused by
// the Clear Spring rune).
func RegenerateField(st *State, level int) {
	st.Field.ForEachAlive(func(_ int, c *Card) {
		if has, _ := c.Has(AttrImmunity); has {
			return
		}
		if has, _ := c.Has(AttrLacerateBuff); has {
			return
		}
		c.Heal(level)
	})
}

// PrayHero heals the hero by level, capped at maxHP (spec §4.5 step 3).
func PrayHero(st *State, level int) {
	st.HeroHP += level
	if st.HeroHP > st.HeroMaxHP {
		st.HeroHP = st.HeroMaxHP
	}
}

// Healing heals the single most-damaged field card, ties broken randomly
// (spec §4.8).
func Healing(st *State, level int, tr *Tracer) {
	var candidates []*Card
	maxMissing := -1
	st.Field.ForEachAlive(func(_ int, c *Card) {
		missing := c.MaxHP - c.HP
		if missing <= 0 {
			return
		}
		if missing > maxMissing {
			maxMissing = missing
			candidates = candidates[:0]
			candidates = append(candidates, c)
		} else if missing == maxMissing {
			candidates = append(candidates, c)
		}
	})
	if len(candidates) == 0 {
		return
	}
	target := candidates[st.RNG.Rnd(len(candidates))]
	target.Heal(level)
	tr.Tracef("%s is healed for %d", target.Name(), level)
}

// FindLowestHpCard returns the lowest-hp live field card, ties broken by
// always preferring the rightmost (highest-index) candidate. The original
// author flagged this as possibly unintentional; behavior is preserved
// verbatim as a policy (spec §9).
func FindLowestHpCard(field *CardSet) (*Card, int) {
	best := -1
	bestHP := int(^uint(0) >> 1)
	for i := 0; i < field.Len(); i++ {
		c := field.At(i)
		if c == nil || !c.IsAlive() {
			continue
		}
		if c.HP <= bestHP {
			bestHP = c.HP
			best = i
		}
	}
	if best == -1 {
		return nil, -1
	}
	return field.At(best), best
}

// Mania applies hp -= level, atk += level, curBaseAtk += level to card c,
// which may kill it (spec §4.7).
func Mania(st *State, c *Card, level int, tr *Tracer) {
	c.ApplyHPDamage(level)
	c.Atk += level
	c.CurBaseAtk += level
	tr.Tracef("%s manias (hp %d/%d, atk %d)", c.Name(), c.HP, c.MaxHP, c.Atk)
	if c.HP == 0 {
		Remove(st, c, true, tr)
	}
}
