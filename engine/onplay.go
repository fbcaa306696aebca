package engine

// OnPlay fires a card's on-play sequence after it enters the field, in
// the exact order spec §4.5 requires: paying costs (Obstinacy, Backstab),
// self/field healing (Prayer, Regenerate), battlefield reshaping
// (Reincarnate, Sacrifice), and finally class-buff exchange with the rest
// of the field. Deviation from this order is observable.
func OnPlay(st *State, c *Card, tr *Tracer) {
	if has, lvl := c.Has(AttrObstinacy); has {
		st.HeroHP -= lvl
		if st.HeroHP < 0 {
			st.HeroHP = 0
		}
		tr.Tracef("%s costs the hero %d hp (obstinacy)", c.Name(), lvl)
	}

	if has, lvl := c.Has(AttrBackstab); has {
		c.Atk += lvl
		c.Attrs.Add(Attribute{Kind: AttrBackstabBuff, Level: lvl})
		tr.Tracef("%s backstabs for +%d atk", c.Name(), lvl)
	}

	if has, lvl := c.Has(AttrQSPrayer); has {
		PrayHero(st, lvl)
		tr.Tracef("%s prays, healing hero for %d", c.Name(), lvl)
	}

	if has, lvl := c.Has(AttrQSRegenerate); has {
		RegenerateField(st, lvl)
		tr.Tracef("%s regenerates the field for %d", c.Name(), lvl)
	}

	if has, lvl := c.Has(AttrQSReincarnate); has {
		Reincarnate(st, lvl, tr)
	}

	if has, lvl := c.Has(AttrSacrifice); has {
		resolveSacrifice(st, c, lvl, tr)
	}

	ApplyIncomingBuffs(&st.Field, c)
	ApplyOutgoingBuffs(&st.Field, c)
}

// resolveSacrifice picks a uniformly random other field card; an immune
// target takes no effect, otherwise it is removed (to the grave,
// triggering death reactions) and c grows by pct percent of its own atk,
// base atk and hp (spec §4.5 step 6).
func resolveSacrifice(st *State, c *Card, pct int, tr *Tracer) {
	candidates := make([]*Card, 0, st.Field.Len())
	st.Field.ForEachAlive(func(_ int, other *Card) {
		if other != c {
			candidates = append(candidates, other)
		}
	})
	if len(candidates) == 0 {
		return
	}
	target := candidates[st.RNG.Rnd(len(candidates))]

	if has, _ := target.Has(AttrImmunity); has {
		tr.Tracef("%s cannot sacrifice immune %s", c.Name(), target.Name())
		return
	}

	c.Atk += c.Atk * pct / 100
	c.CurBaseAtk += c.CurBaseAtk * pct / 100
	c.MaxHP += c.HP * pct / 100
	c.HP += c.HP * pct / 100

	tr.Tracef("%s sacrifices %s", c.Name(), target.Name())
	Remove(st, target, true, tr)
}
