package engine

// MinAttackRound is the first round field[0] may throw a physical attack,
// and the first round Snipe/Mana Corrupt/Flying Stone contribute damage
// (spec §4.8, §4.10 first-round offsets).
const MinAttackRound = 6

// PlayerCardTurn runs the per-card, per-player-round script for the field
// card at idx (spec §4.8).
func PlayerCardTurn(st *State, idx int, tr *Tracer) {
	c := st.Field.At(idx)
	if c == nil || !c.IsAlive() {
		return
	}
	tr.Bannerf("-- %s's turn (field slot %d, hp %d/%d) --", c.Name(), idx, c.HP, c.MaxHP)

	if has, _ := c.Has(AttrReanimSickness); has {
		c.Attrs.Remove(AttrReanimSickness, -1)
		return
	}

	trapped := false
	if has, _ := c.Has(AttrTrapBuff); has {
		c.Attrs.Remove(AttrTrapBuff, -1)
		trapped = true
	}

	if !trapped {
		runOwnAbilities(st, c, tr)
		if !c.IsAlive() {
			return
		}

		if idx == 0 && c.HP > 0 && st.Round >= MinAttackRound {
			PhysicalAttack(st, c, tr)
		}
		if !c.IsAlive() {
			return
		}
	}

	runPostAttackDamage(st, c, tr)
	if !c.IsAlive() {
		return
	}

	if !trapped {
		runHealingStatuses(st, c, tr)
	}
}

// runOwnAbilities dispatches each of a card's own per-turn handlers, in
// attribute-list order (spec §4.8).
func runOwnAbilities(st *State, c *Card, tr *Tracer) {
	n := c.Attrs.Len()
	for i := 0; i < n && i < c.Attrs.Len(); i++ {
		attr := c.Attrs.At(i)
		switch attr.Kind {
		case AttrAdvancedStrike:
			AdvancedStrike(st, tr)
		case AttrReincarnate:
			Reincarnate(st, attr.Level, tr)
		case AttrReanimate:
			Reanimate(st, tr)
		case AttrRegenerate:
			RegenerateField(st, attr.Level)
		case AttrHealing:
			Healing(st, attr.Level, tr)
		case AttrPrayer:
			PrayHero(st, attr.Level)
		case AttrSnipe:
			if st.Round >= MinAttackRound {
				st.DmgDone += attr.Level
				st.Demon.HP -= attr.Level
			}
		case AttrManaCorrupt:
			if st.Round >= MinAttackRound {
				st.DmgDone += 3 * attr.Level
				st.Demon.HP -= 3 * attr.Level
			}
		case AttrFlyingStone:
			if st.Round >= MinAttackRound {
				st.DmgDone += attr.Level
				st.Demon.HP -= attr.Level
			}
		case AttrBite:
			// Demon is immune to Bite; no-op.
		case AttrMania:
			Mania(st, c, attr.Level, tr)
		}
		if !c.IsAlive() {
			return
		}
	}
}

// runPostAttackDamage applies Fire God and Toxic Clouds self-damage after
// the attack step (spec §4.8).
func runPostAttackDamage(st *State, c *Card, tr *Tracer) {
	if has, lvl := c.Has(AttrFireGod); has {
		c.ApplyHPDamage(lvl)
		tr.Tracef("%s burns for %d (fire god)", c.Name(), lvl)
		if c.HP == 0 {
			Remove(st, c, true, tr)
			return
		}
	}
	if has, lvl := c.Has(AttrToxicClouds); has {
		c.ApplyHPDamage(lvl)
		c.Attrs.Remove(AttrToxicClouds, -1)
		tr.Tracef("%s chokes for %d (toxic clouds)", c.Name(), lvl)
		if c.HP == 0 {
			Remove(st, c, true, tr)
		}
	}
}

// runHealingStatuses applies Rejuvenate, Blood Stone (the card ability), and
// the Blood Stone rune's attached self-healing, skipping lacerated cards
// (spec §4.8, §4.9).
func runHealingStatuses(st *State, c *Card, tr *Tracer) {
	if has, _ := c.Has(AttrLacerateBuff); has {
		return
	}
	if has, lvl := c.Has(AttrRejuvenate); has {
		c.Heal(lvl)
	}
	if has, lvl := c.Has(AttrBloodStone); has {
		c.Heal(lvl)
	}
	if has, lvl := c.Has(AttrBloodStoneRune); has {
		healed := c.Heal(lvl)
		tr.Tracef("%s heals %d (blood stone rune)", c.Name(), healed)
	}
	_ = st
}

// StripBackstabBuffs removes the BACKSTAB_BUFF marker from every field
// card, unwinding the atk bonus it granted on play (spec §4.8, end of
// round).
func StripBackstabBuffs(st *State) {
	for i := 0; i < st.Field.Len(); i++ {
		c := st.Field.At(i)
		if c == nil {
			continue
		}
		for {
			has, lvl := c.Has(AttrBackstabBuff)
			if !has {
				break
			}
			c.Attrs.Remove(AttrBackstabBuff, lvl)
			c.Atk -= lvl
			if c.Atk < 0 {
				c.Atk = 0
			}
		}
	}
}
