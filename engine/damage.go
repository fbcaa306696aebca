package engine

// ReducePhysDmg applies a card's physical mitigation stack: flat Parry +
// Stonewall reduction, then an Ice Shield and/or Arctic Freeze damage cap
// (spec §4.7 step 3, reused for the demon's own mitigation in the
// physical-attack path).
func ReducePhysDmg(c *Card, dmg int) int {
	if hasParry, lvl := c.Has(AttrParry); hasParry {
		dmg -= lvl
	}
	if hasStonewall, lvl := c.Has(AttrStonewall); hasStonewall {
		dmg -= lvl
	}
	if dmg < 0 {
		dmg = 0
	}
	if hasIce, lvl := c.Has(AttrIceShield); hasIce && dmg > lvl {
		dmg = lvl
	}
	if hasArctic, lvl := c.Has(AttrArcticFreeze); hasArctic && dmg > lvl {
		dmg = lvl
	}
	return dmg
}

// DamageCard resolves damage dealt to a player's field card: avoidance,
// mitigation, application, onDamage triggers, and death (spec §4.7).
func DamageCard(st *State, c *Card, dmg int, tr *Tracer) int {
	if hasNimble, lvl := c.Has(AttrNimbleSoul); hasNimble && st.RNG.Chance(lvl) {
		tr.Tracef("%s dodges (nimble soul)", c.Name())
		return 0
	}
	if hasDodge, lvl := c.Has(AttrDodge); hasDodge && st.RNG.Chance(lvl) {
		tr.Tracef("%s dodges", c.Name())
		return 0
	}

	dmg = ReducePhysDmg(c, dmg)
	if dmg <= 0 {
		return 0
	}

	lost := c.ApplyHPDamage(dmg)
	tr.Tracef("%s takes %d damage (hp %d/%d)", c.Name(), lost, c.HP, c.MaxHP)

	runOnDamageTriggers(st, c, lost, tr)

	if c.HP == 0 {
		Remove(st, c, true, tr)
		return lost
	}

	if hasLacerate, _ := st.Demon.Has(AttrLacerate); hasLacerate {
		if tagged, _ := c.Has(AttrLacerateBuff); !tagged {
			c.Attrs.Add(Attribute{Kind: AttrLacerateBuff})
		}
	}
	return lost
}

// runOnDamageTriggers fires every reactive attribute on c, in attribute-
// list order, after damage has been applied (spec §4.7 step 6).
func runOnDamageTriggers(st *State, c *Card, dmgTaken int, tr *Tracer) {
	n := c.Attrs.Len()
	for i := 0; i < n && i < c.Attrs.Len(); i++ {
		attr := c.Attrs.At(i)
		switch attr.Kind {
		case AttrCraze, AttrTsunami:
			c.Atk += attr.Level
			c.CurBaseAtk += attr.Level
		case AttrCounterattack, AttrRetaliation, AttrThunderShield, AttrFireForge:
			st.DmgDone += attr.Level
			st.Demon.HP -= attr.Level
			tr.Tracef("%s strikes back for %d", c.Name(), attr.Level)
		case AttrWickedLeech:
			steal := st.Demon.CurBaseAtk * attr.Level / 100
			c.Atk += steal
			c.CurBaseAtk += steal
			st.Demon.Atk -= steal
			st.Demon.CurBaseAtk -= steal
			if st.Demon.Atk < 0 {
				st.Demon.Atk = 0
			}
			if st.Demon.CurBaseAtk < 0 {
				st.Demon.CurBaseAtk = 0
			}
		}
	}
}

// DamagePlayer applies damage to the hero, letting every Guard-bearing
// field card absorb in left-to-right order before the remainder lands on
// hero hp (spec §4.7).
func DamagePlayer(st *State, dmg int, tr *Tracer) {
	if dmg <= 0 {
		return
	}
	for i := 0; i < st.Field.Len() && dmg > 0; i++ {
		c := st.Field.At(i)
		if c == nil || !c.IsAlive() {
			continue
		}
		hasGuard, _ := c.Has(AttrGuard)
		if !hasGuard {
			continue
		}
		absorbed := dmg
		if absorbed > c.HP {
			absorbed = c.HP
		}
		c.ApplyHPDamage(absorbed)
		dmg -= absorbed
		tr.Tracef("%s guards %d damage", c.Name(), absorbed)
		if c.HP == 0 {
			Remove(st, c, true, tr)
		}
	}
	if dmg > 0 {
		st.HeroHP -= dmg
		if st.HeroHP < 0 {
			st.HeroHP = 0
		}
		tr.Tracef("hero takes %d damage (hp %d/%d)", dmg, st.HeroHP, st.HeroMaxHP)
	}
}

// DamageUnavoidable applies damage directly to the hero, bypassing Guard
// (the round >= 51 escalating chip damage, spec §4.10).
func DamageUnavoidable(st *State, dmg int, tr *Tracer) {
	if dmg <= 0 {
		return
	}
	st.HeroHP -= dmg
	if st.HeroHP < 0 {
		st.HeroHP = 0
	}
	tr.Tracef("hero takes %d unavoidable damage (hp %d/%d)", dmg, st.HeroHP, st.HeroMaxHP)
}

// DamageDirect deals capped damage straight to a card's hp, bypassing
// Dodge and Parry (the demon's Snipe and Mana Corrupt — spec §4.11). Still
// triggers death handling.
func DamageDirect(st *State, c *Card, dmg int, tr *Tracer) int {
	if dmg <= 0 {
		return 0
	}
	lost := c.ApplyHPDamage(dmg)
	tr.Tracef("%s takes %d direct damage (hp %d/%d)", c.Name(), lost, c.HP, c.MaxHP)
	if c.HP == 0 {
		Remove(st, c, true, tr)
	}
	return lost
}
