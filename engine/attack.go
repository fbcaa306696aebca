package engine

// PhysicalAttack resolves the player's physical attack: field[0] strikes
// the demon. Pre-attack additive modifiers, demon mitigation, post-attack
// lifesteal/frenzy triggers, the demon's retaliation, and its Wicked
// Leech are all applied in the exact order of spec §4.7.
func PhysicalAttack(st *State, c *Card, tr *Tracer) {
	dmg := c.Atk
	baseAtk := c.CurBaseAtk

	if has, lvl := c.Has(AttrRevival); has {
		dmg += lvl
		baseAtk += lvl
	}

	if has, lvl := c.Has(AttrVendetta); has {
		dmg += st.Grave.Len() * lvl
	}
	if has, lvl := c.Has(AttrWarpath); has {
		dmg += baseAtk * lvl / 100
	}
	if has, lvl := c.Has(AttrLore); has {
		dmg += baseAtk * lvl / 100
	}
	if has, lvl := c.Has(AttrConcentrate); has {
		dmg += averagedProcBonus(st, baseAtk, lvl)
	}
	if has, lvl := c.Has(AttrFrostBite); has {
		dmg += averagedProcBonus(st, baseAtk, lvl)
	}

	dmg = ReducePhysDmg(&st.Demon, dmg)
	st.DmgDone += dmg
	st.Demon.HP -= dmg
	tr.Tracef("%s attacks the demon for %d (demon hp %d)", c.Name(), dmg, st.Demon.HP)

	if dmg <= 0 {
		return
	}

	if has, lvl := c.Has(AttrBloodsucker); has {
		c.Heal(dmg * lvl / 100)
	}
	if has, lvl := c.Has(AttrRedValley); has {
		c.Heal(dmg * lvl / 100)
	}
	if has, lvl := c.Has(AttrBloodthirsty); has {
		c.Atk += lvl
		c.CurBaseAtk += lvl
	}

	demonCounterattack(st, tr)

	if has, lvl := st.Demon.Has(AttrWickedLeech); has && c.IsAlive() {
		steal := c.CurBaseAtk * lvl / 100
		c.Atk -= steal
		c.CurBaseAtk -= steal
		if c.Atk < 0 {
			c.Atk = 0
		}
		if c.CurBaseAtk < 0 {
			c.CurBaseAtk = 0
		}
		st.Demon.Atk += steal
		st.Demon.CurBaseAtk += steal
	}
}

// averagedProcBonus models a 50/50 proc (Concentrate, Frost Bite) as a
// coin flip by default, or as its deterministic expectation when
// -avgconcentrate replaces randomness with averaging (spec §4.7 step 3).
func averagedProcBonus(st *State, baseAtk, level int) int {
	if st.Config.AvgConcentrate {
		return baseAtk * level / 200
	}
	if st.RNG.Chance(50) {
		return baseAtk * level / 100
	}
	return 0
}

// demonCounterattack makes the demon strike back after taking a hit:
// Retaliation hits the first two field cards, Counterattack only the
// first. Each hit can be shrugged off by Dexterity before DamageCard's
// own avoidance rolls run (spec §4.7 step 8).
func demonCounterattack(st *State, tr *Tracer) {
	hasRetaliation, _ := st.Demon.Has(AttrRetaliation)
	hasCounter, _ := st.Demon.Has(AttrCounterattack)
	if !hasRetaliation && !hasCounter {
		return
	}

	targets := 1
	if hasRetaliation {
		targets = 2
	}
	for i := 0; i < targets && i < st.Field.Len(); i++ {
		c := st.Field.At(i)
		if c == nil || !c.IsAlive() {
			continue
		}
		if hasDex, lvl := c.Has(AttrDexterity); hasDex && st.RNG.Chance(lvl) {
			tr.Tracef("%s evades the demon's counterattack", c.Name())
			continue
		}
		DamageCard(st, c, st.Demon.Atk, tr)
	}
}
