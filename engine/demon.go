package engine

// TrapChance is the per-target success rate of the demon's Trap ability
// (spec §4.11).
const TrapChance = 65

// DemonScript runs the demon's per-round abilities in attribute order,
// stopping early if the hero dies, then its physical attack, then the
// end-of-round field sweep (spec §4.11).
func DemonScript(st *State, tr *Tracer) {
	d := &st.Demon
	tr.Bannerf("-- %s's turn (hp %d/%d) --", d.Name(), d.HP, d.MaxHP)
	n := d.Attrs.Len()
	for i := 0; i < n && i < d.Attrs.Len(); i++ {
		attr := d.Attrs.At(i)
		switch attr.Kind {
		case AttrCurse:
			DamagePlayer(st, attr.Level, tr)
		case AttrDamnation:
			DamagePlayer(st, attr.Level*liveFieldCount(st), tr)
		case AttrExile:
			demonExile(st, tr)
		case AttrSnipe:
			demonSnipe(st, attr.Level, tr)
		case AttrManaCorrupt:
			demonManaCorrupt(st, attr.Level, tr)
		case AttrDestroy:
			demonDestroy(st, tr)
		case AttrFireGod:
			demonFireGod(st)
		case AttrToxicClouds:
			demonToxicClouds(st, attr.Level, tr)
		case AttrTrap:
			demonTrap(st, attr.Level, tr)
		}
		if st.HeroHP <= 0 {
			return
		}
	}

	if st.HeroHP > 0 {
		demonPhysicalAttack(st, tr)
	}

	st.Field.RemoveDeadCards()
}

func liveFieldCount(st *State) int {
	n := 0
	st.Field.ForEachAlive(func(_ int, _ *Card) { n++ })
	return n
}

func demonExile(st *State, tr *Tracer) {
	if st.Field.Len() == 0 {
		return
	}
	target := st.Field.At(0)
	if target == nil || !target.IsAlive() {
		return
	}
	if has, _ := target.Has(AttrResistance); has {
		return
	}
	if has, _ := target.Has(AttrImmunity); has {
		return
	}
	tr.Tracef("demon exiles %s", target.Name())
	Remove(st, target, false, tr)
}

func demonSnipe(st *State, level int, tr *Tracer) {
	target, _ := FindLowestHpCard(&st.Field)
	if target == nil {
		return
	}
	tr.Tracef("demon's blade snipes %s", target.Name())
	DamageDirect(st, target, level, tr)
}

func demonManaCorrupt(st *State, level int, tr *Tracer) {
	target := randomLiveFieldCard(st)
	if target == nil {
		return
	}
	hasReflect, _ := target.Has(AttrReflection)
	hasImmune, _ := target.Has(AttrImmunity)
	if hasReflect || hasImmune {
		level *= 3
	}
	tr.Tracef("demon corrupts %s's mana for %d", target.Name(), level)
	DamageDirect(st, target, level, tr)
}

func demonDestroy(st *State, tr *Tracer) {
	target := randomLiveFieldCard(st)
	if target == nil {
		return
	}
	if has, _ := target.Has(AttrResistance); has {
		return
	}
	if has, _ := target.Has(AttrImmunity); has {
		return
	}
	tr.Tracef("demon destroys %s", target.Name())
	target.HP = 0
	Remove(st, target, true, tr)
}

func demonFireGod(st *State) {
	st.Field.ForEachAlive(func(_ int, c *Card) {
		if has, _ := c.Has(AttrImmunity); has {
			return
		}
		if has, _ := c.Has(AttrFireGod); has {
			return
		}
		c.Attrs.Add(Attribute{Kind: AttrFireGod, Level: 1})
	})
}

func demonToxicClouds(st *State, level int, tr *Tracer) {
	st.Field.ForEachAlive(func(_ int, c *Card) {
		if has, _ := c.Has(AttrImmunity); has {
			return
		}
		c.ApplyHPDamage(level)
		if c.HP == 0 {
			Remove(st, c, true, tr)
			return
		}
		if has, _ := c.Has(AttrToxicClouds); !has {
			c.Attrs.Add(Attribute{Kind: AttrToxicClouds, Level: level})
		}
	})
}

func demonTrap(st *State, count int, tr *Tracer) {
	live := make([]*Card, 0, st.Field.Len())
	st.Field.ForEachAlive(func(_ int, c *Card) { live = append(live, c) })
	for i := 0; i < count && len(live) > 0; i++ {
		target := live[st.RNG.Rnd(len(live))]
		if has, _ := target.Has(AttrImmunity); has {
			continue
		}
		if has, _ := target.Has(AttrEvasion); has {
			continue
		}
		if st.RNG.Chance(TrapChance) {
			target.Attrs.Add(Attribute{Kind: AttrTrapBuff})
			tr.Tracef("%s is trapped", target.Name())
		}
	}
}

func randomLiveFieldCard(st *State) *Card {
	live := make([]*Card, 0, st.Field.Len())
	st.Field.ForEachAlive(func(_ int, c *Card) { live = append(live, c) })
	if len(live) == 0 {
		return nil
	}
	return live[st.RNG.Rnd(len(live))]
}

// demonPhysicalAttack resolves the demon's attack on field[0] (or the
// hero directly, if the field is empty), including Hot Chase's attack
// bonus and Chain Attack splash damage (spec §4.11).
func demonPhysicalAttack(st *State, tr *Tracer) {
	d := &st.Demon
	atk := d.Atk
	if has, lvl := d.Has(AttrHotChase); has {
		atk += lvl * st.Grave.Len()
	}

	var target *Card
	if st.Field.Len() > 0 {
		t := st.Field.At(0)
		if t != nil && t.IsAlive() {
			target = t
		}
	}

	if target == nil {
		DamagePlayer(st, atk, tr)
		return
	}

	hit := DamageCard(st, target, atk, tr)
	tr.Tracef("demon attacks %s for %d", target.Name(), hit)

	if hit <= 0 {
		return
	}
	if has, lvl := d.Has(AttrChainAttack); has {
		for i := 0; i < st.Field.Len(); i++ {
			c := st.Field.At(i)
			if c == nil || c == target || !c.IsAlive() {
				continue
			}
			if c.Template == nil || target.Template == nil || c.Template.Name != target.Template.Name {
				continue
			}
			DamageCard(st, c, hit*lvl/100, tr)
		}
	}
}
