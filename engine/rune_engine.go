package engine

// UpdateRunes runs the per-round rune deactivation sweep followed by the
// activation sweep (spec §4.9), before card turns are processed.
func UpdateRunes(st *State, tr *Tracer) {
	for i := range st.Runes {
		r := &st.Runes[i]
		if r.Template == nil || !r.ActiveThisRound {
			continue
		}
		r.ActiveThisRound = false
		kind, ok := runeNameToKind[r.Template.Name]
		if !ok {
			continue
		}
		deactivateRune(st, r, kind)
		tr.Tracef("rune %s deactivates", r.Template.Name)
	}

	for i := range st.Runes {
		r := &st.Runes[i]
		if r.Template == nil || r.ChargesUsed >= r.Template.MaxCharges {
			continue
		}
		kind, ok := runeNameToKind[r.Template.Name]
		if !ok {
			continue
		}
		if !kind.gate(st) {
			continue
		}
		activateRune(st, r, kind, tr)
		r.ChargesUsed++
		if !kind.isOneShot() {
			r.ActiveThisRound = true
		}
		tr.Tracef("rune %s activates (charge %d/%d)", r.Template.Name, r.ChargesUsed, r.Template.MaxCharges)
	}
}

// deactivateRune strips a rune's attribute from every field card. Spring
// Breeze additionally unwinds the hp/maxHp bump it granted (spec §4.9).
func deactivateRune(st *State, r *Rune, kind runeKind) {
	attr := r.Template.Attr
	level := r.Template.Level
	st.Field.ForEachAlive(func(_ int, c *Card) {
		c.Attrs.Remove(attr, -1)
	})
	if kind == RuneSpringBreeze {
		st.Field.ForEachAlive(func(_ int, c *Card) {
			if tagged, _ := c.Has(AttrSpringBreezeTag); tagged {
				c.Attrs.Remove(AttrSpringBreezeTag, -1)
				c.MaxHP -= level
				if c.HP > c.MaxHP {
					c.HP = c.MaxHP
				}
				if c.MaxHP < 0 {
					c.MaxHP = 0
				}
			}
		})
	}
}

// activateRune applies a rune's effect for a round in which its gate holds.
func activateRune(st *State, r *Rune, kind runeKind, tr *Tracer) {
	attr := r.Template.Attr
	level := r.Template.Level

	switch kind {
	case RuneClearSpring:
		RegenerateField(st, level)
	case RuneLeaf:
		st.DmgDone += level
		st.Demon.HP -= level
	case RuneSpringBreeze:
		st.Field.ForEachAlive(func(_ int, c *Card) {
			c.Attrs.Add(Attribute{Kind: attr, Level: level})
			c.Attrs.Add(Attribute{Kind: AttrSpringBreezeTag, Level: level})
			c.HP += level
			c.MaxHP += level
		})
	default:
		// Plain "attach" runes: place the attribute on every field card;
		// the effect manifests in the per-card handler that checks for it
		// (e.g. Fire Forge in the onDamage list, spec §4.7).
		st.Field.ForEachAlive(func(_ int, c *Card) {
			c.Attrs.Add(Attribute{Kind: attr, Level: level})
		})
	}
	_ = tr
}
