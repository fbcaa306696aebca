package engine

// buffInfo records, for each of the eight class-buff kinds, which family it
// belongs to and whether it modifies Atk or Hp (spec §4.4).
type buffInfo struct {
	family *classFamily
	isAtk  bool
}

var buffKindInfo map[AttrKind]buffInfo

func init() {
	buffKindInfo = make(map[AttrKind]buffInfo, 8)
	for i := range classFamilies {
		f := &classFamilies[i]
		buffKindInfo[f.atkBuff] = buffInfo{family: f, isAtk: true}
		buffKindInfo[f.hpBuff] = buffInfo{family: f, isAtk: false}
	}
}

// addBuff attaches a single (buffKind, level) attribute to target and
// applies its stat effect. Atk buffs raise both Atk and CurBaseAtk; Hp
// buffs raise both HP and MaxHP (spec §4.4).
func addBuff(target *Card, buffKind AttrKind, level int) {
	target.Attrs.Add(Attribute{Kind: buffKind, Level: level})
	info := buffKindInfo[buffKind]
	if info.isAtk {
		target.Atk += level
		target.CurBaseAtk += level
	} else {
		target.MaxHP += level
		target.HP += level
	}
}

// withdrawBuff removes exactly one (buffKind, level) attribute (never the
// whole kind) and reverses its stat effect, clamped so unrelated buffs
// from other live sources survive untouched (spec §4.4).
func withdrawBuff(target *Card, buffKind AttrKind, level int) {
	target.Attrs.Remove(buffKind, level)
	info := buffKindInfo[buffKind]
	if info.isAtk {
		target.Atk -= level
		if target.Atk < 0 {
			target.Atk = 0
		}
		target.CurBaseAtk -= level
		if target.CurBaseAtk < 0 {
			target.CurBaseAtk = 0
		}
	} else {
		target.MaxHP -= level
		if target.HP > target.MaxHP {
			target.HP = target.MaxHP
		}
	}
}

// ApplyIncomingBuffs gives the newly played card buffs from every matching
// resident already on the field (spec §4.5 step 7).
func ApplyIncomingBuffs(field *CardSet, newCard *Card) {
	for i := 0; i < field.Len(); i++ {
		resident := field.At(i)
		if resident == nil || resident == newCard || !resident.IsAlive() {
			continue
		}
		for fi := range classFamilies {
			f := &classFamilies[fi]
			if hasTag, _ := newCard.Has(f.tag); !hasTag {
				continue
			}
			if has, level := resident.Has(f.atkSrc); has {
				addBuff(newCard, f.atkBuff, level)
			}
			if has, level := resident.Has(f.hpSrc); has {
				addBuff(newCard, f.hpBuff, level)
			}
		}
	}
}

// ApplyOutgoingBuffs has the newly played card buff every matching resident
// already on the field (spec §4.5 step 8).
func ApplyOutgoingBuffs(field *CardSet, newCard *Card) {
	for fi := range classFamilies {
		f := &classFamilies[fi]
		hasAtk, atkLevel := newCard.Has(f.atkSrc)
		hasHP, hpLevel := newCard.Has(f.hpSrc)
		if !hasAtk && !hasHP {
			continue
		}
		for i := 0; i < field.Len(); i++ {
			resident := field.At(i)
			if resident == nil || resident == newCard || !resident.IsAlive() {
				continue
			}
			if hasTag, _ := resident.Has(f.tag); !hasTag {
				continue
			}
			if hasAtk {
				addBuff(resident, f.atkBuff, atkLevel)
			}
			if hasHP {
				addBuff(resident, f.hpBuff, hpLevel)
			}
		}
	}
}

// WithdrawOutgoingBuffs removes every buff that card's class-buff-source
// abilities placed on other field cards, used when card leaves the field
// by death or exile (spec §4.6 step 2).
func WithdrawOutgoingBuffs(field *CardSet, card *Card) {
	for fi := range classFamilies {
		f := &classFamilies[fi]
		hasAtk, atkLevel := card.Has(f.atkSrc)
		hasHP, hpLevel := card.Has(f.hpSrc)
		if !hasAtk && !hasHP {
			continue
		}
		for i := 0; i < field.Len(); i++ {
			target := field.At(i)
			if target == nil || target == card {
				continue
			}
			if hasTag, _ := target.Has(f.tag); !hasTag {
				continue
			}
			if hasAtk {
				withdrawBuff(target, f.atkBuff, atkLevel)
			}
			if hasHP {
				withdrawBuff(target, f.hpBuff, hpLevel)
			}
		}
	}
}
