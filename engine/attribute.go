package engine

import "fmt"

// AttrKind is a closed enumeration of ability, buff, rune, and internal
// marker tags (spec §3, ~80 kinds). Level's meaning is kind-specific:
// percent, flat amount, or unused (ignored for pure markers).
type AttrKind uint8

const (
	AttrNone AttrKind = iota

	// Internal markers, never present in a card template.
	AttrDead
	AttrReanimSickness
	AttrTrapBuff
	AttrBackstabBuff
	AttrLacerateBuff

	// Class tags.
	AttrTundra
	AttrForest
	AttrMountain
	AttrSwamp

	// Class buff-source abilities (own side of the family).
	AttrTundraAtk
	AttrTundraHp
	AttrForestAtk
	AttrForestHp
	AttrMountainAtk
	AttrMountainHp
	AttrSwampAtk
	AttrSwampHp

	// Class buff kinds (distinct-kind discipline, spec §9).
	AttrTundraAtkBuff
	AttrTundraHpBuff
	AttrForestAtkBuff
	AttrForestHpBuff
	AttrMountainAtkBuff
	AttrMountainHpBuff
	AttrSwampAtkBuff
	AttrSwampHpBuff

	// Avoidance / mitigation.
	AttrDodge
	AttrNimbleSoul
	AttrParry
	AttrStonewall
	AttrIceShield
	AttrArcticFreeze
	AttrDexterity
	AttrResistance
	AttrEvasion
	AttrImmunity
	AttrReflection

	// onDamage reactions.
	AttrCraze
	AttrTsunami
	AttrCounterattack
	AttrRetaliation
	AttrThunderShield
	AttrFireForge
	AttrWickedLeech

	// Guard / hero protection.
	AttrGuard
	AttrLacerate

	// Attack modifiers.
	AttrRevival
	AttrVendetta
	AttrWarpath
	AttrLore
	AttrConcentrate
	AttrFrostBite
	AttrBloodsucker
	AttrRedValley
	AttrBloodthirsty
	AttrHotChase
	AttrChainAttack

	// Per-turn player abilities.
	AttrAdvancedStrike
	AttrReincarnate
	AttrReanimate
	AttrRegenerate
	AttrHealing
	AttrPrayer
	AttrSnipe
	AttrManaCorrupt
	AttrFlyingStone
	AttrBite
	AttrMania
	AttrRejuvenate
	AttrBloodStone

	// Post-attack self-damage.
	AttrFireGod
	AttrToxicClouds

	// On-play abilities.
	AttrObstinacy
	AttrBackstab
	AttrQSPrayer
	AttrQSRegenerate
	AttrQSReincarnate
	AttrSacrifice

	// Desperation (on-death) abilities.
	AttrDPrayer
	AttrDReanimate
	AttrDReincarnate

	// Grave/deck routing.
	AttrResurrection
	AttrDirt

	// Demon-only script abilities.
	AttrCurse
	AttrDamnation
	AttrExile
	AttrDestroy
	AttrTrap

	// Rune tags shared with their manifesting ability kind.
	AttrBloodStoneRune
	AttrClearSpring
	AttrLeaf
	AttrSpringBreeze
	AttrSpringBreezeTag

	attrKindCount
)

var attrKindNames = [attrKindCount]string{
	AttrNone:            "NONE",
	AttrDead:            "DEAD",
	AttrReanimSickness:  "REANIM_SICKNESS",
	AttrTrapBuff:        "TRAP_BUFF",
	AttrBackstabBuff:    "BACKSTAB_BUFF",
	AttrLacerateBuff:    "LACERATE_BUFF",
	AttrTundra:          "TUNDRA",
	AttrForest:          "FOREST",
	AttrMountain:        "MOUNTAIN",
	AttrSwamp:           "SWAMP",
	AttrTundraAtk:       "TUNDRA_ATK",
	AttrTundraHp:        "TUNDRA_HP",
	AttrForestAtk:       "FOREST_ATK",
	AttrForestHp:        "FOREST_HP",
	AttrMountainAtk:     "MOUNTAIN_ATK",
	AttrMountainHp:      "MOUNTAIN_HP",
	AttrSwampAtk:        "SWAMP_ATK",
	AttrSwampHp:         "SWAMP_HP",
	AttrTundraAtkBuff:   "TUNDRA_ATK_BUFF",
	AttrTundraHpBuff:    "TUNDRA_HP_BUFF",
	AttrForestAtkBuff:   "FOREST_ATK_BUFF",
	AttrForestHpBuff:    "FOREST_HP_BUFF",
	AttrMountainAtkBuff: "MOUNTAIN_ATK_BUFF",
	AttrMountainHpBuff:  "MOUNTAIN_HP_BUFF",
	AttrSwampAtkBuff:    "SWAMP_ATK_BUFF",
	AttrSwampHpBuff:     "SWAMP_HP_BUFF",
	AttrDodge:           "DODGE",
	AttrNimbleSoul:      "NIMBLE_SOUL",
	AttrParry:           "PARRY",
	AttrStonewall:       "STONEWALL",
	AttrIceShield:       "ICE_SHIELD",
	AttrArcticFreeze:    "ARCTIC_FREEZE",
	AttrDexterity:       "DEXTERITY",
	AttrResistance:      "RESISTANCE",
	AttrEvasion:         "EVASION",
	AttrImmunity:        "IMMUNITY",
	AttrReflection:      "REFLECTION",
	AttrCraze:           "CRAZE",
	AttrTsunami:         "TSUNAMI",
	AttrCounterattack:   "COUNTERATTACK",
	AttrRetaliation:     "RETALIATION",
	AttrThunderShield:   "THUNDER_SHIELD",
	AttrFireForge:       "FIRE_FORGE",
	AttrWickedLeech:     "WICKED_LEECH",
	AttrGuard:           "GUARD",
	AttrLacerate:        "LACERATE",
	AttrRevival:         "REVIVAL",
	AttrVendetta:        "VENDETTA",
	AttrWarpath:         "WARPATH",
	AttrLore:            "LORE",
	AttrConcentrate:     "CONCENTRATE",
	AttrFrostBite:       "FROST_BITE",
	AttrBloodsucker:     "BLOODSUCKER",
	AttrRedValley:       "RED_VALLEY",
	AttrBloodthirsty:    "BLOODTHIRSTY",
	AttrHotChase:        "HOT_CHASE",
	AttrChainAttack:     "CHAIN_ATTACK",
	AttrAdvancedStrike:  "ADVANCED_STRIKE",
	AttrReincarnate:     "REINCARNATE",
	AttrReanimate:       "REANIMATE",
	AttrRegenerate:      "REGENERATE",
	AttrHealing:         "HEALING",
	AttrPrayer:          "PRAYER",
	AttrSnipe:           "SNIPE",
	AttrManaCorrupt:     "MANA_CORRUPT",
	AttrFlyingStone:     "FLYING_STONE",
	AttrBite:            "BITE",
	AttrMania:           "MANIA",
	AttrRejuvenate:      "REJUVENATE",
	AttrBloodStone:      "BLOOD_STONE",
	AttrFireGod:         "FIRE_GOD",
	AttrToxicClouds:     "TOXIC_CLOUDS",
	AttrObstinacy:       "OBSTINACY",
	AttrBackstab:        "BACKSTAB",
	AttrQSPrayer:        "QS_PRAYER",
	AttrQSRegenerate:    "QS_REGENERATE",
	AttrQSReincarnate:   "QS_REINCARNATE",
	AttrSacrifice:       "SACRIFICE",
	AttrDPrayer:         "D_PRAYER",
	AttrDReanimate:      "D_REANIMATE",
	AttrDReincarnate:    "D_REINCARNATE",
	AttrResurrection:    "RESURRECTION",
	AttrDirt:            "DIRT",
	AttrCurse:           "CURSE",
	AttrDamnation:       "DAMNATION",
	AttrExile:           "EXILE",
	AttrDestroy:         "DESTROY",
	AttrTrap:            "TRAP",
	AttrBloodStoneRune:  "BLOOD_STONE_RUNE",
	AttrClearSpring:     "CLEAR_SPRING",
	AttrLeaf:            "LEAF",
	AttrSpringBreeze:    "SPRING_BREEZE",
	AttrSpringBreezeTag: "SPRING_BREEZE_TAG",
}

func (k AttrKind) String() string {
	if int(k) < len(attrKindNames) && attrKindNames[k] != "" {
		return attrKindNames[k]
	}
	return fmt.Sprintf("AttrKind(%d)", uint8(k))
}

// abilityByName is the case-insensitive closed vocabulary used by the
// cards-file parser (catalog package). Kept here, next to the enum it
// mirrors, so the two can never drift apart.
var abilityByName = map[string]AttrKind{}

func init() {
	for k, name := range attrKindNames {
		if name != "" {
			abilityByName[name] = AttrKind(k)
		}
	}
}

// AbilityKindByName looks up a catalog ability token (case already
// normalized to upper by the caller). Returns AttrNone, false if unknown.
func AbilityKindByName(name string) (AttrKind, bool) {
	k, ok := abilityByName[name]
	return k, ok
}

// Attribute is an (kind, level) pair attached to a card instance.
type Attribute struct {
	Kind  AttrKind
	Level int
}

// MaxAttributes is the per-card attribute capacity (spec §3).
const MaxAttributes = 40

// Attributes is the typed-attribute container on a card: a fixed-capacity,
// order-preserving list. Order matters — onDamage and per-turn handlers
// iterate it in attribute-list order (spec §4.7, §4.8).
type Attributes struct {
	items [MaxAttributes]Attribute
	n     int
}

// Len reports the number of attached attributes.
func (a *Attributes) Len() int { return a.n }

// At returns the attribute at position i.
func (a *Attributes) At(i int) Attribute { return a.items[i] }

// Has returns true and the level of the first occurrence of kind.
func (a *Attributes) Has(kind AttrKind) (bool, int) {
	for i := 0; i < a.n; i++ {
		if a.items[i].Kind == kind {
			return true, a.items[i].Level
		}
	}
	return false, 0
}

// CountWithLevel returns the number of attributes matching (kind, level).
func (a *Attributes) CountWithLevel(kind AttrKind, level int) int {
	c := 0
	for i := 0; i < a.n; i++ {
		if a.items[i].Kind == kind && a.items[i].Level == level {
			c++
		}
	}
	return c
}

// Add appends an attribute. Fails fast on capacity breach: callers at the
// catalog boundary (card templates) must surface this as a parse error;
// callers inside the engine (buffs, markers) treat it as an invariant
// violation and panic, since exceeding 40 live attributes mid-trial means
// the simulated deck/ability combination is misconfigured, not a normal
// game event (spec §7).
func (a *Attributes) Add(attr Attribute) {
	if a.n >= MaxAttributes {
		panic(fmt.Sprintf("attribute capacity exceeded adding %s", attr.Kind))
	}
	a.items[a.n] = attr
	a.n++
}

// TryAdd is the non-panicking form of Add: it reports a capacity breach by
// returning false instead of crashing. (The catalog parser does not call
// it; it checks ability counts on its own slice.)
func (a *Attributes) TryAdd(attr Attribute) bool {
	if a.n >= MaxAttributes {
		return false
	}
	a.items[a.n] = attr
	a.n++
	return true
}

// Remove deletes attributes matching kind. If level == -1, every
// occurrence of kind is removed; otherwise only the first (kind, level)
// match is removed. This distinction is observable for stacked buffs of
// differing magnitude (spec §4.2).
func (a *Attributes) Remove(kind AttrKind, level int) {
	if level == -1 {
		out := 0
		for i := 0; i < a.n; i++ {
			if a.items[i].Kind != kind {
				a.items[out] = a.items[i]
				out++
			}
		}
		a.n = out
		return
	}
	for i := 0; i < a.n; i++ {
		if a.items[i].Kind == kind && a.items[i].Level == level {
			copy(a.items[i:a.n-1], a.items[i+1:a.n])
			a.n--
			return
		}
	}
}

// RemoveAt deletes the attribute at the given index, preserving order.
func (a *Attributes) RemoveAt(i int) {
	if i < 0 || i >= a.n {
		return
	}
	copy(a.items[i:a.n-1], a.items[i+1:a.n])
	a.n--
}

// Reset clears the container for template-reset reuse (spec §4.6 step 4).
func (a *Attributes) Reset() { a.n = 0 }

// CopyFrom overwrites the receiver with a copy of src's attributes.
func (a *Attributes) CopyFrom(src *Attributes) {
	a.n = src.n
	copy(a.items[:a.n], src.items[:src.n])
}
