package engine

// MaxRunes bounds the per-trial rune array (spec §3).
const MaxRunes = 4

// RuneTemplate is the immutable, catalog-owned definition of a rune.
type RuneTemplate struct {
	Name       string
	Attr       AttrKind
	Level      int
	MaxCharges int
}

// Rune is the mutable per-trial state of an activated passive.
type Rune struct {
	Template        *RuneTemplate
	ChargesUsed     int
	ActiveThisRound bool
}

// runeKind identifies one of the sixteen named runes by the attribute it
// manifests as. Spring Breeze and the class-count runes share their gate
// attribute kind with the ability kind a card can also carry (spec §4.9,
// "attach" effect), so the engine keys rune behavior off RuneTemplate.Name
// rather than Attr alone.
type runeKind int

const (
	RuneArcticFreeze runeKind = iota
	RuneBloodStone
	RuneClearSpring
	RuneFrostBite
	RuneRedValley
	RuneLore
	RuneLeaf
	RuneRevival
	RuneFireForge
	RuneStonewall
	RuneSpringBreeze
	RuneThunderShield
	RuneNimbleSoul
	RuneDirt
	RuneFlyingStone
	RuneTsunami
)

var runeNameToKind = map[string]runeKind{
	"ArcticFreeze":  RuneArcticFreeze,
	"BloodStone":    RuneBloodStone,
	"ClearSpring":   RuneClearSpring,
	"FrostBite":     RuneFrostBite,
	"RedValley":     RuneRedValley,
	"Lore":          RuneLore,
	"Leaf":          RuneLeaf,
	"Revival":       RuneRevival,
	"FireForge":     RuneFireForge,
	"Stonewall":     RuneStonewall,
	"SpringBreeze":  RuneSpringBreeze,
	"ThunderShield": RuneThunderShield,
	"NimbleSoul":    RuneNimbleSoul,
	"Dirt":          RuneDirt,
	"FlyingStone":   RuneFlyingStone,
	"Tsunami":       RuneTsunami,
}

// RuneKindByName resolves a deck-file rune token to its kind. (The catalog
// parser resolves rune names through catalog.LookupRune instead.)
func RuneKindByName(name string) (runeKind, bool) {
	k, ok := runeNameToKind[name]
	return k, ok
}

// isOneShot reports whether a rune kind has no deactivation state (Clear
// Spring, Leaf — spec §4.9).
func (k runeKind) isOneShot() bool {
	return k == RuneClearSpring || k == RuneLeaf
}

// gate evaluates a rune's per-round activation condition.
func (k runeKind) gate(st *State) bool {
	switch k {
	case RuneArcticFreeze:
		return st.Grave.CountClassAny(AttrTundra) > 2
	case RuneBloodStone:
		return st.Field.CountClass(AttrMountain) > 1
	case RuneClearSpring:
		if st.Field.CountClass(AttrTundra) <= 1 {
			return false
		}
		damaged := false
		st.Field.ForEachAlive(func(i int, c *Card) {
			if c.HP < c.MaxHP {
				damaged = true
			}
		})
		return damaged
	case RuneFrostBite:
		return st.Grave.CountClassAny(AttrTundra) > 3
	case RuneRedValley:
		return st.Field.CountClass(AttrSwamp) > 1
	case RuneLore:
		return st.Grave.CountClassAny(AttrMountain) > 2
	case RuneLeaf:
		return st.Round > 14
	case RuneRevival:
		return st.Grave.CountClassAny(AttrForest) > 1
	case RuneFireForge:
		return st.Grave.CountClassAny(AttrMountain) > 1
	case RuneStonewall:
		return st.Field.CountClass(AttrSwamp) > 1
	case RuneSpringBreeze:
		return st.Hand.CountClassAny(AttrForest) > 1 && st.Field.Len() > 0
	case RuneThunderShield:
		return st.Field.CountClass(AttrForest) > 1
	case RuneNimbleSoul:
		return st.Grave.CountClassAny(AttrForest) > 2
	case RuneDirt:
		return st.Grave.CountClassAny(AttrSwamp) > 1
	case RuneFlyingStone:
		return st.Grave.CountClassAny(AttrSwamp) > 2
	case RuneTsunami:
		return st.HeroHP*2 < st.HeroMaxHP
	}
	return false
}

// CountClassAny on CardSet requires no liveness; reused for Hand here.
