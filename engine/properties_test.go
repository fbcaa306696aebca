package engine

import (
	"testing"

	"pgregory.net/rapid"
)

// randomCardTemplate builds a template from rapid-drawn stats and a subset
// of the catalog ability vocabulary, for property tests that don't care
// about any one ability's exact semantics.
func randomCardTemplate(t *rapid.T, idx int) *CardTemplate {
	atk := rapid.IntRange(1, 200).Draw(t, "atk")
	hp := rapid.IntRange(1, 500).Draw(t, "hp")
	timing := rapid.IntRange(0, 3).Draw(t, "timing")

	pool := []Attribute{
		{Kind: AttrDodge, Level: 20},
		{Kind: AttrGuard, Level: 30},
		{Kind: AttrForest, Level: 0},
		{Kind: AttrForestAtk, Level: 5},
		{Kind: AttrHealing, Level: 10},
		{Kind: AttrVendetta, Level: 2},
		{Kind: AttrRegenerate, Level: 5},
	}
	n := rapid.IntRange(0, 3).Draw(t, "abilityCount")
	var attrs []Attribute
	for i := 0; i < n; i++ {
		attrs = append(attrs, rapid.SampledFrom(pool).Draw(t, "ability"))
	}

	return &CardTemplate{
		Name:      rapid.StringMatching(`card[0-9]{1,3}`).Draw(t, "name") + "_" + itoaForTest(idx),
		Cost:      1,
		Timing:    timing,
		BaseAtk:   atk,
		BaseHP:    hp,
		BaseAttrs: attrs,
	}
}

func itoaForTest(n int) string {
	digits := "0123456789"
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return string(buf)
}

// TestPropertyFieldInvariantsHoldAtEveryRoundBoundary checks spec §8
// quantified invariant 1 (live cards satisfy 0 < hp <= maxHp, atk >= 0)
// after every single round of a randomized trial.
func TestPropertyFieldInvariantsHoldAtEveryRoundBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deckSize := rapid.IntRange(1, 8).Draw(t, "deckSize")
		templates := make([]*CardTemplate, deckSize)
		for i := range templates {
			templates[i] = randomCardTemplate(t, i)
		}
		seedW := rapid.Uint32Range(1, 1<<31).Draw(t, "seedW")
		seedZ := rapid.Uint32Range(1, 1<<31).Draw(t, "seedZ")

		snap := &InitialDeckSnapshot{
			DemonTemplate: randomCardTemplate(t, 999),
			CardTemplates: templates,
			HeroHP:        2000,
			Config:        Config{MaxRounds: 60},
		}
		st := InitState(BuildDefaultState(snap, seedW, seedZ))
		ShuffleDeck(st)

		for st.HeroHP > 0 &&
			(st.Field.Len() > 0 || st.Deck.Len() > 0 || st.Hand.Len() > 0) &&
			st.Round <= st.Config.MaxRounds {

			decrementHandTimings(st)
			if st.Round%2 == 0 {
				runPlayerRound(st, NoopTracer)
			} else {
				runDemonRound(st, NoopTracer)
			}

			for i := 0; i < st.Field.Len(); i++ {
				c := st.Field.At(i)
				if c == nil || !c.IsAlive() {
					continue
				}
				if c.HP <= 0 || c.HP > c.MaxHP {
					t.Fatalf("round %d: %s violates 0 < hp <= maxHp (hp=%d maxHp=%d)", st.Round, c.Name(), c.HP, c.MaxHP)
				}
				if c.Atk < 0 {
					t.Fatalf("round %d: %s has negative atk %d", st.Round, c.Name(), c.Atk)
				}
			}
			if st.Hand.Len() > MaxHandSize {
				t.Fatalf("round %d: hand size %d exceeds cap %d", st.Round, st.Hand.Len(), MaxHandSize)
			}
			if st.Field.Len() > CardSetCapacity {
				t.Fatalf("round %d: field size %d exceeds cap %d", st.Round, st.Field.Len(), CardSetCapacity)
			}

			if st.HeroHP <= 0 {
				break
			}
			st.Round++
		}
	})
}

// TestPropertyRemoveAttrIdempotentAfterFirstCall checks spec §8's
// round-trip/idempotence property for RemoveAttr(kind, -1).
func TestPropertyRemoveAttrIdempotentAfterFirstCall(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "count")
		var a Attributes
		for i := 0; i < n; i++ {
			a.Add(Attribute{Kind: AttrForestAtkBuff, Level: i})
		}
		a.Remove(AttrForestAtkBuff, -1)
		lenAfterFirst := a.Len()
		a.Remove(AttrForestAtkBuff, -1)
		if a.Len() != lenAfterFirst {
			t.Fatalf("second Remove(kind, -1) changed length from %d to %d", lenAfterFirst, a.Len())
		}
		if has, _ := a.Has(AttrForestAtkBuff); has {
			t.Fatal("expected every matching attribute gone after the first call")
		}
	})
}
