package engine

import "testing"

func TestBloodStoneRuneHealsDamagedFieldCardsEachRound(t *testing.T) {
	st := &State{RNG: NewPRNG(1, 2)}
	c := NewCard(newTestTemplate("Mountaineer", 10, 200))
	c.ApplyHPDamage(50)
	st.Field.PushBack(c)

	r := &Rune{Template: &RuneTemplate{Name: "BloodStone", Attr: AttrBloodStoneRune, Level: 40, MaxCharges: 3}}
	activateRune(st, r, RuneBloodStone, NoopTracer)

	has, lvl := c.Has(AttrBloodStoneRune)
	if !has || lvl != 40 {
		t.Fatalf("expected the rune to attach AttrBloodStoneRune:40, got has=%v lvl=%d", has, lvl)
	}

	runHealingStatuses(st, c, NoopTracer)

	if c.HP != 190 {
		t.Fatalf("expected the rune's heal to land (150+40=190), got hp=%d", c.HP)
	}
}
