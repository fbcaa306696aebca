package engine

import "testing"

func newTestTemplate(name string, atk, hp int, attrs ...Attribute) *CardTemplate {
	return &CardTemplate{Name: name, Cost: 1, Timing: 0, BaseAtk: atk, BaseHP: hp, BaseAttrs: attrs}
}

func TestNewCardCopiesTemplateStats(t *testing.T) {
	tpl := newTestTemplate("Scout", 10, 20)
	c := NewCard(tpl)

	if c.Atk != 10 || c.CurBaseAtk != 10 || c.HP != 20 || c.MaxHP != 20 {
		t.Fatalf("unexpected stats: %+v", c)
	}
}

func TestCardIsAliveRequiresPositiveHPAndNoDeadMarker(t *testing.T) {
	c := NewCard(newTestTemplate("Scout", 10, 20))
	if !c.IsAlive() {
		t.Fatal("fresh card should be alive")
	}
	c.Kill()
	if c.IsAlive() {
		t.Fatal("killed card should not be alive")
	}
}

func TestApplyHPDamageClampsAtZero(t *testing.T) {
	c := NewCard(newTestTemplate("Scout", 10, 20))
	lost := c.ApplyHPDamage(999)
	if lost != 20 || c.HP != 0 {
		t.Fatalf("expected full hp lost and clamp at 0, got lost=%d hp=%d", lost, c.HP)
	}
}

func TestHealCapsAtMaxHP(t *testing.T) {
	c := NewCard(newTestTemplate("Scout", 10, 20))
	c.ApplyHPDamage(15)
	healed := c.Heal(100)
	if healed != 15 || c.HP != c.MaxHP {
		t.Fatalf("expected heal capped at maxHP, got healed=%d hp=%d maxHP=%d", healed, c.HP, c.MaxHP)
	}
}

func TestDeadCardSentinel(t *testing.T) {
	c := DeadCard()
	if c.IsAlive() {
		t.Fatal("sentinel must never be alive")
	}
	if c.Name() != "<dead>" {
		t.Fatalf("unexpected sentinel name: %q", c.Name())
	}
}
