package catalog

import (
	"testing"

	"github.com/harrowgate/demonclash/engine"
)

func TestHPForLevelClampsToValidRange(t *testing.T) {
	if got := HPForLevel(0); got != HPForLevel(1) {
		t.Fatalf("expected level 0 to clamp to level 1, got %d vs %d", got, HPForLevel(1))
	}
	if got := HPForLevel(MaxLevel + 50); got != HPForLevel(MaxLevel) {
		t.Fatalf("expected level above MaxLevel to clamp, got %d vs %d", got, HPForLevel(MaxLevel))
	}
}

func TestHPForLevelIsMonotonicallyIncreasing(t *testing.T) {
	prev := HPForLevel(1)
	for level := 2; level <= MaxLevel; level++ {
		cur := HPForLevel(level)
		if cur <= prev {
			t.Fatalf("expected HPForLevel to strictly increase, level %d gave %d after %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestTotalCostSumsCardCosts(t *testing.T) {
	cards := []*engine.CardTemplate{
		{Cost: 3}, {Cost: 5}, {Cost: 2},
	}
	if got := TotalCost(cards); got != 10 {
		t.Fatalf("expected total cost 10, got %d", got)
	}
}

func TestCooldownSecondsAndFormatting(t *testing.T) {
	sec := CooldownSeconds(30)
	if sec != 120 {
		t.Fatalf("expected 60 + 2*30 = 120, got %d", sec)
	}
	if got := FormatCooldown(sec); got != "02:00" {
		t.Fatalf("expected \"02:00\", got %q", got)
	}
	if got := FormatCooldown(65); got != "01:05" {
		t.Fatalf("expected \"01:05\", got %q", got)
	}
}
