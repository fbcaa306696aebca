package catalog

import (
	"fmt"

	"github.com/harrowgate/demonclash/engine"
)

// MaxLevel bounds the -level flag (spec §6).
const MaxLevel = 150

// minLevelHP and hpPerLevel define the level → starting-hp table. This
// derivation sits outside the engine's scope (spec §1): the engine only
// ever receives a concrete hero hp, never a level.
const (
	minLevelHP = 500
	hpPerLevel = 120
)

// HPForLevel returns the starting hero hp for a player level in [1, MaxLevel].
// Levels outside that range clamp to the nearest bound.
func HPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return minLevelHP + (level-1)*hpPerLevel
}

// TotalCost sums a deck's card costs, the raw ingredient for the cooldown
// and dmg/minute denominators the report footer prints (spec §6).
func TotalCost(cards []*engine.CardTemplate) int {
	total := 0
	for _, c := range cards {
		total += c.Cost
	}
	return total
}

// CooldownSeconds is the deck "cooldown" presentation value: 60 + 2*cost
// seconds, also reused as the dmg/minute denominator (spec §6).
func CooldownSeconds(totalCost int) int {
	return 60 + 2*totalCost
}

// FormatCooldown renders a cooldown in seconds as MM:SS, matching the
// report's "MM:SS cooldown" column (spec §6).
func FormatCooldown(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
