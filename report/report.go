// Package report renders the end-of-run text report (spec §6): exact line
// labels and order, since the format is user-facing.
package report

import (
	"fmt"
	"io"

	"github.com/harrowgate/demonclash/catalog"
	"github.com/harrowgate/demonclash/engine"
	"github.com/harrowgate/demonclash/simulation"
)

// Header describes the run's static configuration: demon, deck, and runes,
// printed before the simulation results.
type Header struct {
	DemonName  string
	Level      int
	HeroHP     int
	TotalCost  int
	DeckCards  []*engine.CardTemplate
	RuneNames  []string
	PrintRound int
}

// Write renders the full report to w: the header block, then the
// simulation results, following the exact layout in spec §6.
func Write(w io.Writer, h Header, stats simulation.AggregatedStats) error {
	bw := &errWriter{w: w}

	bw.printf("Demon: %s\n", h.DemonName)
	bw.printf("Deck : (level %d, %d initial hp, %d cost, %s cooldown)\n",
		h.Level, h.HeroHP, h.TotalCost, catalog.FormatCooldown(catalog.CooldownSeconds(h.TotalCost)))
	bw.printf("\n")
	for i, c := range h.DeckCards {
		bw.printf(" %d) %s\n", i+1, c.Name)
	}
	bw.printf("Runes:\n")
	for _, name := range h.RuneNames {
		bw.printf("%s\n", name)
	}
	bw.printf("\n")

	bw.printf("Results of simulation (%d fights):\n", stats.TotalTrials)
	bw.printf("\n")
	bw.printf("Lowest  number of rounds      : %d\n", stats.LowestRounds)
	bw.printf("Highest number of rounds      : %d\n", stats.HighestRounds)
	bw.printf("Average number of rounds      : %.2f\n", stats.AverageRounds())
	if pct := stats.PercentHitRound(); pct != 0 {
		bw.printf("Percent time hitting round %-3d: %.2f%%\n", h.PrintRound, pct)
	}
	bw.printf("\n")
	bw.printf("Lowest  damage                : %d\n", stats.LowestDamage)
	bw.printf("Highest damage                : %d\n", stats.HighestDamage)
	bw.printf("Average dmg per fight         : %.2f\n", stats.AverageDamage())
	bw.printf("Average dmg per minute        : %.2f\n", stats.AverageDamagePerMinute(catalog.CooldownSeconds(h.TotalCost)))

	return bw.err
}

// WriteRawDamage prints one line per trial's final damage, in submission
// order, for -showdamage (spec §6).
func WriteRawDamage(w io.Writer, results []engine.Result) error {
	bw := &errWriter{w: w}
	for i, r := range results {
		bw.printf("%d) %d\n", i+1, r.DmgDone)
	}
	return bw.err
}

// errWriter lets the report's long sequence of printf calls skip individual
// error checks; the first write error is latched and every later printf
// becomes a no-op, mirroring bufio.Writer's sticky-error discipline.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
