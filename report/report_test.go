package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/harrowgate/demonclash/engine"
	"github.com/harrowgate/demonclash/simulation"
)

func sampleHeader() Header {
	return Header{
		DemonName: "Azmodan",
		Level:     50,
		HeroHP:    6500,
		TotalCost: 30,
		DeckCards: []*engine.CardTemplate{
			{Name: "Fighter"},
			{Name: "Healer"},
		},
		RuneNames:  []string{"SpringBreeze", "Leaf"},
		PrintRound: 50,
	}
}

func sampleStats(hitRoundCount, total int) simulation.AggregatedStats {
	stats := simulation.NewAggregatedStats()
	for i := 0; i < total; i++ {
		stats.Add(engine.Result{
			DmgDone:   1000 + i*10,
			Rounds:    20 + i,
			HitRoundX: i < hitRoundCount,
		})
	}
	return stats
}

func TestWriteIncludesHeaderAndDeckListing(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleHeader(), sampleStats(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Demon: Azmodan\n",
		"Deck : (level 50, 6500 initial hp, 30 cost, 02:00 cooldown)\n",
		" 1) Fighter\n",
		" 2) Healer\n",
		"Runes:\n",
		"SpringBreeze\n",
		"Leaf\n",
		"Results of simulation (5 fights):\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteOmitsHitRoundLineWhenZero(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleHeader(), sampleStats(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "Percent time hitting round") {
		t.Fatal("expected the hit-round line to be omitted when no trial hit it")
	}
}

func TestWriteIncludesHitRoundLineWhenNonzero(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleHeader(), sampleStats(2, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Percent time hitting round 50 : 40.00%\n") {
		t.Fatalf("expected a hit-round line for 2/5 trials, got:\n%s", out)
	}
}

func TestWritePropagatesWriterError(t *testing.T) {
	wantErr := errors.New("disk full")
	err := Write(&failingWriter{err: wantErr}, sampleHeader(), sampleStats(0, 1))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the writer's error to propagate, got %v", err)
	}
}

func TestWriteRawDamagePrintsOneLinePerTrialInOrder(t *testing.T) {
	results := []engine.Result{{DmgDone: 100}, {DmgDone: 250}, {DmgDone: 75}}
	var buf strings.Builder
	if err := WriteRawDamage(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1) 100\n2) 250\n3) 75\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

type failingWriter struct{ err error }

func (f *failingWriter) Write(p []byte) (int, error) { return 0, f.err }
