package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufTracer(verbose bool) (*Tracer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return &Tracer{Logger: &logger, Verbose: verbose}, &buf
}

func TestBannerfEmitsOnlyWhenVerbose(t *testing.T) {
	tr, buf := newBufTracer(false)
	tr.Bannerf("round %d", 3)
	if buf.Len() != 0 {
		t.Fatalf("expected no banner output without Verbose, got %q", buf.String())
	}

	tr, buf = newBufTracer(true)
	tr.Bannerf("round %d", 3)
	if !strings.Contains(buf.String(), "round 3") {
		t.Fatalf("expected the banner message in output, got %q", buf.String())
	}
}

func TestTracefIgnoresVerboseFlag(t *testing.T) {
	tr, buf := newBufTracer(false)
	tr.Tracef("drew %s", "Scout")
	if !strings.Contains(buf.String(), "drew Scout") {
		t.Fatalf("expected Tracef to emit regardless of Verbose, got %q", buf.String())
	}
}

func TestRunRoundsEmitsPerTurnBannersWhenVerbose(t *testing.T) {
	tr, buf := newBufTracer(true)
	st := &State{
		HeroHP:    10000,
		HeroMaxHP: 10000,
		Round:     1,
		RNG:       NewPRNG(1, 2),
		Config:    Config{MaxRounds: 6},
	}
	st.Demon = *NewCard(newTestTemplate("Demon", 0, 10000))
	st.Field.PushBack(NewCard(newTestTemplate("Evergreen", 1, 10000, Attribute{Kind: AttrReincarnate, Level: 1})))

	RunRounds(st, tr)

	out := buf.String()
	if !strings.Contains(out, "=== round") {
		t.Fatalf("expected per-round banners, got %q", out)
	}
	if !strings.Contains(out, "'s turn") {
		t.Fatalf("expected per-turn banners, got %q", out)
	}
}
