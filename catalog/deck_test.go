package catalog

import (
	"strings"
	"testing"

	"github.com/harrowgate/demonclash/engine"
)

func testCatalog() map[string]*engine.CardTemplate {
	return map[string]*engine.CardTemplate{
		"Fighter": {Name: "Fighter", Cost: 1, BaseAtk: 30, BaseHP: 150},
		"Healer":  {Name: "Healer", Cost: 1, BaseAtk: 5, BaseHP: 120},
	}
}

func TestParseDeckDispatchesCardsAndRunes(t *testing.T) {
	src := "# comment\n\nFighter\nHealer\nSpringBreeze\n"
	deck, err := ParseDeck(strings.NewReader(src), "deck.txt", testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(deck.Cards))
	}
	if len(deck.Runes) != 1 || deck.Runes[0].Name != "SpringBreeze" {
		t.Fatalf("expected 1 SpringBreeze rune, got %+v", deck.Runes)
	}
}

func TestParseDeckRejectsUnknownName(t *testing.T) {
	_, err := ParseDeck(strings.NewReader("NotACardOrRune\n"), "deck.txt", testCatalog())
	if err == nil {
		t.Fatal("expected an error for an unrecognized deck-file entry")
	}
}

func TestParseDeckEnforcesCardCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxDeckCards+1; i++ {
		b.WriteString("Fighter\n")
	}
	_, err := ParseDeck(strings.NewReader(b.String()), "deck.txt", testCatalog())
	if err == nil {
		t.Fatal("expected an error once card count exceeds the deck cap")
	}
}

func TestParseDeckEnforcesRuneCap(t *testing.T) {
	src := "ArcticFreeze\nBloodStone\nClearSpring\nFrostBite\nRedValley\n"
	_, err := ParseDeck(strings.NewReader(src), "deck.txt", testCatalog())
	if err == nil {
		t.Fatal("expected an error once rune count exceeds the rune cap")
	}
}

func TestParseDeckCardNameTakesPriorityOverSameNamedRune(t *testing.T) {
	// Cards are looked up before runes; a cards-file entry shadows a
	// same-named rune rather than being ambiguous.
	cards := testCatalog()
	cards["SpringBreeze"] = &engine.CardTemplate{Name: "SpringBreeze", Cost: 1, BaseAtk: 1, BaseHP: 1}

	deck, err := ParseDeck(strings.NewReader("SpringBreeze\n"), "deck.txt", cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck.Cards) != 1 || len(deck.Runes) != 0 {
		t.Fatalf("expected the card to shadow the rune, got cards=%d runes=%d", len(deck.Cards), len(deck.Runes))
	}
}
