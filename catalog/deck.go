package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrowgate/demonclash/engine"
)

// maxDeckCards and maxDeckRunes mirror the deck-file caps (spec §6).
const (
	maxDeckCards = 10
	maxDeckRunes = 4
)

// Deck is a resolved deck definition: ordered card templates (deck order,
// before shuffling) and the selected rune templates.
type Deck struct {
	Cards []*engine.CardTemplate
	Runes []*engine.RuneTemplate
}

// LoadDeck reads a deck file from path and resolves each line against cards
// (the prior cards-file parse result) or the built-in rune table.
func LoadDeck(path string, cards map[string]*engine.CardTemplate) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open deck file: %w", err)
	}
	defer f.Close()
	return ParseDeck(f, path, cards)
}

// ParseDeck parses the deck-file grammar from r (spec §6): one name per
// line, comments and blanks skipped, each name looked up as a card or a
// rune.
func ParseDeck(r io.Reader, sourceName string, cards map[string]*engine.CardTemplate) (*Deck, error) {
	deck := &Deck{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		name := strings.TrimSpace(raw)
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}

		if tpl, ok := cards[name]; ok {
			if len(deck.Cards) >= maxDeckCards {
				return nil, &ParseError{File: sourceName, Line: lineNo, Text: raw, Err: fmt.Errorf("deck exceeds %d-card cap", maxDeckCards)}
			}
			deck.Cards = append(deck.Cards, tpl)
			continue
		}
		if rtpl, ok := LookupRune(name); ok {
			if len(deck.Runes) >= maxDeckRunes {
				return nil, &ParseError{File: sourceName, Line: lineNo, Text: raw, Err: fmt.Errorf("deck exceeds %d-rune cap", maxDeckRunes)}
			}
			deck.Runes = append(deck.Runes, rtpl)
			continue
		}
		return nil, &ParseError{File: sourceName, Line: lineNo, Text: raw, Err: fmt.Errorf("unknown card or rune %q", name)}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: scan %s: %w", sourceName, err)
	}
	return deck, nil
}
