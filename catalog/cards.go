// Package catalog parses the card catalog and deck files into the
// already-parsed inputs the engine consumes (spec's external-interface
// boundary): a name → *engine.CardTemplate map and a deck definition.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/harrowgate/demonclash/engine"
)

// maxAbilitiesPerCard mirrors engine.MaxAbilitiesPerCard; kept as a parse
// boundary constant here so a catalog error message never needs to import
// the engine's internal card-capacity rationale.
const maxAbilitiesPerCard = 39

// ParseError names the offending line, matching spec §7's requirement that
// a parse failure identifies the offender.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadCards reads a cards file from path and returns a name → CardTemplate
// catalog (spec §6).
func LoadCards(path string) (map[string]*engine.CardTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open cards file: %w", err)
	}
	defer f.Close()
	return ParseCards(f, path)
}

// ParseCards parses the cards-file grammar from r (spec §6):
//
//	Name, cost, timing, baseAtk, baseHp, ABILITY[:level], ...
//
// Comment and blank lines are skipped. Ability tokens are case-insensitive
// and drawn from the closed vocabulary engine.AbilityKindByName exposes.
func ParseCards(r io.Reader, sourceName string) (map[string]*engine.CardTemplate, error) {
	catalog := make(map[string]*engine.CardTemplate)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tpl, err := parseCardLine(line)
		if err != nil {
			return nil, &ParseError{File: sourceName, Line: lineNo, Text: raw, Err: err}
		}
		if _, dup := catalog[tpl.Name]; dup {
			return nil, &ParseError{File: sourceName, Line: lineNo, Text: raw, Err: fmt.Errorf("duplicate card name %q", tpl.Name)}
		}
		catalog[tpl.Name] = tpl
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: scan %s: %w", sourceName, err)
	}
	return catalog, nil
}

func parseCardLine(line string) (*engine.CardTemplate, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	name := fields[0]
	if name == "" {
		return nil, fmt.Errorf("empty card name")
	}

	cost, err := parsePositiveInt(fields[1], "cost")
	if err != nil {
		return nil, err
	}
	timing, err := parsePositiveInt(fields[2], "timing")
	if err != nil {
		return nil, err
	}
	baseAtk, err := parsePositiveInt(fields[3], "baseAtk")
	if err != nil {
		return nil, err
	}
	baseHp, err := parsePositiveInt(fields[4], "baseHp")
	if err != nil {
		return nil, err
	}

	abilityTokens := fields[5:]
	if len(abilityTokens) > maxAbilitiesPerCard {
		return nil, fmt.Errorf("%d abilities exceeds the %d-ability cap", len(abilityTokens), maxAbilitiesPerCard)
	}
	attrs := make([]engine.Attribute, 0, len(abilityTokens))
	for _, tok := range abilityTokens {
		if tok == "" {
			continue
		}
		attr, err := parseAbilityToken(tok)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	if len(attrs) > engine.MaxAttributes {
		return nil, fmt.Errorf("card %q exceeds attribute capacity", name)
	}

	return &engine.CardTemplate{
		Name:      name,
		Cost:      cost,
		Timing:    timing,
		BaseAtk:   baseAtk,
		BaseHP:    baseHp,
		BaseAttrs: attrs,
	}, nil
}

func parseAbilityToken(tok string) (engine.Attribute, error) {
	key, levelStr, hasLevel := strings.Cut(tok, ":")
	key = strings.ToUpper(strings.TrimSpace(key))
	kind, ok := engine.AbilityKindByName(key)
	if !ok {
		return engine.Attribute{}, fmt.Errorf("unknown ability %q", key)
	}
	if !isCatalogAbility(kind) {
		return engine.Attribute{}, fmt.Errorf("%q is not a card-template ability", key)
	}
	level := 0
	if hasLevel {
		n, err := strconv.Atoi(strings.TrimSpace(levelStr))
		if err != nil || n < 0 {
			return engine.Attribute{}, fmt.Errorf("invalid level in %q", tok)
		}
		level = n
	}
	return engine.Attribute{Kind: kind, Level: level}, nil
}

// notCatalogAbilities are AttrKind tokens that exist in the engine's
// vocabulary but are never written into a card template directly: internal
// markers the engine attaches itself, the derived _BUFF kinds a class
// ability's source attribute expands into, and rune-only manifestation
// tags (spec §3: "never present in a card template").
var notCatalogAbilities = map[string]bool{
	"DEAD": true, "REANIM_SICKNESS": true, "TRAP_BUFF": true,
	"BACKSTAB_BUFF": true, "LACERATE_BUFF": true,
	"TUNDRA_ATK_BUFF": true, "TUNDRA_HP_BUFF": true,
	"FOREST_ATK_BUFF": true, "FOREST_HP_BUFF": true,
	"MOUNTAIN_ATK_BUFF": true, "MOUNTAIN_HP_BUFF": true,
	"SWAMP_ATK_BUFF": true, "SWAMP_HP_BUFF": true,
	"BLOOD_STONE_RUNE": true, "CLEAR_SPRING": true, "LEAF": true,
	"SPRING_BREEZE": true, "SPRING_BREEZE_TAG": true,
}

func isCatalogAbility(kind engine.AttrKind) bool {
	return !notCatalogAbilities[kind.String()]
}

func parsePositiveInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %d", field, n)
	}
	return n, nil
}
