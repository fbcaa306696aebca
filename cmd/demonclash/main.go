// Package main provides the demonclash CLI: it parses a card catalog and
// deck file, runs the Monte-Carlo battle simulator, and prints the
// aggregate report (spec §6).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/harrowgate/demonclash/catalog"
	"github.com/harrowgate/demonclash/engine"
	"github.com/harrowgate/demonclash/report"
	"github.com/harrowgate/demonclash/simulation"
)

// CLI flags (spec §6). Every flag is registered lower-case and the flag
// package only matches the exact registered name, so main folds flag names
// to lower case (lowerFlagNames) before parsing to make them
// case-insensitive.
var (
	level          int
	hp             int
	iter           int
	demonName      string
	deckPath       string
	debug          bool
	verbose        bool
	showDamage     bool
	avgConcentrate bool
	printRound     int
	numThreads     int
	maxRounds      int
	outputPath     string
	appendPath     string
	cardsPath      string
	defaultsPath   string
)

func init() {
	flag.IntVar(&level, "level", 1, "player level (1..150), sets starting hp from table")
	flag.IntVar(&hp, "hp", 0, "override starting hp (0 = use -level)")
	flag.IntVar(&iter, "iter", 50000, "number of trials")
	flag.StringVar(&demonName, "demon", "DarkTitan", "demon card name")
	flag.StringVar(&deckPath, "deck", "deck.txt", "deck file")
	flag.BoolVar(&debug, "debug", false, "enable fight log; forces iter=10, threads=1")
	flag.BoolVar(&verbose, "verbose", false, "as -debug plus per-turn banners")
	flag.BoolVar(&showDamage, "showdamage", false, "print per-trial final damage; iter=200, threads=1")
	flag.BoolVar(&avgConcentrate, "avgconcentrate", false, "replace 50/50 Concentrate/Frost Bite with deterministic average")
	flag.IntVar(&printRound, "printround", engine.DefaultPrintRound, "threshold for \"percent reached round N\" statistic")
	flag.IntVar(&numThreads, "numthreads", 8, "1..64 workers")
	flag.IntVar(&maxRounds, "maxrounds", engine.DefaultMaxRounds, "safety cap")
	flag.StringVar(&outputPath, "o", "", "write report to FILE (truncate)")
	flag.StringVar(&outputPath, "output", "", "write report to FILE (truncate)")
	flag.StringVar(&appendPath, "a", "", "append report to FILE")
	flag.StringVar(&appendPath, "append", "", "append report to FILE")
	flag.StringVar(&cardsPath, "cards", "cards.txt", "card catalog file")
	flag.StringVar(&defaultsPath, "defaults", "defaults.txt", "defaults preamble file")
}

func main() {
	logger := newLogger()

	args := lowerFlagNames(os.Args[1:])
	// A first pass over the real command line picks up -defaults, so the
	// preamble file read below is the one it names.
	if err := flag.CommandLine.Parse(args); err != nil {
		os.Exit(1)
	}
	defaults, err := catalog.LoadDefaultsArgs(defaultsPath)
	if err != nil {
		logger.Error().Err(err).Msg("reading defaults file")
		os.Exit(1)
	}
	argv := catalog.PrependDefaults(lowerFlagNames(defaults), args)
	if err := flag.CommandLine.Parse(argv); err != nil {
		os.Exit(1)
	}

	if debug || verbose {
		iter = 10
		numThreads = 1
	}
	if showDamage {
		iter = 200
		numThreads = 1
	}
	if numThreads < 1 {
		numThreads = 1
	}
	if numThreads > 64 {
		numThreads = 64
	}

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("demonclash failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	cards, err := catalog.LoadCards(cardsPath)
	if err != nil {
		return fmt.Errorf("loading cards: %w", err)
	}

	demonTpl, ok := cards[demonName]
	if !ok {
		return fmt.Errorf("unknown demon %q", demonName)
	}

	deck, err := catalog.LoadDeck(deckPath, cards)
	if err != nil {
		return fmt.Errorf("loading deck: %w", err)
	}

	heroHP := hp
	if heroHP <= 0 {
		heroHP = catalog.HPForLevel(level)
	}

	cfg := engine.Config{
		MaxRounds:      maxRounds,
		PrintRound:     printRound,
		AvgConcentrate: avgConcentrate,
	}
	snap := &engine.InitialDeckSnapshot{
		DemonTemplate: demonTpl,
		CardTemplates: deck.Cards,
		RuneTemplates: deck.Runes,
		HeroHP:        heroHP,
		Config:        cfg,
	}

	tracer := engine.NoopTracer
	if debug || verbose {
		tracer = &engine.Tracer{Logger: &logger, Verbose: verbose}
	}

	outcome := simulation.Run(snap, simulation.RunOptions{
		NumTrials:  iter,
		NumWorkers: numThreads,
		Seed:       time.Now().UnixNano(),
		Tracer:     tracer,
		CollectRaw: showDamage,
	})

	dest, closeFn, err := openReportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	header := report.Header{
		DemonName:  demonTpl.Name,
		Level:      level,
		HeroHP:     heroHP,
		TotalCost:  catalog.TotalCost(deck.Cards),
		DeckCards:  deck.Cards,
		RuneNames:  runeNames(deck.Runes),
		PrintRound: printRound,
	}
	if err := report.Write(dest, header, outcome.Stats); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if showDamage {
		if err := report.WriteRawDamage(dest, outcome.Raw); err != nil {
			return fmt.Errorf("writing per-trial damage: %w", err)
		}
	}
	return nil
}

// lowerFlagNames lower-cases the name part of every "-name" or
// "-name=value" token; values after "=" and other tokens keep their case.
func lowerFlagNames(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if name, val, ok := strings.Cut(a, "="); strings.HasPrefix(a, "-") && ok {
			a = strings.ToLower(name) + "=" + val
		} else if strings.HasPrefix(a, "-") {
			a = strings.ToLower(a)
		}
		out[i] = a
	}
	return out
}

func runeNames(runes []*engine.RuneTemplate) []string {
	names := make([]string, len(runes))
	for i, r := range runes {
		names[i] = r.Name
	}
	return names
}

func openReportWriter() (*os.File, func(), error) {
	switch {
	case outputPath != "":
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening -o %s: %w", outputPath, err)
		}
		return f, func() { f.Close() }, nil
	case appendPath != "":
		f, err := os.OpenFile(appendPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening -a %s: %w", appendPath, err)
		}
		return f, func() { f.Close() }, nil
	default:
		return os.Stdout, func() {}, nil
	}
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
