// Command deckwatch validates a plain-text decklist against a format's
// construction rules, resolving card names through the local card
// corpus. With -watch it stays running and revalidates whenever the
// decklist file changes.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ramonehamilton/deckwatch/internal/cards"
	"github.com/ramonehamilton/deckwatch/internal/config"
	"github.com/ramonehamilton/deckwatch/internal/corpus"
	"github.com/ramonehamilton/deckwatch/internal/deck"
	"github.com/ramonehamilton/deckwatch/internal/decktext"
	"github.com/ramonehamilton/deckwatch/internal/format"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default ~/.deckwatch/config.toml)")
		corpusPath = flag.String("corpus", "", "path to the card corpus database (overrides config)")
		formatName = flag.String("format", "", "deck format (overrides config default)")
		seedPath   = flag.String("seed", "", "JSON card file to load into the corpus before checking")
		watch      = flag.Bool("watch", false, "revalidate when the decklist file changes")
		emit       = flag.Bool("emit", false, "print the normalized decklist after validation")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <decklist.txt>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	deckPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	table, err := cfg.RuleTable()
	if err != nil {
		log.Fatalf("Failed to build format table: %v", err)
	}

	name := *formatName
	if name == "" {
		name = cfg.Deck.DefaultFormat
	}
	rule, err := table.Lookup(name)
	if err != nil {
		log.Fatalf("Failed to resolve format: %v (known formats: %s)",
			err, strings.Join(table.Names(), ", "))
	}

	path := *corpusPath
	if path == "" {
		path = cfg.Corpus.Path
	}
	if path == "" {
		log.Fatalf("No card corpus configured; pass -corpus or set corpus.path in the config")
	}

	store, err := corpus.Open(corpus.DefaultConfig(path))
	if err != nil {
		log.Fatalf("Failed to open card corpus: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close corpus: %v", err)
		}
	}()

	if *seedPath != "" {
		n, err := seedCorpus(store, *seedPath)
		if err != nil {
			log.Fatalf("Failed to seed corpus: %v", err)
		}
		log.Printf("Loaded %d cards from %s", n, *seedPath)
	}

	resolver := decktext.NewResolver(store, decktext.ResolverOptions{
		MaxConcurrency:   cfg.Resolver.MaxConcurrency,
		LookupsPerSecond: cfg.Resolver.LookupsPerSecond,
	})

	check := func() {
		if err := checkDeck(deckPath, rule, resolver, *emit); err != nil {
			log.Printf("Check failed: %v", err)
		}
	}

	check()

	if !*watch {
		return
	}

	debounce, err := cfg.GetWatchDebounce()
	if err != nil {
		log.Fatalf("Invalid watch debounce: %v", err)
	}
	if err := watchFile(deckPath, debounce, check); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// seedCorpus loads a JSON array of cards into the corpus, upserting by
// card ID.
func seedCorpus(store *corpus.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed []cards.Card
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, c := range seed {
		if err := store.SaveCard(ctx, c); err != nil {
			return 0, err
		}
	}

	return len(seed), nil
}

// checkDeck parses, resolves and validates one decklist file, printing
// the classification, statistics and legality result.
func checkDeck(path string, rule format.Rule, resolver *decktext.Resolver, emit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read decklist: %w", err)
	}

	lines, err := decktext.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse decklist: %w", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("no card lines found in %s", path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := resolver.Resolve(ctx, lines)
	if err != nil {
		return fmt.Errorf("resolve cards: %w", err)
	}

	for _, warning := range report.Warnings {
		log.Printf("Warning: %s", warning)
	}

	d := &deck.Deck{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Format:  rule.Name,
		Entries: report.Entries,
	}

	printReport(d, rule)

	if emit {
		fmt.Println()
		fmt.Print(decktext.Encode(d))
	}

	return nil
}

func printReport(d *deck.Deck, rule format.Rule) {
	classification := deck.Classify(d, rule)
	stats := deck.ComputeStats(d)
	result := deck.Validate(d, rule)

	fmt.Printf("%s: %s (%s)\n", d.Name, classification.Label, classification.Detail)
	fmt.Printf("Main %d / Sideboard %d / Commander %d\n",
		d.ZoneTotal(deck.ZoneMain), d.ZoneTotal(deck.ZoneSideboard), d.ZoneTotal(deck.ZoneCommander))
	fmt.Printf("Average mana value: %.2f\n", stats.AvgCmc)

	fmt.Printf("Colors: %s\n", formatDistribution(stats.ColorDistribution))
	fmt.Printf("Types:  %s\n", formatDistribution(stats.TypeDistribution))

	if result.Legal {
		fmt.Printf("Legal in %s\n", rule.Name)
		return
	}
	fmt.Printf("NOT legal in %s:\n", rule.Name)
	for _, v := range result.Violations {
		fmt.Printf("  - %s: %s\n", v.Code, v.Message)
	}
}

func formatDistribution(dist map[string]int) string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, dist[k]))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// watchFile watches the decklist's directory (editors typically replace
// the file rather than writing in place) and reruns check after the
// debounce interval.
func watchFile(path string, debounce time.Duration, check func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	log.Printf("Watching %s for changes", abs)

	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				log.Printf("Decklist changed, revalidating")
				check()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)
		}
	}
}
