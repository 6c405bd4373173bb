package decktext

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ramonehamilton/deckwatch/internal/cards"
	"github.com/ramonehamilton/deckwatch/internal/deck"
	"github.com/ramonehamilton/deckwatch/internal/search"
)

// ErrNotFound is returned by a Lookup when no card matches.
var ErrNotFound = errors.New("card not found")

// Hints narrow a name lookup to a specific printing.
type Hints struct {
	SetCode         string
	CollectorNumber string
}

// Lookup is the external card lookup collaborator. Implementations may
// hit a database or the network; the resolver only assumes they honor
// the context and return ErrNotFound for misses.
type Lookup interface {
	// FindByName resolves an exact card name, preferring a printing
	// that matches the hints when given.
	FindByName(ctx context.Context, name string, hints Hints) (cards.Card, error)

	// SearchCandidates returns cards loosely matching the query, for
	// fuzzy fallback. Ordering does not matter here.
	SearchCandidates(ctx context.Context, query string, limit int) ([]cards.Card, error)
}

// ResolverOptions bounds the resolver's fan-out against the lookup.
type ResolverOptions struct {
	// MaxConcurrency caps in-flight lookups. Default: 8.
	MaxConcurrency int

	// LookupsPerSecond rate-limits lookups, since the collaborator may
	// be a remote API. 0 disables the limit.
	LookupsPerSecond float64

	// FuzzyCandidates is how many loose candidates to fetch for the
	// fuzzy fallback. Default: 25.
	FuzzyCandidates int
}

// DefaultResolverOptions returns sensible defaults.
func DefaultResolverOptions() ResolverOptions {
	return ResolverOptions{
		MaxConcurrency:  8,
		FuzzyCandidates: 25,
	}
}

// Resolver turns parsed decklist lines into deck entries by resolving
// each raw name through the lookup collaborator.
type Resolver struct {
	lookup  Lookup
	limiter *rate.Limiter
	opts    ResolverOptions
}

// NewResolver creates a resolver over the given lookup.
func NewResolver(lookup Lookup, opts ResolverOptions) *Resolver {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultResolverOptions().MaxConcurrency
	}
	if opts.FuzzyCandidates <= 0 {
		opts.FuzzyCandidates = DefaultResolverOptions().FuzzyCandidates
	}

	var limiter *rate.Limiter
	if opts.LookupsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.LookupsPerSecond), 1)
	}

	return &Resolver{lookup: lookup, limiter: limiter, opts: opts}
}

// ResolveReport carries the resolved entries plus per-line warnings for
// names that could not be matched. Unresolved lines are dropped, never
// fatal; the rest of the deck continues to resolve.
type ResolveReport struct {
	Entries  []deck.Entry
	Warnings []string
}

// Resolve resolves every parsed line concurrently, bounded by the
// configured concurrency limit and rate. Entry order follows line
// order, and duplicate (card, zone) pairs are merged.
func (r *Resolver) Resolve(ctx context.Context, lines []Line) (*ResolveReport, error) {
	resolved := make([]*cards.Card, len(lines))
	warnings := make([]string, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.MaxConcurrency)

	for i, line := range lines {
		g.Go(func() error {
			card, err := r.resolveLine(ctx, line)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					warnings[i] = fmt.Sprintf("card %q not found, line dropped", line.Name)
					return nil
				}
				return err
			}
			resolved[i] = &card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ResolveReport{}
	var d deck.Deck
	for i, line := range lines {
		if resolved[i] == nil {
			if warnings[i] != "" {
				report.Warnings = append(report.Warnings, warnings[i])
			}
			continue
		}
		d.Add(*resolved[i], line.Quantity, sectionZone(line.Section))
	}
	report.Entries = d.Entries

	return report, nil
}

// resolveLine tries exact name plus printing hints first, then exact
// name alone, then a fuzzy match over loose candidates as last resort.
func (r *Resolver) resolveLine(ctx context.Context, line Line) (cards.Card, error) {
	if err := r.wait(ctx); err != nil {
		return cards.Card{}, err
	}

	hints := Hints{SetCode: line.SetCodeHint, CollectorNumber: line.CollectorNumberHint}
	card, err := r.lookup.FindByName(ctx, line.Name, hints)
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return cards.Card{}, fmt.Errorf("lookup %q: %w", line.Name, err)
	}

	if err := r.wait(ctx); err != nil {
		return cards.Card{}, err
	}

	// A corrupted name won't substring-match itself, so the fallback
	// pool comes from a looser prefix query.
	candidates, err := r.lookup.SearchCandidates(ctx, looseQuery(line.Name), r.opts.FuzzyCandidates)
	if err != nil {
		return cards.Card{}, fmt.Errorf("search candidates for %q: %w", line.Name, err)
	}

	if match, ok := search.FuzzyResolve(line.Name, candidates); ok {
		return match, nil
	}

	return cards.Card{}, ErrNotFound
}

// looseQuery reduces a raw name to the first few characters of its
// first word, wide enough to pull plausible fuzzy candidates from a
// substring search.
func looseQuery(name string) string {
	word := name
	if i := strings.IndexFunc(name, unicode.IsSpace); i > 0 {
		word = name[:i]
	}

	runes := []rune(word)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return string(runes)
}

func (r *Resolver) wait(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

func sectionZone(s Section) deck.Zone {
	switch s {
	case SectionSideboard:
		return deck.ZoneSideboard
	case SectionCommander:
		return deck.ZoneCommander
	default:
		return deck.ZoneMain
	}
}
