// Package search ranks card candidates against a free-text query.
// Candidates arrive pre-filtered by an upstream substring or full-text
// match (a database LIKE query, typically); this package only orders,
// deduplicates and, when the upstream filter comes back empty, falls
// back to fuzzy name matching.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/ramonehamilton/deckwatch/internal/cards"
	"github.com/ramonehamilton/deckwatch/internal/cards/fuzzy"
)

// Relevance tiers, most relevant first. Ties within a tier break
// alphabetically by name.
const (
	tierExact     = 5 // exact case-insensitive name match
	tierPrefix    = 4 // name starts with the query
	tierWholeWord = 3 // query appears as a separated whole word
	tierSubstring = 2 // query appears anywhere in the name
	tierFallback  = 1 // admitted by the upstream filter on other fields
)

// minFuzzyQueryLen is the shortest query eligible for fuzzy fallback.
const minFuzzyQueryLen = 3

// Rank orders candidates by descending relevance to the query and
// deduplicates them by name (case-insensitive). The first-seen version
// of a name wins unless a later version carries strictly more complete
// data. An empty query returns the candidates deduplicated and sorted
// in the fallback tier.
func Rank(query string, candidates []cards.Card) []cards.Card {
	query = strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		card cards.Card
		tier int
	}

	byName := make(map[string]int)
	results := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		key := strings.ToLower(c.Name)
		if i, seen := byName[key]; seen {
			if completeness(c) > completeness(results[i].card) {
				results[i].card = c
			}
			continue
		}
		byName[key] = len(results)
		results = append(results, scored{card: c, tier: tier(query, key)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].tier != results[j].tier {
			return results[i].tier > results[j].tier
		}
		return strings.ToLower(results[i].card.Name) < strings.ToLower(results[j].card.Name)
	})

	ranked := make([]cards.Card, len(results))
	for i, r := range results {
		ranked[i] = r.card
	}
	return ranked
}

// FuzzyResolve picks the single best fuzzy match for a query from a
// looser candidate pool, for use when the upstream filter returned
// nothing. A candidate is accepted only when its normalized Levenshtein
// similarity exceeds the threshold; ties keep the first-seen candidate.
// Queries shorter than three characters never resolve.
func FuzzyResolve(query string, candidates []cards.Card) (cards.Card, bool) {
	query = strings.TrimSpace(query)
	if len(query) < minFuzzyQueryLen {
		return cards.Card{}, false
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	idx, ok := fuzzy.BestMatch(query, names, fuzzy.DefaultThreshold)
	if !ok {
		return cards.Card{}, false
	}
	return candidates[idx], true
}

// tier buckets a lowercased name against a lowercased query.
func tier(query, name string) int {
	if query == "" {
		return tierFallback
	}

	switch {
	case name == query:
		return tierExact
	case strings.HasPrefix(name, query):
		return tierPrefix
	case containsWord(name, query):
		return tierWholeWord
	case strings.Contains(name, query):
		return tierSubstring
	default:
		return tierFallback
	}
}

// containsWord reports whether query appears as a separated whole word
// within name.
func containsWord(name, query string) bool {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if w == query {
			return true
		}
	}
	return false
}

// completeness scores how much optional data a card carries, used to
// decide whether a later duplicate should replace the first-seen one.
func completeness(c cards.Card) int {
	score := 0
	for _, present := range []bool{
		c.ManaCost != "",
		c.TypeLine != "",
		c.Rarity != "",
		c.SetCode != "",
		c.CollectorNumber != "",
		len(c.Colors) > 0,
		len(c.ColorIdentity) > 0,
		len(c.Legalities) > 0,
	} {
		if present {
			score++
		}
	}
	return score
}
