package search

import (
	"strings"

	"github.com/ramonehamilton/deckwatch/internal/cards"
)

// Query is a free-text search with optional filters. Filters narrow the
// candidate pool before relevance ranking runs over the text.
type Query struct {
	Text    string
	SetCode string
	Rarity  string
	Colors  []string // card must carry every listed color
}

// Match reports whether a card passes the query's filters. The text is
// not consulted here; that is the ranker's job.
func (q Query) Match(c cards.Card) bool {
	if q.SetCode != "" && !strings.EqualFold(c.SetCode, q.SetCode) {
		return false
	}
	if q.Rarity != "" && !strings.EqualFold(c.Rarity, q.Rarity) {
		return false
	}
	for _, want := range q.Colors {
		if !hasColor(c.Colors, want) {
			return false
		}
	}
	return true
}

// RankQuery filters candidates through the query and ranks the
// survivors by relevance to the query text.
func RankQuery(q Query, candidates []cards.Card) []cards.Card {
	filtered := make([]cards.Card, 0, len(candidates))
	for _, c := range candidates {
		if q.Match(c) {
			filtered = append(filtered, c)
		}
	}
	return Rank(q.Text, filtered)
}

func hasColor(colors []string, want string) bool {
	for _, c := range colors {
		if strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}
