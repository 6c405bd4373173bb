package deck

import (
	"fmt"
	"strings"

	"github.com/ramonehamilton/deckwatch/internal/format"
)

// Kind is the play-type of a deck.
type Kind string

const (
	SingleGame     Kind = "single_game"
	BestOfThree    Kind = "best_of_three"
	CommanderStyle Kind = "commander_style"
)

// Classification describes how a deck is meant to be played. It is
// informational metadata for display; it never gates legality.
type Classification struct {
	Kind   Kind
	Label  string
	Detail string
}

// Classify determines the deck's play-type under the given format rule.
//
// A commander is detected from the commander zone, or, only in
// commander-style formats, heuristically from a legendary creature or
// planeswalker in the main deck (covering decks built before a commander
// was explicitly assigned). The heuristic never runs for formats without
// a commander zone, so a Modern deck playing a legendary creature stays
// a normal constructed deck.
func Classify(d *Deck, rule format.Rule) Classification {
	hasCommander := len(d.ZoneEntries(ZoneCommander)) > 0
	if !hasCommander && rule.CommanderStyle() {
		hasCommander = hasLikelyCommander(d.ZoneEntries(ZoneMain))
	}

	if rule.CommanderStyle() || hasCommander {
		detail := "commander still needed"
		if hasCommander {
			detail = "commander present"
		}
		return Classification{
			Kind:   CommanderStyle,
			Label:  rule.Name,
			Detail: detail,
		}
	}

	if sideboard := d.ZoneTotal(ZoneSideboard); sideboard > 0 {
		return Classification{
			Kind:   BestOfThree,
			Label:  rule.Name,
			Detail: fmt.Sprintf("%d sideboard cards", sideboard),
		}
	}

	return Classification{
		Kind:   SingleGame,
		Label:  rule.Name,
		Detail: "no sideboard",
	}
}

// hasLikelyCommander reports whether any main-deck card could serve as
// a commander: a legendary creature or legendary planeswalker.
func hasLikelyCommander(main []Entry) bool {
	for _, e := range main {
		line := strings.ToLower(e.Card.TypeLine)
		if !strings.Contains(line, "legendary") {
			continue
		}
		if strings.Contains(line, "creature") || strings.Contains(line, "planeswalker") {
			return true
		}
	}
	return false
}
