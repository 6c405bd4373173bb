package decktext

import (
	"fmt"
	"strings"

	"github.com/ramonehamilton/deckwatch/internal/cards"
	"github.com/ramonehamilton/deckwatch/internal/deck"
)

// categories orders the main-deck groups in the serialized output.
// Instants and sorceries share the Spells group.
var categories = []string{
	"Creatures",
	"Planeswalkers",
	"Spells",
	"Artifacts",
	"Enchantments",
	"Lands",
	"Other",
}

// Encode serializes a deck to plain text: header comments, the
// commander zone, the main deck grouped by card type, then the
// sideboard. The output round-trips through Parse: section headers
// are real headers, group labels are comments the parser skips.
func Encode(d *deck.Deck) string {
	var sb strings.Builder

	if d.Name != "" {
		fmt.Fprintf(&sb, "// Name: %s\n", d.Name)
	}
	if d.Description != "" {
		fmt.Fprintf(&sb, "// %s\n", d.Description)
	}
	if d.Format != "" {
		fmt.Fprintf(&sb, "// Format: %s\n", d.Format)
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	commander := d.ZoneEntries(deck.ZoneCommander)
	if len(commander) > 0 {
		sb.WriteString("Commander\n")
		for _, e := range commander {
			writeEntry(&sb, e)
		}
		sb.WriteString("\n")
	}

	main := d.ZoneEntries(deck.ZoneMain)
	if len(main) > 0 {
		// The parser starts in the main section, but after a commander
		// block we have to switch back explicitly.
		if len(commander) > 0 {
			sb.WriteString("Deck\n")
		}

		grouped := groupByCategory(main)
		for _, category := range categories {
			entries := grouped[category]
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "// %s\n", category)
			for _, e := range entries {
				writeEntry(&sb, e)
			}
		}
		sb.WriteString("\n")
	}

	sideboard := d.ZoneEntries(deck.ZoneSideboard)
	if len(sideboard) > 0 {
		sb.WriteString("Sideboard\n")
		for _, e := range sideboard {
			writeEntry(&sb, e)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// writeEntry emits one "<quantity> <name>" line, with the printing
// hint appended when the card pins one.
func writeEntry(sb *strings.Builder, e deck.Entry) {
	fmt.Fprintf(sb, "%d %s", e.Quantity, e.Card.Name)
	if e.Card.SetCode != "" && e.Card.CollectorNumber != "" {
		fmt.Fprintf(sb, " (%s) %s", strings.ToUpper(e.Card.SetCode), e.Card.CollectorNumber)
	}
	sb.WriteString("\n")
}

// groupByCategory buckets main-deck entries for display, preserving
// deck order within each group.
func groupByCategory(entries []deck.Entry) map[string][]deck.Entry {
	grouped := make(map[string][]deck.Entry)
	for _, e := range entries {
		grouped[category(e.Card)] = append(grouped[category(e.Card)], e)
	}
	return grouped
}

func category(c cards.Card) string {
	line := strings.ToLower(c.TypeLine)
	switch {
	case strings.Contains(line, "land"):
		return "Lands"
	case strings.Contains(line, "creature"):
		return "Creatures"
	case strings.Contains(line, "planeswalker"):
		return "Planeswalkers"
	case strings.Contains(line, "instant"), strings.Contains(line, "sorcery"):
		return "Spells"
	case strings.Contains(line, "artifact"):
		return "Artifacts"
	case strings.Contains(line, "enchantment"):
		return "Enchantments"
	default:
		return "Other"
	}
}
