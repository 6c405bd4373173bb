// Package decktext serializes decks to the plain-text decklist format
// and parses hand-edited decklists back into card requests. The parser
// is deliberately tolerant: mixed section-header casing, trailing
// whitespace, blank lines, comments and unparseable lines are all
// handled without failing the import.
package decktext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Section identifies which zone a parsed line is destined for.
type Section string

const (
	SectionMain      Section = "main"
	SectionSideboard Section = "sideboard"
	SectionCommander Section = "commander"
)

// Line is one parsed card request. Name resolution happens later,
// against the card lookup collaborator; the hints narrow it down when
// the list pins a specific printing.
type Line struct {
	Quantity            int
	Name                string
	Section             Section
	SetCodeHint         string
	CollectorNumberHint string
}

var (
	// "4 Lightning Bolt" or "4x Lightning Bolt"
	cardLineRegex = regexp.MustCompile(`^(\d+)x?\s+(.+)$`)

	// trailing "(M21) 123" printing hint
	printingHintRegex = regexp.MustCompile(`^(.+?)\s+\(([A-Za-z0-9]{2,6})\)(?:\s+([0-9A-Za-z★†]+))?$`)

	// trailing decorations some tools append: "#123" or "3/4"
	decorationRegex = regexp.MustCompile(`\s+(?:#\S+|\d+/\d+)$`)
)

// sectionHeaders maps normalized header spellings to sections.
var sectionHeaders = map[string]Section{
	"commander":  SectionCommander,
	"maindeck":   SectionMain,
	"main deck":  SectionMain,
	"main":       SectionMain,
	"mainboard":  SectionMain,
	"deck":       SectionMain,
	"sideboard":  SectionSideboard,
	"side board": SectionSideboard,
	"side":       SectionSideboard,
	"sb":         SectionSideboard,
}

// Parse splits raw decklist text into card request lines. The section
// state machine starts in main; a header line switches the section for
// subsequent lines. Unrecognized non-blank lines are skipped, not
// errors. Only catastrophic input (not text at all) fails.
func Parse(input string) ([]Line, error) {
	if !utf8.ValidString(input) || strings.ContainsRune(input, 0) {
		return nil, fmt.Errorf("malformed deck text: input is not plain text")
	}

	var parsed []Line
	section := SectionMain

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if s, ok := sectionHeaders[normalizeHeader(line)]; ok {
			section = s
			continue
		}

		matches := cardLineRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		qty, err := strconv.Atoi(matches[1])
		if err != nil || qty <= 0 {
			continue
		}

		name, setCode, collectorNumber := splitPrintingHint(matches[2])

		parsed = append(parsed, Line{
			Quantity:            qty,
			Name:                name,
			Section:             section,
			SetCodeHint:         setCode,
			CollectorNumberHint: collectorNumber,
		})
	}

	return parsed, nil
}

// normalizeHeader lowercases a candidate section header and strips a
// trailing colon, so "Sideboard:", "SIDEBOARD" and "sb" all match.
func normalizeHeader(line string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, ":")))
}

// splitPrintingHint extracts a trailing "(SET) number" printing hint
// from a raw card name. Without one, trailing "#123" or power/toughness
// decorations are stripped as best-effort cleanup.
func splitPrintingHint(raw string) (name, setCode, collectorNumber string) {
	raw = strings.TrimSpace(raw)

	if matches := printingHintRegex.FindStringSubmatch(raw); matches != nil {
		return strings.TrimSpace(matches[1]), strings.ToUpper(matches[2]), matches[3]
	}

	return decorationRegex.ReplaceAllString(raw, ""), "", ""
}
