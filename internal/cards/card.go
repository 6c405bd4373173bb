// Package cards defines the normalized card representation the deck
// engine operates on, along with mana cost parsing helpers.
package cards

import "strings"

// Legality statuses as reported per format.
const (
	LegalityLegal      = "legal"
	LegalityRestricted = "restricted"
	LegalityBanned     = "banned"
	LegalityNotLegal   = "not_legal"
)

// Card is an immutable snapshot of a single card's rules-relevant
// attributes. It is produced at the lookup boundary and never reshaped
// downstream.
type Card struct {
	// Stable identifier (e.g., Scryfall ID or oracle ID).
	ID string `json:"id"`

	// Basic card information
	Name     string `json:"name"`
	TypeLine string `json:"type_line"`

	// Mana information. ManaCost is the symbolic string ("{2}{W}{W}");
	// empty for cards with no printed cost (most lands).
	ManaCost  string  `json:"mana_cost"`
	ManaValue float64 `json:"mana_value"`

	// Colors and identity, symbols from {W, U, B, R, G}.
	Colors        []string `json:"colors"`
	ColorIdentity []string `json:"color_identity"`

	// Rarity: "common", "uncommon", "rare", "mythic"
	Rarity string `json:"rarity"`

	// Printing metadata
	SetCode         string `json:"set"`
	CollectorNumber string `json:"collector_number"`

	// Legalities maps a format name to one of the Legality* statuses.
	Legalities map[string]string `json:"legalities"`
}

// TypeLand is the unified type-distribution bucket for every land card.
const TypeLand = "Land"

// IsLand reports whether the card's type line contains "Land".
func (c Card) IsLand() bool {
	return strings.Contains(strings.ToLower(c.TypeLine), "land")
}

// IsBasicLand reports whether the card is a basic land. Basic lands are
// exempt from copy limits in every format.
func (c Card) IsBasicLand() bool {
	line := strings.ToLower(c.TypeLine)
	return strings.Contains(line, "basic") && strings.Contains(line, "land")
}

// PrimaryType returns the label used for type distribution. Any land
// collapses to TypeLand so "Basic Land — Plains" and "Land — Gate" land
// in the same bucket; everything else is the first word of the type line.
func (c Card) PrimaryType() string {
	if c.IsLand() {
		return TypeLand
	}

	fields := strings.Fields(c.TypeLine)
	if len(fields) == 0 {
		return "Other"
	}
	return fields[0]
}

// EffectiveManaValue returns the card's mana value, falling back to the
// numeric floor of the symbolic cost when no value is recorded. This is
// what the statistics engine buckets on.
func (c Card) EffectiveManaValue() float64 {
	if c.ManaValue > 0 {
		return c.ManaValue
	}
	if c.ManaCost != "" {
		return ManaValueFloor(c.ManaCost)
	}
	return 0
}

// HasCastingCost reports whether the card belongs in the mana curve:
// it carries an explicit mana cost string or a positive mana value.
// Lands and other zero-cost permanents are excluded.
func (c Card) HasCastingCost() bool {
	return c.ManaCost != "" || c.ManaValue > 0
}
