package cards

import "testing"

func TestPrimaryType(t *testing.T) {
	tests := []struct {
		name     string
		typeLine string
		want     string
	}{
		{"creature", "Creature — Elf Druid", "Creature"},
		{"legendary creature keeps first word", "Legendary Creature — Human Wizard", "Legendary"},
		{"instant", "Instant", "Instant"},
		{"basic land collapses", "Basic Land — Plains", TypeLand},
		{"nonbasic land collapses", "Land — Gate", TypeLand},
		{"plain land", "Land", TypeLand},
		{"artifact land collapses", "Artifact Land", TypeLand},
		{"empty type line", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Card{TypeLine: tt.typeLine}
			if got := c.PrimaryType(); got != tt.want {
				t.Errorf("PrimaryType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsBasicLand(t *testing.T) {
	tests := []struct {
		typeLine string
		want     bool
	}{
		{"Basic Land — Plains", true},
		{"Basic Snow Land — Island", true},
		{"Land — Gate", false},
		{"Creature — Elf", false},
	}

	for _, tt := range tests {
		c := Card{TypeLine: tt.typeLine}
		if got := c.IsBasicLand(); got != tt.want {
			t.Errorf("IsBasicLand(%q) = %v, want %v", tt.typeLine, got, tt.want)
		}
	}
}

func TestHasCastingCost(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"normal spell", Card{ManaCost: "{1}{R}", ManaValue: 2}, true},
		{"land", Card{TypeLine: "Basic Land — Mountain"}, false},
		{"zero-cost spell with explicit cost", Card{ManaCost: "{0}"}, true},
		{"mana value without cost string", Card{ManaValue: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.HasCastingCost(); got != tt.want {
				t.Errorf("HasCastingCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveManaValue(t *testing.T) {
	// Explicit mana value wins; the symbolic floor only fills gaps.
	c := Card{ManaCost: "{X}{R}", ManaValue: 1}
	if got := c.EffectiveManaValue(); got != 1 {
		t.Errorf("EffectiveManaValue() = %v, want 1", got)
	}

	c = Card{ManaCost: "{X}{R}"}
	if got := c.EffectiveManaValue(); got != 1 {
		t.Errorf("EffectiveManaValue() floor = %v, want 1", got)
	}

	c = Card{}
	if got := c.EffectiveManaValue(); got != 0 {
		t.Errorf("EffectiveManaValue() empty = %v, want 0", got)
	}
}
