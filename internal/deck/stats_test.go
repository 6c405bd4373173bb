package deck

import (
	"math"
	"testing"

	"github.com/ramonehamilton/deckwatch/internal/cards"
)

func costedCard(id, name, typeLine, manaCost string, manaValue float64, colors ...string) cards.Card {
	return cards.Card{
		ID: id, Name: name, TypeLine: typeLine,
		ManaCost: manaCost, ManaValue: manaValue, Colors: colors,
	}
}

func TestComputeStatsEmptyDeck(t *testing.T) {
	var d Deck
	stats := ComputeStats(&d)

	if stats.TotalCards != 0 {
		t.Errorf("TotalCards = %d, want 0", stats.TotalCards)
	}
	if stats.AvgCmc != 0 {
		t.Errorf("AvgCmc = %v, want 0", stats.AvgCmc)
	}
}

func TestComputeStatsColorDistribution(t *testing.T) {
	var d Deck
	d.Add(costedCard("c1", "Lightning Bolt", "Instant", "{R}", 1, "R"), 4, ZoneMain)
	d.Add(costedCard("c2", "Growth Spiral", "Instant", "{G}{U}", 2, "G", "U"), 3, ZoneMain)
	d.Add(costedCard("c3", "Ornithopter", "Artifact Creature — Thopter", "{0}", 0), 2, ZoneMain)
	d.Add(costedCard("c4", "Negate", "Instant", "{1}{U}", 2, "U"), 2, ZoneSideboard)

	stats := ComputeStats(&d)

	if stats.TotalCards != 9 {
		t.Fatalf("TotalCards = %d, want 9 (sideboard excluded)", stats.TotalCards)
	}

	want := map[string]int{"R": 4, "G": 3, "U": 3, ColorlessBucket: 2}
	for color, count := range want {
		if stats.ColorDistribution[color] != count {
			t.Errorf("ColorDistribution[%s] = %d, want %d", color, stats.ColorDistribution[color], count)
		}
	}

	// Multicolor cards count once per color, so the bucket sum can
	// exceed the card total.
	sum := 0
	for _, count := range stats.ColorDistribution {
		sum += count
	}
	if sum < stats.TotalCards {
		t.Errorf("color bucket sum = %d, want >= %d", sum, stats.TotalCards)
	}
}

func TestComputeStatsTypeDistributionCollapsesLands(t *testing.T) {
	var d Deck
	d.Add(card("c1", "Plains", "Basic Land — Plains"), 10, ZoneMain)
	d.Add(card("c2", "Azorius Guildgate", "Land — Gate"), 4, ZoneMain)
	d.Add(card("c3", "Darksteel Citadel", "Artifact Land"), 4, ZoneMain)
	d.Add(costedCard("c4", "Opt", "Instant", "{U}", 1, "U"), 4, ZoneMain)

	stats := ComputeStats(&d)

	if stats.TypeDistribution[cards.TypeLand] != 18 {
		t.Errorf("TypeDistribution[Land] = %d, want 18 (all lands unify)",
			stats.TypeDistribution[cards.TypeLand])
	}
	if stats.TypeDistribution["Instant"] != 4 {
		t.Errorf("TypeDistribution[Instant] = %d, want 4", stats.TypeDistribution["Instant"])
	}
}

func TestComputeStatsManaCurveExcludesLands(t *testing.T) {
	var d Deck
	d.Add(costedCard("c1", "Lightning Bolt", "Instant", "{R}", 1, "R"), 4, ZoneMain)
	d.Add(costedCard("c2", "Shivan Dragon", "Creature — Dragon", "{4}{R}{R}", 6, "R"), 2, ZoneMain)
	d.Add(card("c3", "Mountain", "Basic Land — Mountain"), 20, ZoneMain)
	// Zero-cost spell with an explicit cost string still curves at 0.
	d.Add(costedCard("c4", "Ornithopter", "Artifact Creature — Thopter", "{0}", 0), 3, ZoneMain)

	stats := ComputeStats(&d)

	if got := stats.CmcDistribution[0]; got != 3 {
		t.Errorf("CmcDistribution[0] = %d, want 3 (lands excluded, Ornithopter included)", got)
	}
	if got := stats.CmcDistribution[1]; got != 4 {
		t.Errorf("CmcDistribution[1] = %d, want 4", got)
	}
	if got := stats.CmcDistribution[6]; got != 2 {
		t.Errorf("CmcDistribution[6] = %d, want 2", got)
	}

	// avg = (4*1 + 2*6 + 3*0) / 9
	wantAvg := 16.0 / 9.0
	if math.Abs(stats.AvgCmc-wantAvg) > 1e-9 {
		t.Errorf("AvgCmc = %v, want %v", stats.AvgCmc, wantAvg)
	}
}

func TestComputeStatsVariableCostUsesFloor(t *testing.T) {
	var d Deck
	// No recorded mana value; the {X}{R} floor is 1.
	d.Add(costedCard("c1", "Fireball", "Sorcery", "{X}{R}", 0, "R"), 2, ZoneMain)

	stats := ComputeStats(&d)

	if got := stats.CmcDistribution[1]; got != 2 {
		t.Errorf("CmcDistribution[1] = %d, want 2 (X resolves to its floor)", got)
	}
	if stats.AvgCmc != 1 {
		t.Errorf("AvgCmc = %v, want 1", stats.AvgCmc)
	}
}
