package deck

// ColorlessBucket is the color-distribution bucket for cards with no
// color at all.
const ColorlessBucket = "Colorless"

// Stats holds the derived statistics of a main deck. Sideboard and
// commander cards are excluded; they represent a different game state.
type Stats struct {
	// TotalCards is the sum of main-deck quantities.
	TotalCards int

	// AvgCmc averages mana value over cards with a casting cost,
	// weighted by quantity. 0 when no cards qualify.
	AvgCmc float64

	// ColorDistribution counts cards per color symbol. Multicolor
	// cards increment every one of their colors; colorless cards
	// increment ColorlessBucket. The sum is therefore >= TotalCards.
	ColorDistribution map[string]int

	// TypeDistribution counts cards by primary type, with all lands
	// collapsed into the single "Land" bucket.
	TypeDistribution map[string]int

	// CmcDistribution is the mana curve: mana value -> card count,
	// only over cards with a casting cost.
	CmcDistribution map[int]int
}

// ComputeStats derives the statistics of the deck's main zone.
// Malformed input never fails: an empty deck yields zeroed stats.
func ComputeStats(d *Deck) Stats {
	stats := Stats{
		ColorDistribution: make(map[string]int),
		TypeDistribution:  make(map[string]int),
		CmcDistribution:   make(map[int]int),
	}

	cmcSum := 0.0
	cmcCards := 0

	for _, e := range d.ZoneEntries(ZoneMain) {
		qty := e.Quantity
		stats.TotalCards += qty

		if len(e.Card.Colors) == 0 {
			stats.ColorDistribution[ColorlessBucket] += qty
		} else {
			for _, color := range e.Card.Colors {
				stats.ColorDistribution[color] += qty
			}
		}

		stats.TypeDistribution[e.Card.PrimaryType()] += qty

		if e.Card.HasCastingCost() {
			mv := e.Card.EffectiveManaValue()
			stats.CmcDistribution[int(mv)] += qty
			cmcSum += mv * float64(qty)
			cmcCards += qty
		}
	}

	if cmcCards > 0 {
		stats.AvgCmc = cmcSum / float64(cmcCards)
	}

	return stats
}
