// Package deck models a deck as a zone-partitioned card multiset and
// provides the pure computations over it: classification, statistics
// and format legality.
package deck

import (
	"github.com/ramonehamilton/deckwatch/internal/cards"
)

// Zone identifies which part of the deck an entry belongs to.
type Zone string

const (
	ZoneMain      Zone = "main"
	ZoneSideboard Zone = "sideboard"
	ZoneCommander Zone = "commander"
)

// Entry is one (card, quantity) pair within a zone.
// Quantity is always >= 1; a (card, zone) pair appears at most once.
type Entry struct {
	Card     cards.Card
	Quantity int
	Zone     Zone
}

// Deck is an ordered collection of entries plus the chosen format.
// Classification, statistics and legality are always computed fresh
// from the entries, never stored.
type Deck struct {
	Name        string
	Description string
	Format      string
	Entries     []Entry
}

// Add merges qty copies of card into the given zone. An existing
// (card, zone) entry has its quantity incremented rather than being
// duplicated. Non-positive quantities are ignored.
func (d *Deck) Add(card cards.Card, qty int, zone Zone) {
	if qty <= 0 {
		return
	}

	for i := range d.Entries {
		if d.Entries[i].Card.ID == card.ID && d.Entries[i].Zone == zone {
			d.Entries[i].Quantity += qty
			return
		}
	}

	d.Entries = append(d.Entries, Entry{Card: card, Quantity: qty, Zone: zone})
}

// Remove takes up to qty copies of the card out of the zone, deleting
// the entry when its quantity reaches zero.
func (d *Deck) Remove(cardID string, qty int, zone Zone) {
	if qty <= 0 {
		return
	}

	for i := range d.Entries {
		if d.Entries[i].Card.ID != cardID || d.Entries[i].Zone != zone {
			continue
		}

		d.Entries[i].Quantity -= qty
		if d.Entries[i].Quantity <= 0 {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
		}
		return
	}
}

// ZoneEntries returns the entries in a zone, preserving deck order.
func (d *Deck) ZoneEntries(zone Zone) []Entry {
	var entries []Entry
	for _, e := range d.Entries {
		if e.Zone == zone {
			entries = append(entries, e)
		}
	}
	return entries
}

// ZoneTotal returns the total card count (summing quantities) in a zone.
func (d *Deck) ZoneTotal(zone Zone) int {
	total := 0
	for _, e := range d.Entries {
		if e.Zone == zone {
			total += e.Quantity
		}
	}
	return total
}
