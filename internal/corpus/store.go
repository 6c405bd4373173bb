package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ramonehamilton/deckwatch/internal/cards"
	"github.com/ramonehamilton/deckwatch/internal/decktext"
)

const cardColumns = `id, name, mana_cost, mana_value, colors, color_identity,
	type_line, rarity, set_code, collector_number, legalities`

// Store reads and caches cards in the corpus database. It implements
// decktext.Lookup.
type Store struct {
	db *sql.DB
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindByName resolves an exact card name, case-insensitively. When a
// set code hint is given, a printing from that set is preferred; if no
// such printing exists the lookup falls back to name only.
func (s *Store) FindByName(ctx context.Context, name string, hints decktext.Hints) (cards.Card, error) {
	if hints.SetCode != "" {
		card, err := s.findOne(ctx,
			`SELECT `+cardColumns+` FROM cards
			 WHERE name = ? COLLATE NOCASE AND set_code = ? COLLATE NOCASE
			 ORDER BY collector_number LIMIT 1`,
			name, hints.SetCode)
		if err == nil {
			return card, nil
		}
		if !errors.Is(err, decktext.ErrNotFound) {
			return cards.Card{}, err
		}
	}

	return s.findOne(ctx,
		`SELECT `+cardColumns+` FROM cards
		 WHERE name = ? COLLATE NOCASE
		 ORDER BY set_code, collector_number LIMIT 1`,
		name)
}

// SearchCandidates returns cards whose name contains the query,
// ordered by name. This is the upstream substring filter the ranker
// expects to run after.
func (s *Store) SearchCandidates(ctx context.Context, query string, limit int) ([]cards.Card, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards
		 WHERE name LIKE ? COLLATE NOCASE
		 ORDER BY name LIMIT ?`,
		"%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var results []cards.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, card)
	}

	return results, rows.Err()
}

// SaveCard inserts or replaces a card in the corpus.
func (s *Store) SaveCard(ctx context.Context, card cards.Card) error {
	if card.ID == "" {
		return fmt.Errorf("card ID cannot be empty")
	}

	legalities, err := json.Marshal(card.Legalities)
	if err != nil {
		return fmt.Errorf("marshal legalities: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cards (`+cardColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			mana_cost = excluded.mana_cost,
			mana_value = excluded.mana_value,
			colors = excluded.colors,
			color_identity = excluded.color_identity,
			type_line = excluded.type_line,
			rarity = excluded.rarity,
			set_code = excluded.set_code,
			collector_number = excluded.collector_number,
			legalities = excluded.legalities`,
		card.ID, card.Name, card.ManaCost, card.ManaValue,
		joinSymbols(card.Colors), joinSymbols(card.ColorIdentity),
		card.TypeLine, card.Rarity, card.SetCode, card.CollectorNumber,
		string(legalities))
	if err != nil {
		return fmt.Errorf("save card %q: %w", card.Name, err)
	}

	return nil
}

// Count returns the number of cards in the corpus.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

func (s *Store) findOne(ctx context.Context, query string, args ...any) (cards.Card, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return cards.Card{}, fmt.Errorf("find card: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return cards.Card{}, err
		}
		return cards.Card{}, decktext.ErrNotFound
	}

	return scanCard(rows)
}

func scanCard(rows *sql.Rows) (cards.Card, error) {
	var card cards.Card
	var colors, colorIdentity, legalities string

	if err := rows.Scan(&card.ID, &card.Name, &card.ManaCost, &card.ManaValue,
		&colors, &colorIdentity, &card.TypeLine, &card.Rarity,
		&card.SetCode, &card.CollectorNumber, &legalities); err != nil {
		return cards.Card{}, fmt.Errorf("scan card: %w", err)
	}

	card.Colors = splitSymbols(colors)
	card.ColorIdentity = splitSymbols(colorIdentity)

	if legalities != "" && legalities != "{}" {
		if err := json.Unmarshal([]byte(legalities), &card.Legalities); err != nil {
			return cards.Card{}, fmt.Errorf("unmarshal legalities for %q: %w", card.Name, err)
		}
	}

	return card, nil
}

func joinSymbols(symbols []string) string {
	return strings.Join(symbols, ",")
}

func splitSymbols(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
