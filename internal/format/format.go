// Package format holds the construction rules for each supported deck
// format and the lookup table that resolves format names.
package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned when a format name has no rule entry.
// Callers must resolve a known format before validating; there is no
// implicit fallback.
var ErrUnknownFormat = errors.New("unknown format")

// Unbounded marks a size or copy limit that is not enforced.
const Unbounded = 0

// Rule describes the construction constraints of one format.
type Rule struct {
	Name              string
	MinSize           int
	MaxSize           int // Unbounded if 0
	MaxCopies         int // per non-basic-land card; Unbounded if 0
	RequiresCommander bool
	AllowsSideboard   bool
	SideboardMaxSize  int
}

// CommanderStyle reports whether the format reserves a commander zone.
func (r Rule) CommanderStyle() bool {
	return r.RequiresCommander
}

// builtinRules are the formats every table starts with.
func builtinRules() []Rule {
	constructed := func(name string) Rule {
		return Rule{
			Name:             name,
			MinSize:          60,
			MaxSize:          Unbounded,
			MaxCopies:        4,
			AllowsSideboard:  true,
			SideboardMaxSize: 15,
		}
	}

	return []Rule{
		constructed("Standard"),
		constructed("Pioneer"),
		constructed("Modern"),
		constructed("Legacy"),
		constructed("Vintage"),
		constructed("Pauper"),
		{
			Name:              "Commander",
			MinSize:           100,
			MaxSize:           100,
			MaxCopies:         1,
			RequiresCommander: true,
		},
		{
			Name:              "Brawl",
			MinSize:           60,
			MaxSize:           60,
			MaxCopies:         1,
			RequiresCommander: true,
		},
		{
			Name:             "Limited",
			MinSize:          40,
			MaxSize:          Unbounded,
			MaxCopies:        Unbounded,
			AllowsSideboard:  true,
			SideboardMaxSize: Unbounded,
		},
	}
}

// Table maps format names to their rules. Lookup is case-insensitive.
type Table struct {
	rules map[string]Rule
}

// NewTable returns a table seeded with the builtin formats.
func NewTable() *Table {
	t := &Table{rules: make(map[string]Rule)}
	for _, r := range builtinRules() {
		t.rules[strings.ToLower(r.Name)] = r
	}
	return t
}

// Lookup resolves a format name to its rule.
func (t *Table) Lookup(name string) (Rule, error) {
	rule, ok := t.rules[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return rule, nil
}

// Register adds or replaces a rule. Custom formats from configuration
// enter the table through here.
func (t *Table) Register(rule Rule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if rule.MinSize < 0 || rule.MaxSize < 0 || rule.MaxCopies < 0 || rule.SideboardMaxSize < 0 {
		return fmt.Errorf("format %q: limits cannot be negative", rule.Name)
	}
	if rule.MaxSize != Unbounded && rule.MaxSize < rule.MinSize {
		return fmt.Errorf("format %q: max size %d below min size %d", rule.Name, rule.MaxSize, rule.MinSize)
	}

	t.rules[strings.ToLower(rule.Name)] = rule
	return nil
}

// Names returns the registered format names in alphabetical order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.rules))
	for _, rule := range t.rules {
		names = append(names, rule.Name)
	}
	sort.Strings(names)
	return names
}
