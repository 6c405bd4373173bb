package deck

import (
	"fmt"

	"github.com/ramonehamilton/deckwatch/internal/format"
)

// Violation codes reported by Validate. Each failed check yields a
// distinct code so callers can surface actionable messages.
const (
	SizeTooSmall        = "SizeTooSmall"
	SizeTooLarge        = "SizeTooLarge"
	CopyLimitExceeded   = "CopyLimitExceeded"
	MissingCommander    = "MissingCommander"
	SideboardTooLarge   = "SideboardTooLarge"
	SideboardNotAllowed = "SideboardNotAllowed"
)

// Violation is one unmet construction constraint.
type Violation struct {
	Code    string
	Message string
}

// LegalityResult is the validator's output. It is the normal result
// shape of validation, not an error: an illegal deck is a valid answer.
type LegalityResult struct {
	Legal      bool
	Violations []Violation
}

// Validate checks the deck against a format rule and reports every
// unmet constraint. It recomputes from scratch on every call and holds
// no incremental state, so it is safe to run after each add or remove.
func Validate(d *Deck, rule format.Rule) LegalityResult {
	var violations []Violation

	mainTotal := d.ZoneTotal(ZoneMain)
	commanderTotal := d.ZoneTotal(ZoneCommander)
	sideboardTotal := d.ZoneTotal(ZoneSideboard)

	size := mainTotal
	if rule.RequiresCommander {
		size += commanderTotal
	}

	if size < rule.MinSize {
		violations = append(violations, Violation{
			Code:    SizeTooSmall,
			Message: fmt.Sprintf("deck has %d cards (minimum %d)", size, rule.MinSize),
		})
	}
	if rule.MaxSize != format.Unbounded && size > rule.MaxSize {
		violations = append(violations, Violation{
			Code:    SizeTooLarge,
			Message: fmt.Sprintf("deck has %d cards (maximum %d)", size, rule.MaxSize),
		})
	}

	if rule.MaxCopies != format.Unbounded {
		// Entries are merged per (card, zone), so each entry carries
		// the full count for its zone. Basic lands are exempt.
		for _, e := range d.Entries {
			if e.Card.IsBasicLand() {
				continue
			}
			if e.Quantity > rule.MaxCopies {
				violations = append(violations, Violation{
					Code: CopyLimitExceeded,
					Message: fmt.Sprintf("%q has %d copies (maximum %d)",
						e.Card.Name, e.Quantity, rule.MaxCopies),
				})
			}
		}
	}

	if rule.RequiresCommander && commanderTotal == 0 {
		violations = append(violations, Violation{
			Code:    MissingCommander,
			Message: "format requires a commander",
		})
	}

	if !rule.AllowsSideboard && sideboardTotal > 0 {
		violations = append(violations, Violation{
			Code:    SideboardNotAllowed,
			Message: fmt.Sprintf("format does not allow a sideboard (%d cards present)", sideboardTotal),
		})
	}
	if rule.AllowsSideboard && rule.SideboardMaxSize != format.Unbounded && sideboardTotal > rule.SideboardMaxSize {
		violations = append(violations, Violation{
			Code: SideboardTooLarge,
			Message: fmt.Sprintf("sideboard has %d cards (maximum %d)",
				sideboardTotal, rule.SideboardMaxSize),
		})
	}

	return LegalityResult{
		Legal:      len(violations) == 0,
		Violations: violations,
	}
}
