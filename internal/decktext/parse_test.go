package decktext

import (
	"testing"
)

func TestParseSections(t *testing.T) {
	input := `Commander
1 Atraxa, Praetors' Voice

Deck
4 Lightning Bolt
20 Mountain

Sideboard
2 Negate`

	lines, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}

	want := []struct {
		qty     int
		name    string
		section Section
	}{
		{1, "Atraxa, Praetors' Voice", SectionCommander},
		{4, "Lightning Bolt", SectionMain},
		{20, "Mountain", SectionMain},
		{2, "Negate", SectionSideboard},
	}

	for i, w := range want {
		if lines[i].Quantity != w.qty || lines[i].Name != w.name || lines[i].Section != w.section {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestParseTolerance(t *testing.T) {
	// Headers without colons, blank lines, mixed casing. Headers take
	// effect for subsequent lines only.
	input := "Sideboard\n2 Negate\n\nMain\n4 Lightning Bolt"

	lines, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}

	if lines[0].Section != SectionSideboard || lines[0].Quantity != 2 || lines[0].Name != "Negate" {
		t.Errorf("line 0 = %+v, want 2 Negate in sideboard", lines[0])
	}
	if lines[1].Section != SectionMain || lines[1].Quantity != 4 || lines[1].Name != "Lightning Bolt" {
		t.Errorf("line 1 = %+v, want 4 Lightning Bolt in main", lines[1])
	}
}

func TestParseHeaderSpellings(t *testing.T) {
	tests := []struct {
		header string
		want   Section
	}{
		{"Sideboard:", SectionSideboard},
		{"SIDE BOARD", SectionSideboard},
		{"sb", SectionSideboard},
		{"Side", SectionSideboard},
		{"Maindeck", SectionMain},
		{"Main Deck:", SectionMain},
		{"Mainboard", SectionMain},
		{"deck", SectionMain},
		{"Commander:", SectionCommander},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			lines, err := Parse(tt.header + "\n1 Opt")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(lines) != 1 {
				t.Fatalf("lines = %d, want 1", len(lines))
			}
			if lines[0].Section != tt.want {
				t.Errorf("section = %q, want %q", lines[0].Section, tt.want)
			}
		})
	}
}

func TestParsePrintingHints(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantSet   string
		wantCollN string
	}{
		{"set and collector number", "4 Lightning Bolt (M21) 123", "Lightning Bolt", "M21", "123"},
		{"set only", "4 Lightning Bolt (M21)", "Lightning Bolt", "M21", ""},
		{"lowercase set normalized", "1 Opt (xln) 65", "Opt", "XLN", "65"},
		{"no hint", "4 Lightning Bolt", "Lightning Bolt", "", ""},
		{"hash decoration stripped", "4 Lightning Bolt #123", "Lightning Bolt", "", ""},
		{"power toughness stripped", "2 Grizzly Bears 2/2", "Grizzly Bears", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(lines) != 1 {
				t.Fatalf("lines = %d, want 1", len(lines))
			}
			l := lines[0]
			if l.Name != tt.wantName || l.SetCodeHint != tt.wantSet || l.CollectorNumberHint != tt.wantCollN {
				t.Errorf("parsed = %+v, want name=%q set=%q collector=%q",
					l, tt.wantName, tt.wantSet, tt.wantCollN)
			}
		})
	}
}

func TestParseSkipsJunk(t *testing.T) {
	input := `// My burn deck
4 Lightning Bolt

some stray note
4x Shock
Mountain without a quantity
`

	lines, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2 (junk skipped, not an error)", len(lines))
	}
	if lines[1].Quantity != 4 || lines[1].Name != "Shock" {
		t.Errorf("line 1 = %+v, want 4x Shock parsed", lines[1])
	}
}

func TestParseRejectsBinaryInput(t *testing.T) {
	if _, err := Parse("4 Lightning Bolt\x00junk"); err == nil {
		t.Error("Parse() accepted input containing NUL bytes")
	}
	if _, err := Parse(string([]byte{0xff, 0xfe, 0xfd})); err == nil {
		t.Error("Parse() accepted invalid UTF-8")
	}
}

func TestParseEmptyInput(t *testing.T) {
	lines, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %d, want 0", len(lines))
	}
}
