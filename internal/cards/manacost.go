package cards

import (
	"regexp"
	"strconv"
	"strings"
)

// manaSymbolRegex matches individual mana symbols like {2}, {W}, {W/U},
// {X}, {G/P} inside a symbolic cost string.
var manaSymbolRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// ManaValueFloor computes the minimum numeric mana value of a symbolic
// cost string. Variable symbols (X, Y, Z) contribute 0, numeric generic
// symbols their value, and every other symbol (colored, hybrid,
// Phyrexian, colorless, snow) contributes 1. Hybrid symbols with a
// numeric half ({2/W}) take the cheaper half.
func ManaValueFloor(cost string) float64 {
	total := 0.0

	for _, match := range manaSymbolRegex.FindAllStringSubmatch(cost, -1) {
		symbol := strings.ToUpper(match[1])

		switch symbol {
		case "X", "Y", "Z":
			continue
		}

		if n, err := strconv.Atoi(symbol); err == nil {
			total += float64(n)
			continue
		}

		// Hybrid and Phyrexian symbols still cost at least one mana.
		total++
	}

	return total
}

// Pips counts colored mana symbols per color in a symbolic cost string.
// A hybrid symbol counts toward every color it can be paid with.
func Pips(cost string) map[string]int {
	pips := make(map[string]int)

	for _, match := range manaSymbolRegex.FindAllStringSubmatch(cost, -1) {
		for _, half := range strings.Split(strings.ToUpper(match[1]), "/") {
			switch half {
			case "W", "U", "B", "R", "G":
				pips[half]++
			}
		}
	}

	return pips
}
