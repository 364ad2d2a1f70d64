package classify

import "strings"

// specialCases maps API names whose display form carries unusual symbols
// or punctuation that cannot be derived mechanically.
var specialCases = map[string]string{
	"nidoran-f":     "Nidoran♀",
	"nidoran-m":     "Nidoran♂",
	"mime-jr":       "Mime Jr",
	"mr-mime":       "Mr. Mime",
	"mr-mime-galar": "Mr. Mime (Galar)",
	"mr-rime":       "Mr. Rime",
	"type-null":     "Type: Null",
	"ho-oh":         "Ho-Oh",
	"porygon-z":     "Porygon-Z",
}

// doubleWordPrefixes covers Paradox Pokémon and other two-word species
// names such as "Iron Bundle" or "Tapu Koko".
var doubleWordPrefixes = map[string]bool{
	"tapu":    true,
	"great":   true,
	"scream":  true,
	"brute":   true,
	"flutter": true,
	"slither": true,
	"sandy":   true,
	"iron":    true,
	"wo":      true,
	"chien":   true,
	"ting":    true,
	"chi":     true,
	"roaring": true,
	"walking": true,
	"gouging": true,
	"raging":  true,
}

// DisplayName converts a PokeAPI species or form name into its
// human-readable display name, e.g. "mr-mime-galar" -> "Mr. Mime (Galar)".
func DisplayName(name string) string {
	if display, ok := specialCases[name]; ok {
		return display
	}

	parts := strings.Split(name, "-")

	// Paldean Tauros breeds: tauros-paldea-combat-breed -> "Tauros (Paldea Combat Breed)"
	if strings.HasPrefix(name, "tauros-paldea") {
		return "Tauros (Paldea " + capitalizeWords(parts[2:]) + ")"
	}

	// The Jangmo-o line keeps its hyphen instead of being split into form words
	if strings.HasPrefix(name, "jangmo-o") || strings.HasPrefix(name, "hakamo-o") || strings.HasPrefix(name, "kommo-o") {
		if strings.HasSuffix(name, "-totem") {
			return capitalize(strings.TrimSuffix(name, "-totem")) + " (Totem)"
		}

		return capitalize(name)
	}

	if doubleWordPrefixes[parts[0]] && len(parts) >= 2 {
		base := capitalize(parts[0]) + " " + capitalize(parts[1])

		if len(parts) > 2 {
			return base + " (" + capitalizeWords(parts[2:]) + ")"
		}

		return base
	}

	base := capitalize(parts[0])
	if len(parts) == 1 {
		return base
	}

	return base + " (" + capitalizeWords(parts[1:]) + ")"
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]

	return string(runes)
}

func capitalizeWords(words []string) string {
	out := make([]string, 0, len(words))

	for _, w := range words {
		out = append(out, capitalize(w))
	}

	return strings.Join(out, " ")
}
