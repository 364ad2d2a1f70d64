package classify

import "strings"

// regionalSuffixes identify regional and striped/totem variations on top
// of the exclusion patterns.
var regionalSuffixes = []string{
	"-alola", "-galar", "-hisui", "-hisuian", "-paldea",
	"-totem", "-white-striped", "-red-striped", "-blue-striped",
}

// NormalizeSpecies strips the first regional or form suffix from a name,
// returning the base species name for consistent lookups,
// e.g. "pikachu-gmax" -> "pikachu". Names without a known suffix are
// returned unchanged.
func NormalizeSpecies(name string) string {
	cut := -1

	for _, suffix := range suffixTable() {
		if idx := strings.Index(name, suffix); idx >= 0 && (cut == -1 || idx < cut) {
			cut = idx
		}
	}

	if cut < 0 {
		return name
	}

	return name[:cut]
}

func suffixTable() []string {
	return append(append([]string{}, regionalSuffixes...), SkipPatterns()...)
}
