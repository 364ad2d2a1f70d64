package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		// Plain species
		{"pikachu", "Pikachu"},
		{"meowth", "Meowth"},
		// Regional variants
		{"meowth-alola", "Meowth (Alola)"},
		{"meowth-galar", "Meowth (Galar)"},
		{"zigzagoon-galar", "Zigzagoon (Galar)"},
		// Special-case overrides
		{"nidoran-f", "Nidoran♀"},
		{"nidoran-m", "Nidoran♂"},
		{"mr-mime", "Mr. Mime"},
		{"mr-mime-galar", "Mr. Mime (Galar)"},
		{"mime-jr", "Mime Jr"},
		{"type-null", "Type: Null"},
		{"ho-oh", "Ho-Oh"},
		{"porygon-z", "Porygon-Z"},
		// Paradox and other two-word species
		{"iron-bundle", "Iron Bundle"},
		{"roaring-moon", "Roaring Moon"},
		{"tapu-koko", "Tapu Koko"},
		{"sandy-shocks", "Sandy Shocks"},
		// Paldean Tauros breeds
		{"tauros-paldea-combat-breed", "Tauros (Paldea Combat Breed)"},
		{"tauros-paldea-blaze-breed", "Tauros (Paldea Blaze Breed)"},
		// Jangmo-o line keeps its hyphen
		{"jangmo-o", "Jangmo-o"},
		{"hakamo-o", "Hakamo-o"},
		{"kommo-o", "Kommo-o"},
		{"kommo-o-totem", "Kommo-o (Totem)"},
		// Default multi-part form names
		{"basculin-red-striped", "Basculin (Red Striped)"},
		{"wooper-paldea", "Wooper (Paldea)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.name))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Meowth", capitalize("meowth"))
	assert.Equal(t, "Alola", capitalize("ALOLA"))
	assert.Equal(t, "", capitalize(""))
}
