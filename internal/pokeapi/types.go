package pokeapi

// Ref is a named resource reference as returned by PokeAPI list and
// cross-reference fields.
type Ref struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// page is the envelope of a paginated list endpoint.
type page struct {
	Count   int   `json:"count"`
	Results []Ref `json:"results"`
}

// ChainLink is one node of an evolution chain tree.
type ChainLink struct {
	Species   Ref         `json:"species"`
	EvolvesTo []ChainLink `json:"evolves_to"`
}

// EvolutionChain is the payload of the evolution-chain endpoint.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// DexEntry is a pokedex number entry of a species.
type DexEntry struct {
	EntryNumber int `json:"entry_number"`
	Pokedex     Ref `json:"pokedex"`
}

// Variety is one concrete form of a species.
type Variety struct {
	IsDefault bool `json:"is_default"`
	Pokemon   Ref  `json:"pokemon"`
}

// Species is the payload of the pokemon-species endpoint, reduced to the
// fields the pipeline consumes.
type Species struct {
	Name           string     `json:"name"`
	PokedexNumbers []DexEntry `json:"pokedex_numbers"`
	Varieties      []Variety  `json:"varieties"`
}

// NationalDexNumber returns the species' National Pokédex number.
// The second return is false when the payload carries no national entry.
func (s *Species) NationalDexNumber() (int, bool) {
	for _, entry := range s.PokedexNumbers {
		if entry.Pokedex.Name == "national" {
			return entry.EntryNumber, true
		}
	}

	return 0, false
}

// VariantNames returns the names of all non-default varieties of the species.
func (s *Species) VariantNames() []string {
	var names []string

	for _, v := range s.Varieties {
		if !v.IsDefault {
			names = append(names, v.Pokemon.Name)
		}
	}

	return names
}
