package dexgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/dexr/internal/cache"
	"github.com/inovacc/dexr/internal/pokeapi"
)

// apiServer is a minimal PokeAPI double serving canned chains and species,
// counting species-endpoint hits.
type apiServer struct {
	srv     *httptest.Server
	chains  map[string]pokeapi.EvolutionChain
	species map[string]pokeapi.Species
	broken  map[string]bool

	speciesHits int
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()

	a := &apiServer{
		chains:  make(map[string]pokeapi.EvolutionChain),
		species: make(map[string]pokeapi.Species),
		broken:  make(map[string]bool),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/evolution-chain/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/evolution-chain/"), "/")

		if id == "" {
			var refs []pokeapi.Ref

			for chainID := range a.chains {
				refs = append(refs, pokeapi.Ref{URL: a.srv.URL + "/evolution-chain/" + chainID + "/"})
			}

			// Stable listing order regardless of map iteration
			for i := range refs {
				for j := i + 1; j < len(refs); j++ {
					if refs[j].URL < refs[i].URL {
						refs[i], refs[j] = refs[j], refs[i]
					}
				}
			}

			writeJSON(w, map[string]any{"count": len(refs), "results": refs})

			return
		}

		if a.broken[id] {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		chain, ok := a.chains[id]
		if !ok {
			http.NotFound(w, r)

			return
		}

		writeJSON(w, chain)
	})

	mux.HandleFunc("/pokemon-species/", func(w http.ResponseWriter, r *http.Request) {
		a.speciesHits++

		name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon-species/"), "/")

		species, ok := a.species[name]
		if !ok {
			http.NotFound(w, r)

			return
		}

		writeJSON(w, species)
	})

	a.srv = httptest.NewServer(mux)
	t.Cleanup(a.srv.Close)

	return a
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func (a *apiServer) addSpecies(name string, dex int, variants ...string) {
	s := pokeapi.Species{
		Name: name,
		PokedexNumbers: []pokeapi.DexEntry{
			{EntryNumber: dex, Pokedex: pokeapi.Ref{Name: "national"}},
		},
		Varieties: []pokeapi.Variety{
			{IsDefault: true, Pokemon: pokeapi.Ref{Name: name}},
		},
	}

	for _, v := range variants {
		s.Varieties = append(s.Varieties, pokeapi.Variety{Pokemon: pokeapi.Ref{Name: v}})
	}

	a.species[name] = s
}

func link(name string, evolvesTo ...pokeapi.ChainLink) pokeapi.ChainLink {
	return pokeapi.ChainLink{
		Species:   pokeapi.Ref{Name: name},
		EvolvesTo: evolvesTo,
	}
}

// fixture: the Meowth family (chain 1) and the Pichu family (chain 2).
func newFixture(t *testing.T) *apiServer {
	api := newAPIServer(t)

	api.chains["1"] = pokeapi.EvolutionChain{
		ID:    1,
		Chain: link("meowth", link("persian"), link("perrserker")),
	}
	api.addSpecies("meowth", 52, "meowth-alola", "meowth-galar", "meowth-gmax")
	api.addSpecies("persian", 53, "persian-alola")
	api.addSpecies("perrserker", 863)

	api.chains["2"] = pokeapi.EvolutionChain{
		ID:    2,
		Chain: link("pichu", link("pikachu", link("raichu"))),
	}
	api.addSpecies("pichu", 172)
	api.addSpecies("pikachu", 25, "pikachu-gmax", "pikachu-rock-star")
	api.addSpecies("raichu", 26, "raichu-alola")

	return api
}

func runPipeline(t *testing.T, api *apiServer, store cache.Store, outputPath string) *Summary {
	t.Helper()

	client := pokeapi.NewClient(pokeapi.ClientOptions{BaseURL: api.srv.URL})

	summary, err := Run(context.Background(), Options{
		API:        client,
		Store:      store,
		OutputPath: outputPath,
	})
	require.NoError(t, err)

	return summary
}

func TestRun_FullPipeline(t *testing.T) {
	api := newFixture(t)

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	outputPath := filepath.Join(t.TempDir(), "listing.txt")

	summary := runPipeline(t, api, store, outputPath)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 2, summary.Chains)
	assert.Equal(t, 2, summary.Families)
	assert.Zero(t, summary.SkippedTotal())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	// Meowth's family (dex 52) precedes Pichu's (first member dex 172);
	// variants follow their base form; Mega/Gmax/cosmetic forms are absent.
	assert.Equal(t, strings.Join([]string{
		"Meowth",
		"Meowth (Alola)",
		"Meowth (Galar)",
		"Persian",
		"Persian (Alola)",
		"Perrserker",
		"Pichu",
		"Pikachu",
		"Raichu",
		"Raichu (Alola)",
	}, "\n")+"\n", string(data))

	assert.NotContains(t, string(data), "Gmax")
	assert.NotContains(t, string(data), "Rock Star")
}

func TestRun_WarmCacheMakesNoSpeciesCalls(t *testing.T) {
	api := newFixture(t)

	dir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "listing.txt")

	store, err := cache.Open(dir)
	require.NoError(t, err)

	runPipeline(t, api, store, outputPath)
	require.NoError(t, store.Close())

	first, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	coldHits := api.speciesHits
	require.Positive(t, coldHits)

	// Fresh store over the same directory: everything resolves from disk
	warmStore, err := cache.Open(dir)
	require.NoError(t, err)

	runPipeline(t, api, warmStore, outputPath)

	assert.Equal(t, coldHits, api.speciesHits, "warm cache must suppress all species fetches")

	second, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, first, second, "warm-cache rerun must be byte-identical")
}

func TestRun_FailingChainIsSkipped(t *testing.T) {
	api := newFixture(t)
	api.broken["1"] = true

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	outputPath := filepath.Join(t.TempDir(), "listing.txt")

	summary := runPipeline(t, api, store, outputPath)

	assert.Equal(t, 1, summary.Skipped[SkipReasonNetwork])
	assert.Equal(t, 1, summary.Families)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "Meowth")
	assert.Contains(t, string(data), "Pikachu")
}

func TestRun_Limit(t *testing.T) {
	api := newFixture(t)

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	client := pokeapi.NewClient(pokeapi.ClientOptions{BaseURL: api.srv.URL})

	summary, err := Run(context.Background(), Options{
		API:        client,
		Store:      store,
		OutputPath: filepath.Join(t.TempDir(), "listing.txt"),
		Limit:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Chains)
	assert.Equal(t, 1, summary.Families)
}

func TestRun_ListFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	client := pokeapi.NewClient(pokeapi.ClientOptions{BaseURL: srv.URL})

	_, err = Run(context.Background(), Options{
		API:        client,
		Store:      store,
		OutputPath: filepath.Join(t.TempDir(), "listing.txt"),
	})
	assert.Error(t, err)
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	api := newFixture(t)

	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	client := pokeapi.NewClient(pokeapi.ClientOptions{BaseURL: api.srv.URL})

	_, err = Run(context.Background(), Options{
		API:        client,
		Store:      store,
		OutputPath: filepath.Join(t.TempDir(), "missing", "dir", "listing.txt"),
	})
	assert.Error(t, err)
}

func TestSkipReasonForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected SkipReason
	}{
		{"nil", nil, SkipReasonNone},
		{"not found", &pokeapi.NotFoundError{Resource: "evolution-chain", Name: "x"}, SkipReasonNotFound},
		{"network", &pokeapi.NetworkError{Operation: "get", URL: "x", StatusCode: 500}, SkipReasonNetwork},
		{"data shape", &pokeapi.DataShapeError{Resource: "evolution-chain", Name: "x", Reason: "bad"}, SkipReasonDataShape},
		{"other", context.Canceled, SkipReasonOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipReasonForError(tt.err))
		})
	}
}
