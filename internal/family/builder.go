package family

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/inovacc/dexr/internal/cache"
	"github.com/inovacc/dexr/internal/classify"
	"github.com/inovacc/dexr/internal/pokeapi"
)

// dexUnknown is the fallback sort value for names whose National Dex
// number cannot be resolved; such records still appear in the output, last
// within their stage.
const dexUnknown = 1<<31 - 1

// SpeciesFetcher is the subset of the PokeAPI client the builder needs.
type SpeciesFetcher interface {
	GetEvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error)
	GetSpecies(ctx context.Context, name string) (*pokeapi.Species, error)
}

// Family is one evolutionary family: every boxable species and variant
// connected by a shared evolution chain, in final output order.
type Family struct {
	// Dex is the National Dex number of the family's first member, the
	// family-level sort key
	Dex int

	// Members are API names ordered by (stage, region priority, dex, name)
	Members []string
}

// Builder assembles families from evolution chains, resolving species data
// through the cache before going to the API.
type Builder struct {
	api     SpeciesFetcher
	store   cache.Store
	refresh bool
	logger  *slog.Logger
}

// BuilderOptions configures a family builder.
type BuilderOptions struct {
	// Refresh bypasses cache reads so every lookup refetches (the cache is
	// still repopulated)
	Refresh bool

	Logger *slog.Logger
}

// NewBuilder creates a family builder on top of an API client and a cache store.
func NewBuilder(api SpeciesFetcher, store cache.Store, opts BuilderOptions) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Builder{
		api:     api,
		store:   store,
		refresh: opts.Refresh,
		logger:  logger,
	}
}

// Build fetches one evolution chain and produces its ordered family.
// Fetch and payload errors surface to the caller; the pipeline decides
// whether to skip the chain.
func (b *Builder) Build(ctx context.Context, chainURL string) (*Family, error) {
	chain, err := b.api.GetEvolutionChain(ctx, chainURL)
	if err != nil {
		return nil, err
	}

	stages, maxStage := b.collectStages(ctx, &chain.Chain)

	var members []string

	for stage := 0; stage <= maxStage; stage++ {
		forms := dedupe(stages[stage])

		boxable := forms[:0]

		for _, form := range forms {
			if classify.Boxable(form) {
				boxable = append(boxable, form)
			}
		}

		b.sortForms(ctx, boxable)

		members = append(members, boxable...)
	}

	if len(members) == 0 {
		return &Family{Dex: dexUnknown}, nil
	}

	return &Family{
		Dex:     b.dexNumber(ctx, members[0]),
		Members: members,
	}, nil
}

// collectStages walks the chain breadth-first, grouping species names by
// evolutionary stage (base = 0) and attaching each species' variants to
// its own stage.
func (b *Builder) collectStages(ctx context.Context, root *pokeapi.ChainLink) (map[int][]string, int) {
	stages := make(map[int][]string)
	maxStage := 0

	type queued struct {
		node  *pokeapi.ChainLink
		stage int
	}

	queue := []queued{{node: root, stage: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.stage > maxStage {
			maxStage = item.stage
		}

		name := item.node.Species.Name
		stages[item.stage] = append(stages[item.stage], name)
		stages[item.stage] = append(stages[item.stage], b.variants(ctx, name)...)

		for i := range item.node.EvolvesTo {
			queue = append(queue, queued{node: &item.node.EvolvesTo[i], stage: item.stage + 1})
		}
	}

	return stages, maxStage
}

// variants returns the boxable variant forms of a species, consulting the
// cache first. A species whose lookup fails contributes no variants; the
// base form still goes through.
func (b *Builder) variants(ctx context.Context, name string) []string {
	if !b.refresh {
		if cached, ok := b.store.Variants(name); ok {
			return cached
		}
	}

	species, err := b.api.GetSpecies(ctx, name)
	if err != nil {
		b.logger.Warn("failed to fetch variants",
			slog.String("species", name),
			slog.Any("error", err),
		)

		return nil
	}

	var variants []string

	for _, variant := range species.VariantNames() {
		if classify.Boxable(variant) {
			variants = append(variants, variant)
		}
	}

	if dex, ok := species.NationalDexNumber(); ok {
		b.store.PutDexNumber(name, dex)
	}

	b.store.PutVariants(name, variants)

	return variants
}

// regionPriority orders variant forms directly after their base form.
var regionPriority = map[string]int{
	"":              0,
	"alola":         1,
	"galar":         2,
	"hisui":         3,
	"paldea":        4,
	"white-striped": 5,
	"blue-striped":  6,
	"red-striped":   7,
	"totem":         8,
}

const regionPriorityOther = 99

// sortForms orders the forms of a single stage by
// (region priority, national dex, name).
func (b *Builder) sortForms(ctx context.Context, forms []string) {
	type key struct {
		priority int
		dex      int
	}

	keys := make(map[string]key, len(forms))

	for _, form := range forms {
		keys[form] = key{
			priority: formRegionPriority(form),
			dex:      b.dexNumber(ctx, form),
		}
	}

	sort.SliceStable(forms, func(i, j int) bool {
		a, c := keys[forms[i]], keys[forms[j]]

		if a.priority != c.priority {
			return a.priority < c.priority
		}

		if a.dex != c.dex {
			return a.dex < c.dex
		}

		return forms[i] < forms[j]
	})
}

func formRegionPriority(name string) int {
	// Perrserker is a Galarian evolution without a name suffix
	if name == "perrserker" {
		return regionPriority["galar"]
	}

	parts := strings.Split(name, "-")
	region := ""

	if len(parts) > 1 {
		region = strings.Join(parts[1:], "-")
	}

	if priority, ok := regionPriority[region]; ok {
		return priority
	}

	return regionPriorityOther
}

// dexNumber resolves a form's National Dex number through the cache,
// normalizing form suffixes down to the base species when needed. An
// unresolvable number falls back to dexUnknown with a warning rather than
// dropping the record.
func (b *Builder) dexNumber(ctx context.Context, name string) int {
	if !b.refresh {
		if dex, ok := b.store.DexNumber(name); ok {
			return dex
		}
	}

	normalized := classify.NormalizeSpecies(name)

	if normalized != name {
		dex := b.dexNumber(ctx, normalized)
		b.store.PutDexNumber(name, dex)

		return dex
	}

	species, err := b.api.GetSpecies(ctx, name)
	if err != nil {
		b.logger.Warn("using fallback dex number",
			slog.String("species", name),
			slog.Any("error", err),
		)

		b.store.PutDexNumber(name, dexUnknown)

		return dexUnknown
	}

	dex, ok := species.NationalDexNumber()
	if !ok {
		b.logger.Warn("species has no national dex entry",
			slog.String("species", name),
		)

		b.store.PutDexNumber(name, dexUnknown)

		return dexUnknown
	}

	b.store.PutDexNumber(name, dex)

	return dex
}

// SortFamilies orders families by the National Dex number of their first
// member, name-tiebroken for determinism.
func SortFamilies(families []*Family) {
	sort.SliceStable(families, func(i, j int) bool {
		if families[i].Dex != families[j].Dex {
			return families[i].Dex < families[j].Dex
		}

		return firstMember(families[i]) < firstMember(families[j])
	})
}

func firstMember(f *Family) string {
	if len(f.Members) == 0 {
		return ""
	}

	return f.Members[0]
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]

	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true

		out = append(out, name)
	}

	return out
}
