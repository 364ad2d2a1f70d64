// Package dexgen runs the full listing pipeline: list evolution chains,
// build each family through the cache-backed builder, order families by
// National Dex number and write the formatted listing.
package dexgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inovacc/dexr/internal/cache"
	"github.com/inovacc/dexr/internal/classify"
	"github.com/inovacc/dexr/internal/family"
	"github.com/inovacc/dexr/internal/output"
	"github.com/inovacc/dexr/internal/pokeapi"
)

// API is the PokeAPI surface the pipeline consumes; satisfied by
// [pokeapi.Client].
type API interface {
	ListEvolutionChains(ctx context.Context) ([]pokeapi.Ref, error)
	GetEvolutionChain(ctx context.Context, url string) (*pokeapi.EvolutionChain, error)
	GetSpecies(ctx context.Context, name string) (*pokeapi.Species, error)
}

// Options configures a pipeline run.
type Options struct {
	API   API
	Store cache.Store

	// OutputPath is the listing destination
	OutputPath string

	// Limit caps the number of evolution chains processed (0 = all)
	Limit int

	// Refresh bypasses cache reads, refetching every lookup
	Refresh bool

	Logger *slog.Logger
}

// Summary reports what one pipeline run did.
type Summary struct {
	RunID      string
	Chains     int
	Families   int
	Entries    int
	Skipped    map[SkipReason]int
	OutputPath string
	Duration   time.Duration
}

// SkippedTotal returns the number of chains skipped for any reason.
func (s *Summary) SkippedTotal() int {
	total := 0

	for _, n := range s.Skipped {
		total += n
	}

	return total
}

// Run executes the fetch -> classify -> group -> write pipeline. A chain
// that fails to fetch or parse is logged, counted and skipped; the run
// continues and writes a partial listing. Listing the chains, writing the
// output file and flushing the cache are fatal.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	start := time.Now()

	summary := &Summary{
		RunID:      uuid.New().String(),
		Skipped:    make(map[SkipReason]int),
		OutputPath: opts.OutputPath,
	}

	chains, err := opts.API.ListEvolutionChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evolution chains: %w", err)
	}

	if opts.Limit > 0 && len(chains) > opts.Limit {
		chains = chains[:opts.Limit]
	}

	summary.Chains = len(chains)

	logger.Info("processing evolution chains",
		slog.String("run_id", summary.RunID),
		slog.Int("chains", len(chains)),
	)

	builder := family.NewBuilder(opts.API, opts.Store, family.BuilderOptions{
		Refresh: opts.Refresh,
		Logger:  logger,
	})

	var families []*family.Family

	for i, ref := range chains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fam, err := builder.Build(ctx, ref.URL)
		if err != nil {
			reason := skipReasonForError(err)
			summary.Skipped[reason]++

			logger.Warn("skipping evolution chain",
				slog.Int("index", i+1),
				slog.String("url", ref.URL),
				slog.String("reason", reason.String()),
				slog.Any("error", err),
			)

			continue
		}

		if len(fam.Members) == 0 {
			continue
		}

		families = append(families, fam)
	}

	family.SortFamilies(families)

	var names []string

	for _, fam := range families {
		for _, member := range fam.Members {
			names = append(names, classify.DisplayName(member))
		}
	}

	summary.Families = len(families)
	summary.Entries = len(names)

	if err := output.WriteList(opts.OutputPath, names); err != nil {
		return nil, err
	}

	if err := opts.Store.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush cache: %w", err)
	}

	summary.Duration = time.Since(start)

	logger.Info("listing written",
		slog.String("path", opts.OutputPath),
		slog.Int("families", summary.Families),
		slog.Int("entries", summary.Entries),
		slog.Int("skipped", summary.SkippedTotal()),
		slog.Duration("duration", summary.Duration),
	)

	return summary, nil
}
