package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/inovacc/dexr/internal/cache"
	"github.com/inovacc/dexr/internal/dexgen"
	"github.com/inovacc/dexr/internal/model"
	"github.com/inovacc/dexr/internal/pokeapi"
	"github.com/spf13/cobra"
)

var (
	flagOutput  string
	flagDelay   time.Duration
	flagLimit   int
	flagRefresh bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the family-ordered listing",
	Long: `Generate fetches every evolution chain from PokeAPI, groups species
into evolutionary families with their boxable variants, and writes the
National Dex-ordered listing to a text file, one name per line.

Species and variant lookups are cached locally; a warm cache run only
fetches the evolution chains themselves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := model.LoadConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("output") {
			cfg.OutputPath = flagOutput
		}

		if cmd.Flags().Changed("delay") {
			cfg.RequestDelay = flagDelay
		}

		outputPath, err := expandPath(cfg.OutputPath)
		if err != nil {
			return err
		}

		logger := newLogger()

		store, err := cache.Open(resolveCacheDir(cfg))
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}

		defer func() {
			_ = store.Close()
		}()

		client := pokeapi.NewClient(pokeapi.ClientOptions{
			BaseURL: cfg.APIBaseURL,
			Delay:   cfg.RequestDelay,
			Timeout: cfg.HTTPTimeout,
			Logger:  logger,
		})

		summary, err := dexgen.Run(cmd.Context(), dexgen.Options{
			API:        client,
			Store:      store,
			OutputPath: outputPath,
			Limit:      flagLimit,
			Refresh:    flagRefresh,
			Logger:     logger,
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprint(os.Stdout, renderSummary(summary))

		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "pokedex_by_family.txt", "Output file path")
	generateCmd.Flags().DurationVar(&flagDelay, "delay", 200*time.Millisecond, "Fixed pause between API requests")
	generateCmd.Flags().IntVar(&flagLimit, "limit", 0, "Process at most N evolution chains (0 = all)")
	generateCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Ignore cached lookups and refetch everything")

	rootCmd.AddCommand(generateCmd)
}
