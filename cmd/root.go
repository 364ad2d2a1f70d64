package cmd

import (
	"os"

	"github.com/inovacc/dexr/internal/application"
	"github.com/spf13/cobra"
)

var (
	flagVerbose  bool
	flagCacheDir string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A National Dex family listing generator",
	Long: `Dexr builds a National Dex-ordered list of Pokémon grouped by
evolutionary family, including regional variants and alternate forms that
are storable in HOME boxes. Data comes from PokeAPI and is cached locally
so repeat runs avoid the network.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "Cache directory (default: application data directory)")
}
