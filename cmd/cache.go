package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/dexr/internal/cache"
	"github.com/inovacc/dexr/internal/model"
	"github.com/spf13/cobra"
)

var flagClearYes bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local lookup cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := model.LoadConfig()
		if err != nil {
			return err
		}

		dir := resolveCacheDir(cfg)

		store, err := cache.Open(dir)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}

		defer func() {
			_ = store.Close()
		}()

		species, variants := store.Len()

		_, _ = fmt.Fprintln(os.Stdout, titleStyle.Render("Cache status"))
		_, _ = fmt.Fprintln(os.Stdout, renderKV("directory", dir))
		_, _ = fmt.Fprintln(os.Stdout, renderKV("species entries", fmt.Sprintf("%d", species)))
		_, _ = fmt.Fprintln(os.Stdout, renderKV("variant entries", fmt.Sprintf("%d", variants)))

		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cache files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := model.LoadConfig()
		if err != nil {
			return err
		}

		dir := resolveCacheDir(cfg)

		if !flagClearYes && !promptConfirm(fmt.Sprintf("Delete the cache under %s? [y/N]: ", dir)) {
			_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")

			return nil
		}

		if err := cache.Clear(dir); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(os.Stdout, successStyle.Render("Cache cleared"))

		return nil
	},
}

func init() {
	cacheClearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip confirmation prompt")

	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
