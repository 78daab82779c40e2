package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "seam",
	Short: "seam — fuzzy text realignment and batch stitching",
	Long:  "Relocates text spans inside modified documents and stitches overlapping batch outputs into one document.",
}

var configPath string

// workspaceRoot returns the workspace root (cwd by default).
func workspaceRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// loadConfig resolves the effective config: --config if given, otherwise
// seam.yaml in the workspace root, otherwise engine defaults.
func loadConfig() (*config.AppConfig, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workspaceRoot(), "seam.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to seam.yaml (default: ./seam.yaml)")
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(stitchCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
