package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows workspace paths and the effective matching and stitching parameters.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := workspaceRoot()
	p := app.NewPaths(root)

	fmt.Println(boldStyle.Render("seam config"))
	fmt.Printf("  Workspace:  %s\n", root)
	fmt.Printf("  Data dir:   %s\n", p.Root)
	fmt.Printf("  DB:         %s\n", p.DB)
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, "seam.yaml")
	}
	fmt.Printf("  Config:     %s\n", cfgPath)
	fmt.Println()
	fmt.Println("  match:")
	fmt.Printf("    trigram_threshold:    %.2f\n", cfg.Match.TrigramThreshold)
	fmt.Printf("    min_confidence:       %.2f\n", cfg.Match.MinConfidence)
	fmt.Printf("    stride_percent:       %.2f\n", cfg.Match.StridePercent)
	fmt.Printf("    context_window_chars: %d\n", cfg.Match.ContextWindowChars)
	fmt.Println("  stitch:")
	fmt.Printf("    min_overlap_length:   %d\n", cfg.Stitch.MinOverlapLength)
	fmt.Printf("    max_overlap_percent:  %.2f\n", cfg.Stitch.MaxOverlapPercent)
	fmt.Printf("    overlap_threshold:    %.2f\n", cfg.Stitch.OverlapThreshold)
	fmt.Printf("    no_overlap_separator: %q\n", cfg.Stitch.NoOverlapSeparator)
	return nil
}
