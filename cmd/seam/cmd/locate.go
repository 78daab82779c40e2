package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/domain/textmatch"
)

var (
	locateIndex int
	locateTotal int
)

var locateCmd = &cobra.Command{
	Use:   "locate <span-file> <document-file>",
	Short: "Find a text span in a document",
	Long:  "Locates the span inside the document: exact match first, then fuzzy trigram scan, then a proportional estimate. Prints the byte range, tier, and confidence.",
	Args:  cobra.ExactArgs(2),
	RunE:  runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	span, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read span: %w", err)
	}
	doc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	m := textmatch.Locate(string(span), string(doc), locateIndex, locateTotal, cfg.MatchConfig())
	fmt.Println(formatPosition(m))
	if m.ContextBefore != "" || m.ContextAfter != "" {
		fmt.Printf("  before: %q\n", m.ContextBefore)
		fmt.Printf("  after:  %q\n", m.ContextAfter)
	}
	return nil
}

func init() {
	locateCmd.Flags().IntVar(&locateIndex, "index", 0, "span position within its batch")
	locateCmd.Flags().IntVar(&locateTotal, "total", 1, "batch size, for the proportional fallback")
}
