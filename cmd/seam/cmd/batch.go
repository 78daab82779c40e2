package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/app"
	"github.com/corey/seam/internal/domain/textmatch"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch <spans-dir> <document-file>",
	Short: "Realign a directory of spans against one document",
	Long:  "Reads every file in the directory as one span (lexical order), realigns all of them against the document in parallel, and prints per-span positions plus tier counts.",
	Args:  cobra.ExactArgs(2),
	RunE:  runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	names, needles, err := readSpanDir(args[0])
	if err != nil {
		return err
	}
	doc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	realigner := app.NewRealigner(cfg.MatchConfig())
	matches, stats := realigner.Run(needles, string(doc))

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Matches []textmatch.PositionMatch `json:"matches"`
			Stats   textmatch.BatchStats      `json:"stats"`
		}{matches, stats})
	}

	for i, m := range matches {
		fmt.Printf("%-24s %s\n", names[i], formatPosition(m))
	}
	fmt.Println()
	fmt.Print(formatStats(stats))
	return nil
}

// readSpanDir loads every regular, non-hidden file in dir as one span,
// sorted by name.
func readSpanDir(dir string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read spans dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	needles := make([]string, len(names))
	for i, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("read span %s: %w", name, err)
		}
		needles[i] = string(data)
	}
	return names, needles, nil
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit matches and stats as JSON")
}
