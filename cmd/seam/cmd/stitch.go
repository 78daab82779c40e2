package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/adapters/bbolt"
	"github.com/corey/seam/internal/app"
	"github.com/corey/seam/internal/domain/textmatch"
)

var (
	stitchSession string
	stitchOut     string
)

var stitchCmd = &cobra.Command{
	Use:   "stitch <batch-file>...",
	Short: "Stitch batch files into one document",
	Long:  "Joins the batches in argument order, collapsing duplicated overlap between consecutive batches. With --session the result is checkpointed after every batch and a later run resumes where it stopped.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStitch,
}

func runStitch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var result string
	if stitchSession != "" {
		result, err = stitchWithSession(args, cfg.StitchConfig())
	} else {
		result, err = stitchOnce(args, cfg.StitchConfig())
	}
	if err != nil {
		return err
	}

	if stitchOut != "" {
		if err := os.WriteFile(stitchOut, []byte(result), 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(result), stitchOut)
		return nil
	}
	fmt.Println(result)
	return nil
}

// stitchOnce joins the files in one pass, nothing persisted.
func stitchOnce(paths []string, cfg textmatch.StitchConfig) (string, error) {
	batches := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read batch: %w", err)
		}
		batches[i] = string(data)
	}
	return textmatch.Stitch(batches, cfg), nil
}

// stitchWithSession appends each file to a checkpointed session, skipping
// batches a previous run already applied.
func stitchWithSession(paths []string, cfg textmatch.StitchConfig) (string, error) {
	p := app.NewPaths(workspaceRoot())
	if err := p.EnsureDirs(); err != nil {
		return "", err
	}
	store, err := bbolt.NewStore(p.DB)
	if err != nil {
		return "", err
	}
	defer store.Close()

	mgr := app.NewSessionManager(store, cfg)
	sess, err := mgr.Open(stitchSession)
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		name := filepath.Base(path)
		if mgr.Seen(sess, name) {
			fmt.Fprintf(os.Stderr, "%-24s already applied, skipped\n", name)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read batch: %w", err)
		}
		match, err := mgr.Append(sess, name, string(data))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(os.Stderr, "%-24s %s\n", name, formatOverlap(match))
	}
	return sess.Result, nil
}

func init() {
	stitchCmd.Flags().StringVar(&stitchSession, "session", "", "resumable session id")
	stitchCmd.Flags().StringVarP(&stitchOut, "out", "o", "", "write the stitched document to a file")
}
