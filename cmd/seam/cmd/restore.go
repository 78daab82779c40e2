package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/domain/textmatch"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <annotation.json> <document-file>",
	Short: "Relocate a stored annotation in a changed document",
	Long:  "Reads a stored annotation (text plus surrounding context, JSON) and finds where it now lives in the current version of the document.",
	Args:  cobra.ExactArgs(2),
	RunE:  runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read annotation: %w", err)
	}
	var stored textmatch.StoredAnnotation
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parse annotation: %w", err)
	}
	doc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	m, err := textmatch.Restore(stored, string(doc))
	if err != nil {
		return err
	}
	fmt.Println(formatPosition(m))
	return nil
}
