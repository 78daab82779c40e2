// seam is a fuzzy text realignment and batch stitching tool.
// Relocates text spans in modified documents, joins overlapping batches.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/corey/seam/cmd/seam/cmd"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
