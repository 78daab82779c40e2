// Package app wires adapters and domain logic together: parallel batch
// realignment and resumable stitch sessions.
package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .seam/ workspace
// directory. All fields are pre-computed strings.
type Paths struct {
	Root string // .seam/
	DB   string // .seam/seam.db
	Out  string // .seam/out/
}

// NewPaths constructs all resolved paths from a workspace root directory.
func NewPaths(workspaceRoot string) *Paths {
	root := filepath.Join(workspaceRoot, ".seam")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "seam.db"),
		Out:  filepath.Join(root, "out"),
	}
}

// EnsureDirs creates all subdirectories under .seam/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.Root, p.Out} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
