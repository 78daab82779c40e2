package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/seam/internal/adapters/bbolt"
	"github.com/corey/seam/internal/adapters/fsnotify"
	"github.com/corey/seam/internal/app"
)

var watchSession string

var watchCmd = &cobra.Command{
	Use:   "watch <drop-dir>",
	Short: "Stitch batch files as they land in a directory",
	Long:  "Applies the files already in the directory (lexical order), then watches for new ones and stitches each into the session as it arrives. Ctrl-C stops the watch; the session checkpoint keeps the result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := app.NewPaths(workspaceRoot())
	if err := p.EnsureDirs(); err != nil {
		return err
	}
	store, err := bbolt.NewStore(p.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	mgr := app.NewSessionManager(store, cfg.StitchConfig())
	sess, err := mgr.Open(watchSession)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	fmt.Printf("watching %s (session %q, %d batches applied)\n", args[0], sess.ID, sess.BatchesApplied)

	dw := app.NewDropWatcher(mgr, watcher)
	events, err := dw.Run(sess, args[0])
	if err != nil {
		watcher.Stop()
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case ev := <-events:
			if ev.Err != nil {
				fmt.Fprintf(os.Stderr, "%-24s error: %v\n", ev.BatchName, ev.Err)
				continue
			}
			fmt.Printf("%-24s %s\n", ev.BatchName, formatOverlap(ev.Match))
		case <-sigs:
			if err := watcher.Stop(); err != nil {
				return err
			}
			// Let any in-flight backlog ingestion finish before reading
			// the session for the summary.
			drainEvents(events)
			fmt.Printf("\nstopped. %d batches applied, %d bytes stitched\n",
				sess.BatchesApplied, len(sess.Result))
			return nil
		}
	}
}

// drainEvents consumes buffered join events until the channel goes quiet.
func drainEvents(events <-chan app.JoinEvent) {
	for {
		select {
		case ev := <-events:
			if ev.Err != nil {
				fmt.Fprintf(os.Stderr, "%-24s error: %v\n", ev.BatchName, ev.Err)
				continue
			}
			fmt.Printf("%-24s %s\n", ev.BatchName, formatOverlap(ev.Match))
		case <-time.After(250 * time.Millisecond):
			return
		}
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchSession, "session", "", "resumable session id (required)")
	_ = watchCmd.MarkFlagRequired("session")
}
