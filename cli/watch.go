package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/paystream/txproc/ledger"
)

type WatchCmd struct {
	File   string `help:"Transaction CSV filename." arg:"" type:"existingfile"`
	Format string `help:"Snapshot output format." enum:"csv,table" default:"table"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	target, err := filepath.Abs(cmd.File)
	if err != nil {
		return err
	}

	// Watch the directory rather than the file itself: editors replace
	// files on save, and a watch on the old inode would go quiet.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.replayOnce(ctx, globals)

	for {
		select {
		case <-sigCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}

			printInfof(ctx.Stderr, "%s changed, replaying", filepath.Base(target))
			cmd.replayOnce(ctx, globals)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// replayOnce runs a full replay of the watched file. Failures are reported
// and swallowed; the watch keeps going so a broken save can be fixed and
// saved again.
func (cmd *WatchCmd) replayOnce(ctx *kong.Context, globals *Globals) {
	f, err := os.Open(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}
	defer func() { _ = f.Close() }()

	eng := ledger.NewEngine()
	stats, err := replayStream(eng, f, globals.Verbose, ctx.Stderr)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	if err := renderSnapshots(ctx.Stdout, eng.Snapshots(), cmd.Format); err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	if globals.Verbose {
		printSuccess(ctx.Stderr, fmt.Sprintf("replayed %d records, rejected %d", stats.applied, stats.rejected))
	}
}
