package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"golang.org/x/term"

	"github.com/paystream/txproc/ledger"
	"github.com/paystream/txproc/output"
	"github.com/paystream/txproc/stream"
	"github.com/paystream/txproc/telemetry"
)

type ReplayCmd struct {
	File   FileOrStdin `help:"Transaction CSV filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output string      `short:"o" help:"Write the snapshot CSV to this file instead of stdout." type:"path"`
	Format string      `help:"Snapshot output format (auto picks table on a terminal, csv otherwise)." enum:"auto,csv,table" default:"auto"`
}

func (cmd *ReplayCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var replayTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				replayTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		replayTimer = collector.Start(fmt.Sprintf("replay %s", filepath.Base(cmd.File.Filename)))

		defer reportTelemetry()
	}

	in, err := cmd.File.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	eng := ledger.NewEngine()

	applyTimer := telemetry.StartTimer(runCtx, "decode and apply")
	stats, err := replayStream(eng, in, globals.Verbose, ctx.Stderr)
	applyTimer.End()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		reportTelemetry()
		return NewCommandError(1)
	}

	renderTimer := telemetry.StartTimer(runCtx, "render snapshot")
	defer renderTimer.End()

	snaps := eng.Snapshots()

	if cmd.Output != "" {
		if err := cmd.writeFile(ctx, snaps); err != nil {
			return err
		}
	} else if err := renderSnapshots(ctx.Stdout, snaps, cmd.resolveFormat()); err != nil {
		return err
	}

	if globals.Verbose {
		printSuccess(ctx.Stderr, fmt.Sprintf("replayed %d records, rejected %d", stats.applied, stats.rejected))
	}

	return nil
}

// writeFile writes the snapshot CSV to cmd.Output, asking before clobbering
// an existing file.
func (cmd *ReplayCmd) writeFile(ctx *kong.Context, snaps []ledger.Snapshot) error {
	if _, err := os.Stat(cmd.Output); err == nil {
		ok, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Output))
		if err != nil {
			return err
		}
		if !ok {
			printInfof(ctx.Stderr, "left %s untouched", cmd.Output)
			return nil
		}
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := stream.WriteCSV(f, snaps); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("wrote %d account(s) to %s", len(snaps), cmd.Output))
	return nil
}

// resolveFormat maps "auto" to table on a terminal and csv everywhere else,
// so piped output stays machine-readable.
func (cmd *ReplayCmd) resolveFormat() string {
	if cmd.Format != "auto" {
		return cmd.Format
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "table"
	}
	return "csv"
}

type replayStats struct {
	applied  int
	rejected int
}

// replayStream feeds every record from in through the engine, in input
// order. Record-level failures are logged (when verbose) and skipped; a
// structural decode failure aborts and is returned.
func replayStream(eng *ledger.Engine, in io.Reader, verbose bool, stderr io.Writer) (replayStats, error) {
	var stats replayStats

	reader := stream.NewReader(in)
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			if !stream.Recoverable(err) {
				return stats, err
			}
			stats.rejected++
			if verbose {
				printError(stderr, err.Error())
			}
			continue
		}

		if verbose {
			printInfof(stderr, "row %d: %s", reader.Row(), repr.String(rec))
		}

		if err := eng.Apply(rec); err != nil {
			stats.rejected++
			if verbose {
				printError(stderr, fmt.Sprintf("row %d: %v", reader.Row(), err))
			}
			continue
		}
		stats.applied++
	}
}

// renderSnapshots writes snaps to w in the requested format.
func renderSnapshots(w io.Writer, snaps []ledger.Snapshot, format string) error {
	if format == "table" {
		return stream.WriteTable(w, snaps)
	}
	return stream.WriteCSV(w, snaps)
}
