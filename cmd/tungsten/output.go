package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tungsten/internal/diag"
	"tungsten/internal/diagfmt"
	"tungsten/internal/driver"
	"tungsten/internal/observ"
	"tungsten/internal/source"
)

// diagOutput collects the flags shared by commands that print diagnostics.
type diagOutput struct {
	format   string // pretty|json|short
	pathMode diagfmt.PathMode
	color    bool
	notes    bool
	timings  bool
	quiet    bool
}

func addDiagFlags(cmd *cobra.Command) {
	cmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json|short)")
	cmd.Flags().String("path-mode", "auto", "file path display (auto|absolute|relative|basename)")
	cmd.Flags().Bool("no-notes", false, "omit diagnostic notes")
}

func readDiagOutput(cmd *cobra.Command) (diagOutput, error) {
	var out diagOutput
	var err error
	if out.format, err = cmd.Flags().GetString("diag-format"); err != nil {
		return out, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch out.format {
	case "pretty", "json", "short":
	default:
		return out, fmt.Errorf("unknown diagnostics format: %s", out.format)
	}
	modeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return out, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(modeStr)
	if !ok {
		return out, fmt.Errorf("invalid --path-mode value %q", modeStr)
	}
	out.pathMode = mode
	noNotes, err := cmd.Flags().GetBool("no-notes")
	if err != nil {
		return out, fmt.Errorf("failed to get no-notes flag: %w", err)
	}
	out.notes = !noNotes
	if out.color, err = colorEnabled(cmd, os.Stderr); err != nil {
		return out, err
	}
	if out.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return out, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if out.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return out, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return out, nil
}

func readMaxDiagnostics(cmd *cobra.Command) (int, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return maxDiagnostics, nil
}

// writeDiagnostics renders bag to w. Timings go into the JSON document as an
// OBS201 entry and are printed as a table otherwise.
func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, out diagOutput, timer *observ.Timer, kind, path string) error {
	if out.format == "json" {
		if out.timings {
			driver.AppendTimings(bag, kind, path, timer)
		}
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         out.pathMode,
			IncludeNotes:     out.notes,
		})
	}

	if bag.Len() > 0 {
		var err error
		if out.format == "short" {
			err = diagfmt.Short(w, bag, fs, out.notes)
		} else {
			opts := diagfmt.DefaultPrettyOpts(out.color)
			opts.PathMode = out.pathMode
			opts.ShowNotes = out.notes
			emitter := diagfmt.NewEmitter(w, fs, opts)
			for _, d := range bag.Items() {
				emitter.Add(d)
			}
			err = emitter.Flush()
		}
		if err != nil {
			return err
		}
	}
	if out.timings && timer != nil {
		_, err := io.WriteString(w, timer.Summary())
		return err
	}
	return nil
}
