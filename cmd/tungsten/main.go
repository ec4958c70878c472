package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tungsten/internal/version"
)

// errHasErrors signals that diagnostics were already printed and the
// process must exit with status 1.
var errHasErrors = errors.New("compilation failed")

// pendingCleanup is set by PersistentPreRunE; runCleanup calls it once.
var pendingCleanup = func() {}

func runCleanup() {
	cleanup := pendingCleanup
	pendingCleanup = func() {}
	cleanup()
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tungsten",
		Short:         "Tungsten language compiler front end",
		Long:          `Tungsten turns source files into token streams and reports lexical diagnostics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			useColor, err := colorEnabled(cmd, os.Stdout)
			if err != nil {
				return err
			}
			color.NoColor = !useColor
			stopProfiling, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			cleanup, err := setupTracing(cmd)
			if err != nil {
				stopProfiling()
				return err
			}
			pendingCleanup = func() {
				cleanup()
				stopProfiling()
			}
			return nil
		},
	}
	cmd.Version = version.Version

	// Глобальные флаги
	pf := cmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")

	pf.String("trace", "", "write trace events to a file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for --trace-mode=ring|both")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 = off)")

	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	err := rootCmd.Execute()
	runCleanup()
	if err != nil {
		if !errors.Is(err, errHasErrors) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
