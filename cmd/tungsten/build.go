package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tungsten/internal/buildcfg"
	"tungsten/internal/driver"
	"tungsten/internal/observ"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] file.tg",
		Short: "Run the compiler front end on a file",
		Long: `Build validates the input file and the output directory, tokenizes the input
and prints its tokens. Settings come from the nearest tungsten.toml; flags
override them.`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
	cmd.Flags().Uint8P("opt-level", "O", 0, "optimization level (0-3)")
	cmd.Flags().String("out-dir", "target", "artifact directory (must exist)")
	cmd.Flags().String("target", "", "target triple (default: host)")
	cmd.Flags().String("format", "pretty", "token output format (pretty|json|none)")
	addLexFlags(cmd)
	addDiagFlags(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := buildConfigFromFlags(cmd, filepath.Dir(input))
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "none":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	out, err := readDiagOutput(cmd)
	if err != nil {
		return err
	}
	opts, err := readLexOptions(cmd)
	if err != nil {
		return err
	}
	if out.timings {
		opts.Timer = observ.NewTimer()
	}

	res, err := driver.Build(cmd.Context(), driver.BuildOptions{Options: opts, Input: input, Config: cfg})
	if err != nil {
		return err
	}
	if err := writeTokens(cmd.OutOrStdout(), format, res.Tokens, res.FileSet); err != nil {
		return err
	}
	if err := writeDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, out, opts.Timer, "build", input); err != nil {
		return err
	}
	if res.Bag.HasErrors() {
		return errHasErrors
	}
	if !out.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %s for %s (-O%d, %d tokens)\n",
			input, res.Config.Target, res.Config.OptLevel, len(res.Tokens))
	}
	return nil
}

// buildConfigFromFlags loads the manifest nearest to dir and applies the
// flags the user set explicitly.
func buildConfigFromFlags(cmd *cobra.Command, dir string) (buildcfg.Config, error) {
	cfg, err := buildcfg.Discover(dir)
	if err != nil {
		return buildcfg.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("opt-level") {
		level, err := flags.GetUint8("opt-level")
		if err != nil {
			return cfg, fmt.Errorf("failed to get opt-level flag: %w", err)
		}
		if err := cfg.SetOptLevel(level); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("target") {
		target, err := flags.GetString("target")
		if err != nil {
			return cfg, fmt.Errorf("failed to get target flag: %w", err)
		}
		if err := cfg.SetTarget(target); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("out-dir") {
		outDir, err := flags.GetString("out-dir")
		if err != nil {
			return cfg, fmt.Errorf("failed to get out-dir flag: %w", err)
		}
		// флаг задаётся относительно текущей директории, а не манифеста
		if !filepath.IsAbs(outDir) && cfg.Root != "" {
			if abs, absErr := filepath.Abs(outDir); absErr == nil {
				outDir = abs
			}
		}
		cfg.OutDir = outDir
	}
	return cfg, nil
}
