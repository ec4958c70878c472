package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"tungsten/internal/diag"
	"tungsten/internal/diagfmt"
	"tungsten/internal/driver"
	"tungsten/internal/observ"
	"tungsten/internal/source"
	"tungsten/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.tg|dir|->",
		Short: "Tokenize a tungsten source file or directory",
		Long: `Tokenize breaks tungsten source into tokens and reports lexical diagnostics.
A directory is tokenized file by file in parallel; "-" reads from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "token output format (pretty|json|none)")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
	addLexFlags(cmd)
	addDiagFlags(cmd)
	return cmd
}

func addLexFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("lenient-escapes", false, "pass unknown escape sequences through instead of reporting E003")
	cmd.Flags().Bool("emit-eof", false, "append the EOF token to the output")
}

func readLexOptions(cmd *cobra.Command) (driver.Options, error) {
	var opts driver.Options
	var err error
	if opts.MaxDiagnostics, err = readMaxDiagnostics(cmd); err != nil {
		return opts, err
	}
	if opts.LenientEscapes, err = cmd.Flags().GetBool("lenient-escapes"); err != nil {
		return opts, fmt.Errorf("failed to get lenient-escapes flag: %w", err)
	}
	if opts.EmitEOF, err = cmd.Flags().GetBool("emit-eof"); err != nil {
		return opts, fmt.Errorf("failed to get emit-eof flag: %w", err)
	}
	return opts, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

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
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	if useCache {
		cache, cacheErr := driver.OpenTokenCache("tungsten")
		if cacheErr != nil {
			return fmt.Errorf("failed to open token cache: %w", cacheErr)
		}
		opts.Cache = cache
	}
	if out.timings {
		opts.Timer = observ.NewTimer()
	}

	if target == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res := driver.TokenizeSource(cmd.Context(), "<stdin>", content, opts)
		return finishFile(cmd, res, format, out, opts.Timer, "-")
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if st.IsDir() {
		return runTokenizeDir(cmd, target, opts, format, out)
	}

	res, err := driver.Tokenize(cmd.Context(), target, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return finishFile(cmd, res, format, out, opts.Timer, target)
}

func finishFile(cmd *cobra.Command, res *driver.TokenizeResult, format string, out diagOutput, timer *observ.Timer, path string) error {
	if err := writeTokens(cmd.OutOrStdout(), format, res.Tokens, res.FileSet); err != nil {
		return err
	}
	if err := writeDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, out, timer, "tokenize", path); err != nil {
		return err
	}
	if res.Bag.HasErrors() {
		return errHasErrors
	}
	return nil
}

func writeTokens(w io.Writer, format string, toks []token.Token, fs *source.FileSet) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(w, toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(w, toks)
	default:
		return nil
	}
}

func runTokenizeDir(cmd *cobra.Command, dir string, opts driver.Options, format string, out diagOutput) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	withUI, err := autoSwitch("ui", uiValue, os.Stdout)
	if err != nil {
		return err
	}

	dirOpts := driver.DirOptions{Options: opts, Jobs: jobs}
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	// токены печатаются после того, как TUI освободит stdout
	if withUI {
		files, listErr := driver.ListSources(dir)
		if listErr != nil {
			return fmt.Errorf("tokenization failed: %w", listErr)
		}
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), "tungsten tokenize", files, dir, dirOpts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, dirOpts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "json":
		files := make([]diagfmt.FileTokens, 0, len(results))
		for _, r := range results {
			files = append(files, diagfmt.FileTokens{Path: r.Path, Cached: r.Cached, Tokens: diagfmt.BuildTokenOutput(r.Tokens)})
		}
		if err := diagfmt.FormatFileTokensJSON(cmd.OutOrStdout(), files); err != nil {
			return err
		}
	case "pretty":
		for _, r := range results {
			if r.FileID == source.NoFileID {
				continue
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", r.Path); err != nil {
				return err
			}
			if err := diagfmt.FormatTokensPretty(cmd.OutOrStdout(), r.Tokens, fileSet); err != nil {
				return err
			}
		}
	}

	merged := mergeResultBags(results, opts.MaxDiagnostics)
	if err := writeDiagnostics(cmd.ErrOrStderr(), merged, fileSet, out, opts.Timer, "tokenize-dir", dir); err != nil {
		return err
	}
	if merged.HasErrors() {
		return errHasErrors
	}
	return nil
}

// mergeResultBags folds per-file bags into one in file order; maxDiagnostics
// caps the whole run, not each file.
func mergeResultBags(results []driver.TokenizeDirResult, maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		maxDiagnostics = math.MaxUint16
	}
	merged := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			if !merged.Add(d) {
				return merged
			}
		}
	}
	return merged
}
