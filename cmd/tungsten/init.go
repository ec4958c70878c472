package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tungsten/internal/buildcfg"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path|name]",
		Short: "Initialize a new tungsten project",
		Long: `Initialize a new tungsten project by creating a manifest (tungsten.toml),
an entry point (main.tg) and the artifact directory. If [path|name] is omitted,
initializes the current directory. A non-existing name is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	st, err := os.Stat(target)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	case err != nil:
		return err
	case !st.IsDir():
		return fmt.Errorf("%q is not a directory", target)
	}

	cfg := buildcfg.Default()
	cfg.Name = projectName(target)

	manifestPath := filepath.Join(target, buildcfg.ManifestName)
	if err := buildcfg.Save(manifestPath, cfg); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("project already initialized: %s exists", manifestPath)
		}
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(target, cfg.OutDir), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.OutDir, err)
	}

	mainPath := filepath.Join(target, "main.tg")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainTG), 0o600); err != nil {
			return fmt.Errorf("failed to write main.tg: %w", err)
		}
		createdMain = true
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return nil
	}
	rel := target
	if r, err := filepath.Rel(wd, target); err == nil {
		rel = r
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Initialized tungsten project in %s\n", rel)
	fmt.Fprintf(w, "  - %s\n", buildcfg.ManifestName)
	if createdMain {
		fmt.Fprintf(w, "  - main.tg\n")
	} else {
		fmt.Fprintf(w, "  - main.tg (existing)\n")
	}
	return nil
}

// projectName derives the package name from the directory basename.
func projectName(dir string) string {
	name := strings.TrimSpace(filepath.Base(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "tungsten-project"
	}
	return name
}

const defaultMainTG = `func main() {
    var greeting = "Hello, tungsten!\n"
    |> greeting
}
`
