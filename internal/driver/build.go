package driver

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tungsten/internal/buildcfg"
	"tungsten/internal/trace"
)

var (
	// ErrNotExist is wrapped when the input file or output directory is missing.
	ErrNotExist = errors.New("does not exist")
	// ErrNotFile is returned when the input path is a directory.
	ErrNotFile = errors.New("input path does not point to a file")
	// ErrNotDir is returned when the output path is not a directory.
	ErrNotDir = errors.New("output path does not point to a directory")
)

// BuildOptions describe one `tungsten build` invocation.
type BuildOptions struct {
	Options
	Input  string
	Config buildcfg.Config
}

// BuildResult is the outcome of the front end; code generation does not exist yet.
type BuildResult struct {
	*TokenizeResult
	Config buildcfg.Config
}

// Build validates the input file and artifact directory, then lexes the input.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "build", trace.CurrentSpan(ctx).SpanID)
	defer span.End(opts.Input)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	in, err := checkPath(opts.Input, "Input file")
	if err != nil {
		return nil, err
	}
	outDir := opts.Config.ArtifactDir()
	out, err := checkPath(outDir, "Output directory")
	if err != nil {
		return nil, err
	}
	if in.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFile, opts.Input)
	}
	if !out.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, outDir)
	}

	span.WithExtra("target", opts.Config.Target.String()).
		WithExtra("opt-level", fmt.Sprint(opts.Config.OptLevel))

	res, err := Tokenize(ctx, opts.Input, opts.Options)
	if err != nil {
		return nil, err
	}
	return &BuildResult{TokenizeResult: res, Config: opts.Config}, nil
}

func checkPath(path, what string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return info, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%s %w: %s", what, ErrNotExist, path)
	default:
		return nil, fmt.Errorf("failed to check existence of %s: %w", what, err)
	}
}
