package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tungsten/internal/diag"
	"tungsten/internal/source"
	"tungsten/internal/token"
	"tungsten/internal/trace"
)

// SourceExt is the extension of tungsten source files.
const SourceExt = ".tg"

// DirOptions extend Options for directory runs.
type DirOptions struct {
	Options
	// Jobs limits concurrent lexers; <= 0 means GOMAXPROCS.
	Jobs     int
	Progress ProgressSink
}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу, как его нашёл обход
	FileID source.FileID // source.NoFileID, если файл не загрузился
	Tokens []token.Token
	Bag    *diag.Bag
	Cached bool
}

// ListSources возвращает отсортированный список всех *.tg файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.tg файлы в директории параллельно.
// Every file gets its own lexer and Bag; lexemes go into one shared interner.
// Results are in ListSources order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	if opts.Strings == nil {
		opts.Strings = source.NewInterner()
	}

	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "tokenize-dir", trace.CurrentSpan(ctx).SpanID)
	defer root.WithExtra("files", strconv.Itoa(len(files))).End(dir)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: root.ID()})

	// FileSet не потокобезопасен, поэтому загружаем файлы заранее.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		emit(opts.Progress, ProgressEvent{File: path, Stage: StageLoad, Status: StatusQueued})
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := newBag(opts.MaxDiagnostics)
				bag.Add(loadErrorDiagnostic(path, loadErr))
				results[i] = TokenizeDirResult{Path: path, FileID: source.NoFileID, Bag: bag}
				trace.Point(tracer, trace.ScopeFile, "load-failed", path, root.ID())
				emit(opts.Progress, ProgressEvent{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			emit(opts.Progress, ProgressEvent{File: path, Stage: StageLex, Status: StatusWorking})
			res := tokenizeFile(gctx, fileSet, fileSet.Get(fileIDs[i]), opts.Options)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileIDs[i],
				Tokens: res.Tokens,
				Bag:    res.Bag,
				Cached: res.Cached,
			}

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			stage := StageLex
			if res.Cached {
				stage = StageCache
			}
			emit(opts.Progress, ProgressEvent{File: path, Stage: stage, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
