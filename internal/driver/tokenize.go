package driver

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"tungsten/internal/diag"
	"tungsten/internal/lexer"
	"tungsten/internal/observ"
	"tungsten/internal/source"
	"tungsten/internal/token"
	"tungsten/internal/trace"
)

// Options control one tokenization run.
type Options struct {
	// MaxDiagnostics caps each file's Bag; <= 0 means no practical limit.
	MaxDiagnostics int
	LenientEscapes bool
	EmitEOF        bool
	// Cache is optional; nil disables the on-disk token cache.
	Cache *TokenCache
	// Strings is shared by every file of a run; nil allocates one.
	Strings *source.Interner
	// Timer collects --timings phases when set.
	Timer *observ.Timer
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Strings *source.Interner
	Cached  bool
}

// Tokenize loads path and lexes it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	parent := trace.CurrentSpan(ctx).SpanID
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "load", parent)
	fileID, err := fs.Load(path)
	span.End(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource lexes in-memory content registered under name. The content
// is decoded like a file on disk (BOM stripped, CRLF folded).
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddSource(name, content)
	return tokenizeFile(ctx, fs, fs.Get(id), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	strs := opts.Strings
	if strs == nil {
		strs = source.NewInterner()
	}
	bag := newBag(opts.MaxDiagnostics)
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag, Strings: strs}

	var done func(string)
	if opts.Timer != nil {
		done = opts.Timer.Track("lex " + file.Path)
	}
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.CurrentSpan(ctx).SpanID)

	toks, diags, hit, err := opts.Cache.Load(file, &opts, strs)
	if err != nil {
		bag.Add(cacheWarning(file, err))
	}
	if hit {
		res.Tokens, res.Cached = toks, true
		for _, d := range diags {
			bag.Add(d)
		}
		span.WithExtra("cache", "hit")
	} else {
		// лексер пишет в неограниченный bag: в кеш уходит полный набор,
		// а MaxDiagnostics применяется только к результату
		all := diag.NewBag(math.MaxUint16)
		lx := lexer.New(file, lexer.Options{
			Reporter:       diag.NewDedupReporter(diag.BagReporter{Bag: all}),
			Strings:        strs,
			EmitEOF:        opts.EmitEOF,
			LenientEscapes: opts.LenientEscapes,
		})
		res.Tokens = lx.All()
		for _, d := range all.Items() {
			bag.Add(d)
		}
		if opts.Cache != nil {
			if err := opts.Cache.Store(file, &opts, res.Tokens, lexicalOnly(all.Items())); err != nil {
				bag.Add(cacheWarning(file, err))
			}
		}
	}

	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).
		WithExtra("diags", strconv.Itoa(bag.Len())).
		End(file.Path)
	if done != nil {
		done(fmt.Sprintf("%d tokens", len(res.Tokens)))
	}
	return res
}

func newBag(max int) *diag.Bag {
	if max <= 0 {
		max = math.MaxUint16
	}
	return diag.NewBag(max)
}

// lexicalOnly drops cache warnings so a stale warning is never replayed.
func lexicalOnly(items []diag.Diagnostic) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(items))
	for _, d := range items {
		if d.Code.IsLexical() {
			out = append(out, d)
		}
	}
	return out
}

func cacheWarning(file *source.File, err error) diag.Diagnostic {
	return diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID},
		"token cache unavailable: "+err.Error())
}

func loadErrorDiagnostic(path string, err error) diag.Diagnostic {
	return diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFileID}, "failed to load file: "+err.Error()).
		WithNote(path)
}
