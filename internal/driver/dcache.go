package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"tungsten/internal/diag"
	"tungsten/internal/source"
	"tungsten/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// ErrCorruptCache reports a payload that does not fit the file it was stored for.
var ErrCorruptCache = errors.New("corrupt token cache entry")

// TokenCache хранит потоки токенов на диске, ключ: хеш содержимого файла
// вместе с опциями лексера. Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenPayload is the on-disk form of one lexed file. Text, positions and
// lexeme ids are not stored; they are rebuilt from the file content.
type TokenPayload struct {
	Schema uint16
	Path   string
	Tokens []cachedToken
	Diags  []cachedDiag
}

type cachedToken struct {
	_msgpack struct{} `msgpack:",as_array"`

	Kind  uint8
	Start uint32
	End   uint32
	VKind uint8
	Bits  uint64
	Str   string
}

type cachedDiag struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
	Label    string
	Notes    []string
}

// OpenTokenCache initializes and returns a disk cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache uses dir as the cache root, creating it if needed.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string { return c.dir }

func (c *TokenCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог по первым двум символам, чтобы не раздувать один каталог.
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *TokenCache) Put(key Digest, payload *TokenPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *TokenCache) Get(key Digest, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tokenCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "tokens"))
}

// Store caches the result of lexing file with opts.
func (c *TokenCache) Store(file *source.File, opts *Options, toks []token.Token, diags []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	return c.Put(combineDigest(file.Hash, opts.lexFlags()), encodePayload(file.Path, toks, diags))
}

// Load returns the cached tokens and diagnostics for file, or ok == false
// on a miss. Rebuilt tokens are interned into strs.
func (c *TokenCache) Load(file *source.File, opts *Options, strs *source.Interner) (toks []token.Token, diags []diag.Diagnostic, ok bool, err error) {
	if c == nil {
		return nil, nil, false, nil
	}
	var payload TokenPayload
	hit, err := c.Get(combineDigest(file.Hash, opts.lexFlags()), &payload)
	if err != nil || !hit {
		return nil, nil, false, err
	}
	toks, diags, err = decodePayload(file, &payload, strs)
	if err != nil {
		return nil, nil, false, err
	}
	return toks, diags, true, nil
}

func encodePayload(path string, toks []token.Token, diags []diag.Diagnostic) *TokenPayload {
	payload := &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   path,
		Tokens: make([]cachedToken, len(toks)),
		Diags:  make([]cachedDiag, len(diags)),
	}
	for i, tok := range toks {
		payload.Tokens[i] = cachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			VKind: uint8(tok.Value.Kind),
			Bits:  tok.Value.Bits,
			Str:   tok.Value.Str,
		}
	}
	for i, d := range diags {
		payload.Diags[i] = cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
			Label:    d.Label,
			Notes:    d.Notes,
		}
	}
	return payload
}

func decodePayload(file *source.File, payload *TokenPayload, strs *source.Interner) ([]token.Token, []diag.Diagnostic, error) {
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return nil, nil, err
	}
	tracker := source.NewTracker(file.Content)
	toks := make([]token.Token, len(payload.Tokens))
	var prevEnd uint32
	for i, ct := range payload.Tokens {
		kind := token.Kind(ct.Kind)
		if !kind.IsValid() || ct.Start > ct.End || ct.End > size || ct.Start < prevEnd {
			return nil, nil, fmt.Errorf("%w: token %d", ErrCorruptCache, i)
		}
		prevEnd = ct.End
		text := string(file.Content[ct.Start:ct.End])
		toks[i] = token.Token{
			Kind:   kind,
			Span:   source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Pos:    tracker.Advance(ct.Start),
			Text:   text,
			Lexeme: strs.Intern(text),
			Value:  token.Value{Kind: token.ValueKind(ct.VKind), Bits: ct.Bits, Str: ct.Str},
		}
	}
	diags := make([]diag.Diagnostic, len(payload.Diags))
	for i, cd := range payload.Diags {
		if cd.Start > cd.End || cd.End > size {
			return nil, nil, fmt.Errorf("%w: diagnostic %d", ErrCorruptCache, i)
		}
		diags[i] = diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
			Label:    cd.Label,
			Notes:    cd.Notes,
		}
	}
	return toks, diags, nil
}
