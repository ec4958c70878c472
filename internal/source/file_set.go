package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// FileSet owns every source buffer loaded during one compiler invocation.
// Ids are dense indexes into the set and are never reused.
type FileSet struct {
	files   []File
	byPath  map[string]FileID
	baseDir string
}

// NewFileSet creates an empty FileSet whose relative paths are resolved against the working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet that renders relative paths against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{byPath: make(map[string]FileID), baseDir: baseDir}
}

func (fileSet *FileSet) SetBaseDir(dir string) { fileSet.baseDir = dir }

// BaseDir returns the directory relative paths are rendered against; an
// unset base falls back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// Add stores already decoded content under a fresh id. Adding the same path
// twice keeps both files; path lookups see the newest.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	next, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %s is too large: %w", path, err))
	}
	f := File{
		ID:      FileID(next),
		Path:    cleanPath(path),
		Content: content,
		Lines:   lineStarts(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
	fileSet.files = append(fileSet.files, f)
	fileSet.byPath[f.Path] = f.ID
	return f.ID
}

// Load reads path from disk and adds its decoded content.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := decode(raw)
	return fileSet.Add(path, content, flags), nil
}

// AddSource adds in-memory content decoded the same way Load decodes files,
// so stdin and disk input yield identical spans.
func (fileSet *FileSet) AddSource(name string, raw []byte) FileID {
	content, flags := decode(raw)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// AddVirtual adds content as is; spans index exactly the given bytes (tests, fuzzing).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get panics on ids that did not come from this set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

func (fileSet *FileSet) Lookup(id FileID) (*File, bool) {
	if int(id) >= len(fileSet.files) {
		return nil, false
	}
	return &fileSet.files[id], true
}

// GetByPath returns the most recently added file for path.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fileSet.byPath[cleanPath(path)]
	if !ok {
		return nil, false
	}
	return &fileSet.files[id], true
}

// Resolve converts both ends of span into line/column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	return f.Position(span.Start), f.Position(span.End)
}

// Position maps a byte offset to its 1-based line and column. Offsets past
// the end of the content are clamped.
func (f *File) Position(off uint32) LineCol {
	off = min(off, uint32(len(f.Content))) // #nosec G115 -- checked in Add
	i, exact := slices.BinarySearch(f.Lines, off)
	if !exact {
		i--
	}
	return LineCol{Line: uint32(i) + 1, Col: off - f.Lines[i] + 1} // #nosec G115 -- i < len(Lines)
}

// LineCount returns the number of lines; a trailing '\n' does not open a new one.
func (f *File) LineCount() uint32 {
	n := uint32(len(f.Lines)) // #nosec G115 -- checked in Add
	if n > 1 && f.Lines[n-1] == uint32(len(f.Content)) {
		n--
	}
	return n
}

// LineBounds returns the [start, end) byte range of a 1-based line without its '\n'.
func (f *File) LineBounds(line uint32) (start, end uint32, ok bool) {
	if line == 0 || int(line) > len(f.Lines) {
		return 0, 0, false
	}
	start = f.Lines[line-1]
	end = uint32(len(f.Content)) // #nosec G115 -- checked in Add
	if int(line) < len(f.Lines) {
		end = f.Lines[line] - 1
	}
	return start, end, true
}

// GetLine returns the text of a 1-based line, or "" when it does not exist.
func (f *File) GetLine(line uint32) string {
	start, end, ok := f.LineBounds(line)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path for output. mode is one of absolute, relative,
// basename or auto; anything else yields the stored path.
func (f *File) FormatPath(mode, baseDir string) string {
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		out = BaseName(f.Path)
	case "auto":
		// длинные абсолютные пути сокращаем до имени файла
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			out = BaseName(f.Path)
		}
	}
	if err != nil || out == "" {
		return f.Path
	}
	return out
}
