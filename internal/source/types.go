package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes how the file content was obtained.
	FileFlags uint8
)

// NoFileID marks diagnostics that are not tied to any loaded file.
const NoFileID FileID = 1<<32 - 1

const (
	// FileVirtual marks content added from memory (stdin, tests, fuzzing).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is an immutable source buffer plus the metadata needed to render positions.
// Content is never mutated after the file has been added to a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Lines   []uint32 // start offset of every line, Lines[0] == 0
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position; both fields are 1-based and Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
