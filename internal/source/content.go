package source

import (
	"bytes"
	"path/filepath"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode strips a leading UTF-8 BOM and folds CRLF pairs into LF. A lone CR
// is kept; the lexer treats it as whitespace.
func decode(raw []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(raw, utf8BOM); ok {
		raw, flags = rest, flags|FileHadBOM
	}
	if bytes.Contains(raw, []byte("\r\n")) {
		raw, flags = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n")), flags|FileNormalizedCRLF
	}
	return raw, flags
}

// lineStarts returns the offset of the first byte of every line. The result
// always begins with 0; a trailing '\n' yields a final empty line.
func lineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, bytes.Count(content, []byte{'\n'})+1)
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return starts
		}
		off += i + 1
		starts = append(starts, uint32(off)) // #nosec G115 -- content size is checked in FileSet.Add
	}
}

func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
