package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = maxFuzzInput // ограничение для тестового корпуса
)

// builtinSeeds cover every literal grammar and the operator table.
var builtinSeeds = []string{
	"",
	"var x = 1\n",
	"func main() { |> 0 }\n",
	"1..10 1...2 a..=b 0.5 .5 1e10 1E-3 1_000_000 007",
	"18446744073709551616 1e400",
	"\"\\x41\\u0042\\u{43}\\u{10FFFF}\\n\\t\\\\\\\"\"",
	"\"\\uD800\" \"\\u{110000}\" \"\\q\" \"\\x4\" \"\\u{}\"",
	"\"line\\\ncontinued\" \"crlf\\\r\nok\"",
	"\"unterminated\n",
	"<<= >>= ... ..= == != <= >= && || -> :: $$ $ |>",
	"\xff\xfe é ∑ 日本",
	"true false truex _x __ x_1",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.tg файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".tg" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
