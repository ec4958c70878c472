package source

import (
	"slices"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		flags FileFlags
	}{
		{"plain", "plain", 0},
		{"\xEF\xBB\xBFx", "x", FileHadBOM},
		{"a\r\nb\rc", "a\nb\rc", FileNormalizedCRLF},
		{"\xEF\xBB\xBF\r\n", "\n", FileHadBOM | FileNormalizedCRLF},
		// BOM не в начале не трогаем
		{"x\xEF\xBB\xBF", "x\xEF\xBB\xBF", 0},
	}
	for _, tt := range tests {
		got, flags := decode([]byte(tt.in))
		if string(got) != tt.want || flags != tt.flags {
			t.Errorf("decode(%q) = %q, %b; want %q, %b", tt.in, got, flags, tt.want, tt.flags)
		}
	}
}

func TestLineStarts(t *testing.T) {
	tests := map[string][]uint32{
		"":          {0},
		"abc":       {0},
		"a\n":       {0, 2},
		"a\nbb\n\nc": {0, 2, 5, 6},
	}
	for in, want := range tests {
		if got := lineStarts([]byte(in)); !slices.Equal(got, want) {
			t.Errorf("lineStarts(%q) = %v, want %v", in, got, want)
		}
	}
}
