package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexNonASCIIChar        Code = 1
	LexUnterminatedString  Code = 2
	LexInvalidEscape       Code = 3
	LexIllegalChar         Code = 4
	LexUnexpectedEnd       Code = 5
	LexInvalidUnicode      Code = 6
	LexNumberOverflow      Code = 7

	// Ввод-вывод
	IOLoadFileError Code = 100
	IOCacheError    Code = 101

	// Observability
	ObsInfo    Code = 200
	ObsTimings Code = 201
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexNonASCIIChar:       "Non-ASCII character",
		LexUnterminatedString: "Unterminated string literal",
		LexInvalidEscape:      "Invalid escape sequence",
		LexIllegalChar:        "Illegal character",
		LexUnexpectedEnd:      "Unexpected end of input",
		LexInvalidUnicode:     "Invalid unicode codepoint",
		LexNumberOverflow:     "Numeric literal out of range",
		IOLoadFileError:       "I/O load file error",
		IOCacheError:          "Token cache error",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
	}
)

// ID returns the stable short form used in rendered output, e.g. "E002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic < 100:
		return fmt.Sprintf("E%03d", ic)
	case ic < 200:
		return fmt.Sprintf("IO%03d", ic)
	case ic < 300:
		return fmt.Sprintf("OBS%03d", ic)
	}
	return "E000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// IsLexical reports whether the code is produced by the tokenizer.
func (c Code) IsLexical() bool {
	return c >= LexNonASCIIChar && c <= LexNumberOverflow
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
