package symbols

import (
	"strings"

	"tungsten/internal/source"
	"tungsten/internal/token"
)

// Flags encode declaration properties for quick checks.
type Flags uint8

const (
	FlagNone Flags = 1 << iota
	FlagPub
	FlagConst
	FlagStatic
	FlagFunc
	FlagVariable
	FlagGlobal
)

var flagNames = [...]struct {
	f    Flags
	name string
}{
	{FlagNone, "none"},
	{FlagPub, "pub"},
	{FlagConst, "const"},
	{FlagStatic, "static"},
	{FlagFunc, "func"},
	{FlagVariable, "variable"},
	{FlagGlobal, "global"},
}

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Strings returns a slice of textual flag labels.
func (f Flags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			labels = append(labels, fn.name)
		}
	}
	return labels
}

func (f Flags) String() string {
	return strings.Join(f.Strings(), "|")
}

// Symbol describes a named entity available in a scope. Attribute values
// reuse the literal value union of the token package.
type Symbol struct {
	Name  source.StringID
	Scope ScopeID
	Span  source.Span
	Flags Flags
	Attrs map[source.StringID]token.Value
}
