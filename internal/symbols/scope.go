package symbols

import "tungsten/internal/source"

// ScopeKind says what opened a scope.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeGlobal
	ScopeFunction
	ScopeBlock
)

var scopeKindNames = [...]string{"invalid", "global", "function", "block"}

func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return scopeKindNames[ScopeInvalid]
}

// Scope is one level of the name table. Parent and Children are arena ids,
// so scopes never own each other; the root has Parent == NoScopeID.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Span     source.Span
	Children []ScopeID

	// Declared is in declaration order; byName maps a name to its first
	// declaration.
	Declared []SymbolID
	byName   map[source.StringID]SymbolID
}
