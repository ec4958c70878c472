package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"tungsten/internal/source"
	"tungsten/internal/token"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope and symbol arenas. Nothing in the lexer uses
// it; it is the home for names once a parser exists.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
	root    ScopeID
}

// NewTable builds a fresh table with a global root scope.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
	t.root = t.Scopes.New(ScopeGlobal, NoScopeID, source.Span{})
	return t
}

// Root returns the global scope.
func (t *Table) Root() ScopeID { return t.root }

// Enter opens a child scope of parent.
func (t *Table) Enter(parent ScopeID, kind ScopeKind, span source.Span) ScopeID {
	if t.Scopes.Get(parent) == nil {
		parent = t.root
	}
	return t.Scopes.New(kind, parent, span)
}

// Declare adds name to scope. When the scope already holds the name the
// existing symbol is returned with ok == false and nothing changes.
func (t *Table) Declare(scope ScopeID, name source.StringID, span source.Span, flags Flags) (id SymbolID, ok bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	if prev, exists := sc.byName[name]; exists {
		return prev, false
	}
	if scope == t.root {
		flags |= FlagGlobal
	}
	id = t.Symbols.New(&Symbol{
		Name:  name,
		Scope: scope,
		Span:  span,
		Flags: flags,
	})
	sc.byName[name] = id
	sc.Declared = append(sc.Declared, id)
	return id, true
}

// Contains reports whether scope itself declares name; parents are not searched.
func (t *Table) Contains(scope ScopeID, name source.StringID) bool {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return false
	}
	_, ok := sc.byName[name]
	return ok
}

// Lookup searches scope and then its ancestors.
func (t *Table) Lookup(scope ScopeID, name source.StringID) (SymbolID, bool) {
	for id := scope; id.IsValid(); {
		sc := t.Scopes.Get(id)
		if sc == nil {
			break
		}
		if sym, ok := sc.byName[name]; ok {
			return sym, true
		}
		id = sc.Parent
	}
	return NoSymbolID, false
}

// SetAttribute stores attr on the symbol visible as name from scope.
func (t *Table) SetAttribute(scope ScopeID, name, attr source.StringID, value token.Value) bool {
	id, ok := t.Lookup(scope, name)
	if !ok {
		return false
	}
	sym := t.Symbols.Get(id)
	if sym.Attrs == nil {
		sym.Attrs = make(map[source.StringID]token.Value)
	}
	sym.Attrs[attr] = value
	return true
}

// Attribute returns attr of the symbol visible as name from scope.
func (t *Table) Attribute(scope ScopeID, name, attr source.StringID) (token.Value, bool) {
	id, ok := t.Lookup(scope, name)
	if !ok {
		return token.Value{}, false
	}
	v, ok := t.Symbols.Get(id).Attrs[attr]
	return v, ok
}
