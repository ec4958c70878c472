package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"tungsten/internal/source"
)

// ScopeID indexes Scopes; 0 is never allocated.
type ScopeID uint32

// SymbolID indexes Symbols; 0 is never allocated.
type SymbolID uint32

const (
	NoScopeID  ScopeID  = 0
	NoSymbolID SymbolID = 0
)

func (id ScopeID) IsValid() bool  { return id != NoScopeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// arena is an append-only slice whose slot 0 is a sentinel, so the zero id
// means "none".
type arena[T any] struct {
	what string
	data []T
}

func newArena[T any](what string, capacity, fallback uint32) arena[T] {
	if capacity == 0 {
		capacity = fallback
	}
	return arena[T]{what: what, data: make([]T, 1, capacity+1)}
}

func (a *arena[T]) push(v T) uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", a.what, err))
	}
	a.data = append(a.data, v)
	return n
}

func (a *arena[T]) at(i uint32) *T {
	if i == 0 || int(i) >= len(a.data) {
		return nil
	}
	return &a.data[i]
}

// Len excludes the sentinel.
func (a *arena[T]) Len() int { return len(a.data) - 1 }

// Scopes owns every scope of a Table. Parent links are ids into it.
type Scopes struct{ arena[Scope] }

func NewScopes(capacity uint32) *Scopes {
	return &Scopes{newArena[Scope]("scopes", capacity, 32)}
}

// New allocates a scope and registers it with its parent.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, span source.Span) ScopeID {
	id := ScopeID(s.push(Scope{
		Kind:   kind,
		Parent: parent,
		Span:   span,
		byName: make(map[source.StringID]SymbolID),
	}))
	if p := s.Get(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// Get returns nil for ids not allocated here.
func (s *Scopes) Get(id ScopeID) *Scope { return s.at(uint32(id)) }

// Symbols owns every symbol of a Table.
type Symbols struct{ arena[Symbol] }

func NewSymbols(capacity uint32) *Symbols {
	return &Symbols{newArena[Symbol]("symbols", capacity, 64)}
}

// New copies sym into the arena.
func (s *Symbols) New(sym *Symbol) SymbolID {
	if sym == nil {
		panic("symbols.New: nil symbol")
	}
	return SymbolID(s.push(*sym))
}

// Get returns nil for ids not allocated here.
func (s *Symbols) Get(id SymbolID) *Symbol { return s.at(uint32(id)) }
