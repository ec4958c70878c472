package symbols

import (
	"errors"
	"fmt"
	"slices"
)

// Validate cross-checks the arenas: parent and child links agree, every
// name index entry matches a symbol of that scope, and every symbol is listed
// by its scope. All problems are joined into one error.
func (t *Table) Validate() error {
	var errs []error
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for i := uint32(1); int(i) < len(t.Scopes.data); i++ {
		id := ScopeID(i)
		sc := &t.Scopes.data[i]
		if sc.Kind == ScopeInvalid {
			report("scope %d has invalid kind", id)
		}

		if sc.Parent.IsValid() {
			parent := t.Scopes.Get(sc.Parent)
			switch {
			case parent == nil || sc.Parent == id:
				report("scope %d has invalid parent %d", id, sc.Parent)
			case !slices.Contains(parent.Children, id):
				report("scope %d parent %d missing backlink", id, sc.Parent)
			}
		}
		for _, child := range sc.Children {
			c := t.Scopes.Get(child)
			switch {
			case c == nil || child == id:
				report("scope %d has invalid child %d", id, child)
			case c.Parent != id:
				report("scope %d child %d missing parent backlink", id, child)
			}
		}

		for name, symID := range sc.byName {
			if !slices.Contains(sc.Declared, symID) {
				report("scope %d name index %d references missing symbol %d", id, name, symID)
				continue
			}
			if sym := t.Symbols.Get(symID); sym != nil && sym.Name != name {
				report("scope %d name index %d points at symbol %d named %d", id, name, symID, sym.Name)
			}
		}
		for _, symID := range sc.Declared {
			sym := t.Symbols.Get(symID)
			if sym == nil || sc.byName[sym.Name] != symID {
				report("scope %d symbol %d missing in name index", id, symID)
			}
		}
	}

	for i := uint32(1); int(i) < len(t.Symbols.data); i++ {
		id := SymbolID(i)
		sym := &t.Symbols.data[i]
		sc := t.Scopes.Get(sym.Scope)
		if sc == nil {
			report("symbol %d has invalid scope %d", id, sym.Scope)
			continue
		}
		if !slices.Contains(sc.Declared, id) {
			report("symbol %d is missing from scope %d list", id, sym.Scope)
		}
	}

	return errors.Join(errs...)
}
