package token_test

import (
	"testing"

	"tungsten/internal/token"
)

func TestKindNamesComplete(t *testing.T) {
	seen := make(map[string]token.Kind)
	for k := token.Illegal; k <= token.Ident; k++ {
		name := k.String()
		if name == "" || name == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []token.Kind{token.StringLit, token.BoolLit, token.IntLit, token.FloatLit} {
		if !k.IsLiteral() {
			t.Errorf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.KwFunc, token.Plus, token.EOF} {
		if k.IsLiteral() {
			t.Errorf("%v must NOT be literal", k)
		}
	}
	if !token.KwReturn.IsKeyword() || token.Ident.IsKeyword() {
		t.Error("keyword classification is off")
	}
	if !token.TyStr.IsPrimitiveType() || token.KwVar.IsPrimitiveType() {
		t.Error("primitive classification is off")
	}
	if !token.DotDotEq.IsPunctOrOp() || !token.Colon.IsPunctOrOp() || token.StringLit.IsPunctOrOp() {
		t.Error("punct classification is off")
	}
}

func TestKindIsValid(t *testing.T) {
	if !token.EOF.IsValid() || !token.Ident.IsValid() {
		t.Fatal("declared kinds must be valid")
	}
	if token.Kind(255).IsValid() || token.Kind(255).String() != "Kind(?)" {
		t.Fatal("out of range kind reported as valid")
	}
}
