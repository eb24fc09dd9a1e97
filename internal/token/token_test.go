package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"func", FUNC},
		{"class", CLASS},
		{"Self", SELFTYPE},
		{"self", SELF},
		{"_", WILDCARD},
		{"precedencegroup", PRECEDENCEGROUP},
		{"get", IDENT},
		{"final", IDENT},
		{"foo", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %d, want %d", tt.ident, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	if !IDENT.IsLiteral() || !STRING.IsLiteral() {
		t.Error("IDENT and STRING should be literals")
	}
	if !ARROW.IsPunct() || !OPERATOR.IsPunct() {
		t.Error("ARROW and OPERATOR should be punctuation")
	}
	if !WHILE.IsKeyword() || IDENT.IsKeyword() {
		t.Error("keyword classification mismatch")
	}
	if LookupKeyword("nope") != ILLEGAL {
		t.Error("LookupKeyword of a non-keyword should be ILLEGAL")
	}
}

func TestModifiers(t *testing.T) {
	for _, m := range []string{"public", "final", "static", "mutating", "indirect"} {
		if !IsModifier(m) {
			t.Errorf("IsModifier(%q) = false", m)
		}
	}
	if IsModifier("get") {
		t.Error("get is not a modifier")
	}
	if !IsAccessLevel("fileprivate") || IsAccessLevel("final") {
		t.Error("access level classification mismatch")
	}
}
