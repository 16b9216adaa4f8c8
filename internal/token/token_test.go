package token_test

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/token"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
	}{
		{"let", token.Let},
		{"rec", token.Rec},
		{"forall", token.Forall},
		{"seq", token.Seq},
		{"with", token.With},
		{"letter", token.Identifier},
		{"Type", token.Identifier},
		{"_", token.Identifier},
	}

	for _, tt := range tests {
		if got := token.LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	a := token.Span{Start: 0, End: 3, Line: 1, Column: 1}
	b := token.Span{Start: 4, End: 9, Line: 1, Column: 5}

	got := token.Merge(a, b)
	if got.Start != 0 || got.End != 9 {
		t.Errorf("Merge = %+v, want [0,9)", got)
	}
	if got.Line != 1 || got.Column != 1 {
		t.Errorf("Merge should keep the first span's anchor, got %+v", got)
	}

	// Merging a shorter span must not shrink the result.
	if got := token.Merge(b, a); got.End != 9 {
		t.Errorf("Merge(b, a).End = %d, want 9", got.End)
	}
}

func TestIsDocComment(t *testing.T) {
	if !token.IsDocComment(token.DocLineComment) || !token.IsDocComment(token.DocBlockComment) {
		t.Error("doc comment kinds should report true")
	}
	if token.IsDocComment(token.Identifier) {
		t.Error("identifier is not a doc comment")
	}
}
