package parser_test

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
)

func TestDocCommentAttachesToBinding(t *testing.T) {
	e, errs, _ := parseOne(t, "/// adds one\nlet inc x = x in inc")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	meta := let.Bindings[0].Metadata
	if meta.Comment == nil {
		t.Fatal("doc comment lost")
	}
	if meta.Comment.Content != "adds one" {
		t.Errorf("content = %q", meta.Comment.Content)
	}
	if meta.Comment.Category != ast.CommentLine {
		t.Errorf("category = %v, want CommentLine", meta.Comment.Category)
	}
}

func TestDocCommentsAggregate(t *testing.T) {
	e, errs, _ := parseOne(t, "/// first\n/// second\n/** third */\nlet x = 1 in x")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	meta := let.Bindings[0].Metadata
	if meta.Comment == nil {
		t.Fatal("doc comment lost")
	}
	if meta.Comment.Content != "first\nsecond\nthird" {
		t.Errorf("content = %q, want newline-joined aggregate", meta.Comment.Content)
	}
	// The category follows the last raw comment.
	if meta.Comment.Category != ast.CommentBlock {
		t.Errorf("category = %v, want CommentBlock", meta.Comment.Category)
	}
}

func TestDocCommentAttachmentIsIdempotent(t *testing.T) {
	with, errs, _ := parseOne(t, "/// doc\nlet x = 1 in x")
	assertNoErrors(t, errs)
	without, errs, _ := parseOne(t, "let x = 1 in x")
	assertNoErrors(t, errs)

	// Removing the doc comment leaves the rest of the AST unchanged.
	letWith := with.(*ast.ExprLet)
	letWithout := without.(*ast.ExprLet)
	if letWith.Bindings[0].Metadata.Comment == nil {
		t.Fatal("doc comment lost")
	}
	if letWithout.Bindings[0].Metadata.Comment != nil {
		t.Fatal("comment appeared from nowhere")
	}

	countNodes := func(e ast.Expr) int {
		n := 0
		ast.Walk(e, func(ast.Node) bool { n++; return true })
		return n
	}
	if countNodes(with) != countNodes(without) {
		t.Errorf("node counts differ: %d vs %d", countNodes(with), countNodes(without))
	}
}

func TestAttributeRoundTripsArguments(t *testing.T) {
	e, errs, _ := parseOne(t, "#[derive(Eq, Show (deep))]\nlet x = 1 in x")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	attrs := let.Bindings[0].Metadata.Attributes
	if len(attrs) != 1 {
		t.Fatalf("attributes = %d, want 1", len(attrs))
	}
	if attrs[0].Name != "derive" {
		t.Errorf("name = %q", attrs[0].Name)
	}
	if attrs[0].Arguments == nil {
		t.Fatal("arguments lost")
	}
	if *attrs[0].Arguments != "Eq, Show (deep)" {
		t.Errorf("arguments = %q, want byte-for-byte %q", *attrs[0].Arguments, "Eq, Show (deep)")
	}
}

func TestAttributeWithoutArguments(t *testing.T) {
	e, errs, _ := parseOne(t, "#[inline]\nlet x = 1 in x")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	attrs := let.Bindings[0].Metadata.Attributes
	if len(attrs) != 1 {
		t.Fatalf("attributes = %d, want 1", len(attrs))
	}
	if attrs[0].Arguments != nil {
		t.Errorf("no-argument attribute captured %q", *attrs[0].Arguments)
	}
}

func TestMetadataOnRecAttachesToFirstBinding(t *testing.T) {
	e, errs, _ := parseOne(t, "/// group doc\nrec let a = 1 let b = 2 in a")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	if let.Bindings[0].Metadata.Comment == nil {
		t.Error("metadata should attach to the first binding")
	}
	if let.Bindings[1].Metadata.Comment != nil {
		t.Error("metadata leaked onto the second binding")
	}
}

func TestMetadataOnTypeBinding(t *testing.T) {
	e, errs, _ := parseOne(t, "/// the option\ntype Option a = | None | Some a in None")
	assertNoErrors(t, errs)

	tb := e.(*ast.ExprTypeBindings)
	if tb.Bindings[0].Metadata.Comment == nil {
		t.Error("type binding metadata lost")
	}
}

func TestMetadataOnRecordTypeField(t *testing.T) {
	e, errs, _ := parseOne(t, "let v : { /// the count\ncount : Int } = x in v")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	rec := let.Bindings[0].Typ.(*ast.TypeRecord)
	row := rec.Row.(*ast.TypeExtendRow)
	if len(row.Fields) != 1 {
		t.Fatalf("fields = %d, want 1", len(row.Fields))
	}
	if row.Fields[0].Metadata.Comment == nil {
		t.Error("field doc comment lost")
	}
}

func TestMetadataOnRecordExprField(t *testing.T) {
	e, errs, _ := parseOne(t, "{ /// the a\na = 1 }")
	assertNoErrors(t, errs)

	rec := e.(*ast.ExprRecord)
	if len(rec.Values) != 1 || rec.Values[0].Metadata.Comment == nil {
		t.Error("record expression field metadata lost")
	}
}
