package parser_test

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// corpus is a spread of well-formed and broken sources used by the
// universal-invariant checks.
var corpus = []string{
	"42",
	"let x = 1 in x",
	"let f x ?ctx = x in f ?y 1",
	`\x y -> x + y`,
	"type Option a = | None | Some a in None",
	"type Expr = | Lit : Int -> Expr in x",
	"if a then b else c",
	"match x with | Some a -> a | None -> 0",
	"do x = m in seq log x in x",
	"{ a = 1, B = Int, .. base }",
	"let v : forall a . { x : a | r } -> [| io : IO |] -> a = f in v",
	"rec let a = b let b = a in a",
	"a\nb\nlet c = 1\nc",
	// Broken inputs must still satisfy the invariants.
	"let x",
	"do x in x",
	"match x with | Some a | -> 2",
	"r.",
	"( 1, ",
}

func TestSpanMonotonicity(t *testing.T) {
	for _, src := range corpus {
		t.Run(src, func(t *testing.T) {
			e, _, _ := parseOne(t, src)

			root := e.Span()
			ast.Walk(e, func(n ast.Node) bool {
				span := n.Span()
				if span.Start > span.End {
					t.Errorf("node %T has inverted span [%d,%d)", n, span.Start, span.End)
				}
				if span.Start < root.Start || span.End > root.End {
					t.Errorf("node %T span [%d,%d) escapes root [%d,%d)",
						n, span.Start, span.End, root.Start, root.End)
				}
				return true
			})
		})
	}
}

func TestParentSpansCoverChildren(t *testing.T) {
	e, errs, _ := parseOne(t, "let x = f 1 2 in if x then { a = 1 } else (x, x)")
	assertNoErrors(t, errs)

	let := e.(*ast.ExprLet)
	b := let.Bindings[0]
	if !covers(b.Span(), b.Name.Span()) || !covers(b.Span(), b.Expr.Span()) {
		t.Error("binding span does not cover its children")
	}
	if !covers(let.Span(), b.Span()) || !covers(let.Span(), let.Body.Span()) {
		t.Error("let span does not cover its children")
	}

	cond := let.Body.(*ast.ExprIfElse)
	for _, child := range []ast.Expr{cond.Cond, cond.Then, cond.Else} {
		if !covers(cond.Span(), child.Span()) {
			t.Errorf("if span does not cover child %T", child)
		}
	}
}

func covers(parent, child token.Span) bool {
	return parent.Start <= child.Start && child.End <= parent.End
}

func TestCaseDiscipline(t *testing.T) {
	for _, src := range corpus {
		t.Run(src, func(t *testing.T) {
			e, _, p := parseOne(t, src)

			ast.Walk(e, func(n ast.Node) bool {
				switch n := n.(type) {
				case *ast.PatternConstructor:
					nm := p.Env().String(n.Name.Name)
					if nm != "" && !ast.StartsUpper(nm) {
						t.Errorf("PatternConstructor %q is lowercase", nm)
					}
				case *ast.PatternIdent:
					nm := p.Env().String(n.Name.Name)
					if ast.StartsUpper(nm) {
						t.Errorf("PatternIdent %q is uppercase", nm)
					}
				case *ast.TypeIdent:
					nm := p.Env().String(n.Name.Name)
					if nm != "" && !ast.StartsUpper(nm) {
						t.Errorf("TypeIdent %q is lowercase", nm)
					}
				case *ast.TypeGeneric:
					nm := p.Env().String(n.Name.Name)
					if ast.StartsUpper(nm) {
						t.Errorf("TypeGeneric %q is uppercase", nm)
					}
				}
				return true
			})
		})
	}
}

func TestEveryParseTerminatesWithTree(t *testing.T) {
	for _, src := range corpus {
		e, _, _ := parseOne(t, src)
		if e == nil {
			t.Fatalf("parse of %q returned no tree", src)
		}
	}
}
