package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumen-lang/lumen/internal/ast"
)

func TestRecoverDoWithoutEquals(t *testing.T) {
	e, errs, _ := parseOne(t, "do x in x")

	if len(errs) != 1 {
		t.Fatalf("want exactly 1 error, got %d: %v", len(errs), errs)
	}
	if diff := cmp.Diff([]string{"="}, errs[0].Expected); diff != "" {
		t.Errorf("expected set mismatch (-want +got):\n%s", diff)
	}

	d, ok := e.(*ast.ExprDo)
	if !ok {
		t.Fatalf("got %T, want *ExprDo", e)
	}
	if _, ok := d.Bound.(*ast.ExprError); !ok {
		t.Errorf("bound = %T, want *ExprError", d.Bound)
	}
	// The body after `in` still parses.
	if _, ok := d.Body.(*ast.ExprIdent); !ok {
		t.Errorf("body = %T, want *ExprIdent", d.Body)
	}
}

func TestRecoverMatchArmWithoutArrow(t *testing.T) {
	e, errs, _ := parseOne(t, "match x with | Some a | None -> 0")

	if len(errs) == 0 {
		t.Fatal("expected an error for the missing arrow")
	}

	m, ok := e.(*ast.ExprMatch)
	if !ok {
		t.Fatalf("got %T, want *ExprMatch", e)
	}
	if len(m.Alts) != 2 {
		t.Fatalf("alts = %d, want 2 (recovery must not drop the next arm)", len(m.Alts))
	}
	if _, ok := m.Alts[0].Expr.(*ast.ExprError); !ok {
		t.Errorf("broken arm body = %T, want *ExprError", m.Alts[0].Expr)
	}
	if _, ok := m.Alts[1].Expr.(*ast.ExprLiteral); !ok {
		t.Errorf("next arm body = %T, want literal", m.Alts[1].Expr)
	}
}

func TestRecoverMatchArmWithoutPattern(t *testing.T) {
	e, errs, _ := parseOne(t, "match x with | -> 0")

	if len(errs) == 0 {
		t.Fatal("expected an error for the missing pattern")
	}
	m := e.(*ast.ExprMatch)
	if len(m.Alts) != 1 {
		t.Fatalf("alts = %d, want 1", len(m.Alts))
	}
	if _, ok := m.Alts[0].Pattern.(*ast.PatternError); !ok {
		t.Errorf("pattern = %T, want *PatternError", m.Alts[0].Pattern)
	}
}

func TestRecoveryKeepsBuiltSubtrees(t *testing.T) {
	// The scrutinee and the first arm survive a later broken arm.
	e, _, p := parseOne(t, "match subject with | Some a -> a | junk")

	m, ok := e.(*ast.ExprMatch)
	if !ok {
		t.Fatalf("got %T, want *ExprMatch", e)
	}
	scrut, ok := m.Scrutinee.(*ast.ExprIdent)
	if !ok || name(t, p, scrut.Name.Name) != "subject" {
		t.Error("scrutinee was discarded during recovery")
	}
	if len(m.Alts) < 2 {
		t.Fatalf("alts = %d, want the good arm plus the recovered one", len(m.Alts))
	}
	if _, ok := m.Alts[0].Expr.(*ast.ExprIdent); !ok {
		t.Error("first arm body was discarded during recovery")
	}
}

func TestParseNeverPanics(t *testing.T) {
	// Error transparency: any input terminates and yields a tree.
	inputs := []string{
		"",
		"let",
		"let x",
		"let x =",
		"do x",
		"???",
		"match with",
		"match x with",
		"{",
		"}",
		"( a , ",
		"if x then",
		`\ ->`,
		"type",
		"type X =",
		"rec",
		"rec in x",
		".. ..",
		"#[",
		`"unterminated`,
		"r.",
		"f ?",
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			e, _, _ := parseOne(t, src)
			// Placeholders, never nil children.
			ast.Walk(e, func(n ast.Node) bool {
				if n == nil {
					t.Fatal("nil node reachable from the root")
				}
				return true
			})
		})
	}
}

func TestTrailingNoiseIsReportedOnce(t *testing.T) {
	e, errs, _ := parseOne(t, "42 ) ) )")

	if _, ok := e.(*ast.ExprLiteral); !ok {
		t.Fatalf("got %T, want the leading literal", e)
	}
	count := 0
	for _, err := range errs {
		if err.Found == ")" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("trailing noise reported %d times, want once", count)
	}
}

func TestErrorOrderMatchesParseOrder(t *testing.T) {
	_, errs, _ := parseOne(t, "let x in let y in 0")

	if len(errs) < 2 {
		t.Fatalf("want two truncation errors, got %v", errs)
	}
	if errs[0].Span.Start > errs[1].Span.Start {
		t.Error("errors are not in parse order")
	}
}
