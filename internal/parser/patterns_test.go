package parser_test

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/parser"
)

// letPattern parses `let <pat> = 0 in 0` and returns the binding
// pattern.
func letPattern(t *testing.T, pat string) (ast.Pattern, *parser.Parser) {
	t.Helper()

	e, errs, p := parseOne(t, "let "+pat+" = 0 in 0")
	assertNoErrors(t, errs)
	let, ok := e.(*ast.ExprLet)
	if !ok {
		t.Fatalf("got %T, want *ExprLet", e)
	}
	return let.Bindings[0].Name, p
}

func TestParseTuplePattern(t *testing.T) {
	pat, _ := letPattern(t, "(a, b)")

	tup, ok := pat.(*ast.PatternTuple)
	if !ok {
		t.Fatalf("got %T, want *PatternTuple", pat)
	}
	if len(tup.Elems) != 2 {
		t.Errorf("elems = %d, want 2", len(tup.Elems))
	}
}

func TestParseAsPattern(t *testing.T) {
	pat, p := letPattern(t, "whole @ (a, b)")

	as, ok := pat.(*ast.PatternAs)
	if !ok {
		t.Fatalf("got %T, want *PatternAs", pat)
	}
	if name(t, p, as.Name.Name) != "whole" {
		t.Errorf("as name = %q", name(t, p, as.Name.Name))
	}
	if _, ok := as.Pat.(*ast.PatternTuple); !ok {
		t.Errorf("sub pattern = %T", as.Pat)
	}
}

func TestParseRecordPattern(t *testing.T) {
	pat, p := letPattern(t, "{ x, y = inner, Assoc }")

	rec, ok := pat.(*ast.PatternRecord)
	if !ok {
		t.Fatalf("got %T, want *PatternRecord", pat)
	}
	if len(rec.Values) != 2 {
		t.Fatalf("values = %d, want 2", len(rec.Values))
	}
	if rec.Values[0].Pat != nil {
		t.Error("punned field x should have no subpattern")
	}
	if rec.Values[1].Pat == nil {
		t.Error("y = inner should carry a subpattern")
	}
	if len(rec.Types) != 1 || name(t, p, rec.Types[0].Name) != "Assoc" {
		t.Error("uppercase bare field should be a type-punned binding")
	}
	if rec.ImplicitImport != nil {
		t.Error("no implicit import marker present")
	}
}

func TestParseRecordPatternImplicitImport(t *testing.T) {
	pat, p := letPattern(t, "{ x ? }")

	rec := pat.(*ast.PatternRecord)
	if rec.ImplicitImport == nil {
		t.Fatal("implicit import lost")
	}
	got := name(t, p, rec.ImplicitImport.Name)
	if !strings.HasPrefix(got, "implicit?") {
		t.Errorf("implicit import name = %q, want implicit?<start-byte>", got)
	}
}

func TestImplicitImportNamesAreUnique(t *testing.T) {
	e, errs, p := parseOne(t, "let { x ? } = a in let { y ? } = b in x")
	assertNoErrors(t, errs)

	var names []string
	ast.Walk(e, func(n ast.Node) bool {
		if rec, ok := n.(*ast.PatternRecord); ok && rec.ImplicitImport != nil {
			names = append(names, p.Env().String(rec.ImplicitImport.Name))
		}
		return true
	})

	if len(names) != 2 {
		t.Fatalf("found %d implicit imports, want 2", len(names))
	}
	if names[0] == names[1] {
		t.Errorf("implicit import names collide: %q", names[0])
	}
}

func TestParseConstructorPattern(t *testing.T) {
	e, errs, p := parseOne(t, "match x with | Pair (a, b) c -> a")
	assertNoErrors(t, errs)

	m := e.(*ast.ExprMatch)
	ctor := m.Alts[0].Pattern.(*ast.PatternConstructor)
	if p.Env().String(ctor.Name.Name) != "Pair" {
		t.Error("constructor is not Pair")
	}
	if len(ctor.Args) != 2 {
		t.Fatalf("args = %d, want 2", len(ctor.Args))
	}
	if _, ok := ctor.Args[0].(*ast.PatternTuple); !ok {
		t.Errorf("first arg = %T, want tuple", ctor.Args[0])
	}
}

func TestParseLiteralPattern(t *testing.T) {
	e, errs, _ := parseOne(t, `match x with | 0 -> a | "s" -> b`)
	assertNoErrors(t, errs)

	m := e.(*ast.ExprMatch)
	if _, ok := m.Alts[0].Pattern.(*ast.PatternLiteral); !ok {
		t.Errorf("first pattern = %T, want literal", m.Alts[0].Pattern)
	}
	if _, ok := m.Alts[1].Pattern.(*ast.PatternLiteral); !ok {
		t.Errorf("second pattern = %T, want literal", m.Alts[1].Pattern)
	}
}

func TestLowercaseConstructorDiagnostic(t *testing.T) {
	e, errs, _ := parseOne(t, "match x with | some a -> a")

	if len(errs) == 0 {
		t.Fatal("expected the case-discipline diagnostic")
	}
	found := false
	for _, err := range errs {
		if strings.Contains(err.Message, "Constructors must start with an uppercase letter") {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostic missing, got %v", errs)
	}

	// The pattern still parses as a constructor application.
	m := e.(*ast.ExprMatch)
	if _, ok := m.Alts[0].Pattern.(*ast.PatternConstructor); !ok {
		t.Errorf("pattern = %T, want *PatternConstructor", m.Alts[0].Pattern)
	}
}
