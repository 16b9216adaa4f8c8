package parser_test

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/parser"
)

func parseReplLine(t *testing.T, src string) (parser.ReplLine, *parser.Parser) {
	t.Helper()

	p := parser.New(src)
	return p.ParseReplLine(), p
}

func TestReplExpressionLine(t *testing.T) {
	line, p := parseReplLine(t, "1 + 2")
	assertNoErrors(t, p.Errors())

	if line.IsEmpty() || line.Expr == nil {
		t.Fatal("want an expression line")
	}
	if _, ok := line.Expr.(*ast.ExprInfix); !ok {
		t.Errorf("got %T, want *ExprInfix", line.Expr)
	}
}

func TestReplBindingLine(t *testing.T) {
	line, p := parseReplLine(t, "let x = 1")
	assertNoErrors(t, p.Errors())

	if line.Binding == nil {
		t.Fatal("want a binding line")
	}
	pat, ok := line.Binding.Name.(*ast.PatternIdent)
	if !ok || p.Env().String(pat.Name.Name) != "x" {
		t.Errorf("binding name = %T", line.Binding.Name)
	}
	if line.Expr != nil {
		t.Error("binding line must not also carry an expression")
	}
}

func TestReplLetExpressionLine(t *testing.T) {
	line, p := parseReplLine(t, "let x = 1 in x")
	assertNoErrors(t, p.Errors())

	if line.Expr == nil {
		t.Fatal("a let with a body is an expression line")
	}
	if _, ok := line.Expr.(*ast.ExprLet); !ok {
		t.Errorf("got %T, want *ExprLet", line.Expr)
	}
}

func TestReplEmptyLine(t *testing.T) {
	line, p := parseReplLine(t, "")
	assertNoErrors(t, p.Errors())

	if !line.IsEmpty() {
		t.Error("empty input should produce an empty line")
	}
}

func TestReplShebangLine(t *testing.T) {
	line, p := parseReplLine(t, "#!/usr/bin/env lumen\n42")
	assertNoErrors(t, p.Errors())

	if line.Expr == nil {
		t.Fatal("shebang should be skipped")
	}
}

func TestReplTruncatedBinding(t *testing.T) {
	line, p := parseReplLine(t, "let x")

	if len(p.Errors()) != 1 {
		t.Fatalf("want exactly one error, got %v", p.Errors())
	}
	if line.Binding == nil {
		t.Fatal("truncated binding should still yield a binding line")
	}
	if _, ok := line.Binding.Expr.(*ast.ExprError); !ok {
		t.Errorf("binding body = %T, want *ExprError", line.Binding.Expr)
	}
}

func TestReplSharedEnvironment(t *testing.T) {
	env := ast.NewEnv()

	p1 := parser.New("foo", parser.WithEnv(env))
	e1 := p1.ParseExpr().(*ast.ExprIdent)

	p2 := parser.New("foo", parser.WithEnv(env))
	e2 := p2.ParseExpr().(*ast.ExprIdent)

	if e1.Name.Name != e2.Name.Name {
		t.Error("shared environment should intern to the same id across parses")
	}
}
