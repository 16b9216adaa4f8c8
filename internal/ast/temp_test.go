package ast_test

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
)

func TestScratchDrainReturnsPushOrder(t *testing.T) {
	env := ast.NewEnv()
	var s ast.Scratch[ast.Expr]

	mark := s.Start()
	s.Push(ident(env, "a", 0))
	s.Push(ident(env, "b", 2))
	s.Push(ident(env, "c", 4))

	got := s.Drain(mark)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	names := []string{"a", "b", "c"}
	for i, e := range got {
		id := e.(*ast.ExprIdent)
		if env.String(id.Name.Name) != names[i] {
			t.Errorf("item %d = %q, want %q", i, env.String(id.Name.Name), names[i])
		}
	}
}

func TestScratchNestedRegions(t *testing.T) {
	env := ast.NewEnv()
	var s ast.Scratch[ast.Expr]

	outer := s.Start()
	s.Push(ident(env, "o1", 0))

	inner := s.Start()
	s.Push(ident(env, "i1", 10))
	s.Push(ident(env, "i2", 13))

	if got := s.Len(inner); got != 2 {
		t.Errorf("inner Len = %d, want 2", got)
	}
	innerItems := s.Drain(inner)
	if len(innerItems) != 2 {
		t.Fatalf("inner drain len = %d", len(innerItems))
	}

	// Draining the inner region must leave the outer region intact.
	s.Push(ident(env, "o2", 20))
	outerItems := s.Drain(outer)
	if len(outerItems) != 2 {
		t.Fatalf("outer drain len = %d, want 2", len(outerItems))
	}
	first := outerItems[0].(*ast.ExprIdent)
	if env.String(first.Name.Name) != "o1" {
		t.Errorf("outer region lost its first item: %q", env.String(first.Name.Name))
	}
}

func TestScratchEmptyRegion(t *testing.T) {
	var s ast.Scratch[int]
	mark := s.Start()
	if got := s.Drain(mark); len(got) != 0 {
		t.Errorf("empty drain returned %v", got)
	}
}
