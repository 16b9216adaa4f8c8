package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// ReplLine is the result of parsing one REPL line: an expression, a
// bare value binding, or nothing at all.
type ReplLine struct {
	Expr    ast.Expr
	Binding *ast.ValueBinding
}

// IsEmpty reports whether the line held no tokens.
func (l ReplLine) IsEmpty() bool {
	return l.Expr == nil && l.Binding == nil
}

// ParseReplLine parses one REPL line. A line that is a lone `let`
// binding (no `in`) yields a binding for the driver to install; any
// other non-empty line parses as a top-level expression.
func (p *Parser) ParseReplLine() ReplLine {
	if p.cur.Kind == token.Shebang {
		p.next()
	}
	if p.cur.Kind == token.EOF {
		return ReplLine{}
	}

	if p.cur.Kind == token.BlockOpen && p.peek.Kind == token.Let {
		p.next()
		binding := p.parseValueBinding(ast.Metadata{})
		if p.peek.Kind == token.In {
			// `let .. in ..` is an expression after all.
			p.next()
			p.next()
			body := p.parseExpr()
			bindings := p.arena.ValueBindings([]ast.ValueBinding{binding})
			span := token.Merge(binding.Span(), body.Span())
			expr := ast.NewExprLet(ast.LetPlain, bindings, body, span)
			p.skipExtraTokens()
			return ReplLine{Expr: expr}
		}
		p.pendingIn = false
		p.skipExtraTokens()
		bindings := p.arena.ValueBindings([]ast.ValueBinding{binding})
		return ReplLine{Binding: &bindings[0]}
	}

	return ReplLine{Expr: p.ParseExpr()}
}
