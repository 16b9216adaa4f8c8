package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseKind parses `AtomicKind | AtomicKind "->" Kind`; arrows are
// right-associative.
func (p *Parser) parseKind() ast.Kind {
	k := p.parseAtomicKind()
	if p.peek.Kind == token.RArrow {
		p.next()
		p.next()
		return p.types.Kinds().Arrow(k, p.parseKind())
	}
	return k
}

// parseAtomicKind parses `"_" | "Type" | "Row" | "(" Kind ")"`.
func (p *Parser) parseAtomicKind() ast.Kind {
	kinds := p.types.Kinds()
	switch p.cur.Kind {
	case token.Identifier:
		switch p.cur.Raw {
		case "_":
			return kinds.Hole()
		case "Type":
			return kinds.Typ()
		case "Row":
			return kinds.Row()
		}
		p.unexpected(p.cur, "_", "Row", "Type")
		return kinds.Hole()
	case token.LParen:
		p.next()
		k := p.parseKind()
		p.expectPeek(token.RParen)
		return k
	default:
		p.unexpected(p.cur, "_", "Row", "Type")
		return kinds.Hole()
	}
}
