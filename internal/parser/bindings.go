package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseLetExpr parses `let binding in body`.
func (p *Parser) parseLetExpr(meta ast.Metadata) ast.Expr {
	start := p.cur.Span
	binding := p.parseValueBinding(meta)
	bindings := p.arena.ValueBindings([]ast.ValueBinding{binding})

	body := p.parseBindingBody()
	return ast.NewExprLet(ast.LetPlain, bindings, body, token.Merge(start, body.Span()))
}

// parseRecExpr parses a `rec` block of mutually recursive value or
// type bindings. Metadata preceding `rec` attaches to the first
// binding only.
func (p *Parser) parseRecExpr(meta ast.Metadata) ast.Expr {
	start := p.cur.Span

	switch p.peek.Kind {
	case token.Let:
		mark := p.tmp.ValueBinds.Start()
		for p.peek.Kind == token.Let {
			p.next()
			first := p.tmp.ValueBinds.Len(mark) == 0
			bindMeta := ast.Metadata{}
			if first {
				bindMeta = meta
			}
			p.tmp.ValueBinds.Push(p.parseValueBinding(bindMeta))
		}
		bindings := p.arena.ValueBindings(p.tmp.ValueBinds.Drain(mark))
		body := p.parseBindingBody()
		return ast.NewExprLet(ast.LetRecursive, bindings, body, token.Merge(start, body.Span()))

	case token.Type:
		mark := p.tmp.TypeBinds.Start()
		for p.peek.Kind == token.Type {
			p.next()
			first := p.tmp.TypeBinds.Len(mark) == 0
			bindMeta := ast.Metadata{}
			if first {
				bindMeta = meta
			}
			p.tmp.TypeBinds.Push(p.parseTypeBinding(bindMeta))
		}
		bindings := p.arena.TypeBindings(p.tmp.TypeBinds.Drain(mark))
		body := p.parseBindingBody()
		return ast.NewExprTypeBindings(bindings, body, token.Merge(start, body.Span()))

	default:
		p.unexpected(p.peek, string(token.Let), string(token.Type))
		return ast.NewExprError(nil, zeroSpan(p.peek))
	}
}

// parseTypeBindingsExpr parses `type binding in body`.
func (p *Parser) parseTypeBindingsExpr(meta ast.Metadata) ast.Expr {
	start := p.cur.Span
	binding := p.parseTypeBinding(meta)
	bindings := p.arena.TypeBindings([]ast.TypeBinding{binding})

	body := p.parseBindingBody()
	return ast.NewExprTypeBindings(bindings, body, token.Merge(start, body.Span()))
}

// parseBindingBody consumes the `in` after a binding group and parses
// the body. A layout separator stands in for `in`: the rest of the
// enclosing block becomes the body. A missing `in` recovers with a
// placeholder body so the bindings survive.
func (p *Parser) parseBindingBody() ast.Expr {
	switch p.peek.Kind {
	case token.In:
		p.pendingIn = false
		p.next()
		p.next()
		return p.parseExpr()
	case token.BlockSep:
		p.pendingIn = false
		p.next()
		p.next()
		return p.parseBlockBody()
	default:
		if p.pendingIn {
			p.pendingIn = false
			return ast.NewExprError(nil, zeroSpan(p.peek))
		}
		p.unexpected(p.peek, string(token.In))
		return ast.NewExprError(nil, zeroSpan(p.peek))
	}
}

// parseValueBinding parses one `let` binding with cur on `let`:
//
//	let AtomicPattern (":" Type)? "=" Expr
//	let Ident Argument* (":" Type)? "=" Expr
//
// A named binding may take zero arguments, which keeps nullary
// recursive bindings expressible. A binding truncated before `=` or
// `:` recovers with a synthesized unexpected-token error and an Error
// body.
func (p *Parser) parseValueBinding(meta ast.Metadata) ast.ValueBinding {
	start := p.cur.Span
	p.next()

	var name ast.Pattern
	if startsAtomicPattern(p.cur.Kind) {
		name = p.parseAtomicPattern()
	} else {
		p.unexpected(p.cur, "pattern")
		name = ast.NewPatternError(zeroSpan(p.cur))
	}

	var args []ast.Argument
	if _, ok := name.(*ast.PatternIdent); ok {
		mark := p.tmp.Args.Start()
		for {
			if p.peek.Kind == token.Identifier {
				p.next()
				p.tmp.Args.Push(ast.Argument{Kind: ast.ArgExplicit, Name: p.spannedId(p.cur)})
				continue
			}
			if p.peek.Kind == token.Question {
				p.next()
				if !p.expectPeek(token.Identifier) {
					break
				}
				p.tmp.Args.Push(ast.Argument{Kind: ast.ArgImplicit, Name: p.spannedId(p.cur)})
				continue
			}
			break
		}
		args = p.arena.Args(p.tmp.Args.Drain(mark))
	}

	var typ ast.Type
	if p.peek.Kind == token.Colon {
		p.next()
		p.next()
		typ = p.parseType()
	}

	var expr ast.Expr
	if p.peek.Kind == token.Equals {
		p.next()
		p.next()
		expr = p.parseExpr()
	} else {
		if typ == nil {
			p.unexpected(p.peek, string(token.Equals), string(token.Colon))
		} else {
			p.unexpected(p.peek, string(token.Equals))
		}
		p.pendingIn = true
		expr = ast.NewExprError(nil, zeroSpan(p.peek))
	}

	return ast.NewValueBinding(meta, name, args, typ, expr, token.Merge(start, expr.Span()))
}

// parseDoExpr parses `do pattern = bound in body`. A `do` without `=`
// recovers like a truncated let: the error lists `=` and the bound
// expression becomes a placeholder, while the body still parses.
func (p *Parser) parseDoExpr() ast.Expr {
	start := p.cur.Span
	p.next()

	var id ast.Pattern
	if startsAtomicPattern(p.cur.Kind) {
		id = p.parseAtomicPattern()
	} else {
		p.unexpected(p.cur, "pattern")
		id = ast.NewPatternError(zeroSpan(p.cur))
	}

	var bound ast.Expr
	if p.peek.Kind == token.Equals {
		p.next()
		p.next()
		bound = p.parseExpr()
	} else {
		p.unexpected(p.peek, string(token.Equals))
		p.pendingIn = true
		bound = ast.NewExprError(nil, zeroSpan(p.peek))
	}

	body := p.parseBindingBody()
	return ast.NewExprDo(id, bound, body, token.Merge(start, body.Span()))
}

// parseSeqExpr parses `seq bound in body`: monadic sequencing with no
// binder.
func (p *Parser) parseSeqExpr() ast.Expr {
	start := p.cur.Span
	p.next()
	bound := p.parseExpr()
	body := p.parseBindingBody()
	return ast.NewExprDo(nil, bound, body, token.Merge(start, body.Span()))
}

// parseTypeBinding parses one `type` binding with cur on `type`:
//
//	type Name Param* "=" (Type | VariantType)
//
// A parameter is a bare identifier or a kinded `(id : Kind)` group.
func (p *Parser) parseTypeBinding(meta ast.Metadata) ast.TypeBinding {
	start := p.cur.Span

	var name ast.SpannedId
	if p.peek.Kind == token.Identifier {
		p.next()
		name = p.spannedId(p.cur)
		if !ast.StartsUpper(p.cur.Raw) {
			p.sink.Emit(diag.Message(p.cur.Span, "Types must start with an uppercase letter"))
		}
	} else {
		p.unexpected(p.peek, string(token.Identifier))
		name = ast.SpannedId{Name: ast.EmptyId, Span: zeroSpan(p.peek)}
	}

	mark := p.tmp.Generics.Start()
	for {
		if p.peek.Kind == token.Identifier {
			p.next()
			p.tmp.Generics.Push(ast.NewTypeGeneric(p.spannedId(p.cur), p.types.Kinds().Hole(), p.cur.Span))
			continue
		}
		if p.peek.Kind == token.LParen {
			p.next()
			pstart := p.cur.Span
			if !p.expectPeek(token.Identifier) {
				break
			}
			pname := p.spannedId(p.cur)
			kind := p.types.Kinds().Hole()
			if p.expectPeek(token.Colon) {
				p.next()
				kind = p.parseKind()
			}
			p.expectPeek(token.RParen)
			p.tmp.Generics.Push(ast.NewTypeGeneric(pname, kind, token.Merge(pstart, p.cur.Span)))
			continue
		}
		break
	}
	params := p.arena.Generics(p.tmp.Generics.Drain(mark))

	var typ ast.Type
	if p.peek.Kind == token.Equals {
		p.next()
		p.next()
		typ = p.parseTypeBindingRhs()
	} else {
		p.unexpected(p.peek, string(token.Equals))
		typ = p.types.Hole(zeroSpan(p.peek))
	}

	alias := ast.AliasData{Name: name, Params: params, Typ: typ}
	return ast.NewTypeBinding(meta, name, params, alias, token.Merge(start, typ.Span()))
}
