package parser

import (
	"strconv"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

func startsAtomicExpr(k token.Kind) bool {
	switch k {
	case token.Identifier, token.LParen, token.LBracket, token.LBrace,
		token.IntLiteral, token.ByteLiteral, token.FloatLiteral,
		token.StringLiteral, token.CharLiteral:
		return true
	default:
		return false
	}
}

// parseLiteral converts the current literal token into a Literal node.
func (p *Parser) parseLiteral() ast.Literal {
	t := p.cur
	switch t.Kind {
	case token.IntLiteral:
		v, err := strconv.ParseInt(t.Raw, 10, 64)
		if err != nil {
			p.sink.Emit(diag.Message(t.Span, "int literal out of range"))
		}
		return ast.NewLitInt(v, t.Span)
	case token.ByteLiteral:
		raw := t.Raw[:len(t.Raw)-1] // strip the `b` suffix
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			p.sink.Emit(diag.Message(t.Span, "byte literal out of range"))
		}
		return ast.NewLitByte(byte(v), t.Span)
	case token.FloatLiteral:
		v, err := strconv.ParseFloat(t.Raw, 64)
		if err != nil {
			p.sink.Emit(diag.Message(t.Span, "float literal out of range"))
		}
		return ast.NewLitFloat(v, t.Span)
	case token.StringLiteral:
		return ast.NewLitString(t.Value, t.Span)
	default: // char literal
		var r rune
		for _, c := range t.Value {
			r = c
			break
		}
		return ast.NewLitChar(r, t.Span)
	}
}

func (p *Parser) parseAtomicExpr() ast.Expr {
	switch p.cur.Kind {
	case token.Identifier:
		return ast.NewExprIdent(p.spannedId(p.cur), p.cur.Span)

	case token.IntLiteral, token.ByteLiteral, token.FloatLiteral,
		token.StringLiteral, token.CharLiteral:
		lit := p.parseLiteral()
		return ast.NewExprLiteral(lit, lit.Span())

	case token.LParen:
		return p.parseParenExpr()

	case token.LBracket:
		return p.parseArrayExpr()

	case token.LBrace:
		return p.parseRecordExpr()

	default:
		p.unexpected(p.cur, "expression")
		return ast.NewExprError(nil, zeroSpan(p.cur))
	}
}

// parseParenExpr parses `( )`, `( op )`, a parenthesized expression or
// a tuple. An operator in identifier position binds as a name.
func (p *Parser) parseParenExpr() ast.Expr {
	start := p.cur.Span

	switch p.peek.Kind {
	case token.RParen:
		p.next()
		return ast.NewExprTuple(nil, token.Merge(start, p.cur.Span))
	case token.Operator:
		p.next()
		op := p.spannedId(p.cur)
		p.expectPeek(token.RParen)
		return ast.NewExprIdent(op, token.Merge(start, p.cur.Span))
	}

	p.next()
	mark := p.tmp.Exprs.Start()
	for {
		p.tmp.Exprs.Push(p.parseExpr())
		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		p.expectPeek(token.RParen)
		break
	}

	elems := p.tmp.Exprs.Drain(mark)
	if len(elems) == 1 {
		return elems[0]
	}
	return ast.NewExprTuple(p.arena.Exprs(elems), token.Merge(start, p.cur.Span))
}

func (p *Parser) parseArrayExpr() ast.Expr {
	start := p.cur.Span

	if p.peek.Kind == token.RBracket {
		p.next()
		return ast.NewExprArray(nil, token.Merge(start, p.cur.Span))
	}

	p.next()
	mark := p.tmp.Exprs.Start()
	for {
		p.tmp.Exprs.Push(p.parseExpr())
		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		p.expectPeek(token.RBracket)
		break
	}
	return ast.NewExprArray(p.arena.Exprs(p.tmp.Exprs.Drain(mark)), token.Merge(start, p.cur.Span))
}

// parseRecordExpr parses `{ FieldExpr,* (".." base)? }`. Fields are
// split into type-level (uppercase-leading) and value-level buckets,
// preserving insertion order within each.
func (p *Parser) parseRecordExpr() ast.Expr {
	start := p.cur.Span
	typesMark := p.tmp.ExprTypes.Start()
	valuesMark := p.tmp.ExprValues.Start()
	var base ast.Expr

	p.next()
	for p.cur.Kind != token.RBrace {
		if p.cur.Kind == token.DotDot {
			p.next()
			base = p.parseExpr()
			p.expectPeek(token.RBrace)
			break
		}

		var meta ast.Metadata
		if isMetadataStart(p.cur.Kind) {
			meta = p.parseMetadata()
		}

		if p.cur.Kind != token.Identifier {
			p.unexpected(p.cur, string(token.Identifier), string(token.RBrace))
			p.recoverField()
			if p.cur.Kind == token.EOF {
				break
			}
			continue
		}

		name := p.spannedId(p.cur)
		upper := ast.StartsUpper(p.cur.Raw)
		switch {
		case upper && p.peek.Kind == token.Equals:
			p.next()
			p.next()
			p.tmp.ExprTypes.Push(ast.ExprTypeField{Metadata: meta, Name: name, Typ: p.parseType()})
		case upper:
			p.tmp.ExprTypes.Push(ast.ExprTypeField{Metadata: meta, Name: name})
		case p.peek.Kind == token.Equals:
			p.next()
			p.next()
			p.tmp.ExprValues.Push(ast.ExprValueField{Metadata: meta, Name: name, Value: p.parseExpr()})
		default:
			p.tmp.ExprValues.Push(ast.ExprValueField{Metadata: meta, Name: name})
		}

		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		p.expectPeek(token.RBrace)
		break
	}

	return ast.NewExprRecord(
		p.arena.ExprTypeFields(p.tmp.ExprTypes.Drain(typesMark)),
		p.arena.ExprValueFields(p.tmp.ExprValues.Drain(valuesMark)),
		base,
		token.Merge(start, p.cur.Span),
	)
}

// parseProjectedExpr parses an atomic expression followed by `.field`
// projections. A missing field name recovers with the empty interned
// identifier.
func (p *Parser) parseProjectedExpr() ast.Expr {
	e := p.parseAtomicExpr()
	for p.peek.Kind == token.Dot {
		p.next()
		dot := p.cur
		if p.peek.Kind != token.Identifier {
			p.unexpected(p.peek, string(token.Identifier))
			field := ast.SpannedId{Name: ast.EmptyId, Span: zeroSpan(p.peek)}
			e = ast.NewExprProjection(e, field, token.Merge(e.Span(), dot.Span))
			break
		}
		p.next()
		field := p.spannedId(p.cur)
		e = ast.NewExprProjection(e, field, token.Merge(e.Span(), p.cur.Span))
	}
	return e
}

// parseAppExpr parses a head expression optionally followed by `?`-
// marked implicit arguments and positional arguments.
func (p *Parser) parseAppExpr() ast.Expr {
	fn := p.parseProjectedExpr()

	mark := p.tmp.Exprs.Start()
	for p.peek.Kind == token.Question {
		p.next()
		p.next()
		p.tmp.Exprs.Push(p.parseProjectedExpr())
	}
	implicitArgs := p.arena.Exprs(p.tmp.Exprs.Drain(mark))

	mark = p.tmp.Exprs.Start()
	for startsAtomicExpr(p.peek.Kind) {
		p.next()
		p.tmp.Exprs.Push(p.parseProjectedExpr())
	}
	args := p.arena.Exprs(p.tmp.Exprs.Drain(mark))

	if len(implicitArgs) == 0 && len(args) == 0 {
		return fn
	}

	span := fn.Span()
	if len(args) > 0 {
		span = token.Merge(span, args[len(args)-1].Span())
	} else {
		span = token.Merge(span, implicitArgs[len(implicitArgs)-1].Span())
	}
	return ast.NewExprApp(fn, implicitArgs, args, span)
}

// parseInfixExpr parses application expressions joined by binary
// operators, and lambdas, which sit at this level: the body of
// `\x -> e + 1` is `e + 1`. Binary operators are right-associative in
// the grammar; precedence reshuffling belongs to a later pass.
func (p *Parser) parseInfixExpr() ast.Expr {
	if p.cur.Kind == token.Lambda {
		return p.parseLambdaExpr()
	}

	lhs := p.parseAppExpr()
	if p.peek.Kind != token.Operator {
		return lhs
	}

	p.next()
	op := p.spannedId(p.cur)
	p.next()
	rhs := p.parseInfixExpr()
	return ast.NewExprInfix(lhs, op, rhs, token.Merge(lhs.Span(), rhs.Span()))
}

func (p *Parser) parseLambdaExpr() ast.Expr {
	start := p.cur.Span

	mark := p.tmp.Args.Start()
	for p.peek.Kind == token.Identifier {
		p.next()
		p.tmp.Args.Push(ast.Argument{Kind: ast.ArgExplicit, Name: p.spannedId(p.cur)})
	}
	if p.tmp.Args.Len(mark) == 0 {
		p.unexpected(p.peek, string(token.Identifier))
	}
	args := p.arena.Args(p.tmp.Args.Drain(mark))

	var body ast.Expr
	if p.expectPeek(token.RArrow) {
		p.next()
		body = p.parseExpr()
	} else {
		body = ast.NewExprError(nil, zeroSpan(p.peek))
	}

	return ast.NewExprLambda(ast.EmptyId, args, body, token.Merge(start, body.Span()))
}

// parseBlockExpr parses either a layout block or a plain expression.
// A block with a single element is that element.
func (p *Parser) parseBlockExpr() ast.Expr {
	if p.cur.Kind != token.BlockOpen {
		return p.parseExpr()
	}

	p.next()
	e := p.parseBlockBody()
	p.expectPeek(token.BlockClose)
	return e
}

// parseBlockBody parses a separator-list of expressions with cur on
// the first token of the first one, stopping before the block close.
func (p *Parser) parseBlockBody() ast.Expr {
	start := p.cur.Span
	mark := p.tmp.Exprs.Start()
	for {
		p.tmp.Exprs.Push(p.parseExpr())
		if p.pendingSep {
			// cur already sits on the separator.
			p.pendingSep = false
			p.next()
			continue
		}
		if p.peek.Kind == token.BlockSep {
			p.next()
			p.next()
			continue
		}
		break
	}

	elems := p.tmp.Exprs.Drain(mark)
	if len(elems) == 1 {
		return elems[0]
	}
	span := token.Merge(start, elems[len(elems)-1].Span())
	return ast.NewExprBlock(p.arena.Exprs(elems), span)
}

// parseExpr parses the loosest expression level: conditionals, match,
// bindings, do/seq, blocks, and everything parseInfixExpr covers.
func (p *Parser) parseExpr() ast.Expr {
	var meta ast.Metadata
	if isMetadataStart(p.cur.Kind) {
		meta = p.parseMetadata()
	}

	switch p.cur.Kind {
	case token.If:
		return p.parseIfExpr()
	case token.Match:
		return p.parseMatchExpr()
	case token.Let:
		return p.parseLetExpr(meta)
	case token.Rec:
		return p.parseRecExpr(meta)
	case token.Type:
		return p.parseTypeBindingsExpr(meta)
	case token.Do:
		return p.parseDoExpr()
	case token.Seq:
		return p.parseSeqExpr()
	case token.BlockOpen:
		return p.parseBlockExpr()
	default:
		return p.parseInfixExpr()
	}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.cur.Span
	p.next()
	cond := p.parseExpr()

	var then ast.Expr
	if p.expectPeek(token.Then) {
		p.next()
		then = p.parseBlockExpr()
	} else {
		then = ast.NewExprError(nil, zeroSpan(p.peek))
	}

	var els ast.Expr
	if p.expectPeek(token.Else) {
		p.next()
		els = p.parseBlockExpr()
	} else {
		els = ast.NewExprError(nil, zeroSpan(p.peek))
	}

	return ast.NewExprIfElse(cond, then, els, token.Merge(start, els.Span()))
}

// parseMatchExpr parses `match e with | p -> block ...`. Arms recover
// in three shapes: a well-formed arm, a pattern without an arrow, and
// an arm with neither pattern nor arrow.
func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.cur.Span
	p.next()
	scrutinee := p.parseExpr()
	p.expectPeek(token.With)

	opened := false
	if p.peek.Kind == token.BlockOpen {
		p.next()
		opened = true
	}

	mark := p.tmp.Alts.Start()
	for {
		if p.peek.Kind == token.BlockSep {
			p.next()
			if p.peek.Kind != token.Pipe {
				// The separator belongs to the enclosing block.
				p.pendingSep = true
				break
			}
		}
		if p.peek.Kind != token.Pipe {
			break
		}
		p.next() // '|'
		p.tmp.Alts.Push(p.parseAlternative())
	}

	if p.tmp.Alts.Len(mark) == 0 {
		p.unexpected(p.peek, string(token.Pipe))
	}
	alts := p.arena.Alts(p.tmp.Alts.Drain(mark))

	if opened {
		p.expectPeek(token.BlockClose)
	}

	span := token.Merge(start, p.cur.Span)
	if len(alts) > 0 {
		last := alts[len(alts)-1]
		span = token.Merge(span, last.Pattern.Span())
		span = token.Merge(span, last.Expr.Span())
	}
	return ast.NewExprMatch(scrutinee, alts, span)
}

// parseAlternative parses one match arm after its `|`.
func (p *Parser) parseAlternative() ast.Alternative {
	var pat ast.Pattern
	if startsAtomicPattern(p.peek.Kind) {
		p.next()
		pat = p.parsePattern()
	} else {
		p.unexpected(p.peek, "pattern")
		pat = ast.NewPatternError(zeroSpan(p.peek))
	}

	if p.peek.Kind != token.RArrow {
		p.unexpected(p.peek, string(token.RArrow))
		p.recoverAlternative()
		return ast.Alternative{Pattern: pat, Expr: ast.NewExprError(nil, zeroSpan(p.cur))}
	}

	p.next()
	p.next()
	return ast.Alternative{Pattern: pat, Expr: p.parseBlockExpr()}
}

// recoverAlternative skips to the next arm or the end of the match so
// one malformed arm does not take the rest with it.
func (p *Parser) recoverAlternative() {
	for {
		switch p.peek.Kind {
		case token.Pipe, token.BlockSep, token.BlockClose, token.EOF, token.In:
			return
		}
		p.next()
	}
}
