package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

// startsAtomicType reports whether k can begin an atomic type in an
// application-argument position. Effect rows (`[|`) need a lookahead
// past the bracket, so they are excluded here and must be parenthesized
// when used as a type argument.
func startsAtomicType(k token.Kind) bool {
	switch k {
	case token.Identifier, token.LParen, token.LBrace:
		return true
	default:
		return false
	}
}

// parseType parses the loosest type level:
//
//	Type → AppType | "forall" Ident+ "." Type | ArgType "->" Type
//	ArgType → AppType | "[" Type "]"
func (p *Parser) parseType() ast.Type {
	if p.cur.Kind == token.Forall {
		return p.parseForallType()
	}

	start := p.cur.Span
	argKind := ast.ArgExplicit
	var from ast.Type

	if p.cur.Kind == token.LBracket && p.peek.Kind != token.Pipe {
		// Implicit argument marker `[T]`.
		argKind = ast.ArgImplicit
		p.next()
		from = p.parseType()
		p.expectPeek(token.RBracket)
	} else {
		from = p.parseAppType()
	}

	if p.peek.Kind == token.RArrow {
		p.next()
		p.next()
		to := p.parseType()
		return ast.NewTypeFunction(argKind, from, to, token.Merge(start, to.Span()))
	}
	if argKind == ast.ArgImplicit {
		p.unexpected(p.peek, string(token.RArrow))
	}
	return from
}

func (p *Parser) parseForallType() ast.Type {
	start := p.cur.Span
	mark := p.tmp.Generics.Start()
	for p.peek.Kind == token.Identifier {
		p.next()
		p.tmp.Generics.Push(ast.NewTypeGeneric(p.spannedId(p.cur), p.types.Kinds().Hole(), p.cur.Span))
	}
	if p.tmp.Generics.Len(mark) == 0 {
		p.unexpected(p.peek, string(token.Identifier))
	}
	p.expectPeek(token.Dot)
	p.next()
	body := p.parseType()
	return p.types.Forall(p.tmp.Generics.Drain(mark), body, token.Merge(start, body.Span()))
}

// parseAppType parses `AtomicType AtomicType*`.
func (p *Parser) parseAppType() ast.Type {
	head := p.parseAtomicType()
	mark := p.tmp.Types.Start()
	for startsAtomicType(p.peek.Kind) {
		p.next()
		p.tmp.Types.Push(p.parseAtomicType())
	}
	if p.tmp.Types.Len(mark) == 0 {
		p.tmp.Types.Drain(mark)
		return head
	}
	args := p.arena.Types(p.tmp.Types.Drain(mark))
	span := token.Merge(head.Span(), args[len(args)-1].Span())
	return ast.NewTypeApp(head, args, span)
}

func (p *Parser) parseAtomicType() ast.Type {
	switch p.cur.Kind {
	case token.Identifier:
		return p.parseTypePath()
	case token.LParen:
		return p.parseParenType()
	case token.LBracket:
		return p.parseEffectType()
	case token.LBrace:
		return p.parseRecordType()
	default:
		p.unexpected(p.cur, "type")
		return p.types.Hole(zeroSpan(p.cur))
	}
}

// parseTypePath parses a dotted path `(Ident ".")* IdentStr`. A single
// segment classifies by shape: `_` is a hole, a builtin name is a
// builtin, an uppercase-leading name a named type, anything else a type
// variable.
func (p *Parser) parseTypePath() ast.Type {
	start := p.cur.Span
	mark := p.tmp.Ids.Start()
	p.tmp.Ids.Push(p.spannedId(p.cur))
	end := p.cur.Span

	for p.peek.Kind == token.Dot {
		p.next()
		if p.peek.Kind != token.Identifier {
			p.unexpected(p.peek, string(token.Identifier))
			break
		}
		p.next()
		p.tmp.Ids.Push(p.spannedId(p.cur))
		end = p.cur.Span
	}

	if p.tmp.Ids.Len(mark) > 1 {
		path := p.arena.Ids(p.tmp.Ids.Drain(mark))
		return ast.NewTypeProjection(path, token.Merge(start, end))
	}

	head := p.tmp.Ids.Drain(mark)[0]
	name := p.env.String(head.Name)
	if name == "_" {
		return p.types.Hole(head.Span)
	}
	if builtin, ok := p.types.Builtin(name, head.Span); ok {
		return builtin
	}
	if ast.StartsUpper(name) {
		return ast.NewTypeIdent(head, p.types.Kinds().Hole(), head.Span)
	}
	return ast.NewTypeGeneric(head, p.types.Kinds().Hole(), head.Span)
}

func (p *Parser) parseParenType() ast.Type {
	start := p.cur.Span

	switch p.peek.Kind {
	case token.RArrow:
		// `( -> )` names the function constructor.
		p.next()
		p.expectPeek(token.RParen)
		return ast.NewTypeBuiltin(ast.BuiltinFunction, token.Merge(start, p.cur.Span))
	case token.DotDot:
		// `( .. r )` is an open variant row.
		p.next()
		p.next()
		rest := p.parseAtomicType()
		p.expectPeek(token.RParen)
		return ast.NewTypeVariant(rest, token.Merge(start, p.cur.Span))
	case token.RParen:
		p.next()
		return p.types.Tuple(nil, token.Merge(start, p.cur.Span))
	}

	p.next()
	mark := p.tmp.Types.Start()
	for {
		p.tmp.Types.Push(p.parseType())
		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		p.expectPeek(token.RParen)
		break
	}
	return p.types.Tuple(p.tmp.Types.Drain(mark), token.Merge(start, p.cur.Span))
}

// parseEffectType parses `[| eff : T, ... | rest |]`.
func (p *Parser) parseEffectType() ast.Type {
	start := p.cur.Span
	p.expectPeek(token.Pipe)

	mark := p.tmp.ValFields.Start()
	var rest ast.Type

	for p.peek.Kind == token.Identifier {
		p.next()
		name := p.spannedId(p.cur)
		p.expectPeek(token.Colon)
		p.next()
		p.tmp.ValFields.Push(ast.ValueField{Name: name, Typ: p.parseType()})
		if p.peek.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}

	if p.expectPeek(token.Pipe) && p.peek.Kind != token.RBracket {
		p.next()
		rest = p.parseType()
		p.expectPeek(token.Pipe)
	}
	p.expectPeek(token.RBracket)

	span := token.Merge(start, p.cur.Span)
	if rest == nil {
		rest = p.types.EmptyRow(zeroSpan(p.cur))
	}
	row := p.types.ExtendRow(p.tmp.ValFields.Drain(mark), rest, span)
	return ast.NewTypeEffect(row, span)
}

// parseRecordType parses `{ RecordField,* ("|" rest)? }`. Fields are
// split into type-level aliases and value-typed fields.
func (p *Parser) parseRecordType() ast.Type {
	start := p.cur.Span
	typesMark := p.tmp.TypeFields.Start()
	fieldsMark := p.tmp.ValFields.Start()
	var rest ast.Type

	p.next()
	for p.cur.Kind != token.RBrace {
		var meta ast.Metadata
		if isMetadataStart(p.cur.Kind) {
			meta = p.parseMetadata()
		}

		if p.cur.Kind == token.Pipe {
			p.next()
			rest = p.parseType()
			p.expectPeek(token.RBrace)
			break
		}

		if p.cur.Kind != token.Identifier {
			p.unexpected(p.cur, string(token.Identifier), string(token.RBrace))
			p.recoverField()
			if p.cur.Kind == token.EOF {
				break
			}
			continue
		}

		p.parseRecordTypeField(meta)

		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		if p.peek.Kind == token.Pipe {
			p.next()
			p.next()
			rest = p.parseType()
			p.expectPeek(token.RBrace)
			break
		}
		p.expectPeek(token.RBrace)
		break
	}

	span := token.Merge(start, p.cur.Span)
	if rest == nil {
		rest = p.types.EmptyRow(zeroSpan(p.cur))
	}
	row := p.types.ExtendFullRow(p.tmp.TypeFields.Drain(typesMark), p.tmp.ValFields.Drain(fieldsMark), rest, span)
	return ast.NewTypeRecord(row, span)
}

// parseRecordTypeField parses one record-type field with cur on its
// name and pushes it onto the matching scratch stack.
//
//	metadata? id Ident* "=" Type   → type alias
//	metadata? id                   → type alias with Hole body
//	metadata? id ":" Type          → value-typed field (lowercase id)
func (p *Parser) parseRecordTypeField(meta ast.Metadata) {
	name := p.spannedId(p.cur)
	upper := ast.StartsUpper(p.cur.Raw)

	mark := p.tmp.Generics.Start()
	for p.peek.Kind == token.Identifier {
		p.next()
		p.tmp.Generics.Push(ast.NewTypeGeneric(p.spannedId(p.cur), p.types.Kinds().Hole(), p.cur.Span))
	}
	params := p.tmp.Generics.Drain(mark)

	switch {
	case p.peek.Kind == token.Equals:
		p.next()
		p.next()
		p.tmp.TypeFields.Push(ast.TypeField{
			Metadata: meta,
			Name:     name,
			Params:   p.arena.Generics(params),
			Typ:      p.parseType(),
		})
	case len(params) > 0:
		p.unexpected(p.peek, string(token.Equals))
		p.tmp.TypeFields.Push(ast.TypeField{
			Metadata: meta,
			Name:     name,
			Params:   p.arena.Generics(params),
			Typ:      p.types.Hole(zeroSpan(p.peek)),
		})
	case p.peek.Kind == token.Colon:
		p.next()
		p.next()
		typ := p.parseType()
		if upper {
			p.sink.Emit(diag.Message(name.Span, "Defining a kind for a type in this location is not supported yet"))
			p.tmp.TypeFields.Push(ast.TypeField{Metadata: meta, Name: name, Typ: p.types.Hole(name.Span)})
			return
		}
		p.tmp.ValFields.Push(ast.ValueField{Metadata: meta, Name: name, Typ: typ})
	default:
		p.tmp.TypeFields.Push(ast.TypeField{Metadata: meta, Name: name, Typ: p.types.Hole(name.Span)})
	}
}

// recoverField skips to the next comma, closing brace or EOF so field
// lists survive a malformed entry.
func (p *Parser) recoverField() {
	for {
		switch p.cur.Kind {
		case token.EOF, token.RBrace:
			return
		case token.Comma:
			p.next()
			return
		}
		p.next()
	}
}
