package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseTypeBindingRhs parses the right-hand side of a type binding:
// either a normal type, a variant row, or a variant nested under
// `forall` quantifiers, which accumulate outward:
//
//	| Ctor T* ...                      closed or open variant row
//	forall a. (| Ctor ...)             quantified variant
//	forall a. T                        ordinary quantified alias
func (p *Parser) parseTypeBindingRhs() ast.Type {
	if p.cur.Kind == token.Pipe {
		start := p.cur.Span
		row, span := p.parseVariantFields(start)
		return ast.NewTypeVariant(row, span)
	}
	if p.cur.Kind != token.Forall {
		return p.parseType()
	}

	start := p.cur.Span
	mark := p.tmp.Generics.Start()
	depth := 0
	for p.cur.Kind == token.Forall {
		for p.peek.Kind == token.Identifier {
			p.next()
			p.tmp.Generics.Push(ast.NewTypeGeneric(p.spannedId(p.cur), p.types.Kinds().Hole(), p.cur.Span))
		}
		p.expectPeek(token.Dot)
		p.next()
		if p.cur.Kind == token.LParen && (p.peek.Kind == token.Pipe || p.peek.Kind == token.Forall) {
			depth++
			p.next()
			continue
		}
		break
	}
	params := p.tmp.Generics.Drain(mark)

	if p.cur.Kind == token.Pipe {
		row, span := p.parseVariantFields(start)
		for i := 0; i < depth; i++ {
			p.expectPeek(token.RParen)
		}
		variant := ast.NewTypeVariant(row, span)
		return p.types.Forall(params, variant, token.Merge(start, p.cur.Span))
	}

	body := p.parseType()
	for i := 0; i < depth; i++ {
		p.expectPeek(token.RParen)
	}
	return p.types.Forall(params, body, token.Merge(start, body.Span()))
}

// parseVariantFields parses `("|" Ctor ...)+ (".." AtomicType)?` with
// cur on the first `|` and lowers each field:
//
//   - a simple variant `| C T1 .. Tn` becomes `C : T1 -> .. -> Tn -> Opaque`
//     with every argument arrow tagged Constructor;
//   - a GADT variant `| C : T` keeps T but re-tags its leading
//     function-arrow spine as Constructor in place.
func (p *Parser) parseVariantFields(start token.Span) (ast.Type, token.Span) {
	mark := p.tmp.ValFields.Start()

	for p.cur.Kind == token.Pipe {
		if p.peek.Kind != token.Identifier {
			p.unexpected(p.peek, string(token.Identifier))
			break
		}
		p.next()
		ctor := p.spannedId(p.cur)
		if !ast.StartsUpper(p.cur.Raw) {
			p.sink.Emit(diag.Message(p.cur.Span, "Constructors must start with an uppercase letter"))
		}

		if p.peek.Kind == token.Colon {
			p.next()
			p.next()
			typ := p.parseType()
			retagConstructorArgs(typ)
			p.tmp.ValFields.Push(ast.ValueField{Name: ctor, Typ: typ})
		} else {
			amark := p.tmp.Types.Start()
			for startsAtomicType(p.peek.Kind) {
				p.next()
				p.tmp.Types.Push(p.parseAtomicType())
			}
			args := p.tmp.Types.Drain(amark)
			typ := p.types.Function(ast.ArgConstructor, args, p.types.Opaque(ctor.Span), ctor.Span)
			p.tmp.ValFields.Push(ast.ValueField{Name: ctor, Typ: typ})
		}

		if p.peek.Kind == token.Pipe {
			p.next()
			continue
		}
		break
	}

	var rest ast.Type
	if p.peek.Kind == token.DotDot {
		p.next()
		p.next()
		rest = p.parseAtomicType()
	}

	span := token.Merge(start, p.cur.Span)
	if rest == nil {
		rest = p.types.EmptyRow(zeroSpan(p.cur))
	}
	return p.types.ExtendRow(p.tmp.ValFields.Drain(mark), rest, span), span
}

// retagConstructorArgs walks the leading function-arrow spine of a
// GADT constructor type and marks each argument as a constructor
// argument. The result type is left untouched.
func retagConstructorArgs(t ast.Type) {
	for {
		fn, ok := t.(*ast.TypeFunction)
		if !ok {
			return
		}
		fn.Arg = ast.ArgConstructor
		t = fn.To
	}
}
