package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

func startsAtomicPattern(k token.Kind) bool {
	switch k {
	case token.Identifier, token.LParen, token.LBrace,
		token.IntLiteral, token.ByteLiteral, token.FloatLiteral,
		token.StringLiteral, token.CharLiteral:
		return true
	default:
		return false
	}
}

// parsePattern parses `AtomicPattern | Ident AtomicPattern+`. The
// constructor-application form enforces the uppercase rule with a
// diagnostic, never a structural deviation.
func (p *Parser) parsePattern() ast.Pattern {
	if p.cur.Kind == token.Identifier &&
		p.peek.Kind != token.At &&
		startsAtomicPattern(p.peek.Kind) {

		name := p.spannedId(p.cur)
		if !ast.StartsUpper(p.cur.Raw) {
			p.sink.Emit(diag.Message(p.cur.Span, "Constructors must start with an uppercase letter"))
		}

		mark := p.tmp.Patterns.Start()
		for startsAtomicPattern(p.peek.Kind) {
			p.next()
			p.tmp.Patterns.Push(p.parseAtomicPattern())
		}
		args := p.arena.Patterns(p.tmp.Patterns.Drain(mark))
		span := token.Merge(name.Span, args[len(args)-1].Span())
		return ast.NewPatternConstructor(name, args, span)
	}

	if startsAtomicPattern(p.cur.Kind) {
		return p.parseAtomicPattern()
	}

	p.unexpected(p.cur, "pattern")
	return ast.NewPatternError(zeroSpan(p.cur))
}

func (p *Parser) parseAtomicPattern() ast.Pattern {
	switch p.cur.Kind {
	case token.Identifier:
		if p.peek.Kind == token.At {
			name := p.spannedId(p.cur)
			p.next() // '@'
			p.next()
			pat := p.parseAtomicPattern()
			return ast.NewPatternAs(name, pat, token.Merge(name.Span, pat.Span()))
		}
		name := p.spannedId(p.cur)
		if ast.StartsUpper(p.cur.Raw) {
			return ast.NewPatternConstructor(name, nil, name.Span)
		}
		return ast.NewPatternIdent(name, name.Span)

	case token.IntLiteral, token.ByteLiteral, token.FloatLiteral,
		token.StringLiteral, token.CharLiteral:
		lit := p.parseLiteral()
		return ast.NewPatternLiteral(lit, lit.Span())

	case token.LParen:
		return p.parseTuplePattern()

	case token.LBrace:
		return p.parseRecordPattern()

	default:
		p.unexpected(p.cur, "pattern")
		return ast.NewPatternError(zeroSpan(p.cur))
	}
}

func (p *Parser) parseTuplePattern() ast.Pattern {
	start := p.cur.Span

	if p.peek.Kind == token.RParen {
		p.next()
		return ast.NewPatternTuple(nil, token.Merge(start, p.cur.Span))
	}

	p.next()
	mark := p.tmp.Patterns.Start()
	for {
		p.tmp.Patterns.Push(p.parsePattern())
		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		p.expectPeek(token.RParen)
		break
	}

	elems := p.tmp.Patterns.Drain(mark)
	if len(elems) == 1 {
		return elems[0]
	}
	return ast.NewPatternTuple(p.arena.Patterns(elems), token.Merge(start, p.cur.Span))
}

// parseRecordPattern parses `{ PatternField,* "?"? }`. A trailing `?`
// binds the record's implicit arguments to a fresh synthetic name
// derived from the marker's start byte, which keeps the name unique
// within one parse.
func (p *Parser) parseRecordPattern() ast.Pattern {
	start := p.cur.Span
	typesMark := p.tmp.Ids.Start()
	valuesMark := p.tmp.PatValues.Start()
	var implicitImport *ast.SpannedId

	p.next()
	for p.cur.Kind != token.RBrace {
		if p.cur.Kind == token.Question {
			name := p.env.FromStr(fmt.Sprintf("implicit?%d", p.cur.Span.Start))
			implicitImport = &ast.SpannedId{Name: name, Span: p.cur.Span}
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

		name := p.spannedId(p.cur)
		if p.peek.Kind == token.Equals {
			p.next()
			p.next()
			p.tmp.PatValues.Push(ast.PatternValueField{Name: name, Pat: p.parsePattern()})
		} else if ast.StartsUpper(p.cur.Raw) {
			p.tmp.Ids.Push(name)
		} else {
			p.tmp.PatValues.Push(ast.PatternValueField{Name: name})
		}

		if p.peek.Kind == token.Comma {
			p.next()
			p.next()
			continue
		}
		if p.peek.Kind == token.Question {
			p.next()
			continue
		}
		p.expectPeek(token.RBrace)
		break
	}

	return ast.NewPatternRecord(
		p.arena.Ids(p.tmp.Ids.Drain(typesMark)),
		p.arena.PatternValueFields(p.tmp.PatValues.Drain(valuesMark)),
		implicitImport,
		token.Merge(start, p.cur.Span),
	)
}
