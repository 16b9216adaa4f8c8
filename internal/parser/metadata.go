package parser

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseMetadata consumes consecutive documentation comments and
// attributes with cur on the first of them, returning with cur on the
// token that follows. Doc comments aggregate into one comment joined
// with "\n"; the category is that of the last raw comment.
func (p *Parser) parseMetadata() ast.Metadata {
	var comments []string
	category := ast.CommentLine
	mark := p.tmp.Attrs.Start()

	for {
		switch p.cur.Kind {
		case token.DocLineComment:
			comments = append(comments, p.cur.Value)
			category = ast.CommentLine
		case token.DocBlockComment:
			comments = append(comments, p.cur.Value)
			category = ast.CommentBlock
		case token.AttributeOpen:
			p.tmp.Attrs.Push(p.parseAttribute())
		default:
			meta := ast.Metadata{Attributes: p.arena.Attributes(p.tmp.Attrs.Drain(mark))}
			if len(comments) > 0 {
				meta.Comment = &ast.Comment{Category: category, Content: strings.Join(comments, "\n")}
			}
			return meta
		}
		p.next()
	}
}

// parseAttribute parses `#[name]` or `#[name(arguments)]` with cur on
// `#[`. The argument text between the parentheses is preserved
// byte-for-byte from the source.
func (p *Parser) parseAttribute() ast.Attribute {
	start := p.cur.Span
	attr := ast.Attribute{Span: start}

	if !p.expectPeek(token.Identifier) {
		p.recoverAttribute()
		attr.Span = token.Merge(start, p.cur.Span)
		return attr
	}
	attr.Name = p.cur.Raw

	if p.peek.Kind == token.LParen {
		p.next()
		open := p.cur.Span.End
		depth := 1
		for depth > 0 {
			if p.peek.Kind == token.EOF {
				p.unexpected(p.peek, string(token.RParen))
				break
			}
			p.next()
			switch p.cur.Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
			}
		}
		raw := p.sliceSource(open, p.cur.Span.Start)
		attr.Arguments = &raw
	}

	p.expectPeek(token.RBracket)
	attr.Span = token.Merge(start, p.cur.Span)
	return attr
}

// sliceSource cuts [start, end) out of the original source, adjusting
// for the fragment's start index.
func (p *Parser) sliceSource(start, end int) string {
	start -= p.startIndex
	end -= p.startIndex
	if start < 0 || end > len(p.src) || start > end {
		return ""
	}
	return p.src[start:end]
}

// recoverAttribute skips to the closing bracket of a malformed
// attribute.
func (p *Parser) recoverAttribute() {
	for p.cur.Kind != token.RBracket && p.cur.Kind != token.EOF {
		if p.peek.Kind == token.EOF {
			return
		}
		p.next()
	}
}
