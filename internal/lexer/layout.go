package lexer

import (
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

// Layout resolves indentation to explicit block markers. It maintains a
// stack of block indent columns: the first token of the stream opens the
// outermost block; a line that starts deeper than the current block
// after a block-introducing token opens a nested one; a line at the
// block's indent yields a separator; a shallower line closes blocks
// until the indent matches. Synthesized tokens are zero-width.
type Layout struct {
	sc      *Scanner
	pending []token.Token
	stack   []int
	prev    token.Token
	started bool

	attrDepth int
	afterAttr bool
	closedEOF bool
}

// NewLayout wraps sc in a layout filter.
func NewLayout(sc *Scanner) *Layout {
	return &Layout{sc: sc}
}

// opensBlock reports whether a deeper following line starts a block.
func opensBlock(k token.Kind) bool {
	switch k {
	case token.Equals, token.RArrow, token.Then, token.Else, token.In,
		token.With, token.Seq, token.Do:
		return true
	default:
		return false
	}
}

// continuation tokens never receive a separator; they extend the
// expression begun on a previous line.
func isContinuation(k token.Kind) bool {
	switch k {
	case token.In, token.Then, token.Else, token.With:
		return true
	default:
		return false
	}
}

func synth(kind token.Kind, at token.Span) token.Token {
	return token.Token{
		Kind: kind,
		Span: token.Span{Start: at.Start, End: at.Start, Line: at.Line, Column: at.Column},
	}
}

// Next returns the next token, synthesizing layout markers as needed.
func (l *Layout) Next() token.Token {
	for len(l.pending) == 0 {
		l.fill()
	}
	t := l.pending[0]
	l.pending = l.pending[1:]
	return t
}

func (l *Layout) fill() {
	t := l.sc.Next()

	if t.Kind == token.EOF {
		if !l.closedEOF {
			for range l.stack {
				l.pending = append(l.pending, synth(token.BlockClose, t.Span))
			}
			l.stack = nil
			l.closedEOF = true
		}
		l.pending = append(l.pending, t)
		return
	}

	if t.Kind == token.Shebang {
		l.pending = append(l.pending, t)
		return
	}

	if !l.started {
		l.started = true
		l.stack = []int{t.Span.Column}
		l.pending = append(l.pending, synth(token.BlockOpen, t.Span), t)
		l.track(t)
		return
	}

	if t.Span.Line > l.prev.Span.Line && !l.suppressed() {
		top := l.stack[len(l.stack)-1]
		switch {
		case opensBlock(l.prev.Kind) && t.Span.Column > top:
			l.stack = append(l.stack, t.Span.Column)
			l.pending = append(l.pending, synth(token.BlockOpen, t.Span))
		default:
			for len(l.stack) > 1 && t.Span.Column < l.stack[len(l.stack)-1] {
				l.pending = append(l.pending, synth(token.BlockClose, t.Span))
				l.stack = l.stack[:len(l.stack)-1]
			}
			if t.Span.Column == l.stack[len(l.stack)-1] && !isContinuation(t.Kind) {
				l.pending = append(l.pending, synth(token.BlockSep, t.Span))
			}
		}
	}

	l.pending = append(l.pending, t)
	l.track(t)
}

// suppressed reports whether layout is paused: inside an attribute, or
// immediately after a doc comment or attribute close, so that metadata
// stays attached to the binding that follows it.
func (l *Layout) suppressed() bool {
	return l.attrDepth > 0 || l.afterAttr || token.IsDocComment(l.prev.Kind)
}

func (l *Layout) track(t token.Token) {
	l.afterAttr = false
	switch t.Kind {
	case token.AttributeOpen:
		l.attrDepth++
	case token.LBracket:
		if l.attrDepth > 0 {
			l.attrDepth++
		}
	case token.RBracket:
		if l.attrDepth > 0 {
			l.attrDepth--
			if l.attrDepth == 0 {
				l.afterAttr = true
			}
		}
	}
	l.prev = t
}

// Tokens runs src through the scanner and layout filter, returning the
// complete token stream ending in EOF. Diagnostics go to sink.
func Tokens(src string, sink *diag.Sink) []token.Token {
	l := NewLayout(NewScanner(src, sink))
	var out []token.Token
	for {
		t := l.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}
