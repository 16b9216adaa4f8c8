package ast

import "github.com/lumen-lang/lumen/internal/token"

// Literal is a literal value shared between expressions and patterns.
type Literal interface {
	Node
	literalNode()
}

// LitInt is an integer literal.
type LitInt struct {
	Value int64
	span  token.Span
}

// Span returns the literal span.
func (l *LitInt) Span() token.Span { return l.span }

func (*LitInt) literalNode() {}

// NewLitInt constructs an integer literal.
func NewLitInt(value int64, span token.Span) *LitInt {
	return &LitInt{Value: value, span: span}
}

// LitByte is a byte literal (`42b`).
type LitByte struct {
	Value byte
	span  token.Span
}

// Span returns the literal span.
func (l *LitByte) Span() token.Span { return l.span }

func (*LitByte) literalNode() {}

// NewLitByte constructs a byte literal.
func NewLitByte(value byte, span token.Span) *LitByte {
	return &LitByte{Value: value, span: span}
}

// LitFloat is a floating point literal.
type LitFloat struct {
	Value float64
	span  token.Span
}

// Span returns the literal span.
func (l *LitFloat) Span() token.Span { return l.span }

func (*LitFloat) literalNode() {}

// NewLitFloat constructs a float literal.
func NewLitFloat(value float64, span token.Span) *LitFloat {
	return &LitFloat{Value: value, span: span}
}

// LitString is a string literal holding the unescaped text.
type LitString struct {
	Value string
	span  token.Span
}

// Span returns the literal span.
func (l *LitString) Span() token.Span { return l.span }

func (*LitString) literalNode() {}

// NewLitString constructs a string literal.
func NewLitString(value string, span token.Span) *LitString {
	return &LitString{Value: value, span: span}
}

// LitChar is a character literal holding the unescaped rune.
type LitChar struct {
	Value rune
	span  token.Span
}

// Span returns the literal span.
func (l *LitChar) Span() token.Span { return l.span }

func (*LitChar) literalNode() {}

// NewLitChar constructs a char literal.
func NewLitChar(value rune, span token.Span) *LitChar {
	return &LitChar{Value: value, span: span}
}
