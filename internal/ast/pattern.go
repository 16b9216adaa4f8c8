package ast

import "github.com/lumen-lang/lumen/internal/token"

// Pattern represents a match pattern node.
type Pattern interface {
	Node
	patternNode()
}

// PatternIdent binds the matched value to a name; the name does not
// begin uppercase.
type PatternIdent struct {
	Name SpannedId
	span token.Span
}

// Span returns the identifier span.
func (p *PatternIdent) Span() token.Span { return p.span }

func (*PatternIdent) patternNode() {}

// NewPatternIdent constructs an identifier pattern.
func NewPatternIdent(name SpannedId, span token.Span) *PatternIdent {
	return &PatternIdent{Name: name, span: span}
}

// PatternConstructor matches a data constructor application; the
// constructor name begins uppercase.
type PatternConstructor struct {
	Name SpannedId
	Args []Pattern
	span token.Span
}

// Span returns the constructor pattern span.
func (p *PatternConstructor) Span() token.Span { return p.span }

func (*PatternConstructor) patternNode() {}

// NewPatternConstructor constructs a constructor pattern.
func NewPatternConstructor(name SpannedId, args []Pattern, span token.Span) *PatternConstructor {
	return &PatternConstructor{Name: name, Args: args, span: span}
}

// PatternLiteral matches a literal value.
type PatternLiteral struct {
	Lit  Literal
	span token.Span
}

// Span returns the literal pattern span.
func (p *PatternLiteral) Span() token.Span { return p.span }

func (*PatternLiteral) patternNode() {}

// PatternAs binds a name to the whole of a subpattern (`x @ pat`).
type PatternAs struct {
	Name SpannedId
	Pat  Pattern
	span token.Span
}

// Span returns the as-pattern span.
func (p *PatternAs) Span() token.Span { return p.span }

func (*PatternAs) patternNode() {}

// PatternTuple matches a tuple elementwise.
type PatternTuple struct {
	Elems []Pattern
	span  token.Span
}

// Span returns the tuple pattern span.
func (p *PatternTuple) Span() token.Span { return p.span }

func (*PatternTuple) patternNode() {}

// PatternValueField is one value entry of a record pattern. A nil Pat
// binds the field to its own name.
type PatternValueField struct {
	Name SpannedId
	Pat  Pattern
}

// PatternRecord destructures a record. Types holds type-punned bindings
// (uppercase bare fields); Values holds value bindings.
//
// ImplicitImport is the fresh synthetic name generated when the pattern
// ends with `?`; it binds the record's implicit arguments and has the
// form `implicit?<start-byte>`, which keeps it unique within a parse.
type PatternRecord struct {
	Types          []SpannedId
	Values         []PatternValueField
	ImplicitImport *SpannedId
	span           token.Span
}

// Span returns the record pattern span.
func (p *PatternRecord) Span() token.Span { return p.span }

func (*PatternRecord) patternNode() {}

// PatternError is the placeholder synthesized at a recovery site.
type PatternError struct {
	span token.Span
}

// Span returns the placeholder span.
func (p *PatternError) Span() token.Span { return p.span }

func (*PatternError) patternNode() {}

// NewPatternLiteral constructs a literal pattern.
func NewPatternLiteral(lit Literal, span token.Span) *PatternLiteral {
	return &PatternLiteral{Lit: lit, span: span}
}

// NewPatternAs constructs an as-pattern.
func NewPatternAs(name SpannedId, pat Pattern, span token.Span) *PatternAs {
	return &PatternAs{Name: name, Pat: pat, span: span}
}

// NewPatternTuple constructs a tuple pattern.
func NewPatternTuple(elems []Pattern, span token.Span) *PatternTuple {
	return &PatternTuple{Elems: elems, span: span}
}

// NewPatternRecord constructs a record pattern.
func NewPatternRecord(types []SpannedId, values []PatternValueField, implicitImport *SpannedId, span token.Span) *PatternRecord {
	return &PatternRecord{Types: types, Values: values, ImplicitImport: implicitImport, span: span}
}

// NewPatternError constructs a recovery placeholder pattern.
func NewPatternError(span token.Span) *PatternError { return &PatternError{span: span} }
