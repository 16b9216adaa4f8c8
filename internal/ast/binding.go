package ast

import "github.com/lumen-lang/lumen/internal/token"

// ValueBinding is one `let` binding. A pattern-bound let has no Args; a
// named let binds a PatternIdent and may take implicit or explicit
// arguments.
type ValueBinding struct {
	Metadata Metadata
	Name     Pattern
	Args     []Argument
	Typ      Type // nil when unannotated
	Expr     Expr
	span     token.Span
}

// Span returns the binding span.
func (b *ValueBinding) Span() token.Span { return b.span }

// NewValueBinding constructs a value binding.
func NewValueBinding(meta Metadata, name Pattern, args []Argument, typ Type, expr Expr, span token.Span) ValueBinding {
	return ValueBinding{Metadata: meta, Name: name, Args: args, Typ: typ, Expr: expr, span: span}
}

// AliasData is the right-hand side of a type binding.
type AliasData struct {
	Name   SpannedId
	Params []*TypeGeneric
	Typ    Type
}

// TypeBinding is one `type` binding. Alias.Typ is either a normal type
// or a variant type possibly wrapped in a forall.
type TypeBinding struct {
	Metadata Metadata
	Name     SpannedId
	Params   []*TypeGeneric
	Alias    AliasData
	span     token.Span
}

// Span returns the binding span.
func (b *TypeBinding) Span() token.Span { return b.span }

// NewTypeBinding constructs a type binding.
func NewTypeBinding(meta Metadata, name SpannedId, params []*TypeGeneric, alias AliasData, span token.Span) TypeBinding {
	return TypeBinding{Metadata: meta, Name: name, Params: params, Alias: alias, span: span}
}
