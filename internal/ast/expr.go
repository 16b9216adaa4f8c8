package ast

import "github.com/lumen-lang/lumen/internal/token"

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// ExprIdent references a value or constructor by name.
type ExprIdent struct {
	Name SpannedId
	span token.Span
}

// Span returns the identifier span.
func (e *ExprIdent) Span() token.Span { return e.span }

func (*ExprIdent) exprNode() {}

// NewExprIdent constructs an identifier expression.
func NewExprIdent(name SpannedId, span token.Span) *ExprIdent {
	return &ExprIdent{Name: name, span: span}
}

// ExprLiteral wraps a literal value.
type ExprLiteral struct {
	Lit  Literal
	span token.Span
}

// Span returns the literal span.
func (e *ExprLiteral) Span() token.Span { return e.span }

func (*ExprLiteral) exprNode() {}

// NewExprLiteral constructs a literal expression.
func NewExprLiteral(lit Literal, span token.Span) *ExprLiteral {
	return &ExprLiteral{Lit: lit, span: span}
}

// ExprProjection selects a field from an expression (`e.field`). A
// recovered projection uses the empty interned identifier as Field.
type ExprProjection struct {
	Expr  Expr
	Field SpannedId
	span  token.Span
}

// Span returns the projection span.
func (e *ExprProjection) Span() token.Span { return e.span }

func (*ExprProjection) exprNode() {}

// ExprTuple is a tuple literal.
type ExprTuple struct {
	Elems []Expr
	span  token.Span
}

// Span returns the tuple span.
func (e *ExprTuple) Span() token.Span { return e.span }

func (*ExprTuple) exprNode() {}

// ExprArray is an array literal.
type ExprArray struct {
	Elems []Expr
	span  token.Span
}

// Span returns the array span.
func (e *ExprArray) Span() token.Span { return e.span }

func (*ExprArray) exprNode() {}

// ExprTypeField is a type-level field of a record expression, written
// with an uppercase-leading name. A nil Typ puns the surrounding alias.
type ExprTypeField struct {
	Metadata Metadata
	Name     SpannedId
	Typ      Type
}

// ExprValueField is a value-level field of a record expression. A nil
// Value binds the field to the variable of the same name.
type ExprValueField struct {
	Metadata Metadata
	Name     SpannedId
	Value    Expr
}

// ExprRecord is a record literal. Fields are split into type-level and
// value-level buckets, each preserving insertion order. Base, when
// non-nil, is the `.. e` record the literal extends.
type ExprRecord struct {
	Types  []ExprTypeField
	Values []ExprValueField
	Base   Expr
	span   token.Span
}

// Span returns the record span.
func (e *ExprRecord) Span() token.Span { return e.span }

func (*ExprRecord) exprNode() {}

// ExprApp applies a function to implicit (`?x`) and positional
// arguments. At least one of the two argument lists is non-empty.
type ExprApp struct {
	Func         Expr
	ImplicitArgs []Expr
	Args         []Expr
	span         token.Span
}

// Span returns the application span.
func (e *ExprApp) Span() token.Span { return e.span }

func (*ExprApp) exprNode() {}

// NewExprApp constructs an application expression.
func NewExprApp(fn Expr, implicitArgs, args []Expr, span token.Span) *ExprApp {
	return &ExprApp{Func: fn, ImplicitArgs: implicitArgs, Args: args, span: span}
}

// ExprInfix is a binary operator application. The grammar is
// right-associative with no precedence between operators; the
// precedence reshuffle belongs to a later pass seeded with these nodes.
type ExprInfix struct {
	Lhs          Expr
	Op           SpannedId
	Rhs          Expr
	ImplicitArgs []Expr
	span         token.Span
}

// Span returns the infix span.
func (e *ExprInfix) Span() token.Span { return e.span }

func (*ExprInfix) exprNode() {}

// Argument is a lambda or named-binding parameter.
type Argument struct {
	Kind ArgKind
	Name SpannedId
}

// ExprLambda is an anonymous function. Id is the empty interned
// identifier until a later pass names the closure.
type ExprLambda struct {
	Id   Id
	Args []Argument
	Body Expr
	span token.Span
}

// Span returns the lambda span.
func (e *ExprLambda) Span() token.Span { return e.span }

func (*ExprLambda) exprNode() {}

// ExprIfElse is a conditional expression.
type ExprIfElse struct {
	Cond Expr
	Then Expr
	Else Expr
	span token.Span
}

// Span returns the conditional span.
func (e *ExprIfElse) Span() token.Span { return e.span }

func (*ExprIfElse) exprNode() {}

// Alternative is one `| pattern -> expr` arm of a match expression.
type Alternative struct {
	Pattern Pattern
	Expr    Expr
}

// ExprMatch scrutinizes a value against alternatives.
type ExprMatch struct {
	Scrutinee Expr
	Alts      []Alternative
	span      token.Span
}

// Span returns the match span.
func (e *ExprMatch) Span() token.Span { return e.span }

func (*ExprMatch) exprNode() {}

// LetKind distinguishes plain from recursive binding groups.
type LetKind int

const (
	// LetPlain is a non-recursive `let`.
	LetPlain LetKind = iota
	// LetRecursive is a `rec let` group of mutually recursive bindings.
	LetRecursive
)

// ExprLet binds values in Body.
type ExprLet struct {
	Kind     LetKind
	Bindings []ValueBinding
	Body     Expr
	span     token.Span
}

// Span returns the let span.
func (e *ExprLet) Span() token.Span { return e.span }

func (*ExprLet) exprNode() {}

// ExprTypeBindings binds types (possibly mutually recursive) in Body.
type ExprTypeBindings struct {
	Bindings []TypeBinding
	Body     Expr
	span     token.Span
}

// Span returns the type-bindings span.
func (e *ExprTypeBindings) Span() token.Span { return e.span }

func (*ExprTypeBindings) exprNode() {}

// ExprDo is monadic binding: `do p = e in body`, or `seq e in body`
// when Id is nil. FlatMapId is reserved for the elaboration pass and is
// always nil after parsing.
type ExprDo struct {
	Id        Pattern
	Bound     Expr
	Body      Expr
	FlatMapId Expr
	span      token.Span
}

// Span returns the do span.
func (e *ExprDo) Span() token.Span { return e.span }

func (*ExprDo) exprNode() {}

// ExprBlock is a sequence of expressions separated by layout-
// synthesized separators.
type ExprBlock struct {
	Exprs []Expr
	span  token.Span
}

// Span returns the block span.
func (e *ExprBlock) Span() token.Span { return e.span }

func (*ExprBlock) exprNode() {}

// ExprError is the placeholder synthesized at a recovery site. Payload
// keeps any subtree that had been built before the error; recovery
// never discards already-built children.
type ExprError struct {
	Payload Expr
	span    token.Span
}

// Span returns the placeholder span.
func (e *ExprError) Span() token.Span { return e.span }

func (*ExprError) exprNode() {}

// NewExprProjection constructs a field projection.
func NewExprProjection(expr Expr, field SpannedId, span token.Span) *ExprProjection {
	return &ExprProjection{Expr: expr, Field: field, span: span}
}

// NewExprTuple constructs a tuple literal.
func NewExprTuple(elems []Expr, span token.Span) *ExprTuple {
	return &ExprTuple{Elems: elems, span: span}
}

// NewExprArray constructs an array literal.
func NewExprArray(elems []Expr, span token.Span) *ExprArray {
	return &ExprArray{Elems: elems, span: span}
}

// NewExprRecord constructs a record literal.
func NewExprRecord(types []ExprTypeField, values []ExprValueField, base Expr, span token.Span) *ExprRecord {
	return &ExprRecord{Types: types, Values: values, Base: base, span: span}
}

// NewExprInfix constructs a binary operator application.
func NewExprInfix(lhs Expr, op SpannedId, rhs Expr, span token.Span) *ExprInfix {
	return &ExprInfix{Lhs: lhs, Op: op, Rhs: rhs, span: span}
}

// NewExprLambda constructs a lambda with the given id; the parser passes
// EmptyId.
func NewExprLambda(id Id, args []Argument, body Expr, span token.Span) *ExprLambda {
	return &ExprLambda{Id: id, Args: args, Body: body, span: span}
}

// NewExprIfElse constructs a conditional.
func NewExprIfElse(cond, then, els Expr, span token.Span) *ExprIfElse {
	return &ExprIfElse{Cond: cond, Then: then, Else: els, span: span}
}

// NewExprMatch constructs a match expression.
func NewExprMatch(scrutinee Expr, alts []Alternative, span token.Span) *ExprMatch {
	return &ExprMatch{Scrutinee: scrutinee, Alts: alts, span: span}
}

// NewExprLet constructs a binding group expression.
func NewExprLet(kind LetKind, bindings []ValueBinding, body Expr, span token.Span) *ExprLet {
	return &ExprLet{Kind: kind, Bindings: bindings, Body: body, span: span}
}

// NewExprTypeBindings constructs a type binding group expression.
func NewExprTypeBindings(bindings []TypeBinding, body Expr, span token.Span) *ExprTypeBindings {
	return &ExprTypeBindings{Bindings: bindings, Body: body, span: span}
}

// NewExprDo constructs a monadic binding; id is nil for `seq`.
func NewExprDo(id Pattern, bound, body Expr, span token.Span) *ExprDo {
	return &ExprDo{Id: id, Bound: bound, Body: body, span: span}
}

// NewExprBlock constructs a block of separated expressions.
func NewExprBlock(exprs []Expr, span token.Span) *ExprBlock {
	return &ExprBlock{Exprs: exprs, span: span}
}

// NewExprError constructs a recovery placeholder expression.
func NewExprError(payload Expr, span token.Span) *ExprError {
	return &ExprError{Payload: payload, span: span}
}
