package ast

import "github.com/lumen-lang/lumen/internal/token"

// Type represents a type expression node.
type Type interface {
	Node
	typeNode()
}

// ArgKind tags how a function argument is passed.
type ArgKind int

const (
	// ArgExplicit is an ordinary positional argument.
	ArgExplicit ArgKind = iota
	// ArgImplicit is elided at call sites and resolved by elaboration;
	// written `?x` at use and `[T]` at declaration.
	ArgImplicit
	// ArgConstructor marks the arguments of a data constructor in a
	// variant declaration.
	ArgConstructor
)

func (k ArgKind) String() string {
	switch k {
	case ArgImplicit:
		return "implicit"
	case ArgConstructor:
		return "constructor"
	default:
		return "explicit"
	}
}

// Builtin enumerates the primitive type constructors.
type Builtin int

const (
	BuiltinFunction Builtin = iota
	BuiltinInt
	BuiltinByte
	BuiltinFloat
	BuiltinString
	BuiltinChar
	BuiltinArray
)

func (b Builtin) String() string {
	switch b {
	case BuiltinFunction:
		return "->"
	case BuiltinInt:
		return "Int"
	case BuiltinByte:
		return "Byte"
	case BuiltinFloat:
		return "Float"
	case BuiltinString:
		return "String"
	case BuiltinChar:
		return "Char"
	case BuiltinArray:
		return "Array"
	}
	return "?"
}

// TypeHole is a type to be inferred.
type TypeHole struct {
	span token.Span
}

// Span returns the hole span.
func (t *TypeHole) Span() token.Span { return t.span }

func (*TypeHole) typeNode() {}

// NewTypeHole constructs a hole type.
func NewTypeHole(span token.Span) *TypeHole { return &TypeHole{span: span} }

// TypeBuiltin names a primitive builtin or the function constructor.
type TypeBuiltin struct {
	Builtin Builtin
	span    token.Span
}

// Span returns the builtin span.
func (t *TypeBuiltin) Span() token.Span { return t.span }

func (*TypeBuiltin) typeNode() {}

// NewTypeBuiltin constructs a builtin type reference.
func NewTypeBuiltin(b Builtin, span token.Span) *TypeBuiltin {
	return &TypeBuiltin{Builtin: b, span: span}
}

// TypeOpaque is the abstract result type of every data constructor in a
// variant declaration.
type TypeOpaque struct {
	span token.Span
}

// Span returns the opaque span.
func (t *TypeOpaque) Span() token.Span { return t.span }

func (*TypeOpaque) typeNode() {}

// TypeIdent is a named type; its name begins uppercase.
type TypeIdent struct {
	Name SpannedId
	Kind Kind
	span token.Span
}

// Span returns the identifier span.
func (t *TypeIdent) Span() token.Span { return t.span }

func (*TypeIdent) typeNode() {}

// NewTypeIdent constructs a named type reference.
func NewTypeIdent(name SpannedId, kind Kind, span token.Span) *TypeIdent {
	return &TypeIdent{Name: name, Kind: kind, span: span}
}

// TypeGeneric is a type variable; its name does not begin uppercase.
type TypeGeneric struct {
	Name SpannedId
	Kind Kind
	span token.Span
}

// Span returns the variable span.
func (t *TypeGeneric) Span() token.Span { return t.span }

func (*TypeGeneric) typeNode() {}

// NewTypeGeneric constructs a type variable reference.
func NewTypeGeneric(name SpannedId, kind Kind, span token.Span) *TypeGeneric {
	return &TypeGeneric{Name: name, Kind: kind, span: span}
}

// TypeProjection is a dotted path such as `std.map.Map`.
type TypeProjection struct {
	Path []SpannedId
	span token.Span
}

// Span returns the path span.
func (t *TypeProjection) Span() token.Span { return t.span }

func (*TypeProjection) typeNode() {}

// TypeApp applies a type constructor to arguments.
type TypeApp struct {
	Head Type
	Args []Type
	span token.Span
}

// Span returns the application span.
func (t *TypeApp) Span() token.Span { return t.span }

func (*TypeApp) typeNode() {}

// NewTypeApp constructs a type application.
func NewTypeApp(head Type, args []Type, span token.Span) *TypeApp {
	return &TypeApp{Head: head, Args: args, span: span}
}

// TypeFunction is a function arrow `From -> To` whose argument carries
// an ArgKind tag. The variant-lowering pass re-tags Arg in place, so the
// field is mutable by design of the tree, not shared.
type TypeFunction struct {
	Arg  ArgKind
	From Type
	To   Type
	span token.Span
}

// Span returns the arrow span.
func (t *TypeFunction) Span() token.Span { return t.span }

func (*TypeFunction) typeNode() {}

// NewTypeFunction constructs a function arrow.
func NewTypeFunction(arg ArgKind, from, to Type, span token.Span) *TypeFunction {
	return &TypeFunction{Arg: arg, From: from, To: to, span: span}
}

// TypeForall universally quantifies Body over Params.
type TypeForall struct {
	Params []*TypeGeneric
	Body   Type
	span   token.Span
}

// Span returns the forall span.
func (t *TypeForall) Span() token.Span { return t.span }

func (*TypeForall) typeNode() {}

// NewTypeForall constructs a universally quantified type.
func NewTypeForall(params []*TypeGeneric, body Type, span token.Span) *TypeForall {
	return &TypeForall{Params: params, Body: body, span: span}
}

// TypeRecord wraps a row as a record type.
type TypeRecord struct {
	Row  Type
	span token.Span
}

// Span returns the record span.
func (t *TypeRecord) Span() token.Span { return t.span }

func (*TypeRecord) typeNode() {}

// TypeVariant wraps a row as a variant type.
type TypeVariant struct {
	Row  Type
	span token.Span
}

// Span returns the variant span.
func (t *TypeVariant) Span() token.Span { return t.span }

func (*TypeVariant) typeNode() {}

// TypeEffect wraps a row as an effect type.
type TypeEffect struct {
	Row  Type
	span token.Span
}

// Span returns the effect span.
func (t *TypeEffect) Span() token.Span { return t.span }

func (*TypeEffect) typeNode() {}

// TypeField associates a name (and optional parameters) with a
// type-level row entry, i.e. a type alias living inside a record.
type TypeField struct {
	Metadata Metadata
	Name     SpannedId
	Params   []*TypeGeneric
	Typ      Type
}

// ValueField associates a name with the type of a value-level row entry.
type ValueField struct {
	Metadata Metadata
	Name     SpannedId
	Typ      Type
}

// TypeExtendRow extends a row with type-level and value-level fields,
// terminated in Rest: another row, a row variable, or an empty row.
type TypeExtendRow struct {
	Types  []TypeField
	Fields []ValueField
	Rest   Type
	span   token.Span
}

// Span returns the row span.
func (t *TypeExtendRow) Span() token.Span { return t.span }

func (*TypeExtendRow) typeNode() {}

// TypeEmptyRow terminates a closed row.
type TypeEmptyRow struct {
	span token.Span
}

// Span returns the row terminator span.
func (t *TypeEmptyRow) Span() token.Span { return t.span }

func (*TypeEmptyRow) typeNode() {}

// NewTypeOpaque constructs an opaque constructor-result type.
func NewTypeOpaque(span token.Span) *TypeOpaque { return &TypeOpaque{span: span} }

// NewTypeProjection constructs a dotted type path.
func NewTypeProjection(path []SpannedId, span token.Span) *TypeProjection {
	return &TypeProjection{Path: path, span: span}
}

// NewTypeRecord wraps a row as a record type.
func NewTypeRecord(row Type, span token.Span) *TypeRecord {
	return &TypeRecord{Row: row, span: span}
}

// NewTypeVariant wraps a row as a variant type.
func NewTypeVariant(row Type, span token.Span) *TypeVariant {
	return &TypeVariant{Row: row, span: span}
}

// NewTypeEffect wraps a row as an effect type.
func NewTypeEffect(row Type, span token.Span) *TypeEffect {
	return &TypeEffect{Row: row, span: span}
}

// NewTypeExtendRow constructs a row extension.
func NewTypeExtendRow(types []TypeField, fields []ValueField, rest Type, span token.Span) *TypeExtendRow {
	return &TypeExtendRow{Types: types, Fields: fields, Rest: rest, span: span}
}

// NewTypeEmptyRow constructs a closed row terminator.
func NewTypeEmptyRow(span token.Span) *TypeEmptyRow { return &TypeEmptyRow{span: span} }
