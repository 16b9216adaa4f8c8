// Package typecache provides the kind and type construction caches the
// parser collaborates with. The kind cache shares its leaf kinds; the
// type cache builds spanned type nodes through the parse's arena.
package typecache

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// KindCache shares the leaf kinds. It is read-mostly and may be shared
// across parses under the caller's discipline.
type KindCache struct {
	hole *ast.KindHole
	typ  *ast.KindType
	row  *ast.KindRow
}

// NewKindCache returns a cache with the leaf kinds allocated once.
func NewKindCache() *KindCache {
	return &KindCache{
		hole: &ast.KindHole{},
		typ:  &ast.KindType{},
		row:  &ast.KindRow{},
	}
}

// Hole returns the shared hole kind.
func (c *KindCache) Hole() ast.Kind { return c.hole }

// Typ returns the shared kind of types.
func (c *KindCache) Typ() ast.Kind { return c.typ }

// Row returns the shared kind of rows.
func (c *KindCache) Row() ast.Kind { return c.row }

// Arrow builds a kind-level function.
func (c *KindCache) Arrow(from, to ast.Kind) ast.Kind {
	return &ast.KindArrow{From: from, To: to}
}

var builtins = map[string]ast.Builtin{
	"Int":    ast.BuiltinInt,
	"Byte":   ast.BuiltinByte,
	"Float":  ast.BuiltinFloat,
	"String": ast.BuiltinString,
	"Char":   ast.BuiltinChar,
	"Array":  ast.BuiltinArray,
}

// TypeCache builds type nodes for one parse.
type TypeCache struct {
	env   *ast.Env
	arena *ast.Arena
	kinds *KindCache
}

// New returns a type cache tied to the parse's environment and arena.
func New(env *ast.Env, arena *ast.Arena, kinds *KindCache) *TypeCache {
	return &TypeCache{env: env, arena: arena, kinds: kinds}
}

// Kinds returns the kind cache this type cache builds with.
func (c *TypeCache) Kinds() *KindCache { return c.kinds }

// Hole returns a fresh inference hole at span.
func (c *TypeCache) Hole(span token.Span) ast.Type {
	return ast.NewTypeHole(span)
}

// Opaque returns the abstract data-constructor result type at span.
func (c *TypeCache) Opaque(span token.Span) ast.Type {
	return ast.NewTypeOpaque(span)
}

// Builtin resolves a primitive type name.
func (c *TypeCache) Builtin(name string, span token.Span) (ast.Type, bool) {
	b, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return ast.NewTypeBuiltin(b, span), true
}

// EmptyRow returns a closed row terminator at span.
func (c *TypeCache) EmptyRow(span token.Span) ast.Type {
	return ast.NewTypeEmptyRow(span)
}

// ExtendRow builds a row of value-level fields terminated in rest.
func (c *TypeCache) ExtendRow(fields []ast.ValueField, rest ast.Type, span token.Span) ast.Type {
	return c.ExtendFullRow(nil, fields, rest, span)
}

// ExtendFullRow builds a row whose type-level part is types and
// value-level part is fields, terminated in rest. A row with no fields
// collapses to its terminator.
func (c *TypeCache) ExtendFullRow(types []ast.TypeField, fields []ast.ValueField, rest ast.Type, span token.Span) ast.Type {
	if len(types) == 0 && len(fields) == 0 {
		return rest
	}
	return ast.NewTypeExtendRow(c.arena.TypeFields(types), c.arena.ValueFields(fields), rest, span)
}

// Tuple builds the type of a tuple: unit for no elements, the element
// itself for one, and otherwise a record with `_0`, `_1`, ... fields.
func (c *TypeCache) Tuple(elems []ast.Type, span token.Span) ast.Type {
	switch len(elems) {
	case 1:
		return elems[0]
	case 0:
		return ast.NewTypeRecord(c.EmptyRow(span), span)
	}
	fields := make([]ast.ValueField, len(elems))
	for i, t := range elems {
		fields[i] = ast.ValueField{
			Name: ast.SpannedId{Name: c.env.FromStr(fmt.Sprintf("_%d", i)), Span: t.Span()},
			Typ:  t,
		}
	}
	return ast.NewTypeRecord(c.ExtendFullRow(nil, fields, c.EmptyRow(span), span), span)
}

// Function folds args into right-associated arrows ending in ret, each
// arrow tagged argKind.
func (c *TypeCache) Function(argKind ast.ArgKind, args []ast.Type, ret ast.Type, span token.Span) ast.Type {
	out := ret
	for i := len(args) - 1; i >= 0; i-- {
		out = ast.NewTypeFunction(argKind, args[i], out, token.Merge(args[i].Span(), out.Span()))
	}
	return out
}

// Forall wraps body in a universal quantifier; a no-op without params.
func (c *TypeCache) Forall(params []*ast.TypeGeneric, body ast.Type, span token.Span) ast.Type {
	if len(params) == 0 {
		return body
	}
	return ast.NewTypeForall(c.arena.Generics(params), body, span)
}
