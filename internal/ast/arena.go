package ast

// The arena owns every child slice built during a parse. List-producing
// grammar rules gather into the temp pool and then move the finished
// list here in one copy, so siblings end up contiguous and in source
// order. A chunk's backing array is never reallocated: new items go into
// its spare capacity or into a fresh chunk, which keeps every previously
// returned slice stable.

const arenaChunk = 256

type slab[T any] struct {
	chunks [][]T
}

func (s *slab[T]) alloc(items []T) []T {
	if len(items) == 0 {
		return nil
	}
	n := len(s.chunks)
	var cur []T
	if n > 0 {
		cur = s.chunks[n-1]
	}
	if cap(cur)-len(cur) < len(items) {
		size := arenaChunk
		if len(items) > size {
			size = len(items)
		}
		cur = make([]T, 0, size)
		s.chunks = append(s.chunks, cur)
		n++
	}
	start := len(cur)
	cur = append(cur, items...)
	s.chunks[n-1] = cur
	return cur[start:len(cur):len(cur)]
}

// Arena holds the slice storage for one parse. The produced AST borrows
// from it for its whole lifetime; an Arena must not be shared between
// concurrent parses.
type Arena struct {
	exprs       slab[Expr]
	types       slab[Type]
	patterns    slab[Pattern]
	ids         slab[SpannedId]
	generics    slab[*TypeGeneric]
	typeFields  slab[TypeField]
	valueFields slab[ValueField]
	exprTypes   slab[ExprTypeField]
	exprValues  slab[ExprValueField]
	patValues   slab[PatternValueField]
	alts        slab[Alternative]
	args        slab[Argument]
	valueBinds  slab[ValueBinding]
	typeBinds   slab[TypeBinding]
	attrs       slab[Attribute]
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// Exprs copies items into arena storage and returns the contiguous copy.
func (a *Arena) Exprs(items []Expr) []Expr { return a.exprs.alloc(items) }

// Types copies items into arena storage and returns the contiguous copy.
func (a *Arena) Types(items []Type) []Type { return a.types.alloc(items) }

// Patterns copies items into arena storage and returns the contiguous copy.
func (a *Arena) Patterns(items []Pattern) []Pattern { return a.patterns.alloc(items) }

// Ids copies items into arena storage and returns the contiguous copy.
func (a *Arena) Ids(items []SpannedId) []SpannedId { return a.ids.alloc(items) }

// Generics copies items into arena storage and returns the contiguous copy.
func (a *Arena) Generics(items []*TypeGeneric) []*TypeGeneric { return a.generics.alloc(items) }

// TypeFields copies items into arena storage and returns the contiguous copy.
func (a *Arena) TypeFields(items []TypeField) []TypeField { return a.typeFields.alloc(items) }

// ValueFields copies items into arena storage and returns the contiguous copy.
func (a *Arena) ValueFields(items []ValueField) []ValueField { return a.valueFields.alloc(items) }

// ExprTypeFields copies items into arena storage and returns the contiguous copy.
func (a *Arena) ExprTypeFields(items []ExprTypeField) []ExprTypeField { return a.exprTypes.alloc(items) }

// ExprValueFields copies items into arena storage and returns the contiguous copy.
func (a *Arena) ExprValueFields(items []ExprValueField) []ExprValueField { return a.exprValues.alloc(items) }

// PatternValueFields copies items into arena storage and returns the contiguous copy.
func (a *Arena) PatternValueFields(items []PatternValueField) []PatternValueField {
	return a.patValues.alloc(items)
}

// Alts copies items into arena storage and returns the contiguous copy.
func (a *Arena) Alts(items []Alternative) []Alternative { return a.alts.alloc(items) }

// Args copies items into arena storage and returns the contiguous copy.
func (a *Arena) Args(items []Argument) []Argument { return a.args.alloc(items) }

// ValueBindings copies items into arena storage and returns the contiguous copy.
func (a *Arena) ValueBindings(items []ValueBinding) []ValueBinding { return a.valueBinds.alloc(items) }

// TypeBindings copies items into arena storage and returns the contiguous copy.
func (a *Arena) TypeBindings(items []TypeBinding) []TypeBinding { return a.typeBinds.alloc(items) }

// Attributes copies items into arena storage and returns the contiguous copy.
func (a *Arena) Attributes(items []Attribute) []Attribute { return a.attrs.alloc(items) }
