package ast

// Scratch is a typed LIFO stack used to gather list elements while a
// grammar rule is still discovering how many there are. A rule opens a
// region with Start, pushes as it parses, and drains back to its own
// mark before returning. Regions nest but must not cross.
//
// Drain returns a view into the scratch backing; the caller must copy
// it (normally into the Arena) before pushing again.
type Scratch[T any] struct {
	items []T
}

// Mark identifies the bottom of a scratch region.
type Mark int

// Start opens a region and returns its mark.
func (s *Scratch[T]) Start() Mark { return Mark(len(s.items)) }

// Push appends an item to the open region.
func (s *Scratch[T]) Push(v T) { s.items = append(s.items, v) }

// Len reports how many items sit above the mark.
func (s *Scratch[T]) Len(m Mark) int { return len(s.items) - int(m) }

// Drain pops every item above the mark and returns them in push order.
func (s *Scratch[T]) Drain(m Mark) []T {
	out := s.items[m:]
	s.items = s.items[:m]
	return out
}

// TempPool bundles one scratch stack per list element type. It is
// reused across productions within a parse but never escapes one.
type TempPool struct {
	Exprs      Scratch[Expr]
	Types      Scratch[Type]
	Patterns   Scratch[Pattern]
	Ids        Scratch[SpannedId]
	Generics   Scratch[*TypeGeneric]
	TypeFields Scratch[TypeField]
	ValFields  Scratch[ValueField]
	ExprTypes  Scratch[ExprTypeField]
	ExprValues Scratch[ExprValueField]
	PatValues  Scratch[PatternValueField]
	Alts       Scratch[Alternative]
	Args       Scratch[Argument]
	ValueBinds Scratch[ValueBinding]
	TypeBinds  Scratch[TypeBinding]
	Attrs      Scratch[Attribute]
}

// NewTempPool returns an empty pool.
func NewTempPool() *TempPool { return &TempPool{} }
