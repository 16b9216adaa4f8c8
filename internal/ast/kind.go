package ast

// Kind classifies a type: an ordinary type, a row, an arrow between
// kinds, or a hole left for inference. Kinds carry no spans; they are
// shared through the kind cache.
type Kind interface {
	kindNode()
}

// KindHole is a kind to be inferred.
type KindHole struct{}

func (*KindHole) kindNode() {}

// KindType is the kind of ordinary types.
type KindType struct{}

func (*KindType) kindNode() {}

// KindRow is the kind of rows.
type KindRow struct{}

func (*KindRow) kindNode() {}

// KindArrow is a kind-level function `From -> To`.
type KindArrow struct {
	From Kind
	To   Kind
}

func (*KindArrow) kindNode() {}
