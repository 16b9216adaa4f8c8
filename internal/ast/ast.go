// Package ast defines the abstract syntax tree produced by one parse,
// together with the arena that owns its child slices, the temp-vector
// pool used to gather them, and the identifier interning environment.
//
// Every syntactic category is a closed sum: an interface with a marker
// method implemented by a fixed set of node structs. Nodes are strictly
// tree-shaped; there are no back-pointers.
package ast

import "github.com/lumen-lang/lumen/internal/token"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() token.Span
}
