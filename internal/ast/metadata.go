package ast

import "github.com/lumen-lang/lumen/internal/token"

// CommentCategory records which comment syntax a doc comment used.
type CommentCategory int

const (
	// CommentLine is a `///` comment.
	CommentLine CommentCategory = iota
	// CommentBlock is a `/** */` comment.
	CommentBlock
)

// Comment is an aggregated documentation comment. Consecutive doc
// comments are joined with "\n"; the category is that of the last one.
type Comment struct {
	Category CommentCategory
	Content  string
}

// Attribute is a `#[name]` or `#[name(arguments)]` marker. Arguments
// holds the raw source text between the parentheses, byte for byte; it
// is nil when no argument list was written.
type Attribute struct {
	Name      string
	Arguments *string
	Span      token.Span
}

// Metadata carries the doc comment and attributes preceding a binding
// or record field.
type Metadata struct {
	Comment    *Comment
	Attributes []Attribute
}

// IsEmpty reports whether no documentation or attributes were attached.
func (m Metadata) IsEmpty() bool {
	return m.Comment == nil && len(m.Attributes) == 0
}
