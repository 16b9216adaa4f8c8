package ast

import (
	"unicode"
	"unicode/utf8"

	"github.com/lumen-lang/lumen/internal/token"
)

// Id is an interned identifier. Ids are dense indices into the Env that
// produced them and outlive any single parse.
type Id int32

// EmptyId is the pre-interned empty string. It is a sentinel, not a
// valid user name: the scanner never emits an empty identifier. The
// parser uses it as the id of lambdas and as the field of a recovered
// projection.
const EmptyId Id = 0

// IsEmpty reports whether id is the empty-string sentinel.
func (id Id) IsEmpty() bool { return id == EmptyId }

// SpannedId is an identifier occurrence at a source location.
type SpannedId struct {
	Name Id
	Span token.Span
}

// Env interns identifier strings. Interning is idempotent: equal inputs
// always map to the same Id. An Env may outlive many parses but must
// not be shared between concurrent ones.
type Env struct {
	names []string
	index map[string]Id
}

// NewEnv returns an environment with the empty sentinel pre-interned.
func NewEnv() *Env {
	e := &Env{index: make(map[string]Id)}
	e.FromStr("")
	return e
}

// FromStr interns s and returns its Id.
func (e *Env) FromStr(s string) Id {
	if id, ok := e.index[s]; ok {
		return id
	}
	id := Id(len(e.names))
	e.names = append(e.names, s)
	e.index[s] = id
	return id
}

// String returns the string for a previously interned id.
func (e *Env) String(id Id) string {
	return e.names[id]
}

// StartsUpper reports whether s begins with an uppercase letter. The
// parser uses leading-character case to split constructor/type names
// from value/generic names.
func StartsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
