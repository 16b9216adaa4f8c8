// Package parser builds a typed AST from a layout-resolved token
// stream. The parser is resilient: syntax errors never abort a parse;
// recovery sites synthesize placeholder nodes and append diagnostics to
// the error sink, so downstream tooling always receives a well-formed
// tree.
package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
	"github.com/lumen-lang/lumen/internal/typecache"
)

type Option func(*options)

type options struct {
	env        *ast.Env
	sink       *diag.Sink
	kinds      *typecache.KindCache
	startIndex int
}

// WithEnv shares an identifier environment across parses. Interned
// identifiers outlive any single parse.
func WithEnv(env *ast.Env) Option {
	return func(o *options) { o.env = env }
}

// WithSink collects diagnostics into a caller-owned sink.
func WithSink(sink *diag.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithKindCache shares a kind cache across parses.
func WithKindCache(kinds *typecache.KindCache) Option {
	return func(o *options) { o.kinds = kinds }
}

// WithStartIndex sets the byte offset of the source fragment within the
// document it was cut from; spans and attribute capture stay relative
// to the document.
func WithStartIndex(start int) Option {
	return func(o *options) { o.startIndex = start }
}

// Parser holds the exclusive state of one parse: the token cursor, the
// arena and temp pool, the interning environment and the error sink.
// A Parser must not be shared between goroutines; independent parses
// may run in parallel, each with its own Parser.
//
// Cursor discipline: cur is the token under examination and peek the
// one after it; both only move forward through next. Every parse
// function enters with cur on the first token of its construct and
// returns with cur on the last token it consumed.
type Parser struct {
	src        string
	startIndex int

	stream token.Stream
	cur    token.Token
	peek   token.Token

	env   *ast.Env
	arena *ast.Arena
	tmp   *ast.TempPool
	types *typecache.TypeCache
	sink  *diag.Sink

	// pendingIn is set when a truncated binding already reported its
	// missing `=`; it stands in for the synthesized `in` so the body
	// recovery stays silent and the parse yields exactly one error.
	pendingIn bool

	// pendingSep is set when the match-arm loop consumed a block
	// separator that turned out to belong to the enclosing block; the
	// block body picks it up with cur already on the separator.
	pendingSep bool
}

// New returns a parser over src, running the scanner and layout filter
// internally.
func New(src string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sink == nil {
		cfg.sink = &diag.Sink{}
	}
	stream := lexer.NewLayout(lexer.NewScanner(src, cfg.sink))
	return newParser(src, stream, cfg)
}

// NewFromStream returns a parser over a caller-supplied token stream.
// src must be the text the stream's byte positions index into; it is
// used only by attribute capture.
func NewFromStream(src string, stream token.Stream, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sink == nil {
		cfg.sink = &diag.Sink{}
	}
	return newParser(src, stream, cfg)
}

func newParser(src string, stream token.Stream, cfg options) *Parser {
	if cfg.env == nil {
		cfg.env = ast.NewEnv()
	}
	if cfg.kinds == nil {
		cfg.kinds = typecache.NewKindCache()
	}

	arena := ast.NewArena()
	p := &Parser{
		src:        src,
		startIndex: cfg.startIndex,
		stream:     stream,
		env:        cfg.env,
		arena:      arena,
		tmp:        ast.NewTempPool(),
		types:      typecache.New(cfg.env, arena, cfg.kinds),
		sink:       cfg.sink,
	}

	// Seed cur/peek.
	p.next()
	p.next()

	return p
}

// Env returns the identifier environment used by this parse.
func (p *Parser) Env() *ast.Env { return p.env }

// Arena returns the arena owning the parsed tree's slices.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// Errors returns the diagnostics collected so far, in parse order.
func (p *Parser) Errors() []diag.Error { return p.sink.Errors() }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.stream.Next()
}

func (p *Parser) spannedId(t token.Token) ast.SpannedId {
	return ast.SpannedId{Name: p.env.FromStr(t.Raw), Span: t.Span}
}

// zeroSpan is a zero-width span at the given token, used to anchor
// synthesized placeholder nodes.
func zeroSpan(t token.Token) token.Span {
	return token.Span{Start: t.Span.Start, End: t.Span.Start, Line: t.Span.Line, Column: t.Span.Column}
}

func (p *Parser) unexpected(t token.Token, expected ...string) {
	p.sink.Emit(diag.UnexpectedToken(t.Span, string(t.Kind), expected...))
}

// expectPeek consumes the peek token when it has the wanted kind and
// reports an unexpected-token diagnostic otherwise.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peek.Kind == kind {
		p.next()
		return true
	}
	p.unexpected(p.peek, string(kind))
	return false
}

// ParseExpr is the top-level entry: an optional shebang line, one
// expression, and recovery over any trailing noise.
func (p *Parser) ParseExpr() ast.Expr {
	if p.cur.Kind == token.Shebang {
		p.next()
	}
	e := p.parseExpr()
	p.skipExtraTokens()
	return e
}

// skipExtraTokens discards everything after a successful top
// expression, reporting the first piece of real noise at most once.
func (p *Parser) skipExtraTokens() {
	reported := false
	for p.peek.Kind != token.EOF {
		p.next()
		switch p.cur.Kind {
		case token.BlockOpen, token.BlockClose, token.BlockSep:
		default:
			if !reported {
				if !p.alreadyReportedAt(p.cur.Span) {
					p.unexpected(p.cur, string(token.EOF))
				}
				reported = true
			}
		}
	}
}

// alreadyReportedAt checks whether the most recent diagnostic already
// points at this span, so recovery paths do not report a token twice.
func (p *Parser) alreadyReportedAt(span token.Span) bool {
	errs := p.sink.Errors()
	if len(errs) == 0 {
		return false
	}
	last := errs[len(errs)-1].Span
	return last.Start == span.Start && last.End == span.End
}

func isMetadataStart(k token.Kind) bool {
	return token.IsDocComment(k) || k == token.AttributeOpen
}
