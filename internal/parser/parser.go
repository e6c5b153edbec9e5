// Package parser implements the recursive descent pattern parser.
//
// The grammar, highest to lowest binding:
//
//	Atom        := '(' Alternation ')' | '.' | EscapedChar
//	Postfix     := Atom ( '+' | '?' | '*' )?
//	Sequence    := Postfix Sequence?
//	Alternation := Sequence ( '|' Sequence )?
//
// Each rule either produces a node and leaves the cursor exactly past
// what it consumed, or produces nothing and leaves the cursor where it
// was. Syntactic non-match is not an error; the only error the parser
// can return is the recursion depth guard tripping.
package parser

import (
	"errors"
	"fmt"

	"github.com/rexlab/rexast/internal/ast"
	"github.com/rexlab/rexast/internal/cursor"
)

// reserved is the operator set a literal character must not come from.
const reserved = "|*+?()"

// DefaultMaxDepth bounds rule recursion. Sequences recurse once per
// concatenated unit and groups once per nesting level, so the limit
// also caps the length of a single unbroken concatenation.
const DefaultMaxDepth = 4096

// ErrDepthExceeded is returned (wrapped) when a parse exceeds the
// recursion limit.
var ErrDepthExceeded = errors.New("pattern nesting exceeds recursion limit")

// Result is the outcome of a parse. Root is nil when the input has no
// leading expression (an expected outcome, not an error). Rest holds
// whatever the grammar did not consume; on success, Root's matched
// prefix plus Rest reproduces the input exactly.
type Result struct {
	Root *ast.Node
	Rest string
}

// Complete reports whether a tree was produced and the whole input
// consumed.
func (r *Result) Complete() bool {
	return r.Root != nil && r.Rest == ""
}

// Parser holds the cursor and depth accounting for one parse. A
// Parser is single-use and not safe for concurrent use.
type Parser struct {
	cur      *cursor.Cursor
	maxDepth int
	depth    int
	err      error
}

// New returns a parser over pattern with the default depth limit.
func New(pattern string) *Parser {
	return &Parser{
		cur:      cursor.New(pattern),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the recursion limit. Values below 1 restore
// the default.
func (p *Parser) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Parse runs the top-level Alternation rule and returns the result.
// The returned error is non-nil only when the depth guard tripped.
func (p *Parser) Parse() (*Result, error) {
	root := p.parseAlternation()
	if p.err != nil {
		return nil, p.err
	}
	return &Result{Root: root, Rest: p.cur.Rest()}, nil
}

// Parse is a convenience wrapper: parse pattern with the default
// depth limit.
func Parse(pattern string) (*Result, error) {
	return New(pattern).Parse()
}

// enter counts a rule invocation against the depth limit. When the
// limit is exceeded it records the sticky error and reports false,
// which makes every rule on the stack fail and restore its cursor.
func (p *Parser) enter() bool {
	if p.err != nil {
		return false
	}
	if p.depth >= p.maxDepth {
		p.err = fmt.Errorf("parser: %w (limit %d)", ErrDepthExceeded, p.maxDepth)
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// parseAlternation parses a Sequence optionally followed by '|' and a
// second Sequence. A consumed '|' whose right operand fails is undone.
func (p *Parser) parseAlternation() *ast.Node {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	left := p.parseSequence()
	if left == nil {
		return nil
	}

	mark := p.cur.Mark()
	if p.cur.MatchChar('|') {
		if right := p.parseSequence(); right != nil {
			return ast.NewOr(left, right)
		}
	}
	p.cur.Reset(mark)

	return left
}

// parseSequence parses a Postfix and, when more input follows
// immediately, a right-nested continuation Sequence. A failed
// continuation consumes nothing, so the single Postfix stands alone.
func (p *Parser) parseSequence() *ast.Node {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	left := p.parsePostfix()
	if left == nil {
		return nil
	}
	if right := p.parseSequence(); right != nil {
		return ast.NewAnd(left, right)
	}
	return left
}

// parsePostfix parses an Atom and wraps it when one of '+', '?', '*'
// follows.
func (p *Parser) parsePostfix() *ast.Node {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	atom := p.parseAtom()
	if atom == nil {
		return nil
	}
	switch p.cur.MatchAnyCharIn("+?*") {
	case '+':
		return ast.NewNonzero(atom)
	case '?':
		return ast.NewOpt(atom)
	case '*':
		return ast.NewMany(atom)
	}
	return atom
}

// parseAtom parses a parenthesized group, a wildcard, or a (possibly
// escaped) literal character.
func (p *Parser) parseAtom() *ast.Node {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if n := p.parseGroup(); n != nil {
		return n
	}
	if p.cur.MatchChar('.') {
		return ast.NewWildcard()
	}
	return p.parseLiteral()
}

// parseGroup parses '(' Alternation ')'. The closing parenthesis is
// required; on any failure the cursor is restored to before the '('.
func (p *Parser) parseGroup() *ast.Node {
	mark := p.cur.Mark()
	if p.cur.MatchChar('(') {
		if n := p.parseAlternation(); n != nil && p.cur.MatchChar(')') {
			return n
		}
	}
	p.cur.Reset(mark)
	return nil
}

// parseLiteral parses one character outside the reserved operator
// set. A backslash consumes the following character unconditionally
// and maps it through the escape table. A trailing backslash with
// nothing after it fails the atom; the cursor is restored so the
// failure consumes nothing.
func (p *Parser) parseLiteral() *ast.Node {
	mark := p.cur.Mark()
	ch := p.cur.MatchCharNotIn(reserved)
	if ch == cursor.NoChar {
		return nil
	}
	if ch == '\\' {
		next := p.cur.MatchAnyChar()
		if next == cursor.NoChar {
			p.cur.Reset(mark)
			return nil
		}
		ch = unescape(next)
	}
	return ast.NewLiteral(ch)
}

// unescape maps the character after a backslash to its literal value.
// Outside the five control escapes, a character escapes to itself.
func unescape(ch byte) byte {
	switch ch {
	case 'b':
		return '\b'
	case 'n':
		return '\n'
	case 'f':
		return '\f'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return ch
}
