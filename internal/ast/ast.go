// Package ast defines the tree produced by parsing a pattern: a
// closed set of node kinds with fixed arity, plus traversal,
// structural equality, and a diagnostic renderer.
package ast

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

// Node kinds. Char is the only leaf; every other kind owns exactly
// the number of children reported by Arity.
const (
	Or      Kind = iota // alternation of two children
	And                 // concatenation, first child then second
	Opt                 // zero or one of the child
	Many                // zero or more of the child
	Nonzero             // one or more of the child
	Char                // a half-open character range [Lo, Hi)
)

// kindSpec carries the per-kind name and arity.
type kindSpec struct {
	name  string
	arity int
}

var kindSpecs = map[Kind]kindSpec{
	Or:      {"OR", 2},
	And:     {"AND", 2},
	Opt:     {"OPT", 1},
	Many:    {"MANY", 1},
	Nonzero: {"NONZERO", 1},
	Char:    {"CHAR", 0},
}

// String returns the name of the kind.
func (k Kind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Arity returns the number of children a node of this kind owns.
// Unknown kinds report -1.
func (k Kind) Arity() int {
	if spec, ok := kindSpecs[k]; ok {
		return spec.arity
	}
	return -1
}

// MaxChar is the exclusive upper bound of the character domain. A
// wildcard node spans [0, MaxChar).
const MaxChar = 256

// Node is one node of a parse tree. Children holds exactly
// Kind.Arity() nodes; Lo and Hi are meaningful only on Char nodes,
// where they delimit the accepted half-open range. Lo and Hi are
// ints rather than bytes so the wildcard upper bound MaxChar is
// representable.
//
// Nodes are built bottom-up and are not mutated after construction;
// each node exclusively owns its children.
type Node struct {
	Kind     Kind
	Children []*Node
	Lo, Hi   int
}

// New builds a node of the given kind, validating arity. Char nodes
// cannot be built through New; use NewChar, which also carries the
// range.
func New(kind Kind, children ...*Node) (*Node, error) {
	want := kind.Arity()
	if want < 0 {
		return nil, fmt.Errorf("ast: unknown node kind %d", int(kind))
	}
	if kind == Char {
		return nil, fmt.Errorf("ast: Char nodes require a range, use NewChar")
	}
	if len(children) != want {
		return nil, fmt.Errorf("ast: %s node requires %d children, got %d", kind, want, len(children))
	}
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("ast: %s node has nil child %d", kind, i)
		}
	}
	return &Node{Kind: kind, Children: children}, nil
}

// NewChar returns a leaf accepting the half-open range [lo, hi).
func NewChar(lo, hi int) *Node {
	return &Node{Kind: Char, Lo: lo, Hi: hi}
}

// NewLiteral returns a leaf accepting exactly the character ch.
func NewLiteral(ch byte) *Node {
	return NewChar(int(ch), int(ch)+1)
}

// NewWildcard returns a leaf accepting any single character.
func NewWildcard() *Node {
	return NewChar(0, MaxChar)
}

// NewOr returns an alternation of left and right.
func NewOr(left, right *Node) *Node {
	return &Node{Kind: Or, Children: []*Node{left, right}}
}

// NewAnd returns the concatenation of left followed by right.
func NewAnd(left, right *Node) *Node {
	return &Node{Kind: And, Children: []*Node{left, right}}
}

// NewOpt returns zero-or-one repetitions of child.
func NewOpt(child *Node) *Node {
	return &Node{Kind: Opt, Children: []*Node{child}}
}

// NewMany returns zero-or-more repetitions of child.
func NewMany(child *Node) *Node {
	return &Node{Kind: Many, Children: []*Node{child}}
}

// NewNonzero returns one-or-more repetitions of child.
func NewNonzero(child *Node) *Node {
	return &Node{Kind: Nonzero, Children: []*Node{child}}
}

// Validate checks the whole tree under n for arity violations and
// malformed Char ranges. Trees built through the constructors are
// valid; Validate exists for trees assembled from struct literals.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("ast: nil node")
	}
	want := n.Kind.Arity()
	if want < 0 {
		return fmt.Errorf("ast: unknown node kind %d", int(n.Kind))
	}
	if len(n.Children) != want {
		return fmt.Errorf("ast: %s node has %d children, want %d", n.Kind, len(n.Children), want)
	}
	if n.Kind == Char {
		if n.Lo < 0 || n.Hi > MaxChar || n.Lo >= n.Hi {
			return fmt.Errorf("ast: CHAR node has invalid range [%d, %d)", n.Lo, n.Hi)
		}
	}
	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b are structurally identical: same
// kinds, same ranges on Char nodes, and pairwise equal children.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || len(a.Children) != len(b.Children) {
		return false
	}
	if a.Kind == Char && (a.Lo != b.Lo || a.Hi != b.Hi) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Walk traverses the tree under n depth-first, calling fn with each
// node and its depth. Returning false from fn skips the node's
// children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Size returns the number of nodes in the tree under n.
func Size(n *Node) int {
	count := 0
	Walk(n, func(*Node, int) bool {
		count++
		return true
	})
	return count
}
