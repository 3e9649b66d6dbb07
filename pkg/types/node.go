// Package types defines the core tree model of the expression engine.
//
// This package contains:
//   - Node: the closed, tag-discriminated AST element, generic over the
//     scalar type
//   - Kind: the tag enumeration for the node variants
//   - Error types: structured errors with codes
package types

import "strings"

// Kind discriminates the closed set of node variants.
type Kind uint8

const (
	// Leaves
	KindConstant Kind = iota
	KindVariable

	// Binary operations
	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindPower

	// KindNegate is reserved. No component of the engine produces it; the
	// evaluator and differentiator reject it as an unsupported operation.
	KindNegate

	// Unary functions
	KindSin
	KindCos
	KindLn
	KindExp
)

// String returns the operator symbol or function name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "const"
	case KindVariable:
		return "var"
	case KindAdd:
		return "+"
	case KindSubtract, KindNegate:
		return "-"
	case KindMultiply:
		return "*"
	case KindDivide:
		return "/"
	case KindPower:
		return "^"
	case KindSin:
		return "sin"
	case KindCos:
		return "cos"
	case KindLn:
		return "ln"
	case KindExp:
		return "exp"
	default:
		return "unknown"
	}
}

// IsBinary reports whether the kind is one of the five binary operators.
func (k Kind) IsBinary() bool { return k >= KindAdd && k <= KindPower }

// IsFunction reports whether the kind is one of the unary functions.
func (k Kind) IsFunction() bool { return k >= KindSin && k <= KindExp }

// Node is one element of an expression tree over scalar type T.
//
// Exactly one payload group is meaningful per variant: Value for
// KindConstant, Name for KindVariable, Left/Right for binary operators and
// Arg for functions. Nodes are never mutated after construction; combining
// trees always deep-copies the operands first (see Copy), so no Node is ever
// shared between two live expressions.
type Node[T any] struct {
	Kind  Kind
	Value T       // constant payload
	Name  string  // variable payload
	Left  *Node[T]
	Right *Node[T]
	Arg   *Node[T]
}

// NewConstant creates a constant leaf.
func NewConstant[T any](v T) *Node[T] {
	return &Node[T]{Kind: KindConstant, Value: v}
}

// NewVariable creates a variable leaf.
func NewVariable[T any](name string) *Node[T] {
	return &Node[T]{Kind: KindVariable, Name: name}
}

// NewBinary creates a binary operation node. The children are attached as
// given; callers that need the no-sharing invariant copy them first.
func NewBinary[T any](kind Kind, left, right *Node[T]) *Node[T] {
	return &Node[T]{Kind: kind, Left: left, Right: right}
}

// NewFunction creates a unary function node.
func NewFunction[T any](kind Kind, arg *Node[T]) *Node[T] {
	return &Node[T]{Kind: kind, Arg: arg}
}

// Copy returns a structural deep copy of the subtree rooted at n.
func (n *Node[T]) Copy() *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{
		Kind:  n.Kind,
		Value: n.Value,
		Name:  n.Name,
	}
	if n.Left != nil {
		c.Left = n.Left.Copy()
	}
	if n.Right != nil {
		c.Right = n.Right.Copy()
	}
	if n.Arg != nil {
		c.Arg = n.Arg.Copy()
	}
	return c
}

// Render returns the textual form of the subtree rooted at n. Constants are
// formatted with format; binary operations are fully parenthesized as
// "(left op right)" and functions render as "name(arg)".
func Render[T any](n *Node[T], format func(T) string) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	render(&b, n, format)
	return b.String()
}

func render[T any](b *strings.Builder, n *Node[T], format func(T) string) {
	switch {
	case n.Kind == KindConstant:
		b.WriteString(format(n.Value))
	case n.Kind == KindVariable:
		b.WriteString(n.Name)
	case n.Kind.IsBinary():
		b.WriteByte('(')
		render(b, n.Left, format)
		b.WriteString(n.Kind.String())
		render(b, n.Right, format)
		b.WriteByte(')')
	case n.Kind.IsFunction():
		b.WriteString(n.Kind.String())
		b.WriteByte('(')
		render(b, n.Arg, format)
		b.WriteByte(')')
	default:
		b.WriteString(n.Kind.String())
	}
}
