// Package expression is a small symbolic-algebra engine: it parses infix
// mathematical text into an expression tree over a chosen numeric domain
// (real or complex scalars), evaluates the tree under a variable binding,
// and symbolically differentiates it with local simplification.
//
// # Quick Start
//
//	// Parse once, evaluate under bindings
//	expr, err := expression.ParseReal("3 * y / 6")
//	v, err := expr.Eval(map[string]float64{"y": 12}) // 6
//
//	// Symbolic differentiation
//	d, err := expression.MustParse[float64]("y ^ 3", domain.Real{}).Diff("y")
//	fmt.Println(d) // ((y^3)*(3*(1/y)))
//
//	// Complex inputs are detected from the text
//	if expression.DetectDomain(src) == domain.ComplexDomain {
//	    expr, err := expression.ParseComplex(src)
//	    ...
//	}
//
// # Ownership
//
// An Expression owns its tree outright: every combinator (Add, Mul, Pow,
// Sin, ...) deep-copies both operand trees before attaching them under a new
// parent, and Diff never aliases the input tree. Expressions are immutable
// after construction, so independent Expression values may be combined from
// different goroutines without synchronization.
//
// # More Information
//
// For the individual components, see:
//   - Parser: github.com/itskodn/Expression/pkg/parser
//   - Evaluator: github.com/itskodn/Expression/pkg/evaluator
//   - Differentiator: github.com/itskodn/Expression/pkg/calculus
//   - Domains: github.com/itskodn/Expression/pkg/domain
package expression

import (
	"fmt"

	"github.com/itskodn/Expression/pkg/calculus"
	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/evaluator"
	"github.com/itskodn/Expression/pkg/parser"
	"github.com/itskodn/Expression/pkg/types"
)

// Version returns the current version of the engine.
func Version() string {
	return "v0.1.0"
}

// Expression is a value-semantics wrapper owning exactly one expression
// tree, bound to the scalar domain it was built over.
type Expression[T any] struct {
	root *types.Node[T]
	dom  domain.Domain[T]
}

// Parse parses infix text into an Expression over the given domain.
func Parse[T any](input string, dom domain.Domain[T]) (Expression[T], error) {
	root, err := parser.Parse(input, dom)
	if err != nil {
		return Expression[T]{}, err
	}
	return Expression[T]{root: root, dom: dom}, nil
}

// ParseReal parses infix text over the real domain.
func ParseReal(input string) (Expression[float64], error) {
	return Parse[float64](input, domain.Real{})
}

// ParseComplex parses infix text over the complex domain.
func ParseComplex(input string) (Expression[complex128], error) {
	return Parse[complex128](input, domain.Complex{})
}

// MustParse is like Parse but panics if the input cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse[T any](input string, dom domain.Domain[T]) Expression[T] {
	expr, err := Parse(input, dom)
	if err != nil {
		panic(fmt.Sprintf("expression: Parse(%q): %v", input, err))
	}
	return expr
}

// Constant creates an Expression holding a single constant leaf.
func Constant[T any](v T, dom domain.Domain[T]) Expression[T] {
	return Expression[T]{root: types.NewConstant(v), dom: dom}
}

// Variable creates an Expression holding a single variable leaf.
func Variable[T any](name string, dom domain.Domain[T]) Expression[T] {
	return Expression[T]{root: types.NewVariable[T](name), dom: dom}
}

// DetectDomain decides which scalar domain an expression text requires.
func DetectDomain(input string) domain.Kind {
	return domain.Detect(input)
}

// AST returns the root of the owned expression tree.
func (e Expression[T]) AST() *types.Node[T] {
	return e.root
}

// Domain returns the scalar domain the expression is bound to.
func (e Expression[T]) Domain() domain.Domain[T] {
	return e.dom
}

// String returns the textual form of the expression. Binary operations are
// fully parenthesized, so the output reparses to an equivalent tree.
func (e Expression[T]) String() string {
	return types.Render(e.root, e.dom.Format)
}

// Eval evaluates the expression under the given variable bindings.
func (e Expression[T]) Eval(bindings map[string]T) (T, error) {
	return evaluator.New(e.dom).Eval(e.root, bindings)
}

// Diff returns a new Expression holding the symbolic derivative with
// respect to the named variable.
func (e Expression[T]) Diff(variable string) (Expression[T], error) {
	root, err := calculus.Differentiate(e.dom, e.root, variable)
	if err != nil {
		return Expression[T]{}, err
	}
	return Expression[T]{root: root, dom: e.dom}, nil
}

// combine builds a binary operation from deep copies of both operand trees.
func (e Expression[T]) combine(kind types.Kind, other Expression[T]) Expression[T] {
	return Expression[T]{
		root: types.NewBinary(kind, e.root.Copy(), other.root.Copy()),
		dom:  e.dom,
	}
}

// Add returns e + other.
func (e Expression[T]) Add(other Expression[T]) Expression[T] {
	return e.combine(types.KindAdd, other)
}

// Sub returns e - other.
func (e Expression[T]) Sub(other Expression[T]) Expression[T] {
	return e.combine(types.KindSubtract, other)
}

// Mul returns e * other.
func (e Expression[T]) Mul(other Expression[T]) Expression[T] {
	return e.combine(types.KindMultiply, other)
}

// Div returns e / other.
func (e Expression[T]) Div(other Expression[T]) Expression[T] {
	return e.combine(types.KindDivide, other)
}

// Pow returns e ^ other.
func (e Expression[T]) Pow(other Expression[T]) Expression[T] {
	return e.combine(types.KindPower, other)
}

func (e Expression[T]) apply(kind types.Kind) Expression[T] {
	return Expression[T]{
		root: types.NewFunction(kind, e.root.Copy()),
		dom:  e.dom,
	}
}

// Sin returns sin(e).
func (e Expression[T]) Sin() Expression[T] { return e.apply(types.KindSin) }

// Cos returns cos(e).
func (e Expression[T]) Cos() Expression[T] { return e.apply(types.KindCos) }

// Exp returns exp(e).
func (e Expression[T]) Exp() Expression[T] { return e.apply(types.KindExp) }

// Ln returns ln(e).
func (e Expression[T]) Ln() Expression[T] { return e.apply(types.KindLn) }
