package calculus

import (
	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/types"
)

// The simplify rules below are local, single-step rewrites applied at every
// construction site inside the differentiator. Each rule folds identity
// elements and constant pairs for one node and nothing more; deeply nested
// redundancies are left as they are.

func isZero[T any](dom domain.Domain[T], n *types.Node[T]) bool {
	return n.Kind == types.KindConstant && dom.Equal(n.Value, dom.Zero())
}

func isOne[T any](dom domain.Domain[T], n *types.Node[T]) bool {
	return n.Kind == types.KindConstant && dom.Equal(n.Value, dom.One())
}

func bothConstant[T any](left, right *types.Node[T]) bool {
	return left.Kind == types.KindConstant && right.Kind == types.KindConstant
}

// SimplifyAdd builds left + right, folding additive identities and constant
// pairs.
func SimplifyAdd[T any](dom domain.Domain[T], left, right *types.Node[T]) *types.Node[T] {
	if isZero(dom, left) {
		return right
	}
	if isZero(dom, right) {
		return left
	}
	if bothConstant(left, right) {
		return types.NewConstant(dom.Add(left.Value, right.Value))
	}
	return types.NewBinary(types.KindAdd, left, right)
}

// SimplifyMultiply builds left * right, folding multiplicative identities,
// zero annihilation and constant pairs.
func SimplifyMultiply[T any](dom domain.Domain[T], left, right *types.Node[T]) *types.Node[T] {
	if isOne(dom, left) {
		return right
	}
	if isOne(dom, right) {
		return left
	}
	if isZero(dom, left) || isZero(dom, right) {
		return types.NewConstant(dom.Zero())
	}
	if bothConstant(left, right) {
		return types.NewConstant(dom.Mul(left.Value, right.Value))
	}
	return types.NewBinary(types.KindMultiply, left, right)
}

// SimplifyDivide builds left / right, folding a unit divisor, a zero
// numerator and constant pairs. A constant zero divisor fails with a
// division-by-zero error.
func SimplifyDivide[T any](dom domain.Domain[T], left, right *types.Node[T]) (*types.Node[T], error) {
	if isOne(dom, right) {
		return left, nil
	}
	if isZero(dom, left) {
		return types.NewConstant(dom.Zero()), nil
	}
	if bothConstant(left, right) {
		if dom.Equal(right.Value, dom.Zero()) {
			return nil, types.NewError(types.ErrDivisionByZero, "division by zero", -1)
		}
		return types.NewConstant(dom.Div(left.Value, right.Value)), nil
	}
	return types.NewBinary(types.KindDivide, left, right), nil
}

// SimplifyPower builds base ^ exp, folding unit and zero exponents and
// constant pairs.
func SimplifyPower[T any](dom domain.Domain[T], base, exp *types.Node[T]) *types.Node[T] {
	if isOne(dom, exp) {
		return base
	}
	if isZero(dom, exp) {
		return types.NewConstant(dom.One())
	}
	if bothConstant(base, exp) {
		return types.NewConstant(dom.Pow(base.Value, exp.Value))
	}
	return types.NewBinary(types.KindPower, base, exp)
}
