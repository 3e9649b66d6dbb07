// Package calculus implements symbolic differentiation with local algebraic
// simplification.
//
// Differentiate applies the standard rules (sum, product, quotient, chain,
// and a generalized power rule via logarithmic differentiation) and rebuilds
// the derivative tree through the Simplify* rules, so identity elements and
// constant subexpressions are folded at every construction point. The
// operand trees are deep-copied wherever they appear in the derivative, so
// the input tree is never aliased by the result.
package calculus

import (
	"fmt"

	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/types"
)

// Differentiate returns the symbolic derivative of the tree rooted at n with
// respect to the named variable.
func Differentiate[T any](dom domain.Domain[T], n *types.Node[T], variable string) (*types.Node[T], error) {
	switch n.Kind {
	case types.KindConstant:
		return types.NewConstant(dom.Zero()), nil

	case types.KindVariable:
		if n.Name == variable {
			return types.NewConstant(dom.One()), nil
		}
		return types.NewConstant(dom.Zero()), nil

	case types.KindAdd:
		dl, dr, err := diffChildren(dom, n, variable)
		if err != nil {
			return nil, err
		}
		return SimplifyAdd(dom, dl, dr), nil

	case types.KindSubtract:
		dl, dr, err := diffChildren(dom, n, variable)
		if err != nil {
			return nil, err
		}
		return SimplifyAdd(dom, dl, SimplifyMultiply(dom, negOne(dom), dr)), nil

	case types.KindMultiply:
		dl, dr, err := diffChildren(dom, n, variable)
		if err != nil {
			return nil, err
		}
		term1 := SimplifyMultiply(dom, dl, n.Right.Copy())
		term2 := SimplifyMultiply(dom, n.Left.Copy(), dr)
		return SimplifyAdd(dom, term1, term2), nil

	case types.KindDivide:
		dl, dr, err := diffChildren(dom, n, variable)
		if err != nil {
			return nil, err
		}
		numerator := SimplifyAdd(dom,
			SimplifyMultiply(dom, dl, n.Right.Copy()),
			SimplifyMultiply(dom, negOne(dom),
				SimplifyMultiply(dom, n.Left.Copy(), dr)))
		denominator := SimplifyPower(dom, n.Right.Copy(),
			types.NewConstant(dom.FromFloat(2)))
		return SimplifyDivide(dom, numerator, denominator)

	case types.KindPower:
		// Generalized rule via logarithmic differentiation, valid for
		// variable exponents:
		//   d(b^e) = b^e * (e' * ln(b) + e * b'/b)
		dl, dr, err := diffChildren(dom, n, variable)
		if err != nil {
			return nil, err
		}
		lnBase := types.NewFunction(types.KindLn, n.Left.Copy())
		quotient, err := SimplifyDivide(dom, dl, n.Left.Copy())
		if err != nil {
			return nil, err
		}
		power := SimplifyPower(dom, n.Left.Copy(), n.Right.Copy())
		factor := SimplifyAdd(dom,
			SimplifyMultiply(dom, dr, lnBase),
			SimplifyMultiply(dom, n.Right.Copy(), quotient))
		return SimplifyMultiply(dom, power, factor), nil

	case types.KindSin:
		da, err := Differentiate(dom, n.Arg, variable)
		if err != nil {
			return nil, err
		}
		cos := types.NewFunction(types.KindCos, n.Arg.Copy())
		return SimplifyMultiply(dom, cos, da), nil

	case types.KindCos:
		da, err := Differentiate(dom, n.Arg, variable)
		if err != nil {
			return nil, err
		}
		sin := types.NewFunction(types.KindSin, n.Arg.Copy())
		negated := SimplifyMultiply(dom, negOne(dom), sin)
		return SimplifyMultiply(dom, negated, da), nil

	case types.KindExp:
		da, err := Differentiate(dom, n.Arg, variable)
		if err != nil {
			return nil, err
		}
		exp := types.NewFunction(types.KindExp, n.Arg.Copy())
		return SimplifyMultiply(dom, exp, da), nil

	case types.KindLn:
		da, err := Differentiate(dom, n.Arg, variable)
		if err != nil {
			return nil, err
		}
		reciprocal, err := SimplifyDivide(dom,
			types.NewConstant(dom.One()), n.Arg.Copy())
		if err != nil {
			return nil, err
		}
		return SimplifyMultiply(dom, reciprocal, da), nil
	}

	return nil, types.NewError(types.ErrUnsupportedOperation,
		fmt.Sprintf("cannot differentiate node kind %s", n.Kind), -1)
}

func diffChildren[T any](dom domain.Domain[T], n *types.Node[T], variable string) (dl, dr *types.Node[T], err error) {
	dl, err = Differentiate(dom, n.Left, variable)
	if err != nil {
		return nil, nil, err
	}
	dr, err = Differentiate(dom, n.Right, variable)
	if err != nil {
		return nil, nil, err
	}
	return dl, dr, nil
}

func negOne[T any](dom domain.Domain[T]) *types.Node[T] {
	return types.NewConstant(dom.FromFloat(-1))
}
