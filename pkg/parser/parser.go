// Package parser converts infix mathematical text into an expression tree.
//
// The parser is a single left-to-right scan implementing the shunting-yard
// algorithm: numbers and identifiers are lexed inline and pushed onto a value
// stack, binary operators are held on an operator stack and applied by
// precedence, and recognized function names wait on a third stack until the
// closing parenthesis of their argument.
//
// Grammar notes:
//   - Precedence: '^' = 4, '*' '/' = 3, '+' '-' = 2. Operators of equal
//     precedence are popped before pushing, so every operator is parsed
//     left-associative, including '^' ("2^3^2" parses as "(2^3)^2").
//   - A ')' applies pending operators down to the matching '(' and then, if
//     any function name is pending, wraps the newest value in that function.
//     Function application is tied to the pending-name stack only, not to
//     which parenthesis opened the call.
//   - There is no unary minus and no implicit multiplication.
package parser

import (
	"fmt"
	"strconv"

	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/types"
)

// openParen is the operator-stack marker for '('; precedence 0 keeps it from
// being popped by any binary operator.
const openParen = '('

// Parse scans input and builds one expression tree over the given domain.
func Parse[T any](input string, dom domain.Domain[T]) (*types.Node[T], error) {
	var (
		values    []*types.Node[T]
		operators []byte
		functions []types.Kind
	)

	popValue := func() *types.Node[T] {
		n := values[len(values)-1]
		values = values[:len(values)-1]
		return n
	}

	// applyOperator pops one operator and two values (right then left) and
	// pushes the resulting binary node.
	applyOperator := func(pos int) error {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		if len(values) < 2 {
			return types.NewError(types.ErrInvalidExpression, "invalid expression", pos)
		}
		right := popValue()
		left := popValue()

		kind, ok := lookupOperator(op)
		if !ok {
			return types.NewError(types.ErrInvalidExpression,
				fmt.Sprintf("invalid operator %q", op), pos)
		}
		values = append(values, types.NewBinary(kind, left, right))
		return nil
	}

	// applyFunction pops one pending function name and wraps the newest
	// value in it.
	applyFunction := func(pos int) error {
		kind := functions[len(functions)-1]
		functions = functions[:len(functions)-1]

		if len(values) < 1 {
			return types.NewError(types.ErrInvalidExpression,
				fmt.Sprintf("missing argument for %s", kind), pos)
		}
		arg := popValue()
		values = append(values, types.NewFunction(kind, arg))
		return nil
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case isSpace(c):
			continue

		case isDigit(c) || c == '.':
			start := i
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				i++
			}
			literal := input[start:i]
			i--

			f, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, types.NewError(types.ErrInvalidNumber,
					fmt.Sprintf("invalid number %q", literal), start).WithCause(err)
			}
			values = append(values, types.NewConstant(dom.FromFloat(f)))

		case isAlpha(c):
			start := i
			for i < len(input) && isAlpha(input[i]) {
				i++
			}
			token := input[start:i]
			i--

			if kind, ok := lookupFunction(token); ok {
				functions = append(functions, kind)
			} else {
				values = append(values, types.NewVariable[T](token))
			}

		case c == openParen:
			operators = append(operators, openParen)

		case c == ')':
			for len(operators) > 0 && operators[len(operators)-1] != openParen {
				if err := applyOperator(i); err != nil {
					return nil, err
				}
			}
			if len(operators) == 0 {
				return nil, types.NewError(types.ErrUnmatchedParen, "unmatched ')'", i)
			}
			operators = operators[:len(operators)-1]

			if len(functions) > 0 {
				if err := applyFunction(i); err != nil {
					return nil, err
				}
			}

		case isOperator(c):
			for len(operators) > 0 && precedence(operators[len(operators)-1]) >= precedence(c) {
				if err := applyOperator(i); err != nil {
					return nil, err
				}
			}
			operators = append(operators, c)

		default:
			return nil, types.NewError(types.ErrInvalidCharacter,
				fmt.Sprintf("invalid character %q", c), i)
		}
	}

	for len(operators) > 0 {
		if operators[len(operators)-1] == openParen {
			return nil, types.NewError(types.ErrUnmatchedParen, "unmatched '('", len(input))
		}
		if err := applyOperator(len(input)); err != nil {
			return nil, err
		}
	}

	if len(values) != 1 {
		return nil, types.NewError(types.ErrInvalidExpression, "invalid expression", len(input))
	}
	return values[0], nil
}
