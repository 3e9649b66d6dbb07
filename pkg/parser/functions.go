package parser

import "github.com/itskodn/Expression/pkg/types"

// lookupFunction returns the node kind for a recognized function name.
// Returns false for every other identifier, which the parser treats as a
// variable.
func lookupFunction(name string) (types.Kind, bool) {
	switch name {
	case "sin":
		return types.KindSin, true
	case "cos":
		return types.KindCos, true
	case "exp":
		return types.KindExp, true
	case "ln":
		return types.KindLn, true
	default:
		return 0, false
	}
}

// lookupOperator returns the node kind for a binary operator character.
func lookupOperator(op byte) (types.Kind, bool) {
	switch op {
	case '+':
		return types.KindAdd, true
	case '-':
		return types.KindSubtract, true
	case '*':
		return types.KindMultiply, true
	case '/':
		return types.KindDivide, true
	case '^':
		return types.KindPower, true
	default:
		return 0, false
	}
}

// precedence returns the binding strength of a binary operator character.
// Non-operators (including the '(' marker) bind with strength 0.
func precedence(op byte) int {
	switch op {
	case '^':
		return 4
	case '*', '/':
		return 3
	case '+', '-':
		return 2
	default:
		return 0
	}
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/' || c == '^'
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
