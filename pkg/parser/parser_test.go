package parser_test

import (
	"errors"
	"testing"

	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/parser"
	"github.com/itskodn/Expression/pkg/types"
)

// shape parses input over the real domain and returns the fully
// parenthesized rendering of the resulting tree.
func shape(t *testing.T, input string) string {
	t.Helper()
	node, err := parser.Parse[float64](input, domain.Real{})
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return types.Render(node, domain.Real{}.Format)
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"constant", "42", "42"},
		{"decimal", "2.5", "2.5"},
		{"variable", "y", "y"},
		{"addition", "5 + 7", "(5+7)"},
		{"precedence", "1 + 2 * 3", "(1+(2*3))"},
		{"equal precedence left", "3 * y / 6", "((3*y)/6)"},
		{"subtraction chain", "10 - 4 - 3", "((10-4)-3)"},
		{"power is left associative", "2 ^ 3 ^ 2", "((2^3)^2)"},
		{"power binds tightest", "2 * x ^ 3", "(2*(x^3))"},
		{"parentheses", "(1 + 2) * 3", "((1+2)*3)"},
		{"nested parens", "((x))", "x"},
		{"function", "sin(y)", "sin(y)"},
		{"function of expression", "ln(x ^ 2 + 1)", "ln(((x^2)+1))"},
		{"nested functions", "sin(cos(x))", "sin(cos(x))"},
		{"sibling functions", "sin(x) + cos(x)", "(sin(x)+cos(x))"},
		{"function times term", "exp(x) * 2", "(exp(x)*2)"},
		{"unknown identifier is variable", "foo + 1", "(foo+1)"},
		{"no spaces", "3*y/6", "((3*y)/6)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shape(t, tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseComplexDomain(t *testing.T) {
	node, err := parser.Parse[complex128]("i * i", domain.Complex{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// "i" lexes as an ordinary variable; its meaning is decided at
	// evaluation time.
	if node.Kind != types.KindMultiply || node.Left.Kind != types.KindVariable || node.Left.Name != "i" {
		t.Errorf("unexpected tree %s", types.Render(node, domain.Complex{}.Format))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  types.ErrorCode
	}{
		{"invalid character", "2 $ 3", types.ErrInvalidCharacter},
		{"invalid number", "1..2 + 3", types.ErrInvalidNumber},
		{"trailing operator", "2 +", types.ErrInvalidExpression},
		{"lone operator", "*", types.ErrInvalidExpression},
		{"two values", "2 3", types.ErrInvalidExpression},
		{"empty input", "", types.ErrInvalidExpression},
		{"unmatched open", "(1 + 2", types.ErrUnmatchedParen},
		{"unmatched close", "1 + 2)", types.ErrUnmatchedParen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse[float64](tt.input, domain.Real{})
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.input)
			}
			var engineErr *types.Error
			if !errors.As(err, &engineErr) {
				t.Fatalf("Parse(%q): error %v is not a typed engine error", tt.input, err)
			}
			if engineErr.Code != tt.code {
				t.Errorf("Parse(%q): code = %s, want %s", tt.input, engineErr.Code, tt.code)
			}
			if !types.IsParseError(err) {
				t.Errorf("Parse(%q): error must classify as parse error", tt.input)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parser.Parse[float64]("12 $ 3", domain.Real{})
	var engineErr *types.Error
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected typed error, got %v", err)
	}
	if engineErr.Position != 3 {
		t.Errorf("Position = %d, want 3", engineErr.Position)
	}
}
