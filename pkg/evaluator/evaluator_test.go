package evaluator_test

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/evaluator"
	"github.com/itskodn/Expression/pkg/parser"
	"github.com/itskodn/Expression/pkg/types"
)

func evalReal(t *testing.T, input string, bindings map[string]float64) (float64, error) {
	t.Helper()
	node, err := parser.Parse[float64](input, domain.Real{})
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return evaluator.New[float64](domain.Real{}).Eval(node, bindings)
}

func TestEvalReal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		bindings map[string]float64
		want     float64
	}{
		{"addition", "5 + 7", nil, 12},
		{"bound variable", "y + 4", map[string]float64{"y": 6}, 10},
		{"multiply divide", "3 * y / 6", map[string]float64{"y": 12}, 6},
		{"power", "y ^ 3", map[string]float64{"y": 4}, 64},
		{"left associative power", "2 ^ 3 ^ 2", nil, 64},
		{"sine", "sin(y)", map[string]float64{"y": math.Pi / 2}, 1},
		{"cosine", "cos(0)", nil, 1},
		{"exp ln", "exp(ln(5))", nil, 5},
		{"parenthesized", "(1 + 2) * 3", nil, 9},
		{"two variables", "x * y + 1", map[string]float64{"x": 2, "y": 3}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalReal(t, tt.input, tt.bindings)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		bindings map[string]float64
		code     types.ErrorCode
	}{
		{"division by zero", "1 / 0", nil, types.ErrDivisionByZero},
		{"division by zero variable", "1 / y", map[string]float64{"y": 0}, types.ErrDivisionByZero},
		{"unbound variable", "x + 1", nil, types.ErrVariableNotFound},
		{"log of zero", "ln(0)", nil, types.ErrLogDomain},
		{"log of negative", "ln(y)", map[string]float64{"y": -2}, types.ErrLogDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evalReal(t, tt.input, tt.bindings)
			if err == nil {
				t.Fatal("expected error")
			}
			var engineErr *types.Error
			if !errors.As(err, &engineErr) {
				t.Fatalf("error %v is not a typed engine error", err)
			}
			if engineErr.Code != tt.code {
				t.Errorf("code = %s, want %s", engineErr.Code, tt.code)
			}
			if !types.IsEvalError(err) {
				t.Error("error must classify as eval error")
			}
		})
	}
}

func TestEvalComplex(t *testing.T) {
	ev := evaluator.New[complex128](domain.Complex{})

	node, err := parser.Parse[complex128]("i * i", domain.Complex{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := ev.Eval(node, nil)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != complex(-1, 0) {
		t.Errorf("i * i = %v, want (-1+0i)", got)
	}

	// "i" is the imaginary unit even when a binding tries to shadow it.
	got, err = ev.Eval(node, map[string]complex128{"i": 5})
	if err != nil {
		t.Fatalf("Eval with shadowing binding: %v", err)
	}
	if got != complex(-1, 0) {
		t.Errorf("i * i with i bound = %v, want (-1+0i)", got)
	}
}

func TestEvalComplexLog(t *testing.T) {
	node, err := parser.Parse[complex128]("ln(0 - 1)", domain.Complex{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := evaluator.New[complex128](domain.Complex{}).Eval(node, nil)
	if err != nil {
		t.Fatalf("Eval: complex log must be defined for negative reals: %v", err)
	}
	if math.Abs(imag(got)-math.Pi) > 1e-12 {
		t.Errorf("ln(-1) = %v, want pi*i", got)
	}
}

func TestEvalRealIgnoresImaginaryUnit(t *testing.T) {
	// Under the real domain "i" is an ordinary variable.
	got, err := evalReal(t, "i + 1", map[string]float64{"i": 2})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 3 {
		t.Errorf("i + 1 = %v, want 3", got)
	}

	if _, err := evalReal(t, "i", nil); err == nil {
		t.Error("unbound i must fail under the real domain")
	}
}

func TestEvalNilRoot(t *testing.T) {
	_, err := evaluator.New[float64](domain.Real{}).Eval(nil, nil)
	if err == nil {
		t.Fatal("expected error for nil root")
	}
}

func TestEvalDebugLogging(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := evaluator.New[float64](domain.Real{},
		evaluator.WithDebug(true), evaluator.WithLogger(logger))

	node, err := parser.Parse[float64]("2 + 2", domain.Real{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := ev.Eval(node, nil)
	if err != nil || got != 4 {
		t.Fatalf("Eval = %v, %v", got, err)
	}
}
