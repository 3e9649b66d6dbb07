// Package domain defines the numeric capability set the expression engine is
// generic over, together with its two concrete scalar domains.
//
// Every other component (AST, parser, evaluator, differentiator) is written
// against the [Domain] interface only, so the same tree machinery works for
// real and complex scalars:
//   - [Real]: float64 arithmetic via the math package
//   - [Complex]: complex128 arithmetic via math/cmplx
//
// The package also hosts the complex-literal heuristics used to pick a
// domain for raw input text ([Detect], [IsComplex]) and to parse a
// "<real>±<imag>i" literal ([ParseComplexLiteral]).
package domain

// Domain is the capability set a scalar type must provide to the engine.
//
// Div and Pow are total within the interface: the evaluator rejects an exact
// zero divisor (via Equal/Zero) before calling Div, and checks LogDefined
// before calling Ln. Implementations therefore never have to signal errors.
type Domain[T any] interface {
	// Arithmetic.
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T

	// Pow computes a generalized exponentiation valid for any base and
	// exponent of the domain.
	Pow(base, exp T) T

	// Trigonometry and exp/log.
	Sin(v T) T
	Cos(v T) T
	Exp(v T) T
	Ln(v T) T

	// LogDefined reports whether Ln is defined for v.
	LogDefined(v T) bool

	// Identity elements and equality.
	Zero() T
	One() T
	Equal(a, b T) bool

	// FromFloat converts a parsed numeric literal into the domain.
	FromFloat(f float64) T

	// Format renders a value for stringification of constant nodes.
	Format(v T) string

	// Imaginary returns the value of the free identifier "i" and true when
	// the domain has an imaginary unit; ok is false for real domains.
	Imaginary() (v T, ok bool)
}

// Kind names one of the two concrete domains.
type Kind int

const (
	RealDomain Kind = iota
	ComplexDomain
)

// String returns the domain name.
func (k Kind) String() string {
	if k == ComplexDomain {
		return "complex"
	}
	return "real"
}

// Detect decides which domain an expression text requires. The input is
// complex when it contains a free "i" token (see IsComplex); everything else
// is real.
func Detect(input string) Kind {
	if IsComplex(input) {
		return ComplexDomain
	}
	return RealDomain
}
