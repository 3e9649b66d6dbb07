package domain

import (
	"math/cmplx"
	"strconv"
)

// Complex is the complex128 scalar domain.
type Complex struct{}

func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Sub(a, b complex128) complex128 { return a - b }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Div(a, b complex128) complex128 { return a / b }

func (Complex) Pow(base, exp complex128) complex128 { return cmplx.Pow(base, exp) }

func (Complex) Sin(v complex128) complex128 { return cmplx.Sin(v) }
func (Complex) Cos(v complex128) complex128 { return cmplx.Cos(v) }
func (Complex) Exp(v complex128) complex128 { return cmplx.Exp(v) }
func (Complex) Ln(v complex128) complex128  { return cmplx.Log(v) }

// LogDefined always reports true: the complex logarithm has no restricted
// argument range here.
func (Complex) LogDefined(v complex128) bool { return true }

func (Complex) Zero() complex128                { return 0 }
func (Complex) One() complex128                 { return 1 }
func (Complex) Equal(a, b complex128) bool      { return a == b }
func (Complex) FromFloat(f float64) complex128  { return complex(f, 0) }

func (Complex) Format(v complex128) string { return strconv.FormatComplex(v, 'g', -1, 128) }

// Imaginary returns the imaginary unit, the value of the free identifier "i".
func (Complex) Imaginary() (complex128, bool) { return complex(0, 1), true }
