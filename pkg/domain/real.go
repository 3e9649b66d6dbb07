package domain

import (
	"math"
	"strconv"
)

// Real is the float64 scalar domain.
type Real struct{}

func (Real) Add(a, b float64) float64 { return a + b }
func (Real) Sub(a, b float64) float64 { return a - b }
func (Real) Mul(a, b float64) float64 { return a * b }
func (Real) Div(a, b float64) float64 { return a / b }

func (Real) Pow(base, exp float64) float64 { return math.Pow(base, exp) }

func (Real) Sin(v float64) float64 { return math.Sin(v) }
func (Real) Cos(v float64) float64 { return math.Cos(v) }
func (Real) Exp(v float64) float64 { return math.Exp(v) }
func (Real) Ln(v float64) float64  { return math.Log(v) }

// LogDefined restricts the real logarithm to strictly positive arguments.
func (Real) LogDefined(v float64) bool { return v > 0 }

func (Real) Zero() float64               { return 0 }
func (Real) One() float64                { return 1 }
func (Real) Equal(a, b float64) bool     { return a == b }
func (Real) FromFloat(f float64) float64 { return f }

func (Real) Format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Imaginary always reports false: the real domain has no imaginary unit.
func (Real) Imaginary() (float64, bool) { return 0, false }
