package expression_test

import (
	"fmt"

	expression "github.com/itskodn/Expression"
	"github.com/itskodn/Expression/pkg/domain"
)

func ExampleParseReal() {
	expr, err := expression.ParseReal("3 * y / 6")
	if err != nil {
		panic(err)
	}
	v, err := expr.Eval(map[string]float64{"y": 12})
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 6
}

func ExampleExpression_Diff() {
	expr, err := expression.ParseReal("y ^ 3")
	if err != nil {
		panic(err)
	}
	d, err := expr.Diff("y")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: ((y^3)*(3*(1/y)))
}

func ExampleParseComplex() {
	expr, err := expression.ParseComplex("i * i")
	if err != nil {
		panic(err)
	}
	v, err := expr.Eval(nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: (-1+0i)
}

func ExampleVariable() {
	x := expression.Variable[float64]("x", domain.Real{})
	e := x.Mul(x).Sin()
	fmt.Println(e)
	// Output: sin((x*x))
}
