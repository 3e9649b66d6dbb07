package main

import (
	"github.com/spf13/cobra"

	expression "github.com/itskodn/Expression"
	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/evaluator"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <expr> <var> [name=value ...]",
		Short: "Differentiate an expression with respect to a variable",
		Long: `Differentiate an expression symbolically with respect to a variable and
print the derivative. When name=value bindings are supplied, the derivative
is also evaluated under them and the value printed on a second line.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := splitBindings(args[2:])
			if err != nil {
				return err
			}
			lines, err := runDiff(args[0], args[1], raw)
			if err != nil {
				return err
			}
			for _, line := range lines {
				cmd.Println(line)
			}
			return nil
		},
	}
}

// runDiff picks the scalar domain, differentiates, and optionally evaluates
// the derivative under the given bindings.
func runDiff(src, variable string, raw map[string]string) ([]string, error) {
	if domain.IsComplex(src) || bindingsAreComplex(raw) {
		return diffIn[complex128](src, variable, domain.Complex{}, raw, complexBindings)
	}
	return diffIn[float64](src, variable, domain.Real{}, raw, realBindings)
}

func diffIn[T any](src, variable string, dom domain.Domain[T], raw map[string]string,
	convert func(map[string]string) (map[string]T, error)) ([]string, error) {

	expr, err := expression.Parse(src, dom)
	if err != nil {
		return nil, err
	}
	derivative, err := expr.Diff(variable)
	if err != nil {
		return nil, err
	}

	lines := []string{derivative.String()}
	if len(raw) > 0 {
		bindings, err := convert(raw)
		if err != nil {
			return nil, err
		}
		ev := evaluator.New(dom, evaluator.WithDebug(debugFlag))
		v, err := ev.Eval(derivative.AST(), bindings)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dom.Format(v))
	}
	return lines, nil
}
