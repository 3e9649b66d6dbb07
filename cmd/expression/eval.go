package main

import (
	"github.com/spf13/cobra"

	expression "github.com/itskodn/Expression"
	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/evaluator"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr> [name=value ...]",
		Short: "Parse an expression and evaluate it under the given bindings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := splitBindings(args[1:])
			if err != nil {
				return err
			}
			out, err := runEval(args[0], raw)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

// runEval picks the scalar domain from the expression text and the bound
// values, then parses and evaluates.
func runEval(src string, raw map[string]string) (string, error) {
	if domain.IsComplex(src) || bindingsAreComplex(raw) {
		return evalIn[complex128](src, domain.Complex{}, raw, complexBindings)
	}
	return evalIn[float64](src, domain.Real{}, raw, realBindings)
}

func evalIn[T any](src string, dom domain.Domain[T], raw map[string]string,
	convert func(map[string]string) (map[string]T, error)) (string, error) {

	bindings, err := convert(raw)
	if err != nil {
		return "", err
	}
	expr, err := expression.Parse(src, dom)
	if err != nil {
		return "", err
	}
	ev := evaluator.New(dom, evaluator.WithDebug(debugFlag))
	v, err := ev.Eval(expr.AST(), bindings)
	if err != nil {
		return "", err
	}
	return dom.Format(v), nil
}
