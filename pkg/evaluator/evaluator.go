// Package evaluator walks expression trees and computes their value under a
// set of variable bindings.
//
// The evaluator is generic over the scalar domain: the same walk serves real
// and complex expressions. Evaluation is a pure synchronous recursion over
// the tree; an Evaluator carries no per-call state and is safe for
// concurrent use.
//
// # Example
//
//	ev := evaluator.New[float64](domain.Real{})
//	v, err := ev.Eval(node, map[string]float64{"y": 2})
package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/itskodn/Expression/pkg/domain"
	"github.com/itskodn/Expression/pkg/types"
)

// Evaluator evaluates expression trees over one scalar domain.
type Evaluator[T any] struct {
	dom    domain.Domain[T]
	logger *slog.Logger
	debug  bool
}

// Options configures evaluator behavior.
type Options struct {
	// Debug enables debug logging of every evaluation.
	Debug bool
	// Logger for structured logging. Defaults to slog.Default.
	Logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Options)

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) Option {
	return func(opts *Options) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// New creates an Evaluator for the given domain.
func New[T any](dom domain.Domain[T], opts ...Option) *Evaluator[T] {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Evaluator[T]{
		dom:    dom,
		logger: options.Logger,
		debug:  options.Debug,
	}
}

// Eval evaluates the tree rooted at root under the given bindings.
func (e *Evaluator[T]) Eval(root *types.Node[T], bindings map[string]T) (T, error) {
	var zero T
	if root == nil {
		return zero, types.NewError(types.ErrInvalidExpression, "nil expression", -1)
	}

	v, err := e.evalNode(root, bindings)
	if e.debug {
		if err != nil {
			e.logger.Debug("evaluation failed", "error", err)
		} else {
			e.logger.Debug("evaluated expression", "result", e.dom.Format(v), "bindings", len(bindings))
		}
	}
	return v, err
}

func (e *Evaluator[T]) evalNode(n *types.Node[T], bindings map[string]T) (T, error) {
	var zero T

	switch {
	case n.Kind == types.KindConstant:
		return n.Value, nil

	case n.Kind == types.KindVariable:
		// Under the complex domain the free identifier "i" is the imaginary
		// unit, regardless of the bindings.
		if n.Name == "i" {
			if unit, ok := e.dom.Imaginary(); ok {
				return unit, nil
			}
		}
		v, ok := bindings[n.Name]
		if !ok {
			return zero, types.NewError(types.ErrVariableNotFound,
				"variable not found: "+n.Name, -1)
		}
		return v, nil

	case n.Kind.IsBinary():
		left, err := e.evalNode(n.Left, bindings)
		if err != nil {
			return zero, err
		}
		right, err := e.evalNode(n.Right, bindings)
		if err != nil {
			return zero, err
		}
		return e.applyBinary(n.Kind, left, right)

	case n.Kind.IsFunction():
		arg, err := e.evalNode(n.Arg, bindings)
		if err != nil {
			return zero, err
		}
		return e.applyFunction(n.Kind, arg)
	}

	return zero, types.NewError(types.ErrUnsupportedOperation,
		fmt.Sprintf("unsupported node kind %s", n.Kind), -1)
}

func (e *Evaluator[T]) applyBinary(kind types.Kind, left, right T) (T, error) {
	var zero T
	switch kind {
	case types.KindAdd:
		return e.dom.Add(left, right), nil
	case types.KindSubtract:
		return e.dom.Sub(left, right), nil
	case types.KindMultiply:
		return e.dom.Mul(left, right), nil
	case types.KindDivide:
		if e.dom.Equal(right, e.dom.Zero()) {
			return zero, types.NewError(types.ErrDivisionByZero, "division by zero", -1)
		}
		return e.dom.Div(left, right), nil
	case types.KindPower:
		return e.dom.Pow(left, right), nil
	}
	return zero, types.NewError(types.ErrUnsupportedOperation,
		fmt.Sprintf("unsupported binary operation %s", kind), -1)
}

func (e *Evaluator[T]) applyFunction(kind types.Kind, arg T) (T, error) {
	var zero T
	switch kind {
	case types.KindSin:
		return e.dom.Sin(arg), nil
	case types.KindCos:
		return e.dom.Cos(arg), nil
	case types.KindExp:
		return e.dom.Exp(arg), nil
	case types.KindLn:
		if !e.dom.LogDefined(arg) {
			return zero, types.NewError(types.ErrLogDomain, "logarithm domain error", -1)
		}
		return e.dom.Ln(arg), nil
	}
	return zero, types.NewError(types.ErrUnsupportedOperation,
		fmt.Sprintf("unsupported function %s", kind), -1)
}
