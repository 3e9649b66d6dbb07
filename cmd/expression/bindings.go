package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itskodn/Expression/pkg/domain"
)

// splitBindings collects name=value command tokens into a raw binding map,
// rejecting malformed tokens and duplicate names.
func splitBindings(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q (want name=value)", arg)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("duplicate binding for %q", name)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

// bindingsAreComplex reports whether any bound value itself requires the
// complex domain.
func bindingsAreComplex(raw map[string]string) bool {
	for _, v := range raw {
		if domain.IsComplex(v) {
			return true
		}
	}
	return false
}

func realBindings(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for name, value := range raw {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func complexBindings(raw map[string]string) (map[string]complex128, error) {
	out := make(map[string]complex128, len(raw))
	for name, value := range raw {
		v, err := domain.ParseComplexLiteral(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}
