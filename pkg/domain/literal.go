package domain

import (
	"fmt"
	"strconv"
	"strings"
)

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// IsComplex reports whether the input contains a free "i" token, which marks
// the expression as requiring the complex domain.
//
// An "i" adjacent to another letter belongs to an identifier (sin, pi) and is
// skipped. A standalone "i" counts only when its left boundary is the string
// start, whitespace, a digit, '-' or '.', and its right boundary is the
// string end, whitespace or a digit.
func IsComplex(input string) bool {
	for pos := 0; pos < len(input); pos++ {
		if input[pos] != 'i' {
			continue
		}
		if pos > 0 && isAlpha(input[pos-1]) {
			continue
		}
		if pos+1 < len(input) && isAlpha(input[pos+1]) {
			continue
		}

		leftValid := pos == 0 || isSpace(input[pos-1]) || isDigit(input[pos-1]) ||
			input[pos-1] == '-' || input[pos-1] == '.'
		rightValid := pos == len(input)-1 || isSpace(input[pos+1]) || isDigit(input[pos+1])
		if leftValid && rightValid {
			return true
		}
	}
	return false
}

// ParseComplexLiteral parses a "<real>±<imag>i" literal into a complex value.
//
// The text is split at the last '+' or '-' before the located 'i'. An empty
// or "+"-only imaginary part means coefficient 1, "-" means -1, and a missing
// real part means 0. Input without any 'i' parses as a pure real.
func ParseComplexLiteral(input string) (complex128, error) {
	iPos := strings.IndexByte(input, 'i')
	if iPos < 0 {
		re, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q: %w", input, err)
		}
		return complex(re, 0), nil
	}

	var realPart, imagPart string
	signPos := strings.LastIndexAny(input[:iPos], "+-")
	if signPos < 0 {
		imagPart = input[:iPos]
	} else {
		realPart = input[:signPos]
		imagPart = input[signPos:iPos]
	}

	re := 0.0
	if s := strings.TrimSpace(realPart); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q: %w", input, err)
		}
		re = v
	}

	im := 1.0
	switch s := strings.TrimSpace(imagPart); s {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q: %w", input, err)
		}
		im = v
	}

	return complex(re, im), nil
}
