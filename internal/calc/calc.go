// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc implements the calculator sub-session: expression parsing,
// evaluation, and the nested read-eval loop entered from chat.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrMalformed indicates the line is not <number> <operator> <number>.
	ErrMalformed = errors.New("calc: malformed expression")

	// ErrUnknownOp indicates an operator outside + - * x /.
	ErrUnknownOp = errors.New("calc: unknown operator")

	// ErrDivideByZero indicates division by zero. Recoverable: the
	// sub-session reports it and stays active.
	ErrDivideByZero = errors.New("calc: division by zero")
)

// =============================================================================
// EXPRESSION
// =============================================================================

// Expr is one parsed binary expression.
type Expr struct {
	A, B float64
	Op   byte
}

// Parse parses a line of the form <number> <operator> <number>.
// Tokens are separated by runs of whitespace. The operator must be a single
// character; 'x' is accepted as an alias for '*'.
func Parse(line string) (Expr, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Expr{}, fmt.Errorf("%w: want 3 tokens, got %d", ErrMalformed, len(fields))
	}

	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Expr{}, fmt.Errorf("%w: bad operand %q", ErrMalformed, fields[0])
	}
	b, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Expr{}, fmt.Errorf("%w: bad operand %q", ErrMalformed, fields[2])
	}

	opTok := fields[1]
	if len(opTok) != 1 || !strings.ContainsAny(opTok, "+-*x/") {
		return Expr{}, fmt.Errorf("%w: %q", ErrUnknownOp, opTok)
	}

	return Expr{A: a, B: b, Op: opTok[0]}, nil
}

// Eval computes the expression value.
func (e Expr) Eval() (float64, error) {
	switch e.Op {
	case '+':
		return e.A + e.B, nil
	case '-':
		return e.A - e.B, nil
	case '*', 'x':
		return e.A * e.B, nil
	case '/':
		if e.B == 0 {
			return 0, ErrDivideByZero
		}
		return e.A / e.B, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, string(e.Op))
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatNumber renders a float with up to 4 decimal digits, stripping
// trailing zeros and a trailing decimal point: 5.0000 -> "5",
// 5.2500 -> "5.25".
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// FormatResult renders the full equation line: "5 + 3 = 8".
// The operator is echoed as the user typed it, so "6 x 7 = 42".
func FormatResult(e Expr, result float64) string {
	return fmt.Sprintf("%s %c %s = %s",
		FormatNumber(e.A), e.Op, FormatNumber(e.B), FormatNumber(result))
}
