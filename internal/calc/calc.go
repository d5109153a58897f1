// Copyright 2026 Scalc Users
// SPDX-License-Identifier: Apache-2.0

// Package calc implements the arithmetic core of the calculator: the four
// integer operations, operator dispatch, and the display formatting of an
// outcome. Operands are int64 and overflow wraps; hardening against it is
// out of scope.
package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates the divisor was zero; no quotient exists.
	ErrDivisionByZero = errors.New("cannot divide by zero")
	// ErrUnknownOperator indicates the operator is outside {+, -, *, /}.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Operator selects one of the four arithmetic operations.
type Operator rune

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

// Outcome is the result of applying an operator to two operands: an integer
// for add, subtract and multiply, a float64 quotient for divide. The tag
// keeps a computed zero distinguishable from a zero-valued quotient.
type Outcome struct {
	Int        int64
	Quotient   float64
	IsQuotient bool
}

// String renders the outcome the way the console reports it: integers as-is,
// quotients to two decimal places.
func (o Outcome) String() string {
	if o.IsQuotient {
		return fmt.Sprintf("%.2f", o.Quotient)
	}
	return fmt.Sprintf("%d", o.Int)
}

// Add returns a + b.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns the quotient of a and b. A zero divisor yields
// ErrDivisionByZero; the error, not the zero value, is the signal.
func Divide(a, b int64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

// Apply dispatches op to the matching operation. Exactly one operation runs
// for a known operator; an unknown operator computes nothing and returns
// ErrUnknownOperator.
func Apply(op Operator, a, b int64) (Outcome, error) {
	switch op {
	case OpAdd:
		return Outcome{Int: Add(a, b)}, nil
	case OpSubtract:
		return Outcome{Int: Subtract(a, b)}, nil
	case OpMultiply:
		return Outcome{Int: Multiply(a, b)}, nil
	case OpDivide:
		q, err := Divide(a, b)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Quotient: q, IsQuotient: true}, nil
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}
