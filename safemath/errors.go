package safemath

import "errors"

var (
	// ErrOverflow indicates a sum or product does not fit in a uint64.
	ErrOverflow = errors.New("safemath: arithmetic overflow")

	// ErrUnderflow indicates a subtraction would go below zero.
	ErrUnderflow = errors.New("safemath: arithmetic underflow")

	// ErrDivideByZero indicates a zero denominator.
	ErrDivideByZero = errors.New("safemath: division by zero")
)
