package field

import (
	"fmt"
	"math/big"
)

// RangeError reports a residue outside [0, prime) passed to a constructor.
// It carries the rejected value and the modulus so callers can render a
// meaningful message.
type RangeError struct {
	Num   *big.Int
	Prime *big.Int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field: num %s is not in the field range 0 to %s",
		e.Num, new(big.Int).Sub(e.Prime, big.NewInt(1)))
}

// IncompatibleFieldError reports a binary operation on elements with
// different moduli. Op is the operation that was attempted.
type IncompatibleFieldError struct {
	Op     string
	PrimeA *big.Int
	PrimeB *big.Int
}

func (e *IncompatibleFieldError) Error() string {
	return fmt.Sprintf("field: cannot %s two numbers in different fields (moduli %s and %s)",
		e.Op, e.PrimeA, e.PrimeB)
}

// DivisionByZeroError reports division by the zero element, or a negative
// power of zero (whose meaning depends on inverting zero).
type DivisionByZeroError struct {
	Prime *big.Int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("field: cannot divide by zero (modulus %s)", e.Prime)
}
