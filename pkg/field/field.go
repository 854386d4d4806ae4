package field

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element represents a residue class modulo a prime. It is an immutable
// value type: every operation returns a new Element and the receiver is
// never modified, so Elements may be shared freely across goroutines.
//
// The zero value of Element is not usable; construct via New, Zero or One.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New creates a field element for the residue num modulo prime.
// Returns a *RangeError if num is outside [0, prime).
func New(num, prime *big.Int) (Element, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return Element{}, &RangeError{
			Num:   new(big.Int).Set(num),
			Prime: new(big.Int).Set(prime),
		}
	}

	// Copy both inputs so later mutation by the caller cannot reach in.
	return Element{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// Zero returns the additive identity of the field with the given modulus.
func Zero(prime *big.Int) Element {
	return Element{num: new(big.Int), prime: new(big.Int).Set(prime)}
}

// One returns the multiplicative identity of the field with the given modulus.
func One(prime *big.Int) Element {
	return Element{num: big.NewInt(1), prime: new(big.Int).Set(prime)}
}

// Num returns a copy of the residue value.
func (e Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the field modulus.
func (e Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether the element is the zero residue.
func (e Element) IsZero() bool {
	return e.num.Sign() == 0
}

// Equal reports whether two elements have the same residue and the same
// modulus. Both operands' moduli are compared; elements of different
// fields are never equal.
func (e Element) Equal(other Element) bool {
	return e.num.Cmp(other.num) == 0 && e.prime.Cmp(other.prime) == 0
}

func (e Element) String() string {
	return fmt.Sprintf("%v (mod %v)", e.num, e.prime)
}

// sameField returns an *IncompatibleFieldError if the operands live in
// different fields.
func (e Element) sameField(other Element, op string) error {
	if e.prime.Cmp(other.prime) != 0 {
		return &IncompatibleFieldError{
			Op:     op,
			PrimeA: new(big.Int).Set(e.prime),
			PrimeB: new(big.Int).Set(other.prime),
		}
	}
	return nil
}

// Add returns e + other mod prime.
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField(other, "add"); err != nil {
		return Element{}, err
	}

	num := new(big.Int).Add(e.num, other.num)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}, nil
}

// Sub returns e - other mod prime.
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField(other, "subtract"); err != nil {
		return Element{}, err
	}

	num := new(big.Int).Sub(e.num, other.num)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}, nil
}

// Mul returns e * other mod prime.
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField(other, "multiply"); err != nil {
		return Element{}, err
	}

	num := new(big.Int).Mul(e.num, other.num)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}, nil
}

// Pow returns e raised to the given exponent, which may be negative or
// larger than prime-1. The exponent is first reduced modulo prime-1,
// valid because the multiplicative group of a prime field has order
// prime-1 (Fermat's little theorem). A negative exponent of the zero
// element is undefined and returns a *DivisionByZeroError.
func (e Element) Pow(exponent *big.Int) (Element, error) {
	if exponent.Sign() < 0 && e.num.Sign() == 0 {
		return Element{}, &DivisionByZeroError{Prime: new(big.Int).Set(e.prime)}
	}

	// big.Int.Mod is Euclidean, so n lands in [0, prime-1) even for
	// negative exponents.
	n := new(big.Int).Mod(exponent, new(big.Int).Sub(e.prime, one))
	num := new(big.Int).Exp(e.num, n, e.prime)

	return Element{num: num, prime: e.prime}, nil
}

// Div returns e / other mod prime. The inverse of other is computed as
// other^(prime-2) mod prime by Fermat's little theorem.
func (e Element) Div(other Element) (Element, error) {
	if err := e.sameField(other, "divide"); err != nil {
		return Element{}, err
	}

	if other.num.Sign() == 0 {
		return Element{}, &DivisionByZeroError{Prime: new(big.Int).Set(e.prime)}
	}

	inv := new(big.Int).Exp(other.num, new(big.Int).Sub(e.prime, two), e.prime)
	num := new(big.Int).Mul(e.num, inv)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}, nil
}

// Scale returns e multiplied by a plain integer coefficient, which need
// not be a reduced residue. Unlike Mul it takes no second field element
// and cannot fail; the curve doubling formula uses it for the constant
// coefficients 2 and 3.
func (e Element) Scale(coefficient *big.Int) Element {
	num := new(big.Int).Mul(e.num, coefficient)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}
}

// Neg returns the additive inverse of e.
func (e Element) Neg() Element {
	num := new(big.Int).Neg(e.num)
	num.Mod(num, e.prime)

	return Element{num: num, prime: e.prime}
}
