package field

import (
	"fmt"
	"math/big"
)

// s256Prime is the secp256k1 field modulus, 2^256 - 2^32 - 977.
var s256Prime, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

// S256Prime returns a copy of the secp256k1 field modulus.
func S256Prime() *big.Int {
	return new(big.Int).Set(s256Prime)
}

// NewS256 creates an element of the secp256k1 base field. It is the
// fixed-modulus specialization of New: the modulus is supplied by the
// factory instead of the caller, and the two share the same operation
// contracts.
func NewS256(num *big.Int) (Element, error) {
	return New(num, s256Prime)
}

// S256String renders a secp256k1 field element as 64 hex digits with
// leading zeros, the conventional display for this field.
func S256String(e Element) string {
	return fmt.Sprintf("%064x", e.num)
}
