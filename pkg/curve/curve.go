// Package curve implements the group law for points on a short
// Weierstrass curve y^2 = x^3 + ax + b whose coordinates are elements
// of a prime field. All coordinate arithmetic goes through pkg/field.
package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/field"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Point represents either the group identity (point at infinity) or an
// affine point on a curve. The identity is a tagged variant, not a pair
// of nil coordinates, so identity checks are a field lookup rather than
// a nil test. Points are immutable values: every group operation returns
// a new Point, and instances may be shared across goroutines.
type Point struct {
	a, b     field.Element
	x, y     field.Element
	infinity bool
}

// Infinity returns the identity point of the curve defined by a and b.
func Infinity(a, b field.Element) Point {
	return Point{a: a, b: b, infinity: true}
}

// New creates an affine point on the curve defined by a and b. The
// curve equation is checked once here and never re-checked; group
// operations construct results directly. Returns a *NotOnCurveError if
// the equation does not hold, or a field error if the coordinates and
// parameters mix moduli.
func New(x, y, a, b field.Element) (Point, error) {
	lhs, err := y.Pow(two)
	if err != nil {
		return Point{}, err
	}

	x3, err := x.Pow(three)
	if err != nil {
		return Point{}, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return Point{}, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return Point{}, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return Point{}, err
	}

	if !lhs.Equal(rhs) {
		return Point{}, &NotOnCurveError{X: x, Y: y, A: a, B: b}
	}

	return Point{a: a, b: b, x: x, y: y}, nil
}

// IsInfinity reports whether the point is the group identity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Coordinates returns the affine coordinates of the point. ok is false
// for the identity, which has no coordinates.
func (p Point) Coordinates() (x, y field.Element, ok bool) {
	if p.infinity {
		return field.Element{}, field.Element{}, false
	}
	return p.x, p.y, true
}

// A returns the curve parameter a.
func (p Point) A() field.Element { return p.a }

// B returns the curve parameter b.
func (p Point) B() field.Element { return p.b }

// Equal reports whether two points are the same point on the same
// curve. Both points' curve parameters are compared, so equal
// coordinates on different curves do not compare equal.
func (p Point) Equal(q Point) bool {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return false
	}
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if p.infinity {
		return fmt.Sprintf("Point(infinity, a=%s, b=%s)", p.a.Num(), p.b.Num())
	}
	return fmt.Sprintf("Point(%s, %s, a=%s, b=%s, prime=%s)",
		p.x.Num(), p.y.Num(), p.a.Num(), p.b.Num(), p.x.Prime())
}

// Negate returns the additive inverse of the point: same x, y replaced
// by its additive inverse in the field. The identity negates to itself.
func (p Point) Negate() Point {
	if p.infinity {
		return p
	}
	return Point{a: p.a, b: p.b, x: p.x, y: p.y.Neg()}
}

// Add returns p + q under the chord-and-tangent law. Returns an
// *IncompatibleCurveError if the points are on different curves. The
// case analysis below is order dependent: the vertical-tangent check
// must run before general doubling, or doubling a point of order 2
// would divide by zero.
func (p Point) Add(q Point) (Point, error) {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return Point{}, &IncompatibleCurveError{P: p, Q: q}
	}

	// Case 1: either operand is the identity.
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}

	// Case 2: same x, different y. The points are additive inverses
	// and the chord through them is vertical.
	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return Infinity(p.a, p.b), nil
	}

	// Case 3: distinct x. Slope of the chord through p and q.
	if !p.x.Equal(q.x) {
		dy, err := q.y.Sub(p.y)
		if err != nil {
			return Point{}, err
		}
		dx, err := q.x.Sub(p.x)
		if err != nil {
			return Point{}, err
		}
		s, err := dy.Div(dx)
		if err != nil {
			return Point{}, err
		}
		return p.chord(q, s)
	}

	// Case 4: doubling a point whose tangent is vertical (y == 0).
	if p.Equal(q) && p.y.IsZero() {
		return Infinity(p.a, p.b), nil
	}

	// Case 5: general doubling. Slope of the tangent at p is
	// (3x^2 + a) / 2y.
	if p.Equal(q) {
		x2, err := p.x.Pow(two)
		if err != nil {
			return Point{}, err
		}
		num, err := x2.Scale(three).Add(p.a)
		if err != nil {
			return Point{}, err
		}
		s, err := num.Div(p.y.Scale(two))
		if err != nil {
			return Point{}, err
		}
		return p.tangent(s)
	}

	return Point{}, &InternalInvariantError{P: p, Q: q}
}

// chord computes the third intersection of the line with slope s
// through p and q, reflected over the x axis.
func (p Point) chord(q Point, s field.Element) (Point, error) {
	s2, err := s.Pow(two)
	if err != nil {
		return Point{}, err
	}
	x3, err := s2.Sub(p.x)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return Point{}, err
	}

	dx, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return Point{}, err
	}

	return Point{a: p.a, b: p.b, x: x3, y: y3}, nil
}

// tangent computes the second intersection of the tangent with slope s
// at p, reflected over the x axis.
func (p Point) tangent(s field.Element) (Point, error) {
	s2, err := s.Pow(two)
	if err != nil {
		return Point{}, err
	}
	x3, err := s2.Sub(p.x.Scale(two))
	if err != nil {
		return Point{}, err
	}

	dx, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return Point{}, err
	}

	return Point{a: p.a, b: p.b, x: x3, y: y3}, nil
}

// ScalarMul returns coefficient * p computed by double-and-add, which
// costs O(log coefficient) group additions. A zero coefficient yields
// the identity. A negative coefficient n is defined as |n| * (-p); see
// the package tests for the convention.
func (p Point) ScalarMul(coefficient *big.Int) (Point, error) {
	coef := new(big.Int).Set(coefficient)
	current := p
	if coef.Sign() < 0 {
		coef.Neg(coef)
		current = p.Negate()
	}

	result := Infinity(p.a, p.b)
	var err error
	for coef.Sign() > 0 {
		if coef.Bit(0) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return Point{}, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return Point{}, err
		}
		coef.Rsh(coef, 1)
	}

	return result, nil
}
