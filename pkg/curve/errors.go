package curve

import (
	"fmt"

	"github.com/smallyu/go-ecc/pkg/field"
)

// NotOnCurveError reports a candidate coordinate pair that does not
// satisfy the curve equation y^2 = x^3 + ax + b.
type NotOnCurveError struct {
	X, Y field.Element
	A, B field.Element
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("curve: (%s, %s) is not on the curve y^2 = x^3 + %s*x + %s",
		e.X.Num(), e.Y.Num(), e.A.Num(), e.B.Num())
}

// IncompatibleCurveError reports a binary operation on points that belong
// to curves with different parameters.
type IncompatibleCurveError struct {
	P, Q Point
}

func (e *IncompatibleCurveError) Error() string {
	return fmt.Sprintf("curve: %s and %s are not on the same curve", e.P, e.Q)
}

// InternalInvariantError reports that the point-addition case analysis
// reached a branch that should be unreachable for valid points. It
// indicates a defect in this package, not bad caller input.
type InternalInvariantError struct {
	P, Q Point
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("curve: internal invariant violated adding %s and %s", e.P, e.Q)
}
