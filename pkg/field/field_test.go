package field

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// el builds an element from small integers, failing the test on range errors.
func el(t *testing.T, num, prime int64) Element {
	t.Helper()
	e, err := New(big.NewInt(num), big.NewInt(prime))
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Run("valid residues", func(t *testing.T) {
		for _, num := range []int64{0, 1, 30} {
			e, err := New(big.NewInt(num), big.NewInt(31))
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(num), e.Num())
			assert.Equal(t, big.NewInt(31), e.Prime())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, num := range []int64{-1, 31, 100} {
			_, err := New(big.NewInt(num), big.NewInt(31))
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, big.NewInt(num), rangeErr.Num)
			assert.Equal(t, big.NewInt(31), rangeErr.Prime)
		}
	})

	t.Run("inputs are copied", func(t *testing.T) {
		num := big.NewInt(5)
		e, err := New(num, big.NewInt(31))
		require.NoError(t, err)

		num.SetInt64(29)
		assert.Equal(t, big.NewInt(5), e.Num())
	})
}

func TestEqual(t *testing.T) {
	a := el(t, 2, 31)
	b := el(t, 2, 31)
	c := el(t, 15, 31)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	// Same residue under a different modulus is a different element.
	d := el(t, 2, 7)
	assert.False(t, a.Equal(d))
}

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{2, 15, 17},
		{17, 21, 7}, // wraps around the modulus
	}
	for _, tc := range cases {
		got, err := el(t, tc.a, 31).Add(el(t, tc.b, 31))
		require.NoError(t, err)
		assert.True(t, got.Equal(el(t, tc.want, 31)))
	}

	t.Run("different fields", func(t *testing.T) {
		_, err := el(t, 2, 31).Add(el(t, 2, 7))
		var incompatible *IncompatibleFieldError
		require.ErrorAs(t, err, &incompatible)
		assert.Equal(t, big.NewInt(31), incompatible.PrimeA)
		assert.Equal(t, big.NewInt(7), incompatible.PrimeB)
	})
}

func TestSub(t *testing.T) {
	got, err := el(t, 29, 31).Sub(el(t, 4, 31))
	require.NoError(t, err)
	assert.True(t, got.Equal(el(t, 25, 31)))

	// Result re-normalizes into [0, prime).
	got, err = el(t, 15, 31).Sub(el(t, 30, 31))
	require.NoError(t, err)
	assert.True(t, got.Equal(el(t, 16, 31)))

	_, err = el(t, 2, 31).Sub(el(t, 2, 7))
	var incompatible *IncompatibleFieldError
	assert.ErrorAs(t, err, &incompatible)
}

func TestMul(t *testing.T) {
	got, err := el(t, 24, 31).Mul(el(t, 19, 31))
	require.NoError(t, err)
	assert.True(t, got.Equal(el(t, 22, 31)))

	_, err = el(t, 2, 31).Mul(el(t, 2, 7))
	var incompatible *IncompatibleFieldError
	assert.ErrorAs(t, err, &incompatible)
}

func TestScale(t *testing.T) {
	a := el(t, 24, 31)

	sum, err := a.Add(a)
	require.NoError(t, err)
	assert.True(t, a.Scale(big.NewInt(2)).Equal(sum))

	// Coefficients need not be reduced residues.
	assert.True(t, a.Scale(big.NewInt(0)).IsZero())
	assert.True(t, a.Scale(big.NewInt(62)).IsZero())
	assert.True(t, a.Scale(big.NewInt(-1)).Equal(a.Neg()))
}

func TestPow(t *testing.T) {
	got, err := el(t, 17, 31).Pow(big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, got.Equal(el(t, 15, 31)))

	t.Run("exponent beyond group order", func(t *testing.T) {
		a := el(t, 5, 31)
		p5, err := a.Pow(big.NewInt(5))
		require.NoError(t, err)
		p35, err := a.Pow(big.NewInt(35)) // 35 == 5 mod 30
		require.NoError(t, err)
		assert.True(t, p5.Equal(p35))

		got, err := p5.Mul(el(t, 18, 31))
		require.NoError(t, err)
		assert.True(t, got.Equal(el(t, 16, 31)))
	})

	t.Run("negative exponent", func(t *testing.T) {
		got, err := el(t, 17, 31).Pow(big.NewInt(-3))
		require.NoError(t, err)
		assert.True(t, got.Equal(el(t, 29, 31)))

		p, err := el(t, 4, 31).Pow(big.NewInt(-4))
		require.NoError(t, err)
		got, err = p.Mul(el(t, 11, 31))
		require.NoError(t, err)
		assert.True(t, got.Equal(el(t, 13, 31)))
	})

	t.Run("negative exponent of zero fails", func(t *testing.T) {
		_, err := Zero(big.NewInt(31)).Pow(big.NewInt(-1))
		var divZero *DivisionByZeroError
		assert.ErrorAs(t, err, &divZero)
	})
}

func TestDiv(t *testing.T) {
	got, err := el(t, 3, 31).Div(el(t, 24, 31))
	require.NoError(t, err)
	assert.True(t, got.Equal(el(t, 4, 31)))

	t.Run("by zero", func(t *testing.T) {
		_, err := el(t, 3, 31).Div(Zero(big.NewInt(31)))
		var divZero *DivisionByZeroError
		require.ErrorAs(t, err, &divZero)
		assert.Equal(t, big.NewInt(31), divZero.Prime)
	})

	t.Run("different fields", func(t *testing.T) {
		_, err := el(t, 3, 31).Div(el(t, 3, 7))
		var incompatible *IncompatibleFieldError
		assert.ErrorAs(t, err, &incompatible)
	})
}

func TestNeg(t *testing.T) {
	a := el(t, 9, 31)
	sum, err := a.Add(a.Neg())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	assert.True(t, Zero(big.NewInt(31)).Neg().IsZero())
}

// TestFieldLaws exercises the algebraic identities every prime field
// must satisfy, over every element of a couple of small fields.
func TestFieldLaws(t *testing.T) {
	for _, prime := range []int64{7, 11, 31} {
		p := big.NewInt(prime)
		zero := Zero(p)
		one := One(p)

		for i := int64(0); i < prime; i++ {
			a := el(t, i, prime)

			got, err := a.Add(zero)
			require.NoError(t, err)
			assert.True(t, got.Equal(a), "a + 0 != a for a=%d mod %d", i, prime)

			got, err = a.Mul(one)
			require.NoError(t, err)
			assert.True(t, got.Equal(a), "a * 1 != a for a=%d mod %d", i, prime)

			if a.IsZero() {
				continue
			}

			// Fermat: a^(p-1) == 1 for nonzero a.
			got, err = a.Pow(new(big.Int).Sub(p, big.NewInt(1)))
			require.NoError(t, err)
			assert.True(t, got.Equal(one), "a^(p-1) != 1 for a=%d mod %d", i, prime)
		}
	}
}

func TestCommutativityAssociativity(t *testing.T) {
	prime := int64(31)
	triples := [][3]int64{{2, 15, 29}, {0, 1, 30}, {7, 7, 7}, {24, 19, 3}}

	for _, tr := range triples {
		a, b, c := el(t, tr[0], prime), el(t, tr[1], prime), el(t, tr[2], prime)

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba))

		abc, err := ab.Add(c)
		require.NoError(t, err)
		bc, err := b.Add(c)
		require.NoError(t, err)
		abc2, err := a.Add(bc)
		require.NoError(t, err)
		assert.True(t, abc.Equal(abc2))

		mab, err := a.Mul(b)
		require.NoError(t, err)
		mba, err := b.Mul(a)
		require.NoError(t, err)
		assert.True(t, mab.Equal(mba))

		mabc, err := mab.Mul(c)
		require.NoError(t, err)
		mbc, err := b.Mul(c)
		require.NoError(t, err)
		mabc2, err := a.Mul(mbc)
		require.NoError(t, err)
		assert.True(t, mabc.Equal(mabc2))
	}
}

// TestDivInvertsMul checks div(mul(a,b), b) == a for all nonzero b.
func TestDivInvertsMul(t *testing.T) {
	prime := int64(31)
	for i := int64(0); i < prime; i++ {
		for j := int64(1); j < prime; j++ {
			a, b := el(t, i, prime), el(t, j, prime)

			ab, err := a.Mul(b)
			require.NoError(t, err)
			got, err := ab.Div(b)
			require.NoError(t, err)
			if !got.Equal(a) {
				t.Fatalf("div(mul(%d,%d), %d) = %s, want %s", i, j, j, got, a)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := New(big.NewInt(31), big.NewInt(31))
	assert.EqualError(t, err, "field: num 31 is not in the field range 0 to 30")

	_, err = el(t, 2, 31).Add(el(t, 2, 7))
	assert.EqualError(t, err, "field: cannot add two numbers in different fields (moduli 31 and 7)")

	_, err = el(t, 2, 31).Div(Zero(big.NewInt(31)))
	assert.EqualError(t, err, "field: cannot divide by zero (modulus 31)")
	assert.True(t, errors.As(err, new(*DivisionByZeroError)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "15 (mod 31)", el(t, 15, 31).String())
}
