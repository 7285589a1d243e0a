package gf2

import (
	"errors"
	"math/bits"
	"strconv"
	"strings"
)

// A Poly64 is a polynomial over GF(2) mod x^64. Bit i of the
// underlying integer is the coefficient of x^i.
type Poly64 uint64

// ErrDivideByZero is returned when a divisor or modulus is the zero
// polynomial, which has no degree.
var ErrDivideByZero = errors.New("gf2: division by zero polynomial")

// ErrNotInvertible is returned by InvMod when the receiver has no
// multiplicative inverse modulo the given polynomial.
var ErrNotInvertible = errors.New("gf2: polynomial is not invertible")

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^64.
func (p Poly64) Times(q Poly64) Poly64 {
	var prod Poly64
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// MulWide returns the full product of p and q as polynomials over
// GF(2), with no reduction mod x^64. For nonzero p and q the product
// has degree p.Deg() + q.Deg(), which may be as large as 126.
func (p Poly64) MulWide(q Poly64) Poly128 {
	var prod Poly128
	a := Poly128{lo: uint64(p)}
	for q != 0 {
		if q&1 != 0 {
			prod = prod.Plus(a)
		}
		q >>= 1
		a = a.Lsh(1)
	}
	return prod
}

// Deg returns the degree of p, or -1 if p is the zero polynomial.
func (p Poly64) Deg() int {
	return bits.Len64(uint64(p)) - 1
}

// Reverse returns the polynomial whose coefficient of x^i is p's
// coefficient of x^(width-1-i), for i in [0, width). Coefficients of
// x^width and above are dropped, and the result occupies only the low
// width bits; both are defined behavior, not errors. Reverse panics
// if width > 64.
func (p Poly64) Reverse(width uint) Poly64 {
	if width > 64 {
		panic("width too large")
	}
	return Poly64(bits.Reverse64(uint64(p)) >> (64 - width))
}

// Div returns the quotient and remainder of the Euclidean division of
// p by q over GF(2), so that p == quot.Times(q).Plus(rem) with
// rem.Deg() < q.Deg(). It returns ErrDivideByZero if q is the zero
// polynomial.
func (p Poly64) Div(q Poly64) (quot, rem Poly64, err error) {
	if q == 0 {
		return 0, 0, ErrDivideByZero
	}
	d := q.Deg()
	rem = p
	for rem.Deg() >= d {
		s := uint(rem.Deg() - d)
		quot |= 1 << s
		rem ^= q << s
	}
	return quot, rem, nil
}

// Mod returns the remainder of the Euclidean division of p by g. It
// returns ErrDivideByZero if g is the zero polynomial.
func (p Poly64) Mod(g Poly64) (Poly64, error) {
	_, rem, err := p.Div(g)
	return rem, err
}

// InvMod returns the polynomial v with v.Deg() < m.Deg() such that
// p.MulWide(v) reduces to 1 mod m, computed with the extended
// Euclidean algorithm. It returns ErrNotInvertible if p and m share a
// nontrivial factor, and ErrDivideByZero if m is the zero polynomial.
func (p Poly64) InvMod(m Poly64) (Poly64, error) {
	if m == 0 {
		return 0, ErrDivideByZero
	}

	a := m
	b, _ := p.Mod(m)
	if b == 1 {
		return 1, nil
	}

	var vn, vn1 Poly64 = 0, 1
	for {
		if b == 0 {
			return 0, ErrNotInvertible
		}

		q, r, _ := a.Div(b)

		prod, _ := vn1.MulWide(q).Mod(m)
		vn, vn1 = vn1, vn.Plus(prod)

		if r == 1 {
			return vn1.Mod(m)
		}

		a, b = b, r
	}
}

// String returns p as a sum of x^i terms in descending order of
// exponent, e.g. "X^2 + X^0" for 0b101. The constant term is
// rendered as X^0 like every other term, and the zero polynomial
// renders as the empty string.
func (p Poly64) String() string {
	return strings.Join(appendTerms(nil, uint64(p), 0), " + ")
}

// appendTerms appends "X^(i+offset)" to terms for each set bit i of
// word, in descending order of i.
func appendTerms(terms []string, word uint64, offset int) []string {
	for i := 63; i >= 0; i-- {
		if word&(1<<uint(i)) != 0 {
			terms = append(terms, "X^"+strconv.Itoa(i+offset))
		}
	}
	return terms
}
