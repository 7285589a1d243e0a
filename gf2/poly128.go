package gf2

import (
	"math/bits"
	"strings"
)

// A Poly128 is a polynomial over GF(2) mod x^128, stored as two
// 64-bit words. It is wide enough to hold the full product of two
// Poly64s, which a single machine word would silently truncate.
type Poly128 struct {
	hi, lo uint64
}

// NewPoly128 returns the polynomial hi.Times(x^64).Plus(lo).
func NewPoly128(hi, lo Poly64) Poly128 {
	return Poly128{hi: uint64(hi), lo: uint64(lo)}
}

// Hi returns the coefficients of x^64 through x^127 of p, shifted
// down to a Poly64.
func (p Poly128) Hi() Poly64 {
	return Poly64(p.hi)
}

// Lo returns the coefficients of x^0 through x^63 of p.
func (p Poly128) Lo() Poly64 {
	return Poly64(p.lo)
}

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly128) Plus(q Poly128) Poly128 {
	return Poly128{hi: p.hi ^ q.hi, lo: p.lo ^ q.lo}
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly128) Minus(q Poly128) Poly128 {
	return p.Plus(q)
}

// Deg returns the degree of p, or -1 if p is the zero polynomial.
func (p Poly128) Deg() int {
	if p.hi != 0 {
		return 63 + bits.Len64(p.hi)
	}
	return bits.Len64(p.lo) - 1
}

// Lsh returns the product of p and x^k, mod x^128.
func (p Poly128) Lsh(k uint) Poly128 {
	switch {
	case k == 0:
		return p
	case k < 64:
		return Poly128{hi: p.hi<<k | p.lo>>(64-k), lo: p.lo << k}
	case k < 128:
		return Poly128{hi: p.lo << (k - 64)}
	default:
		return Poly128{}
	}
}

// Div returns the quotient and remainder of the Euclidean division of
// p by g over GF(2). The remainder always fits a Poly64 since its
// degree is below g's. It returns ErrDivideByZero if g is the zero
// polynomial.
func (p Poly128) Div(g Poly64) (quot Poly128, rem Poly64, err error) {
	if g == 0 {
		return Poly128{}, 0, ErrDivideByZero
	}
	d := g.Deg()
	r := p
	for r.Deg() >= d {
		s := uint(r.Deg() - d)
		quot = quot.Plus(Poly128{lo: 1}.Lsh(s))
		r = r.Plus(Poly128{lo: uint64(g)}.Lsh(s))
	}
	return quot, Poly64(r.lo), nil
}

// Mod returns the remainder of the Euclidean division of p by g. It
// returns ErrDivideByZero if g is the zero polynomial.
func (p Poly128) Mod(g Poly64) (Poly64, error) {
	_, rem, err := p.Div(g)
	return rem, err
}

// String returns p as a sum of x^i terms in descending order of
// exponent, with the same conventions as Poly64.String.
func (p Poly128) String() string {
	terms := appendTerms(nil, p.hi, 64)
	terms = appendTerms(terms, p.lo, 0)
	return strings.Join(terms, " + ")
}
