// Package crcconst derives and validates the polynomial constants
// used by reflected 32-bit CRC implementations. A CRC-32 variant is
// conventionally named by the reversed (LSB-first) bit pattern of its
// generator polynomial; the full generator also carries an implicit
// x^32 term. The interesting derived constant is the inverse of x^32
// modulo the generator, which appears in CRC forging and folding
// identities.
package crcconst

import (
	"errors"

	"github.com/akalin/crcpoly/gf2"
)

// Reversed (LSB-first) representations of common CRC-32 generator
// polynomials.
const (
	IEEE       uint32 = 0xedb88320
	Castagnoli uint32 = 0x82f63b78
	Koopman    uint32 = 0xeb31d82e
)

// Width is the register width of the CRCs this package works with.
const Width = 32

// ErrBadGenerator is returned when a generator polynomial does not
// have degree Width.
var ErrBadGenerator = errors.New("crcconst: generator must have degree 32")

// ErrNotInverse is returned by Validate when the given constant is
// not the inverse of x^32 modulo the generator.
var ErrNotInverse = errors.New("crcconst: constant is not the inverse of x^32")

// Generator returns the full generator polynomial of the CRC-32
// variant whose reversed representation is reversed, including the
// implicit x^32 term.
func Generator(reversed uint32) gf2.Poly64 {
	return gf2.Poly64(reversed).Reverse(Width) | 1<<Width
}

// XNInverse returns the inverse of x^32 modulo g in reversed
// (LSB-first) representation. It returns ErrBadGenerator if g does
// not have degree 32, and gf2.ErrNotInvertible if x^32 has no inverse
// modulo g, which happens exactly when g is divisible by x.
func XNInverse(g gf2.Poly64) (uint32, error) {
	if g.Deg() != Width {
		return 0, ErrBadGenerator
	}
	inv, err := gf2.Poly64(1 << Width).InvMod(g)
	if err != nil {
		return 0, err
	}
	return uint32(inv.Reverse(Width)), nil
}

// Validate checks that xnInvReversed is the reversed representation
// of the inverse of x^32 modulo g, by reducing their product and
// comparing the remainder to 1.
func Validate(g gf2.Poly64, xnInvReversed uint32) error {
	if g.Deg() != Width {
		return ErrBadGenerator
	}
	inv := gf2.Poly64(xnInvReversed).Reverse(Width)
	r, err := gf2.Poly64(1 << Width).MulWide(inv).Mod(g)
	if err != nil {
		return err
	}
	if r != 1 {
		return ErrNotInverse
	}
	return nil
}
