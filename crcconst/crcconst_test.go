package crcconst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akalin/crcpoly/gf2"
)

func TestGenerator(t *testing.T) {
	require.Equal(t, gf2.Poly64(0x104c11db7), Generator(IEEE))
	require.Equal(t, gf2.Poly64(0x11edc6f41), Generator(Castagnoli))
	require.Equal(t, gf2.Poly64(0x1741b8cd7), Generator(Koopman))
}

func TestXNInverse(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		reversed uint32
		inverse  uint32
	}{
		{"IEEE", IEEE, 0x5b358fd3},
		{"Castagnoli", Castagnoli, 0xd610d67e},
		{"Koopman", Koopman, 0xf1c57414},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			g := Generator(testCase.reversed)
			inv, err := XNInverse(g)
			require.NoError(t, err)
			require.Equal(t, testCase.inverse, inv)
			require.NoError(t, Validate(g, inv))
		})
	}
}

func TestXNInverseBadGenerator(t *testing.T) {
	_, err := XNInverse(gf2.Poly64(0x04c11db7))
	require.Equal(t, ErrBadGenerator, err)

	// A generator divisible by x leaves x^32 with no inverse.
	_, err = XNInverse(gf2.Poly64(1 << 32))
	require.Equal(t, gf2.ErrNotInvertible, err)
}

func TestValidateRejectsWrongConstant(t *testing.T) {
	g := Generator(IEEE)
	require.Equal(t, ErrNotInverse, Validate(g, 0x5b358fd2))
	require.Equal(t, ErrBadGenerator, Validate(gf2.Poly64(3), 0x5b358fd3))
}
