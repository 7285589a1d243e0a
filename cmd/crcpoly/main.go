package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akalin/crcpoly/crcconst"
	"github.com/akalin/crcpoly/gf2"
)

func printUsageAndExit(name string) {
	name = filepath.Base(name)
	fmt.Printf(`
Usage:
  %s d(erive) [reversed generator in hex]

The generator defaults to the IEEE CRC-32 polynomial, 0xedb88320.

`, name)
	os.Exit(-1)
}

func hexString(p gf2.Poly128) string {
	if p.Hi() != 0 {
		return fmt.Sprintf("0x%x%016x", uint64(p.Hi()), uint64(p.Lo()))
	}
	return fmt.Sprintf("0x%x", uint64(p.Lo()))
}

// derive prints the generator polynomial, the inverse of x^32 modulo
// it, and the full Euclidean reduction showing their product collapse
// to remainder 1.
func derive(reversed uint32) error {
	g := crcconst.Generator(reversed)
	fmt.Printf("G = 0x%x = %s\n", uint64(g), g)

	xn := gf2.Poly64(1) << crcconst.Width
	fmt.Printf("X^N = 0x%x = %s\n", uint64(xn), xn)

	invReversed, err := crcconst.XNInverse(g)
	if err != nil {
		return err
	}
	xnInv := gf2.Poly64(invReversed).Reverse(crcconst.Width)
	fmt.Printf("(X^N)^-1 = 0x%x = %s\n", uint64(xnInv), xnInv)

	prod := xn.MulWide(xnInv)
	fmt.Printf("X^N * (X^N)^-1 = %s = %s\n", hexString(prod), prod)

	fmt.Printf("\n*** Computing euclidean division ***\n")
	d := g.Deg()
	rem := prod
	var quot gf2.Poly64
	for rem.Deg() >= d {
		s := uint(rem.Deg() - d)
		quot |= 1 << s
		rem = rem.Plus(gf2.NewPoly128(0, g).Lsh(s))
		fmt.Printf("X^N * (X^N)^-1 + (%s)*G = %s = %s\n", quot, hexString(rem), rem)
	}
	fmt.Printf("*** Done ***\n\n")

	fmt.Printf("Q = 0x%x = %s\n", uint64(quot), quot)
	check := quot.MulWide(g)
	fmt.Printf("Q * G = %s = %s\n", hexString(check), check)
	return nil
}

func main() {
	name := os.Args[0]
	if len(os.Args) < 2 {
		printUsageAndExit(name)
	}

	cmd := os.Args[1]
	switch strings.ToLower(cmd) {
	case "d":
		fallthrough
	case "derive":
		reversed := uint64(crcconst.IEEE)
		if len(os.Args) > 2 {
			arg := strings.TrimPrefix(os.Args[2], "0x")
			var err error
			reversed, err = strconv.ParseUint(arg, 16, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid generator %q: %s\n", os.Args[2], err)
				os.Exit(-1)
			}
		}

		if err := derive(uint32(reversed)); err != nil {
			fmt.Fprintf(os.Stderr, "Derivation error: %s\n", err)
			os.Exit(-1)
		}

	default:
		printUsageAndExit(name)
	}
}
