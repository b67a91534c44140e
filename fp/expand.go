package fp

import (
	"fmt"

	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
)

const hexDigits = "0123456789abcdef"

// nibble packs 4 consecutive bits (most significant first) into a
// single 0-15 value.
func nibble(bits []byte) byte {
	var v byte
	for _, b := range bits {
		v = v<<1 | b
	}
	return v
}

// hexFraction renders the 52 fraction bits as 13 hex digits, matching
// the precision of a float64's hexadecimal floating-point notation
// (strconv.FormatFloat's 'x' verb, or C's %a).
func hexFraction(fraction [fractionBits]byte) string {
	buf := make([]byte, fractionBits/4)
	for i := range buf {
		buf[i] = hexDigits[nibble(fraction[4*i:4*i+4])]
	}
	return string(buf)
}

// Expand computes the mathematically exact terminating decimal that a
// decoded bit pattern denotes (spec §4.3):
//
//	value = sign * (1 + sum f_i * 2**-i) * 2**e
//
// for normal patterns, and exactly 0 for the all-zero pattern. It
// rejects genuine subnormals (exponent field all-zero with a non-zero
// fraction) with *InvalidInputError, per spec §1's non-goals. The
// result is exact while it fits in ctx's precision (see
// decimalPrecision); longer expansions are rounded to that precision.
//
// The expansion is performed by assembling the decoded fields into
// Go's hexadecimal floating-point notation (sign, implicit leading 1,
// fraction as 13 hex nibbles, "p"-exponent) and parsing that string
// with ctx — db47h/decimal's Parse already implements exactly this
// notation (its own doc comment uses "0x1.fffffffffffffp1023" as a
// worked example), so this is the documented entry point for an exact
// binary-to-decimal conversion, not a workaround.
func Expand(ctx *context.Context, d Decoded) (*decimal.Decimal, error) {
	if d.isZero() {
		return ctx.New(), nil
	}
	if d.isSubnormal() {
		return nil, &InvalidInputError{Context: "subnormal bit patterns are out of scope"}
	}

	hexStr := fmt.Sprintf("0x1.%sp%+d", hexFraction(d.Fraction), d.UnbiasedExp)
	if d.Sign < 0 {
		hexStr = "-" + hexStr
	}

	val, _, err := ctx.ParseDecimal(hexStr, 0)
	if err != nil {
		return nil, &InvalidInputError{Context: "exact decimal expansion", Cause: err}
	}
	return val, nil
}
