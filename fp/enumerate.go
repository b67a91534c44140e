package fp

import (
	"math/big"
	"strings"

	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
)

// canonicalDigits decomposes the absolute value of dec into its
// canonical (digits, exp) scientific form: dec == digits * 10**exp,
// with digits an exact, unsigned integer carrying no leading or
// trailing-zero ambiguity. dec must be finite and non-zero.
//
// MantExp gives mant and ex such that dec == mant * 10**ex with
// 0.1 <= |mant| < 1.0; MinPrec gives the number of significant digits
// mant actually carries. Scaling mant up by 10**decLen turns it into
// the exact integer digit sequence, and exp falls out as ex - decLen.
func canonicalDigits(ctx *context.Context, dec *decimal.Decimal) (digits *big.Int, exp int) {
	mant := new(decimal.Decimal)
	ex := dec.MantExp(mant)
	decLen := int(dec.MinPrec())
	if decLen == 0 {
		return big.NewInt(0), 0
	}

	scaled := ctx.Mul(new(decimal.Decimal), mant, pow10(ctx, decLen))
	digits = new(big.Int)
	scaled.Int(digits)
	digits.Abs(digits)
	return digits, ex - decLen
}

// candidateDecimal rebuilds the signed decimal value digits * 10**exp
// (sign applied separately so callers can probe negative and
// non-negative pre-images alike).
func candidateDecimal(ctx *context.Context, digits *big.Int, exp int, negative bool) *decimal.Decimal {
	v := ctx.NewInt(digits)
	if exp != 0 {
		v = ctx.Mul(new(decimal.Decimal), v, pow10(ctx, exp))
	}
	if negative {
		v = ctx.Neg(new(decimal.Decimal), v)
	}
	return v
}

// formatDDigit renders digits (known to carry exactly digitCount
// significant digits once zero-padded) as a decimal numeral with the
// point placed intDigits positions from the left, preserving trailing
// zeros — the canonical d-digit display form spec §4.5 calls for,
// which Decimal.Text would not give us since it trims trailing zeros.
func formatDDigit(negative bool, digits *big.Int, digitCount, intDigits int) string {
	s := digits.String()
	if len(s) < digitCount {
		s = strings.Repeat("0", digitCount-len(s)) + s
	}

	var body string
	switch {
	case intDigits <= 0:
		body = "0." + strings.Repeat("0", -intDigits) + s
	case intDigits >= len(s):
		body = s + strings.Repeat("0", intDigits-len(s))
	default:
		body = s[:intDigits] + "." + s[intDigits:]
	}

	if negative {
		return "-" + body
	}
	return body
}

// roundTripsTo reports whether digits * 10**exp (signed per negative)
// converts, under the host's nearest-even string-to-double conversion,
// to exactly target.
func roundTripsTo(ctx *context.Context, digits *big.Int, exp int, negative bool, target float64) bool {
	v := candidateDecimal(ctx, digits, exp, negative)
	f, err := decimalToFloat64(v)
	if err != nil {
		return false
	}
	return f == target
}

// GetDDigitDecimals enumerates every d-significant-digit decimal
// numeral that rounds, under the host's nearest-even conversion, to
// exactly f.Value (spec §4.5). It returns the count, the constant
// spacing between consecutive candidates, and the candidates
// themselves as canonical d-digit display strings in ascending order.
//
// d must be at least 1. f.ExactDecimal must be finite; GetDDigitDecimals
// does not itself reject subnormals or special values since FP records
// are only ever constructed from values that have already cleared
// those checks.
func GetDDigitDecimals(ctx *context.Context, f *FP, d int) (int, *decimal.Decimal, []string, error) {
	if d < 1 {
		return 0, nil, nil, &InvalidInputError{Context: "d must be at least 1"}
	}
	if f.ExactDecimal.IsInf() {
		return 0, nil, nil, &InvalidInputError{Context: "d-digit enumeration requires a finite exact decimal"}
	}

	negative := f.ExactDecimal.Signbit()

	digits, exp := canonicalDigits(ctx, f.ExactDecimal)
	decLen := len(digits.String())
	if digits.Sign() == 0 {
		decLen = 1
	}
	intDigits := decLen + exp // digits before the decimal point in the exact decimal's own display

	// For magnitudes in [0.1, 1) the leading zero is dropped from the
	// numeral's string form, so a d-significant-digit display only
	// carries d-1 digits after "0." (spec §4.5). At d == 1 this makes
	// dPrime == 0 and the walk collects nothing: there is no 1-digit
	// numeral "0.<nothing>" to find, even though e.g. 0.1 itself would
	// round to 0.1. This is the spec's literal rule, not an oversight.
	dPrime := d
	if intDigits == 0 {
		dPrime = d - 1
	}
	pointExp := exp + decLen - dPrime

	shift := dPrime - decLen
	lower := new(big.Int).Set(digits)
	if shift > 0 {
		lower.Mul(lower, pow10Int(shift))
	} else if shift < 0 {
		lower.Quo(lower, pow10Int(-shift))
	}

	var down, up []*big.Int

	cur := new(big.Int).Set(lower)
	for cur.Sign() >= 0 && roundTripsTo(ctx, cur, pointExp, negative, f.Value) {
		down = append(down, new(big.Int).Set(cur))
		cur.Sub(cur, big.NewInt(1))
	}

	cur = new(big.Int).Add(lower, big.NewInt(1))
	for roundTripsTo(ctx, cur, pointExp, negative, f.Value) {
		up = append(up, new(big.Int).Set(cur))
		cur.Add(cur, big.NewInt(1))
	}

	// down and up are both ordered by increasing magnitude (digit value),
	// which is ascending order for non-negative candidates but descending
	// for negative ones (a bigger digit string means a more negative
	// decimal). Assemble by magnitude first, then flip for negatives so
	// the returned list is always strictly ascending by value, per spec
	// §4.5/§8.
	numbers := make([]string, 0, len(down)+len(up))
	for i := len(down) - 1; i >= 0; i-- {
		numbers = append(numbers, formatDDigit(negative, down[i], dPrime, intDigits))
	}
	for _, c := range up {
		numbers = append(numbers, formatDDigit(negative, c, dPrime, intDigits))
	}
	if negative {
		for i, j := 0, len(numbers)-1; i < j; i, j = i+1, j-1 {
			numbers[i], numbers[j] = numbers[j], numbers[i]
		}
	}

	return len(numbers), pow10(ctx, pointExp), numbers, nil
}

// pow10Int is math/big's exact-integer counterpart to pow10, used for
// rescaling the digit string itself rather than a Decimal value.
func pow10Int(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
