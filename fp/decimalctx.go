package fp

import (
	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
)

// decimalPrecision is the fixed working precision (in decimal digits)
// used for every exact-decimal computation in this package (spec §4.3,
// §9). It holds the exact terminating decimal of every normal double
// with an unbiased exponent of -497 or more; for smaller exponents the
// exact expansion can need up to 767 significant digits, and results
// are rounded to 400.
const decimalPrecision = 400

// NewContext returns a fresh arbitrary-precision decimal context
// configured with this package's fixed precision and half-up
// ("ToNearestAway") rounding mode (spec §4.3, §9's "process-wide
// arithmetic context" design note, resolved here as an explicit
// parameter rather than package-global state).
//
// Every exported fp function that needs decimal arithmetic takes a
// *context.Context explicitly; callers may share one context across
// calls from a single goroutine, or construct one per call — contexts
// are cheap and hold no resources beyond precision/rounding-mode state.
func NewContext() *context.Context {
	return context.New(decimalPrecision, decimal.ToNearestAway)
}

// pow2 returns a Decimal for 2**n for any integer n (n may be
// negative), computed by square-and-multiply. This mirrors
// db47h/decimal's own private (*Decimal).pow2 helper, which the
// library uses internally to support its hex-float Parse syntax.
func pow2(ctx *context.Context, n int) *decimal.Decimal {
	neg := n < 0
	if neg {
		n = -n
	}

	result := ctx.NewInt64(1)
	base := ctx.NewInt64(2)
	for n > 0 {
		if n&1 == 1 {
			result = ctx.Mul(new(decimal.Decimal), result, base)
		}
		n >>= 1
		if n > 0 {
			base = ctx.Mul(new(decimal.Decimal), base, base)
		}
	}

	if neg {
		one := ctx.NewInt64(1)
		result = ctx.Quo(new(decimal.Decimal), one, result)
	}
	return result
}

// pow10 returns a Decimal for 10**n for any integer n (n may be
// negative), computed by square-and-multiply. Used by the d-digit
// enumerator to rescale a pre-image's digit string to its true
// magnitude (spec §4.5).
func pow10(ctx *context.Context, n int) *decimal.Decimal {
	neg := n < 0
	if neg {
		n = -n
	}

	result := ctx.NewInt64(1)
	base := ctx.NewInt64(10)
	for n > 0 {
		if n&1 == 1 {
			result = ctx.Mul(new(decimal.Decimal), result, base)
		}
		n >>= 1
		if n > 0 {
			base = ctx.Mul(new(decimal.Decimal), base, base)
		}
	}

	if neg {
		one := ctx.NewInt64(1)
		result = ctx.Quo(new(decimal.Decimal), one, result)
	}
	return result
}
