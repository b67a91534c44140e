package fp

import (
	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
)

// segmentExpMin and segmentExpMax bound the unbiased exponents that
// have a well-defined normal-range Segment (spec §2 item 6, §3).
const (
	segmentExpMin = -1022
	segmentExpMax = 1023
)

// Segment describes the binary floats sharing one unbiased exponent e:
// they span [Min, Max] with a constant gap of Distance between
// neighbours (spec §3, §4.6).
type Segment struct {
	UnbiasedExp int
	Min         *decimal.Decimal
	Max         *decimal.Decimal
	Distance    *decimal.Decimal
}

// SegmentFromExponent computes the closed-form Segment for e (spec §3):
//
//	Min      = 2**e
//	Max      = 2**(e+1) * (1 - 2**-53)
//	Distance = 2**(e-52)
func SegmentFromExponent(ctx *context.Context, e int) (*Segment, error) {
	if e < segmentExpMin || e > segmentExpMax {
		return nil, &OutOfRangeError{Param: "e", Value: e, Min: segmentExpMin, Max: segmentExpMax}
	}

	min := pow2(ctx, e)
	factor := ctx.Sub(new(decimal.Decimal), ctx.NewInt64(1), pow2(ctx, -53))
	max := ctx.Mul(new(decimal.Decimal), pow2(ctx, e+1), factor)
	distance := pow2(ctx, e-52)

	return &Segment{UnbiasedExp: e, Min: min, Max: max, Distance: distance}, nil
}

// SegmentFromDouble decodes v and delegates to SegmentFromExponent with
// its unbiased exponent.
func SegmentFromDouble(ctx *context.Context, v float64) (*Segment, error) {
	bits, _ := Encode(v)
	d, err := Decode(bits)
	if err != nil {
		return nil, err
	}
	if err := CheckSpecial(d.Fraction, d.Exponent); err != nil {
		return nil, err
	}
	return SegmentFromExponent(ctx, d.UnbiasedExp)
}

// Segments returns the Segment for every unbiased exponent in
// [start, end) (spec §4.6: "e ∈ [start, end−1]").
func Segments(ctx *context.Context, start, end int) ([]*Segment, error) {
	if end <= start {
		return nil, nil
	}
	segs := make([]*Segment, 0, end-start)
	for e := start; e < end; e++ {
		s, err := SegmentFromExponent(ctx, e)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, nil
}
