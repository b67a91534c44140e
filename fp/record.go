package fp

import (
	"strconv"

	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
)

// FP is an immutable record bundling a float value, its bit string, the
// exact terminating decimal that bit pattern denotes, and its unbiased
// exponent (spec §3). Values are never mutated after construction;
// equality is structural across all four fields.
type FP struct {
	Value        float64
	Bits         string
	ExactDecimal *decimal.Decimal
	UnbiasedExp  int
}

// Equal reports whether fp and other are structurally equal: same
// value, same bit string, same unbiased exponent, and numerically equal
// exact decimals.
func (fp *FP) Equal(other *FP) bool {
	if fp == nil || other == nil {
		return fp == other
	}
	return fp.Value == other.Value &&
		fp.Bits == other.Bits &&
		fp.UnbiasedExp == other.UnbiasedExp &&
		fp.ExactDecimal.Cmp(other.ExactDecimal) == 0
}

// decimalToFloat64 converts a Decimal to the float64 it denotes under
// the platform's nearest-even string-to-double conversion
// (strconv.ParseFloat is Go's correctly-rounded, round-to-nearest-even
// conversion — this is "the host's nearest-even conversion" named
// throughout spec §4/§9).
func decimalToFloat64(dec *decimal.Decimal) (float64, error) {
	v, err := strconv.ParseFloat(dec.Text('f', -1), 64)
	if err != nil {
		return 0, &InvalidInputError{Context: "decimal to double conversion", Cause: err}
	}
	return v, nil
}

// FromDouble builds an FP from a finite double (spec §4.4): encode,
// decode, check for Infinity/NaN, and expand to the exact decimal.
func FromDouble(ctx *context.Context, v float64) (*FP, error) {
	bits, _ := Encode(v)
	d, err := Decode(bits)
	if err != nil {
		return nil, err
	}
	if err := CheckSpecial(d.Fraction, d.Exponent); err != nil {
		return nil, err
	}
	dec, err := Expand(ctx, d)
	if err != nil {
		return nil, err
	}
	return &FP{Value: v, Bits: bits, ExactDecimal: dec, UnbiasedExp: d.UnbiasedExp}, nil
}

// FromBinary builds an FP from a 64-character bit string (spec §4.4):
// decode, check for Infinity/NaN, expand to the exact decimal, and
// recover the double that decimal denotes under nearest-even
// conversion.
func FromBinary(ctx *context.Context, bits string) (*FP, error) {
	d, err := Decode(bits)
	if err != nil {
		return nil, err
	}
	if err := CheckSpecial(d.Fraction, d.Exponent); err != nil {
		return nil, err
	}
	dec, err := Expand(ctx, d)
	if err != nil {
		return nil, err
	}
	v, err := decimalToFloat64(dec)
	if err != nil {
		return nil, err
	}
	return &FP{Value: v, Bits: bits, ExactDecimal: dec, UnbiasedExp: d.UnbiasedExp}, nil
}

// FromDecimal builds an FP from an arbitrary-precision decimal (spec
// §4.4): first convert dec to a double under the platform's nearest-even
// conversion, then delegate to FromDouble.
func FromDecimal(ctx *context.Context, dec *decimal.Decimal) (*FP, error) {
	v, err := decimalToFloat64(dec)
	if err != nil {
		return nil, err
	}
	return FromDouble(ctx, v)
}

// Next returns the FP immediately above fp in ascending order (spec
// §4.2/§4.4). fp.Value must be non-negative; it fails with
// *OverflowError if stepping past fp would reach Infinity or NaN.
func (fp *FP) Next(ctx *context.Context) (*FP, error) {
	if fp.Value < 0 {
		return nil, &InvalidInputError{Context: "successor requires a non-negative seed"}
	}
	nextBits, err := NextBinaryBits(fp.Bits)
	if err != nil {
		return nil, err
	}
	return FromBinary(ctx, nextBits)
}

// SuccessorSeq is a lazy, restartable-per-seed, strictly ascending
// sequence of FP records (spec §3/§4.4/§9). Two concurrent consumers
// must each call NewSuccessorSeq with the same seed to get independent
// iterators; a SuccessorSeq itself is a single-consumer iterator.
type SuccessorSeq struct {
	ctx     *context.Context
	cur     *FP
	started bool
	err     error
}

// NewSuccessorSeq starts a new successor sequence at seed, which must
// have Value >= 0.
func NewSuccessorSeq(ctx *context.Context, seed *FP) (*SuccessorSeq, error) {
	if seed.Value < 0 {
		return nil, &InvalidInputError{Context: "successor sequence seed must have fp >= 0"}
	}
	return &SuccessorSeq{ctx: ctx, cur: seed}, nil
}

// Next returns the next FP in the sequence, starting with the seed
// itself on the first call. Once stepping would cross into
// Infinity/NaN, Next returns that *OverflowError and every subsequent
// call returns the same error.
func (s *SuccessorSeq) Next() (*FP, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.started {
		nxt, err := s.cur.Next(s.ctx)
		if err != nil {
			s.err = err
			s.cur = nil
			return nil, err
		}
		s.cur = nxt
	}
	s.started = true
	return s.cur, nil
}
