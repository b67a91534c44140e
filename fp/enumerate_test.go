package fp

import (
	"strconv"
	"testing"

	"github.com/db47h/decimal"
	"github.com/db47h/decimal/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete scenario 5.
func TestGetDDigitDecimalsScenario5(t *testing.T) {
	ctx := NewContext()
	rec, err := FromDouble(ctx, 0.1)
	require.NoError(t, err)

	count, distance, numbers, err := GetDDigitDecimals(ctx, rec, 18)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, "0.00000000000000001", distance.Text('f', -1))
	assert.Equal(t, []string{"0.10000000000000000", "0.10000000000000001"}, numbers)
}

// Concrete scenario 6.
func TestGetDDigitDecimalsScenario6(t *testing.T) {
	ctx := NewContext()
	rec, err := FromDouble(ctx, 72057594037927945)
	require.NoError(t, err)

	count, distance, numbers, err := GetDDigitDecimals(ctx, rec, 17)
	require.NoError(t, err)
	require.Equal(t, 15, count)
	assert.Equal(t, "1", distance.Text('f', -1))

	want := make([]string, 15)
	for i := range want {
		want[i] = strconv.FormatInt(72057594037927945+int64(i), 10)
	}
	assert.Equal(t, want, numbers)

	count16, distance16, numbers16, err := GetDDigitDecimals(ctx, rec, 16)
	require.NoError(t, err)
	assert.Equal(t, 1, count16)
	assert.Equal(t, "10", distance16.Text('f', -1))
	assert.Equal(t, []string{"72057594037927950"}, numbers16)
}

// assertAscendingWithSpacing checks the §8 "strictly ascending" and
// "consecutive elements differ by exactly distance" invariants hold
// for numbers against rec, independent of rec's sign.
func assertAscendingWithSpacing(t *testing.T, ctx *context.Context, rec *FP, distance *decimal.Decimal, numbers []string) {
	t.Helper()
	require.NotEmpty(t, numbers)

	var prev *decimal.Decimal
	for _, s := range numbers {
		dec, _, err := ctx.ParseDecimal(s, 10)
		require.NoError(t, err)
		v, err := decimalToFloat64(dec)
		require.NoError(t, err)
		assert.Equal(t, rec.Value, v)

		if prev != nil {
			assert.True(t, dec.Cmp(prev) > 0, "numbers must be strictly ascending, got %s after %s", s, prev.Text('f', -1))
			gap := ctx.Sub(ctx.New(), dec, prev)
			assert.Equal(t, 0, gap.Cmp(distance))
		}
		prev = dec
	}
}

func TestGetDDigitDecimalsSoundness(t *testing.T) {
	ctx := NewContext()
	rec, err := FromDouble(ctx, 1.2)
	require.NoError(t, err)

	_, distance, numbers, err := GetDDigitDecimals(ctx, rec, 20)
	require.NoError(t, err)
	assertAscendingWithSpacing(t, ctx, rec, distance, numbers)
}

// Negative mirror of scenario 5: -0.1 has the same pre-images as 0.1,
// sign-flipped, and the returned list must still be ascending.
func TestGetDDigitDecimalsNegativeValue(t *testing.T) {
	ctx := NewContext()
	rec, err := FromDouble(ctx, -0.1)
	require.NoError(t, err)

	count, distance, numbers, err := GetDDigitDecimals(ctx, rec, 18)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"-0.10000000000000001", "-0.10000000000000000"}, numbers)
	assertAscendingWithSpacing(t, ctx, rec, distance, numbers)
}

// Negative mirror of scenario 6, with enough candidates either side of
// lower to make a reversed-order bug obvious.
func TestGetDDigitDecimalsNegativeValueWideRange(t *testing.T) {
	ctx := NewContext()
	rec, err := FromDouble(ctx, -72057594037927945)
	require.NoError(t, err)

	count, distance, numbers, err := GetDDigitDecimals(ctx, rec, 17)
	require.NoError(t, err)
	require.Equal(t, 15, count)

	want := make([]string, 15)
	for i := range want {
		want[i] = strconv.FormatInt(-(72057594037927959-int64(i)), 10)
	}
	assert.Equal(t, want, numbers)
	assertAscendingWithSpacing(t, ctx, rec, distance, numbers)
}

func TestGetDDigitDecimalsRejectsNonFinite(t *testing.T) {
	ctx := NewContext()
	inf := ctx.New()
	inf.SetInf(false)
	rec := &FP{Value: 0, Bits: "", ExactDecimal: inf}

	_, _, _, err := GetDDigitDecimals(ctx, rec, 10)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
