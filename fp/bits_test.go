package fp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 1.2, 0.1, 3.14159265358979, 72057594037927945}
	for _, v := range values {
		bits, _ := Encode(v)
		d, err := Decode(bits)
		require.NoError(t, err)
		assert.Len(t, bits, 64)
		if v < 0 {
			assert.Equal(t, -1, d.Sign)
		} else {
			assert.Equal(t, 1, d.Sign)
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Decode("0011")
	require.Error(t, err)
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = Decode("2" + strings.Repeat("0", 63))
	require.Error(t, err)
}

func TestDecodeZero(t *testing.T) {
	bits, _ := Encode(0)
	d, err := Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Sign)
	assert.Equal(t, -exponentBias, d.UnbiasedExp)
	assert.True(t, d.isZero())
}

func TestCheckSpecialInfinity(t *testing.T) {
	bits := "1111111111110000000000000000000000000000000000000000000000000000"
	d, err := Decode(bits)
	require.NoError(t, err)
	err = CheckSpecial(d.Fraction, d.Exponent)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "Infinity", overflow.Kind)
}

func TestCheckSpecialNaN(t *testing.T) {
	bits := "1111111111110011001100110011001100110011001100110011001100110011"
	d, err := Decode(bits)
	require.NoError(t, err)
	err = CheckSpecial(d.Fraction, d.Exponent)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "NaN", overflow.Kind)
}
