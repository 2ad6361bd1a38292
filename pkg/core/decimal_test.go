package core

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_MarshalBareNumber(t *testing.T) {
	d := MustDecimal("1.0950")

	data, err := sonic.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "1.0950", string(data))
}

func TestDecimal_UnmarshalNumberAndString(t *testing.T) {
	var fromNumber, fromString Decimal

	require.NoError(t, sonic.Unmarshal([]byte(`1.0950`), &fromNumber))
	require.NoError(t, sonic.Unmarshal([]byte(`"1.0950"`), &fromString))

	assert.Zero(t, fromNumber.Cmp(&fromString.Decimal))
}

func TestDecimal_UnmarshalNull(t *testing.T) {
	var d Decimal
	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.True(t, d.IsZero())
}

func TestDecimal_UnmarshalGarbage(t *testing.T) {
	var d Decimal
	assert.Error(t, d.UnmarshalJSON([]byte(`"not a number"`)))
}

func TestDecimal_Predicates(t *testing.T) {
	assert.True(t, MustDecimal("0").IsZero())
	assert.True(t, MustDecimal("0.0001").IsPositive())
	assert.False(t, MustDecimal("-1").IsPositive())
}

func TestDecimal_RoundTripKeepsScale(t *testing.T) {
	// The venue distinguishes 5 from 5.00 in display precision; parsing
	// must not normalize the scale away.
	d := MustDecimal("5.00")

	data, err := sonic.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "5.00", string(data))
}

func TestNewDecimal_Invalid(t *testing.T) {
	_, err := NewDecimal("1.2.3")
	assert.Error(t, err)
}

func TestDecimalFromInt64(t *testing.T) {
	d := DecimalFromInt64(1000)
	want := MustDecimal("1000")
	assert.Zero(t, d.Cmp(&want.Decimal))
}
