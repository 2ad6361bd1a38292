package core

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an arbitrary-precision decimal used for prices, amounts and
// balances. On the wire it is a bare JSON number, matching what the venue
// emits; during decoding a quoted number is accepted as well.
type Decimal struct {
	apd.Decimal
}

// NewDecimal parses a decimal from its string representation.
func NewDecimal(s string) (Decimal, error) {
	var d Decimal
	if _, _, err := d.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// MustDecimal parses a decimal and panics on malformed input. Intended for
// constants and tests.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFromInt64 returns a Decimal holding the given integer value.
func DecimalFromInt64(v int64) Decimal {
	var d Decimal
	d.SetInt64(v)
	return d
}

// IsZero returns true when the decimal has the value zero.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsPositive returns true when the decimal is strictly greater than zero.
func (d Decimal) IsPositive() bool {
	return d.Sign() > 0
}

// MarshalJSON implements json.Marshaler, emitting a bare number.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Text('f')), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both bare and quoted numbers
// are accepted.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.SetInt64(0)
		return nil
	}
	if _, _, err := d.SetString(string(data)); err != nil {
		return fmt.Errorf("parse decimal %q: %w", data, err)
	}
	return nil
}
