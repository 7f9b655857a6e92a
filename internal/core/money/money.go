// Package money converts budgets between the platform's minor currency
// units and the major units stored locally.
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorExponent is the number of minor units per major unit as a power of
// ten. The platform reports cents for every supported currency.
const MinorExponent = 2

var (
	ErrNegative  = errors.New("budget must not be negative")
	ErrPrecision = errors.New("budget has more precision than the currency allows")
)

// FromMinor parses a raw platform budget in minor units. The value may be a
// JSON number or a numeric string. A missing or null value yields an
// invalid NullDecimal and no error.
func FromMinor(raw json.RawMessage) (decimal.NullDecimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.NullDecimal{}, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("budget %s: %w", raw, err)
		}
		if text == "" {
			return decimal.NullDecimal{}, nil
		}
	}

	minor, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("budget %s: %w", raw, err)
	}
	if minor.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("budget %s: %w", raw, ErrNegative)
	}
	return decimal.NewNullDecimal(minor.Shift(-MinorExponent)), nil
}

// ToMinor converts a major unit budget to the integer minor units the
// platform expects. An invalid NullDecimal yields nil.
func ToMinor(d decimal.NullDecimal) (*int64, error) {
	if !d.Valid {
		return nil, nil
	}
	if d.Decimal.IsNegative() {
		return nil, ErrNegative
	}
	minor := d.Decimal.Shift(MinorExponent)
	if !minor.Equal(minor.Truncate(0)) {
		return nil, ErrPrecision
	}
	v := minor.IntPart()
	return &v, nil
}
