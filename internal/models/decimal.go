package models

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits of the wallet currency unit.
const MoneyScale int32 = 2

// Decimal is a money amount in responses. It is encoded as a bare JSON number
// with exactly MoneyScale fractional digits, 10 is written as 10.00.
type Decimal struct {
	decimal.Decimal
}

// NewMoney rounds d half away from zero to the currency scale.
func NewMoney(d decimal.Decimal) Decimal {
	return Decimal{d.Round(MoneyScale)}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.StringFixed(MoneyScale)), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	parsed, err := decimal.NewFromString(string(raw))
	if err != nil {
		return fmt.Errorf("invalid money amount %s: %w", data, err)
	}

	*d = NewMoney(parsed)
	return nil
}
