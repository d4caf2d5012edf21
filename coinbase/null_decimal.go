// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

import "github.com/shopspring/decimal"

// NullDecimal unmarshals decimal values that the exchange sometimes returns
// as empty strings.
type NullDecimal struct {
	Decimal decimal.Decimal
}

func (v *NullDecimal) UnmarshalJSON(raw []byte) error {
	if s := string(raw); s == "" || s == `""` || s == "null" {
		v.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return err
	}
	v.Decimal = d
	return nil
}

func (v NullDecimal) MarshalJSON() ([]byte, error) {
	return v.Decimal.MarshalJSON()
}

func (v NullDecimal) String() string {
	return v.Decimal.String()
}
