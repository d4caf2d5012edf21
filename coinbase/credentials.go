// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

import (
	"fmt"
	"os"
)

// Credentials holds the api key pair for the brokerage REST api. The secret
// is only ever used as the HMAC signing key; it must never appear in logs or
// request payloads.
type Credentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

func (v *Credentials) Check() error {
	if v == nil || len(v.Key) == 0 {
		return fmt.Errorf("api key must be non-empty: %w", os.ErrInvalid)
	}
	if len(v.Secret) == 0 {
		return fmt.Errorf("api signing secret must be non-empty: %w", os.ErrInvalid)
	}
	return nil
}
