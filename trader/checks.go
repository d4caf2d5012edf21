// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"coinbase-agent/sigdigits"
)

// productIDRegexp matches base-quote trading pair names like "BTC-GBP" or
// "DOGE-USD".
var productIDRegexp = regexp.MustCompile(`^[A-Z]{3,4}-[A-Z]{3,4}$`)

// CheckProductID validates a trading pair name. Every entry point that
// accepts a product id goes through this before any network call.
func CheckProductID(productID string) error {
	if !productIDRegexp.MatchString(productID) {
		return fmt.Errorf("invalid product id %q (should have form \"<ticker1>-<ticker2>\"): %w", productID, os.ErrInvalid)
	}
	return nil
}

// CheckSide normalizes an order side to BUY or SELL. Case-insensitive input
// is accepted.
func CheckSide(side string) (string, error) {
	s := strings.ToUpper(side)
	if s != "BUY" && s != "SELL" {
		return "", fmt.Errorf("invalid side %q (should be one of [BUY, SELL]): %w", side, os.ErrInvalid)
	}
	return s, nil
}

// CheckSize validates an order size, which must be a string holding a
// non-negative decimal number.
func CheckSize(size string) error {
	if !sigdigits.IsUnsignedNumeric(size) {
		return fmt.Errorf("invalid size %q (should be a string representing a non-negative number): %w", size, os.ErrInvalid)
	}
	return nil
}
