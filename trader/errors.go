// Copyright (c) 2026 Coinbase Agent Authors

package trader

import "errors"

// ErrInsufficientData is returned when a moving average is requested over
// fewer data points than the averaging period.
var ErrInsufficientData = errors.New("not enough data points for the requested period")
