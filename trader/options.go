// Copyright (c) 2026 Coinbase Agent Authors

package trader

import "time"

type Options struct {
	// SigDigits is the number of significant digits kept on candle, order
	// and balance values handed to the agent.
	SigDigits int

	// EMASigDigits is the number of significant digits kept on moving
	// average values.
	EMASigDigits int

	// CooldownInterval is the mandatory pause after every successful order.
	// The executor blocks for this long before refreshing state; it is a
	// deliberate throttle on trading frequency, not a timeout.
	CooldownInterval time.Duration

	// NoOrderInterval is the pause taken by the explicit "no trade" action.
	NoOrderInterval time.Duration

	// LookBackDays is the default candle window length.
	LookBackDays int

	// GranularityHours is the default candle bucket width.
	GranularityHours int

	// FilledOrdersLimit is the default number of recent filled orders
	// fetched for the trade history snapshot.
	FilledOrdersLimit int

	// WatchProductIDs lists the products whose price history is cached and
	// refreshed after every trade.
	WatchProductIDs []string

	// ProductQuoteFilter keeps only products whose id ends with one of
	// these suffixes in the products listing.
	ProductQuoteFilter []string
}

func (v *Options) setDefaults() {
	if v.SigDigits == 0 {
		v.SigDigits = 4
	}
	if v.EMASigDigits == 0 {
		v.EMASigDigits = 5
	}
	if v.CooldownInterval == 0 {
		v.CooldownInterval = time.Hour
	}
	if v.NoOrderInterval == 0 {
		v.NoOrderInterval = 10 * time.Minute
	}
	if v.LookBackDays == 0 {
		v.LookBackDays = 3
	}
	if v.GranularityHours == 0 {
		v.GranularityHours = 6
	}
	if v.FilledOrdersLimit == 0 {
		v.FilledOrdersLimit = 10
	}
	if len(v.WatchProductIDs) == 0 {
		v.WatchProductIDs = []string{"BTC-GBP", "ETH-GBP"}
	}
	if len(v.ProductQuoteFilter) == 0 {
		v.ProductQuoteFilter = []string{"GBP", "BTC"}
	}
}
