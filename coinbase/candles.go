// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

// CandleGranularity names a candle bucket width on the wire.
type CandleGranularity string

const (
	OneHourCandle CandleGranularity = "ONE_HOUR"
	TwoHourCandle CandleGranularity = "TWO_HOUR"
	SixHourCandle CandleGranularity = "SIX_HOUR"
	OneDayCandle  CandleGranularity = "ONE_DAY"
)

// GranularityFromHours maps a bucket width in hours to the wire value.
// Only 1, 2, 6 and 24 hour buckets are supported.
func GranularityFromHours(hours int) (CandleGranularity, bool) {
	switch hours {
	case 1:
		return OneHourCandle, true
	case 2:
		return TwoHourCandle, true
	case 6:
		return SixHourCandle, true
	case 24:
		return OneDayCandle, true
	}
	return "", false
}
