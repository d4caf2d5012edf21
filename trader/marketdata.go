// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"coinbase-agent/coinbase"
	"coinbase-agent/sigdigits"
)

// CandleFields selects which price fields appear on the formatted candles.
// The zero value selects low and high.
type CandleFields struct {
	Low   bool
	High  bool
	Close bool
}

func (f CandleFields) isZero() bool {
	return !f.Low && !f.High && !f.Close
}

// Candle is a formatted view of one exchange candle. Price fields hold
// decimal strings rounded to the configured significant digits; unselected
// fields stay empty.
type Candle struct {
	StartTime string `json:"start_time"`
	Low       string `json:"low,omitempty"`
	High      string `json:"high,omitempty"`
	Close     string `json:"close,omitempty"`
}

type GetCandlesRequest struct {
	ProductID string

	// LookBackDays and DaysOffset fix the candle window to
	// [now-LookBackDays, now-DaysOffset].
	LookBackDays int
	DaysOffset   int

	// GranularityHours is the candle bucket width: 1, 2, 6 or 24.
	GranularityHours int

	Fields CandleFields
}

// GetCandles fetches and formats candles for one product. Every call is a
// fresh fetch; no pagination state is retained. Candles come back in the
// exchange's order, oldest first.
func (t *Trader) GetCandles(ctx context.Context, req *GetCandlesRequest) ([]*Candle, error) {
	if err := CheckProductID(req.ProductID); err != nil {
		return nil, err
	}
	lookBack := req.LookBackDays
	if lookBack == 0 {
		lookBack = t.opts.LookBackDays
	}
	hours := req.GranularityHours
	if hours == 0 {
		hours = t.opts.GranularityHours
	}
	granularity, ok := coinbase.GranularityFromHours(hours)
	if !ok {
		return nil, fmt.Errorf("invalid granularity %d hours (should be one of [1, 2, 6, 24]): %w", hours, os.ErrInvalid)
	}
	if req.DaysOffset < 0 || lookBack <= req.DaysOffset {
		return nil, fmt.Errorf("look-back days %d must be larger than days offset %d: %w", lookBack, req.DaysOffset, os.ErrInvalid)
	}
	fields := req.Fields
	if fields.isZero() {
		fields = CandleFields{Low: true, High: true}
	}

	now := t.timeNow()
	start := now.Add(-time.Duration(lookBack) * 24 * time.Hour)
	end := now.Add(-time.Duration(req.DaysOffset) * 24 * time.Hour)

	resp, err := t.ex.GetCandles(ctx, req.ProductID, start, end, granularity)
	if err != nil {
		return nil, err
	}

	var cs []*Candle
	for _, raw := range resp.Candles {
		c := &Candle{
			StartTime: time.Unix(raw.Start, 0).UTC().Format("2006-01-02 15:04:05"),
		}
		if fields.Low {
			c.Low = sigdigits.Round(raw.Low.String(), t.opts.SigDigits)
		}
		if fields.High {
			c.High = sigdigits.Round(raw.High.String(), t.opts.SigDigits)
		}
		if fields.Close {
			c.Close = sigdigits.Round(raw.Close.String(), t.opts.SigDigits)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// emaWindowDays is the length of each hourly candle window fetched for
// moving averages. Ten days of hourly candles stays under the exchange's
// per-request candle limit.
const emaWindowDays = 10

// GetEMA computes an exponential moving average over hourly closing prices.
// Closes are fetched in lookBackDays/5 successive ten-day windows and
// concatenated oldest to newest. The first average is seeded with the first
// price; each later value is price*alpha + previous*(1-alpha) with
// alpha = 2/(period+1). The returned sequence has one entry per closing
// price, rounded to the configured significant digits.
func (t *Trader) GetEMA(ctx context.Context, productID string, lookBackDays, emaPeriodHours int) ([]string, error) {
	if err := CheckProductID(productID); err != nil {
		return nil, err
	}
	if emaPeriodHours <= 0 {
		return nil, fmt.Errorf("invalid ema period %d hours: %w", emaPeriodHours, os.ErrInvalid)
	}
	windows := lookBackDays / 5
	if windows <= 0 {
		return nil, fmt.Errorf("look-back days %d too small for a moving average (min 5): %w", lookBackDays, os.ErrInvalid)
	}

	var prices []float64
	for i := windows; i >= 1; i-- {
		offset := (i - 1) * emaWindowDays
		cs, err := t.GetCandles(ctx, &GetCandlesRequest{
			ProductID:        productID,
			LookBackDays:     offset + emaWindowDays,
			DaysOffset:       offset,
			GranularityHours: 1,
			Fields:           CandleFields{Close: true},
		})
		if err != nil {
			return nil, err
		}
		for _, c := range cs {
			f, err := strconv.ParseFloat(c.Close, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse closing price %q: %w", c.Close, err)
			}
			prices = append(prices, f)
		}
	}

	if len(prices) < emaPeriodHours {
		return nil, fmt.Errorf("%d closing prices for a %d hour period: %w", len(prices), emaPeriodHours, ErrInsufficientData)
	}

	alpha := 2.0 / float64(emaPeriodHours+1)
	ema := make([]string, len(prices))
	prev := prices[0]
	ema[0] = sigdigits.RoundFloat(prev, t.opts.EMASigDigits)
	for i := 1; i < len(prices); i++ {
		prev = prices[i]*alpha + prev*(1-alpha)
		ema[i] = sigdigits.RoundFloat(prev, t.opts.EMASigDigits)
	}
	return ema, nil
}

// ProductInfo is the allow-listed subset of product metadata handed to the
// agent, with numeric fields rounded to the configured significant digits.
type ProductInfo struct {
	ProductID                 string `json:"product_id"`
	Price                     string `json:"price"`
	PricePercentageChange24h  string `json:"price_percentage_change_24h"`
	Volume24h                 string `json:"volume_24h"`
	VolumePercentageChange24h string `json:"volume_percentage_change_24h"`
	QuoteMinSize              string `json:"quote_min_size"`
	BaseMinSize               string `json:"base_min_size"`
	ProductType               string `json:"product_type"`
	MidMarketPrice            string `json:"mid_market_price,omitempty"`
}

// GetProductInfo fetches product metadata for one trading pair.
func (t *Trader) GetProductInfo(ctx context.Context, productID string) (*ProductInfo, error) {
	if err := CheckProductID(productID); err != nil {
		return nil, err
	}
	resp, err := t.ex.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	n := t.opts.SigDigits
	return &ProductInfo{
		ProductID:                 resp.ProductID,
		Price:                     sigdigits.Round(resp.Price.String(), n),
		PricePercentageChange24h:  sigdigits.Round(resp.PricePercentageChange24h.String(), n),
		Volume24h:                 sigdigits.Round(resp.Volume24h.String(), n),
		VolumePercentageChange24h: sigdigits.Round(resp.VolumePercentageChange24h.String(), n),
		QuoteMinSize:              sigdigits.Round(resp.QuoteMinSize.String(), n),
		BaseMinSize:               sigdigits.Round(resp.BaseMinSize.String(), n),
		ProductType:               resp.ProductType,
		MidMarketPrice:            sigdigits.Round(resp.MidMarketPrice, n),
	}, nil
}

// GetProducts lists the product ids available for trading, filtered to the
// configured quote suffixes.
func (t *Trader) GetProducts(ctx context.Context) ([]string, error) {
	resp, err := t.ex.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, p := range resp.Products {
		for _, suffix := range t.opts.ProductQuoteFilter {
			if strings.HasSuffix(p.ProductID, suffix) {
				ids = append(ids, p.ProductID)
				break
			}
		}
	}
	return ids, nil
}
