// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"coinbase-agent/coinbase"
)

func TestGetCandles(t *testing.T) {
	ctx := context.Background()

	var gotStart, gotEnd time.Time
	var gotGranularity coinbase.CandleGranularity
	ex := &fakeExchange{
		getCandles: func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
			gotStart, gotEnd, gotGranularity = start, end, granularity
			return &coinbase.GetCandlesResponse{
				Candles: []*coinbase.Candle{
					{
						Start: testTime.Unix(),
						Low:   testDecimal("26000.123"),
						High:  testDecimal("27123.456"),
						Close: testDecimal("26500.789"),
					},
				},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	cs, err := tr.GetCandles(ctx, &GetCandlesRequest{ProductID: "BTC-GBP"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 1 {
		t.Fatalf("got %d candles, want 1", len(cs))
	}

	c := cs[0]
	if want := "2023-11-14 22:13:20"; c.StartTime != want {
		t.Errorf("start time is %q, want %q", c.StartTime, want)
	}
	if c.Low != "26000" || c.High != "27120" {
		t.Errorf("candle low=%q high=%q, want 26000/27120", c.Low, c.High)
	}
	// Close is not part of the default field selection.
	if c.Close != "" {
		t.Errorf("close is %q, want empty", c.Close)
	}

	if want := testTime.Add(-3 * 24 * time.Hour); !gotStart.Equal(want) {
		t.Errorf("window start is %v, want %v", gotStart, want)
	}
	if !gotEnd.Equal(testTime) {
		t.Errorf("window end is %v, want %v", gotEnd, testTime)
	}
	if gotGranularity != coinbase.SixHourCandle {
		t.Errorf("granularity is %v, want %v", gotGranularity, coinbase.SixHourCandle)
	}
}

func TestGetCandlesFieldSelection(t *testing.T) {
	ctx := context.Background()

	ex := &fakeExchange{
		getCandles: func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
			return &coinbase.GetCandlesResponse{
				Candles: []*coinbase.Candle{
					{Start: testTime.Unix(), Low: testDecimal("1"), High: testDecimal("2"), Close: testDecimal("1.5")},
				},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	cs, err := tr.GetCandles(ctx, &GetCandlesRequest{
		ProductID: "BTC-GBP",
		Fields:    CandleFields{Close: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	c := cs[0]
	if c.Close != "1.5" || c.Low != "" || c.High != "" {
		t.Errorf("candle low=%q high=%q close=%q, want close only", c.Low, c.High, c.Close)
	}
}

func TestGetCandlesValidation(t *testing.T) {
	ctx := context.Background()

	tests := []*GetCandlesRequest{
		{ProductID: "BTCGBP"},
		{ProductID: "BTC-GBP", GranularityHours: 5},
		{ProductID: "BTC-GBP", LookBackDays: 3, DaysOffset: 3},
		{ProductID: "BTC-GBP", LookBackDays: 3, DaysOffset: -1},
	}
	for _, req := range tests {
		ex := new(fakeExchange)
		tr, _ := newTestTrader(ex, nil)

		if _, err := tr.GetCandles(ctx, req); !errors.Is(err, os.ErrInvalid) {
			t.Errorf("GetCandles(%+v) = %v, want an invalid argument error", req, err)
		}
		if ex.getCandlesCalls != 0 {
			t.Errorf("GetCandles(%+v) reached the exchange", req)
		}
	}
}

func TestGetEMA(t *testing.T) {
	ctx := context.Background()

	ex := &fakeExchange{
		getCandles: func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
			if granularity != coinbase.OneHourCandle {
				t.Errorf("granularity is %v, want %v", granularity, coinbase.OneHourCandle)
			}
			return &coinbase.GetCandlesResponse{
				Candles: []*coinbase.Candle{
					{Start: start.Unix(), Close: testDecimal("10")},
					{Start: start.Unix() + 3600, Close: testDecimal("20")},
					{Start: start.Unix() + 7200, Close: testDecimal("30")},
					{Start: start.Unix() + 10800, Close: testDecimal("40")},
				},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	// With alpha = 2/(3+1) = 0.5 the running average over 10, 20, 30, 40
	// is 10, 15, 22.5, 31.25.
	ema, err := tr.GetEMA(ctx, "BTC-GBP", 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"10", "15", "22.5", "31.25"}
	if len(ema) != len(want) {
		t.Fatalf("ema is %v, want %v", ema, want)
	}
	for i := range want {
		if ema[i] != want[i] {
			t.Fatalf("ema is %v, want %v", ema, want)
		}
	}
	if ex.getCandlesCalls != 1 {
		t.Fatalf("candles fetched %d times, want 1", ex.getCandlesCalls)
	}
}

func TestGetEMAWindows(t *testing.T) {
	ctx := context.Background()

	// Record the window of every fetch; windows must arrive oldest first
	// in ten day steps.
	var starts, ends []time.Duration
	ex := &fakeExchange{
		getCandles: func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
			starts = append(starts, testTime.Sub(start))
			ends = append(ends, testTime.Sub(end))
			return &coinbase.GetCandlesResponse{
				Candles: []*coinbase.Candle{{Start: start.Unix(), Close: testDecimal("100")}},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	if _, err := tr.GetEMA(ctx, "BTC-GBP", 15, 2); err != nil {
		t.Fatal(err)
	}
	const day = 24 * time.Hour
	wantStarts := []time.Duration{30 * day, 20 * day, 10 * day}
	wantEnds := []time.Duration{20 * day, 10 * day, 0}
	for i := range wantStarts {
		if starts[i] != wantStarts[i] || ends[i] != wantEnds[i] {
			t.Fatalf("fetch windows %v..%v, want %v..%v", starts, ends, wantStarts, wantEnds)
		}
	}
}

func TestGetEMAInsufficientData(t *testing.T) {
	ctx := context.Background()

	ex := &fakeExchange{
		getCandles: func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
			return &coinbase.GetCandlesResponse{
				Candles: []*coinbase.Candle{{Start: start.Unix(), Close: testDecimal("10")}},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	if _, err := tr.GetEMA(ctx, "BTC-GBP", 5, 24); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("GetEMA = %v, want %v", err, ErrInsufficientData)
	}
}

func TestGetEMAValidation(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTrader(new(fakeExchange), nil)

	if _, err := tr.GetEMA(ctx, "BTC-GBP", 3, 24); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("short look-back accepted: %v", err)
	}
	if _, err := tr.GetEMA(ctx, "BTC-GBP", 10, 0); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("zero period accepted: %v", err)
	}
	if _, err := tr.GetEMA(ctx, "btc-gbp", 10, 24); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("bad product id accepted: %v", err)
	}
}

func TestGetProductInfo(t *testing.T) {
	ctx := context.Background()

	ex := &fakeExchange{
		getProduct: func(ctx context.Context, productID string) (*coinbase.GetProductResponse, error) {
			return &coinbase.GetProductResponse{
				ProductID:                 productID,
				Price:                     testDecimal("26123.456789"),
				PricePercentageChange24h:  testDecimal("-1.23456"),
				Volume24h:                 testDecimal("987.654321"),
				VolumePercentageChange24h: testDecimal("0.123456"),
				QuoteMinSize:              testDecimal("1"),
				BaseMinSize:               testDecimal("0.000016"),
				ProductType:               "SPOT",
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	info, err := tr.GetProductInfo(ctx, "BTC-GBP")
	if err != nil {
		t.Fatal(err)
	}
	if info.ProductID != "BTC-GBP" {
		t.Errorf("product id is %q", info.ProductID)
	}
	if info.Price != "26120" {
		t.Errorf("price is %q, want 26120", info.Price)
	}
	if info.PricePercentageChange24h != "-1.235" {
		t.Errorf("price change is %q, want -1.235", info.PricePercentageChange24h)
	}
	if info.Volume24h != "987.7" {
		t.Errorf("volume is %q, want 987.7", info.Volume24h)
	}
	// Tiny values switch to exponent notation, matching %g formatting.
	if info.BaseMinSize != "1.6e-05" {
		t.Errorf("base min size is %q, want 1.6e-05", info.BaseMinSize)
	}
	// mid_market_price is often absent; it must stay an empty string, not
	// turn into a zero.
	if info.MidMarketPrice != "" {
		t.Errorf("mid market price is %q, want empty", info.MidMarketPrice)
	}
}

func TestGetProducts(t *testing.T) {
	ctx := context.Background()

	ex := &fakeExchange{
		listProducts: func(ctx context.Context) (*coinbase.ListProductsResponse, error) {
			return &coinbase.ListProductsResponse{
				Products: []*coinbase.Product{
					{ProductID: "BTC-GBP"},
					{ProductID: "ETH-USD"},
					{ProductID: "ETH-BTC"},
					{ProductID: "DOGE-GBP"},
				},
			}, nil
		},
	}
	tr, _ := newTestTrader(ex, nil)

	ids, err := tr.GetProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"BTC-GBP", "ETH-BTC", "DOGE-GBP"}
	if len(ids) != len(want) {
		t.Fatalf("products are %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("products are %v, want %v", ids, want)
		}
	}
}
