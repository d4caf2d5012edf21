// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"coinbase-agent/coinbase"
)

// fakeExchange implements Exchange with overridable handlers. Nil handlers
// return empty responses. Call counts are recorded for every method.
type fakeExchange struct {
	listProducts     func(ctx context.Context) (*coinbase.ListProductsResponse, error)
	getProduct       func(ctx context.Context, productID string) (*coinbase.GetProductResponse, error)
	getCandles       func(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error)
	listAccounts     func(ctx context.Context) (*coinbase.ListAccountsResponse, error)
	listFilledOrders func(ctx context.Context, productID string, limit int) (*coinbase.ListOrdersResponse, error)
	createOrder      func(ctx context.Context, req *coinbase.CreateOrderRequest) (*coinbase.CreateOrderResponse, error)

	listProductsCalls     int
	getProductCalls       int
	getCandlesCalls       int
	listAccountsCalls     int
	listFilledOrdersCalls int
	createOrderCalls      int
}

func (f *fakeExchange) ListProducts(ctx context.Context) (*coinbase.ListProductsResponse, error) {
	f.listProductsCalls++
	if f.listProducts == nil {
		return new(coinbase.ListProductsResponse), nil
	}
	return f.listProducts(ctx)
}

func (f *fakeExchange) GetProduct(ctx context.Context, productID string) (*coinbase.GetProductResponse, error) {
	f.getProductCalls++
	if f.getProduct == nil {
		return new(coinbase.GetProductResponse), nil
	}
	return f.getProduct(ctx, productID)
}

func (f *fakeExchange) GetCandles(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
	f.getCandlesCalls++
	if f.getCandles == nil {
		return new(coinbase.GetCandlesResponse), nil
	}
	return f.getCandles(ctx, productID, start, end, granularity)
}

func (f *fakeExchange) ListAccounts(ctx context.Context) (*coinbase.ListAccountsResponse, error) {
	f.listAccountsCalls++
	if f.listAccounts == nil {
		return new(coinbase.ListAccountsResponse), nil
	}
	return f.listAccounts(ctx)
}

func (f *fakeExchange) ListFilledOrders(ctx context.Context, productID string, limit int) (*coinbase.ListOrdersResponse, error) {
	f.listFilledOrdersCalls++
	if f.listFilledOrders == nil {
		return new(coinbase.ListOrdersResponse), nil
	}
	return f.listFilledOrders(ctx, productID, limit)
}

func (f *fakeExchange) CreateOrder(ctx context.Context, req *coinbase.CreateOrderRequest) (*coinbase.CreateOrderResponse, error) {
	f.createOrderCalls++
	if f.createOrder == nil {
		return &coinbase.CreateOrderResponse{Success: true}, nil
	}
	return f.createOrder(ctx, req)
}

var testTime = time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

// newTestTrader builds a trader on the fake with a fixed clock and a sleep
// that only records its durations.
func newTestTrader(ex *fakeExchange, opts *Options) (*Trader, *[]time.Duration) {
	if opts == nil {
		opts = &Options{WatchProductIDs: []string{"BTC-GBP"}}
	}
	t := New(ex, opts)
	t.timeNow = func() time.Time { return testTime }
	slept := new([]time.Duration)
	t.sleep = func(ctx context.Context, d time.Duration) {
		*slept = append(*slept, d)
	}
	return t, slept
}

func testDecimal(s string) coinbase.NullDecimal {
	return coinbase.NullDecimal{Decimal: decimal.RequireFromString(s)}
}
