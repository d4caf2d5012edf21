// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"time"

	"coinbase-agent/coinbase"
)

// Exchange is the REST surface the trader needs from the exchange client.
// *coinbase.Client implements it; tests substitute a fake.
type Exchange interface {
	ListProducts(ctx context.Context) (*coinbase.ListProductsResponse, error)

	GetProduct(ctx context.Context, productID string) (*coinbase.GetProductResponse, error)

	GetCandles(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error)

	ListAccounts(ctx context.Context) (*coinbase.ListAccountsResponse, error)

	ListFilledOrders(ctx context.Context, productID string, limit int) (*coinbase.ListOrdersResponse, error)

	CreateOrder(ctx context.Context, request *coinbase.CreateOrderRequest) (*coinbase.CreateOrderResponse, error)
}

var _ Exchange = (*coinbase.Client)(nil)
