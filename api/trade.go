// Copyright (c) 2026 Coinbase Agent Authors

package api

const OrdersPath = "/trade/orders"

type OrdersRequest struct {
	// ProductID limits the listing to one trading pair; empty lists across
	// all pairs.
	ProductID string

	Limit int
}

type OrdersResponse struct {
	Error string

	// Orders holds one "<time> <SIDE> <size> <product> @ <price>" line per
	// filled order, most recent first.
	Orders []string
}

const WalletPath = "/trade/wallet"

type WalletRequest struct {
}

type WalletResponse struct {
	Error string

	// Balances holds one "<amount> <currency>" line per account.
	Balances []string
}

const CreateOrderPath = "/trade/create-order"

type CreateOrderRequest struct {
	// Side is BUY or SELL, case-insensitive.
	Side string

	ProductID string

	// Size is the quote currency amount for buys and the base currency
	// amount for sells.
	Size string
}

type CreateOrderResponse struct {
	Error string

	// Message is the human readable outcome, including the exchange's
	// order creation response on success.
	Message string
}

const NoOrderPath = "/trade/no-order"

type NoOrderRequest struct {
}

type NoOrderResponse struct {
	Error string

	Message string
}
