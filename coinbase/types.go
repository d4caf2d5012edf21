// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

type Product struct {
	ProductID  string `json:"product_id"`
	Status     string `json:"status"`
	IsDisabled bool   `json:"is_disabled"`

	Price     NullDecimal `json:"price"`
	BaseName  string      `json:"base_name"`
	QuoteName string      `json:"quote_name"`
}

type ListProductsResponse struct {
	NumProducts int32      `json:"num_products"`
	Products    []*Product `json:"products"`
}

type GetProductResponse struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"`

	Price                    NullDecimal `json:"price"`
	PricePercentageChange24h NullDecimal `json:"price_percentage_change_24h"`

	Volume24h                 NullDecimal `json:"volume_24h"`
	VolumePercentageChange24h NullDecimal `json:"volume_percentage_change_24h"`

	QuoteMinSize NullDecimal `json:"quote_min_size"`
	BaseMinSize  NullDecimal `json:"base_min_size"`

	ProductType    string `json:"product_type"`
	MidMarketPrice string `json:"mid_market_price"`
}

type Candle struct {
	Start  int64       `json:"start,string"`
	Low    NullDecimal `json:"low"`
	High   NullDecimal `json:"high"`
	Open   NullDecimal `json:"open"`
	Close  NullDecimal `json:"close"`
	Volume NullDecimal `json:"volume"`
}

type GetCandlesResponse struct {
	Candles []*Candle `json:"candles"`
}

type Balance struct {
	Value    NullDecimal `json:"value"`
	Currency string      `json:"currency"`
}

type Account struct {
	UUID             string  `json:"uuid"`
	Name             string  `json:"name"`
	Currency         string  `json:"currency"`
	AvailableBalance Balance `json:"available_balance"`
}

type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts"`
	HasNext  bool       `json:"has_next"`
	Cursor   string     `json:"cursor"`
}

type Order struct {
	OrderID       string `json:"order_id"`
	ClientOrderID string `json:"client_order_id"`

	ProductID string `json:"product_id"`

	// Possible values: [BUY, SELL]
	Side string `json:"side"`

	// Possible values: [OPEN, FILLED, CANCELLED, EXPIRED, FAILED,
	// UNKNOWN_ORDER_STATUS]
	Status string `json:"status"`

	CreatedTime RemoteTime `json:"created_time"`

	FilledSize     NullDecimal `json:"filled_size"`
	AvgFilledPrice NullDecimal `json:"average_filled_price"`
}

type ListOrdersResponse struct {
	Orders  []*Order `json:"orders"`
	Cursor  string   `json:"cursor"`
	HasNext bool     `json:"has_next"`
}

// MarketMarketIOC carries a market immediate-or-cancel order size. Exactly
// one of the two sizes is set: quote currency for buys and base currency for
// sells.
type MarketMarketIOC struct {
	QuoteSize string `json:"quote_size,omitempty"`
	BaseSize  string `json:"base_size,omitempty"`
}

type OrderConfig struct {
	MarketIOC *MarketMarketIOC `json:"market_market_ioc"`
}

type CreateOrderRequest struct {
	ClientOrderID string       `json:"client_order_id"`
	ProductID     string       `json:"product_id"`
	Side          string       `json:"side"`
	Order         *OrderConfig `json:"order_configuration"`
}

type CreateOrderResponse struct {
	Success         bool                        `json:"success"`
	SuccessResponse *CreateOrderSuccessResponse `json:"success_response"`

	OrderID     string       `json:"order_id"`
	OrderConfig *OrderConfig `json:"order_configuration"`

	FailureReason string                    `json:"failure_reason"`
	ErrorResponse *CreateOrderErrorResponse `json:"error_response"`
}

type CreateOrderSuccessResponse struct {
	OrderID       string `json:"order_id"`
	ProductID     string `json:"product_id"`
	Side          string `json:"side"`
	ClientOrderID string `json:"client_order_id"`
}

type CreateOrderErrorResponse struct {
	Error                 string `json:"error"`
	Message               string `json:"message"`
	ErrorDetail           string `json:"error_details"`
	PreviewFailureReason  string `json:"preview_failure_reason"`
	NewOrderFailureReason string `json:"new_order_failure_reason"`
}
