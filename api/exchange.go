// Copyright (c) 2026 Coinbase Agent Authors

// Package api defines the request and response types of the local http
// endpoints. Responses carry errors in an Error field so that callers on the
// other side of the wire always get a decodable body.
package api

const GetProductPath = "/exchange/get-product"

type GetProductRequest struct {
	ProductID string
}

type GetProductResponse struct {
	Error string

	ProductID                 string
	Price                     string
	PricePercentageChange24h  string
	Volume24h                 string
	VolumePercentageChange24h string
	QuoteMinSize              string
	BaseMinSize               string
	ProductType               string
	MidMarketPrice            string
}

const GetProductsPath = "/exchange/get-products"

type GetProductsRequest struct {
}

type GetProductsResponse struct {
	Error string

	ProductIDs []string
}

const GetCandlesPath = "/exchange/get-candles"

type GetCandlesRequest struct {
	ProductID string

	// LookBackDays and DaysOffset select the window
	// [now-LookBackDays, now-DaysOffset]. Zero values take the server's
	// defaults.
	LookBackDays int
	DaysOffset   int

	// GranularityHours is 1, 2, 6 or 24. Zero takes the server's default.
	GranularityHours int

	// Fields selects which candle prices to include, e.g. ["low", "high"].
	// Empty selects low and high.
	Fields []string
}

type Candle struct {
	StartTime string
	Low       string `json:",omitempty"`
	High      string `json:",omitempty"`
	Close     string `json:",omitempty"`
}

type GetCandlesResponse struct {
	Error string

	Candles []*Candle
}

const GetEMAPath = "/exchange/get-ema"

type GetEMARequest struct {
	ProductID string

	LookBackDays int

	PeriodHours int
}

type GetEMAResponse struct {
	Error string

	// EMA holds one value per hourly closing price, oldest first.
	EMA []string
}
