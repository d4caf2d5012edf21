// Copyright (c) 2026 Coinbase Agent Authors

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"coinbase-agent/api"
	"coinbase-agent/coinbase"
	"coinbase-agent/trader"
)

type stubExchange struct {
	accounts *coinbase.ListAccountsResponse

	createOrderCalls int
}

func (f *stubExchange) ListProducts(ctx context.Context) (*coinbase.ListProductsResponse, error) {
	return new(coinbase.ListProductsResponse), nil
}

func (f *stubExchange) GetProduct(ctx context.Context, productID string) (*coinbase.GetProductResponse, error) {
	return &coinbase.GetProductResponse{ProductID: productID, ProductType: "SPOT"}, nil
}

func (f *stubExchange) GetCandles(ctx context.Context, productID string, start, end time.Time, granularity coinbase.CandleGranularity) (*coinbase.GetCandlesResponse, error) {
	return new(coinbase.GetCandlesResponse), nil
}

func (f *stubExchange) ListAccounts(ctx context.Context) (*coinbase.ListAccountsResponse, error) {
	if f.accounts != nil {
		return f.accounts, nil
	}
	return new(coinbase.ListAccountsResponse), nil
}

func (f *stubExchange) ListFilledOrders(ctx context.Context, productID string, limit int) (*coinbase.ListOrdersResponse, error) {
	return new(coinbase.ListOrdersResponse), nil
}

func (f *stubExchange) CreateOrder(ctx context.Context, req *coinbase.CreateOrderRequest) (*coinbase.CreateOrderResponse, error) {
	f.createOrderCalls++
	return &coinbase.CreateOrderResponse{Success: true}, nil
}

func post[RESP any](t *testing.T, s *Server, path string, req any) *RESP {
	t.Helper()

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()

	h, ok := s.HandlerMap()[path]
	if !ok {
		t.Fatalf("no handler for %q", path)
	}
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("POST %s returned status %d", path, w.Code)
	}
	resp := new(RESP)
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatalf("could not decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestWalletEndpoint(t *testing.T) {
	ex := &stubExchange{
		accounts: &coinbase.ListAccountsResponse{
			Accounts: []*coinbase.Account{
				{
					Currency: "GBP",
					AvailableBalance: coinbase.Balance{
						Value:    coinbase.NullDecimal{Decimal: decimal.RequireFromString("42.123456")},
						Currency: "GBP",
					},
				},
			},
		},
	}
	s, err := New(ex, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	resp := post[api.WalletResponse](t, s, api.WalletPath, &api.WalletRequest{})
	if resp.Error != "" {
		t.Fatalf("wallet failed: %s", resp.Error)
	}
	if len(resp.Balances) != 1 || resp.Balances[0] != "42.12 GBP" {
		t.Fatalf("balances are %v", resp.Balances)
	}
}

func TestErrorsArriveInResponseBody(t *testing.T) {
	s, err := New(new(stubExchange), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	resp := post[api.GetProductResponse](t, s, api.GetProductPath, &api.GetProductRequest{ProductID: "BTCGBP"})
	if !strings.Contains(resp.Error, "invalid product id") {
		t.Fatalf("error field holds %q", resp.Error)
	}
}

func TestRequestCheckRuns(t *testing.T) {
	s, err := New(new(stubExchange), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	resp := post[api.GetProductResponse](t, s, api.GetProductPath, &api.GetProductRequest{})
	if !strings.Contains(resp.Error, "product id cannot be empty") {
		t.Fatalf("error field holds %q", resp.Error)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s, err := New(new(stubExchange), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, api.WalletPath, nil)
	w := httptest.NewRecorder()
	s.HandlerMap()[api.WalletPath].ServeHTTP(w, r)

	resp := new(api.WalletResponse)
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Error, "not allowed") {
		t.Fatalf("error field holds %q", resp.Error)
	}
}

func TestCreateOrderDisabled(t *testing.T) {
	ex := new(stubExchange)
	s, err := New(ex, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	req := &api.CreateOrderRequest{Side: "BUY", ProductID: "BTC-GBP", Size: "10"}
	resp := post[api.CreateOrderResponse](t, s, api.CreateOrderPath, req)
	if resp.Error != "" {
		t.Fatalf("create order failed: %s", resp.Error)
	}
	if !strings.Contains(resp.Message, "disabled") {
		t.Fatalf("message is %q, want a disabled notice", resp.Message)
	}
	if ex.createOrderCalls != 0 {
		t.Fatal("disabled order reached the exchange")
	}
}

func TestCreateOrderSandbox(t *testing.T) {
	ex := new(stubExchange)
	s, err := New(ex, nil, &Options{
		EnableTrading:  true,
		Sandbox:        true,
		SandboxDataDir: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}

	req := &api.CreateOrderRequest{Side: "BUY", ProductID: "BTC-GBP", Size: "10"}
	resp := post[api.CreateOrderResponse](t, s, api.CreateOrderPath, req)
	if resp.Error != "" {
		t.Fatalf("create order failed: %s", resp.Error)
	}
	if !strings.Contains(resp.Message, "Order created") {
		t.Fatalf("message is %q", resp.Message)
	}
	if ex.createOrderCalls != 0 {
		t.Fatal("sandboxed order reached the exchange")
	}

	// Sandbox wallet reflects the simulated trade.
	wallet := post[api.WalletResponse](t, s, api.WalletPath, &api.WalletRequest{})
	if len(wallet.Balances) != 2 || wallet.Balances[0] != "90 GBP" {
		t.Fatalf("sandbox balances are %v", wallet.Balances)
	}
}

func TestCreateOrderLive(t *testing.T) {
	ex := new(stubExchange)
	s, err := New(ex, nil, &Options{
		EnableTrading: true,
		Trader:        &trader.Options{CooldownInterval: time.Nanosecond, WatchProductIDs: []string{"BTC-GBP"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	req := &api.CreateOrderRequest{Side: "SELL", ProductID: "BTC-GBP", Size: "0.5"}
	resp := post[api.CreateOrderResponse](t, s, api.CreateOrderPath, req)
	if resp.Error != "" {
		t.Fatalf("create order failed: %s", resp.Error)
	}
	if ex.createOrderCalls != 1 {
		t.Fatalf("create order called %d times, want 1", ex.createOrderCalls)
	}
}

func TestStatusEndpoint(t *testing.T) {
	s, err := New(new(stubExchange), nil, &Options{EnableTrading: true})
	if err != nil {
		t.Fatal(err)
	}

	resp := post[api.StatusResponse](t, s, api.StatusPath, &api.StatusRequest{})
	if resp.Error != "" {
		t.Fatalf("status failed: %s", resp.Error)
	}
	if resp.PID <= 0 {
		t.Fatalf("pid is %d", resp.PID)
	}
	if !resp.TradingEnabled || resp.Sandbox {
		t.Fatalf("status flags are %+v", resp)
	}
}
