// Copyright (c) 2026 Coinbase Agent Authors

// Package coinbase implements an authenticated client for the Coinbase
// Advanced Trade ("brokerage") REST api.
//
// Every request goes through a single signing funnel: the CB-ACCESS-SIGN
// header is the hex HMAC-SHA256 of timestamp + method + path + body, keyed
// with the api secret. The path excludes any query string and the body is the
// exact serialized bytes of the request (the empty string for GETs). The
// timestamp signed is always the timestamp sent in CB-ACCESS-TIMESTAMP; the
// client makes no attempt at clock synchronization and surfaces skew
// rejections verbatim.
package coinbase

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

type Client struct {
	opts Options

	key    string
	secret []byte

	client *http.Client

	limiter *rate.Limiter

	// timeNow is replaced in tests for deterministic signatures.
	timeNow func() time.Time
}

// New creates a client for the coinbase exchange.
func New(creds *Credentials, opts *Options) (*Client, error) {
	if err := creds.Check(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()

	c := &Client{
		opts:   *opts,
		key:    creds.Key,
		secret: []byte(creds.Secret),
		client: &http.Client{
			Timeout: opts.HttpClientTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RestRateLimit), 1),
		timeNow: time.Now,
	}
	return c, nil
}

func (c *Client) sign(message string) string {
	signature := hmac.New(sha256.New, c.secret)
	if _, err := signature.Write([]byte(message)); err != nil {
		slog.Error("could not write to hmac stream (ignored)", "error", err)
		return ""
	}
	return hex.EncodeToString(signature.Sum(nil))
}

// addHeaders signs the request and attaches the authentication headers. The
// body argument must hold the exact bytes that will be sent, or nil for
// body-less requests.
func (c *Client) addHeaders(req *http.Request, body []byte) {
	at := strconv.FormatInt(c.timeNow().Unix(), 10)
	message := at + req.Method + req.URL.Path + string(body)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("CB-ACCESS-KEY", c.key)
	req.Header.Add("CB-ACCESS-SIGN", c.sign(message))
	req.Header.Add("CB-ACCESS-TIMESTAMP", at)
}

func (c *Client) httpGetJSON(ctx context.Context, url *url.URL, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return err
	}
	c.addHeaders(req, nil)
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		slog.Error("http GET is unsuccessful", "status", resp.StatusCode, "url", url.String())
		return &StatusError{Method: http.MethodGet, Code: resp.StatusCode, Body: string(data)}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		slog.Error("could not decode response to json", "error", err)
		return err
	}
	return nil
}

func (c *Client) httpPostJSON(ctx context.Context, url *url.URL, request, resultPtr interface{}) error {
	payload, err := json.Marshal(request)
	if err != nil {
		slog.Error("could not marshal post request body to json", "error", err)
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.addHeaders(req, payload)
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		slog.Error("http POST is unsuccessful", "status", resp.StatusCode, "url", url.String())
		return &StatusError{Method: http.MethodPost, Code: resp.StatusCode, Body: string(data)}
	}
	if err := json.NewDecoder(resp.Body).Decode(resultPtr); err != nil {
		slog.Error("could not decode response to json", "error", err)
		return err
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	url := &url.URL{
		Scheme: c.opts.restScheme,
		Host:   c.opts.RestHostname,
		Path:   "/api/v3/brokerage/products",
	}
	resp := new(ListProductsResponse)
	if err := c.httpGetJSON(ctx, url, resp); err != nil {
		return nil, fmt.Errorf("could not http-get products list: %w", err)
	}
	return resp, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*GetProductResponse, error) {
	url := &url.URL{
		Scheme: c.opts.restScheme,
		Host:   c.opts.RestHostname,
		Path:   path.Join("/api/v3/brokerage/products", productID),
	}
	resp := new(GetProductResponse)
	if err := c.httpGetJSON(ctx, url, resp); err != nil {
		return nil, fmt.Errorf("could not http-get product %q: %w", productID, err)
	}
	return resp, nil
}

func (c *Client) GetCandles(ctx context.Context, productID string, start, end time.Time, granularity CandleGranularity) (*GetCandlesResponse, error) {
	values := make(url.Values)
	values.Set("start", strconv.FormatInt(start.Unix(), 10))
	values.Set("end", strconv.FormatInt(end.Unix(), 10))
	values.Set("granularity", string(granularity))

	url := &url.URL{
		Scheme:   c.opts.restScheme,
		Host:     c.opts.RestHostname,
		Path:     path.Join("/api/v3/brokerage/products", productID, "candles"),
		RawQuery: values.Encode(),
	}
	resp := new(GetCandlesResponse)
	if err := c.httpGetJSON(ctx, url, resp); err != nil {
		return nil, fmt.Errorf("could not http-get product candles %q: %w", productID, err)
	}
	return resp, nil
}

func (c *Client) ListAccounts(ctx context.Context) (*ListAccountsResponse, error) {
	url := &url.URL{
		Scheme: c.opts.restScheme,
		Host:   c.opts.RestHostname,
		Path:   "/api/v3/brokerage/accounts",
	}
	resp := new(ListAccountsResponse)
	if err := c.httpGetJSON(ctx, url, resp); err != nil {
		return nil, fmt.Errorf("could not http-get accounts: %w", err)
	}
	return resp, nil
}

// ListFilledOrders fetches the most recent filled orders, optionally scoped
// to a single product. Ordering is whatever the exchange returns; it is not
// re-sorted.
func (c *Client) ListFilledOrders(ctx context.Context, productID string, limit int) (*ListOrdersResponse, error) {
	values := make(url.Values)
	values.Set("order_status", "FILLED")
	values.Set("limit", strconv.Itoa(limit))
	if len(productID) > 0 {
		values.Set("product_id", productID)
	}

	url := &url.URL{
		Scheme:   c.opts.restScheme,
		Host:     c.opts.RestHostname,
		Path:     "/api/v3/brokerage/orders/historical/batch",
		RawQuery: values.Encode(),
	}
	resp := new(ListOrdersResponse)
	if err := c.httpGetJSON(ctx, url, resp); err != nil {
		return nil, fmt.Errorf("could not http-get filled orders: %w", err)
	}
	return resp, nil
}

// CreateOrder submits an order. When the exchange reports success=false the
// response is still returned along with a *RejectionError describing the
// failure.
func (c *Client) CreateOrder(ctx context.Context, request *CreateOrderRequest) (*CreateOrderResponse, error) {
	url := &url.URL{
		Scheme: c.opts.restScheme,
		Host:   c.opts.RestHostname,
		Path:   "/api/v3/brokerage/orders",
	}
	resp := new(CreateOrderResponse)
	if err := c.httpPostJSON(ctx, url, request, resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return resp, rejectionFromResponse(resp)
	}
	return resp, nil
}
