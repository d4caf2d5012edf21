// Copyright (c) 2026 Coinbase Agent Authors

package trader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strconv"

	"coinbase-agent/coinbase"
	"coinbase-agent/sigdigits"
)

// CreateOrder validates and submits a market order, then blocks for the
// configured cooldown and refreshes all cached state.
//
// The size string is the quote-currency amount for BUY orders and the
// base-currency amount for SELL orders. When the exchange rejects the size
// for carrying too many decimal places, the submission is retried with one
// fewer decimal each time, reducing from the previous attempt's value. The
// retry budget is the number of decimal places in the original size, so the
// loop always terminates; any other rejection or a transport failure is
// returned to the caller as-is, with no retry.
//
// Validation failures are detected before any network call is made.
func (t *Trader) CreateOrder(ctx context.Context, side, productID, size string) (string, error) {
	if err := CheckProductID(productID); err != nil {
		return "", err
	}
	side, err := CheckSide(side)
	if err != nil {
		return "", err
	}
	if err := CheckSize(size); err != nil {
		return "", err
	}

	retries := sigdigits.Decimals(size)
	for {
		resp, err := t.submitOrder(ctx, side, productID, size)
		if err != nil {
			var rej *coinbase.RejectionError
			if errors.As(err, &rej) && rej.IsPrecisionRejection() && retries > 0 {
				trimmed, ok := sigdigits.TrimDecimal(size)
				if !ok {
					return "", err
				}
				slog.Warn("order size has too many decimals (retrying with lower precision)",
					"product", productID, "size", size, "retry_size", trimmed)
				size = trimmed
				retries--
				continue
			}
			return "", err
		}

		t.cooldown(ctx)

		if err := t.RefreshState(ctx); err != nil {
			slog.Warn("could not refresh state after trade (ignored)", "error", err)
		}

		data, err := json.Marshal(resp)
		if err != nil {
			return "", fmt.Errorf("could not marshal order response: %w", err)
		}
		return fmt.Sprintf("Order creation response: %s", data), nil
	}
}

func (t *Trader) submitOrder(ctx context.Context, side, productID, size string) (*coinbase.CreateOrderResponse, error) {
	ioc := new(coinbase.MarketMarketIOC)
	if side == "BUY" {
		ioc.QuoteSize = size
	} else {
		ioc.BaseSize = size
	}
	req := &coinbase.CreateOrderRequest{
		// The client order id doubles as an idempotency token; a fresh one
		// is derived from the submission time on every attempt.
		ClientOrderID: strconv.FormatInt(t.timeNow().Unix(), 10),
		ProductID:     productID,
		Side:          side,
		Order:         &coinbase.OrderConfig{MarketIOC: ioc},
	}
	return t.ex.CreateOrder(ctx, req)
}

func (t *Trader) cooldown(ctx context.Context) {
	log.Printf("sleeping for %s after making this trade successfully", t.opts.CooldownInterval)
	t.sleep(ctx, t.opts.CooldownInterval)
	log.Printf("waking up again")
}

// NoOrder is the explicit decision not to trade. It blocks for the
// configured pause and then refreshes the wallet snapshot, in case any
// orders were still pending.
func (t *Trader) NoOrder(ctx context.Context) (string, error) {
	log.Printf("sleeping for %s without making any trade", t.opts.NoOrderInterval)
	t.sleep(ctx, t.opts.NoOrderInterval)
	log.Printf("waking up again")

	wallet, err := t.WalletBalances(ctx)
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	t.wallet = wallet
	t.mu.Unlock()

	return "No order created", nil
}
