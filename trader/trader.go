// Copyright (c) 2026 Coinbase Agent Authors

// Package trader implements the agent-facing trading operations: market data
// snapshots, trade history, wallet balances and market order submission with
// its post-trade cooldown.
//
// All operations are synchronous; an operation blocks its caller until the
// network round trip (and, for order submission, the cooldown) completes.
// The cached wallet, trade history and price history values are replaced
// wholesale on every refresh, never mutated field by field.
package trader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"coinbase-agent/ctxutil"
)

type Trader struct {
	opts Options

	ex Exchange

	// timeNow and sleep are replaced in tests to avoid real delays.
	timeNow func() time.Time
	sleep   func(ctx context.Context, d time.Duration)

	mu           sync.Mutex
	wallet       []string
	lastTrades   []string
	priceHistory map[string][]*Candle
}

// New creates a trader on top of the given exchange client.
func New(ex Exchange, opts *Options) *Trader {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()

	return &Trader{
		opts:         *opts,
		ex:           ex,
		timeNow:      time.Now,
		sleep:        ctxutil.Sleep,
		priceHistory: make(map[string][]*Candle),
	}
}

// RefreshState re-fetches the wallet snapshot, the recent trade history and
// the price history of every watched product, then swaps all caches in one
// step. Readers never observe a partially refreshed state.
func (t *Trader) RefreshState(ctx context.Context) error {
	wallet, err := t.WalletBalances(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh wallet balances: %w", err)
	}
	trades, err := t.LastFilledOrders(ctx, "", t.opts.FilledOrdersLimit)
	if err != nil {
		return fmt.Errorf("could not refresh trade history: %w", err)
	}
	history := make(map[string][]*Candle)
	for _, id := range t.opts.WatchProductIDs {
		cs, err := t.GetCandles(ctx, &GetCandlesRequest{ProductID: id})
		if err != nil {
			return fmt.Errorf("could not refresh price history for %q: %w", id, err)
		}
		history[id] = cs
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.wallet = wallet
	t.lastTrades = trades
	t.priceHistory = history

	slog.Debug("trader state refreshed", "accounts", len(wallet), "trades", len(trades), "products", len(history))
	return nil
}

// Wallet returns a copy of the cached wallet snapshot.
func (t *Trader) Wallet() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.wallet...)
}

// LastTrades returns a copy of the cached trade history.
func (t *Trader) LastTrades() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lastTrades...)
}

// PriceHistory returns a copy of the cached candles for a watched product.
func (t *Trader) PriceHistory(productID string) []*Candle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Candle(nil), t.priceHistory[productID]...)
}
