// Copyright (c) 2026 Coinbase Agent Authors

// Package sandbox simulates order execution against an in-memory wallet, so
// an agent can be exercised end to end without touching the live exchange.
//
// The simulation is intentionally crude: the wallet starts with 100 GBP and
// no BTC, every trade converts at a fixed rate of 1000 GBP per BTC and a hard
// 20 GBP per-order cap is enforced. Executed trades are appended to a
// trades.csv audit file.
package sandbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"coinbase-agent/sigdigits"
	"coinbase-agent/trader"
)

// maxOrderSize is the per-order cap on the quote amount.
var maxOrderSize = decimal.NewFromInt(20)

// conversionRate is the fixed GBP amount of one BTC.
var conversionRate = decimal.NewFromInt(1000)

type Sandbox struct {
	tradesPath string

	mu     sync.Mutex
	wallet map[string]decimal.Decimal
}

// New creates a sandbox writing its trade audit file under dataDir.
func New(dataDir string) *Sandbox {
	return &Sandbox{
		tradesPath: filepath.Join(dataDir, "trades.csv"),
		wallet: map[string]decimal.Decimal{
			"GBP": decimal.NewFromInt(100),
			"BTC": decimal.Zero,
		},
	}
}

// WalletBalances returns the simulated wallet, one "<amount> <currency>"
// entry per currency.
func (s *Sandbox) WalletBalances(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Fixed order keeps the output stable across calls.
	var wallet []string
	for _, currency := range []string{"GBP", "BTC"} {
		wallet = append(wallet, s.wallet[currency].String()+" "+currency)
	}
	return wallet, nil
}

// CreateOrder simulates a market order. Input validation matches the live
// path; the order itself never leaves this process.
func (s *Sandbox) CreateOrder(ctx context.Context, side, productID, size string) (string, error) {
	if err := trader.CheckProductID(productID); err != nil {
		return "", err
	}
	side, err := trader.CheckSide(side)
	if err != nil {
		return "", err
	}
	if err := trader.CheckSize(size); err != nil {
		return "", err
	}

	quote, err := decimal.NewFromString(sigdigits.Round(size, 4))
	if err != nil {
		return "", fmt.Errorf("invalid size %q: %w", size, os.ErrInvalid)
	}
	if quote.GreaterThan(maxOrderSize) {
		return "", fmt.Errorf("trade blocked: quote size too large: £%s, only orders up to £%s are allowed", quote, maxOrderSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := quote.Div(conversionRate)
	if side == "BUY" {
		s.wallet["GBP"] = s.wallet["GBP"].Sub(quote)
		s.wallet["BTC"] = s.wallet["BTC"].Add(base)
	} else {
		s.wallet["GBP"] = s.wallet["GBP"].Add(quote)
		s.wallet["BTC"] = s.wallet["BTC"].Sub(base)
	}

	if err := s.appendTrade(side, productID, quote); err != nil {
		return "", err
	}
	return fmt.Sprintf("Order created: %s %s %s", side, quote, productID), nil
}

func (s *Sandbox) appendTrade(side, productID string, quote decimal.Decimal) error {
	f, err := os.OpenFile(s.tradesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("could not open trades file %q: %w", s.tradesPath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%s,%s\n", side, productID, quote); err != nil {
		return fmt.Errorf("could not append to trades file %q: %w", s.tradesPath, err)
	}
	return nil
}
