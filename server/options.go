// Copyright (c) 2026 Coinbase Agent Authors

package server

import "coinbase-agent/trader"

type Options struct {
	// EnableTrading unlocks the order creation endpoints. When false every
	// trade request is answered with a disabled message and nothing reaches
	// the exchange.
	EnableTrading bool

	// Sandbox routes order creation and the wallet to the in-memory
	// simulation instead of the live exchange. Read-only market data still
	// comes from the exchange.
	Sandbox bool

	// SandboxDataDir is the directory for the sandbox trade audit file.
	SandboxDataDir string

	// Trader overrides the trader defaults.
	Trader *trader.Options
}
