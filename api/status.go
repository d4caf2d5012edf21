// Copyright (c) 2026 Coinbase Agent Authors

package api

import "time"

const StatusPath = "/status"

type StatusRequest struct {
}

type StatusResponse struct {
	Error string

	PID int

	StartTime time.Time
	Uptime    time.Duration

	// ResidentMemory is the resident set size in bytes.
	ResidentMemory uint64

	// TradingEnabled reports whether order creation is allowed.
	TradingEnabled bool

	// Sandbox reports whether orders are simulated against the in-memory
	// wallet instead of the live exchange.
	Sandbox bool
}
