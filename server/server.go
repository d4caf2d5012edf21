// Copyright (c) 2026 Coinbase Agent Authors

// Package server exposes trading operations over local http endpoints. Every
// endpoint takes a json POST body and always answers with a decodable json
// body; failures are reported through the response's Error field.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"coinbase-agent/api"
	"coinbase-agent/sandbox"
	"coinbase-agent/telegram"
	"coinbase-agent/trader"
)

type Server struct {
	opts Options

	trader *trader.Trader

	sandbox *sandbox.Sandbox

	notifier *telegram.Client

	startTime time.Time
}

// New creates a server on top of the given exchange. The notifier may be nil,
// in which case trade notifications are skipped.
func New(ex trader.Exchange, notifier *telegram.Client, opts *Options) (*Server, error) {
	if opts == nil {
		opts = new(Options)
	}
	s := &Server{
		opts:      *opts,
		trader:    trader.New(ex, opts.Trader),
		notifier:  notifier,
		startTime: time.Now(),
	}
	if opts.Sandbox {
		dir := opts.SandboxDataDir
		if len(dir) == 0 {
			dir = "."
		}
		s.sandbox = sandbox.New(dir)
	}
	return s, nil
}

// Start warms the trader caches. A failure here usually means bad credentials
// or an unreachable exchange, so it is fatal.
func (s *Server) Start(ctx context.Context) error {
	if err := s.trader.RefreshState(ctx); err != nil {
		return fmt.Errorf("could not load initial state: %w", err)
	}
	return nil
}

// HandlerMap returns all http handlers keyed by their path.
func (s *Server) HandlerMap() map[string]http.Handler {
	return map[string]http.Handler{
		api.GetProductPath:  postJSONHandler(s.getProduct),
		api.GetProductsPath: postJSONHandler(s.getProducts),
		api.GetCandlesPath:  postJSONHandler(s.getCandles),
		api.GetEMAPath:      postJSONHandler(s.getEMA),
		api.OrdersPath:      postJSONHandler(s.orders),
		api.WalletPath:      postJSONHandler(s.wallet),
		api.CreateOrderPath: postJSONHandler(s.createOrder),
		api.NoOrderPath:     postJSONHandler(s.noOrder),
		api.StatusPath:      postJSONHandler(s.status),
	}
}

func postJSONHandler[REQ, RESP any](fn func(ctx context.Context, req *REQ) (*RESP, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")

		if r.Method != http.MethodPost {
			writeError(w, fmt.Errorf("method %s is not allowed", r.Method))
			return
		}
		req := new(REQ)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			writeError(w, fmt.Errorf("could not decode request body: %w", err))
			return
		}
		if c, ok := any(req).(interface{ Check() error }); ok {
			if err := c.Check(); err != nil {
				writeError(w, err)
				return
			}
		}
		resp, err := fn(r.Context(), req)
		if err != nil {
			slog.Error("api handler failed", "path", r.URL.Path, "error", err)
			writeError(w, err)
			return
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("could not encode api response", "path", r.URL.Path, "error", err)
		}
	})
}

// writeError reports a failure through the Error field of an otherwise empty
// response object. Every api response type carries this field.
func writeError(w http.ResponseWriter, err error) {
	_ = json.NewEncoder(w).Encode(map[string]string{"Error": err.Error()})
}

func (s *Server) getProduct(ctx context.Context, req *api.GetProductRequest) (*api.GetProductResponse, error) {
	info, err := s.trader.GetProductInfo(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return &api.GetProductResponse{
		ProductID:                 info.ProductID,
		Price:                     info.Price,
		PricePercentageChange24h:  info.PricePercentageChange24h,
		Volume24h:                 info.Volume24h,
		VolumePercentageChange24h: info.VolumePercentageChange24h,
		QuoteMinSize:              info.QuoteMinSize,
		BaseMinSize:               info.BaseMinSize,
		ProductType:               info.ProductType,
		MidMarketPrice:            info.MidMarketPrice,
	}, nil
}

func (s *Server) getProducts(ctx context.Context, req *api.GetProductsRequest) (*api.GetProductsResponse, error) {
	ids, err := s.trader.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &api.GetProductsResponse{ProductIDs: ids}, nil
}

func (s *Server) getCandles(ctx context.Context, req *api.GetCandlesRequest) (*api.GetCandlesResponse, error) {
	var fields trader.CandleFields
	for _, f := range req.Fields {
		switch f {
		case "low":
			fields.Low = true
		case "high":
			fields.High = true
		case "close":
			fields.Close = true
		}
	}
	cs, err := s.trader.GetCandles(ctx, &trader.GetCandlesRequest{
		ProductID:        req.ProductID,
		LookBackDays:     req.LookBackDays,
		DaysOffset:       req.DaysOffset,
		GranularityHours: req.GranularityHours,
		Fields:           fields,
	})
	if err != nil {
		return nil, err
	}
	resp := new(api.GetCandlesResponse)
	for _, c := range cs {
		resp.Candles = append(resp.Candles, &api.Candle{
			StartTime: c.StartTime,
			Low:       c.Low,
			High:      c.High,
			Close:     c.Close,
		})
	}
	return resp, nil
}

func (s *Server) getEMA(ctx context.Context, req *api.GetEMARequest) (*api.GetEMAResponse, error) {
	ema, err := s.trader.GetEMA(ctx, req.ProductID, req.LookBackDays, req.PeriodHours)
	if err != nil {
		return nil, err
	}
	return &api.GetEMAResponse{EMA: ema}, nil
}

func (s *Server) orders(ctx context.Context, req *api.OrdersRequest) (*api.OrdersResponse, error) {
	orders, err := s.trader.LastFilledOrders(ctx, req.ProductID, req.Limit)
	if err != nil {
		return nil, err
	}
	return &api.OrdersResponse{Orders: orders}, nil
}

func (s *Server) wallet(ctx context.Context, req *api.WalletRequest) (*api.WalletResponse, error) {
	if s.sandbox != nil {
		balances, err := s.sandbox.WalletBalances(ctx)
		if err != nil {
			return nil, err
		}
		return &api.WalletResponse{Balances: balances}, nil
	}
	balances, err := s.trader.WalletBalances(ctx)
	if err != nil {
		return nil, err
	}
	return &api.WalletResponse{Balances: balances}, nil
}

func (s *Server) createOrder(ctx context.Context, req *api.CreateOrderRequest) (*api.CreateOrderResponse, error) {
	if !s.opts.EnableTrading {
		return &api.CreateOrderResponse{Message: "Trading is disabled; no order was created"}, nil
	}

	var msg string
	var err error
	if s.sandbox != nil {
		msg, err = s.sandbox.CreateOrder(ctx, req.Side, req.ProductID, req.Size)
	} else {
		msg, err = s.trader.CreateOrder(ctx, req.Side, req.ProductID, req.Size)
	}
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		text := fmt.Sprintf("%s %s %s: %s", req.Side, req.Size, req.ProductID, msg)
		if err := s.notifier.SendMessage(ctx, text); err != nil {
			slog.Warn("could not send trade notification (ignored)", "error", err)
		}
	}
	return &api.CreateOrderResponse{Message: msg}, nil
}

func (s *Server) noOrder(ctx context.Context, req *api.NoOrderRequest) (*api.NoOrderResponse, error) {
	msg, err := s.trader.NoOrder(ctx)
	if err != nil {
		return nil, err
	}
	return &api.NoOrderResponse{Message: msg}, nil
}

func (s *Server) status(ctx context.Context, req *api.StatusRequest) (*api.StatusResponse, error) {
	resp := &api.StatusResponse{
		PID:            os.Getpid(),
		StartTime:      s.startTime,
		Uptime:         time.Since(s.startTime),
		TradingEnabled: s.opts.EnableTrading,
		Sandbox:        s.opts.Sandbox,
	}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	if mem, err := p.MemoryInfo(); err == nil {
		resp.ResidentMemory = mem.RSS
	}
	return resp, nil
}
