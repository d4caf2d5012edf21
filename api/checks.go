// Copyright (c) 2026 Coinbase Agent Authors

package api

import "fmt"

func (r *GetProductRequest) Check() error {
	if len(r.ProductID) == 0 {
		return fmt.Errorf("product id cannot be empty")
	}
	return nil
}

func (r *GetCandlesRequest) Check() error {
	if len(r.ProductID) == 0 {
		return fmt.Errorf("product id cannot be empty")
	}
	if r.LookBackDays < 0 || r.DaysOffset < 0 {
		return fmt.Errorf("look-back days and days offset cannot be negative")
	}
	for _, f := range r.Fields {
		switch f {
		case "low", "high", "close":
		default:
			return fmt.Errorf("unknown candle field %q", f)
		}
	}
	return nil
}

func (r *GetEMARequest) Check() error {
	if len(r.ProductID) == 0 {
		return fmt.Errorf("product id cannot be empty")
	}
	if r.LookBackDays < 5 {
		return fmt.Errorf("look-back days must be at least 5")
	}
	if r.PeriodHours <= 0 {
		return fmt.Errorf("period hours must be positive")
	}
	return nil
}

func (r *OrdersRequest) Check() error {
	if r.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	return nil
}

func (r *CreateOrderRequest) Check() error {
	if len(r.Side) == 0 {
		return fmt.Errorf("side cannot be empty")
	}
	if len(r.ProductID) == 0 {
		return fmt.Errorf("product id cannot be empty")
	}
	if len(r.Size) == 0 {
		return fmt.Errorf("size cannot be empty")
	}
	return nil
}
