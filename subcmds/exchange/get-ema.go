// Copyright (c) 2026 Coinbase Agent Authors

package exchange

import (
	"context"
	"flag"
	"fmt"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type GetEMA struct {
	cmdutil.ClientFlags

	product string

	lookBackDays int
	periodHours  int
}

func (c *GetEMA) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-ema", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.product, "product", "BTC-GBP", "name of the trading pair")
	fset.IntVar(&c.lookBackDays, "look-back-days", 10, "length of the price window in days (min 5)")
	fset.IntVar(&c.periodHours, "period-hours", 24, "moving average period in hours")
	return "get-ema", fset, cli.CmdFunc(c.run)
}

func (c *GetEMA) Purpose() string {
	return "Prints the exponential moving average of hourly closing prices"
}

func (c *GetEMA) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	req := &api.GetEMARequest{
		ProductID:    c.product,
		LookBackDays: c.lookBackDays,
		PeriodHours:  c.periodHours,
	}
	resp, err := cmdutil.Post[api.GetEMAResponse](ctx, &c.ClientFlags, api.GetEMAPath, req)
	if err != nil {
		return fmt.Errorf("POST request to get-ema failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("get-ema request failed: %s", resp.Error)
	}

	for _, v := range resp.EMA {
		fmt.Println(v)
	}
	return nil
}
