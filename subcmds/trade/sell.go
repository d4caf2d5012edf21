// Copyright (c) 2026 Coinbase Agent Authors

package trade

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type Sell struct {
	cmdutil.ClientFlags

	product string
}

func (c *Sell) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("sell", flag.ContinueOnError)
	c.ClientFlags.SetFlagsWithTimeout(fset, 2*time.Hour)
	fset.StringVar(&c.product, "product", "BTC-GBP", "name of the trading pair")
	return "sell", fset, cli.CmdFunc(c.run)
}

func (c *Sell) Purpose() string {
	return "Creates a market sell order for a base currency amount"
}

func (c *Sell) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (base-size) argument")
	}

	req := &api.CreateOrderRequest{
		Side:      "SELL",
		ProductID: c.product,
		Size:      args[0],
	}
	resp, err := cmdutil.Post[api.CreateOrderResponse](ctx, &c.ClientFlags, api.CreateOrderPath, req)
	if err != nil {
		return fmt.Errorf("POST request to create-order failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("create-order request failed: %s", resp.Error)
	}

	fmt.Println(resp.Message)
	return nil
}
