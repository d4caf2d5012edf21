// Copyright (c) 2026 Coinbase Agent Authors

// Package trade implements subcommands for wallet and order operations.
package trade

import (
	"context"
	"flag"
	"fmt"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type Orders struct {
	cmdutil.ClientFlags

	product string
	limit   int
}

func (c *Orders) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("orders", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.product, "product", "", "limit the listing to one trading pair")
	fset.IntVar(&c.limit, "limit", 0, "max number of orders to fetch (0 uses the server default)")
	return "orders", fset, cli.CmdFunc(c.run)
}

func (c *Orders) Purpose() string {
	return "Prints recently filled orders, most recent first"
}

func (c *Orders) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	req := &api.OrdersRequest{
		ProductID: c.product,
		Limit:     c.limit,
	}
	resp, err := cmdutil.Post[api.OrdersResponse](ctx, &c.ClientFlags, api.OrdersPath, req)
	if err != nil {
		return fmt.Errorf("POST request to orders failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("orders request failed: %s", resp.Error)
	}

	for _, o := range resp.Orders {
		fmt.Println(o)
	}
	return nil
}
