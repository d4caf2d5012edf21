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

type GetProducts struct {
	cmdutil.ClientFlags
}

func (c *GetProducts) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-products", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-products", fset, cli.CmdFunc(c.run)
}

func (c *GetProducts) Purpose() string {
	return "Prints the trading pairs available on the exchange"
}

func (c *GetProducts) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	resp, err := cmdutil.Post[api.GetProductsResponse](ctx, &c.ClientFlags, api.GetProductsPath, &api.GetProductsRequest{})
	if err != nil {
		return fmt.Errorf("POST request to get-products failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("get-products request failed: %s", resp.Error)
	}

	for _, id := range resp.ProductIDs {
		fmt.Println(id)
	}
	return nil
}
