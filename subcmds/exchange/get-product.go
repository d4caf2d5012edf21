// Copyright (c) 2026 Coinbase Agent Authors

// Package exchange implements subcommands for read-only market data queries.
package exchange

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type GetProduct struct {
	cmdutil.ClientFlags
}

func (c *GetProduct) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-product", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "get-product", fset, cli.CmdFunc(c.run)
}

func (c *GetProduct) Purpose() string {
	return "Prints metadata and price for one trading pair"
}

func (c *GetProduct) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (product-id) argument")
	}

	req := &api.GetProductRequest{
		ProductID: args[0],
	}
	resp, err := cmdutil.Post[api.GetProductResponse](ctx, &c.ClientFlags, api.GetProductPath, req)
	if err != nil {
		return fmt.Errorf("POST request to get-product failed: %w", err)
	}

	jsdata, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Printf("%s\n", jsdata)
	return nil
}
