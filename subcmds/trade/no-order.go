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

type NoOrder struct {
	cmdutil.ClientFlags
}

func (c *NoOrder) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("no-order", flag.ContinueOnError)
	c.ClientFlags.SetFlagsWithTimeout(fset, time.Hour)
	return "no-order", fset, cli.CmdFunc(c.run)
}

func (c *NoOrder) Purpose() string {
	return "Records the decision not to trade and refreshes the wallet"
}

func (c *NoOrder) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	resp, err := cmdutil.Post[api.NoOrderResponse](ctx, &c.ClientFlags, api.NoOrderPath, &api.NoOrderRequest{})
	if err != nil {
		return fmt.Errorf("POST request to no-order failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("no-order request failed: %s", resp.Error)
	}

	fmt.Println(resp.Message)
	return nil
}
