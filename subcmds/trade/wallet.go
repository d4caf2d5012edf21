// Copyright (c) 2026 Coinbase Agent Authors

package trade

import (
	"context"
	"flag"
	"fmt"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type Wallet struct {
	cmdutil.ClientFlags
}

func (c *Wallet) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("wallet", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "wallet", fset, cli.CmdFunc(c.run)
}

func (c *Wallet) Purpose() string {
	return "Prints available balances of all wallet accounts"
}

func (c *Wallet) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	resp, err := cmdutil.Post[api.WalletResponse](ctx, &c.ClientFlags, api.WalletPath, &api.WalletRequest{})
	if err != nil {
		return fmt.Errorf("POST request to wallet failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("wallet request failed: %s", resp.Error)
	}

	for _, b := range resp.Balances {
		fmt.Println(b)
	}
	return nil
}
