// Copyright (c) 2026 Coinbase Agent Authors

package exchange

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type GetCandles struct {
	cmdutil.ClientFlags

	product string

	lookBackDays int
	daysOffset   int
	granularity  int

	fields string
}

func (c *GetCandles) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get-candles", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.product, "product", "BTC-GBP", "name of the trading pair")
	fset.IntVar(&c.lookBackDays, "look-back-days", 0, "length of the candle window in days (0 uses the server default)")
	fset.IntVar(&c.daysOffset, "days-offset", 0, "end of the candle window, in days before now")
	fset.IntVar(&c.granularity, "granularity-hours", 0, "candle bucket width in hours: 1, 2, 6 or 24 (0 uses the server default)")
	fset.StringVar(&c.fields, "fields", "", "comma-separated candle price fields out of low, high, close")
	return "get-candles", fset, cli.CmdFunc(c.run)
}

func (c *GetCandles) Purpose() string {
	return "Prints recent price candles for a trading pair"
}

func (c *GetCandles) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	var fields []string
	if len(c.fields) != 0 {
		fields = strings.Split(c.fields, ",")
	}
	req := &api.GetCandlesRequest{
		ProductID:        c.product,
		LookBackDays:     c.lookBackDays,
		DaysOffset:       c.daysOffset,
		GranularityHours: c.granularity,
		Fields:           fields,
	}
	resp, err := cmdutil.Post[api.GetCandlesResponse](ctx, &c.ClientFlags, api.GetCandlesPath, req)
	if err != nil {
		return fmt.Errorf("POST request to get-candles failed: %w", err)
	}

	jsdata, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Printf("%s\n", jsdata)
	return nil
}
