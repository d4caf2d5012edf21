// Copyright (c) 2026 Coinbase Agent Authors

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/visvasity/cli"

	"coinbase-agent/api"
	"coinbase-agent/subcmds/cmdutil"
)

type Status struct {
	cmdutil.ClientFlags
}

func (c *Status) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("status", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "status", fset, cli.CmdFunc(c.run)
}

func (c *Status) Purpose() string {
	return "Prints the running agent's process information"
}

func (c *Status) run(ctx context.Context, args []string) error {
	resp, err := cmdutil.Post[api.StatusResponse](ctx, &c.ClientFlags, api.StatusPath, &api.StatusRequest{})
	if err != nil {
		return fmt.Errorf("POST request to status failed: %w", err)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("status request failed: %s", resp.Error)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PID\t%d\n", resp.PID)
	fmt.Fprintf(tw, "Start Time\t%s\n", resp.StartTime.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(tw, "Uptime\t%s\n", resp.Uptime)
	fmt.Fprintf(tw, "Resident Memory\t%d bytes\n", resp.ResidentMemory)
	fmt.Fprintf(tw, "Trading Enabled\t%t\n", resp.TradingEnabled)
	fmt.Fprintf(tw, "Sandbox\t%t\n", resp.Sandbox)
	return tw.Flush()
}
