// Copyright (c) 2026 Coinbase Agent Authors

package main

import (
	"context"
	"log"
	"os"

	"github.com/visvasity/cli"

	"coinbase-agent/subcmds"
	"coinbase-agent/subcmds/exchange"
	"coinbase-agent/subcmds/trade"
)

func main() {
	exchangeCmds := []cli.Command{
		new(exchange.GetProduct),
		new(exchange.GetProducts),
		new(exchange.GetCandles),
		new(exchange.GetEMA),
	}

	tradeCmds := []cli.Command{
		new(trade.Orders),
		new(trade.Wallet),
		new(trade.Buy),
		new(trade.Sell),
		new(trade.NoOrder),
	}

	cmds := []cli.Command{
		new(subcmds.Run),
		new(subcmds.Status),
		cli.NewGroup("exchange", "View/query market data", exchangeCmds...),
		cli.NewGroup("trade", "Wallet and order operations", tradeCmds...),
	}
	if err := cli.Run(context.Background(), cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
