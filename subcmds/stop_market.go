// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/futuresbot/exchange"
	"github.com/visvasity/cli"
)

type StopMarket struct {
	orderFlags
}

func (c *StopMarket) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("stop_market", flag.ContinueOnError)
	c.orderFlags.setFlags(fset)
	return "stop_market", fset, cli.CmdFunc(c.run)
}

func (c *StopMarket) run(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("stop_market command needs symbol, side, quantity and stop price arguments: %w", os.ErrInvalid)
	}
	return c.placeOrder(ctx, exchange.TypeStopMarket, args[0], args[1], args[2], "", args[3])
}

func (c *StopMarket) Purpose() string {
	return "Places a stop-market order"
}

func (c *StopMarket) Description() string {
	return `

Usage: futuresbot stop_market [flags] <symbol> <side> <quantity> <stop_price>

Command "stop_market" places a STOP_MARKET order on the USDT-M futures
exchange. The order becomes a market order when the stop price is reached.

Example: futuresbot stop_market BTCUSDT SELL 0.01 60000

`
}
