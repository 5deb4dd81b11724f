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

type Market struct {
	orderFlags
}

func (c *Market) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("market", flag.ContinueOnError)
	c.orderFlags.setFlags(fset)
	return "market", fset, cli.CmdFunc(c.run)
}

func (c *Market) run(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("market command needs symbol, side and quantity arguments: %w", os.ErrInvalid)
	}
	return c.placeOrder(ctx, exchange.TypeMarket, args[0], args[1], args[2], "", "")
}

func (c *Market) Purpose() string {
	return "Places a market order"
}

func (c *Market) Description() string {
	return `

Usage: futuresbot market [flags] <symbol> <side> <quantity>

Command "market" places a MARKET order on the USDT-M futures exchange.

Side must be BUY or SELL. Symbol must be a USDT pair, e.g., BTCUSDT.

Example: futuresbot market BTCUSDT BUY 0.01

`
}
