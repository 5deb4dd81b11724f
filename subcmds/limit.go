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

type Limit struct {
	orderFlags
}

func (c *Limit) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("limit", flag.ContinueOnError)
	c.orderFlags.setFlags(fset)
	return "limit", fset, cli.CmdFunc(c.run)
}

func (c *Limit) run(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("limit command needs symbol, side, quantity and price arguments: %w", os.ErrInvalid)
	}
	return c.placeOrder(ctx, exchange.TypeLimit, args[0], args[1], args[2], args[3], "")
}

func (c *Limit) Purpose() string {
	return "Places a good-till-canceled limit order"
}

func (c *Limit) Description() string {
	return `

Usage: futuresbot limit [flags] <symbol> <side> <quantity> <price>

Command "limit" places a LIMIT order with GTC time-in-force on the USDT-M
futures exchange.

Example: futuresbot limit BTCUSDT SELL 0.01 70000

`
}
