// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bvk/futuresbot/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Status struct {
	cmdutil.ClientFlags
}

func (c *Status) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("status", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "status", fset, cli.CmdFunc(c.run)
}

func (c *Status) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("status command takes no arguments: %w", os.ErrInvalid)
	}

	closer, err := c.SetupLogging()
	if err != nil {
		return err
	}
	defer closer()

	client, err := c.NewClient()
	if err != nil {
		return err
	}

	w := cli.Stdout(ctx)
	fmt.Fprintf(w, "Exchange: %s\n", client.ExchangeName())
	fmt.Fprintf(w, "Endpoint: %s\n", client.BaseURL())
	if !client.Ping(ctx) {
		fmt.Fprintf(w, "Status: %s\n", cmdutil.Colorize(w, false, "Offline"))
		return nil
	}
	fmt.Fprintf(w, "Status: %s\n", cmdutil.Colorize(w, true, "Online"))

	start := time.Now()
	serverTime, err := client.ServerTime(ctx)
	if err != nil {
		fmt.Fprintf(w, "Server Time: N/A\n")
		return nil
	}
	local := start.Add(time.Since(start) / 2)
	fmt.Fprintf(w, "Server Time: %s\n", serverTime.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "Clock Skew: %s\n", serverTime.Sub(local).Round(time.Millisecond))
	return nil
}

func (c *Status) Purpose() string {
	return "Checks connectivity to the futures exchange"
}

func (c *Status) Description() string {
	return `

Usage: futuresbot status [flags]

Command "status" pings the futures exchange selected by BINANCE_TESTNET (or
the -rest-url flag) and prints Online or Offline. When the exchange is online,
its server time and the local clock skew are also printed.

Ping failures are logged and reported as Offline; they are not errors.

`
}
