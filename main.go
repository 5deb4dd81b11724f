// Copyright (c) 2023 BVK Chaitanya

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/bvk/futuresbot/subcmds"
	"github.com/visvasity/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmds := []cli.Command{
		new(subcmds.Market),
		new(subcmds.Limit),
		new(subcmds.StopMarket),
		new(subcmds.Status),
	}
	if err := cli.Run(ctx, cmds, os.Args[1:]); err != nil {
		stop()
		log.Fatal(err)
	}
}
