// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/bvk/futuresbot/orders"
	"github.com/bvk/futuresbot/subcmds/cmdutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/visvasity/cli"
)

// orderFlags holds the flags and the common steps shared by all order
// placement commands.
type orderFlags struct {
	cmdutil.ClientFlags

	clientOrderID string
}

func (f *orderFlags) setFlags(fset *flag.FlagSet) {
	f.ClientFlags.SetFlags(fset)
	fset.StringVar(&f.clientOrderID, "client-order-id", "", "client order id for the new order (default: a random uuid)")
}

// placeOrder validates the arguments and places one order of the given type.
// Validation and exchange failures are printed and are not returned as
// errors. Only initialization failures are returned.
func (f *orderFlags) placeOrder(ctx context.Context, typ, symbol, side, quantity, price, stopPrice string) error {
	closer, err := f.SetupLogging()
	if err != nil {
		return err
	}
	defer closer()

	w := cli.Stdout(ctx)
	symbol, side, qty, nprice, nstop, err := validateArgs(typ, symbol, side, quantity, price, stopPrice)
	if err != nil {
		slog.Error("invalid order arguments", "type", typ, "err", err)
		cmdutil.PrintResult(w, orders.Failed(err))
		return nil
	}

	client, err := f.NewClient()
	if err != nil {
		return err
	}

	clientOrderID := f.clientOrderID
	if len(clientOrderID) == 0 {
		clientOrderID = uuid.New().String()
	}

	fmt.Fprintf(w, "Placing %s %s order for %s %s on %s\n", side, typ, qty, symbol, client.ExchangeName())
	result := orders.New(client).PlaceOrderWithID(ctx, clientOrderID, symbol, side, typ, qty, nprice, nstop)
	cmdutil.PrintResult(w, result)
	return nil
}

// validateArgs parses and validates the command-line arguments for an order.
// Empty price or stopPrice strings are treated as absent.
func validateArgs(typ, symbol, side, quantity, price, stopPrice string) (string, string, decimal.Decimal, decimal.NullDecimal, decimal.NullDecimal, error) {
	var (
		qty   decimal.Decimal
		nullP decimal.NullDecimal
		nullS decimal.NullDecimal
		err   error
	)
	if typ, err = orders.ValidateOrderType(typ); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if symbol, err = orders.ValidateSymbol(symbol); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if side, err = orders.ValidateSide(side); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if qty, err = orders.ParseDecimal("quantity", quantity); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if qty, err = orders.ValidateQuantity(qty); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if len(price) != 0 {
		v, err := orders.ParseDecimal("price", price)
		if err != nil {
			return "", "", qty, nullP, nullS, err
		}
		nullP = decimal.NewNullDecimal(v)
	}
	if nullP, err = orders.ValidatePrice(nullP, typ); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	if len(stopPrice) != 0 {
		v, err := orders.ParseDecimal("stop price", stopPrice)
		if err != nil {
			return "", "", qty, nullP, nullS, err
		}
		nullS = decimal.NewNullDecimal(v)
	}
	if nullS, err = orders.ValidateStopPrice(nullS, typ); err != nil {
		return "", "", qty, nullP, nullS, err
	}
	return symbol, side, qty, nullP, nullS, nil
}
