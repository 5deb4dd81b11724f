// Copyright (c) 2025 BVK Chaitanya

// Package orders turns validated command-line arguments into futures order
// requests and reports the outcome of placing them.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bvk/futuresbot/exchange"
	"github.com/shopspring/decimal"
)

type Manager struct {
	exchange exchange.Exchange
}

func New(ex exchange.Exchange) *Manager {
	return &Manager{exchange: ex}
}

// BuildRequest assembles the order request for the given parameters. Price
// must be present exactly when the order type is LIMIT, in which case the
// order is marked good-till-canceled. Stop price must be present exactly
// when the order type is STOP_MARKET.
func BuildRequest(symbol, side, typ string, qty decimal.Decimal, price, stopPrice decimal.NullDecimal) (*exchange.OrderRequest, error) {
	req := &exchange.OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     typ,
		Quantity: qty,
	}

	switch typ {
	case exchange.TypeLimit:
		if !price.Valid {
			return nil, fmt.Errorf("price is required for LIMIT orders: %w", os.ErrInvalid)
		}
		req.Price = price
		req.TimeInForce = exchange.GoodTillCancel
	case exchange.TypeStopMarket:
		if !stopPrice.Valid {
			return nil, fmt.Errorf("stop price is required for STOP_MARKET orders: %w", os.ErrInvalid)
		}
		req.StopPrice = stopPrice
	case exchange.TypeMarket:
	default:
		return nil, fmt.Errorf("unsupported order type %q: %w", typ, os.ErrInvalid)
	}

	if price.Valid && typ != exchange.TypeLimit {
		return nil, fmt.Errorf("price is only allowed for LIMIT orders: %w", os.ErrInvalid)
	}
	if stopPrice.Valid && typ != exchange.TypeStopMarket {
		return nil, fmt.Errorf("stop price is only allowed for STOP_MARKET orders: %w", os.ErrInvalid)
	}
	return req, nil
}

// PlaceOrder builds the order request and sends it to the exchange with
// exactly one call. It never returns an error; request and exchange failures
// are reported through the result.
func (m *Manager) PlaceOrder(ctx context.Context, symbol, side, typ string, qty decimal.Decimal, price, stopPrice decimal.NullDecimal) *Result {
	return m.PlaceOrderWithID(ctx, "", symbol, side, typ, qty, price, stopPrice)
}

// PlaceOrderWithID is like PlaceOrder, but also tags the order with a
// client-chosen order id when clientOrderID is non-empty.
func (m *Manager) PlaceOrderWithID(ctx context.Context, clientOrderID, symbol, side, typ string, qty decimal.Decimal, price, stopPrice decimal.NullDecimal) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unexpected panic placing order", "symbol", symbol, "type", typ, "panic", r)
			result = Failed(fmt.Errorf("%v", r))
		}
	}()

	req, err := BuildRequest(symbol, side, typ, qty, price, stopPrice)
	if err != nil {
		slog.Error("could not build order request", "symbol", symbol, "type", typ, "err", err)
		return Failed(err)
	}
	req.ClientOrderID = clientOrderID

	slog.Info(fmt.Sprintf("sending %s order request", typ), "params", req.Params(), "exchange", m.exchange.ExchangeName())

	order, err := m.exchange.CreateOrder(ctx, req)
	if err != nil {
		var apiErr *exchange.APIError
		if errors.As(err, &apiErr) {
			slog.Error("exchange rejected the order", "status", apiErr.Code, "code", apiErr.ErrorCode, "message", apiErr.Message)
		} else {
			slog.Error("unexpected error placing order", "err", err)
		}
		return Failed(err)
	}
	slog.Info("order placed successfully", "order_id", order.OrderID, "status", order.Status)
	return &Result{Order: order}
}
