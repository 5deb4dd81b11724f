// Copyright (c) 2025 BVK Chaitanya

package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	TypeMarket     = "MARKET"
	TypeLimit      = "LIMIT"
	TypeStopMarket = "STOP_MARKET"

	// GoodTillCancel keeps an order open until it is filled or canceled.
	GoodTillCancel = "GTC"
)

// OrderRequest holds the parameters for a new futures order. Optional fields
// are left empty (or invalid) when they don't apply to the order type.
type OrderRequest struct {
	Symbol string
	Side   string
	Type   string

	Quantity decimal.Decimal

	Price     decimal.NullDecimal
	StopPrice decimal.NullDecimal

	TimeInForce string

	ClientOrderID string
}

// Order is the exchange's response for a new order. Numeric fields are kept
// as the exchange formatted them.
type Order struct {
	OrderID       int64
	ClientOrderID string

	Symbol string
	Side   string
	Type   string
	Status string

	TimeInForce string

	Price       string
	StopPrice   string
	OrigQty     string
	ExecutedQty string
	AvgPrice    string

	UpdateTime RemoteTime
}

type Exchange interface {
	ExchangeName() string

	// Ping reports whether the exchange is reachable.
	Ping(ctx context.Context) bool

	// CreateOrder sends exactly one order creation request. Failures reported
	// by the exchange are returned as *APIError values.
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)
}
