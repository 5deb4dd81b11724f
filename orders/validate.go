// Copyright (c) 2025 BVK Chaitanya

package orders

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/bvk/futuresbot/exchange"
	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`^[A-Z0-9]{3,12}USDT$`)

// ValidateSymbol returns the upper-cased symbol if it names a USDT-M futures
// pair.
func ValidateSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(symbol)
	if !symbolRe.MatchString(symbol) {
		slog.Warn("invalid symbol format", "symbol", symbol)
		return "", fmt.Errorf("invalid symbol %q: must be a valid USDT pair (e.g., BTCUSDT): %w", symbol, os.ErrInvalid)
	}
	return symbol, nil
}

func ValidateSide(side string) (string, error) {
	side = strings.ToUpper(side)
	if side != exchange.SideBuy && side != exchange.SideSell {
		slog.Warn("invalid order side", "side", side)
		return "", fmt.Errorf("invalid side %q: side must be BUY or SELL: %w", side, os.ErrInvalid)
	}
	return side, nil
}

func ValidateOrderType(typ string) (string, error) {
	typ = strings.ToUpper(typ)
	switch typ {
	case exchange.TypeMarket, exchange.TypeLimit, exchange.TypeStopMarket:
		return typ, nil
	}
	slog.Warn("invalid order type", "type", typ)
	return "", fmt.Errorf("invalid order type %q: order type must be MARKET, LIMIT, or STOP_MARKET: %w", typ, os.ErrInvalid)
}

// ValidateQuantity returns the input unchanged if it is positive.
func ValidateQuantity(qty decimal.Decimal) (decimal.Decimal, error) {
	if !qty.IsPositive() {
		slog.Warn("invalid quantity", "quantity", qty)
		return decimal.Zero, fmt.Errorf("invalid quantity %s: quantity must be greater than 0: %w", qty, os.ErrInvalid)
	}
	return qty, nil
}

// ValidatePrice checks that LIMIT orders carry a positive price. Prices for
// other order types are returned as is.
func ValidatePrice(price decimal.NullDecimal, typ string) (decimal.NullDecimal, error) {
	if typ != exchange.TypeLimit {
		return price, nil
	}
	if !price.Valid || !price.Decimal.IsPositive() {
		slog.Warn("invalid price for limit order", "price", price)
		return decimal.NullDecimal{}, fmt.Errorf("invalid price: price must be greater than 0 for LIMIT orders: %w", os.ErrInvalid)
	}
	return price, nil
}

// ValidateStopPrice checks that STOP_MARKET orders carry a positive stop
// price. Stop prices for other order types are returned as is.
func ValidateStopPrice(stop decimal.NullDecimal, typ string) (decimal.NullDecimal, error) {
	if typ != exchange.TypeStopMarket {
		return stop, nil
	}
	if !stop.Valid || !stop.Decimal.IsPositive() {
		slog.Warn("invalid stop price for stop-market order", "stop_price", stop)
		return decimal.NullDecimal{}, fmt.Errorf("invalid stop price: stop price must be greater than 0 for STOP_MARKET orders: %w", os.ErrInvalid)
	}
	return stop, nil
}

// ParseDecimal parses a command-line value for the named parameter.
func ParseDecimal(name, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must be a number: %w", name, s, os.ErrInvalid)
	}
	return v, nil
}
