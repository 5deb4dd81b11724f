// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/bvk/futuresbot/exchange"
)

// Client is a thin wrapper over the USDT-M futures client from the go-binance
// SDK. Connectivity, request signing and error decoding are all done by the
// SDK.
type Client struct {
	opts Options

	client *futures.Client
}

var _ exchange.Exchange = &Client{}

// New returns a client for the endpoint selected by the options. Endpoint
// selection is final for the lifetime of the client.
func New(creds *Credentials, opts *Options) (*Client, error) {
	if creds == nil {
		return nil, ErrNoCredentials
	}
	if err := creds.Check(); err != nil {
		slog.Error("could not create binance futures client", "err", err)
		return nil, err
	}
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()
	if err := opts.Check(); err != nil {
		return nil, err
	}

	fc := futures.NewClient(creds.Key, creds.Secret)
	fc.BaseURL = strings.TrimSuffix(opts.RestURL, "/")
	fc.HTTPClient = &http.Client{
		Timeout:   opts.HttpClientTimeout,
		Transport: &statusTransport{base: http.DefaultTransport},
	}

	c := &Client{
		opts:   *opts,
		client: fc,
	}
	if opts.Testnet {
		slog.Info("configured for binance futures testnet", "url", fc.BaseURL)
	} else {
		slog.Info("configured for binance futures mainnet", "url", fc.BaseURL)
	}
	return c, nil
}

func (c *Client) ExchangeName() string {
	if c.opts.Testnet {
		return "binance-futures-testnet"
	}
	return "binance-futures"
}

// BaseURL returns the REST endpoint used by the client.
func (c *Client) BaseURL() string {
	return c.client.BaseURL
}

// Ping checks connectivity to the futures api. Errors are logged and
// reported as false.
func (c *Client) Ping(ctx context.Context) bool {
	if err := c.client.NewPingService().Do(ctx); err != nil {
		slog.Error("could not ping binance futures api", "url", c.client.BaseURL, "err", err)
		return false
	}
	slog.Info("successfully pinged binance futures api", "url", c.client.BaseURL)
	return true
}

// ServerTime returns the exchange's current time.
func (c *Client) ServerTime(ctx context.Context) (exchange.RemoteTime, error) {
	ctx, rec := withStatusRecorder(ctx)
	ms, err := c.client.NewServerTimeService().Do(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get server time", "url", c.client.BaseURL, "status", rec.code, "err", err)
		}
		return exchange.RemoteTime{}, toExchangeError(err, rec.code)
	}
	return exchange.RemoteTimeFromMilli(ms), nil
}

// CreateOrder places a new futures order with one api call. The full result
// response type is requested so that market orders report their fills.
func (c *Client) CreateOrder(ctx context.Context, req *exchange.OrderRequest) (*exchange.Order, error) {
	svc := c.client.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(futures.SideType(req.Side)).
		Type(futures.OrderType(req.Type)).
		Quantity(req.Quantity.String()).
		NewOrderResponseType(futures.NewOrderRespTypeRESULT)
	if req.Price.Valid {
		svc.Price(req.Price.Decimal.String())
	}
	if req.StopPrice.Valid {
		svc.StopPrice(req.StopPrice.Decimal.String())
	}
	if req.TimeInForce != "" {
		svc.TimeInForce(futures.TimeInForceType(req.TimeInForce))
	}
	if req.ClientOrderID != "" {
		svc.NewClientOrderID(req.ClientOrderID)
	}

	ctx, rec := withStatusRecorder(ctx)
	s := time.Now()
	resp, err := svc.Do(ctx)
	if d := time.Since(s); d > c.opts.HttpClientTimeout {
		slog.Warn("create order request took longer than the http client timeout", "took", d, "timeout", c.opts.HttpClientTimeout)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not create order", "symbol", req.Symbol, "side", req.Side, "type", req.Type, "quantity", req.Quantity, "status", rec.code, "err", err)
		}
		return nil, toExchangeError(err, rec.code)
	}
	return toOrder(resp), nil
}

func toOrder(resp *futures.CreateOrderResponse) *exchange.Order {
	return &exchange.Order{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Side:          string(resp.Side),
		Type:          string(resp.Type),
		Status:        string(resp.Status),
		TimeInForce:   string(resp.TimeInForce),
		Price:         resp.Price,
		StopPrice:     resp.StopPrice,
		OrigQty:       resp.OrigQuantity,
		ExecutedQty:   resp.ExecutedQuantity,
		AvgPrice:      resp.AvgPrice,
		UpdateTime:    exchange.RemoteTimeFromMilli(resp.UpdateTime),
	}
}

// toExchangeError converts failed responses into *exchange.APIError values
// carrying the HTTP status code. Api errors decoded by the sdk also provide the
// exchange's error code and message. Other errors are returned unchanged.
func toExchangeError(err error, status int) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) && (apiErr.Code != 0 || apiErr.Message != "") {
		return &exchange.APIError{
			Code:      int64(status),
			ErrorCode: apiErr.Code,
			Message:   apiErr.Message,
		}
	}
	if status >= http.StatusBadRequest {
		return &exchange.APIError{
			Code:    int64(status),
			Message: http.StatusText(status),
		}
	}
	return err
}
