// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/bvk/futuresbot/exchange"
	"github.com/bvk/futuresbot/orders"
	"github.com/shopspring/decimal"
)

var testingCreds = &Credentials{Key: "test-key", Secret: "test-secret"}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(testingCreds, &Options{Testnet: true, RestURL: srv.URL, HttpClientTimeout: 5 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewMissingCredentials(t *testing.T) {
	for _, creds := range []*Credentials{nil, {}, {Key: "key"}, {Secret: "secret"}} {
		if _, err := New(creds, nil); !errors.Is(err, ErrNoCredentials) {
			t.Fatalf("credentials %#v: want ErrNoCredentials, got %v", creds, err)
		}
	}
}

func TestEndpointSelection(t *testing.T) {
	testnet, err := New(testingCreds, &Options{Testnet: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := testnet.BaseURL(); got != TestnetURL.String() {
		t.Fatalf("want %s, got %s", TestnetURL.String(), got)
	}

	mainnet, err := New(testingCreds, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := mainnet.BaseURL(); got != MainnetURL.String() {
		t.Fatalf("want %s, got %s", MainnetURL.String(), got)
	}
	if testnet.ExchangeName() == mainnet.ExchangeName() {
		t.Fatalf("testnet and mainnet clients must have different names")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	testcases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"True":  true,
		"false": false,
		"1":     false,
		"":      false,
	}
	for value, want := range testcases {
		t.Setenv(EnvTestnet, value)
		if got := OptionsFromEnv().Testnet; got != want {
			t.Fatalf("%s=%q: want %t, got %t", EnvTestnet, value, want, got)
		}
	}

	// Testnet is the default when the variable is not set at all.
	t.Setenv(EnvTestnet, "false")
	if err := os.Unsetenv(EnvTestnet); err != nil {
		t.Fatal(err)
	}
	if !OptionsFromEnv().Testnet {
		t.Fatalf("want testnet when %s is unset", EnvTestnet)
	}
	c, err := New(testingCreds, OptionsFromEnv())
	if err != nil {
		t.Fatal(err)
	}
	if got := c.BaseURL(); got != TestnetURL.String() {
		t.Fatalf("want %s, got %s", TestnetURL.String(), got)
	}
}

func TestPing(t *testing.T) {
	ctx := context.Background()

	ok := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fapi/v1/ping" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "{}")
	}))
	if !ok.Ping(ctx) {
		t.Fatalf("want true, got false")
	}

	failing := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"code":-1001,"msg":"Internal error; unable to process your request. Please try again."}`)
	}))
	if failing.Ping(ctx) {
		t.Fatalf("want false, got true")
	}

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	unreachable, err := New(testingCreds, &Options{RestURL: srv.URL, HttpClientTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if unreachable.Ping(ctx) {
		t.Fatalf("want false, got true")
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	var form url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/fapi/v1/order" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-MBX-APIKEY") != testingCreds.Key {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"code":-2015,"msg":"Invalid API-key, IP, or permissions for action."}`)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		form = r.Form
		io.WriteString(w, `{"orderId":1,"clientOrderId":"abc","symbol":"BTCUSDT","side":"BUY","type":"LIMIT","status":"NEW","timeInForce":"GTC","price":"50000","origQty":"0.010","executedQty":"0","avgPrice":"0.00","updateTime":1700000000000}`)
	}))

	req := &exchange.OrderRequest{
		Symbol:        "BTCUSDT",
		Side:          exchange.SideBuy,
		Type:          exchange.TypeLimit,
		Quantity:      decimal.RequireFromString("0.01"),
		Price:         decimal.NewNullDecimal(decimal.NewFromInt(50000)),
		TimeInForce:   exchange.GoodTillCancel,
		ClientOrderID: "abc",
	}
	order, err := c.CreateOrder(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range req.Params() {
		if got := form.Get(k); got != v {
			t.Fatalf("request param %q: want %q, got %q", k, v, got)
		}
	}
	if form.Get("signature") == "" {
		t.Fatalf("request is not signed")
	}
	if order.OrderID != 1 || order.Status != "NEW" || order.OrigQty != "0.010" || order.AvgPrice != "0.00" {
		t.Fatalf("unexpected order %#v", order)
	}
	if order.UpdateTime.UnixMilli() != 1700000000000 {
		t.Fatalf("want update time 1700000000000, got %d", order.UpdateTime.UnixMilli())
	}
}

func TestCreateOrderAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"code":-1013,"msg":"Invalid quantity"}`)
	}))

	req := &exchange.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     exchange.SideSell,
		Type:     exchange.TypeMarket,
		Quantity: decimal.RequireFromString("0.0000001"),
	}
	_, err := c.CreateOrder(context.Background(), req)
	var apiErr *exchange.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *exchange.APIError, got %T (%v)", err, err)
	}
	if apiErr.Code != http.StatusBadRequest || apiErr.ErrorCode != -1013 || apiErr.Message != "Invalid quantity" {
		t.Fatalf("unexpected api error %#v", apiErr)
	}

	result := orders.New(c).PlaceOrder(context.Background(), "BTCUSDT", "SELL", "MARKET", req.Quantity, decimal.NullDecimal{}, decimal.NullDecimal{})
	if result.Failure == nil || result.Failure.Code != 400 || result.Failure.Message != "Invalid quantity" {
		t.Fatalf("want failure with code 400, got %#v", result.Failure)
	}
	if got, want := result.Summary(), "FAILED: Invalid quantity (code 400, error -1013)"; got != want {
		t.Fatalf("want summary %q, got %q", want, got)
	}
}

func TestCreateOrderNonJSONError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html><body><h1>502 Bad Gateway</h1></body></html>")
	}))

	result := orders.New(c).PlaceOrder(context.Background(), "BTCUSDT", "BUY", "MARKET", decimal.RequireFromString("0.01"), decimal.NullDecimal{}, decimal.NullDecimal{})
	if result.OK() || result.Failure == nil {
		t.Fatalf("want a failure result")
	}
	if !result.Failure.HasCode || result.Failure.Code != http.StatusBadGateway || result.Failure.ErrorCode != 0 {
		t.Fatalf("want status 502 without an error code, got %#v", result.Failure)
	}
	if got, want := result.Summary(), "FAILED: Bad Gateway (code 502)"; got != want {
		t.Fatalf("want summary %q, got %q", want, got)
	}
}

func TestCreateOrderTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c, err := New(testingCreds, &Options{RestURL: srv.URL, HttpClientTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	result := orders.New(c).PlaceOrder(context.Background(), "BTCUSDT", "BUY", "MARKET", decimal.RequireFromString("0.01"), decimal.NullDecimal{}, decimal.NullDecimal{})
	if result.Failure == nil || result.Failure.HasCode {
		t.Fatalf("want a failure without a status code, got %#v", result.Failure)
	}
}

func TestServerTime(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"serverTime":1700000000123}`)
	}))
	ts, err := c.ServerTime(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ts.UnixMilli() != 1700000000123 {
		t.Fatalf("want 1700000000123, got %d", ts.UnixMilli())
	}
}
