// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

var (
	MainnetURL = url.URL{
		Scheme: "https",
		Host:   "fapi.binance.com",
	}

	TestnetURL = url.URL{
		Scheme: "https",
		Host:   "testnet.binancefuture.com",
	}
)

type Options struct {
	// Testnet selects the futures testnet endpoint instead of production.
	Testnet bool

	// RestURL overrides the endpoint picked by the Testnet field when
	// non-empty.
	RestURL string

	// Timeout to use for the HTTP requests.
	HttpClientTimeout time.Duration
}

// OptionsFromEnv returns options with the Testnet field taken from the
// BINANCE_TESTNET environment variable. Testnet is the default; only a
// case-insensitive "true" value keeps it enabled when the variable is set.
func OptionsFromEnv() *Options {
	opts := &Options{Testnet: true}
	if v, ok := os.LookupEnv(EnvTestnet); ok {
		opts.Testnet = strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return opts
}

func (v *Options) setDefaults() {
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 30 * time.Second
	}
	if v.RestURL == "" {
		if v.Testnet {
			v.RestURL = TestnetURL.String()
		} else {
			v.RestURL = MainnetURL.String()
		}
	}
}

// Check validates the options.
func (v *Options) Check() error {
	if v.HttpClientTimeout < 0 {
		return fmt.Errorf("http client timeout cannot be negative")
	}
	u, err := url.Parse(v.RestURL)
	if err != nil {
		return fmt.Errorf("could not parse rest url %q: %w", v.RestURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("rest url %q must use http or https", v.RestURL)
	}
	return nil
}
