// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"errors"
	"fmt"
	"os"
)

const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
	EnvTestnet   = "BINANCE_TESTNET"
)

// ErrNoCredentials is returned when the api key or the secret is missing.
var ErrNoCredentials = errors.New("binance api credentials are missing")

type Credentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

// CredentialsFromEnv reads the api key and secret from the process
// environment. Missing values are left empty and reported by Check.
func CredentialsFromEnv() *Credentials {
	return &Credentials{
		Key:    os.Getenv(EnvAPIKey),
		Secret: os.Getenv(EnvAPISecret),
	}
}

func (v *Credentials) Check() error {
	if len(v.Key) == 0 {
		return fmt.Errorf("%s is not set: %w", EnvAPIKey, ErrNoCredentials)
	}
	if len(v.Secret) == 0 {
		return fmt.Errorf("%s is not set: %w", EnvAPISecret, ErrNoCredentials)
	}
	return nil
}
