// Copyright (c) 2023 BVK Chaitanya

package cmdutil

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bvk/futuresbot/binance"
	"github.com/bvk/futuresbot/envfile"
	"github.com/bvk/futuresbot/logutil"
)

// ClientFlags holds the flags common to all commands that talk to the futures
// exchange.
type ClientFlags struct {
	EnvFile     string
	RestURL     string
	LogFile     string
	HTTPTimeout time.Duration
	Debug       bool
}

func (cf *ClientFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&cf.EnvFile, "env-file", ".env", "name of the env file searched in the current and parent directories (empty to disable)")
	fset.StringVar(&cf.RestURL, "rest-url", "", "overrides the futures api endpoint selected by BINANCE_TESTNET")
	fset.StringVar(&cf.LogFile, "log-file", filepath.Join("logs", "trading_bot.log"), "path to the log file (empty to disable)")
	fset.DurationVar(&cf.HTTPTimeout, "http-timeout", 30*time.Second, "http client timeout")
	fset.BoolVar(&cf.Debug, "debug", false, "when true, debug messages are also logged to the console")
}

// SetupLogging installs the process-wide logger. Returned function closes the
// log file.
func (cf *ClientFlags) SetupLogging() (func() error, error) {
	opts := logutil.DefaultOptions()
	opts.LogFile = cf.LogFile
	if cf.Debug {
		opts.ConsoleLevel = slog.LevelDebug
	}
	return logutil.Setup(opts)
}

// LoadEnv loads the env file, if one is found, into the process environment.
// Variables that are already set are not overwritten.
func (cf *ClientFlags) LoadEnv() error {
	if len(cf.EnvFile) == 0 {
		return nil
	}
	fpath, err := envfile.UpdateEnv(cf.EnvFile, envfile.SearchCurrentDir(true /* searchParentDirs */))
	if err != nil {
		return fmt.Errorf("could not load env file %q: %w", cf.EnvFile, err)
	}
	if len(fpath) == 0 {
		slog.Debug("no env file was found", "name", cf.EnvFile)
	}
	return nil
}

// NewClient creates the futures exchange client from the environment and the
// flags. Missing credentials are reported as binance.ErrNoCredentials.
func (cf *ClientFlags) NewClient() (*binance.Client, error) {
	if err := cf.LoadEnv(); err != nil {
		return nil, err
	}
	creds := binance.CredentialsFromEnv()
	if err := creds.Check(); err != nil {
		return nil, fmt.Errorf("set %s and %s in the environment or the env file: %w", binance.EnvAPIKey, binance.EnvAPISecret, err)
	}
	opts := binance.OptionsFromEnv()
	opts.RestURL = cf.RestURL
	opts.HttpClientTimeout = cf.HTTPTimeout
	if cf.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("http timeout must be positive: %w", os.ErrInvalid)
	}
	client, err := binance.New(creds, opts)
	if err != nil {
		if errors.Is(err, binance.ErrNoCredentials) {
			return nil, err
		}
		return nil, fmt.Errorf("could not create futures client: %w", err)
	}
	return client, nil
}
