// Copyright (c) 2025 BVK Chaitanya

// Package logutil configures the process-wide log/slog logger to write
// human-readable messages to the console and detailed messages to a size
// rotated log file.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// LogFile is the path to the log file. File logging is disabled when
	// empty.
	LogFile string

	// MaxSizeMB is the size limit in megabytes before the log file is rotated.
	MaxSizeMB int

	// MaxAgeDays is the number of days to retain rotated log files.
	MaxAgeDays int

	// NoCompress when true keeps rotated log files uncompressed.
	NoCompress bool

	// Console receives the console log messages. Defaults to os.Stderr.
	Console io.Writer

	ConsoleLevel slog.Level

	FileLevel slog.Level
}

func DefaultOptions() *Options {
	return &Options{
		LogFile:      filepath.Join("logs", "trading_bot.log"),
		ConsoleLevel: slog.LevelInfo,
		FileLevel:    slog.LevelDebug,
	}
}

func (v *Options) setDefaults() {
	if v.MaxSizeMB == 0 {
		v.MaxSizeMB = 10
	}
	if v.MaxAgeDays == 0 {
		v.MaxAgeDays = 7
	}
	if v.Console == nil {
		v.Console = os.Stderr
	}
}

// Setup installs a default slog logger as per the options. Returned function
// must be called to close the log file before the process exits.
func Setup(opts *Options) (func() error, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts.setDefaults()

	handlers := []slog.Handler{
		slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			AddSource: true,
			Level:     opts.ConsoleLevel,
		}),
	}

	closer := func() error { return nil }
	if len(opts.LogFile) != 0 {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("could not create log directory for %q: %w", opts.LogFile, err)
		}
		lj := &lumberjack.Logger{
			Filename: opts.LogFile,
			MaxSize:  opts.MaxSizeMB,
			MaxAge:   opts.MaxAgeDays,
			Compress: !opts.NoCompress,
		}
		handlers = append(handlers, slog.NewJSONHandler(lj, &slog.HandlerOptions{
			AddSource: true,
			Level:     opts.FileLevel,
		}))
		closer = lj.Close
	}

	slog.SetDefault(slog.New(newTeeHandler(handlers...)))
	slog.Debug("logging initialized", "log_file", opts.LogFile)
	return closer, nil
}
