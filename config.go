// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import (
	"context"
	"io"
	"log/slog"

	"github.com/openradar/go-radar/telemetry"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the
// configuration of a dispatch.
//
// The configuration holds the legacy-library preference, the opaque reader
// option bag, the logger and the telemetry hook. The default configuration
// prefers native readers, forwards no options, and discards logs and
// telemetry.
type Config struct {
	// preferRSL selects the legacy RSL reader for formats that are
	// supported both natively and by the RSL library
	preferRSL bool

	// readerOptions is forwarded verbatim to the selected reader
	readerOptions Options

	// logger stream for dispatch decisions
	logger logger

	// telemetryHook is a function to consume telemetry data after a
	// finished dispatch
	telemetryHook telemetry.TelemetryHook
}

// PreferRSL returns true if the legacy RSL reader should be preferred for
// formats that are also supported natively.
func (c *Config) PreferRSL() bool {
	return c.preferRSL
}

// ReaderOptions returns the option bag forwarded to the selected reader.
func (c *Config) ReaderOptions() Options {
	return c.readerOptions
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// TelemetryHook returns the telemetry hook, or a noop hook if none is set.
func (c *Config) TelemetryHook() telemetry.TelemetryHook {
	if c.telemetryHook == nil {
		return telemetry.NoopTelemetryHook
	}
	return c.telemetryHook
}

const (
	defaultPreferRSL = false // use native readers where both exist
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *telemetry.Data) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		preferRSL:     defaultPreferRSL,
		readerOptions: nil,
		logger:        defaultLogger,
		telemetryHook: defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithPreferRSL options pattern function to prefer the legacy RSL reader
// for formats that are supported both natively and by the RSL library.
// Formats only the RSL library supports always use the RSL reader,
// regardless of this setting.
func WithPreferRSL(prefer bool) ConfigOption {
	return func(c *Config) {
		c.preferRSL = prefer
	}
}

// WithReaderOption options pattern function to set a single forwarded
// reader option. The key and value are never inspected here.
func WithReaderOption(key string, value any) ConfigOption {
	return func(c *Config) {
		if c.readerOptions == nil {
			c.readerOptions = Options{}
		}
		c.readerOptions[key] = value
	}
}

// WithReaderOptions options pattern function to replace the whole forwarded
// option bag.
func WithReaderOptions(opts Options) ConfigOption {
	return func(c *Config) {
		c.readerOptions = opts
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithTelemetryHook options pattern function to set a hook that consumes
// the telemetry data of a finished dispatch.
func WithTelemetryHook(hook telemetry.TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
