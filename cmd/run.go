// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/openradar/go-radar"
	"github.com/openradar/go-radar/telemetry"
)

// CLI are the cli parameters for the radarinfo binary
type CLI struct {
	Files     []string         `arg:"" name:"file" help:"Radar files to identify." type:"existingfile"`
	Read      bool             `short:"r" help:"Decode the file with the registered readers instead of only identifying it."`
	Dump      bool             `short:"d" help:"Dump the decoded radar volume. Implies --read."`
	UseRsl    bool             `name:"use-rsl" help:"Prefer the legacy RSL reader for formats with a native reader."`
	Telemetry bool             `short:"T" optional:"" default:"false" help:"Print telemetry data to log after dispatch."`
	Verbose   bool             `short:"v" optional:"" help:"Verbose logging."`
	Version   kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run is the entrypoint into radarinfo as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Identify and read weather-radar data files"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *telemetry.Data) {
		if cli.Telemetry {
			logger.Info("dispatch finished", "telemetry", td)
		}
	}

	// process cli params
	cfg := radar.NewConfig(
		radar.WithLogger(logger),
		radar.WithPreferRSL(cli.UseRsl),
		radar.WithTelemetryHook(telemetryToLog),
	)

	if cli.Dump {
		cli.Read = true
	}

	if cli.Read {
		if err := readFiles(ctx, cli, cfg); err != nil {
			logger.Error("reading failed", "err", err)
			os.Exit(-1)
		}
		return
	}

	if err := identifyFiles(ctx, cli.Files, logger); err != nil {
		logger.Error("identification failed", "err", err)
		os.Exit(-1)
	}
}

// identifyFiles sniffs all files concurrently and prints one line per file.
func identifyFiles(ctx context.Context, files []string, logger *slog.Logger) error {
	results := make([]radar.Format, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			format, err := radar.DetermineFormat(name)
			if err != nil {
				return errors.Wrapf(err, "identify %s", name)
			}
			results[i] = format
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range files {
		fmt.Printf("%s: %s\n", name, results[i])
	}
	return nil
}

// readFiles dispatches each file to the registered readers sequentially,
// since decoding a volume is far heavier than sniffing a header.
func readFiles(ctx context.Context, cli CLI, cfg *radar.Config) error {
	for _, name := range cli.Files {
		volume, err := radar.Read(ctx, radar.DefaultReaders, name, cfg)
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		fmt.Printf("%s: %d sweeps, %d rays, %d gates, %d fields\n",
			name, volume.NSweeps, volume.NRays, volume.NGates, len(volume.Fields))
		if cli.Dump {
			spew.Fdump(os.Stdout, volume)
		}
	}
	return nil
}
