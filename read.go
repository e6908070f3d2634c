// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/openradar/go-radar/telemetry"
)

// now is overloaded for testing
var now = time.Now

// Read determines the format of the named radar file and decodes it with
// the matching reader from readers, returning whatever that reader returns.
//
// Files inside a bzip2 container are sniffed a second time through a
// decompressor, so the compression is invisible to the caller; the selected
// reader performs its own decompression. NetCDF-family files are opened a
// second time to inspect their global attributes, since CF/Radial and
// NEXRAD CDM share the same container format. Sigmet files route to the
// legacy RSL reader only when [WithPreferRSL] is set; the formats that only
// the RSL library supports (UF, HDF4, RSL, DORADE, LASSEN) always route to
// it and are unsupported when no RSL reader is installed.
//
// Errors from the selected reader are propagated untranslated. A format
// with no dispatchable reader yields an [UnsupportedFormatError].
func Read(ctx context.Context, readers ReaderSet, name string, cfg *Config) (*Radar, error) {

	// prepare telemetry capturing
	td := &telemetry.Data{}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureDispatchDuration(td, now())

	format, err := DetermineFormat(name)
	if err != nil {
		return nil, handleError(cfg, td, "cannot determine file format", err)
	}

	// bzip2, look through the container and see if we can determine the type
	if format == FormatBzip2 {
		format, err = sniffBzip2(name)
		if err != nil {
			return nil, handleError(cfg, td, "cannot sniff bzip2 content", err)
		}
		td.CompressedContainer = true
	}
	td.DetectedFormat = format.String()
	cfg.Logger().Debug("detected format", "file", name, "format", format)

	var read ReadFunc
	var route string
	switch format {

	// natively supported formats
	case FormatMDV:
		read, route = readers.MDV, "mdv"
	case FormatNetCDF3, FormatNetCDF4:
		cdm, err := isCDMDataset(name)
		if err != nil {
			return nil, handleError(cfg, td, "cannot classify dataset", err)
		}
		if cdm { // NEXRAD CDM
			read, route = readers.NexradCDM, "nexrad_cdm"
		} else { // CF/Radial
			read, route = readers.CFRadial, "cfradial"
		}
	case FormatWSR88D:
		read, route = readers.NexradArchive, "nexrad_archive"

	// supported both natively and by the RSL library
	case FormatSigmet:
		if cfg.PreferRSL() && readers.HasRSL() {
			read, route = readers.RSL, "rsl"
		} else {
			read, route = readers.Sigmet, "sigmet"
		}

	// RSL only supported file formats
	case FormatUF, FormatHDF4, FormatRSL, FormatDORADE, FormatLASSEN:
		if readers.HasRSL() {
			read, route = readers.RSL, "rsl"
		}
	}

	if read == nil {
		err := &UnsupportedFormatError{Format: format}
		td.DispatchErrors++
		td.LastDispatchError = err
		return nil, err
	}

	td.ReaderUsed = route
	cfg.Logger().Debug("dispatching", "file", name, "reader", route)

	// reader errors pass through untranslated
	volume, err := read(ctx, name, cfg.ReaderOptions())
	if err != nil {
		td.DispatchErrors++
		td.LastDispatchError = err
		return nil, err
	}
	return volume, nil
}

// sniffBzip2 sniffs the content inside a bzip2 compressed file.
func sniffBzip2(name string) (Format, error) {
	f, err := os.Open(name)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	src, err := decompressBz2Stream(f)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot start decompression: %w", err)
	}

	return DetermineFormatReader(src)
}

// handleError increases the error counter, sets the latest error and logs it.
func handleError(cfg *Config, td *telemetry.Data, msg string, err error) error {
	td.DispatchErrors++
	td.LastDispatchError = fmt.Errorf("%s: %w", msg, err)
	cfg.Logger().Error(msg, "error", err)
	return td.LastDispatchError
}

func captureDispatchDuration(td *telemetry.Data, start time.Time) {
	td.DispatchDuration = time.Since(start)
}
