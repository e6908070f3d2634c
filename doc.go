// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

// Package radar identifies the binary format of a weather-radar data file
// from its leading bytes and dispatches to a format-specific reader.
//
// The format is determined by matching the first bytes of the file against a
// fixed, ordered table of signatures. [DetermineFormat] performs the match
// for a file on disk, [DetermineFormatReader] for an open stream. [Read]
// layers dispatch on top: it sniffs the file, transparently looks through a
// bzip2 container, disambiguates NetCDF-family files by their global
// attributes, and hands the file to the matching reader from a [ReaderSet].
//
// Decoding is out of scope. Readers are external collaborators; this package
// never inspects the radar volume they return. Configuration is done using
// [Config] in the functional option style, and telemetry data about each
// dispatch is captured using the telemetry package.
package radar
