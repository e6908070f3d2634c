// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import "bytes"

// Format is the detected file format of a radar data file.
type Format int

const (
	// FormatUnknown is returned when no signature matches. It is a normal
	// result of sniffing, not an error.
	FormatUnknown Format = iota
	FormatMDV
	FormatNetCDF3
	FormatNetCDF4
	FormatWSR88D
	FormatUF
	FormatDORADE
	FormatLASSEN
	FormatRSL
	FormatHDF4
	FormatSigmet
	FormatBzip2
)

// String returns the historical label for the format, as used in error
// messages and logs.
func (f Format) String() string {
	switch f {
	case FormatMDV:
		return "MDV"
	case FormatNetCDF3:
		return "NETCDF3"
	case FormatNetCDF4:
		return "NETCDF4"
	case FormatWSR88D:
		return "WSR88D"
	case FormatUF:
		return "UF"
	case FormatDORADE:
		return "DORADE"
	case FormatLASSEN:
		return "LASSEN"
	case FormatRSL:
		return "RSL"
	case FormatHDF4:
		return "HDF4"
	case FormatSigmet:
		return "SIGMET"
	case FormatBzip2:
		return "BZ2"
	default:
		return "UNKNOWN"
	}
}

// headerCheck is a function that checks if the given header matches the
// expected magic bytes of a format.
type headerCheck func([]byte) bool

type knownFormat struct {
	Format      Format
	HeaderCheck headerCheck
	MagicBytes  [][]byte
	Offsets     []int
}

// knownFormats is the ordered signature table consulted by SniffHeader. The
// order is significant: checks run top to bottom and the first match wins,
// so e.g. an "RSL" prefix is claimed before the HDF4 and SIGMET checks get
// a chance to run.
var knownFormats = []knownFormat{
	{Format: FormatMDV, HeaderCheck: IsMDV, MagicBytes: magicBytesMDV},
	{Format: FormatNetCDF3, HeaderCheck: IsNetCDF3, MagicBytes: magicBytesNetCDF3},
	{Format: FormatNetCDF4, HeaderCheck: IsNetCDF4, MagicBytes: magicBytesHDF5},
	{Format: FormatWSR88D, HeaderCheck: IsWSR88D, MagicBytes: magicBytesWSR88D},
	{Format: FormatUF, HeaderCheck: IsUF, MagicBytes: magicBytesUF, Offsets: offsetsUF},
	{Format: FormatDORADE, HeaderCheck: IsDORADE, MagicBytes: magicBytesDORADE},
	{Format: FormatLASSEN, HeaderCheck: IsLASSEN, MagicBytes: magicBytesLASSEN, Offsets: []int{offsetLASSEN}},
	{Format: FormatRSL, HeaderCheck: IsRSL, MagicBytes: magicBytesRSL},
	{Format: FormatHDF4, HeaderCheck: IsHDF4, MagicBytes: magicBytesHDF4},
	{Format: FormatSigmet, HeaderCheck: IsSigmet, MagicBytes: magicBytesSigmet},
	{Format: FormatBzip2, HeaderCheck: IsBzip2, MagicBytes: magicBytesBzip2},
}

// sniffHeaderLength is the number of leading bytes needed to run every
// check in the signature table.
var sniffHeaderLength int

// init calculates the maximum header length of all known formats
func init() {
	for _, kf := range knownFormats {
		offsets := kf.Offsets
		if len(offsets) == 0 {
			offsets = []int{0}
		}
		for _, off := range offsets {
			for _, mb := range kf.MagicBytes {
				if len(mb)+off > sniffHeaderLength {
					sniffHeaderLength = len(mb) + off
				}
			}
		}
	}
}

// SniffHeader classifies an already-read file prefix against the signature
// table. A header shorter than a signature simply fails to match it, so a
// truncated or empty prefix yields FormatUnknown.
func SniffHeader(header []byte) Format {
	for _, kf := range knownFormats {
		if kf.HeaderCheck(header) {
			return kf.Format
		}
	}
	return FormatUnknown
}

func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	// check all possible magic bytes until match is found
	for _, mb := range magicBytes {
		// check if header is long enough
		if offset+len(mb) > len(data) {
			continue
		}

		// check for byte match
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}

	// no match found
	return false
}
