// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar_test

import (
	"testing"

	"github.com/openradar/go-radar"
)

func TestSniffHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   radar.Format
	}{
		{
			name:   "MDV",
			header: []byte{0x00, 0x00, 0x03, 0xf8, 0x00, 0x00, 0x37, 0x3e, 0x00, 0x00, 0x00, 0x01},
			want:   radar.FormatMDV,
		},
		{
			name:   "NetCDF classic",
			header: []byte("CDF\x01        "),
			want:   radar.FormatNetCDF3,
		},
		{
			name:   "NetCDF4 in HDF5 container",
			header: []byte{0x89, 0x48, 0x44, 0x46, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x00},
			want:   radar.FormatNetCDF4,
		},
		{
			name:   "WSR88D legacy archive",
			header: []byte("ARCHIVE2.001"),
			want:   radar.FormatWSR88D,
		},
		{
			name:   "WSR88D volume",
			header: []byte("AR2V0006.501"),
			want:   radar.FormatWSR88D,
		},
		{
			name:   "UF at offset 0",
			header: []byte("UF          "),
			want:   radar.FormatUF,
		},
		{
			name:   "UF at offset 2",
			header: []byte("\x00\x00UF        "),
			want:   radar.FormatUF,
		},
		{
			name:   "UF at offset 4",
			header: []byte("\x00\x00\x00\x00UF      "),
			want:   radar.FormatUF,
		},
		{
			name:   "DORADE sweep block",
			header: []byte("SSWB        "),
			want:   radar.FormatDORADE,
		},
		{
			name:   "DORADE volume descriptor",
			header: []byte("VOLD        "),
			want:   radar.FormatDORADE,
		},
		{
			name:   "DORADE comment",
			header: []byte("COMM        "),
			want:   radar.FormatDORADE,
		},
		{
			name:   "LASSEN",
			header: []byte("\x00\x00\x00\x00SUNRISE "),
			want:   radar.FormatLASSEN,
		},
		{
			name:   "RSL",
			header: []byte("RSL         "),
			want:   radar.FormatRSL,
		},
		{
			name:   "HDF4",
			header: []byte{0x0e, 0x03, 0x13, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want:   radar.FormatHDF4,
		},
		{
			name:   "Sigmet structure header",
			header: []byte("\x1b\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"),
			want:   radar.FormatSigmet,
		},
		{
			name:   "bzip2",
			header: []byte("BZh91AY&SY  "),
			want:   radar.FormatBzip2,
		},
		{
			name:   "unrecognized content",
			header: []byte("not a radar "),
			want:   radar.FormatUnknown,
		},
		{
			name:   "single unmatched byte",
			header: []byte("X"),
			want:   radar.FormatUnknown,
		},
		{
			name:   "empty header",
			header: nil,
			want:   radar.FormatUnknown,
		},
		{
			name:   "truncated HDF5 signature",
			header: []byte{0x89, 0x48, 0x44},
			want:   radar.FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := radar.SniffHeader(tt.header); got != tt.want {
				t.Errorf("SniffHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSniffHeaderPrecedence crafts headers that satisfy more than one
// signature and checks that the first entry in the table wins.
func TestSniffHeaderPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   radar.Format
	}{
		{
			// bytes 0:4 are a DORADE block, bytes 4:6 are "UF"; the UF
			// check runs first
			name:   "UF inside DORADE block",
			header: []byte("SSWBUF      "),
			want:   radar.FormatUF,
		},
		{
			// bytes 2:4 are "UF", bytes 4:11 are "SUNRISE"
			name:   "UF before LASSEN",
			header: []byte("\x00\x00UFSUNRISE "),
			want:   radar.FormatUF,
		},
		{
			// "RSL" prefix is not mistaken for any check listed after it
			name:   "RSL prefix",
			header: []byte("RSL v1.44   "),
			want:   radar.FormatRSL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := radar.SniffHeader(tt.header); got != tt.want {
				t.Errorf("SniffHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format radar.Format
		want   string
	}{
		{radar.FormatMDV, "MDV"},
		{radar.FormatNetCDF3, "NETCDF3"},
		{radar.FormatNetCDF4, "NETCDF4"},
		{radar.FormatWSR88D, "WSR88D"},
		{radar.FormatUF, "UF"},
		{radar.FormatDORADE, "DORADE"},
		{radar.FormatLASSEN, "LASSEN"},
		{radar.FormatRSL, "RSL"},
		{radar.FormatHDF4, "HDF4"},
		{radar.FormatSigmet, "SIGMET"},
		{radar.FormatBzip2, "BZ2"},
		{radar.FormatUnknown, "UNKNOWN"},
		{radar.Format(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBzip2(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{
			name:   "BZh1",
			header: []byte("BZh1"),
			want:   true,
		},
		{
			name:   "BZh9",
			header: []byte("BZh9"),
			want:   true,
		},
		{
			name:   "Not Bzip2",
			header: []byte("Not Bzip2"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := radar.IsBzip2(tt.header); got != tt.want {
				t.Errorf("IsBzip2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUF(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{
			name:   "offset 0",
			header: []byte("UF"),
			want:   true,
		},
		{
			name:   "offset 2",
			header: []byte{0x00, 0x00, 'U', 'F'},
			want:   true,
		},
		{
			name:   "offset 4",
			header: []byte{0x00, 0x00, 0x00, 0x00, 'U', 'F'},
			want:   true,
		},
		{
			name:   "odd offset does not match",
			header: []byte{0x00, 'U', 'F'},
			want:   false,
		},
		{
			name:   "too short",
			header: []byte("U"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := radar.IsUF(tt.header); got != tt.want {
				t.Errorf("IsUF() = %v, want %v", got, tt.want)
			}
		})
	}
}
