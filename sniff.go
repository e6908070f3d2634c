// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import (
	"fmt"
	"io"
	"os"
)

// DetermineFormat returns the format of the named file by examining its
// first bytes against the signature table. FormatUnknown is a normal result
// for unrecognized content; an error is returned only if the file cannot be
// opened or read.
//
// The file is opened read-only and closed again on every path out of this
// function. Sniffing the same unchanged file twice returns the same format
// and does not modify the file.
func DetermineFormat(name string) (Format, error) {
	f, err := os.Open(name)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	return DetermineFormatReader(f)
}

// DetermineFormatReader returns the format of the content of src by
// examining its first bytes. Ownership of src stays with the caller; it is
// never closed here. At most sniffHeaderLength bytes are consumed from src.
func DetermineFormatReader(src io.Reader) (Format, error) {
	hr, err := newHeaderReader(src, sniffHeaderLength)
	if err != nil {
		return FormatUnknown, err
	}
	return SniffHeader(hr.PeekHeader()), nil
}
