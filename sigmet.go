// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesSigmet is the leading byte of a Sigmet raw product file: a
// structure_header with a product configuration indicator (see section
// 4.2.47 of the IRIS programming guide).
var magicBytesSigmet = [][]byte{
	{0x1b},
}

// IsSigmet checks if the header matches the leading byte of a Sigmet raw
// product file. This check is intentionally last among the content formats
// in the signature table since a single ESC byte is easy to collide with.
func IsSigmet(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesSigmet)
}
