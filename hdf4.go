// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesHDF4 is the HDF4 format signature from the HDF4 specification
// documentation.
var magicBytesHDF4 = [][]byte{
	{0x0e, 0x03, 0x13, 0x01},
}

// IsHDF4 checks if the header matches the magic bytes of an HDF4 file.
func IsHDF4(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesHDF4)
}
