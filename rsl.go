// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesRSL are the magic bytes of files written by the TRMM RSL
// library itself.
var magicBytesRSL = [][]byte{
	[]byte("RSL"),
}

// IsRSL checks if the header matches the magic bytes of an RSL file.
func IsRSL(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesRSL)
}
