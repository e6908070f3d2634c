// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesUF is the mandatory header identifier of Universal Format
// files. Depending on the record framing it appears at byte 0, 2 or 4.
var magicBytesUF = [][]byte{
	[]byte("UF"),
}

var offsetsUF = []int{0, 2, 4}

// IsUF checks if the header matches a Universal Format file at any of the
// known framing offsets.
func IsUF(header []byte) bool {
	for _, off := range offsetsUF {
		if matchesMagicBytes(header, off, magicBytesUF) {
			return true
		}
	}
	return false
}
