// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesLASSEN is the "SUNRISE" marker of LASSEN files, found at byte
// offset 4.
var magicBytesLASSEN = [][]byte{
	[]byte("SUNRISE"),
}

const offsetLASSEN = 4

// IsLASSEN checks if the header matches the magic bytes of a LASSEN file.
func IsLASSEN(header []byte) bool {
	return matchesMagicBytes(header, offsetLASSEN, magicBytesLASSEN)
}
