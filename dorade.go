// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesDORADE are the descriptor identifiers a DORADE sweep file can
// begin with.
var magicBytesDORADE = [][]byte{
	[]byte("SSWB"),
	[]byte("VOLD"),
	[]byte("COMM"),
}

// IsDORADE checks if the header matches the magic bytes of a DORADE sweep
// file.
func IsDORADE(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesDORADE)
}
